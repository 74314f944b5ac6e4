package repository

const (
	UsersCollection = usersCollection
	PostsCollection = postsCollection
)
