package repository

import (
	"context"

	"github.com/secmon-lab/ajaxdemo/pkg/domain/interfaces"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
)

// Memory implements SampleStore with records held in memory. The data is
// copied once at construction and never modified afterwards.
type Memory struct {
	users []model.User
	posts []model.Post
}

// NewMemory creates a new memory sample store. A nil data falls back to the
// built-in demo dataset.
func NewMemory(data *model.SampleData) interfaces.SampleStore {
	if data == nil {
		data = model.DefaultSampleData()
	}

	users := make([]model.User, len(data.Users))
	copy(users, data.Users)
	posts := make([]model.Post, len(data.Posts))
	copy(posts, data.Posts)

	return &Memory{
		users: users,
		posts: posts,
	}
}

// Users returns a copy of the user records
func (m *Memory) Users(ctx context.Context) []model.User {
	// Return a copy to prevent external modification
	users := make([]model.User, len(m.users))
	copy(users, m.users)
	return users
}

// Posts returns a copy of the post records
func (m *Memory) Posts(ctx context.Context) []model.Post {
	posts := make([]model.Post, len(m.posts))
	copy(posts, m.posts)
	return posts
}
