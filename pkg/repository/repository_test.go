package repository_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/repository"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("Default dataset", func(t *testing.T) {
		store := repository.NewMemory(nil)

		users := store.Users(ctx)
		gt.A(t, users).Length(4)
		gt.Equal(t, "Ana García", users[0].Name)
		gt.Equal(t, "Sevilla", users[3].City)

		posts := store.Posts(ctx)
		gt.A(t, posts).Length(3)
		gt.Equal(t, "Fetch API vs XMLHttpRequest", posts[1].Title)
	})

	t.Run("Returned records are copies", func(t *testing.T) {
		store := repository.NewMemory(nil)

		users := store.Users(ctx)
		users[0].Name = "changed"
		gt.Equal(t, "Ana García", store.Users(ctx)[0].Name)

		posts := store.Posts(ctx)
		posts[0].Likes = 0
		gt.Equal(t, 42, store.Posts(ctx)[0].Likes)
	})

	t.Run("Source data is copied at construction", func(t *testing.T) {
		data := &model.SampleData{
			Users: []model.User{{ID: 1, Name: "Ana", Email: "ana@example.com", City: "Madrid"}},
		}
		store := repository.NewMemory(data)
		data.Users[0].City = "Lisboa"

		gt.Equal(t, "Madrid", store.Users(ctx)[0].City)
		gt.A(t, store.Posts(ctx)).Length(0)
	})
}

func TestLoadFirestore(t *testing.T) {
	// Skip test if Firestore test environment variables are not set
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	ctx := ctxlog.With(context.Background(), slog.New(slog.NewTextHandler(os.Stdout, nil)))
	data, err := repository.LoadFirestore(ctx, projectID, databaseID)
	gt.NoError(t, err).Required()
	gt.NoError(t, data.Validate())
}

func TestFirestoreCollections(t *testing.T) {
	gt.Equal(t, "sample_users", repository.UsersCollection)
	gt.Equal(t, "sample_posts", repository.PostsCollection)
}
