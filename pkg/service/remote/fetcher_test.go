package remote_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
	"github.com/secmon-lab/ajaxdemo/pkg/service/remote"
)

const usersBody = `[
  {
    "id": 1,
    "name": "Leanne Graham",
    "username": "Bret",
    "email": "Sincere@april.biz",
    "address": {"street": "Kulas Light", "suite": "Apt. 556", "city": "Gwenborough"},
    "website": "hildegard.org",
    "company": {"name": "Romaguera-Crona"}
  },
  {
    "id": 2,
    "name": "Ervin Howell",
    "username": "Antonette",
    "email": "Shanna@melissa.tv",
    "address": {"street": "Victor Plains", "suite": "Suite 879", "city": "Wisokyburgh"},
    "website": "anastasia.net",
    "company": {"name": "Deckow-Crist"}
  }
]`

const postsBody = `[
  {"userId": 1, "id": 1, "title": "sunt aut facere", "body": "quia et suscipit"},
  {"userId": 1, "id": 2, "title": "qui est esse", "body": "est rerum tempore"}
]`

func respondWith(status int, body string) *mocks.TransportMock {
	return &mocks.TransportMock{
		RequestFunc: func(ctx context.Context, url string, opts model.RequestOptions) (*model.Response, error) {
			return &model.Response{Status: status, Body: []byte(body)}, nil
		},
	}
}

func TestFetcherURLs(t *testing.T) {
	t.Run("Default endpoints", func(t *testing.T) {
		f := remote.New(respondWith(200, "[]"))
		gt.Equal(t, "https://jsonplaceholder.typicode.com/posts?_limit=5", f.PostsURL())
		gt.Equal(t, "https://jsonplaceholder.typicode.com/users?_limit=4", f.UsersURL())
	})

	t.Run("Custom base URL and limits", func(t *testing.T) {
		f := remote.New(respondWith(200, "[]"),
			remote.WithBaseURL("http://localhost:9999/"),
			remote.WithLimits(2, 3),
		)
		gt.Equal(t, "http://localhost:9999/posts?_limit=2", f.PostsURL())
		gt.Equal(t, "http://localhost:9999/users?_limit=3", f.UsersURL())
	})

	t.Run("Unknown kind", func(t *testing.T) {
		f := remote.New(respondWith(200, "[]"))
		_, err := f.URLFor(types.RecordKind("comment"))
		gt.Error(t, err)
	})
}

func TestFetcherFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("Users are parsed in order", func(t *testing.T) {
		transport := respondWith(200, usersBody)
		f := remote.New(transport)

		outcome := f.Fetch(ctx, types.RecordKindUser, f.UsersURL())

		gt.True(t, outcome.IsSuccess())
		records := outcome.Records()
		gt.A(t, records).Length(2)

		first, ok := records[0].(model.User)
		gt.True(t, ok)
		gt.Equal(t, "Leanne Graham", first.Name)
		gt.Equal(t, "Sincere@april.biz", first.Email)
		gt.Equal(t, "Gwenborough", first.City)
		gt.Equal(t, "Kulas Light", first.Street)
		gt.Equal(t, "Romaguera-Crona", first.Company)
		gt.Equal(t, "hildegard.org", first.Website)
		gt.Equal(t, 2, records[1].RecordID())

		calls := transport.RequestCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, f.UsersURL(), calls[0].URL)
		gt.Equal(t, "GET", calls[0].Opts.MethodOrDefault())
	})

	t.Run("Posts are parsed", func(t *testing.T) {
		f := remote.New(respondWith(200, postsBody))

		outcome := f.Fetch(ctx, types.RecordKindPost, f.PostsURL())

		gt.True(t, outcome.IsSuccess())
		records := outcome.Records()
		gt.A(t, records).Length(2)
		post, ok := records[1].(model.Post)
		gt.True(t, ok)
		gt.Equal(t, "qui est esse", post.Title)
		gt.Equal(t, 1, post.UserID)
	})

	t.Run("Empty list is a success", func(t *testing.T) {
		f := remote.New(respondWith(200, "[]"))
		outcome := f.Fetch(ctx, types.RecordKindPost, f.PostsURL())
		gt.True(t, outcome.IsSuccess())
		gt.A(t, outcome.Records()).Length(0)
	})

	t.Run("Status 404 yields HTTP error", func(t *testing.T) {
		f := remote.New(respondWith(404, `{}`))

		outcome := f.Fetch(ctx, types.RecordKindPost, f.PostsURL())

		gt.False(t, outcome.IsSuccess())
		gt.Equal(t, "HTTP error: 404", outcome.Reason())
		gt.True(t, goerr.HasTag(outcome.Err(), model.ErrTagTransport))
	})

	t.Run("Status 500 yields HTTP error", func(t *testing.T) {
		f := remote.New(respondWith(500, "oops"))
		outcome := f.Fetch(ctx, types.RecordKindUser, f.UsersURL())
		gt.Equal(t, "HTTP error: 500", outcome.Reason())
	})

	t.Run("Connectivity error keeps the underlying message", func(t *testing.T) {
		f := remote.New(&mocks.TransportMock{
			RequestFunc: func(ctx context.Context, url string, opts model.RequestOptions) (*model.Response, error) {
				return nil, errors.New("dial tcp: lookup jsonplaceholder.typicode.com: no such host")
			},
		})

		outcome := f.Fetch(ctx, types.RecordKindUser, f.UsersURL())

		gt.False(t, outcome.IsSuccess())
		gt.Equal(t, "dial tcp: lookup jsonplaceholder.typicode.com: no such host", outcome.Reason())
		gt.True(t, goerr.HasTag(outcome.Err(), model.ErrTagTransport))
	})

	t.Run("Malformed body is a failure", func(t *testing.T) {
		f := remote.New(respondWith(200, `<html>not json</html>`))

		outcome := f.Fetch(ctx, types.RecordKindPost, f.PostsURL())

		gt.False(t, outcome.IsSuccess())
		gt.True(t, outcome.Reason() != "")
	})

	t.Run("Object instead of list is a failure", func(t *testing.T) {
		f := remote.New(respondWith(200, `{"id": 1}`))
		outcome := f.Fetch(ctx, types.RecordKindUser, f.UsersURL())
		gt.False(t, outcome.IsSuccess())
	})
}

func TestFetcherSource(t *testing.T) {
	f := remote.New(respondWith(200, postsBody))

	source, url, err := f.Source(types.RecordKindPost)
	gt.NoError(t, err).Required()
	gt.Equal(t, f.PostsURL(), url)

	outcome := source(context.Background())
	gt.True(t, outcome.IsSuccess())
	gt.A(t, outcome.Records()).Length(2)

	_, _, err = f.Source(types.RecordKind("comment"))
	gt.Error(t, err)
}
