package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/samber/lo"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/interfaces"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
)

const (
	// DefaultBaseURL is the public placeholder API used by the demo
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"

	// DefaultPostsLimit is the number of posts requested
	DefaultPostsLimit = 5
	// DefaultUsersLimit is the number of users requested
	DefaultUsersLimit = 4
)

// Fetcher loads records from the remote API through a Transport
type Fetcher struct {
	transport  interfaces.Transport
	baseURL    string
	postsLimit int
	usersLimit int
}

// Option configures a Fetcher
type Option func(*Fetcher)

// WithBaseURL overrides the remote API base URL
func WithBaseURL(baseURL string) Option {
	return func(f *Fetcher) {
		f.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLimits overrides the result-count limit of each endpoint
func WithLimits(posts, users int) Option {
	return func(f *Fetcher) {
		f.postsLimit = posts
		f.usersLimit = users
	}
}

// New creates a new Fetcher
func New(transport interfaces.Transport, opts ...Option) *Fetcher {
	f := &Fetcher{
		transport:  transport,
		baseURL:    DefaultBaseURL,
		postsLimit: DefaultPostsLimit,
		usersLimit: DefaultUsersLimit,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// PostsURL returns the posts listing endpoint
func (f *Fetcher) PostsURL() string {
	return fmt.Sprintf("%s/posts?_limit=%d", f.baseURL, f.postsLimit)
}

// UsersURL returns the users listing endpoint
func (f *Fetcher) UsersURL() string {
	return fmt.Sprintf("%s/users?_limit=%d", f.baseURL, f.usersLimit)
}

// URLFor returns the listing endpoint of a record kind
func (f *Fetcher) URLFor(kind types.RecordKind) (string, error) {
	switch kind {
	case types.RecordKindPost:
		return f.PostsURL(), nil
	case types.RecordKindUser:
		return f.UsersURL(), nil
	default:
		return "", goerr.Wrap(model.ErrUnknownKind, "no endpoint for kind", goerr.V("kind", kind))
	}
}

// Fetch issues a single GET to url and parses the body as records of kind.
// Every failure (transport error, non-2xx status, malformed body) becomes a
// failed outcome; Fetch never returns an error.
func (f *Fetcher) Fetch(ctx context.Context, kind types.RecordKind, url string) model.Outcome {
	logger := ctxlog.From(ctx)

	resp, err := f.transport.Request(ctx, url, model.RequestOptions{
		Headers: map[string]string{"Accept": "application/json"},
	})
	if err != nil {
		logger.Warn("remote request failed", "url", url, "error", err)
		return model.Failure(goerr.New(err.Error(),
			goerr.V("url", url),
			goerr.V("cause", err),
			goerr.T(model.ErrTagTransport)))
	}

	if !resp.IsSuccess() {
		logger.Warn("remote request returned error status", "url", url, "status", resp.Status)
		return model.Failure(goerr.New(fmt.Sprintf("HTTP error: %d", resp.Status),
			goerr.V("url", url),
			goerr.V("status", resp.Status),
			goerr.T(model.ErrTagTransport)))
	}

	records, err := decodeRecords(kind, resp.Body)
	if err != nil {
		logger.Warn("failed to decode remote records", "url", url, "error", err)
		return model.Failure(goerr.New(err.Error(),
			goerr.V("url", url),
			goerr.V("kind", kind),
			goerr.T(model.ErrTagTransport)))
	}

	logger.Debug("remote records fetched", "url", url, "kind", kind, "count", len(records))
	return model.Success(records)
}

// Source returns a function that fetches the listing of kind when called
func (f *Fetcher) Source(kind types.RecordKind) (func(ctx context.Context) model.Outcome, string, error) {
	url, err := f.URLFor(kind)
	if err != nil {
		return nil, "", err
	}
	return func(ctx context.Context) model.Outcome {
		return f.Fetch(ctx, kind, url)
	}, url, nil
}

type remoteUser struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Address  struct {
		Street string `json:"street"`
		Suite  string `json:"suite"`
		City   string `json:"city"`
	} `json:"address"`
	Website string `json:"website"`
	Company struct {
		Name string `json:"name"`
	} `json:"company"`
}

type remotePost struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func decodeRecords(kind types.RecordKind, body []byte) ([]model.Record, error) {
	switch kind {
	case types.RecordKindUser:
		var users []remoteUser
		if err := json.Unmarshal(body, &users); err != nil {
			return nil, err
		}
		return lo.Map(users, func(u remoteUser, _ int) model.Record {
			return model.User{
				ID:      u.ID,
				Name:    u.Name,
				Email:   u.Email,
				City:    u.Address.City,
				Avatar:  "👤",
				Street:  u.Address.Street,
				Website: u.Website,
				Company: u.Company.Name,
			}
		}), nil

	case types.RecordKindPost:
		var posts []remotePost
		if err := json.Unmarshal(body, &posts); err != nil {
			return nil, err
		}
		return lo.Map(posts, func(p remotePost, _ int) model.Record {
			return model.Post{
				ID:     p.ID,
				UserID: p.UserID,
				Title:  p.Title,
				Body:   p.Body,
			}
		}), nil

	default:
		return nil, goerr.Wrap(model.ErrUnknownKind, "cannot decode records", goerr.V("kind", kind))
	}
}
