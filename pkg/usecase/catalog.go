package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/samber/lo"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/interfaces"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
	"github.com/secmon-lab/ajaxdemo/pkg/service/remote"
	"github.com/secmon-lab/ajaxdemo/pkg/service/simulator"
)

const (
	DefaultUsersDelay = 1500 * time.Millisecond
	DefaultPostsDelay = 1200 * time.Millisecond
	DefaultErrorDelay = 1000 * time.Millisecond
)

const remoteErrorHint = "Possible cause: connection or CORS problems. Check your internet connection."

// Delays holds the simulated latency of each sample data action
type Delays struct {
	Users time.Duration
	Posts time.Duration
	Error time.Duration
}

// DefaultDelays returns the default simulated latencies
func DefaultDelays() Delays {
	return Delays{
		Users: DefaultUsersDelay,
		Posts: DefaultPostsDelay,
		Error: DefaultErrorDelay,
	}
}

// Catalog resolves action names into an Action and its Source
type Catalog struct {
	store     interfaces.SampleStore
	simulator *simulator.Simulator
	fetcher   *remote.Fetcher
	delays    Delays
}

// NewCatalog creates a new Catalog. fetcher may be nil, in which case the
// remote actions are not available.
func NewCatalog(store interfaces.SampleStore, sim *simulator.Simulator, fetcher *remote.Fetcher, delays Delays) *Catalog {
	return &Catalog{
		store:     store,
		simulator: sim,
		fetcher:   fetcher,
		delays:    delays,
	}
}

// Names returns the available action names in display order
func (c *Catalog) Names() []types.ActionName {
	names := []types.ActionName{
		types.ActionLoadUsers,
		types.ActionLoadPosts,
		types.ActionSimulateError,
	}
	if c.fetcher != nil {
		names = append(names, types.ActionLoadRemotePosts, types.ActionLoadRemoteUsers)
	}
	return names
}

// Resolve returns the Action and Source for name. Unknown names yield
// ErrUnknownAction.
func (c *Catalog) Resolve(ctx context.Context, name types.ActionName) (Action, Source, error) {
	switch name {
	case types.ActionLoadUsers:
		records := model.UsersToRecords(c.store.Users(ctx))
		return Action{
			Name:           name,
			Panel:          types.PanelDemo,
			Kind:           types.RecordKindUser,
			SuccessMessage: "Users loaded successfully",
			ErrorMessage:   "Error loading users",
		}, c.simulator.Source(records, c.delays.Users, false), nil

	case types.ActionLoadPosts:
		records := model.PostsToRecords(c.store.Posts(ctx))
		return Action{
			Name:           name,
			Panel:          types.PanelDemo,
			Kind:           types.RecordKindPost,
			SuccessMessage: "Posts loaded successfully",
			ErrorMessage:   "Error processing the posts",
		}, c.simulator.Source(records, c.delays.Posts, false), nil

	case types.ActionSimulateError:
		return Action{
			Name:         name,
			Panel:        types.PanelDemo,
			Kind:         types.RecordKindUser,
			ErrorMessage: "Error loading data",
		}, c.simulator.Source(nil, c.delays.Error, true), nil

	case types.ActionLoadRemotePosts, types.ActionLoadRemoteUsers:
		if c.fetcher == nil {
			break
		}
		kind := lo.Ternary(name == types.ActionLoadRemotePosts, types.RecordKindPost, types.RecordKindUser)
		source, url, err := c.fetcher.Source(kind)
		if err != nil {
			return Action{}, nil, goerr.Wrap(err, "failed to build remote source", goerr.V("action", name))
		}

		action := Action{
			Name:         name,
			Panel:        types.PanelAPI,
			Kind:         kind,
			ClearOnStart: true,
			SourceURL:    url,
		}
		if kind == types.RecordKindPost {
			action.SuccessMessage = "Posts loaded successfully from the API"
			action.ErrorMessage = "Error loading API data"
			action.ErrorHint = remoteErrorHint
		} else {
			action.SuccessMessage = "Users loaded successfully from the API"
			action.ErrorMessage = "Error loading users from the API"
		}
		return action, source, nil
	}

	return Action{}, nil, goerr.Wrap(model.ErrUnknownAction, "cannot resolve action", goerr.V("action", name))
}
