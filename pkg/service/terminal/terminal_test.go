package terminal_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
	"github.com/secmon-lab/ajaxdemo/pkg/service/terminal"
)

func TestRendererShowRecords(t *testing.T) {
	ctx := context.Background()
	sample := model.DefaultSampleData()

	t.Run("Users table", func(t *testing.T) {
		var buf bytes.Buffer
		r := terminal.NewRenderer(&buf)

		err := r.ShowRecords(ctx, types.PanelDemo.ResultRegion(), types.RecordKindUser,
			model.UsersToRecords(sample.Users), model.RenderOptions{})
		gt.NoError(t, err).Required()

		out := buf.String()
		gt.S(t, out).Contains("Users loaded")
		gt.S(t, out).Contains("(4)")
		gt.S(t, out).Contains("Ana García")
		gt.S(t, out).Contains("david@example.com")
		gt.S(t, out).NotContains("Data loaded from")
	})

	t.Run("Posts table with source", func(t *testing.T) {
		var buf bytes.Buffer
		r := terminal.NewRenderer(&buf)

		posts := []model.Post{{ID: 3, UserID: 7, Title: "remote post", Body: "body"}}
		err := r.ShowRecords(ctx, types.PanelAPI.ResultRegion(), types.RecordKindPost,
			model.PostsToRecords(posts), model.RenderOptions{Source: "https://example.com/posts"})
		gt.NoError(t, err).Required()

		out := buf.String()
		gt.S(t, out).Contains("Posts loaded")
		gt.S(t, out).Contains("remote post")
		gt.S(t, out).Contains("user 7")
		gt.S(t, out).Contains("Data loaded from: https://example.com/posts")
	})

	t.Run("Mismatched record is a render failure", func(t *testing.T) {
		var buf bytes.Buffer
		r := terminal.NewRenderer(&buf)

		err := r.ShowRecords(ctx, types.PanelDemo.ResultRegion(), types.RecordKindUser,
			model.PostsToRecords(sample.Posts), model.RenderOptions{})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagRender))
		gt.Equal(t, "", buf.String())
	})

	t.Run("Unknown kind", func(t *testing.T) {
		r := terminal.NewRenderer(&bytes.Buffer{})
		err := r.ShowRecords(ctx, types.PanelDemo.ResultRegion(), types.RecordKind("comment"), nil, model.RenderOptions{})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagRender))
	})
}

func TestRendererShowError(t *testing.T) {
	var buf bytes.Buffer
	r := terminal.NewRenderer(&buf)

	gt.NoError(t, r.ShowError(context.Background(), types.PanelAPI.ResultRegion(), "HTTP error: 404", "Check your internet connection."))
	gt.S(t, buf.String()).Contains("HTTP error: 404")
	gt.S(t, buf.String()).Contains("Check your internet connection.")
}

func TestDisplay(t *testing.T) {
	var buf bytes.Buffer
	d := terminal.NewDisplay(&buf)
	loading := types.PanelDemo.LoadingRegion()

	d.Show(loading)
	gt.True(t, d.Visible(loading))
	gt.S(t, buf.String()).Contains("Loading demo...")

	// showing an already visible region prints nothing new
	before := buf.Len()
	d.Show(loading)
	gt.Equal(t, before, buf.Len())

	d.Hide(loading)
	gt.False(t, d.Visible(loading))

	d.Show(types.PanelDemo.ResultRegion())
	gt.Equal(t, before, buf.Len())
}

func TestNotifier(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		var buf bytes.Buffer
		n := terminal.NewNotifier(&buf)

		got, err := n.Notify(ctx, "Users loaded successfully", types.NotificationSuccess)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.NotificationSuccess, got.Kind)
		gt.S(t, buf.String()).Contains("[ok] Users loaded successfully")
	})

	t.Run("Error", func(t *testing.T) {
		var buf bytes.Buffer
		n := terminal.NewNotifier(&buf)

		_, err := n.Notify(ctx, "Error loading data", types.NotificationError)
		gt.NoError(t, err).Required()
		gt.S(t, buf.String()).Contains("[error] Error loading data")
	})

	t.Run("Empty message", func(t *testing.T) {
		var buf bytes.Buffer
		n := terminal.NewNotifier(&buf)

		_, err := n.Notify(ctx, "", types.NotificationInfo)
		gt.Error(t, err)
		gt.Equal(t, "", buf.String())
	})
}
