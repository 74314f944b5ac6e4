package render

import (
	"bytes"
	"context"
	"embed"
	"html/template"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/interfaces"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// HTML renders records and errors as HTML markup and writes it into display regions
type HTML struct {
	display interfaces.Display
	tmpl    *template.Template
}

var _ interfaces.Renderer = (*HTML)(nil)

// recordsView is the view-model of the "records" template
type recordsView struct {
	Kind   string
	Title  string
	Icon   string
	Count  int
	Users  []model.User
	Posts  []model.Post
	Source string
}

// errorView is the view-model of the "error" template
type errorView struct {
	Message string
	Hint    string
}

// New creates a new HTML renderer writing into display
func New(display interfaces.Display) (*HTML, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse view templates")
	}

	return &HTML{
		display: display,
		tmpl:    tmpl,
	}, nil
}

// RenderRecords builds the markup listing records of kind. An empty list
// renders a header with count 0 and no items.
func (r *HTML) RenderRecords(kind types.RecordKind, records []model.Record, opts model.RenderOptions) (template.HTML, error) {
	view := recordsView{
		Kind:   kind.String(),
		Count:  len(records),
		Source: opts.Source,
	}

	switch kind {
	case types.RecordKindUser:
		view.Title = "Users loaded"
		view.Icon = "fa-users"
		view.Users = make([]model.User, 0, len(records))
		for i, rec := range records {
			user, ok := rec.(model.User)
			if !ok {
				return "", unexpectedRecord(kind, i, rec)
			}
			view.Users = append(view.Users, user)
		}

	case types.RecordKindPost:
		view.Title = "Posts loaded"
		view.Icon = "fa-file-alt"
		view.Posts = make([]model.Post, 0, len(records))
		for i, rec := range records {
			post, ok := rec.(model.Post)
			if !ok {
				return "", unexpectedRecord(kind, i, rec)
			}
			view.Posts = append(view.Posts, post)
		}

	default:
		return "", goerr.Wrap(model.ErrUnknownKind, "cannot render records",
			goerr.V("kind", kind),
			goerr.T(model.ErrTagRender))
	}

	return r.execute("records", view)
}

// RenderError builds a visually distinct error block containing message
// verbatim, followed by an optional hint
func (r *HTML) RenderError(message, hint string) (template.HTML, error) {
	return r.execute("error", errorView{Message: message, Hint: hint})
}

// ShowRecords renders records and replaces the content of region with them
func (r *HTML) ShowRecords(ctx context.Context, region types.RegionID, kind types.RecordKind, records []model.Record, opts model.RenderOptions) error {
	markup, err := r.RenderRecords(kind, records, opts)
	if err != nil {
		return err
	}

	r.display.SetContent(region, markup)
	ctxlog.From(ctx).Debug("records rendered", "region", region, "kind", kind, "count", len(records))
	return nil
}

// ShowError renders an error block and replaces the content of region with it
func (r *HTML) ShowError(ctx context.Context, region types.RegionID, message, hint string) error {
	markup, err := r.RenderError(message, hint)
	if err != nil {
		return err
	}

	r.display.SetContent(region, markup)
	ctxlog.From(ctx).Debug("error rendered", "region", region, "message", message)
	return nil
}

func (r *HTML) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", goerr.Wrap(err, "failed to execute view template",
			goerr.V("template", name),
			goerr.T(model.ErrTagRender))
	}

	// Output of html/template is already escaped
	return template.HTML(buf.String()), nil
}

func unexpectedRecord(kind types.RecordKind, index int, rec model.Record) error {
	var got types.RecordKind
	if rec != nil {
		got = rec.Kind()
	}
	return goerr.New("unexpected record shape",
		goerr.V("kind", kind),
		goerr.V("index", index),
		goerr.V("got", got),
		goerr.T(model.ErrTagRender))
}
