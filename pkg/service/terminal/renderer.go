package terminal

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/interfaces"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
)

// Renderer prints records as tables and errors as colored blocks
type Renderer struct {
	w io.Writer
}

var _ interfaces.Renderer = (*Renderer)(nil)

// NewRenderer creates a Renderer writing to w
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// ShowRecords prints a "<Kind> loaded (N)" header followed by a table of records
func (r *Renderer) ShowRecords(ctx context.Context, region types.RegionID, kind types.RecordKind, records []model.Record, opts model.RenderOptions) error {
	var (
		title  string
		header []string
		rows   [][]string
	)

	switch kind {
	case types.RecordKindUser:
		title = "Users loaded"
		header = []string{"ID", "Name", "Email", "City"}
		for i, rec := range records {
			user, ok := rec.(model.User)
			if !ok {
				return unexpectedRecord(kind, i)
			}
			rows = append(rows, []string{strconv.Itoa(user.ID), user.Name, user.Email, user.City})
		}

	case types.RecordKindPost:
		title = "Posts loaded"
		header = []string{"ID", "Title", "Author", "Likes"}
		for i, rec := range records {
			post, ok := rec.(model.Post)
			if !ok {
				return unexpectedRecord(kind, i)
			}
			author := post.Author
			if author == "" {
				author = fmt.Sprintf("user %d", post.UserID)
			}
			rows = append(rows, []string{strconv.Itoa(post.ID), post.Title, author, strconv.Itoa(post.Likes)})
		}

	default:
		return goerr.Wrap(model.ErrUnknownKind, "cannot render records",
			goerr.V("kind", kind),
			goerr.T(model.ErrTagRender))
	}

	fmt.Fprintf(r.w, "%s (%d)\n", color.Bold.Sprint(title), len(records))

	table := tablewriter.NewWriter(r.w)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()

	if opts.Source != "" {
		fmt.Fprintf(r.w, "Data loaded from: %s\n", opts.Source)
	}
	return nil
}

// ShowError prints message verbatim followed by an optional hint
func (r *Renderer) ShowError(ctx context.Context, region types.RegionID, message, hint string) error {
	fmt.Fprintln(r.w, color.Red.Sprintf("Error: %s", message))
	if hint != "" {
		fmt.Fprintln(r.w, color.Gray.Sprint(hint))
	}
	return nil
}

func unexpectedRecord(kind types.RecordKind, index int) error {
	return goerr.New("unexpected record shape",
		goerr.V("kind", kind),
		goerr.V("index", index),
		goerr.T(model.ErrTagRender))
}
