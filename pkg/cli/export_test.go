package cli

import (
	"context"
	"io"
)

// RunWithWriter runs the CLI application with output written to w
func RunWithWriter(ctx context.Context, args []string, w io.Writer) error {
	app := newApp()
	app.Writer = w
	return app.Run(ctx, args)
}
