package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ajaxdemo/pkg/cli/config"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
	"github.com/secmon-lab/ajaxdemo/pkg/service/remote"
	"github.com/secmon-lab/ajaxdemo/pkg/service/terminal"
	"github.com/urfave/cli/v3"
)

func cmdProbe() *cli.Command {
	var (
		remoteCfg config.Remote
		method    string
		data      string
		headers   []string
		kind      string
	)

	flags := joinFlags(
		remoteCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "method",
				Aliases:     []string{"X"},
				Usage:       "HTTP method",
				Value:       "GET",
				Destination: &method,
			},
			&cli.StringFlag{
				Name:        "data",
				Aliases:     []string{"d"},
				Usage:       "Request body",
				Destination: &data,
			},
			&cli.StringSliceFlag{
				Name:        "header",
				Aliases:     []string{"H"},
				Usage:       "Request header as 'Name: value'",
				Destination: &headers,
			},
			&cli.StringFlag{
				Name:        "kind",
				Usage:       "Decode the response as records of this kind (user, post) and print a table",
				Destination: &kind,
			},
		},
	)

	return &cli.Command{
		Name:      "probe",
		Usage:     "Send a single request through the configured transport",
		ArgsUsage: "<url>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("exactly one URL is required", goerr.V("args", c.Args().Slice()))
			}
			url := c.Args().First()
			w := output(c)

			transport, err := remoteCfg.ConfigureTransport()
			if err != nil {
				return err
			}

			if kind != "" {
				recordKind := types.RecordKind(kind)
				if !recordKind.IsValid() {
					return goerr.Wrap(model.ErrUnknownKind, "invalid kind", goerr.V("kind", kind))
				}

				outcome := remote.New(transport).Fetch(ctx, recordKind, url)
				renderer := terminal.NewRenderer(w)
				if !outcome.IsSuccess() {
					if err := renderer.ShowError(ctx, "probe", outcome.Reason(), ""); err != nil {
						return err
					}
					return outcome.Err()
				}
				return renderer.ShowRecords(ctx, "probe", recordKind, outcome.Records(), model.RenderOptions{Source: url})
			}

			opts := model.RequestOptions{
				Method:  strings.ToUpper(method),
				Headers: map[string]string{},
			}
			if data != "" {
				opts.Body = []byte(data)
			}
			for _, h := range headers {
				name, value, ok := strings.Cut(h, ":")
				if !ok {
					return goerr.New("invalid header, expected 'Name: value'", goerr.V("header", h))
				}
				opts.Headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
			}

			resp, err := transport.Request(ctx, url, opts)
			if err != nil {
				return goerr.Wrap(err, "request failed", goerr.V("url", url))
			}

			fmt.Fprintf(w, "%s %s -> %d\n", opts.MethodOrDefault(), url, resp.Status)
			fmt.Fprintln(w, string(resp.Body))
			if !resp.IsSuccess() {
				return goerr.New(fmt.Sprintf("HTTP error: %d", resp.Status), goerr.V("url", url))
			}
			return nil
		},
	}
}
