package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ajaxdemo/pkg/cli/config"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
	"github.com/secmon-lab/ajaxdemo/pkg/service/simulator"
	"github.com/secmon-lab/ajaxdemo/pkg/service/terminal"
	"github.com/secmon-lab/ajaxdemo/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRun() *cli.Command {
	var (
		demoCfg      config.Demo
		remoteCfg    config.Remote
		sampleCfg    config.Sample
		firestoreCfg config.Firestore
		strict       bool
	)

	flags := joinFlags(
		demoCfg.Flags(),
		remoteCfg.Flags(),
		sampleCfg.Flags(),
		firestoreCfg.Flags(),
		[]cli.Flag{
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "Exit with an error when an action fails",
				Destination: &strict,
			},
		},
	)

	return &cli.Command{
		Name:      "run",
		Usage:     "Run demo actions in the terminal",
		ArgsUsage: "<action> [action...]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			w := output(c)

			store, err := sampleCfg.Configure(ctx, &firestoreCfg)
			if err != nil {
				return err
			}
			fetcher, err := remoteCfg.Configure()
			if err != nil {
				return err
			}
			delays, err := demoCfg.Delays()
			if err != nil {
				return err
			}

			demo := usecase.NewDemo(
				usecase.NewController(terminal.NewDisplay(w), terminal.NewRenderer(w), terminal.NewNotifier(w)),
				usecase.NewCatalog(store, simulator.New(), fetcher, delays),
			)

			if c.Args().Len() == 0 {
				fmt.Fprintln(w, "Available actions:")
				for _, name := range demo.Actions() {
					fmt.Fprintf(w, "  %s\n", name)
				}
				return nil
			}

			for _, arg := range c.Args().Slice() {
				outcome, err := demo.Run(ctx, types.ActionName(arg))
				if err != nil {
					return err
				}
				if strict && !outcome.IsSuccess() {
					return goerr.Wrap(outcome.Err(), "action failed", goerr.V("action", arg))
				}
			}
			return nil
		},
	}
}
