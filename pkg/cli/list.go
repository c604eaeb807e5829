package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octobranch/pkg/cli/config"
	"github.com/m-mizutani/octobranch/pkg/domain/model"
	"github.com/m-mizutani/octobranch/pkg/domain/types"
	"github.com/m-mizutani/octobranch/pkg/infra"
	"github.com/m-mizutani/octobranch/pkg/usecase"
	"github.com/m-mizutani/octobranch/pkg/utils/logging"
	"github.com/m-mizutani/octobranch/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
	var (
		output string
		github config.GitHub
		sentry config.Sentry
	)

	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "Print non-fork repositories of the account and their branches with head commit SHA",
		ArgsUsage: "<account>",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Usage:       "Report output [-|<file>]",
				Value:       "-",
				Sources:     cli.EnvVars("OCTOBRANCH_OUTPUT"),
				Destination: &output,
			},
		}, github.Flags(), sentry.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() != 1 {
				return goerr.Wrap(types.ErrInvalidOption, "exactly one account is required", goerr.V("args", c.Args().Slice()))
			}

			logging.Default().Debug("starting list",
				slog.String("Output", output),
				slog.Any("GitHub", github),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			return runList(ctx, c.Args().First(), output, &github)
		},
	}
}

func runList(ctx context.Context, account, output string, github *config.GitHub) error {
	// Token is checked before any request is sent
	client, err := github.NewClient()
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if output != "-" {
		fd, err := os.Create(filepath.Clean(output))
		if err != nil {
			return goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
		}
		defer safe.Close(fd)
		w = fd
	}

	uc := usecase.New(infra.New(infra.WithGitHub(client)))

	result, err := uc.ReportBranches(ctx, w, &model.ReportBranchesInput{Account: account})
	if err != nil {
		return err
	}
	if result == model.RunFailed {
		return goerr.Wrap(types.ErrRepositoriesUnavailable, "failed to fetch repositories", goerr.V("account", account))
	}

	logging.Default().Debug("list finished", slog.String("account", account), slog.String("result", result.String()))
	return nil
}
