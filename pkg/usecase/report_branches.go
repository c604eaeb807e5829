package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octobranch/pkg/domain/model"
	"github.com/m-mizutani/octobranch/pkg/domain/types"
	"github.com/m-mizutani/octobranch/pkg/report"
	"github.com/m-mizutani/octobranch/pkg/utils/logging"
)

// ReportBranches lists non-fork repositories of the account and writes branches of each repository with head commit SHA to w.
// Repositories are processed one by one in the order of API response. Failure to fetch the repository list is written to w as ErrorReport and returns model.RunFailed with nil error. Failure of one repository's branches is written to w and the run continues. Error is returned only for unrecoverable failure such as network error, broken response or write error.
func (x *UseCase) ReportBranches(ctx context.Context, w io.Writer, input *model.ReportBranchesInput) (model.RunResult, error) {
	if x.clients.GitHub() == nil {
		return model.RunFailed, goerr.Wrap(types.ErrInvalidOption, "GitHub client is required")
	}

	logger := logging.From(ctx)
	p := report.New(w)

	repos, errReport, err := x.listRepositories(ctx, input.Account)
	if err != nil {
		return model.RunFailed, goerr.Wrap(err, "failed to list repositories", goerr.V("account", input.Account))
	}
	if errReport != nil {
		p.Error(errReport)
		return model.RunFailed, p.Err()
	}

	if len(repos) == 0 {
		p.NoRepositories(input.Account)
		return model.RunEmpty, p.Err()
	}

	// All repositories of one account's listing share the owner, so the first one represents them
	p.Owner(repos[0].OwnerLogin)

	var count int
	for _, repo := range repos {
		if repo.Fork {
			logger.Debug("Skipping forked repository", slog.String("repo", repo.Name))
			continue
		}

		count++
		logger.Info("Fetching branches",
			slog.Int("progress", count),
			slog.String("account", input.Account),
			slog.String("repo", repo.Name),
		)

		p.Repository(count, repo.Name)
		if err := x.printBranches(ctx, p, input.Account, repo.Name); err != nil {
			return model.RunFailed, goerr.Wrap(err, "failed to list branches",
				goerr.V("account", input.Account),
				goerr.V("repo", repo.Name),
			)
		}
		p.Separator()

		if err := p.Err(); err != nil {
			return model.RunFailed, err
		}
	}

	logger.Info("Completed branch report",
		slog.String("account", input.Account),
		slog.Int("total_repos", len(repos)),
		slog.Int("reported_repos", count),
	)

	if err := p.Err(); err != nil {
		return model.RunFailed, err
	}
	return model.RunSucceeded, nil
}
