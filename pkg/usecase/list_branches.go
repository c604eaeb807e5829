package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/octobranch/pkg/domain/model"
	"github.com/m-mizutani/octobranch/pkg/domain/types"
	"github.com/m-mizutani/octobranch/pkg/report"
	"github.com/m-mizutani/octobranch/pkg/utils/logging"
)

// printBranches fetches branches of the repository and prints them. Invalid repository name and unexpected status are reported in p and affect only this repository.
func (x *UseCase) printBranches(ctx context.Context, p *report.Printer, account, repo string) error {
	logger := logging.From(ctx)

	branches, err := x.clients.GitHub().ListBranches(ctx, account, repo)
	if err != nil {
		if errors.Is(err, types.ErrInvalidPathSegment) {
			logger.Warn("Skip repository with invalid name", slog.String("repo", repo))
			p.Error(model.InvalidRepositoryName(repo))
			return nil
		}

		var statusErr *types.StatusError
		if errors.As(err, &statusErr) {
			logger.Warn("Failed to fetch branches",
				slog.String("account", account),
				slog.String("repo", repo),
				slog.Int("status", statusErr.StatusCode),
			)
			p.BranchFailure(statusErr.StatusCode)
			return nil
		}

		return err
	}

	for _, branch := range branches {
		if !branch.HasValidSHA() {
			logger.Debug("Branch has unexpected SHA format",
				slog.String("repo", repo),
				slog.Any("branch", branch.Name),
				slog.Any("sha", branch.CommitSHA),
			)
		}
		p.Branch(branch)
	}

	return nil
}
