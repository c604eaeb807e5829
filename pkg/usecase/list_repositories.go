package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/octobranch/pkg/domain/model"
	"github.com/m-mizutani/octobranch/pkg/utils/logging"
)

// listRepositories fetches repositories of the account. Classified failure is returned as ErrorReport and error is returned only for unrecoverable failure.
func (x *UseCase) listRepositories(ctx context.Context, account string) ([]*model.Repository, *model.ErrorReport, error) {
	repos, err := x.clients.GitHub().ListRepositories(ctx, account)
	if err != nil {
		report := classifyRepositoryError(account, err)
		if report == nil {
			return nil, nil, err
		}

		logging.From(ctx).Warn("Failed to fetch repositories",
			slog.String("account", account),
			slog.Int("status", report.Status),
			slog.Any("error", err),
		)
		return nil, report, nil
	}

	logging.From(ctx).Info("Retrieved repositories from GitHub API",
		slog.String("account", account),
		slog.Int("total_repos", len(repos)),
	)

	return repos, nil, nil
}
