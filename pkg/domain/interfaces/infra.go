package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub

import (
	"context"

	"github.com/m-mizutani/octobranch/pkg/domain/model"
)

// GitHub is a client of GitHub REST API. Errors wrap types.ErrInvalidPathSegment when account or repository name can not be placed in URL, and *types.StatusError when API responds with status other than 200.
type GitHub interface {
	ListRepositories(ctx context.Context, account string) ([]*model.Repository, error)
	ListBranches(ctx context.Context, account, repo string) ([]*model.Branch, error)
}
