package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"
	"io"

	"github.com/m-mizutani/octobranch/pkg/domain/model"
)

type UseCase interface {
	ReportBranches(ctx context.Context, w io.Writer, input *model.ReportBranchesInput) (model.RunResult, error)
}
