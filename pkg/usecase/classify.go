package usecase

import (
	"errors"
	"net/http"

	"github.com/m-mizutani/octobranch/pkg/domain/model"
	"github.com/m-mizutani/octobranch/pkg/domain/types"
)

// classifyRepositoryError converts failure of repository listing to ErrorReport. It returns nil if the error can not be classified (e.g. network or decode failure) and should abort the run.
func classifyRepositoryError(account string, err error) *model.ErrorReport {
	if errors.Is(err, types.ErrInvalidPathSegment) {
		return model.InvalidUsername(account)
	}

	var statusErr *types.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode == http.StatusNotFound {
			return model.UserNotFound()
		}
		return model.FailedToFetchRepositories(statusErr.StatusCode)
	}

	return nil
}
