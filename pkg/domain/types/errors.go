package types

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption      = goerr.New("invalid option")
	ErrInvalidPathSegment = goerr.New("value can not be placed in URL path")
	ErrInvalidGitHubData  = goerr.New("invalid GitHub data")

	// ErrRepositoriesUnavailable means repository list of the account could not be obtained. It is reported to user as run result -1.
	ErrRepositoriesUnavailable = goerr.New("repositories are unavailable")
)

// StatusError is returned when GitHub API responds with status other than 200 OK.
type StatusError struct {
	StatusCode int
}

func (x *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status: %d", x.StatusCode)
}
