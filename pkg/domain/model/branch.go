package model

import (
	"regexp"

	"github.com/m-mizutani/octobranch/pkg/domain/types"
)

var ptnValidCommitSHA = regexp.MustCompile("^[0-9a-f]{40}$")

// Branch represents a branch in a GitHub repository and the commit it points to
type Branch struct {
	Name      types.BranchName
	CommitSHA types.CommitSHA
}

// HasValidSHA returns true if CommitSHA looks like a full 40 characters hex commit ID. Branch with other SHA format is still valid and reported as is.
func (x *Branch) HasValidSHA() bool {
	return ptnValidCommitSHA.MatchString(string(x.CommitSHA))
}
