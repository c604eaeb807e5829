package types

import (
	"log/slog"
	"strings"
)

type (
	GitHubToken string
	BranchName  string
	CommitSHA   string
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

// Blank returns true if the token is absent or has only white spaces
func (x GitHubToken) Blank() bool {
	return strings.TrimSpace(string(x)) == ""
}
