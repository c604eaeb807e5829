package model

// ReportBranchesInput is input of branch report. Account is passed to GitHub API as is after percent-encoding; invalid account is reported as ErrorReport, not validation error.
type ReportBranchesInput struct {
	Account string
}
