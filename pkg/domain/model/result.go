package model

type RunResult int

const (
	RunSucceeded RunResult = iota
	RunEmpty
	RunFailed
)

func (x RunResult) String() string {
	switch x {
	case RunSucceeded:
		return "success-with-output"
	case RunEmpty:
		return "success-empty"
	case RunFailed:
		return "failure"
	default:
		return "unknown"
	}
}

// Code returns result code of the run. Empty repository list is still success.
func (x RunResult) Code() int {
	if x == RunFailed {
		return -1
	}
	return 0
}
