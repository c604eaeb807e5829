package model

import "net/http"

// ErrorReport is a classified failure shown to user. Field order of JSON encoding is fixed as status then message.
type ErrorReport struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func NewErrorReport(status int, message string) *ErrorReport {
	return &ErrorReport{
		Status:  status,
		Message: message,
	}
}

func InvalidUsername(account string) *ErrorReport {
	return NewErrorReport(http.StatusBadRequest, "Invalid username: "+account)
}

func InvalidRepositoryName(name string) *ErrorReport {
	return NewErrorReport(http.StatusBadRequest, "Invalid repository name: "+name)
}

func UserNotFound() *ErrorReport {
	return NewErrorReport(http.StatusNotFound, "GitHub user not found")
}

func FailedToFetchRepositories(status int) *ErrorReport {
	return NewErrorReport(status, "Failed to fetch user repositories")
}
