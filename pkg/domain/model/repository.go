package model

// Repository is a repository owned by GitHub account. Only fields used by branch report are kept.
type Repository struct {
	Name       string
	Fork       bool
	OwnerLogin string
}
