package model

// Submission is an article as a catalog source sees it: plain names, not yet resolved
// into graph entities.
type Submission struct {
	Author   string
	Magazine string
	Category string
	Title    string
}
