package entity

import "strings"

// PullRequestOpen is the state of a pull request that has not been closed or
// merged.
const PullRequestOpen = "open"

// PullRequest is an open pull request along with the labels and reviews
// needed to decide how close it is to landing.
type PullRequest struct {
	Number  int
	Title   string
	Author  string
	HTMLURL string
	State   string
	Labels  []Label

	// Reviews in the order GitHub returned them, oldest first.
	Reviews []Review
}

// HasLabel reports whether the pull request carries a label with the given
// name. The comparison ignores case.
func (pr *PullRequest) HasLabel(name string) bool {
	for _, l := range pr.Labels {
		if l.Is(name) {
			return true
		}
	}
	return false
}

// Label is a tag attached to a pull request.
type Label struct {
	Name string
}

// Is reports whether this label has the given name, ignoring case.
func (l Label) Is(name string) bool {
	return strings.ToUpper(l.Name) == strings.ToUpper(name)
}
