package service

import (
	"context"

	"github.com/abhinav/pull-reminder/entity"
)

// RemindRequest is a request to post a summary of the open pull requests of
// an organization.
type RemindRequest struct {
	Organization string

	// Optional allow-lists. Empty means everything is allowed. Matching
	// ignores case.
	Repositories []string
	Usernames    []string

	// Pull requests with titles containing any of these are left out.
	IgnoreWords []string

	// Number of approvals needed before a pull request is ready to merge.
	MinApprovals int

	// Chat channel the summary is posted to.
	Channel string

	// Maximum number of repositories fetched at the same time.
	Concurrency int

	// If set, nothing is posted when there are no open pull requests.
	SkipEmpty bool
}

// RemindResponse is the response of a Remind request.
type RemindResponse struct {
	Buckets *entity.Buckets

	// Whether a message was posted.
	Posted bool
}

// Reminder is the service that reminds a team about open pull requests.
type Reminder interface {
	// Fetches, classifies, and posts open pull requests.
	Remind(context.Context, *RemindRequest) (*RemindResponse, error)
}

//go:generate mockgen -package=servicetest -destination=servicetest/mocks.go github.com/abhinav/pull-reminder/service Reminder
