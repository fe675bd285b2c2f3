package gateway

import (
	"context"

	"github.com/abhinav/pull-reminder/entity"
)

// GitHub is a gateway that provides read-only access to the repositories of
// a GitHub organization.
type GitHub interface {
	// Lists all repositories owned by the given organization.
	ListRepositories(ctx context.Context, org string) ([]*entity.Repo, error)

	// Lists the open pull requests of a repository. Labels are populated but
	// reviews are not.
	ListOpenPullRequests(ctx context.Context, repo *entity.Repo) ([]*entity.PullRequest, error)

	// Lists reviews for a pull request, oldest first.
	ListPullRequestReviews(ctx context.Context, repo *entity.Repo, number int) ([]entity.Review, error)
}

//go:generate mockgen -package=gatewaytest -destination=gatewaytest/mocks.go github.com/abhinav/pull-reminder/gateway GitHub,Chat
