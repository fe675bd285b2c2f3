package github

import (
	"context"
	"fmt"

	"github.com/abhinav/pull-reminder/entity"
	"github.com/abhinav/pull-reminder/gateway"

	"github.com/google/go-github/v25/github"
)

// Number of items requested per page. GitHub caps this at 100.
const _perPage = 100

// repositoriesService is the GitHub Repositories client.
type repositoriesService interface {
	ListByOrg(
		ctx context.Context, org string, opt *github.RepositoryListByOrgOptions,
	) ([]*github.Repository, *github.Response, error)
}

var _ repositoriesService = (*github.RepositoriesService)(nil)

// pullRequestsService is the GitHub PullRequests client.
type pullRequestsService interface {
	List(
		ctx context.Context, owner string, repo string, opt *github.PullRequestListOptions,
	) ([]*github.PullRequest, *github.Response, error)

	ListReviews(
		ctx context.Context, owner, repo string, number int, opt *github.ListOptions,
	) ([]*github.PullRequestReview, *github.Response, error)
}

var _ pullRequestsService = (*github.PullRequestsService)(nil)

//go:generate mockgen -source=gateway.go -package=github -destination=mock_service_test.go -mock_names=repositoriesService=MockRepositoriesService,pullRequestsService=MockPullRequestsService

// Gateway is a GitHub gateway that makes actual requests to GitHub.
type Gateway struct {
	repos repositoriesService
	pulls pullRequestsService
}

var _ gateway.GitHub = (*Gateway)(nil)

// NewGateway builds a new GitHub gateway using the given client.
func NewGateway(client *github.Client) *Gateway {
	return &Gateway{
		repos: client.Repositories,
		pulls: client.PullRequests,
	}
}

// ListRepositories lists all repositories of the given organization.
func (g *Gateway) ListRepositories(ctx context.Context, org string) ([]*entity.Repo, error) {
	opt := github.RepositoryListByOrgOptions{
		ListOptions: github.ListOptions{PerPage: _perPage},
	}

	var repos []*entity.Repo
	for {
		page, res, err := g.repos.ListByOrg(ctx, org, &opt)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to list repositories: %v", err)
		}

		for _, r := range page {
			owner := r.GetOwner().GetLogin()
			if owner == "" {
				owner = org
			}
			repos = append(repos, &entity.Repo{Owner: owner, Name: r.GetName()})
		}

		if res == nil || res.NextPage == 0 {
			break
		}
		opt.Page = res.NextPage
	}
	return repos, nil
}

// ListOpenPullRequests lists the open pull requests of the given repository.
func (g *Gateway) ListOpenPullRequests(ctx context.Context, repo *entity.Repo) ([]*entity.PullRequest, error) {
	opt := github.PullRequestListOptions{
		State:       entity.PullRequestOpen,
		ListOptions: github.ListOptions{PerPage: _perPage},
	}

	var pulls []*entity.PullRequest
	for {
		page, res, err := g.pulls.List(ctx, repo.Owner, repo.Name, &opt)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to list pull requests: %v", err)
		}

		for _, pr := range page {
			pulls = append(pulls, pullRequest(pr))
		}

		if res == nil || res.NextPage == 0 {
			break
		}
		opt.Page = res.NextPage
	}
	return pulls, nil
}

// ListPullRequestReviews lists reviews for a pull request in the order in
// which they were submitted.
func (g *Gateway) ListPullRequestReviews(ctx context.Context, repo *entity.Repo, number int) ([]entity.Review, error) {
	opt := github.ListOptions{PerPage: _perPage}

	reviews := make([]entity.Review, 0)
	for {
		page, res, err := g.pulls.ListReviews(ctx, repo.Owner, repo.Name, number, &opt)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to list reviews of #%v: %v", number, err)
		}

		for _, r := range page {
			reviews = append(reviews, entity.Review{
				User:  r.GetUser().GetLogin(),
				State: entity.ReviewState(r.GetState()),
			})
		}

		if res == nil || res.NextPage == 0 {
			break
		}
		opt.Page = res.NextPage
	}
	return reviews, nil
}

func pullRequest(pr *github.PullRequest) *entity.PullRequest {
	labels := make([]entity.Label, 0, len(pr.Labels))
	for _, l := range pr.Labels {
		labels = append(labels, entity.Label{Name: l.GetName()})
	}

	return &entity.PullRequest{
		Number:  pr.GetNumber(),
		Title:   pr.GetTitle(),
		Author:  pr.GetUser().GetLogin(),
		HTMLURL: pr.GetHTMLURL(),
		State:   pr.GetState(),
		Labels:  labels,
	}
}
