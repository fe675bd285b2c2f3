package reminder

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/abhinav/pull-reminder/entity"
	"github.com/abhinav/pull-reminder/gateway"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// FetchError is returned when pull requests could not be retrieved from
// GitHub. It names the organization or repository that failed; Err says
// which request did.
type FetchError struct {
	Organization string

	// Repository that failed, or nil if the repositories of the
	// organization could not be listed.
	Repo *entity.Repo

	Err error
}

func (e *FetchError) Error() string {
	if e.Repo == nil {
		return fmt.Sprintf("could not fetch %v: %v", e.Organization, e.Err)
	}
	return fmt.Sprintf("could not fetch %v: %v", e.Repo, e.Err)
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error { return e.Err }

// FetchRequest specifies which pull requests to fetch.
type FetchRequest struct {
	Organization string

	// If non-empty, only repositories with these names are considered.
	// Matching ignores case.
	Repositories []string

	// If non-empty, only pull requests authored by these users are
	// considered. Matching ignores case.
	Usernames []string

	// If set, pull requests with titles for which this returns true are
	// skipped before their reviews are fetched.
	SkipTitle func(title string) bool
}

// RepoPulls is a repository along with its open pull requests.
type RepoPulls struct {
	Repo         *entity.Repo
	PullRequests []*entity.PullRequest
}

// Fetcher retrieves open pull requests and their reviews for an
// organization.
type Fetcher struct {
	GitHub gateway.GitHub
	Log    *zap.SugaredLogger

	// Maximum number of repositories to fetch at the same time. Defaults to
	// one at a time.
	Concurrency int
}

// Fetch retrieves open pull requests from all matching repositories.
// Results are in the order GitHub lists the repositories regardless of
// Concurrency.
//
// Failing to fetch any one repository fails the whole fetch. Errors from
// repositories that were already in flight are collated and presented as
// one.
func (f *Fetcher) Fetch(ctx context.Context, req *FetchRequest) ([]*RepoPulls, error) {
	repos, err := f.GitHub.ListRepositories(ctx, req.Organization)
	if err != nil {
		return nil, &FetchError{Organization: req.Organization, Err: err}
	}

	allowed := newStringSet(req.Repositories)
	selected := make([]*entity.Repo, 0, len(repos))
	for _, r := range repos {
		if !allowed.Allows(r.Name) {
			f.log().Debugw("skipping repository", "repo", r.String())
			continue
		}
		selected = append(selected, r)
	}

	concurrency := f.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	p := fetchPool{
		fetcher:   f,
		req:       req,
		usernames: newStringSet(req.Usernames),
		tasks:     make(chan int, concurrency),
		results:   make([]*RepoPulls, len(selected)),
	}

	var wg sync.WaitGroup
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			p.Worker(ctx, selected)
		}()
	}

	for i := range selected {
		p.tasks <- i
	}
	close(p.tasks)
	wg.Wait()

	if err := multierr.Combine(p.errors...); err != nil {
		return nil, err
	}
	return p.results, nil
}

func (f *Fetcher) log() *zap.SugaredLogger {
	if f.Log == nil {
		return zap.NewNop().Sugar()
	}
	return f.Log
}

func (f *Fetcher) fetchRepo(ctx context.Context, req *FetchRequest, usernames stringSet, repo *entity.Repo) (*RepoPulls, error) {
	pulls, err := f.GitHub.ListOpenPullRequests(ctx, repo)
	if err != nil {
		return nil, err
	}

	result := RepoPulls{Repo: repo, PullRequests: make([]*entity.PullRequest, 0, len(pulls))}
	for _, pr := range pulls {
		if pr.State != entity.PullRequestOpen {
			continue
		}

		if !usernames.Allows(pr.Author) {
			f.log().Debugw("skipping pull request by other author",
				"repo", repo.String(), "number", pr.Number, "author", pr.Author)
			continue
		}

		if req.SkipTitle != nil && req.SkipTitle(pr.Title) {
			f.log().Debugw("skipping pull request with ignored title",
				"repo", repo.String(), "number", pr.Number, "title", pr.Title)
			continue
		}

		reviews, err := f.GitHub.ListPullRequestReviews(ctx, repo, pr.Number)
		if err != nil {
			return nil, err
		}
		pr.Reviews = reviews
		result.PullRequests = append(result.PullRequests, pr)
	}

	f.log().Debugw("fetched repository",
		"repo", repo.String(), "pullRequests", len(result.PullRequests))
	return &result, nil
}

// fetchPool fetches repositories on a fixed number of workers.
type fetchPool struct {
	fetcher   *Fetcher
	req       *FetchRequest
	usernames stringSet

	// Indexes into the list of repositories. Any worker can handle these.
	tasks chan int

	// Each worker writes only to the indexes it was handed.
	results []*RepoPulls

	// Errors encountered while processing.
	errorsMu sync.Mutex
	errors   []error
}

func (p *fetchPool) Worker(ctx context.Context, repos []*entity.Repo) {
	for i := range p.tasks {
		// Once anything has failed the run is lost. Drain the remaining
		// tasks without fetching them.
		if p.failed() {
			continue
		}

		repo := repos[i]
		res, err := p.fetch(ctx, repo)
		if err != nil {
			p.errorsMu.Lock()
			p.errors = append(p.errors, &FetchError{
				Organization: p.req.Organization,
				Repo:         repo,
				Err:          err,
			})
			p.errorsMu.Unlock()
			continue
		}
		p.results[i] = res
	}
}

func (p *fetchPool) fetch(ctx context.Context, repo *entity.Repo) (_ *RepoPulls, err error) {
	defer func() {
		if x := recover(); x != nil {
			if e, ok := x.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("panic: %v", x)
			}
		}
	}()

	return p.fetcher.fetchRepo(ctx, p.req, p.usernames, repo)
}

func (p *fetchPool) failed() bool {
	p.errorsMu.Lock()
	defer p.errorsMu.Unlock()
	return len(p.errors) > 0
}

// stringSet is a case-insensitive allow-list. An empty set allows
// everything.
type stringSet map[string]struct{}

func newStringSet(items []string) stringSet {
	s := make(stringSet, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			s[item] = struct{}{}
		}
	}
	return s
}

func (s stringSet) Allows(item string) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[strings.ToLower(item)]
	return ok
}
