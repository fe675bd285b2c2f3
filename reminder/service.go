package reminder

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhinav/pull-reminder/entity"
	"github.com/abhinav/pull-reminder/gateway"
	"github.com/abhinav/pull-reminder/service"

	"go.uber.org/zap"
)

// ServiceConfig specifies the different parameters for a reminder service.
type ServiceConfig struct {
	GitHub gateway.GitHub
	Chat   gateway.Chat
	Log    *zap.SugaredLogger
}

// Service is a reminder service.
type Service struct {
	gh   gateway.GitHub
	chat gateway.Chat
	log  *zap.SugaredLogger
}

var _ service.Reminder = (*Service)(nil)

// NewService builds a new reminder service with the given configuration.
func NewService(cfg ServiceConfig) *Service {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{gh: cfg.GitHub, chat: cfg.Chat, log: log}
}

// Remind fetches the open pull requests of an organization, sorts them into
// buckets, and posts a summary to chat.
func (s *Service) Remind(ctx context.Context, req *service.RemindRequest) (*service.RemindResponse, error) {
	if req.Organization == "" {
		return nil, errors.New("an organization is required")
	}
	if req.MinApprovals < 0 {
		return nil, fmt.Errorf(
			"minimum number of approvals must not be negative: %v", req.MinApprovals)
	}

	classifier := Classifier{IgnoreWords: req.IgnoreWords}
	fetcher := Fetcher{
		GitHub:      s.gh,
		Log:         s.log,
		Concurrency: req.Concurrency,
	}

	repos, err := fetcher.Fetch(ctx, &FetchRequest{
		Organization: req.Organization,
		Repositories: req.Repositories,
		Usernames:    req.Usernames,
		SkipTitle:    classifier.Ignored,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*entity.Entry, 0)
	for _, rp := range repos {
		for _, pr := range rp.PullRequests {
			if e, ok := classifier.Classify(rp.Repo, pr); ok {
				entries = append(entries, e)
			}
		}
	}

	buckets := Assign(entries, req.MinApprovals)
	for _, b := range entity.AllBuckets {
		for _, e := range buckets.Get(b) {
			s.log.Debugw("assigned pull request",
				"repo", e.Repo.String(),
				"number", e.PullRequest.Number,
				"author", e.PullRequest.Author,
				"bucket", b.String(),
			)
		}
	}

	s.log.Infow("classified open pull requests",
		"organization", req.Organization,
		"repositories", len(repos),
		"readyToMerge", len(buckets.ReadyToMerge),
		"waitingForApprovals", len(buckets.WaitingForApprovals),
		"changesNeeded", len(buckets.ChangesNeeded),
		"blocked", len(buckets.Blocked),
	)

	res := service.RemindResponse{Buckets: buckets}
	if buckets.Len() == 0 && req.SkipEmpty {
		s.log.Infow("no open pull requests, not posting", "channel", req.Channel)
		return &res, nil
	}

	if err := s.chat.PostMessage(ctx, req.Channel, FormatMessage(buckets)); err != nil {
		return nil, err
	}
	s.log.Infow("posted reminder", "channel", req.Channel)

	res.Posted = true
	return &res, nil
}
