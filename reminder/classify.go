package reminder

import (
	"fmt"
	"strings"

	"github.com/abhinav/pull-reminder/entity"
)

// BlockedLabel marks a pull request that cannot land regardless of its
// reviews. Labels are matched without regard to case.
const BlockedLabel = "BLOCKED"

// Classifier turns pull requests into entries that can be sorted into
// buckets.
type Classifier struct {
	// Pull requests with titles containing any of these words are dropped.
	// Matching ignores case.
	IgnoreWords []string
}

// Ignored reports whether a pull request with the given title should be
// left out of the reminder entirely.
func (c *Classifier) Ignored(title string) bool {
	title = strings.ToLower(title)
	for _, w := range c.IgnoreWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" && strings.Contains(title, w) {
			return true
		}
	}
	return false
}

// Classify builds an entry for the given pull request. The second return
// value is false if the pull request was dropped because of its title.
func (c *Classifier) Classify(repo *entity.Repo, pr *entity.PullRequest) (*entity.Entry, bool) {
	if c.Ignored(pr.Title) {
		return nil, false
	}

	return &entity.Entry{
		Repo:        repo,
		PullRequest: pr,
		Text:        DisplayText(repo, pr),
		Blocked:     pr.HasLabel(BlockedLabel),
		Reviews:     TallyReviews(pr.Reviews),
	}, true
}

// TallyReviews counts reviewers by their latest verdict.
//
// Reviews must be in the order they were submitted. Comments are ignored
// entirely; they neither count nor replace an earlier verdict.
func TallyReviews(reviews []entity.Review) entity.ReviewTally {
	latest := make(map[string]entity.ReviewState)
	for _, r := range reviews {
		if r.State == entity.ReviewCommented {
			continue
		}
		latest[r.User] = r.State
	}

	var tally entity.ReviewTally
	for _, state := range latest {
		switch state {
		case entity.ReviewApproved:
			tally.Approved++
		case entity.ReviewChangesRequested:
			tally.ChangesRequested++
		case entity.ReviewPending:
			tally.Pending++
		}
	}
	return tally
}

// DisplayText renders a single line describing the pull request in Slack
// mrkdwn.
func DisplayText(repo *entity.Repo, pr *entity.PullRequest) string {
	return fmt.Sprintf(" » *[%v/%v]* <%v|%v - by %v>",
		repo.Owner, repo.Name, pr.HTMLURL, pr.Title, pr.Author)
}
