package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepoString(t *testing.T) {
	assert.Equal(t, "", (&Repo{}).String())
	assert.Equal(t, "foo/bar", (&Repo{Owner: "foo", Name: "bar"}).String())
}

func TestPullRequestHasLabel(t *testing.T) {
	tests := []struct {
		give []Label
		want bool
	}{
		{give: nil, want: false},
		{give: []Label{{Name: "bug"}}, want: false},
		{give: []Label{{Name: "BLOCKED"}}, want: true},
		{give: []Label{{Name: "bug"}, {Name: "Blocked"}}, want: true},
		{give: []Label{{Name: "blocked-by-infra"}}, want: false},
	}

	for _, tt := range tests {
		pr := PullRequest{Labels: tt.give}
		assert.Equal(t, tt.want, pr.HasLabel("BLOCKED"), "labels: %v", tt.give)
	}
}

func TestBuckets(t *testing.T) {
	var b Buckets
	a, c := &Entry{Text: "a"}, &Entry{Text: "c"}
	b.Add(Blocked, a)
	b.Add(ReadyToMerge, c)
	b.Add(Blocked, c)

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []*Entry{a, c}, b.Get(Blocked))
	assert.Equal(t, []*Entry{c}, b.Get(ReadyToMerge))
	assert.Empty(t, b.Get(ChangesNeeded))

	var titles []string
	for _, bucket := range AllBuckets {
		titles = append(titles, bucket.String())
	}
	assert.Equal(t, []string{
		"Ready to Merge", "Waiting for Approvals", "Changes Needed", "Blocked",
	}, titles)
}
