package reminder

import (
	"testing"

	"github.com/abhinav/pull-reminder/entity"

	"github.com/stretchr/testify/assert"
)

func TestBucketOf(t *testing.T) {
	tests := []struct {
		desc         string
		labels       []entity.Label
		reviews      []entity.Review
		minApprovals int
		want         entity.Bucket
	}{
		{
			desc: "changes requested beats approvals",
			reviews: []entity.Review{
				review("alice", entity.ReviewApproved),
				review("bob", entity.ReviewChangesRequested),
			},
			minApprovals: 1,
			want:         entity.ChangesNeeded,
		},
		{
			desc:    "blocked label dominates",
			labels:  []entity.Label{{Name: "BLOCKED"}},
			reviews: []entity.Review{review("alice", entity.ReviewApproved)},
			want:    entity.Blocked,
		},
		{
			desc:   "blocked label in any case dominates changes requested",
			labels: []entity.Label{{Name: "Blocked"}},
			reviews: []entity.Review{
				review("bob", entity.ReviewChangesRequested),
			},
			minApprovals: 1,
			want:         entity.Blocked,
		},
		{
			desc: "enough approvals",
			reviews: []entity.Review{
				review("alice", entity.ReviewApproved),
				review("bob", entity.ReviewApproved),
			},
			minApprovals: 2,
			want:         entity.ReadyToMerge,
		},
		{
			desc:         "no reviews meets a threshold of zero",
			minApprovals: 0,
			want:         entity.ReadyToMerge,
		},
		{
			desc:         "too few approvals",
			reviews:      []entity.Review{review("alice", entity.ReviewApproved)},
			minApprovals: 2,
			want:         entity.WaitingForApprovals,
		},
		{
			desc: "same reviewer approving twice counts once",
			reviews: []entity.Review{
				review("alice", entity.ReviewCommented),
				review("alice", entity.ReviewApproved),
				review("alice", entity.ReviewCommented),
				review("alice", entity.ReviewApproved),
			},
			minApprovals: 2,
			want:         entity.WaitingForApprovals,
		},
		{
			desc: "changes addressed",
			reviews: []entity.Review{
				review("alice", entity.ReviewChangesRequested),
				review("alice", entity.ReviewApproved),
			},
			minApprovals: 1,
			want:         entity.ReadyToMerge,
		},
	}

	var c Classifier
	repo := &entity.Repo{Owner: "acme", Name: "api"}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			e, ok := c.Classify(repo, &entity.PullRequest{
				Labels:  tt.labels,
				Reviews: tt.reviews,
			})
			if assert.True(t, ok) {
				assert.Equal(t, tt.want, BucketOf(e, tt.minApprovals))
			}
		})
	}
}

func TestAssignKeepsOrder(t *testing.T) {
	ready1 := &entity.Entry{Text: "ready1"}
	blocked := &entity.Entry{Text: "blocked", Blocked: true}
	waiting := &entity.Entry{Text: "waiting"}
	ready2 := &entity.Entry{Text: "ready2", Reviews: entity.ReviewTally{Approved: 3}}
	changes := &entity.Entry{Text: "changes", Reviews: entity.ReviewTally{Approved: 1, ChangesRequested: 1}}
	ready1.Reviews.Approved = 1

	b := Assign([]*entity.Entry{ready1, blocked, waiting, ready2, changes}, 1)
	assert.Equal(t, []*entity.Entry{ready1, ready2}, b.ReadyToMerge)
	assert.Equal(t, []*entity.Entry{waiting}, b.WaitingForApprovals)
	assert.Equal(t, []*entity.Entry{changes}, b.ChangesNeeded)
	assert.Equal(t, []*entity.Entry{blocked}, b.Blocked)
	assert.Equal(t, 5, b.Len())
}

func TestAssignEmpty(t *testing.T) {
	b := Assign(nil, 0)
	assert.Equal(t, 0, b.Len())
}
