package reminder

import "github.com/abhinav/pull-reminder/entity"

// BucketOf decides which bucket an entry belongs in.
//
// Being blocked trumps everything else, and requested changes trump any
// number of approvals.
func BucketOf(e *entity.Entry, minApprovals int) entity.Bucket {
	switch {
	case e.Blocked:
		return entity.Blocked
	case e.Reviews.ChangesRequested > 0:
		return entity.ChangesNeeded
	case e.Reviews.Approved >= minApprovals:
		return entity.ReadyToMerge
	default:
		return entity.WaitingForApprovals
	}
}

// Assign sorts entries into buckets, keeping their relative order.
func Assign(entries []*entity.Entry, minApprovals int) *entity.Buckets {
	var b entity.Buckets
	for _, e := range entries {
		b.Add(BucketOf(e, minApprovals), e)
	}
	return &b
}
