package entity

// ReviewState indicates whether a pull request has been accepted or not.
type ReviewState string

const (
	// ReviewApproved indicates that a pull request was accepted.
	ReviewApproved ReviewState = "APPROVED"

	// ReviewChangesRequested indicates that changes were requested for a
	// pull request.
	ReviewChangesRequested ReviewState = "CHANGES_REQUESTED"

	// ReviewCommented indicates that someone commented on a pull request
	// without an explicit approval or changes-requested.
	ReviewCommented ReviewState = "COMMENTED"

	// ReviewPending is a review that was started but not yet submitted.
	ReviewPending ReviewState = "PENDING"

	// ReviewDismissed is an earlier verdict that was dismissed.
	ReviewDismissed ReviewState = "DISMISSED"
)

// Review is a review of a pull request.
type Review struct {
	// User who did the review.
	User string

	// Whether they approved or requested changes. States GitHub adds in
	// the future are carried through as-is.
	State ReviewState
}

// ReviewTally counts reviewers by their latest verdict. Each reviewer is
// counted at most once.
type ReviewTally struct {
	Approved         int
	ChangesRequested int
	Pending          int
}
