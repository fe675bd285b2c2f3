package entity

// Bucket is one of the mutually exclusive groups a pull request is sorted
// into.
type Bucket int

// Buckets in the order they appear in a reminder.
const (
	ReadyToMerge Bucket = iota
	WaitingForApprovals
	ChangesNeeded
	Blocked
)

// AllBuckets lists every bucket in display order.
var AllBuckets = []Bucket{ReadyToMerge, WaitingForApprovals, ChangesNeeded, Blocked}

// String returns the section title for the bucket.
func (b Bucket) String() string {
	switch b {
	case ReadyToMerge:
		return "Ready to Merge"
	case WaitingForApprovals:
		return "Waiting for Approvals"
	case ChangesNeeded:
		return "Changes Needed"
	case Blocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}

// Entry is a classified pull request.
type Entry struct {
	Repo        *Repo
	PullRequest *PullRequest

	// Single line describing the pull request, in chat markup.
	Text string

	Blocked bool
	Reviews ReviewTally
}

// Buckets holds entries grouped by bucket. Entries keep the order in which
// they were assigned.
type Buckets struct {
	ReadyToMerge        []*Entry
	WaitingForApprovals []*Entry
	ChangesNeeded       []*Entry
	Blocked             []*Entry
}

// Get returns the entries in the given bucket.
func (b *Buckets) Get(bucket Bucket) []*Entry {
	switch bucket {
	case ReadyToMerge:
		return b.ReadyToMerge
	case WaitingForApprovals:
		return b.WaitingForApprovals
	case ChangesNeeded:
		return b.ChangesNeeded
	case Blocked:
		return b.Blocked
	default:
		return nil
	}
}

// Add appends an entry to the given bucket.
func (b *Buckets) Add(bucket Bucket, e *Entry) {
	switch bucket {
	case ReadyToMerge:
		b.ReadyToMerge = append(b.ReadyToMerge, e)
	case WaitingForApprovals:
		b.WaitingForApprovals = append(b.WaitingForApprovals, e)
	case ChangesNeeded:
		b.ChangesNeeded = append(b.ChangesNeeded, e)
	case Blocked:
		b.Blocked = append(b.Blocked, e)
	}
}

// Len is the total number of entries across all buckets.
func (b *Buckets) Len() int {
	return len(b.ReadyToMerge) + len(b.WaitingForApprovals) +
		len(b.ChangesNeeded) + len(b.Blocked)
}
