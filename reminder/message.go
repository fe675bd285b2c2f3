package reminder

import "github.com/abhinav/pull-reminder/entity"

// MessageHeader heads every reminder.
const MessageHeader = "Open Pull Requests Waiting for Merge"

// FormatMessage builds the reminder message. Each non-empty bucket gets its
// own section, in the order given by entity.AllBuckets.
func FormatMessage(b *entity.Buckets) *entity.Message {
	msg := entity.Message{Header: MessageHeader}
	for _, bucket := range entity.AllBuckets {
		entries := b.Get(bucket)
		if len(entries) == 0 {
			continue
		}

		lines := make([]string, len(entries))
		for i, e := range entries {
			lines[i] = e.Text
		}
		msg.Sections = append(msg.Sections, &entity.Section{
			Title: bucket.String(),
			Lines: lines,
		})
	}
	return &msg
}
