package entity

// Message is a chat message summarizing open pull requests.
type Message struct {
	Header   string
	Sections []*Section
}

// Section is a titled group of lines in a Message.
type Section struct {
	Title string
	Lines []string
}
