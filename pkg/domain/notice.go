package domain

// NoticeLevel classifies a user notification.
type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice is a modal message (title + body) shown to the user.
type Notice struct {
	Title string      `json:"title"`
	Body  string      `json:"body"`
	Level NoticeLevel `json:"level"`
}
