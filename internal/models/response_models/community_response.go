package response_models

type ChatMessageResponse struct {
	ID           string  `json:"id"`
	AccountID    string  `json:"account_id"`
	AuthorName   string  `json:"author_name,omitempty"`
	AuthorAvatar *string `json:"author_avatar,omitempty"`
	Body         string  `json:"body"`
	Pinned       bool    `json:"pinned"`
	PostedAt     int64   `json:"posted_at"`
}

type AssistantReply struct {
	Answer string `json:"answer"`
}

type AssistantMessageResponse struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	PostedAt int64  `json:"posted_at"`
}

type CheckInResponse struct {
	ID         string   `json:"id"`
	AccountID  string   `json:"account_id"`
	WeekNumber int      `json:"week_number"`
	Notes      string   `json:"notes,omitempty"`
	WeightKg   *float64 `json:"weight_kg,omitempty"`
	PostedAt   int64    `json:"posted_at"`
}

type FeedbackResponse struct {
	ID       string `json:"id"`
	Comment  string `json:"comment"`
	Rating   int    `json:"rating"`
	PostedAt int64  `json:"posted_at"`
}
