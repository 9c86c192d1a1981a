package request_models

type PostMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

type AskAssistantRequest struct {
	Question string `json:"question" binding:"required"`
}

type IndexDocRequest struct {
	DocID   string   `json:"doc_id" binding:"required"`
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

type SetPreviewTierRequest struct {
	Tier string `json:"tier" binding:"required"`
}
