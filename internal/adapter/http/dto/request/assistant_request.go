package request

// AssistantRequest is a natural-language analytics question.
type AssistantRequest struct {
	Question string `json:"question" binding:"required"`
}
