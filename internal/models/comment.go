package models

// Comment is one entry in a prompt's comment list. Comments are immutable
// once stored; the list is kept newest-first.
type Comment struct {
	ID        string `json:"id"`
	PromptID  string `json:"promptId"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

type CreateCommentRequest struct {
	PromptID string `json:"promptId"`
	Author   string `json:"author"`
	Content  string `json:"content"`
}
