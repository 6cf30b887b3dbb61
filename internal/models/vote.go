package models

// Vote actions accepted by the vote endpoint. Each one moves the shared
// counter a single step; the client composes them into toggles and switches.
const (
	ActionUpvote   = "upvote"
	ActionDownvote = "downvote"
)

type VoteRequest struct {
	PromptID string `json:"promptId"`
	Action   string `json:"action"`
}

type VoteResponse struct {
	PromptID string `json:"promptId"`
	Votes    int    `json:"votes"`
}
