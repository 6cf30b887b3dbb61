package client

// Wire types for the community API. These mirror the server's JSON shapes
// field for field; the client package defines its own copies so importers
// outside this module can name and construct them.

// Comment is one entry in a prompt's comment list, newest first.
type Comment struct {
	ID        string `json:"id"`
	PromptID  string `json:"promptId"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// PromptSubmission is a community-submitted prompt in the moderation queue.
type PromptSubmission struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Content       string   `json:"content"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Author        string   `json:"author"`
	Email         string   `json:"email"`
	ExampleOutput string   `json:"exampleOutput,omitempty"`
	URLs          []string `json:"urls,omitempty"`
	Status        string   `json:"status"`
	SubmittedAt   string   `json:"submittedAt"`
}

// NewSubmission is the payload for SubmitPrompt. Title, Description,
// Content, Category, Author and Email are required by the server.
type NewSubmission struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Content       string   `json:"content"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Author        string   `json:"author"`
	Email         string   `json:"email"`
	ExampleOutput string   `json:"exampleOutput"`
	URLs          []string `json:"urls"`
}

const (
	actionUpvote   = "upvote"
	actionDownvote = "downvote"
)

type voteRequest struct {
	PromptID string `json:"promptId"`
	Action   string `json:"action"`
}

type voteResponse struct {
	PromptID string `json:"promptId"`
	Votes    int    `json:"votes"`
}

type commentRequest struct {
	PromptID string `json:"promptId"`
	Author   string `json:"author"`
	Content  string `json:"content"`
}
