package models

// Submission moderation states. Submissions are written as pending and never
// modified by this service; moderation happens out of band.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// PromptSubmission is a community-submitted prompt awaiting review.
// ExampleOutput and URLs are omitted from the stored record when the
// submitter left them blank.
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

type CreateSubmissionRequest struct {
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
