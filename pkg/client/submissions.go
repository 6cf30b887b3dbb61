package client

import (
	"context"
	"net/url"
)

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// SubmitPrompt sends a new prompt into the moderation queue and returns the
// assigned submission ID.
func (c *Client) SubmitPrompt(ctx context.Context, req NewSubmission) (string, error) {
	var resp submitResponse
	if err := c.postJSON(ctx, "/api/prompts", req, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// Submissions lists queued submissions by status; an empty status means
// pending, matching the server default.
func (c *Client) Submissions(ctx context.Context, status string) ([]PromptSubmission, error) {
	path := "/api/prompts"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	var submissions []PromptSubmission
	if err := c.getJSON(ctx, path, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}
