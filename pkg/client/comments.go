package client

import (
	"context"
	"net/url"
)

// LoadCommentCounts fetches the aggregate comment counts once for the
// session. The cache is only ever adjusted locally after a successful post;
// it may drift from server truth while other users comment, and that is only
// corrected by RefetchCommentCounts or a fresh session.
func (c *Client) LoadCommentCounts(ctx context.Context) error {
	var counts map[string]int
	if err := c.getJSON(ctx, "/api/comments/counts", &counts); err != nil {
		return err
	}

	c.mu.Lock()
	c.counts = counts
	if c.counts == nil {
		c.counts = map[string]int{}
	}
	c.mu.Unlock()
	return nil
}

// RefetchCommentCounts is a full refresh of the count cache.
func (c *Client) RefetchCommentCounts(ctx context.Context) error {
	return c.LoadCommentCounts(ctx)
}

// CommentCount returns the cached count for a prompt, zero if unknown.
func (c *Client) CommentCount(promptID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[promptID]
}

// Comments fetches the full comment list for a prompt, newest first.
func (c *Client) Comments(ctx context.Context, promptID string) ([]Comment, error) {
	var comments []Comment
	if err := c.getJSON(ctx, "/api/comments?promptId="+url.QueryEscape(promptID), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// PostComment creates a comment and, on success, bumps the cached count for
// that prompt by one instead of refetching.
func (c *Client) PostComment(ctx context.Context, promptID, author, content string) (Comment, error) {
	var comment Comment
	err := c.postJSON(ctx, "/api/comments", commentRequest{
		PromptID: promptID,
		Author:   author,
		Content:  content,
	}, &comment)
	if err != nil {
		return Comment{}, err
	}

	c.mu.Lock()
	c.counts[promptID]++
	c.mu.Unlock()

	return comment, nil
}
