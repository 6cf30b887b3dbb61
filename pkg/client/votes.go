package client

import (
	"context"
	"fmt"
)

// Mark is what this user's ledger says about one prompt: upvoted, downvoted,
// or nothing. It is private local state; the server only ever sees the ±1
// steps it produced.
type Mark string

const (
	MarkNone Mark = ""
	MarkUp   Mark = "up"
	MarkDown Mark = "down"
)

// Direction is a vote button press.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// LoadVotes fetches the shared vote tally once for the session. The local
// mark ledger is loaded separately at construction and deliberately not
// reconciled against the server totals: if the ledger and the tally disagree
// (storage cleared on one device, not another) both are shown as-is.
func (c *Client) LoadVotes(ctx context.Context) error {
	var votes map[string]int
	if err := c.getJSON(ctx, "/api/votes", &votes); err != nil {
		return err
	}

	c.mu.Lock()
	c.votes = votes
	if c.votes == nil {
		c.votes = map[string]int{}
	}
	c.mu.Unlock()
	return nil
}

// VoteCount returns the cached shared total for a prompt, zero if unknown.
func (c *Client) VoteCount(promptID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.votes[promptID]
}

// UserMark returns this user's recorded vote direction for a prompt.
func (c *Client) UserMark(promptID string) Mark {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.marks[promptID]
}

// Vote applies one button press against the current mark:
//
//	none + up   -> up    (+1)        none + down -> down  (-1)
//	up   + up   -> none  (-1)        down + down -> none  (+1)
//	down + up   -> up    (+2)        up   + down -> down  (-2)
//
// The server only exposes single ±1 steps, so the ±2 switches are issued as
// two sequential calls: first retracting the old mark, then applying the new
// one. That pair is not atomic: if the second call fails the shared counter
// is left one step off from what any mark implies. On any error, including a
// ledger write failure, the in-memory mark and cached count are left exactly
// as they were, so memory never disagrees with the ledger on disk; recovery
// is a retry by the user.
func (c *Client) Vote(ctx context.Context, promptID string, dir Direction) error {
	c.mu.Lock()
	current := c.marks[promptID]
	c.mu.Unlock()

	var actions []string
	var next Mark

	switch dir {
	case Up:
		switch current {
		case MarkUp:
			actions = []string{actionDownvote}
			next = MarkNone
		case MarkDown:
			actions = []string{actionUpvote, actionUpvote}
			next = MarkUp
		default:
			actions = []string{actionUpvote}
			next = MarkUp
		}
	case Down:
		switch current {
		case MarkDown:
			actions = []string{actionUpvote}
			next = MarkNone
		case MarkUp:
			actions = []string{actionDownvote, actionDownvote}
			next = MarkDown
		default:
			actions = []string{actionDownvote}
			next = MarkDown
		}
	default:
		return fmt.Errorf("client: invalid vote direction %q", dir)
	}

	var last voteResponse
	for _, action := range actions {
		if err := c.postJSON(ctx, "/api/votes", voteRequest{PromptID: promptID, Action: action}, &last); err != nil {
			return err
		}
	}

	// Persist the new mark before touching in-memory state, so a failed
	// disk write cannot leave the session ahead of the ledger.
	c.mu.Lock()
	snapshot := make(map[string]Mark, len(c.marks)+1)
	for id, mark := range c.marks {
		snapshot[id] = mark
	}
	c.mu.Unlock()
	if next == MarkNone {
		delete(snapshot, promptID)
	} else {
		snapshot[promptID] = next
	}

	if err := c.ledger.SaveMarks(snapshot); err != nil {
		return err
	}

	c.mu.Lock()
	c.votes[promptID] = last.Votes
	if next == MarkNone {
		delete(c.marks, promptID)
	} else {
		c.marks[promptID] = next
	}
	c.mu.Unlock()

	return nil
}
