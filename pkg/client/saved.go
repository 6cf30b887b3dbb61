package client

// Saved prompts are a purely local bookmark list with no server counterpart,
// persisted the same way as the vote marks.

func (c *Client) IsSaved(promptID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range c.saved {
		if id == promptID {
			return true
		}
	}
	return false
}

// SavedIDs returns the bookmarked prompt IDs in insertion order.
func (c *Client) SavedIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.saved))
	copy(out, c.saved)
	return out
}

// ToggleSaved adds the prompt to the saved list, or removes it if present.
func (c *Client) ToggleSaved(promptID string) error {
	c.mu.Lock()
	found := false
	next := c.saved[:0:0]
	for _, id := range c.saved {
		if id == promptID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, promptID)
	}
	c.saved = next
	snapshot := make([]string, len(c.saved))
	copy(snapshot, c.saved)
	c.mu.Unlock()

	return c.ledger.SaveSaved(snapshot)
}

func (c *Client) ClearSaved() error {
	c.mu.Lock()
	c.saved = nil
	c.mu.Unlock()
	return c.ledger.SaveSaved([]string{})
}
