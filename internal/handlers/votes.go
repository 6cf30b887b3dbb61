package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/promptdeck/backend/internal/models"
	"github.com/promptdeck/backend/internal/store"
)

// votesKey is the single shared hash of promptId -> vote count. A prompt
// nobody has voted on simply has no field and reads as zero.
const votesKey = "prompt-votes"

type VoteHandler struct {
	store *store.Store
}

func NewVoteHandler(st *store.Store) *VoteHandler {
	return &VoteHandler{store: st}
}

// GetVotes returns the full vote tally for all prompts. Reads fail open: if
// the store is unreachable the page degrades to zero votes rather than
// erroring, so this always responds 200.
func (h *VoteHandler) GetVotes(c *gin.Context) {
	fields, err := h.store.GetHashAll(c.Request.Context(), votesKey)
	if err != nil {
		log.Warn().Err(err).Msg("votes: read failed, serving empty tally")
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	votes := make(map[string]int, len(fields))
	for promptID, raw := range fields {
		n, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn().Str("promptId", promptID).Str("value", raw).Msg("votes: skipping non-integer tally field")
			continue
		}
		votes[promptID] = n
	}

	c.JSON(http.StatusOK, votes)
}

// PostVote applies a single +1/-1 step to a prompt's counter and returns the
// new total. This is read-then-write, not an atomic increment: two concurrent
// votes on the same prompt can race and lose an update. Accepted limitation
// of the current store contract; totals may also go negative.
func (h *VoteHandler) PostVote(c *gin.Context) {
	var input models.VoteRequest
	if err := c.ShouldBindJSON(&input); err != nil || input.PromptID == "" ||
		(input.Action != models.ActionUpvote && input.Action != models.ActionDownvote) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Required: promptId, action (upvote/downvote)"})
		return
	}

	ctx := c.Request.Context()

	current := 0
	raw, ok, err := h.store.GetHashField(ctx, votesKey, input.PromptID)
	if err != nil {
		log.Error().Err(err).Str("promptId", input.PromptID).Msg("votes: read before write failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vote"})
		return
	}
	if ok {
		if n, convErr := strconv.Atoi(raw); convErr == nil {
			current = n
		}
	}

	newVotes := current + 1
	if input.Action == models.ActionDownvote {
		newVotes = current - 1
	}

	if err := h.store.SetHashField(ctx, votesKey, input.PromptID, strconv.Itoa(newVotes)); err != nil {
		log.Error().Err(err).Str("promptId", input.PromptID).Msg("votes: write failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vote"})
		return
	}

	c.JSON(http.StatusOK, models.VoteResponse{PromptID: input.PromptID, Votes: newVotes})
}
