package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/promptdeck/backend/internal/models"
	"github.com/promptdeck/backend/internal/store"
)

// Each prompt's comments live in their own list under comments:{promptId},
// newest-first. commentKeyPattern drives the counts enumeration.
const (
	commentKeyPrefix  = "comments:"
	commentKeyPattern = "comments:*"
)

type CommentHandler struct {
	store *store.Store
}

func NewCommentHandler(st *store.Store) *CommentHandler {
	return &CommentHandler{store: st}
}

// GetComments returns all comments for a prompt, newest first. A missing
// promptId is a caller mistake (400); a store failure is not, and fails open
// to an empty list so the page stays renderable.
func (h *CommentHandler) GetComments(c *gin.Context) {
	promptID := c.Query("promptId")
	if promptID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "promptId is required"})
		return
	}

	entries, err := h.store.GetListRange(c.Request.Context(), commentKeyPrefix+promptID, 0, -1)
	if err != nil {
		log.Warn().Err(err).Str("promptId", promptID).Msg("comments: read failed, serving empty list")
		c.JSON(http.StatusOK, []models.Comment{})
		return
	}

	comments := make([]models.Comment, 0, len(entries))
	for _, entry := range entries {
		var comment models.Comment
		if err := json.Unmarshal([]byte(entry), &comment); err != nil {
			// One corrupt entry should not hide the rest of the list.
			log.Warn().Err(err).Str("promptId", promptID).Msg("comments: skipping undecodable entry")
			continue
		}
		comments = append(comments, comment)
	}

	c.JSON(http.StatusOK, comments)
}

// CreateComment validates and appends a new comment. Author and content are
// trimmed first, so whitespace-only values are rejected like missing ones.
// Writes fail closed: if the push fails the comment did not happen and the
// caller gets a 500.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var input models.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: promptId, author, content"})
		return
	}

	input.Author = strings.TrimSpace(input.Author)
	input.Content = strings.TrimSpace(input.Content)
	if input.PromptID == "" || input.Author == "" || input.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: promptId, author, content"})
		return
	}

	comment := models.Comment{
		ID:        models.NewID("comment"),
		PromptID:  input.PromptID,
		Author:    input.Author,
		Content:   input.Content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	payload, err := json.Marshal(comment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	if err := h.store.PushListHead(c.Request.Context(), commentKeyPrefix+comment.PromptID, string(payload)); err != nil {
		log.Error().Err(err).Str("promptId", comment.PromptID).Msg("comments: write failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusOK, comment)
}

// GetCounts reports the comment-list length for every prompt with at least
// one comment. O(number of such prompts), which is fine at this catalog's
// scale. Fails open to an empty mapping on any store error.
func (h *CommentHandler) GetCounts(c *gin.Context) {
	ctx := c.Request.Context()

	keys, err := h.store.EnumerateKeys(ctx, commentKeyPattern)
	if err != nil {
		log.Warn().Err(err).Msg("comments: count enumeration failed, serving empty counts")
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	counts := make(map[string]int64, len(keys))
	for _, key := range keys {
		n, err := h.store.GetListLength(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("comments: count read failed, serving empty counts")
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		counts[strings.TrimPrefix(key, commentKeyPrefix)] = n
	}

	c.JSON(http.StatusOK, counts)
}
