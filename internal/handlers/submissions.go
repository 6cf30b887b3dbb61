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

// All submissions share one hash, submissionId -> record. Status filtering
// happens in the handler; the store has no secondary index and does not need
// one at this scale.
const submissionsKey = "prompt-submissions"

type SubmissionHandler struct {
	store *store.Store
}

func NewSubmissionHandler(st *store.Store) *SubmissionHandler {
	return &SubmissionHandler{store: st}
}

// GetSubmissions lists submissions with the given status (default pending,
// for the review queue). Reads fail open to an empty list.
func (h *SubmissionHandler) GetSubmissions(c *gin.Context) {
	status := c.DefaultQuery("status", models.StatusPending)

	fields, err := h.store.GetHashAll(c.Request.Context(), submissionsKey)
	if err != nil {
		log.Warn().Err(err).Msg("submissions: read failed, serving empty list")
		c.JSON(http.StatusOK, []models.PromptSubmission{})
		return
	}

	submissions := make([]models.PromptSubmission, 0, len(fields))
	for id, raw := range fields {
		var submission models.PromptSubmission
		if err := json.Unmarshal([]byte(raw), &submission); err != nil {
			log.Warn().Err(err).Str("id", id).Msg("submissions: skipping undecodable record")
			continue
		}
		if submission.Status == status {
			submissions = append(submissions, submission)
		}
	}

	c.JSON(http.StatusOK, submissions)
}

// CreateSubmission validates and stores a new prompt submission as pending.
// Writes fail closed: a store failure is a hard 500, never a silent drop.
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var input models.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: title, description, content, category, author, email"})
		return
	}

	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"title", input.Title},
		{"description", input.Description},
		{"content", input.Content},
		{"category", input.Category},
		{"author", input.Author},
		{"email", input.Email},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: " + strings.Join(missing, ", ")})
		return
	}

	if !models.ValidCategories[input.Category] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category. Must be one of: marketing, sales, product-design, engineering, productivity"})
		return
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	submission := models.PromptSubmission{
		ID:            models.NewID("submission"),
		Title:         input.Title,
		Description:   input.Description,
		Content:       input.Content,
		Category:      input.Category,
		Tags:          tags,
		Author:        input.Author,
		Email:         input.Email,
		ExampleOutput: input.ExampleOutput,
		URLs:          input.URLs,
		Status:        models.StatusPending,
		SubmittedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	payload, err := json.Marshal(submission)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit prompt. Please try again."})
		return
	}

	if err := h.store.SetHashField(c.Request.Context(), submissionsKey, submission.ID, string(payload)); err != nil {
		log.Error().Err(err).Str("id", submission.ID).Msg("submissions: write failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit prompt. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Prompt submitted successfully! It will be reviewed by our team.",
		"id":      submission.ID,
	})
}
