package handlers

import (
	"github.com/promptdeck/backend/internal/store"
)

// Handler bundles all resource handlers behind a single constructor so the
// server only wires one thing.
type Handler struct {
	Vote       *VoteHandler
	Comment    *CommentHandler
	Submission *SubmissionHandler
	Health     *HealthHandler
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{
		Vote:       NewVoteHandler(st),
		Comment:    NewCommentHandler(st),
		Submission: NewSubmissionHandler(st),
		Health:     NewHealthHandler(st),
	}
}
