package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/promptdeck/backend/internal/handlers"
	"github.com/promptdeck/backend/internal/store"
)

// newTestRouter wires the real handlers against a miniredis-backed store,
// with the same routes the server registers.
func newTestRouter(t *testing.T) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	st, err := store.New("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	h := handlers.NewHandler(st)

	r := gin.New()
	r.GET("/health", h.Health.Health)
	api := r.Group("/api")
	api.GET("/votes", h.Vote.GetVotes)
	api.POST("/votes", h.Vote.PostVote)
	api.GET("/comments", h.Comment.GetComments)
	api.POST("/comments", h.Comment.CreateComment)
	api.GET("/comments/counts", h.Comment.GetCounts)
	api.GET("/prompts", h.Submission.GetSubmissions)
	api.POST("/prompts", h.Submission.CreateSubmission)

	return r, mr
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}
