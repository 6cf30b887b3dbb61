package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptdeck/backend/internal/models"
)

func TestGetComments_MissingPromptID(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := doRequest(r, http.MethodGet, "/api/comments", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "promptId is required")
}

func TestGetComments_EmptyList(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := doRequest(r, http.MethodGet, "/api/comments?promptId=prompt-1", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetComments_FailsOpenWhenStoreDown(t *testing.T) {
	r, mr := newTestRouter(t)
	mr.Close()

	rr := doRequest(r, http.MethodGet, "/api/comments?promptId=prompt-1", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetComments_SkipsCorruptEntries(t *testing.T) {
	r, mr := newTestRouter(t)
	good, err := json.Marshal(models.Comment{ID: "c1", PromptID: "prompt-1", Author: "ada", Content: "hi"})
	require.NoError(t, err)
	_, err = mr.Lpush("comments:prompt-1", string(good))
	require.NoError(t, err)
	_, err = mr.Lpush("comments:prompt-1", "{not json")
	require.NoError(t, err)

	rr := doRequest(r, http.MethodGet, "/api/comments?promptId=prompt-1", "")

	var comments []models.Comment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "c1", comments[0].ID)
}

func TestCreateComment_StoresAndReturns(t *testing.T) {
	r, mr := newTestRouter(t)

	rr := doRequest(r, http.MethodPost, "/api/comments",
		`{"promptId":"prompt-1","author":"  ada  ","content":"  nice prompt  "}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	var comment models.Comment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comment))
	assert.True(t, strings.HasPrefix(comment.ID, "comment-"))
	assert.Equal(t, "prompt-1", comment.PromptID)
	assert.Equal(t, "ada", comment.Author)
	assert.Equal(t, "nice prompt", comment.Content)

	_, err := time.Parse(time.RFC3339, comment.CreatedAt)
	assert.NoError(t, err)

	entries, err := mr.List("comments:prompt-1")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreateComment_NewestFirst(t *testing.T) {
	r, _ := newTestRouter(t)

	doRequest(r, http.MethodPost, "/api/comments", `{"promptId":"prompt-1","author":"ada","content":"first"}`)
	doRequest(r, http.MethodPost, "/api/comments", `{"promptId":"prompt-1","author":"bob","content":"second"}`)

	rr := doRequest(r, http.MethodGet, "/api/comments?promptId=prompt-1", "")

	var comments []models.Comment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comments))
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Content)
	assert.Equal(t, "first", comments[1].Content)
}

func TestCreateComment_WhitespaceOnlyRejected(t *testing.T) {
	r, mr := newTestRouter(t)

	for _, body := range []string{
		`{"promptId":"prompt-1","author":"   ","content":"hello"}`,
		`{"promptId":"prompt-1","author":"ada","content":"  \t "}`,
		`{"author":"ada","content":"hello"}`,
	} {
		rr := doRequest(r, http.MethodPost, "/api/comments", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}

	// No list mutation happened.
	assert.False(t, mr.Exists("comments:prompt-1"))
}

func TestCreateComment_FailsClosedWhenStoreDown(t *testing.T) {
	r, mr := newTestRouter(t)
	mr.Close()

	rr := doRequest(r, http.MethodPost, "/api/comments", `{"promptId":"prompt-1","author":"ada","content":"hi"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetCounts_EmptyStore(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := doRequest(r, http.MethodGet, "/api/comments/counts", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{}`, rr.Body.String())
}

func TestGetCounts_ReportsListLengths(t *testing.T) {
	r, mr := newTestRouter(t)
	for _, content := range []string{"a", "b"} {
		_, err := mr.Lpush("comments:prompt-1", content)
		require.NoError(t, err)
	}
	_, err := mr.Lpush("comments:prompt-2", "c")
	require.NoError(t, err)
	mr.HSet("prompt-votes", "prompt-1", "3") // outside the comments namespace

	rr := doRequest(r, http.MethodGet, "/api/comments/counts", "")

	var counts map[string]int
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &counts))
	assert.Equal(t, map[string]int{"prompt-1": 2, "prompt-2": 1}, counts)
}

func TestGetCounts_FailsOpenWhenStoreDown(t *testing.T) {
	r, mr := newTestRouter(t)
	mr.Close()

	rr := doRequest(r, http.MethodGet, "/api/comments/counts", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{}`, rr.Body.String())
}
