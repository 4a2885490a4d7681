package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtamigo/focus/internal/domain"
)

func TestClient_Prioritize(t *testing.T) {
	tasks := []*domain.Task{
		{ID: 1, Title: "Write report", Urgency: domain.UrgencySoon},
		{ID: 2, Title: "Pay rent", Urgency: domain.UrgencyNow},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req requestBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Tasks, 2)
		assert.Equal(t, "Write report", req.Tasks[0].Title)

		resp := responseBody{Ranked: []rankedPayload{
			{TaskID: 2, Rank: 1, Urgency: "now", Reason: "Due today"},
			{TaskID: 1, Rank: 2, Urgency: "soon", Reason: "Can wait until tomorrow"},
		}}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	client := New(srv.URL, "test-key")
	ranked, err := client.Prioritize(context.Background(), tasks)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, 2, ranked[0].TaskID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, domain.UrgencyNow, ranked[0].Urgency)
	assert.Equal(t, "Due today", ranked[0].Reason)
}

func TestClient_Prioritize_NoAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(responseBody{})
	}))
	defer srv.Close()

	client := New(srv.URL, "")
	ranked, err := client.Prioritize(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestClient_Prioritize_UnknownTaskID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := responseBody{Ranked: []rankedPayload{
			{TaskID: 99, Rank: 1},
		}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := New(srv.URL, "key")
	_, err := client.Prioritize(context.Background(), []*domain.Task{{ID: 1, Title: "Only task"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownTaskID)
}

func TestClient_Prioritize_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, "key")
	_, err := client.Prioritize(context.Background(), []*domain.Task{{ID: 1, Title: "Task"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestClient_Prioritize_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	client := New(srv.URL, "key")
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Prioritize(ctx, []*domain.Task{{ID: 1, Title: "Task"}})
	require.Error(t, err)
}
