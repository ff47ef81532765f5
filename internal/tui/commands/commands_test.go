package commands_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policychat/internal/api"
	"policychat/internal/session"
	"policychat/internal/tui"
	"policychat/internal/tui/commands"
)

func TestDoubleSubmitIssuesOneNetworkCall(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(api.QueryResponse{Answer: "answer"})
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL, 5, nil)
	sess := session.New(session.Options{})

	// Two rapid submits, the way a double Enter press arrives: only the
	// first produces a command, the second is rejected while busy.
	var pending []session.Submission
	for i := 0; i < 2; i++ {
		sub, err := sess.Submit("What is carbon pricing?")
		if err == nil {
			pending = append(pending, sub)
		}
	}
	require.Len(t, pending, 1)

	msg := commands.Query(client, pending[0])()
	result, ok := msg.(tui.QueryResultMsg)
	require.True(t, ok)
	sess.Resolve(result.Submission, result.Response, result.Err)

	assert.Equal(t, int64(1), calls.Load())
	assert.Len(t, sess.Messages(), 2, "one user and one assistant message")
	assert.False(t, sess.Busy())
}

func TestQueryCommandDeliversTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL, 5, nil)
	sess := session.New(session.Options{})

	sub, err := sess.Submit("asdf")
	require.NoError(t, err)

	msg := commands.Query(client, sub)()
	result, ok := msg.(tui.QueryResultMsg)
	require.True(t, ok)
	require.Error(t, result.Err)

	sess.Resolve(result.Submission, result.Response, result.Err)

	msgs := sess.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, session.ApologyMessage, msgs[1].Content)
	assert.Equal(t, session.ErrorBanner, sess.LastError())
	assert.Empty(t, sess.History())
}

func TestLoadStatusCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.IngestionStatus{Status: "ready", DocumentsProcessed: 4})
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL, 5, nil)
	msg := commands.LoadStatus(client)()

	result, ok := msg.(tui.StatusLoadedMsg)
	require.True(t, ok)
	require.NoError(t, result.Err)
	assert.Equal(t, "ready", result.Status.Status)
	assert.Equal(t, 4, result.Status.DocumentsProcessed)
}
