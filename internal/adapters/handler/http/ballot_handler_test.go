package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickvote/ballot/internal/adapters/repository/memory"
	"github.com/quickvote/ballot/internal/core/domain"
	"github.com/quickvote/ballot/internal/core/services"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	service := services.NewBallotService(memory.NewBallotRepository())
	handler := NewHandler(NewBallotHandler(service))
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func createBallot(t *testing.T, server *httptest.Server) domain.Ballot {
	t.Helper()

	body, _ := json.Marshal(map[string]any{"title": "Team lunch"})
	resp, err := server.Client().Post(server.URL+"/api/ballots", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var ballot domain.Ballot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ballot))
	return ballot
}

func TestCreateAndGetBallot(t *testing.T) {
	server := newTestServer(t)
	ballot := createBallot(t, server)

	resp, err := server.Client().Get(fmt.Sprintf("%s/api/ballots/%s", server.URL, ballot.ID))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.Ballot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, ballot.ID, got.ID)
	require.Len(t, got.State.Options, 2)
	assert.Equal(t, "Option A", got.State.Options[0].Text)
}

func TestGetUnknownBallotReturns404(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.Client().Get(server.URL + "/api/ballots/b2f5ef81-5a7a-44a5-9683-6b0e35b6a3a8")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVoteFlow(t *testing.T) {
	server := newTestServer(t)
	ballot := createBallot(t, server)

	body, _ := json.Marshal(map[string]any{"option_id": 1})
	resp, err := server.Client().Post(
		fmt.Sprintf("%s/api/ballots/%s/votes", server.URL, ballot.ID), "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got domain.Ballot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, int64(1), got.State.TotalVotes)
	assert.Equal(t, int64(1), got.State.Options[0].Votes)
}

func TestVoteOnUnknownOptionReturns400(t *testing.T) {
	server := newTestServer(t)
	ballot := createBallot(t, server)

	body, _ := json.Marshal(map[string]any{"option_id": 999})
	resp, err := server.Client().Post(
		fmt.Sprintf("%s/api/ballots/%s/votes", server.URL, ballot.ID), "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAddOptionRejectsBlankText(t *testing.T) {
	server := newTestServer(t)
	ballot := createBallot(t, server)

	body, _ := json.Marshal(map[string]any{"text": "   "})
	resp, err := server.Client().Post(
		fmt.Sprintf("%s/api/ballots/%s/options", server.URL, ballot.ID), "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestResetAndResults(t *testing.T) {
	server := newTestServer(t)
	ballot := createBallot(t, server)

	voteBody, _ := json.Marshal(map[string]any{"option_id": 2})
	resp, err := server.Client().Post(
		fmt.Sprintf("%s/api/ballots/%s/votes", server.URL, ballot.ID), "application/json", bytes.NewReader(voteBody))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = server.Client().Get(fmt.Sprintf("%s/api/ballots/%s/results", server.URL, ballot.ID))
	require.NoError(t, err)
	var results []optionResultResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&results))
	resp.Body.Close()

	require.Len(t, results, 2)
	assert.Equal(t, 0.0, results[0].Ratio)
	assert.Equal(t, 1.0, results[1].Ratio)
	assert.Equal(t, 100.0, results[1].Percentage)

	resp, err = server.Client().Post(
		fmt.Sprintf("%s/api/ballots/%s/reset", server.URL, ballot.ID), "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.Ballot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, int64(0), got.State.TotalVotes)
	require.Len(t, got.State.Options, 2)
	assert.Equal(t, int64(0), got.State.Options[1].Votes)
}
