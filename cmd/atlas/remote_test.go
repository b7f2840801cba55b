package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huemot/atlas/internal/rest"
	"github.com/huemot/atlas/pkg/types"
)

// useRemoteConfig points the CLI at a fake remote backend for the test.
func useRemoteConfig(t *testing.T, baseURL string) {
	t.Helper()
	prev := appConfig
	v := viper.New()
	v.Set(cfgKeyBackend, backendRest)
	v.Set(cfgKeyAPIBase, baseURL)
	appConfig = v
	t.Cleanup(func() { appConfig = prev })
}

// newFakeAPI serves canned JSON bodies keyed by "METHOD /path". Anything
// else gets a 404.
func newFakeAPI(t *testing.T, payloads map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := payloads[r.Method+" "+r.URL.Path]
		if !ok {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testCommand(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func TestGetRecordRemote(t *testing.T) {
	srv := newFakeAPI(t, map[string]string{
		"GET /candidates": `[{"id":"c1","name":"Ana Lee","email":"ana@x.com"},
			{"id":"c2","name":"Bo Chen","email":"bo@x.com"}]`,
	})
	c := rest.New(srv.URL)

	t.Run("found", func(t *testing.T) {
		got, ok, err := getRecordRemote(context.Background(), c, types.CollectionCandidates, "c2")
		require.NoError(t, err)
		require.True(t, ok)
		cand, isCand := got.(types.Candidate)
		require.True(t, isCand)
		assert.Equal(t, "Bo Chen", cand.Name)
	})

	t.Run("missing id", func(t *testing.T) {
		_, ok, err := getRecordRemote(context.Background(), c, types.CollectionCandidates, "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown collection", func(t *testing.T) {
		_, _, err := getRecordRemote(context.Background(), c, "users", "c1")
		assert.ErrorIs(t, err, types.ErrUnknownCollection)
	})

	t.Run("server failure", func(t *testing.T) {
		_, _, err := getRecordRemote(context.Background(), c, types.CollectionJobs, "j1")
		var httpErr *rest.HTTPError
		assert.ErrorAs(t, err, &httpErr)
	})
}

func TestRemoteSnapshot(t *testing.T) {
	payloads := make(map[string]string, len(types.Collections))
	for _, name := range types.Collections {
		payloads["GET /"+name] = `[]`
	}
	payloads["GET /jobs"] = `[{"id":"j1","title":"Go Engineer"}]`
	payloads["GET /candidates"] = `[{"id":"c1","name":"Ana Lee"}]`
	srv := newFakeAPI(t, payloads)

	snap, err := remoteSnapshot(context.Background(), rest.New(srv.URL))
	require.NoError(t, err)
	require.Len(t, snap.Jobs, 1)
	assert.Equal(t, "Go Engineer", snap.Jobs[0].Title)
	require.Len(t, snap.Candidates, 1)
	assert.Empty(t, snap.Applications)
	assert.Empty(t, snap.Activities)
}

func TestCurrentSnapshotUsesRemote(t *testing.T) {
	payloads := make(map[string]string, len(types.Collections))
	for _, name := range types.Collections {
		payloads["GET /"+name] = `[]`
	}
	payloads["GET /opportunities"] = `[{"id":"o1","title":"Acme renewal","stage":"Qualified"}]`
	srv := newFakeAPI(t, payloads)
	useRemoteConfig(t, srv.URL)

	snap, err := currentSnapshot(testCommand(t))
	require.NoError(t, err)
	require.Len(t, snap.Opportunities, 1)
	assert.Equal(t, types.OpportunityStageQualified, snap.Opportunities[0].Stage)
}

func TestDuplicateCandidatesRemote(t *testing.T) {
	srv := newFakeAPI(t, map[string]string{
		"GET /candidates": `[{"id":"c1","name":"Ana Lee","email":"ana@x.com"},
			{"id":"c2","name":"Ana L.","email":"Ana@X.com"},
			{"id":"c3","name":"Third Ana","email":"ana@x.com"}]`,
	})
	useRemoteConfig(t, srv.URL)

	matches, err := duplicateCandidates(testCommand(t), "ana@x.com")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "c1", matches[0].ID)
	assert.Equal(t, "c3", matches[1].ID)
}

func TestRemoteApplicationBoard(t *testing.T) {
	var moved []string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /candidates", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":"c1","name":"Ana Lee"}]`)
	})
	mux.HandleFunc("GET /applications", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":"a1","candidateId":"c1","stage":"New"},
			{"id":"a2","candidateId":"ghost","stage":"Interview"}]`)
	})
	mux.HandleFunc("POST /applications/{id}/move", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id != "a1" {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		moved = append(moved, id+"->"+body["toStage"])
		fmt.Fprint(w, `{"id":"a1","candidateId":"c1","stage":"Interview"}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	board, err := remoteApplicationBoard(context.Background(), rest.New(srv.URL), nil)
	require.NoError(t, err)

	cards := board.Cards(string(types.ApplicationStageNew))
	require.Len(t, cards, 1)
	assert.Equal(t, "Ana Lee", cards[0].Title)
	ghosts := board.Cards(string(types.ApplicationStageInterview))
	require.Len(t, ghosts, 1)
	assert.Equal(t, "Unknown candidate", ghosts[0].Title)

	board.DragStart("a1")
	assert.True(t, board.DragEnd(string(types.ApplicationStageInterview)))
	assert.Equal(t, []string{"a1->Interview"}, moved)

	// A drop the server rejects stays uncommitted.
	board.DragStart("a2")
	assert.False(t, board.DragEnd(string(types.ApplicationStageOffer)))
	assert.Len(t, moved, 1)
}

func TestRemoteOpportunityBoard(t *testing.T) {
	srv := newFakeAPI(t, map[string]string{
		"GET /opportunities": `[{"id":"o1","title":"Acme renewal","stage":"Qualified"}]`,
	})

	board, err := remoteOpportunityBoard(context.Background(), rest.New(srv.URL), nil)
	require.NoError(t, err)
	cards := board.Cards(string(types.OpportunityStageQualified))
	require.Len(t, cards, 1)
	assert.Equal(t, "Acme renewal", cards[0].Title)
}

func TestRequireLocal(t *testing.T) {
	t.Run("memory backend passes", func(t *testing.T) {
		prev := appConfig
		appConfig = viper.New()
		t.Cleanup(func() { appConfig = prev })
		assert.NoError(t, requireLocal("reset"))
	})

	t.Run("rest backend refuses", func(t *testing.T) {
		useRemoteConfig(t, "http://example.invalid")
		err := requireLocal("snapshot import")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "snapshot import")
	})
}
