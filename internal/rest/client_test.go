package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huemot/atlas/pkg/types"
)

func TestClientHeaders(t *testing.T) {
	var got http.Header
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", WithToken("secret-token"))
	_, err := NewResource[types.Candidate](c, types.CollectionCandidates).List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/candidates", gotPath)
	assert.Equal(t, "Bearer secret-token", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Accept"))
}

func TestClientWithoutToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := NewResource[types.Candidate](c, types.CollectionCandidates).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, auth)
}

func TestDecodeEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bare array", `[{"id":"c1","name":"Ana Lee"}]`},
		{"data envelope", `{"data":[{"id":"c1","name":"Ana Lee"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(srv.URL)
			got, err := NewResource[types.Candidate](c, types.CollectionCandidates).List(context.Background())
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "c1", got[0].ID)
			assert.Equal(t, "Ana Lee", got[0].Name)
		})
	}
}

func TestHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"json message field", http.StatusNotFound, `{"message":"candidate not found"}`, "candidate not found"},
		{"json error field", http.StatusUnauthorized, `{"error":"bad token"}`, "bad token"},
		{"plain text body", http.StatusBadGateway, "upstream down", "upstream down"},
		{"empty body keeps status text", http.StatusInternalServerError, "", "500 Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(srv.URL)
			_, err := NewResource[types.Candidate](c, types.CollectionCandidates).List(context.Background())

			var httpErr *HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.status, httpErr.Status)
			assert.Equal(t, tt.wantMessage, httpErr.Message)
			assert.Contains(t, httpErr.URL, "/candidates")
		})
	}
}

func TestResourceCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ana Lee", body["name"])

		w.Write([]byte(`{"data":{"id":"c1","name":"Ana Lee"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	got, err := NewResource[types.Candidate](c, types.CollectionCandidates).
		Create(context.Background(), map[string]any{"name": "Ana Lee"})
	require.NoError(t, err)
	assert.Equal(t, "c1", got.ID)
}

func TestResourceUpdateAndDelete(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Write([]byte(`{"id":"c1","name":"Renamed"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	res := NewResource[types.Candidate](c, types.CollectionCandidates)

	got, err := res.Update(context.Background(), "c1", map[string]any{"name": "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)

	require.NoError(t, res.Delete(context.Background(), "c1"))
	assert.Equal(t, []string{"PUT /candidates/c1", "DELETE /candidates/c1"}, paths)
}

func TestResourceMove(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/applications/a1/move", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Screening", body["toStage"])

		w.Write([]byte(`{"id":"a1","stage":"Screening"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	got, err := NewResource[types.Application](c, types.CollectionApplications).
		Move(context.Background(), "a1", "Screening")
	require.NoError(t, err)
	assert.Equal(t, types.ApplicationStageScreening, got.Stage)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.Write([]byte(`{"ok":true,"ts":"2024-03-01T09:00:00Z"}`))
	}))
	defer srv.Close()

	h, err := New(srv.URL).Ping(context.Background())
	require.NoError(t, err)
	assert.True(t, h.OK)
	assert.Equal(t, "2024-03-01T09:00:00Z", h.TS)
}
