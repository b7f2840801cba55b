package main

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huemot/atlas/internal/rest"
	"github.com/huemot/atlas/pkg/types"
)

func TestParseEntityJSON(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T)
	}{
		{
			name: "candidate",
			check: func(t *testing.T) {
				got, err := parseEntityJSON(types.CollectionCandidates,
					[]byte(`{"name":"Ana Lee","email":"ana@example.com","skills":["Go"]}`))
				require.NoError(t, err)

				c, ok := got.(types.Candidate)
				require.True(t, ok)
				assert.Equal(t, "Ana Lee", c.Name)
				assert.Equal(t, []string{"Go"}, c.Skills)
			},
		},
		{
			name: "application carries its stage",
			check: func(t *testing.T) {
				got, err := parseEntityJSON(types.CollectionApplications,
					[]byte(`{"candidateId":"c1","jobId":"j1","stage":"Interview"}`))
				require.NoError(t, err)

				a, ok := got.(types.Application)
				require.True(t, ok)
				assert.Equal(t, "c1", a.CandidateID)
				assert.Equal(t, types.ApplicationStageInterview, a.Stage)
			},
		},
		{
			name: "unknown collection",
			check: func(t *testing.T) {
				_, err := parseEntityJSON("users", []byte(`{}`))
				assert.ErrorIs(t, err, types.ErrUnknownCollection)
			},
		},
		{
			name: "malformed json",
			check: func(t *testing.T) {
				_, err := parseEntityJSON(types.CollectionJobs, []byte(`{broken`))
				assert.ErrorIs(t, err, types.ErrInvalidData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) { tt.check(t) })
	}
}

func TestPatchKeys(t *testing.T) {
	keys, err := patchKeys([]byte(`{"name":"Ana","stage":"Hired"}`))
	require.NoError(t, err)
	assert.True(t, keys["name"])
	assert.True(t, keys["stage"])
	assert.False(t, keys["email"])

	_, err = patchKeys([]byte(`[1,2]`))
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: exitSuccess},
		{name: "bad input", err: types.ErrInvalidID, want: exitUserError},
		{name: "missing record", err: fmt.Errorf("%w: candidates/x", types.ErrNotFound), want: exitUserError},
		{name: "remote failure", err: fmt.Errorf("fetching: %w", &rest.HTTPError{Status: 502}), want: exitSysError},
		{name: "filesystem failure", err: &fs.PathError{Op: "open", Path: "snapshot.json", Err: fs.ErrPermission}, want: exitSysError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestParseWIP(t *testing.T) {
	t.Run("valid specs", func(t *testing.T) {
		wip, err := parseWIP([]string{"Interview=5", "Offer=2"}, types.ApplicationStages)
		require.NoError(t, err)
		assert.Equal(t, 5, wip[types.ApplicationStageInterview])
		assert.Equal(t, 2, wip[types.ApplicationStageOffer])
	})

	t.Run("unknown stage", func(t *testing.T) {
		_, err := parseWIP([]string{"Archived=5"}, types.ApplicationStages)
		assert.ErrorIs(t, err, types.ErrInvalidStage)
	})

	t.Run("malformed spec", func(t *testing.T) {
		_, err := parseWIP([]string{"Interview"}, types.ApplicationStages)
		assert.ErrorIs(t, err, types.ErrInvalidData)
	})

	t.Run("non-positive limit", func(t *testing.T) {
		_, err := parseWIP([]string{"Interview=0"}, types.ApplicationStages)
		assert.ErrorIs(t, err, types.ErrInvalidData)
	})
}
