package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huemot/atlas/pkg/types"
)

func TestCreateApplication(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, s *Store)
	}{
		{
			name: "empty stage defaults to New with one history entry",
			check: func(t *testing.T, s *Store) {
				app, err := s.CreateApplication(types.Application{CandidateID: "c1", JobID: "j1"})
				require.NoError(t, err)

				assert.Equal(t, types.ApplicationStageNew, app.Stage)
				require.Len(t, app.StageHistory, 1)
				assert.Equal(t, types.ApplicationStageNew, app.StageHistory[0].From)
				assert.Equal(t, types.ApplicationStageNew, app.StageHistory[0].To)
			},
		},
		{
			name: "explicit stage is recorded as the initial entry",
			check: func(t *testing.T, s *Store) {
				app, err := s.CreateApplication(types.Application{Stage: types.ApplicationStageInterview})
				require.NoError(t, err)

				assert.Equal(t, types.ApplicationStageInterview, app.Stage)
				require.Len(t, app.StageHistory, 1)
				assert.Equal(t, types.ApplicationStageInterview, app.StageHistory[0].To)
			},
		},
		{
			name: "unknown stage is rejected",
			check: func(t *testing.T, s *Store) {
				before := len(Applications(s).List())
				_, err := s.CreateApplication(types.Application{Stage: "Archived"})
				assert.ErrorIs(t, err, types.ErrInvalidStage)
				assert.Len(t, Applications(s).List(), before)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, newTestStore(t))
		})
	}
}

func TestMoveApplicationStage(t *testing.T) {
	s := newTestStore(t)

	cand, err := Candidates(s).Create(types.Candidate{Name: "Ana Lee", Email: "ana@example.com"})
	require.NoError(t, err)
	app, err := s.CreateApplication(types.Application{CandidateID: cand.ID})
	require.NoError(t, err)

	moved, ok, err := s.MoveApplicationStage(app.ID, types.ApplicationStageScreening)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, types.ApplicationStageScreening, moved.Stage)
	require.Len(t, moved.StageHistory, 2)
	assert.Equal(t, types.ApplicationStageNew, moved.StageHistory[1].From)
	assert.Equal(t, types.ApplicationStageScreening, moved.StageHistory[1].To)
	assert.True(t, moved.StageHistory[1].At.After(moved.StageHistory[0].At))

	// The stored record matches what the move returned.
	got, found := Applications(s).Get(app.ID)
	require.True(t, found)
	assert.Equal(t, moved, got)
}

func TestMoveApplicationStageChain(t *testing.T) {
	s := newTestStore(t)
	app, err := s.CreateApplication(types.Application{})
	require.NoError(t, err)

	path := []types.ApplicationStage{
		types.ApplicationStageScreening,
		types.ApplicationStageInterview,
		types.ApplicationStageOffer,
		types.ApplicationStageHired,
	}
	for _, to := range path {
		_, ok, err := s.MoveApplicationStage(app.ID, to)
		require.NoError(t, err)
		require.True(t, ok)
	}

	got, found := Applications(s).Get(app.ID)
	require.True(t, found)
	assert.Equal(t, types.ApplicationStageHired, got.Stage)
	require.Len(t, got.StageHistory, len(path)+1)

	// Each entry's From equals the previous entry's To.
	for i := 1; i < len(got.StageHistory); i++ {
		assert.Equal(t, got.StageHistory[i-1].To, got.StageHistory[i].From)
	}
	assert.Equal(t, got.Stage, got.StageHistory[len(got.StageHistory)-1].To)
}

func TestMoveApplicationStageSelfTransition(t *testing.T) {
	s := newTestStore(t)
	app, err := s.CreateApplication(types.Application{Stage: types.ApplicationStageOffer})
	require.NoError(t, err)

	moved, ok, err := s.MoveApplicationStage(app.ID, types.ApplicationStageOffer)
	require.NoError(t, err)
	require.True(t, ok)

	require.Len(t, moved.StageHistory, 2)
	assert.Equal(t, moved.StageHistory[1].From, moved.StageHistory[1].To)
	assert.Equal(t, types.ApplicationStageOffer, moved.Stage)
}

func TestMoveApplicationStageErrors(t *testing.T) {
	s := newTestStore(t)
	app, err := s.CreateApplication(types.Application{})
	require.NoError(t, err)

	t.Run("invalid target stage", func(t *testing.T) {
		_, _, err := s.MoveApplicationStage(app.ID, "Archived")
		assert.ErrorIs(t, err, types.ErrInvalidStage)

		got, ok := Applications(s).Get(app.ID)
		require.True(t, ok)
		assert.Len(t, got.StageHistory, 1)
	})

	t.Run("missing id", func(t *testing.T) {
		_, ok, err := s.MoveApplicationStage("no-such-id", types.ApplicationStageScreening)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMoveOpportunityStage(t *testing.T) {
	s := newTestStore(t)

	opp, err := s.CreateOpportunity(types.Opportunity{Title: "Q2 2024 Deal", Value: 120000})
	require.NoError(t, err)
	assert.Equal(t, types.OpportunityStageProspect, opp.Stage)
	require.Len(t, opp.StageHistory, 1)

	moved, ok, err := s.MoveOpportunityStage(opp.ID, types.OpportunityStageWon)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, types.OpportunityStageWon, moved.Stage)
	require.Len(t, moved.StageHistory, 2)
	assert.Equal(t, types.OpportunityStageProspect, moved.StageHistory[1].From)
	assert.Equal(t, types.OpportunityStageWon, moved.StageHistory[1].To)
}
