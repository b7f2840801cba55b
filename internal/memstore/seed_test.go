package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedReferentialIntegrity(t *testing.T) {
	snap := Seed()

	candidateIDs := make(map[string]bool)
	for _, c := range snap.Candidates {
		candidateIDs[c.ID] = true
	}
	jobIDs := make(map[string]bool)
	for _, j := range snap.Jobs {
		jobIDs[j.ID] = true
	}
	accountIDs := make(map[string]bool)
	for _, a := range snap.Accounts {
		accountIDs[a.ID] = true
	}

	for _, app := range snap.Applications {
		assert.True(t, candidateIDs[app.CandidateID], "application %s candidate", app.ID)
		assert.True(t, jobIDs[app.JobID], "application %s job", app.ID)
		require.Len(t, app.StageHistory, 1)
		assert.Equal(t, app.Stage, app.StageHistory[0].To)
	}
	for _, c := range snap.Contacts {
		assert.True(t, accountIDs[c.AccountID], "contact %s account", c.ID)
	}
	for _, o := range snap.Opportunities {
		assert.True(t, accountIDs[o.AccountID], "opportunity %s account", o.ID)
		require.Len(t, o.StageHistory, 1)
		assert.Equal(t, o.Stage, o.StageHistory[0].To)
	}
	for _, act := range snap.Activities {
		assert.True(t, candidateIDs[act.EntityID], "activity %s entity", act.ID)
	}
}

func TestSeedIsDeterministicExceptIDs(t *testing.T) {
	a, b := Seed(), Seed()

	require.Len(t, b.Candidates, len(a.Candidates))
	for i := range a.Candidates {
		assert.Equal(t, a.Candidates[i].Name, b.Candidates[i].Name)
		assert.Equal(t, a.Candidates[i].Email, b.Candidates[i].Email)
		assert.NotEqual(t, a.Candidates[i].ID, b.Candidates[i].ID)
	}

	require.Len(t, b.Opportunities, len(a.Opportunities))
	for i := range a.Opportunities {
		assert.Equal(t, a.Opportunities[i].Value, b.Opportunities[i].Value)
		assert.Equal(t, a.Opportunities[i].Stage, b.Opportunities[i].Stage)
	}
}

func TestSeedIDsAreUnique(t *testing.T) {
	snap := Seed()
	seen := make(map[string]bool)
	record := func(id string) {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	for _, j := range snap.Jobs {
		record(j.ID)
	}
	for _, c := range snap.Candidates {
		record(c.ID)
	}
	for _, a := range snap.Applications {
		record(a.ID)
	}
	for _, a := range snap.Accounts {
		record(a.ID)
	}
	for _, c := range snap.Contacts {
		record(c.ID)
	}
	for _, o := range snap.Opportunities {
		record(o.ID)
	}
	for _, a := range snap.Activities {
		record(a.ID)
	}
}
