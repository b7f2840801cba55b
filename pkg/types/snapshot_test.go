package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotClone(t *testing.T) {
	orig := Snapshot{
		Candidates: []Candidate{
			{Meta: Meta{ID: "c1"}, Name: "Ana Lee", Skills: []string{"go", "sql"}, Tags: []string{"referral"}},
		},
		Applications: []Application{
			{
				Meta:         Meta{ID: "a1"},
				CandidateID:  "c1",
				Stage:        ApplicationStageNew,
				StageHistory: []StageChange[ApplicationStage]{{From: ApplicationStageNew, To: ApplicationStageNew}},
			},
		},
		Interviews: []Interview{
			{Meta: Meta{ID: "i1"}, ApplicationID: "a1", Panel: []string{"dev1", "dev2"}},
		},
	}

	clone := orig.Clone()
	require.Equal(t, orig, clone)

	t.Run("top-level slices are independent", func(t *testing.T) {
		clone.Candidates[0].Name = "Changed"
		assert.Equal(t, "Ana Lee", orig.Candidates[0].Name)
	})

	t.Run("inner slices are independent", func(t *testing.T) {
		clone.Candidates[0].Skills[0] = "rust"
		assert.Equal(t, "go", orig.Candidates[0].Skills[0])

		clone.Applications[0].StageHistory[0].To = ApplicationStageHired
		assert.Equal(t, ApplicationStageNew, orig.Applications[0].StageHistory[0].To)

		clone.Interviews[0].Panel[1] = "dev3"
		assert.Equal(t, "dev2", orig.Interviews[0].Panel[1])
	})
}

func TestSnapshotMarshalNilCollections(t *testing.T) {
	raw, err := json.Marshal(Snapshot{
		Candidates: []Candidate{{Meta: Meta{ID: "c1"}, Name: "Ana Lee"}},
	})
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))

	// Every collection key is present and is an array, never null.
	for _, name := range Collections {
		require.Contains(t, doc, name)
		var rows []json.RawMessage
		require.NoError(t, json.Unmarshal(doc[name], &rows), "collection %s", name)
		if name == CollectionCandidates {
			assert.Len(t, rows, 1)
		} else {
			assert.Empty(t, rows)
			assert.Equal(t, "[]", string(doc[name]))
		}
	}
}

func TestKnownCollection(t *testing.T) {
	for _, name := range Collections {
		assert.True(t, KnownCollection(name), "collection %s", name)
	}
	assert.False(t, KnownCollection("users"))
	assert.False(t, KnownCollection(""))
	assert.False(t, KnownCollection("Jobs"))
}
