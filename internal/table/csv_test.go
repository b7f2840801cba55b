package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV(t *testing.T) {
	cols := personColumns()
	rows := samplePeople()

	t.Run("one header plus one line per row, no trailing newline", func(t *testing.T) {
		out := CSV(rows, cols)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, len(rows)+1)
		assert.Equal(t, "Name,Email,Years,Hired", lines[0])
		assert.False(t, strings.HasSuffix(out, "\n"))
	})

	t.Run("exports only the given columns", func(t *testing.T) {
		vis := Visible(cols, map[string]bool{"email": true, "hired": true})
		lines := strings.Split(CSV(rows, vis), "\n")
		assert.Equal(t, "Name,Years", lines[0])
		assert.Equal(t, "Carol Adams,9", lines[1])
	})

	t.Run("empty rows yields header only", func(t *testing.T) {
		out := CSV(nil, cols)
		assert.Equal(t, "Name,Email,Years,Hired", out)
	})

	t.Run("values containing commas are quoted", func(t *testing.T) {
		listCols := []Column[person]{
			{ID: "name", Header: "Name", Value: func(p person) any { return p.Name }},
			{ID: "skills", Header: "Skills", Value: func(p person) any { return []string{"Go", "SQL"} }},
		}
		lines := strings.Split(CSV(rows[:1], listCols), "\n")
		assert.Equal(t, `Carol Adams,"Go,SQL"`, lines[1])
	})

	t.Run("embedded quotes pass through unescaped", func(t *testing.T) {
		quoteCols := []Column[person]{
			{ID: "q", Header: "Q", Value: func(p person) any { return `say "hi", twice` }},
		}
		lines := strings.Split(CSV(rows[:1], quoteCols), "\n")
		assert.Equal(t, `"say "hi", twice"`, lines[1])
	})
}

func TestWriteCSV(t *testing.T) {
	cols := personColumns()
	rows := samplePeople()

	var b strings.Builder
	require.NoError(t, WriteCSV(&b, rows, cols))
	assert.Equal(t, CSV(rows, cols), b.String())
}
