// Package reports answers aggregate questions about a snapshot. It keeps
// the store's split of duties: the JSON snapshot stays the source of
// truth, SQLite is only the query engine. Every report loads the
// snapshot into an in-memory database, runs plain SQL, and throws the
// database away.
package reports

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/huemot/atlas/pkg/types"
)

const schemaSQL = `
CREATE TABLE applications (
    id      TEXT PRIMARY KEY,
    stage   TEXT NOT NULL,
    ordinal INTEGER NOT NULL
);
CREATE TABLE opportunities (
    id          TEXT PRIMARY KEY,
    stage       TEXT NOT NULL,
    ordinal     INTEGER NOT NULL,
    value       REAL NOT NULL,
    probability INTEGER NOT NULL
);
CREATE TABLE activities (
    id   TEXT PRIMARY KEY,
    type TEXT NOT NULL,
    done INTEGER NOT NULL
);
`

// StageCount is one row of the recruiting funnel report.
type StageCount struct {
	Stage string
	Count int
}

// PipelineValue is one row of the sales pipeline report. Weighted is the
// probability-weighted deal value.
type PipelineValue struct {
	Stage    string
	Count    int
	Value    float64
	Weighted float64
}

// ActivityLoad is one row of the activity report.
type ActivityLoad struct {
	Type  string
	Total int
	Done  int
}

// Summary is the full report over one snapshot. Rows come back in board
// order for the stage reports and alphabetical for activities.
type Summary struct {
	ApplicationsByStage []StageCount
	SalesPipeline       []PipelineValue
	Activities          []ActivityLoad
}

// Build loads the snapshot into an in-memory SQLite database and runs
// the report queries.
func Build(snap types.Snapshot) (*Summary, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening query engine: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		return nil, fmt.Errorf("creating report schema: %w", err)
	}
	if err := load(db, snap); err != nil {
		return nil, err
	}

	var sum Summary
	if sum.ApplicationsByStage, err = applicationsByStage(db); err != nil {
		return nil, err
	}
	if sum.SalesPipeline, err = salesPipeline(db); err != nil {
		return nil, err
	}
	if sum.Activities, err = activityLoad(db); err != nil {
		return nil, err
	}
	return &sum, nil
}

func load(db *sql.DB, snap types.Snapshot) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	appOrd := make(map[types.ApplicationStage]int, len(types.ApplicationStages))
	for i, s := range types.ApplicationStages {
		appOrd[s] = i
	}
	for _, a := range snap.Applications {
		if _, err := tx.Exec(
			"INSERT INTO applications (id, stage, ordinal) VALUES (?, ?, ?)",
			a.ID, string(a.Stage), appOrd[a.Stage],
		); err != nil {
			return fmt.Errorf("loading application %s: %w", a.ID, err)
		}
	}

	oppOrd := make(map[types.OpportunityStage]int, len(types.OpportunityStages))
	for i, s := range types.OpportunityStages {
		oppOrd[s] = i
	}
	for _, o := range snap.Opportunities {
		if _, err := tx.Exec(
			"INSERT INTO opportunities (id, stage, ordinal, value, probability) VALUES (?, ?, ?, ?, ?)",
			o.ID, string(o.Stage), oppOrd[o.Stage], o.Value, o.Probability,
		); err != nil {
			return fmt.Errorf("loading opportunity %s: %w", o.ID, err)
		}
	}

	for _, act := range snap.Activities {
		done := 0
		if act.DoneAt != "" {
			done = 1
		}
		if _, err := tx.Exec(
			"INSERT INTO activities (id, type, done) VALUES (?, ?, ?)",
			act.ID, act.Type, done,
		); err != nil {
			return fmt.Errorf("loading activity %s: %w", act.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

func applicationsByStage(db *sql.DB) ([]StageCount, error) {
	rows, err := db.Query(
		"SELECT stage, COUNT(*) FROM applications GROUP BY stage, ordinal ORDER BY ordinal",
	)
	if err != nil {
		return nil, fmt.Errorf("querying recruiting funnel: %w", err)
	}
	defer rows.Close()

	var out []StageCount
	for rows.Next() {
		var sc StageCount
		if err := rows.Scan(&sc.Stage, &sc.Count); err != nil {
			return nil, fmt.Errorf("scanning funnel row: %w", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

func salesPipeline(db *sql.DB) ([]PipelineValue, error) {
	rows, err := db.Query(
		`SELECT stage, COUNT(*), SUM(value), SUM(value * probability / 100.0)
		 FROM opportunities GROUP BY stage, ordinal ORDER BY ordinal`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying sales pipeline: %w", err)
	}
	defer rows.Close()

	var out []PipelineValue
	for rows.Next() {
		var pv PipelineValue
		if err := rows.Scan(&pv.Stage, &pv.Count, &pv.Value, &pv.Weighted); err != nil {
			return nil, fmt.Errorf("scanning pipeline row: %w", err)
		}
		out = append(out, pv)
	}
	return out, rows.Err()
}

func activityLoad(db *sql.DB) ([]ActivityLoad, error) {
	rows, err := db.Query(
		"SELECT type, COUNT(*), SUM(done) FROM activities GROUP BY type ORDER BY type",
	)
	if err != nil {
		return nil, fmt.Errorf("querying activity load: %w", err)
	}
	defer rows.Close()

	var out []ActivityLoad
	for rows.Next() {
		var al ActivityLoad
		if err := rows.Scan(&al.Type, &al.Total, &al.Done); err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		out = append(out, al)
	}
	return out, rows.Err()
}
