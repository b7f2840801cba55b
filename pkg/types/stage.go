package types

import "time"

// Stage constrains the per-pipeline stage enumerations. Each pipeline
// (recruiting, sales) has its own string-based stage type.
type Stage interface {
	~string
}

// StageChange is one entry in an entity's append-only stage history.
// The first entry of every history is a self-transition (From == To)
// recording the initial stage; it marks creation, not a transition.
type StageChange[S Stage] struct {
	From S         `json:"from"`
	To   S         `json:"to"`
	At   time.Time `json:"at"`
}

// ApplicationStage is a recruiting pipeline stage.
type ApplicationStage string

// Recruiting pipeline stages. An application may move from any stage to
// any other; the business process does not constrain ordering.
const (
	ApplicationStageNew       ApplicationStage = "New"
	ApplicationStageScreening ApplicationStage = "Screening"
	ApplicationStageInterview ApplicationStage = "Interview"
	ApplicationStageOffer     ApplicationStage = "Offer"
	ApplicationStageHired     ApplicationStage = "Hired"
	ApplicationStageRejected  ApplicationStage = "Rejected"
)

// ApplicationStages lists the recruiting stages in board order.
var ApplicationStages = []ApplicationStage{
	ApplicationStageNew,
	ApplicationStageScreening,
	ApplicationStageInterview,
	ApplicationStageOffer,
	ApplicationStageHired,
	ApplicationStageRejected,
}

// Valid reports whether s is a recognized recruiting stage.
func (s ApplicationStage) Valid() bool {
	for _, known := range ApplicationStages {
		if s == known {
			return true
		}
	}
	return false
}

// OpportunityStage is a sales pipeline stage.
type OpportunityStage string

// Sales pipeline stages.
const (
	OpportunityStageProspect  OpportunityStage = "Prospect"
	OpportunityStageQualified OpportunityStage = "Qualified"
	OpportunityStageWon       OpportunityStage = "Won"
	OpportunityStageLost      OpportunityStage = "Lost"
)

// OpportunityStages lists the sales stages in board order.
var OpportunityStages = []OpportunityStage{
	OpportunityStageProspect,
	OpportunityStageQualified,
	OpportunityStageWon,
	OpportunityStageLost,
}

// Valid reports whether s is a recognized sales stage.
func (s OpportunityStage) Valid() bool {
	for _, known := range OpportunityStages {
		if s == known {
			return true
		}
	}
	return false
}

// InitialHistory builds the single-entry creation history for a
// stage-bearing entity: a self-transition recording the initial stage.
func InitialHistory[S Stage](stage S, at time.Time) []StageChange[S] {
	return []StageChange[S]{{From: stage, To: stage, At: at}}
}

// AppendChange returns a new history value with a transition from the
// current stage appended. The input slice is never mutated; every
// transition produces a fresh history assigned atomically with the new
// stage. Self-transitions (from == to) are recorded, not suppressed.
func AppendChange[S Stage](history []StageChange[S], from, to S, at time.Time) []StageChange[S] {
	next := make([]StageChange[S], len(history), len(history)+1)
	copy(next, history)
	return append(next, StageChange[S]{From: from, To: to, At: at})
}
