package memstore

import (
	"github.com/huemot/atlas/pkg/types"
)

// Stage transition engine. The invariant maintained here: an entity's
// current stage always equals the To of the last history entry, and the
// history only ever grows. Stage and history are assigned together inside
// one locked store mutation, so no reader can observe them out of step.

// CreateApplication creates an application with its single-entry creation
// history (a self-transition recording the initial stage). An empty stage
// defaults to New; an unknown stage is rejected.
func (s *Store) CreateApplication(app types.Application) (types.Application, error) {
	if app.Stage == "" {
		app.Stage = types.ApplicationStageNew
	}
	if !app.Stage.Valid() {
		return types.Application{}, types.ErrInvalidStage
	}
	app.StageHistory = types.InitialHistory(app.Stage, s.now().UTC())
	return Applications(s).Create(app)
}

// CreateOpportunity creates an opportunity with its creation history.
// An empty stage defaults to Prospect; an unknown stage is rejected.
func (s *Store) CreateOpportunity(opp types.Opportunity) (types.Opportunity, error) {
	if opp.Stage == "" {
		opp.Stage = types.OpportunityStageProspect
	}
	if !opp.Stage.Valid() {
		return types.Opportunity{}, types.ErrInvalidStage
	}
	opp.StageHistory = types.InitialHistory(opp.Stage, s.now().UTC())
	return Opportunities(s).Create(opp)
}

// MoveApplicationStage appends a history entry {from: current, to: to}
// and assigns the new stage in one atomic store mutation. Returns
// ok=false without mutation when the id is absent. Moving to the current
// stage still appends a from==to entry; self-transitions are not
// suppressed. An unknown target stage is rejected before lookup.
func (s *Store) MoveApplicationStage(id string, to types.ApplicationStage) (types.Application, bool, error) {
	if !to.Valid() {
		return types.Application{}, false, types.ErrInvalidStage
	}
	app, ok := Applications(s).Update(id, func(a *types.Application) {
		a.StageHistory = types.AppendChange(a.StageHistory, a.Stage, to, s.now().UTC())
		a.Stage = to
	})
	return app, ok, nil
}

// MoveOpportunityStage is MoveApplicationStage for the sales pipeline.
func (s *Store) MoveOpportunityStage(id string, to types.OpportunityStage) (types.Opportunity, bool, error) {
	if !to.Valid() {
		return types.Opportunity{}, false, types.ErrInvalidStage
	}
	opp, ok := Opportunities(s).Update(id, func(o *types.Opportunity) {
		o.StageHistory = types.AppendChange(o.StageHistory, o.Stage, to, s.now().UTC())
		o.Stage = to
	})
	return opp, ok, nil
}
