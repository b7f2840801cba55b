// Package kanban implements the board engine: entities grouped into
// columns by their current stage, per-column WIP limits, and a two-state
// drag interaction whose only commit point is DragEnd. The engine holds
// no entity state of its own; cards are re-read from the source on every
// call, so the board always reflects the store.
package kanban

import (
	"github.com/huemot/atlas/pkg/types"
)

// Column is a board column. Columns are a view over a stage enumeration,
// not stored entities. WIPLimit zero means unlimited.
type Column struct {
	ID       string
	Title    string
	WIPLimit int
}

// Card is one entity rendered on the board. Column is the entity's
// current stage.
type Card struct {
	ID     string
	Title  string
	Column string
}

// CardSource supplies the current cards. Called on every read; results
// are never cached across calls.
type CardSource func() []Card

// MoveFunc commits a stage change for a card. It reports whether the
// entity was found; a false return means the card vanished between the
// drag start and the drop (deleted concurrently) and the gesture is
// dropped silently.
type MoveFunc func(cardID, toColumn string) bool

// Board groups cards into columns and translates drag gestures into
// stage-change intents. A Board is not safe for concurrent use; it
// belongs to a single interaction loop.
type Board struct {
	columns []Column
	cards   CardSource
	move    MoveFunc
	active  string // card id mid-drag; empty when idle
}

// New builds a board over the given columns, card source, and mover.
func New(columns []Column, cards CardSource, move MoveFunc) *Board {
	return &Board{columns: columns, cards: cards, move: move}
}

// Columns returns the board's columns in order.
func (b *Board) Columns() []Column { return b.columns }

// Cards returns the cards currently in the given column, recomputed from
// the source.
func (b *Board) Cards(columnID string) []Card {
	var out []Card
	for _, c := range b.cards() {
		if c.Column == columnID {
			out = append(out, c)
		}
	}
	return out
}

// WIPExceeded reports whether a column is at or over its WIP limit. A
// column without a limit is never exceeded. The check gates only the
// manual add affordance; drops are deliberately not gated, so a drag can
// push a column over its limit. Uniform enforcement is a product
// decision, not one this engine takes.
func (b *Board) WIPExceeded(columnID string) bool {
	for _, col := range b.columns {
		if col.ID == columnID {
			return col.WIPLimit > 0 && len(b.Cards(columnID)) >= col.WIPLimit
		}
	}
	return false
}

// CanAdd reports whether the manual add affordance is enabled for a
// column.
func (b *Board) CanAdd(columnID string) bool { return !b.WIPExceeded(columnID) }

// Dragging returns the card id currently mid-drag, if any.
func (b *Board) Dragging() (string, bool) { return b.active, b.active != "" }

// DragStart records the active card and moves the interaction to the
// dragging state. Starting a drag on an unknown card leaves the board
// idle.
func (b *Board) DragStart(cardID string) {
	b.active = ""
	for _, c := range b.cards() {
		if c.ID == cardID {
			b.active = cardID
			return
		}
	}
}

// Cancel ends the interaction with no state change: releasing outside
// any drop target and the escape gesture both land here.
func (b *Board) Cancel() { b.active = "" }

// DragEnd is the single commit point of the interaction. Dropping on a
// different column dispatches a stage change and reports whether one was
// committed. Dropping with no target, on an unknown column, or on the
// card's own column is a no-op; within-column position is not persisted.
// A card deleted mid-drag is dropped silently: the mover's not-found
// result is swallowed and the next render reflects the store.
func (b *Board) DragEnd(targetColumnID string) bool {
	active := b.active
	b.active = ""
	if active == "" || targetColumnID == "" || !b.knownColumn(targetColumnID) {
		return false
	}

	for _, c := range b.cards() {
		if c.ID != active {
			continue
		}
		if c.Column == targetColumnID {
			return false
		}
		return b.move(active, targetColumnID)
	}
	// Card gone between DragStart and DragEnd.
	return false
}

func (b *Board) knownColumn(id string) bool {
	for _, col := range b.columns {
		if col.ID == id {
			return true
		}
	}
	return false
}

// ApplicationColumns returns the recruiting board's columns, one per
// recruiting stage, with optional per-stage WIP limits.
func ApplicationColumns(wip map[types.ApplicationStage]int) []Column {
	cols := make([]Column, 0, len(types.ApplicationStages))
	for _, s := range types.ApplicationStages {
		cols = append(cols, Column{ID: string(s), Title: string(s), WIPLimit: wip[s]})
	}
	return cols
}

// OpportunityColumns returns the sales board's columns.
func OpportunityColumns(wip map[types.OpportunityStage]int) []Column {
	cols := make([]Column, 0, len(types.OpportunityStages))
	for _, s := range types.OpportunityStages {
		cols = append(cols, Column{ID: string(s), Title: string(s), WIPLimit: wip[s]})
	}
	return cols
}
