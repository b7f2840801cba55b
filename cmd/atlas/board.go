// Board command: render the recruiting or sales pipeline as a kanban
// board, optionally committing a drag gesture.
package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/huemot/atlas/internal/kanban"
	"github.com/huemot/atlas/internal/memstore"
	"github.com/huemot/atlas/internal/rest"
	"github.com/huemot/atlas/pkg/types"
)

var (
	boardWIP  []string
	boardMove string
)

var boardCmd = &cobra.Command{
	Use:   "board <applications|opportunities>",
	Short: "Show a pipeline as a kanban board",
	Long: `Board groups pipeline entities into columns by their current
stage. --wip sets a per-column limit; a column at or over its limit
reports WIP and disables manual adds, but moves into it still succeed.
--move commits a card move the way a drag-and-drop would: the drop is
the single commit point, and a card that no longer exists is dropped
silently.

Example:
  atlas board applications
  atlas board applications --wip Interview=5
  atlas board opportunities --move 0190c3f2-...=Won`,
	Args: cobra.ExactArgs(1),
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().StringSliceVar(&boardWIP, "wip", nil, "per-column WIP limit as Stage=N")
	boardCmd.Flags().StringVar(&boardMove, "move", "", "move a card as <id>=<stage>")
}

func runBoard(cmd *cobra.Command, args []string) error {
	board, err := buildBoard(cmd, args[0])
	if err != nil {
		return err
	}

	if boardMove != "" {
		id, stage, ok := strings.Cut(boardMove, "=")
		if !ok {
			return fmt.Errorf("%w: --move wants <id>=<stage>", types.ErrInvalidData)
		}
		board.DragStart(id)
		if board.DragEnd(stage) {
			fmt.Printf("moved %s to %s\n\n", id, stage)
		}
	}

	for _, col := range board.Columns() {
		cards := board.Cards(col.ID)
		header := fmt.Sprintf("%s (%d", col.Title, len(cards))
		if col.WIPLimit > 0 {
			header += fmt.Sprintf("/%d", col.WIPLimit)
		}
		header += ")"
		if board.WIPExceeded(col.ID) {
			header += " [WIP]"
		}
		fmt.Println(header)
		for _, card := range cards {
			fmt.Printf("  %s  %s\n", card.ID, card.Title)
		}
		fmt.Println()
	}
	return nil
}

// buildBoard constructs the requested board over the configured backend.
func buildBoard(cmd *cobra.Command, pipeline string) (*kanban.Board, error) {
	switch pipeline {
	case types.CollectionApplications:
		wip, err := parseWIP(boardWIP, types.ApplicationStages)
		if err != nil {
			return nil, err
		}
		if remoteEnabled() {
			c, err := newRemote()
			if err != nil {
				return nil, err
			}
			return remoteApplicationBoard(cmd.Context(), c, wip)
		}
		s, err := openStore()
		if err != nil {
			return nil, err
		}
		return applicationBoard(s, wip), nil
	case types.CollectionOpportunities:
		wip, err := parseWIP(boardWIP, types.OpportunityStages)
		if err != nil {
			return nil, err
		}
		if remoteEnabled() {
			c, err := newRemote()
			if err != nil {
				return nil, err
			}
			return remoteOpportunityBoard(cmd.Context(), c, wip)
		}
		s, err := openStore()
		if err != nil {
			return nil, err
		}
		return opportunityBoard(s, wip), nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: %s, %s)", types.ErrInvalidData,
			pipeline, types.CollectionApplications, types.CollectionOpportunities)
	}
}

// applicationBoard builds the recruiting board. Card titles show the
// candidate's name; an application whose candidate was deleted renders
// as unknown rather than breaking the board.
func applicationBoard(s *memstore.Store, wip map[types.ApplicationStage]int) *kanban.Board {
	cards := func() []kanban.Card {
		names := make(map[string]string)
		for _, c := range memstore.Candidates(s).List() {
			names[c.ID] = c.Name
		}
		var out []kanban.Card
		for _, app := range memstore.Applications(s).List() {
			title, ok := names[app.CandidateID]
			if !ok {
				title = "Unknown candidate"
			}
			out = append(out, kanban.Card{ID: app.ID, Title: title, Column: string(app.Stage)})
		}
		return out
	}
	move := func(id, toColumn string) bool {
		_, ok, err := s.MoveApplicationStage(id, types.ApplicationStage(toColumn))
		return err == nil && ok
	}
	return kanban.New(kanban.ApplicationColumns(wip), cards, move)
}

// opportunityBoard builds the sales board with deal titles on the cards.
func opportunityBoard(s *memstore.Store, wip map[types.OpportunityStage]int) *kanban.Board {
	cards := func() []kanban.Card {
		var out []kanban.Card
		for _, opp := range memstore.Opportunities(s).List() {
			out = append(out, kanban.Card{ID: opp.ID, Title: opp.Title, Column: string(opp.Stage)})
		}
		return out
	}
	move := func(id, toColumn string) bool {
		_, ok, err := s.MoveOpportunityStage(id, types.OpportunityStage(toColumn))
		return err == nil && ok
	}
	return kanban.New(kanban.OpportunityColumns(wip), cards, move)
}

// remoteApplicationBoard builds the recruiting board from the remote API.
// The upfront fetch surfaces transport errors before anything renders;
// the card source then re-lists on each read so a committed move shows
// up, falling back to the last fetch when the server is unreachable.
func remoteApplicationBoard(ctx context.Context, c *rest.Client, wip map[types.ApplicationStage]int) (*kanban.Board, error) {
	cands, err := remoteList[types.Candidate](ctx, c, types.CollectionCandidates)
	if err != nil {
		return nil, err
	}
	apps, err := remoteList[types.Application](ctx, c, types.CollectionApplications)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(cands))
	for _, cand := range cands {
		names[cand.ID] = cand.Name
	}
	cards := func() []kanban.Card {
		if rows, err := remoteList[types.Application](ctx, c, types.CollectionApplications); err == nil {
			apps = rows
		}
		var out []kanban.Card
		for _, app := range apps {
			title, ok := names[app.CandidateID]
			if !ok {
				title = "Unknown candidate"
			}
			out = append(out, kanban.Card{ID: app.ID, Title: title, Column: string(app.Stage)})
		}
		return out
	}
	res := rest.NewResource[types.Application](c, types.CollectionApplications)
	move := func(id, toColumn string) bool {
		_, err := res.Move(ctx, id, toColumn)
		return err == nil
	}
	return kanban.New(kanban.ApplicationColumns(wip), cards, move), nil
}

// remoteOpportunityBoard builds the sales board from the remote API.
func remoteOpportunityBoard(ctx context.Context, c *rest.Client, wip map[types.OpportunityStage]int) (*kanban.Board, error) {
	opps, err := remoteList[types.Opportunity](ctx, c, types.CollectionOpportunities)
	if err != nil {
		return nil, err
	}
	cards := func() []kanban.Card {
		if rows, err := remoteList[types.Opportunity](ctx, c, types.CollectionOpportunities); err == nil {
			opps = rows
		}
		var out []kanban.Card
		for _, opp := range opps {
			out = append(out, kanban.Card{ID: opp.ID, Title: opp.Title, Column: string(opp.Stage)})
		}
		return out
	}
	res := rest.NewResource[types.Opportunity](c, types.CollectionOpportunities)
	move := func(id, toColumn string) bool {
		_, err := res.Move(ctx, id, toColumn)
		return err == nil
	}
	return kanban.New(kanban.OpportunityColumns(wip), cards, move), nil
}

// parseWIP parses repeated Stage=N flag values against a stage enumeration.
func parseWIP[S types.Stage](specs []string, known []S) (map[S]int, error) {
	wip := make(map[S]int)
	for _, spec := range specs {
		name, val, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("%w: --wip wants Stage=N, got %q", types.ErrInvalidData, spec)
		}
		var stage S
		found := false
		for _, s := range known {
			if string(s) == name {
				stage, found = s, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q (valid: %v)", types.ErrInvalidStage, name, known)
		}
		n, err := strconv.Atoi(val)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: WIP limit %q must be a positive integer", types.ErrInvalidData, val)
		}
		wip[stage] = n
	}
	return wip, nil
}
