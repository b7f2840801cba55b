// Move command: advance a pipeline entity to another stage.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huemot/atlas/internal/rest"
	"github.com/huemot/atlas/pkg/types"
)

var moveCmd = &cobra.Command{
	Use:   "move <collection> <id> <stage>",
	Short: "Move a pipeline entity to another stage",
	Long: `Move appends a stage transition to the entity's history and
assigns the new stage. Only applications and opportunities carry stages.
Moving to the current stage records a self-transition; it is not
suppressed.

Example:
  atlas move applications 0190c3f2-... Screening
  atlas move opportunities 0190c3f2-... Won`,
	Args: cobra.ExactArgs(3),
	RunE: runMove,
}

func runMove(cmd *cobra.Command, args []string) error {
	name, id, stage := args[0], args[1], args[2]
	if err := checkID(id); err != nil {
		return err
	}

	if name != types.CollectionApplications && name != types.CollectionOpportunities {
		return fmt.Errorf("%w: %q has no stages (valid: %s, %s)",
			types.ErrInvalidData, name, types.CollectionApplications, types.CollectionOpportunities)
	}

	if remoteEnabled() {
		c, err := newRemote()
		if err != nil {
			return err
		}
		moved, err := rest.NewResource[map[string]any](c, name).Move(cmd.Context(), id, stage)
		if err != nil {
			return err
		}
		return printJSON(moved)
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	switch name {
	case types.CollectionApplications:
		app, ok, err := s.MoveApplicationStage(id, types.ApplicationStage(stage))
		if err != nil {
			return fmt.Errorf("%w: %q (valid: %v)", err, stage, types.ApplicationStages)
		}
		if !ok {
			return fmt.Errorf("%w: %s/%s", types.ErrNotFound, name, id)
		}
		return printJSON(app)
	default:
		opp, ok, err := s.MoveOpportunityStage(id, types.OpportunityStage(stage))
		if err != nil {
			return fmt.Errorf("%w: %q (valid: %v)", err, stage, types.OpportunityStages)
		}
		if !ok {
			return fmt.Errorf("%w: %s/%s", types.ErrNotFound, name, id)
		}
		return printJSON(opp)
	}
}
