// Update command: shallow-merge a JSON patch into a record.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huemot/atlas/internal/memstore"
	"github.com/huemot/atlas/internal/rest"
	"github.com/huemot/atlas/pkg/types"
)

var updateData string

var updateCmd = &cobra.Command{
	Use:   "update <collection> <id>",
	Short: "Update a record",
	Long: `Update merges the fields present in the JSON patch into the
record and stamps updatedAt. Fields absent from the patch keep their
values; an empty patch only advances updatedAt. The id and createdAt
fields are immutable. For applications and opportunities, stage and
stageHistory cannot be patched here; use the move command so the history
stays consistent.

Example:
  atlas update jobs 0190c3f2-... --data '{"status":"Closed"}'`,
	Args: cobra.ExactArgs(2),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateData, "data", "", "patch JSON (use - to read stdin)")
	updateCmd.MarkFlagRequired("data")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	name, id := args[0], args[1]
	if err := checkID(id); err != nil {
		return err
	}
	raw, err := readData(updateData)
	if err != nil {
		return err
	}

	keys, err := patchKeys(raw)
	if err != nil {
		return err
	}
	if name == types.CollectionApplications || name == types.CollectionOpportunities {
		if keys["stage"] || keys["stageHistory"] {
			return fmt.Errorf("%w: stage changes go through the move command", types.ErrInvalidData)
		}
	}

	if remoteEnabled() {
		c, err := newRemote()
		if err != nil {
			return err
		}
		updated, err := rest.NewResource[map[string]any](c, name).Update(cmd.Context(), id, json.RawMessage(raw))
		if err != nil {
			return err
		}
		return printJSON(updated)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	updated, ok, err := updateRecord(s, name, id, raw)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s/%s", types.ErrNotFound, name, id)
	}
	return printJSON(updated)
}

// updateRecord applies the patch by unmarshalling it onto a copy of the
// stored record: fields present in the patch overwrite, everything else
// stays. The collection restores id and createdAt and stamps updatedAt.
func updateRecord(s *memstore.Store, name, id string, raw []byte) (any, bool, error) {
	// Reject patches that do not parse as the collection's entity type
	// before touching the store.
	if _, err := parseEntityJSON(name, raw); err != nil {
		return nil, false, err
	}

	merge := func(p any) {
		// The patch was validated above; on a copy this cannot fail.
		_ = json.Unmarshal(raw, p)
	}

	switch name {
	case types.CollectionJobs:
		r, ok := memstore.Jobs(s).Update(id, func(p *types.Job) { merge(p) })
		return r, ok, nil
	case types.CollectionCandidates:
		r, ok := memstore.Candidates(s).Update(id, func(p *types.Candidate) { merge(p) })
		return r, ok, nil
	case types.CollectionApplications:
		r, ok := memstore.Applications(s).Update(id, func(p *types.Application) { merge(p) })
		return r, ok, nil
	case types.CollectionInterviews:
		r, ok := memstore.Interviews(s).Update(id, func(p *types.Interview) { merge(p) })
		return r, ok, nil
	case types.CollectionOffers:
		r, ok := memstore.Offers(s).Update(id, func(p *types.Offer) { merge(p) })
		return r, ok, nil
	case types.CollectionAccounts:
		r, ok := memstore.Accounts(s).Update(id, func(p *types.Account) { merge(p) })
		return r, ok, nil
	case types.CollectionContacts:
		r, ok := memstore.Contacts(s).Update(id, func(p *types.Contact) { merge(p) })
		return r, ok, nil
	case types.CollectionOpportunities:
		r, ok := memstore.Opportunities(s).Update(id, func(p *types.Opportunity) { merge(p) })
		return r, ok, nil
	case types.CollectionActivities:
		r, ok := memstore.Activities(s).Update(id, func(p *types.Activity) { merge(p) })
		return r, ok, nil
	default:
		return nil, false, unknownCollection(name)
	}
}
