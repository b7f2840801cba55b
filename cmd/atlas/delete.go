// Delete command: remove a record by id.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huemot/atlas/internal/memstore"
	"github.com/huemot/atlas/internal/rest"
	"github.com/huemot/atlas/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <collection> <id>",
	Short: "Delete a record",
	Long: `Delete removes a record. Deletion never cascades: records in
other collections that reference the deleted id are left dangling and
render as unknown.

Example:
  atlas delete candidates 0190c3f2-...`,
	Args: cobra.ExactArgs(2),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	name, id := args[0], args[1]
	if err := checkID(id); err != nil {
		return err
	}

	if remoteEnabled() {
		c, err := newRemote()
		if err != nil {
			return err
		}
		if !types.KnownCollection(name) {
			return unknownCollection(name)
		}
		if err := rest.NewResource[struct{}](c, name).Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("deleted %s/%s\n", name, id)
		return nil
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	ok, err := deleteRecord(s, name, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s/%s", types.ErrNotFound, name, id)
	}
	fmt.Printf("deleted %s/%s\n", name, id)
	return nil
}

func deleteRecord(s *memstore.Store, name, id string) (bool, error) {
	switch name {
	case types.CollectionJobs:
		return memstore.Jobs(s).Delete(id), nil
	case types.CollectionCandidates:
		return memstore.Candidates(s).Delete(id), nil
	case types.CollectionApplications:
		return memstore.Applications(s).Delete(id), nil
	case types.CollectionInterviews:
		return memstore.Interviews(s).Delete(id), nil
	case types.CollectionOffers:
		return memstore.Offers(s).Delete(id), nil
	case types.CollectionAccounts:
		return memstore.Accounts(s).Delete(id), nil
	case types.CollectionContacts:
		return memstore.Contacts(s).Delete(id), nil
	case types.CollectionOpportunities:
		return memstore.Opportunities(s).Delete(id), nil
	case types.CollectionActivities:
		return memstore.Activities(s).Delete(id), nil
	default:
		return false, unknownCollection(name)
	}
}
