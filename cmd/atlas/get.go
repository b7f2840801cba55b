// Get command: fetch one record by id.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huemot/atlas/internal/memstore"
	"github.com/huemot/atlas/internal/rest"
	"github.com/huemot/atlas/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <collection> <id>",
	Short: "Get a record by ID",
	Long: `Get fetches a single record and prints it as JSON.

Example:
  atlas get candidates 0190c3f2-...`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	name, id := args[0], args[1]
	if err := checkID(id); err != nil {
		return err
	}

	var (
		record any
		ok     bool
	)
	if remoteEnabled() {
		c, err := newRemote()
		if err != nil {
			return err
		}
		record, ok, err = getRecordRemote(cmd.Context(), c, name, id)
		if err != nil {
			return err
		}
	} else {
		s, err := openStore()
		if err != nil {
			return err
		}
		record, ok, err = getRecord(s, name, id)
		if err != nil {
			return err
		}
	}
	if !ok {
		return fmt.Errorf("%w: %s/%s", types.ErrNotFound, name, id)
	}
	return printJSON(record)
}

// getRecord looks a record up through the typed collection for its name.
func getRecord(s *memstore.Store, name, id string) (any, bool, error) {
	switch name {
	case types.CollectionJobs:
		r, ok := memstore.Jobs(s).Get(id)
		return r, ok, nil
	case types.CollectionCandidates:
		r, ok := memstore.Candidates(s).Get(id)
		return r, ok, nil
	case types.CollectionApplications:
		r, ok := memstore.Applications(s).Get(id)
		return r, ok, nil
	case types.CollectionInterviews:
		r, ok := memstore.Interviews(s).Get(id)
		return r, ok, nil
	case types.CollectionOffers:
		r, ok := memstore.Offers(s).Get(id)
		return r, ok, nil
	case types.CollectionAccounts:
		r, ok := memstore.Accounts(s).Get(id)
		return r, ok, nil
	case types.CollectionContacts:
		r, ok := memstore.Contacts(s).Get(id)
		return r, ok, nil
	case types.CollectionOpportunities:
		r, ok := memstore.Opportunities(s).Get(id)
		return r, ok, nil
	case types.CollectionActivities:
		r, ok := memstore.Activities(s).Get(id)
		return r, ok, nil
	default:
		return nil, false, unknownCollection(name)
	}
}

// getRecordRemote looks a record up against the remote API. The API only
// exposes collection listings, so the lookup fetches the collection and
// scans it for the id.
func getRecordRemote(ctx context.Context, c *rest.Client, name, id string) (any, bool, error) {
	switch name {
	case types.CollectionJobs:
		return remoteFind[types.Job, *types.Job](ctx, c, name, id)
	case types.CollectionCandidates:
		return remoteFind[types.Candidate, *types.Candidate](ctx, c, name, id)
	case types.CollectionApplications:
		return remoteFind[types.Application, *types.Application](ctx, c, name, id)
	case types.CollectionInterviews:
		return remoteFind[types.Interview, *types.Interview](ctx, c, name, id)
	case types.CollectionOffers:
		return remoteFind[types.Offer, *types.Offer](ctx, c, name, id)
	case types.CollectionAccounts:
		return remoteFind[types.Account, *types.Account](ctx, c, name, id)
	case types.CollectionContacts:
		return remoteFind[types.Contact, *types.Contact](ctx, c, name, id)
	case types.CollectionOpportunities:
		return remoteFind[types.Opportunity, *types.Opportunity](ctx, c, name, id)
	case types.CollectionActivities:
		return remoteFind[types.Activity, *types.Activity](ctx, c, name, id)
	default:
		return nil, false, unknownCollection(name)
	}
}

func remoteFind[T any, PT interface {
	*T
	types.Record
}](ctx context.Context, c *rest.Client, collection, id string) (any, bool, error) {
	rows, err := remoteList[T](ctx, c, collection)
	if err != nil {
		return nil, false, err
	}
	r, ok := findByID[T, PT](rows, id)
	if !ok {
		return nil, false, nil
	}
	return r, true, nil
}
