// List command: render a collection through the table engine.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/huemot/atlas/internal/memstore"
	"github.com/huemot/atlas/pkg/types"
)

var listOpts tableOpts

var listCmd = &cobra.Command{
	Use:   "list <collection>",
	Short: "List a collection",
	Long: `List renders one collection as a table.

The view flags mirror the on-screen table: --query filters, --sort and
--desc order, --hide drops columns.

Example:
  atlas list candidates
  atlas list jobs --query remote --sort title
  atlas list applications --sort createdAt --desc --hide notes`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	addTableFlags(listCmd.Flags(), &listOpts)
}

func runList(cmd *cobra.Command, args []string) error {
	listOpts.asJSON = flagJSON
	return renderCollection(cmd, args[0], os.Stdout, listOpts)
}

// renderCollection routes one collection through the table engine to w.
// Export reuses it with CSV output enabled.
func renderCollection(cmd *cobra.Command, name string, w io.Writer, opts tableOpts) error {
	if remoteEnabled() {
		return renderCollectionRemote(cmd, name, w, opts)
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	switch name {
	case types.CollectionJobs:
		return renderTable(w, memstore.Jobs(s).List(), jobColumns(), opts)
	case types.CollectionCandidates:
		return renderTable(w, memstore.Candidates(s).List(), candidateColumns(), opts)
	case types.CollectionApplications:
		return renderTable(w, memstore.Applications(s).List(), applicationColumns(), opts)
	case types.CollectionInterviews:
		return renderTable(w, memstore.Interviews(s).List(), interviewColumns(), opts)
	case types.CollectionOffers:
		return renderTable(w, memstore.Offers(s).List(), offerColumns(), opts)
	case types.CollectionAccounts:
		return renderTable(w, memstore.Accounts(s).List(), accountColumns(), opts)
	case types.CollectionContacts:
		return renderTable(w, memstore.Contacts(s).List(), contactColumns(), opts)
	case types.CollectionOpportunities:
		return renderTable(w, memstore.Opportunities(s).List(), opportunityColumns(), opts)
	case types.CollectionActivities:
		return renderTable(w, memstore.Activities(s).List(), activityColumns(), opts)
	default:
		return unknownCollection(name)
	}
}

func renderCollectionRemote(cmd *cobra.Command, name string, w io.Writer, opts tableOpts) error {
	c, err := newRemote()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	switch name {
	case types.CollectionJobs:
		rows, err := remoteList[types.Job](ctx, c, name)
		if err != nil {
			return err
		}
		return renderTable(w, rows, jobColumns(), opts)
	case types.CollectionCandidates:
		rows, err := remoteList[types.Candidate](ctx, c, name)
		if err != nil {
			return err
		}
		return renderTable(w, rows, candidateColumns(), opts)
	case types.CollectionApplications:
		rows, err := remoteList[types.Application](ctx, c, name)
		if err != nil {
			return err
		}
		return renderTable(w, rows, applicationColumns(), opts)
	case types.CollectionInterviews:
		rows, err := remoteList[types.Interview](ctx, c, name)
		if err != nil {
			return err
		}
		return renderTable(w, rows, interviewColumns(), opts)
	case types.CollectionOffers:
		rows, err := remoteList[types.Offer](ctx, c, name)
		if err != nil {
			return err
		}
		return renderTable(w, rows, offerColumns(), opts)
	case types.CollectionAccounts:
		rows, err := remoteList[types.Account](ctx, c, name)
		if err != nil {
			return err
		}
		return renderTable(w, rows, accountColumns(), opts)
	case types.CollectionContacts:
		rows, err := remoteList[types.Contact](ctx, c, name)
		if err != nil {
			return err
		}
		return renderTable(w, rows, contactColumns(), opts)
	case types.CollectionOpportunities:
		rows, err := remoteList[types.Opportunity](ctx, c, name)
		if err != nil {
			return err
		}
		return renderTable(w, rows, opportunityColumns(), opts)
	case types.CollectionActivities:
		rows, err := remoteList[types.Activity](ctx, c, name)
		if err != nil {
			return err
		}
		return renderTable(w, rows, activityColumns(), opts)
	default:
		return unknownCollection(name)
	}
}
