// Duplicates command: find candidates sharing an email address.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huemot/atlas/pkg/types"
)

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates <email>",
	Short: "Find candidates with the same email",
	Long: `Duplicates lists every candidate whose email matches exactly,
in creation order. A differently cased address is a different address.

Example:
  atlas duplicates ana@x.com`,
	Args: cobra.ExactArgs(1),
	RunE: runDuplicates,
}

func runDuplicates(cmd *cobra.Command, args []string) error {
	matches, err := duplicateCandidates(cmd, args[0])
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(matches)
	}
	if len(matches) == 0 {
		fmt.Println("no candidates found")
		return nil
	}
	for _, c := range matches {
		fmt.Printf("%s\t%s\t%s\n", c.ID, c.Name, c.Email)
	}
	return nil
}

func duplicateCandidates(cmd *cobra.Command, email string) ([]types.Candidate, error) {
	if remoteEnabled() {
		c, err := newRemote()
		if err != nil {
			return nil, err
		}
		rows, err := remoteList[types.Candidate](cmd.Context(), c, types.CollectionCandidates)
		if err != nil {
			return nil, err
		}
		var out []types.Candidate
		for _, cand := range rows {
			if cand.Email == email {
				out = append(out, cand)
			}
		}
		return out, nil
	}
	s, err := openStore()
	if err != nil {
		return nil, err
	}
	return s.FindDuplicateCandidates(email), nil
}
