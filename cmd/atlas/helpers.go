// Shared helpers for atlas CLI commands: store construction, the
// collection-name dispatch table, and output formatting.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/huemot/atlas/internal/memstore"
	"github.com/huemot/atlas/internal/rest"
	"github.com/huemot/atlas/pkg/types"
)

// validCollectionsStr is a comma-separated list of collection names for
// error output.
var validCollectionsStr = strings.Join(types.Collections, ", ")

// newLogger builds the CLI logger. Store persistence failures and rest
// requests log here; --verbose raises the level to debug.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// openStore resolves the data directory and constructs the local store
// over its snapshot file.
func openStore() (*memstore.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	return memstore.New(memstore.NewFilePersister(dataDir), memstore.WithLogger(newLogger())), nil
}

// remoteEnabled reports whether the configured backend is the remote API.
func remoteEnabled() bool {
	return appConfig != nil && appConfig.GetString(cfgKeyBackend) == backendRest
}

// requireLocal rejects operations the remote API has no endpoint for.
// They would silently act on local data otherwise.
func requireLocal(op string) error {
	if remoteEnabled() {
		return fmt.Errorf("%s works on local data only; the %q backend has no endpoint for it", op, backendRest)
	}
	return nil
}

// newRemote builds the remote API client from config. The bearer token is
// optional; without one, requests go out unauthenticated.
func newRemote() (*rest.Client, error) {
	base := appConfig.GetString(cfgKeyAPIBase)
	if base == "" {
		return nil, fmt.Errorf("backend is %q but %s is not set", backendRest, cfgKeyAPIBase)
	}
	return rest.New(base,
		rest.WithToken(appConfig.GetString(cfgKeyToken)),
		rest.WithLogger(newLogger()),
	), nil
}

// remoteList fetches a full collection from the remote API.
func remoteList[T any](ctx context.Context, c *rest.Client, collection string) ([]T, error) {
	return rest.NewResource[T](c, collection).List(ctx)
}

// findByID scans a fetched collection for the row with the given id. The
// remote API has no single-record endpoint, so lookups go through the
// collection listing.
func findByID[T any, PT interface {
	*T
	types.Record
}](rows []T, id string) (T, bool) {
	for i := range rows {
		if PT(&rows[i]).EntityMeta().ID == id {
			return rows[i], true
		}
	}
	var zero T
	return zero, false
}

// remoteSnapshot assembles a full snapshot from the remote API, one list
// call per collection.
func remoteSnapshot(ctx context.Context, c *rest.Client) (types.Snapshot, error) {
	var snap types.Snapshot
	var err error
	if snap.Jobs, err = remoteList[types.Job](ctx, c, types.CollectionJobs); err != nil {
		return snap, err
	}
	if snap.Candidates, err = remoteList[types.Candidate](ctx, c, types.CollectionCandidates); err != nil {
		return snap, err
	}
	if snap.Applications, err = remoteList[types.Application](ctx, c, types.CollectionApplications); err != nil {
		return snap, err
	}
	if snap.Interviews, err = remoteList[types.Interview](ctx, c, types.CollectionInterviews); err != nil {
		return snap, err
	}
	if snap.Offers, err = remoteList[types.Offer](ctx, c, types.CollectionOffers); err != nil {
		return snap, err
	}
	if snap.Accounts, err = remoteList[types.Account](ctx, c, types.CollectionAccounts); err != nil {
		return snap, err
	}
	if snap.Contacts, err = remoteList[types.Contact](ctx, c, types.CollectionContacts); err != nil {
		return snap, err
	}
	if snap.Opportunities, err = remoteList[types.Opportunity](ctx, c, types.CollectionOpportunities); err != nil {
		return snap, err
	}
	if snap.Activities, err = remoteList[types.Activity](ctx, c, types.CollectionActivities); err != nil {
		return snap, err
	}
	return snap, nil
}

// currentSnapshot reads the full data set from whichever backend is
// configured.
func currentSnapshot(cmd *cobra.Command) (types.Snapshot, error) {
	if remoteEnabled() {
		c, err := newRemote()
		if err != nil {
			return types.Snapshot{}, err
		}
		return remoteSnapshot(cmd.Context(), c)
	}
	s, err := openStore()
	if err != nil {
		return types.Snapshot{}, err
	}
	return s.Export(), nil
}

func unknownCollection(name string) error {
	return fmt.Errorf("%w: %q (valid: %s)", types.ErrUnknownCollection, name, validCollectionsStr)
}

// checkID rejects blank record ids before they reach the store or the
// remote API.
func checkID(id string) error {
	if strings.TrimSpace(id) == "" {
		return types.ErrInvalidID
	}
	return nil
}

// parseEntityJSON unmarshals JSON data into the concrete entity struct
// for the collection. The switch is the one place entity types are
// dispatched dynamically; everything below it stays statically typed.
func parseEntityJSON(collection string, data []byte) (any, error) {
	switch collection {
	case types.CollectionJobs:
		return parseAs[types.Job](data)
	case types.CollectionCandidates:
		return parseAs[types.Candidate](data)
	case types.CollectionApplications:
		return parseAs[types.Application](data)
	case types.CollectionInterviews:
		return parseAs[types.Interview](data)
	case types.CollectionOffers:
		return parseAs[types.Offer](data)
	case types.CollectionAccounts:
		return parseAs[types.Account](data)
	case types.CollectionContacts:
		return parseAs[types.Contact](data)
	case types.CollectionOpportunities:
		return parseAs[types.Opportunity](data)
	case types.CollectionActivities:
		return parseAs[types.Activity](data)
	default:
		return nil, unknownCollection(collection)
	}
}

func parseAs[T any](data []byte) (T, error) {
	var e T
	if err := json.Unmarshal(data, &e); err != nil {
		return e, fmt.Errorf("%w: %v", types.ErrInvalidData, err)
	}
	return e, nil
}

// patchKeys returns the top-level field names present in a JSON patch.
func patchKeys(data []byte) (map[string]bool, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidData, err)
	}
	keys := make(map[string]bool, len(m))
	for k := range m {
		keys[k] = true
	}
	return keys, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
