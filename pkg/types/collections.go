package types

// Collection names. Each name keys one entity collection in the snapshot
// and doubles as the resource path segment of the remote API.
const (
	CollectionJobs          = "jobs"
	CollectionCandidates    = "candidates"
	CollectionApplications  = "applications"
	CollectionInterviews    = "interviews"
	CollectionOffers        = "offers"
	CollectionAccounts      = "accounts"
	CollectionContacts      = "contacts"
	CollectionOpportunities = "opportunities"
	CollectionActivities    = "activities"
)

// Collections lists every known collection name for enumeration.
var Collections = []string{
	CollectionJobs,
	CollectionCandidates,
	CollectionApplications,
	CollectionInterviews,
	CollectionOffers,
	CollectionAccounts,
	CollectionContacts,
	CollectionOpportunities,
	CollectionActivities,
}

// KnownCollection reports whether name is a recognized collection.
func KnownCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}
