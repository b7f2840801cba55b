package memstore

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/huemot/atlas/pkg/types"
)

// Seed dataset. Used on first run, when the snapshot is unreadable, and
// by Reset. Generated records come from a fixed-seed PRNG so two fresh
// stores agree on everything except record ids.

var (
	seedSkills     = []string{"JavaScript", "Python", "Java", "React", "Angular", "Vue", "Node.js", "Express", "Django", "SQL", "MongoDB", "AWS", "Docker", "Kubernetes"}
	seedCompanies  = []string{"Google", "Microsoft", "Amazon", "Apple", "Meta", "Netflix", "Uber", "Airbnb", "Stripe", "Shopify"}
	seedFirstNames = []string{"John", "Jane", "Michael", "Sarah", "David", "Emily", "Robert", "Jessica", "William", "Ashley"}
	seedLastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}
	seedTitles     = []string{"CEO", "CTO", "VP Engineering", "Director of Product"}
)

func seedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}

func seedMeta(at time.Time) types.Meta {
	return types.Meta{ID: seedID(), CreatedAt: at, UpdatedAt: at}
}

// Seed builds the seed snapshot: three published jobs, two accounts, and
// generated candidates, applications, contacts, opportunities, and
// activities referencing them.
func Seed() types.Snapshot {
	rng := rand.New(rand.NewSource(20240115))
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return base.AddDate(0, 0, n) }

	var snap types.Snapshot

	snap.Jobs = []types.Job{
		{Meta: seedMeta(day(14)), Title: "Senior Software Engineer", Department: "Engineering",
			Location: "San Francisco, CA", EmploymentType: "Full-time",
			Skills: []string{"React", "TypeScript", "Node.js"}, Openings: 2, Status: types.JobStatusPublished},
		{Meta: seedMeta(day(19)), Title: "Product Manager", Department: "Product",
			Location: "New York, NY", EmploymentType: "Full-time",
			Skills: []string{"Product Strategy", "Analytics", "SQL"}, Openings: 1, Status: types.JobStatusPublished},
		{Meta: seedMeta(day(31)), Title: "UX Designer", Department: "Design",
			Location: "Remote", EmploymentType: "Full-time",
			Skills: []string{"Figma", "User Research", "Prototyping"}, Openings: 1, Status: types.JobStatusPublished},
	}

	snap.Accounts = []types.Account{
		{Meta: seedMeta(day(9)), Name: "Acme Corp", Industry: "Technology",
			Owner: "John Smith", Notes: "Potential client for enterprise solution"},
		{Meta: seedMeta(day(11)), Name: "GlobalTech Inc", Industry: "Manufacturing",
			Owner: "Sarah Johnson", Notes: "Interested in automation solutions"},
	}

	for i := 0; i < 20; i++ {
		first := seedFirstNames[rng.Intn(len(seedFirstNames))]
		last := seedLastNames[rng.Intn(len(seedLastNames))]
		at := day(rng.Intn(60))
		snap.Candidates = append(snap.Candidates, types.Candidate{
			Meta:  seedMeta(at),
			Name:  first + " " + last,
			Email: fmt.Sprintf("%s.%s@email.com", strings.ToLower(first), strings.ToLower(last)),
			Phone: fmt.Sprintf("+1-%d-%d-%d", 100+rng.Intn(900), 100+rng.Intn(900), 1000+rng.Intn(9000)),
			Skills: append([]string(nil),
				seedSkills[:2+rng.Intn(5)]...),
			ExperienceYears: 1 + rng.Intn(10),
			CurrentTitle:    "Software Engineer",
			CurrentCompany:  seedCompanies[rng.Intn(len(seedCompanies))],
			Tags:            []string{"JavaScript", "Remote"},
		})
	}

	for i := 0; i < 24; i++ {
		stage := types.ApplicationStages[rng.Intn(len(types.ApplicationStages))]
		at := day(rng.Intn(60))
		snap.Applications = append(snap.Applications, types.Application{
			Meta:        seedMeta(at),
			CandidateID: snap.Candidates[rng.Intn(len(snap.Candidates))].ID,
			JobID:       snap.Jobs[rng.Intn(len(snap.Jobs))].ID,
			Stage:       stage,
			// One creation entry; the recorded stage is the initial one.
			StageHistory: types.InitialHistory(stage, at),
			Notes:        "Initial application review pending",
		})
	}

	for _, account := range snap.Accounts {
		for i := 0; i < 1+rng.Intn(3); i++ {
			first := seedFirstNames[rng.Intn(len(seedFirstNames))]
			last := seedLastNames[rng.Intn(len(seedLastNames))]
			snap.Contacts = append(snap.Contacts, types.Contact{
				Meta:      seedMeta(day(rng.Intn(60))),
				AccountID: account.ID,
				Name:      first + " " + last,
				Email:     fmt.Sprintf("%s.%s@example.com", strings.ToLower(first), strings.ToLower(last)),
				Phone:     fmt.Sprintf("+1-%d-%d-%d", 100+rng.Intn(900), 100+rng.Intn(900), 1000+rng.Intn(9000)),
				Title:     seedTitles[rng.Intn(len(seedTitles))],
			})
		}
	}

	for i := 0; i < 8; i++ {
		stage := types.OpportunityStages[rng.Intn(len(types.OpportunityStages))]
		at := day(rng.Intn(60))
		snap.Opportunities = append(snap.Opportunities, types.Opportunity{
			Meta:         seedMeta(at),
			AccountID:    snap.Accounts[rng.Intn(len(snap.Accounts))].ID,
			Title:        fmt.Sprintf("Q%d 2024 Deal", 1+rng.Intn(4)),
			Stage:        stage,
			StageHistory: types.InitialHistory(stage, at),
			Value:        float64(50000 + rng.Intn(500000)),
			Probability:  rng.Intn(100),
		})
	}

	activityTypes := []string{types.ActivityTask, types.ActivityCall, types.ActivityEmail, types.ActivityMeeting}
	for i := 0; i < 16; i++ {
		at := day(rng.Intn(60))
		act := types.Activity{
			Meta:       seedMeta(at),
			EntityType: types.CollectionCandidates,
			EntityID:   snap.Candidates[rng.Intn(len(snap.Candidates))].ID,
			Type:       activityTypes[rng.Intn(len(activityTypes))],
			Subject:    "Follow up on candidate",
			Assignee:   seedFirstNames[rng.Intn(len(seedFirstNames))],
		}
		if rng.Intn(2) == 0 {
			act.DueAt = day(60 + rng.Intn(7)).Format(time.RFC3339)
		}
		if rng.Intn(10) < 3 {
			act.DoneAt = day(rng.Intn(60)).Format(time.RFC3339)
		}
		snap.Activities = append(snap.Activities, act)
	}

	return snap
}
