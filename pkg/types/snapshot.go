package types

import (
	"encoding/json"
	"slices"
)

// Snapshot is the complete state of every entity collection: the unit of
// durable persistence and of export/import. It serializes to one JSON
// object mapping collection name to record array.
type Snapshot struct {
	Jobs          []Job         `json:"jobs"`
	Candidates    []Candidate   `json:"candidates"`
	Applications  []Application `json:"applications"`
	Interviews    []Interview   `json:"interviews"`
	Offers        []Offer       `json:"offers"`
	Accounts      []Account     `json:"accounts"`
	Contacts      []Contact     `json:"contacts"`
	Opportunities []Opportunity `json:"opportunities"`
	Activities    []Activity    `json:"activities"`
}

// MarshalJSON writes every collection as a JSON array. Nil collections
// encode as [] rather than null, so the stored document always carries
// all keys in array form.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	type alias Snapshot
	a := alias(s)
	if a.Jobs == nil {
		a.Jobs = []Job{}
	}
	if a.Candidates == nil {
		a.Candidates = []Candidate{}
	}
	if a.Applications == nil {
		a.Applications = []Application{}
	}
	if a.Interviews == nil {
		a.Interviews = []Interview{}
	}
	if a.Offers == nil {
		a.Offers = []Offer{}
	}
	if a.Accounts == nil {
		a.Accounts = []Account{}
	}
	if a.Contacts == nil {
		a.Contacts = []Contact{}
	}
	if a.Opportunities == nil {
		a.Opportunities = []Opportunity{}
	}
	if a.Activities == nil {
		a.Activities = []Activity{}
	}
	return json.Marshal(a)
}

// Clone returns a deep copy of the snapshot. Inner slices (skills, tags,
// panels, stage histories) are copied so a mutation through one value can
// never leak into the other.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Jobs:          slices.Clone(s.Jobs),
		Candidates:    slices.Clone(s.Candidates),
		Applications:  slices.Clone(s.Applications),
		Interviews:    slices.Clone(s.Interviews),
		Offers:        slices.Clone(s.Offers),
		Accounts:      slices.Clone(s.Accounts),
		Contacts:      slices.Clone(s.Contacts),
		Opportunities: slices.Clone(s.Opportunities),
		Activities:    slices.Clone(s.Activities),
	}
	for i := range out.Jobs {
		out.Jobs[i].Skills = slices.Clone(out.Jobs[i].Skills)
	}
	for i := range out.Candidates {
		out.Candidates[i].Skills = slices.Clone(out.Candidates[i].Skills)
		out.Candidates[i].Tags = slices.Clone(out.Candidates[i].Tags)
	}
	for i := range out.Applications {
		out.Applications[i].StageHistory = slices.Clone(out.Applications[i].StageHistory)
	}
	for i := range out.Interviews {
		out.Interviews[i].Panel = slices.Clone(out.Interviews[i].Panel)
	}
	for i := range out.Opportunities {
		out.Opportunities[i].StageHistory = slices.Clone(out.Opportunities[i].StageHistory)
	}
	return out
}
