package types

import "time"

// Meta carries the fields shared by every entity record. ID is assigned
// once on creation and never changes; CreatedAt is immutable; UpdatedAt
// is rewritten on every mutation. Entities embed Meta so the store can
// stamp records of any type through the Record interface.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntityMeta returns the embedded Meta. It exists so that a pointer to
// any entity satisfies Record.
func (m *Meta) EntityMeta() *Meta { return m }

// Record is implemented by a pointer to every entity type through the
// embedded Meta.
type Record interface {
	EntityMeta() *Meta
}

// Job is an open position being recruited for.
type Job struct {
	Meta
	Title          string   `json:"title"`
	Department     string   `json:"department"`
	Location       string   `json:"location"`
	EmploymentType string   `json:"employmentType"`
	Skills         []string `json:"skills"`
	Openings       int      `json:"openings"`
	Status         string   `json:"status"`
}

// Job posting statuses.
const (
	JobStatusDraft     = "Draft"
	JobStatusPublished = "Published"
	JobStatusClosed    = "Closed"
)

// Candidate is a person in the recruiting pool.
type Candidate struct {
	Meta
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experienceYears"`
	CurrentTitle    string   `json:"currentTitle"`
	CurrentCompany  string   `json:"currentCompany"`
	Tags            []string `json:"tags"`
}

// Application links a candidate to a job and tracks its position in the
// recruiting pipeline. Stage always equals the To of the last history
// entry; the history is append-only and ordered by At ascending.
type Application struct {
	Meta
	CandidateID  string                          `json:"candidateId"`
	JobID        string                          `json:"jobId"`
	Stage        ApplicationStage                `json:"stage"`
	StageHistory []StageChange[ApplicationStage] `json:"stageHistory"`
	Notes        string                          `json:"notes"`
}

// Interview is a scheduled interview round for an application.
type Interview struct {
	Meta
	ApplicationID string   `json:"applicationId"`
	ScheduleISO   string   `json:"scheduleISO"`
	Panel         []string `json:"panel"`
	Feedback      string   `json:"feedback,omitempty"`
}

// OfferVariables are the negotiated terms embedded in an offer.
type OfferVariables struct {
	CTC         float64 `json:"ctc"`
	JoiningDate string  `json:"joiningDate"`
}

// Offer is a job offer extended on an application.
type Offer struct {
	Meta
	ApplicationID string         `json:"applicationId"`
	Status        string         `json:"status"`
	Variables     OfferVariables `json:"variables"`
	PDFURL        string         `json:"pdfUrl,omitempty"`
}

// Offer statuses.
const (
	OfferStatusDraft    = "Draft"
	OfferStatusSent     = "Sent"
	OfferStatusAccepted = "Accepted"
	OfferStatusDeclined = "Declined"
)

// Account is a company on the sales side.
type Account struct {
	Meta
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Owner    string `json:"owner"`
	Notes    string `json:"notes"`
}

// Contact is a person at an account.
type Contact struct {
	Meta
	AccountID string `json:"accountId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Title     string `json:"title"`
}

// Opportunity is a sales deal moving through the sales pipeline.
type Opportunity struct {
	Meta
	AccountID    string                          `json:"accountId"`
	Title        string                          `json:"title"`
	Stage        OpportunityStage                `json:"stage"`
	StageHistory []StageChange[OpportunityStage] `json:"stageHistory"`
	Value        float64                         `json:"value"`
	Probability  int                             `json:"probability"`
}

// Activity is a task, call, email, or meeting attached to another entity.
// EntityID may dangle after the referenced entity is deleted; consumers
// must tolerate that and render the reference as unknown.
type Activity struct {
	Meta
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
	Type       string `json:"type"`
	Subject    string `json:"subject"`
	DueAt      string `json:"dueAt,omitempty"`
	DoneAt     string `json:"doneAt,omitempty"`
	Assignee   string `json:"assignee"`
}

// Activity types.
const (
	ActivityTask    = "task"
	ActivityCall    = "call"
	ActivityEmail   = "email"
	ActivityMeeting = "meeting"
)

// User is an operator of the system. Users are held at the auth boundary
// and are not part of the persisted snapshot.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
