// Table column definitions, one set per collection. These drive both the
// list command's rendering and CSV export.
package main

import (
	"github.com/huemot/atlas/internal/table"
	"github.com/huemot/atlas/pkg/types"
)

func jobColumns() []table.Column[types.Job] {
	return []table.Column[types.Job]{
		{ID: "id", Header: "ID", NoSearch: true, Value: func(j types.Job) any { return j.ID }},
		{ID: "title", Header: "Title", Sortable: true, Value: func(j types.Job) any { return j.Title }},
		{ID: "department", Header: "Department", Sortable: true, Value: func(j types.Job) any { return j.Department }},
		{ID: "location", Header: "Location", Sortable: true, Value: func(j types.Job) any { return j.Location }},
		{ID: "employmentType", Header: "Type", Value: func(j types.Job) any { return j.EmploymentType }},
		{ID: "skills", Header: "Skills", Value: func(j types.Job) any { return j.Skills }},
		{ID: "openings", Header: "Openings", Sortable: true, Value: func(j types.Job) any { return j.Openings }},
		{ID: "status", Header: "Status", Sortable: true, Value: func(j types.Job) any { return j.Status }},
	}
}

func candidateColumns() []table.Column[types.Candidate] {
	return []table.Column[types.Candidate]{
		{ID: "id", Header: "ID", NoSearch: true, Value: func(c types.Candidate) any { return c.ID }},
		{ID: "name", Header: "Name", Sortable: true, Value: func(c types.Candidate) any { return c.Name }},
		{ID: "email", Header: "Email", Sortable: true, Value: func(c types.Candidate) any { return c.Email }},
		{ID: "phone", Header: "Phone", Value: func(c types.Candidate) any { return c.Phone }},
		{ID: "skills", Header: "Skills", Value: func(c types.Candidate) any { return c.Skills }},
		{ID: "experienceYears", Header: "Years", Sortable: true, Value: func(c types.Candidate) any { return c.ExperienceYears }},
		{ID: "currentCompany", Header: "Company", Sortable: true, Value: func(c types.Candidate) any { return c.CurrentCompany }},
	}
}

func applicationColumns() []table.Column[types.Application] {
	return []table.Column[types.Application]{
		{ID: "id", Header: "ID", NoSearch: true, Value: func(a types.Application) any { return a.ID }},
		{ID: "candidateId", Header: "Candidate", Value: func(a types.Application) any { return a.CandidateID }},
		{ID: "jobId", Header: "Job", Value: func(a types.Application) any { return a.JobID }},
		{ID: "stage", Header: "Stage", Sortable: true, Value: func(a types.Application) any { return string(a.Stage) }},
		{ID: "notes", Header: "Notes", Value: func(a types.Application) any { return a.Notes }},
		{ID: "createdAt", Header: "Created", Sortable: true, NoSearch: true, Value: func(a types.Application) any { return a.CreatedAt }},
	}
}

func interviewColumns() []table.Column[types.Interview] {
	return []table.Column[types.Interview]{
		{ID: "id", Header: "ID", NoSearch: true, Value: func(i types.Interview) any { return i.ID }},
		{ID: "applicationId", Header: "Application", Value: func(i types.Interview) any { return i.ApplicationID }},
		{ID: "scheduleISO", Header: "Scheduled", Sortable: true, Value: func(i types.Interview) any { return i.ScheduleISO }},
		{ID: "panel", Header: "Panel", Value: func(i types.Interview) any { return i.Panel }},
		{ID: "feedback", Header: "Feedback", Value: func(i types.Interview) any { return i.Feedback }},
	}
}

func offerColumns() []table.Column[types.Offer] {
	return []table.Column[types.Offer]{
		{ID: "id", Header: "ID", NoSearch: true, Value: func(o types.Offer) any { return o.ID }},
		{ID: "applicationId", Header: "Application", Value: func(o types.Offer) any { return o.ApplicationID }},
		{ID: "status", Header: "Status", Sortable: true, Value: func(o types.Offer) any { return o.Status }},
		{ID: "ctc", Header: "CTC", Sortable: true, NoSearch: true, Value: func(o types.Offer) any { return o.Variables.CTC }},
		{ID: "joiningDate", Header: "Joining", Sortable: true, Value: func(o types.Offer) any { return o.Variables.JoiningDate }},
	}
}

func accountColumns() []table.Column[types.Account] {
	return []table.Column[types.Account]{
		{ID: "id", Header: "ID", NoSearch: true, Value: func(a types.Account) any { return a.ID }},
		{ID: "name", Header: "Name", Sortable: true, Value: func(a types.Account) any { return a.Name }},
		{ID: "industry", Header: "Industry", Sortable: true, Value: func(a types.Account) any { return a.Industry }},
		{ID: "owner", Header: "Owner", Sortable: true, Value: func(a types.Account) any { return a.Owner }},
		{ID: "notes", Header: "Notes", Value: func(a types.Account) any { return a.Notes }},
	}
}

func contactColumns() []table.Column[types.Contact] {
	return []table.Column[types.Contact]{
		{ID: "id", Header: "ID", NoSearch: true, Value: func(c types.Contact) any { return c.ID }},
		{ID: "accountId", Header: "Account", Value: func(c types.Contact) any { return c.AccountID }},
		{ID: "name", Header: "Name", Sortable: true, Value: func(c types.Contact) any { return c.Name }},
		{ID: "email", Header: "Email", Sortable: true, Value: func(c types.Contact) any { return c.Email }},
		{ID: "title", Header: "Title", Sortable: true, Value: func(c types.Contact) any { return c.Title }},
	}
}

func opportunityColumns() []table.Column[types.Opportunity] {
	return []table.Column[types.Opportunity]{
		{ID: "id", Header: "ID", NoSearch: true, Value: func(o types.Opportunity) any { return o.ID }},
		{ID: "accountId", Header: "Account", Value: func(o types.Opportunity) any { return o.AccountID }},
		{ID: "title", Header: "Title", Sortable: true, Value: func(o types.Opportunity) any { return o.Title }},
		{ID: "stage", Header: "Stage", Sortable: true, Value: func(o types.Opportunity) any { return string(o.Stage) }},
		{ID: "value", Header: "Value", Sortable: true, NoSearch: true, Value: func(o types.Opportunity) any { return o.Value }},
		{ID: "probability", Header: "Prob%", Sortable: true, NoSearch: true, Value: func(o types.Opportunity) any { return o.Probability }},
	}
}

func activityColumns() []table.Column[types.Activity] {
	return []table.Column[types.Activity]{
		{ID: "id", Header: "ID", NoSearch: true, Value: func(a types.Activity) any { return a.ID }},
		{ID: "entityType", Header: "Entity", Value: func(a types.Activity) any { return a.EntityType }},
		{ID: "entityId", Header: "EntityID", NoSearch: true, Value: func(a types.Activity) any { return a.EntityID }},
		{ID: "type", Header: "Type", Sortable: true, Value: func(a types.Activity) any { return a.Type }},
		{ID: "subject", Header: "Subject", Sortable: true, Value: func(a types.Activity) any { return a.Subject }},
		{ID: "dueAt", Header: "Due", Sortable: true, NoSearch: true, Value: func(a types.Activity) any { return a.DueAt }},
		{ID: "assignee", Header: "Assignee", Sortable: true, Value: func(a types.Activity) any { return a.Assignee }},
	}
}
