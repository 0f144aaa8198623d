package domain

import "time"

type EmploymentType string

const (
	EmploymentRemote EmploymentType = "remote"
	EmploymentOnSite EmploymentType = "on-site"
	EmploymentHybrid EmploymentType = "hybrid"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentRemote, EmploymentOnSite, EmploymentHybrid:
		return true
	}
	return false
}

// Job is a posting owned by exactly one Business. AssignedTo and
// JobApplicants hold person identifiers; a person appears in at most one of
// the two sets at any time.
type Job struct {
	ID                string
	CompanyID         string
	CompanyName       string
	Name              string
	Description       string
	Skills            string
	Location          string
	EmploymentType    EmploymentType
	NumberOfPositions int
	AssignedTo        []string
	JobApplicants     []string
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// JobMatch pairs a job with its relevance score for one candidate.
type JobMatch struct {
	Job   *Job
	Score int
}

// JobRoster is a business-facing view of a job with both membership sets
// resolved to full person records.
type JobRoster struct {
	Job        *Job
	Assigned   []*Person
	Applicants []*Person
}

// Team is the projection of one job's accepted members. There is no stored
// team entity; membership is always derived from job_assignees.
type Team struct {
	JobID   string
	JobName string
	Members []*Person
}
