package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/valueobject"
)

type Job struct {
	ID             uuid.UUID
	PostedByID     uuid.UUID
	Title          string
	Description    string
	Company        *string
	Location       *string
	Type           valueobject.JobType
	Compensation   *string
	ApplicationURL *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	PostedBy *UserSummary
}

// JobDetails — редактируемые поля вакансии.
type JobDetails struct {
	Title          string
	Description    string
	Company        *string
	Location       *string
	Type           valueobject.JobType
	Compensation   *string
	ApplicationURL *string
}

func NewJob(postedByID uuid.UUID, d JobDetails) *Job {
	now := time.Now()
	j := &Job{ID: uuid.New(), PostedByID: postedByID, CreatedAt: now}
	j.Apply(d)
	j.UpdatedAt = now
	return j
}

func (j *Job) Apply(d JobDetails) {
	j.Title = d.Title
	j.Description = d.Description
	j.Company = normalizeOptional(d.Company)
	j.Location = normalizeOptional(d.Location)
	j.Type = d.Type
	j.Compensation = normalizeOptional(d.Compensation)
	j.ApplicationURL = normalizeOptional(d.ApplicationURL)
	j.UpdatedAt = time.Now()
}

func (j *Job) IsOwnedBy(userID uuid.UUID) bool {
	return j.PostedByID == userID
}
