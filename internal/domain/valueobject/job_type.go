package valueobject

import "github.com/ignatzorin/creative-network/internal/pkg/apperror"

type JobType string

const (
	JobFullTime   JobType = "Full-time"
	JobPartTime   JobType = "Part-time"
	JobFreelance  JobType = "Freelance"
	JobContract   JobType = "Contract"
	JobInternship JobType = "Internship"
)

var JobTypes = []JobType{JobFullTime, JobPartTime, JobFreelance, JobContract, JobInternship}

func (t JobType) IsValid() bool {
	for _, known := range JobTypes {
		if t == known {
			return true
		}
	}
	return false
}

func ParseJobType(s string) (JobType, error) {
	t := JobType(s)
	if !t.IsValid() {
		return "", apperror.FieldError("type", "неизвестный тип занятости")
	}
	return t, nil
}
