package job

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/repository"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/domain/valueobject"
	"github.com/ignatzorin/creative-network/internal/logger"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/validation"
)

type JobInput struct {
	Title          string  `json:"title" validate:"notblank,min=3,max=100"`
	Description    string  `json:"description" validate:"notblank,min=10,max=2000"`
	Company        *string `json:"company" validate:"omitempty,max=100"`
	Location       *string `json:"location" validate:"omitempty,max=100"`
	Type           string  `json:"type" validate:"required,jobtype"`
	Compensation   *string `json:"compensation" validate:"omitempty,max=100"`
	ApplicationURL *string `json:"applicationUrl" validate:"omitempty,url"`
}

func (in JobInput) details() entity.JobDetails {
	return entity.JobDetails{
		Title:          strings.TrimSpace(in.Title),
		Description:    strings.TrimSpace(in.Description),
		Company:        in.Company,
		Location:       in.Location,
		Type:           valueobject.JobType(in.Type),
		Compensation:   in.Compensation,
		ApplicationURL: in.ApplicationURL,
	}
}

type CreateJobUseCase struct {
	jobs repository.JobRepository
}

func NewCreateJobUseCase(jobs repository.JobRepository) *CreateJobUseCase {
	return &CreateJobUseCase{jobs: jobs}
}

func (uc *CreateJobUseCase) Execute(ctx context.Context, actor *session.Actor, input JobInput) (*entity.Job, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	job := entity.NewJob(actor.ID, input.details())
	if err := uc.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return uc.jobs.FindByID(ctx, job.ID)
}

type UpdateJobUseCase struct {
	jobs repository.JobRepository
}

func NewUpdateJobUseCase(jobs repository.JobRepository) *UpdateJobUseCase {
	return &UpdateJobUseCase{jobs: jobs}
}

func (uc *UpdateJobUseCase) Execute(ctx context.Context, actor *session.Actor, id uuid.UUID, input JobInput) (*entity.Job, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}

	job, err := uc.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !job.IsOwnedBy(actor.ID) {
		return nil, apperror.ErrForbidden
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	job.Apply(input.details())
	if err := uc.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

type DeleteJobUseCase struct {
	jobs repository.JobRepository
}

func NewDeleteJobUseCase(jobs repository.JobRepository) *DeleteJobUseCase {
	return &DeleteJobUseCase{jobs: jobs}
}

func (uc *DeleteJobUseCase) Execute(ctx context.Context, actor *session.Actor, id uuid.UUID) error {
	if err := session.Require(actor); err != nil {
		return err
	}

	job, err := uc.jobs.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !job.IsOwnedBy(actor.ID) {
		return apperror.ErrForbidden
	}
	return uc.jobs.Delete(ctx, id)
}

type ListJobsUseCase struct {
	jobs repository.JobRepository
}

func NewListJobsUseCase(jobs repository.JobRepository) *ListJobsUseCase {
	return &ListJobsUseCase{jobs: jobs}
}

func (uc *ListJobsUseCase) Execute(ctx context.Context, limit int) []*entity.Job {
	jobs, err := uc.jobs.List(ctx, validation.ClampLimit(limit, validation.DefaultListLimit))
	if err != nil {
		logger.Log.WithError(err).Warn("не удалось получить вакансии")
		return []*entity.Job{}
	}
	if jobs == nil {
		return []*entity.Job{}
	}
	return jobs
}

type GetJobUseCase struct {
	jobs repository.JobRepository
}

func NewGetJobUseCase(jobs repository.JobRepository) *GetJobUseCase {
	return &GetJobUseCase{jobs: jobs}
}

func (uc *GetJobUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	return uc.jobs.FindByID(ctx, id)
}

type UseCases struct {
	Create *CreateJobUseCase
	Update *UpdateJobUseCase
	Delete *DeleteJobUseCase
	List   *ListJobsUseCase
	Get    *GetJobUseCase
}

func New(jobs repository.JobRepository) UseCases {
	return UseCases{
		Create: NewCreateJobUseCase(jobs),
		Update: NewUpdateJobUseCase(jobs),
		Delete: NewDeleteJobUseCase(jobs),
		List:   NewListJobsUseCase(jobs),
		Get:    NewGetJobUseCase(jobs),
	}
}
