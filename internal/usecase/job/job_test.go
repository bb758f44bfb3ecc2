package job_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/domain/valueobject"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/testutil/memory"
	"github.com/ignatzorin/creative-network/internal/usecase/job"
)

func strPtr(s string) *string { return &s }

func actorOf(u *entity.User) *session.Actor {
	return &session.Actor{ID: u.ID}
}

func validInput() job.JobInput {
	return job.JobInput{
		Title:          "Motion designer",
		Description:    "Ищем дизайнера для серии промо-роликов",
		Company:        strPtr("Studio"),
		Type:           string(valueobject.JobFreelance),
		ApplicationURL: strPtr("https://studio.example.com/apply"),
	}
}

func TestCreateJob(t *testing.T) {
	store := memory.NewStore()
	uc := job.New(store.Jobs())
	alice := store.AddUser("Alice")

	created, err := uc.Create.Execute(context.Background(), actorOf(alice), validInput())
	require.NoError(t, err)
	assert.Equal(t, alice.ID, created.PostedByID)
	assert.Equal(t, valueobject.JobFreelance, created.Type)
	require.NotNil(t, created.PostedBy)
	assert.Equal(t, "Alice", created.PostedBy.Name)

	list := uc.List.Execute(context.Background(), 0)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestCreateJob_Validation(t *testing.T) {
	store := memory.NewStore()
	uc := job.New(store.Jobs())
	alice := store.AddUser("Alice")

	tests := []struct {
		name   string
		mutate func(*job.JobInput)
		field  string
	}{
		{"short title", func(in *job.JobInput) { in.Title = "ab" }, "title"},
		{"short description", func(in *job.JobInput) { in.Description = "коротко" }, "description"},
		{"unknown type", func(in *job.JobInput) { in.Type = "Gig" }, "type"},
		{"bad url", func(in *job.JobInput) { in.ApplicationURL = strPtr("apply here") }, "applicationUrl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			_, err := uc.Create.Execute(context.Background(), actorOf(alice), input)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Contains(t, appErr.Fields, tt.field)
		})
	}
}

func TestUpdateDeleteJob_OwnerGated(t *testing.T) {
	store := memory.NewStore()
	uc := job.New(store.Jobs())
	alice := store.AddUser("Alice")
	bob := store.AddUser("Bob")
	ctx := context.Background()

	created, err := uc.Create.Execute(ctx, actorOf(alice), validInput())
	require.NoError(t, err)

	changed := validInput()
	changed.Title = "Senior motion designer"
	_, err = uc.Update.Execute(ctx, actorOf(bob), created.ID, changed)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	updated, err := uc.Update.Execute(ctx, actorOf(alice), created.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, "Senior motion designer", updated.Title)

	assert.ErrorIs(t, uc.Delete.Execute(ctx, actorOf(bob), created.ID), apperror.ErrForbidden)
	require.NoError(t, uc.Delete.Execute(ctx, actorOf(alice), created.ID))

	_, err = uc.Get.Execute(ctx, created.ID)
	assert.ErrorIs(t, err, apperror.ErrJobNotFound)
}
