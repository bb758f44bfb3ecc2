package event_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/creative-network/internal/domain/capability"
	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/testutil/memory"
	"github.com/ignatzorin/creative-network/internal/usecase/event"
)

func actorOf(u *entity.User) *session.Actor {
	return &session.Actor{ID: u.ID}
}

func inputStarting(start time.Time) event.EventInput {
	return event.EventInput{
		Title:       "Portfolio review",
		Description: "Разбор портфолио с арт-директорами",
		Location:    "Москва",
		StartDate:   start,
	}
}

func TestListEvents_OrderedByStartDate(t *testing.T) {
	store := memory.NewStore()
	uc := event.New(store.Events(), capability.All())
	alice := store.AddUser("Alice")
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)

	later, err := uc.Create.Execute(ctx, actorOf(alice), inputStarting(base.Add(48*time.Hour)))
	require.NoError(t, err)
	sooner, err := uc.Create.Execute(ctx, actorOf(alice), inputStarting(base))
	require.NoError(t, err)

	list := uc.List.Execute(ctx, 0)
	require.Len(t, list, 2)
	assert.Equal(t, sooner.ID, list[0].ID)
	assert.Equal(t, later.ID, list[1].ID)
	require.NotNil(t, list[0].Organizer)
	assert.Equal(t, "Alice", list[0].Organizer.Name)
}

func TestCreateEvent_Validation(t *testing.T) {
	store := memory.NewStore()
	uc := event.New(store.Events(), capability.All())
	alice := store.AddUser("Alice")
	start := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)

	lat := 91.0
	input := inputStarting(start)
	input.Latitude = &lat
	_, err := uc.Create.Execute(context.Background(), actorOf(alice), input)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "latitude")

	end := start.Add(-time.Hour)
	input = inputStarting(start)
	input.EndDate = &end
	_, err = uc.Create.Execute(context.Background(), actorOf(alice), input)
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "endDate")

	_, err = uc.Create.Execute(context.Background(), actorOf(alice), event.EventInput{Title: "abc", Description: "достаточно длинно", Location: "Там"})
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "startDate")
}

func TestUpdateDeleteEvent_OrganizerGated(t *testing.T) {
	store := memory.NewStore()
	uc := event.New(store.Events(), capability.All())
	alice := store.AddUser("Alice")
	bob := store.AddUser("Bob")
	ctx := context.Background()
	start := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)

	created, err := uc.Create.Execute(ctx, actorOf(alice), inputStarting(start))
	require.NoError(t, err)

	changed := inputStarting(start.Add(time.Hour))
	_, err = uc.Update.Execute(ctx, actorOf(bob), created.ID, changed)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	updated, err := uc.Update.Execute(ctx, actorOf(alice), created.ID, changed)
	require.NoError(t, err)
	assert.True(t, updated.StartDate.Equal(start.Add(time.Hour)))

	assert.ErrorIs(t, uc.Delete.Execute(ctx, actorOf(bob), created.ID), apperror.ErrForbidden)
	require.NoError(t, uc.Delete.Execute(ctx, actorOf(alice), created.ID))
	assert.Empty(t, uc.List.Execute(ctx, 0))
}

func TestEvents_NotProvisionedAndSoftFail(t *testing.T) {
	store := memory.NewStore()
	alice := store.AddUser("Alice")
	ctx := context.Background()

	disabled := event.New(store.Events(), capability.All().Without(capability.Events))
	_, err := disabled.Create.Execute(ctx, actorOf(alice), inputStarting(time.Now()))
	assert.True(t, apperror.IsNotProvisioned(err))
	assert.Empty(t, disabled.List.Execute(ctx, 0))

	enabled := event.New(store.Events(), capability.All())
	store.Fail("events", errors.New("relation \"events\" does not exist"))
	assert.Empty(t, enabled.List.Execute(ctx, 0))
}
