package offering_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/creative-network/internal/domain/capability"
	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/testutil/memory"
	"github.com/ignatzorin/creative-network/internal/usecase/offering"
)

func strPtr(s string) *string { return &s }

func actorOf(u *entity.User) *session.Actor {
	return &session.Actor{ID: u.ID}
}

func logoInput() offering.ServiceInput {
	return offering.ServiceInput{
		Title:       "Дизайн логотипа",
		Description: "Логотип и базовый фирменный стиль",
		PriceRange:  "$200-$500",
		Category:    strPtr("Graphic Design"),
	}
}

func TestCreateService(t *testing.T) {
	store := memory.NewStore()
	uc := offering.New(store.Services(), capability.All())
	alice := store.AddUser("Alice")

	svc, err := uc.Create.Execute(context.Background(), actorOf(alice), logoInput())
	require.NoError(t, err)
	assert.True(t, svc.IsActive)
	require.NotNil(t, svc.Category)
	assert.Equal(t, "Graphic Design", string(*svc.Category))

	list := uc.ByProvider.Execute(context.Background(), alice.ID)
	require.Len(t, list, 1)
	assert.Equal(t, svc.ID, list[0].ID)
}

func TestCreateService_Validation(t *testing.T) {
	store := memory.NewStore()
	uc := offering.New(store.Services(), capability.All())
	alice := store.AddUser("Alice")

	input := logoInput()
	input.Category = strPtr("Astrology")
	input.PriceRange = "$"
	_, err := uc.Create.Execute(context.Background(), actorOf(alice), input)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "category")
	assert.Contains(t, appErr.Fields, "priceRange")
}

func TestDeleteService_ProviderOnly(t *testing.T) {
	store := memory.NewStore()
	uc := offering.New(store.Services(), capability.All())
	alice := store.AddUser("Alice")
	bob := store.AddUser("Bob")
	ctx := context.Background()

	svc, err := uc.Create.Execute(ctx, actorOf(alice), logoInput())
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete.Execute(ctx, actorOf(bob), svc.ID), apperror.ErrForbidden)
	require.NoError(t, uc.Delete.Execute(ctx, actorOf(alice), svc.ID))
	assert.Empty(t, uc.ByProvider.Execute(ctx, alice.ID))
}

func TestServices_NotProvisioned(t *testing.T) {
	store := memory.NewStore()
	uc := offering.New(store.Services(), capability.All().Without(capability.Services))
	alice := store.AddUser("Alice")

	_, err := uc.Create.Execute(context.Background(), actorOf(alice), logoInput())
	assert.True(t, apperror.IsNotProvisioned(err))
	assert.Empty(t, uc.ByProvider.Execute(context.Background(), alice.ID))
}
