package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/creative-network/internal/service"
	"github.com/ignatzorin/creative-network/internal/testutil/memory"
)

func TestSeedData(t *testing.T) {
	store := memory.NewStore()
	seeder := service.NewSeedService(store.Users(), store.Posts(), store.Jobs(), store.Follows(), 42)
	ctx := context.Background()

	accounts, err := seeder.SeedData(ctx, 6, 2)
	require.NoError(t, err)
	require.Len(t, accounts, 6)

	posts, err := store.Posts().List(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, posts, 12)

	jobs, err := store.Jobs().List(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	// Сгенерированный аккаунт пригоден для входа.
	auth := service.NewAuthService(store.Users(), service.NewTokenManager("seed-test-secret-seed-test-secret", 0))
	_, err = auth.Login(ctx, service.LoginInput{Email: accounts[0].Email, Password: accounts[0].Password})
	assert.NoError(t, err)
}
