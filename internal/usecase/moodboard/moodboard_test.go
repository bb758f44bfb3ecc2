package moodboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/creative-network/internal/domain/capability"
	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/testutil/memory"
	"github.com/ignatzorin/creative-network/internal/usecase/moodboard"
)

func strPtr(s string) *string { return &s }

func actorOf(u *entity.User) *session.Actor {
	return &session.Actor{ID: u.ID}
}

func newUseCases(store *memory.Store, features capability.Set) moodboard.UseCases {
	return moodboard.New(store.MoodBoards(), store.Posts(), store.Portfolio(), features)
}

func createPost(t *testing.T, store *memory.Store, author *entity.User, image string) *entity.Post {
	t.Helper()
	p, err := entity.NewPost(author.ID, nil, &image)
	require.NoError(t, err)
	require.NoError(t, store.Posts().Create(context.Background(), p))
	return p
}

func TestAddItem_CopiesImageAndAppends(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCases(store, capability.All())
	alice := store.AddUser("Alice")
	ctx := context.Background()

	board, err := uc.Create.Execute(ctx, actorOf(alice), moodboard.CreateMoodBoardInput{Title: "Референсы"})
	require.NoError(t, err)
	post := createPost(t, store, alice, "https://cdn.example.com/p.png")

	first, err := uc.AddItem.Execute(ctx, actorOf(alice), moodboard.AddItemInput{MoodBoardID: board.ID, PostID: &post.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Order)
	require.NotNil(t, first.ImageURL)
	assert.Equal(t, "https://cdn.example.com/p.png", *first.ImageURL)

	second, err := uc.AddItem.Execute(ctx, actorOf(alice), moodboard.AddItemInput{MoodBoardID: board.ID, ImageURL: strPtr("https://cdn.example.com/raw.jpg")})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Order)

	boards := uc.List.Execute(ctx, actorOf(alice))
	require.Len(t, boards, 1)
	assert.Equal(t, 2, boards[0].ItemCount)
	require.Len(t, boards[0].PreviewItems, 2)
	assert.Equal(t, first.ID, boards[0].PreviewItems[0].ID)
}

func TestList_PreviewLimitedAndOrderedByActivity(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCases(store, capability.All())
	alice := store.AddUser("Alice")
	ctx := context.Background()

	busy, err := uc.Create.Execute(ctx, actorOf(alice), moodboard.CreateMoodBoardInput{Title: "Много"})
	require.NoError(t, err)
	quiet, err := uc.Create.Execute(ctx, actorOf(alice), moodboard.CreateMoodBoardInput{Title: "Мало"})
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		_, err := uc.AddItem.Execute(ctx, actorOf(alice), moodboard.AddItemInput{MoodBoardID: busy.ID, ImageURL: strPtr("https://cdn.example.com/i.png")})
		require.NoError(t, err)
	}

	boards := uc.List.Execute(ctx, actorOf(alice))
	require.Len(t, boards, 2)
	assert.Equal(t, busy.ID, boards[0].ID)
	assert.Equal(t, 6, boards[0].ItemCount)
	assert.Len(t, boards[0].PreviewItems, 4)
	assert.Equal(t, quiet.ID, boards[1].ID)
	assert.Empty(t, boards[1].PreviewItems)
}

func TestAddItem_Errors(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCases(store, capability.All())
	alice := store.AddUser("Alice")
	bob := store.AddUser("Bob")
	ctx := context.Background()

	board, err := uc.Create.Execute(ctx, actorOf(alice), moodboard.CreateMoodBoardInput{Title: "Мой"})
	require.NoError(t, err)

	_, err = uc.AddItem.Execute(ctx, actorOf(bob), moodboard.AddItemInput{MoodBoardID: board.ID, ImageURL: strPtr("https://cdn.example.com/i.png")})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	_, err = uc.AddItem.Execute(ctx, actorOf(alice), moodboard.AddItemInput{MoodBoardID: board.ID})
	assert.True(t, apperror.IsValidation(err))

	missing := uuid.New()
	_, err = uc.AddItem.Execute(ctx, actorOf(alice), moodboard.AddItemInput{MoodBoardID: board.ID, PostID: &missing})
	assert.ErrorIs(t, err, apperror.ErrPostNotFound)

	_, err = uc.AddItem.Execute(ctx, actorOf(alice), moodboard.AddItemInput{MoodBoardID: uuid.New(), ImageURL: strPtr("https://cdn.example.com/i.png")})
	assert.ErrorIs(t, err, apperror.ErrMoodBoardNotFound)
}

func TestCreate_Validation(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCases(store, capability.All())
	alice := store.AddUser("Alice")

	_, err := uc.Create.Execute(context.Background(), actorOf(alice), moodboard.CreateMoodBoardInput{Title: "  "})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "title")

	_, err = uc.Create.Execute(context.Background(), nil, moodboard.CreateMoodBoardInput{Title: "x"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestIsPostSaved(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCases(store, capability.All())
	alice := store.AddUser("Alice")
	bob := store.AddUser("Bob")
	ctx := context.Background()
	post := createPost(t, store, bob, "https://cdn.example.com/p.png")

	assert.Equal(t, moodboard.SavedState{MoodBoardIDs: []uuid.UUID{}}, uc.IsSaved.Execute(ctx, actorOf(alice), post.ID))

	board, err := uc.Create.Execute(ctx, actorOf(alice), moodboard.CreateMoodBoardInput{Title: "Чужие работы"})
	require.NoError(t, err)
	_, err = uc.AddItem.Execute(ctx, actorOf(alice), moodboard.AddItemInput{MoodBoardID: board.ID, PostID: &post.ID})
	require.NoError(t, err)

	state := uc.IsSaved.Execute(ctx, actorOf(alice), post.ID)
	assert.True(t, state.Saved)
	assert.Equal(t, []uuid.UUID{board.ID}, state.MoodBoardIDs)
	assert.False(t, uc.IsSaved.Execute(ctx, actorOf(bob), post.ID).Saved)
	assert.False(t, uc.IsSaved.Execute(ctx, nil, post.ID).Saved)
}

func TestMoodBoards_NotProvisionedAndSoftFail(t *testing.T) {
	store := memory.NewStore()
	alice := store.AddUser("Alice")
	ctx := context.Background()

	disabled := newUseCases(store, capability.All().Without(capability.MoodBoards))
	_, err := disabled.Create.Execute(ctx, actorOf(alice), moodboard.CreateMoodBoardInput{Title: "x"})
	assert.True(t, apperror.IsNotProvisioned(err))
	assert.Empty(t, disabled.List.Execute(ctx, actorOf(alice)))

	enabled := newUseCases(store, capability.All())
	store.Fail("moodboards", errors.New("relation \"mood_boards\" does not exist"))
	assert.Empty(t, enabled.List.Execute(ctx, actorOf(alice)))
	assert.False(t, enabled.IsSaved.Execute(ctx, actorOf(alice), uuid.New()).Saved)
}
