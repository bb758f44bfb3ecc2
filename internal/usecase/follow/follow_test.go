package follow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/creative-network/internal/domain/capability"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/domain/valueobject"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/testutil/memory"
	"github.com/ignatzorin/creative-network/internal/usecase/follow"
	"github.com/ignatzorin/creative-network/internal/usecase/notification"
)

type fixture struct {
	store     *memory.Store
	publisher *memory.Publisher
	uc        follow.UseCases
}

func newFixture(features capability.Set) *fixture {
	store := memory.NewStore()
	publisher := &memory.Publisher{}
	notifications := notification.New(store.Notifications(), publisher, features)
	return &fixture{
		store:     store,
		publisher: publisher,
		uc:        follow.New(store.Follows(), store.Users(), notifications.Notifier, features),
	}
}

func actorOf(id uuid.UUID) *session.Actor {
	return &session.Actor{ID: id}
}

func TestFollow_IdempotentWithSingleNotification(t *testing.T) {
	f := newFixture(capability.All())
	alice := f.store.AddUser("Alice")
	bob := f.store.AddUser("Bob")
	ctx := context.Background()

	created, err := f.uc.Follow.Execute(ctx, actorOf(alice.ID), bob.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = f.uc.Follow.Execute(ctx, actorOf(alice.ID), bob.ID)
	require.NoError(t, err)
	assert.False(t, created)

	assert.True(t, f.uc.Is.Execute(ctx, actorOf(alice.ID), bob.ID))
	assert.False(t, f.uc.Is.Execute(ctx, actorOf(bob.ID), alice.ID))

	received := f.store.NotificationsFor(bob.ID)
	require.Len(t, received, 1)
	assert.Equal(t, valueobject.NotificationConnect, received[0].Type)
	require.NotNil(t, received[0].SenderID)
	assert.Equal(t, alice.ID, *received[0].SenderID)
	assert.Len(t, f.publisher.Of(notification.EventNew), 1)
}

func TestFollow_SelfRejected(t *testing.T) {
	f := newFixture(capability.All())
	alice := f.store.AddUser("Alice")

	_, err := f.uc.Follow.Execute(context.Background(), actorOf(alice.ID), alice.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Empty(t, f.store.NotificationsFor(alice.ID))
}

func TestFollow_UnknownTarget(t *testing.T) {
	f := newFixture(capability.All())
	alice := f.store.AddUser("Alice")

	_, err := f.uc.Follow.Execute(context.Background(), actorOf(alice.ID), uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestFollow_Anonymous(t *testing.T) {
	f := newFixture(capability.All())
	bob := f.store.AddUser("Bob")

	_, err := f.uc.Follow.Execute(context.Background(), nil, bob.ID)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	err = f.uc.Unfollow.Execute(context.Background(), &session.Actor{}, bob.ID)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestUnfollow_RemovesEdgeAndToleratesMissing(t *testing.T) {
	f := newFixture(capability.All())
	alice := f.store.AddUser("Alice")
	bob := f.store.AddUser("Bob")
	carol := f.store.AddUser("Carol")
	ctx := context.Background()

	_, err := f.uc.Follow.Execute(ctx, actorOf(alice.ID), bob.ID)
	require.NoError(t, err)
	_, err = f.uc.Follow.Execute(ctx, actorOf(alice.ID), carol.ID)
	require.NoError(t, err)

	require.NoError(t, f.uc.Unfollow.Execute(ctx, actorOf(alice.ID), bob.ID))
	require.NoError(t, f.uc.Unfollow.Execute(ctx, actorOf(alice.ID), bob.ID))

	statuses := f.uc.Statuses.Execute(ctx, actorOf(alice.ID), []uuid.UUID{bob.ID, carol.ID, carol.ID})
	assert.Equal(t, map[uuid.UUID]bool{bob.ID: false, carol.ID: true}, statuses)
}

func TestFollowStatuses_EmptyForAnonymousOrNoIDs(t *testing.T) {
	f := newFixture(capability.All())
	alice := f.store.AddUser("Alice")
	bob := f.store.AddUser("Bob")

	assert.Empty(t, f.uc.Statuses.Execute(context.Background(), nil, []uuid.UUID{bob.ID}))
	assert.Empty(t, f.uc.Statuses.Execute(context.Background(), actorOf(alice.ID), nil))
}

func TestFollowStatuses_SoftFail(t *testing.T) {
	f := newFixture(capability.All())
	alice := f.store.AddUser("Alice")
	bob := f.store.AddUser("Bob")
	f.store.Fail("follows", errors.New("connection reset"))

	statuses := f.uc.Statuses.Execute(context.Background(), actorOf(alice.ID), []uuid.UUID{bob.ID})
	assert.Empty(t, statuses)
	assert.False(t, f.uc.Is.Execute(context.Background(), actorOf(alice.ID), bob.ID))
	assert.Equal(t, 0, f.uc.Counts.Following(context.Background(), alice.ID))
}

func TestFollowCounts(t *testing.T) {
	f := newFixture(capability.All())
	alice := f.store.AddUser("Alice")
	bob := f.store.AddUser("Bob")
	carol := f.store.AddUser("Carol")
	ctx := context.Background()

	for _, follower := range []uuid.UUID{alice.ID, carol.ID} {
		_, err := f.uc.Follow.Execute(ctx, actorOf(follower), bob.ID)
		require.NoError(t, err)
	}

	followers := f.uc.Counts.Followers(ctx, []uuid.UUID{bob.ID, alice.ID})
	assert.Equal(t, 2, followers[bob.ID])
	assert.Equal(t, 0, followers[alice.ID])
	assert.Equal(t, 1, f.uc.Counts.Following(ctx, alice.ID))
}

func TestFollow_NotProvisioned(t *testing.T) {
	f := newFixture(capability.All().Without(capability.Follows))
	alice := f.store.AddUser("Alice")
	bob := f.store.AddUser("Bob")
	ctx := context.Background()

	_, err := f.uc.Follow.Execute(ctx, actorOf(alice.ID), bob.ID)
	assert.True(t, apperror.IsNotProvisioned(err))
	assert.True(t, apperror.IsNotProvisioned(f.uc.Unfollow.Execute(ctx, actorOf(alice.ID), bob.ID)))

	assert.False(t, f.uc.Is.Execute(ctx, actorOf(alice.ID), bob.ID))
	assert.Empty(t, f.uc.Statuses.Execute(ctx, actorOf(alice.ID), []uuid.UUID{bob.ID}))
	assert.Empty(t, f.uc.Counts.Followers(ctx, []uuid.UUID{bob.ID}))
}

func TestFollow_NotificationFailureDoesNotFailFollow(t *testing.T) {
	f := newFixture(capability.All())
	alice := f.store.AddUser("Alice")
	bob := f.store.AddUser("Bob")
	f.store.Fail("notifications", errors.New("notifications table locked"))

	created, err := f.uc.Follow.Execute(context.Background(), actorOf(alice.ID), bob.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Empty(t, f.publisher.Events())
}
