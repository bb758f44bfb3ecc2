package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/creative-network/internal/domain/valueobject"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

func strPtr(s string) *string { return &s }

func TestNewPost_RequiresContentOrImage(t *testing.T) {
	author := uuid.New()

	_, err := NewPost(author, nil, nil)
	assert.True(t, apperror.IsValidation(err))

	_, err = NewPost(author, strPtr("  "), strPtr(""))
	assert.True(t, apperror.IsValidation(err))

	p, err := NewPost(author, strPtr("hi"), nil)
	require.NoError(t, err)
	assert.Equal(t, "hi", *p.Content)
	assert.Nil(t, p.ImageURL)

	p, err = NewPost(author, nil, strPtr("https://x/y.png"))
	require.NoError(t, err)
	assert.True(t, p.IsOwnedBy(author))
}

func TestPost_UpdateKeepsInvariant(t *testing.T) {
	p, err := NewPost(uuid.New(), strPtr("hi"), nil)
	require.NoError(t, err)

	assert.Error(t, p.Update(nil, nil))
	assert.Equal(t, "hi", *p.Content)

	require.NoError(t, p.Update(nil, strPtr("https://x/z.png")))
	assert.Nil(t, p.Content)
}

func TestNewFollow_RejectsSelf(t *testing.T) {
	id := uuid.New()
	_, err := NewFollow(id, id)
	assert.True(t, apperror.IsValidation(err))

	f, err := NewFollow(id, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, id, f.FollowerID)
}

func TestNewNotification_SuppressesSelf(t *testing.T) {
	id := uuid.New()
	assert.Nil(t, NewNotification(valueobject.NotificationLike, id, &id, nil, nil))

	other := uuid.New()
	n := NewNotification(valueobject.NotificationLike, id, &other, nil, nil)
	require.NotNil(t, n)
	assert.False(t, n.Read)
	n.MarkRead()
	assert.True(t, n.Read)
}

func TestConversation_Participants(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	_, err := NewConversation(a, a)
	assert.Error(t, err)

	c, err := NewConversation(a, b)
	require.NoError(t, err)
	assert.True(t, c.IsParticipant(a))
	assert.True(t, c.IsParticipant(b))
	assert.False(t, c.IsParticipant(uuid.New()))
	assert.Equal(t, b, c.OtherParticipant(a))
	assert.Equal(t, a, c.OtherParticipant(b))
}

func TestEvent_EndBeforeStart(t *testing.T) {
	start := time.Now()
	end := start.Add(-time.Hour)
	_, err := NewEvent(uuid.New(), EventDetails{Title: "Meetup", StartDate: start, EndDate: &end})
	assert.True(t, apperror.IsValidation(err))
}

func TestNextOrder(t *testing.T) {
	assert.Equal(t, 1, NextOrder(nil))
	highest := 4
	assert.Equal(t, 5, NextOrder(&highest))
}

func TestUser_ApplyProfile(t *testing.T) {
	u, err := NewUser(" Ann@Example.com ", "Ann", "hash")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", u.Email)

	u.ApplyProfile(ProfilePatch{Bio: strPtr(""), Skills: []string{" Go "}})
	assert.Nil(t, u.Bio)
	assert.Equal(t, []string{"Go"}, u.Skills)
	assert.Equal(t, "Ann", u.Name)
}
