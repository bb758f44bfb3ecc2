package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

func TestActor_Authenticated(t *testing.T) {
	var nilActor *Actor
	assert.False(t, nilActor.Authenticated())
	assert.False(t, (&Actor{}).Authenticated())
	assert.True(t, (&Actor{ID: uuid.New()}).Authenticated())
}

func TestActor_Is(t *testing.T) {
	id := uuid.New()
	var nilActor *Actor

	assert.True(t, (&Actor{ID: id}).Is(id))
	assert.False(t, (&Actor{ID: id}).Is(uuid.New()))
	assert.False(t, nilActor.Is(uuid.Nil))
	assert.Equal(t, uuid.Nil, nilActor.UserID())
}

func TestRequire(t *testing.T) {
	assert.ErrorIs(t, Require(nil), apperror.ErrUnauthorized)
	assert.NoError(t, Require(&Actor{ID: uuid.New()}))
}
