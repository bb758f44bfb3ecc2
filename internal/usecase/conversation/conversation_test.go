package conversation_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/creative-network/internal/domain/capability"
	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/testutil/memory"
	"github.com/ignatzorin/creative-network/internal/usecase/conversation"
)

type fixture struct {
	store     *memory.Store
	publisher *memory.Publisher
	uc        conversation.UseCases
	alice     *entity.User
	bob       *entity.User
}

func newFixture(features capability.Set) *fixture {
	store := memory.NewStore()
	publisher := &memory.Publisher{}
	return &fixture{
		store:     store,
		publisher: publisher,
		uc:        conversation.New(store.Conversations(), store.Messages(), store.Users(), publisher, features),
		alice:     store.AddUser("Alice"),
		bob:       store.AddUser("Bob"),
	}
}

func actorOf(u *entity.User) *session.Actor {
	return &session.Actor{ID: u.ID}
}

func (f *fixture) send(t *testing.T, from *entity.User, convID uuid.UUID, text string) *entity.Message {
	t.Helper()
	msg, err := f.uc.Send.Execute(context.Background(), actorOf(from), conversation.SendMessageInput{
		ConversationID: convID,
		Content:        text,
	})
	require.NoError(t, err)
	return msg
}

func TestGetOrCreate_SamePairBothOrders(t *testing.T) {
	f := newFixture(capability.All())
	ctx := context.Background()

	first, err := f.uc.GetOrCreate.Execute(ctx, actorOf(f.alice), f.bob.ID)
	require.NoError(t, err)
	second, err := f.uc.GetOrCreate.Execute(ctx, actorOf(f.bob), f.alice.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, f.store.ConversationCount())
	assert.Equal(t, f.alice.ID, first.User1ID)
	require.NotNil(t, first.User2)
	assert.Equal(t, "Bob", first.User2.Name)
}

func TestGetOrCreate_ConcurrentCreateReturnsExisting(t *testing.T) {
	f := newFixture(capability.All())
	existing, err := entity.NewConversation(f.bob.ID, f.alice.ID)
	require.NoError(t, err)

	// Беседа появляется между FindByPair и Create.
	racing := &racingConversations{Conversations: f.store.Conversations(), pending: existing}
	uc := conversation.NewGetOrCreateConversationUseCase(racing, f.store.Users(), capability.All())

	conv, err := uc.Execute(context.Background(), actorOf(f.alice), f.bob.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, conv.ID)
	assert.Equal(t, 1, f.store.ConversationCount())
}

type racingConversations struct {
	*memory.Conversations
	pending *entity.Conversation
}

func (r *racingConversations) Create(ctx context.Context, conv *entity.Conversation) error {
	if r.pending != nil {
		r.Preseed(r.pending)
		r.pending = nil
	}
	return r.Conversations.Create(ctx, conv)
}

func TestGetOrCreate_Errors(t *testing.T) {
	f := newFixture(capability.All())
	ctx := context.Background()

	_, err := f.uc.GetOrCreate.Execute(ctx, nil, f.bob.ID)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = f.uc.GetOrCreate.Execute(ctx, actorOf(f.alice), f.alice.ID)
	assert.True(t, apperror.IsValidation(err))

	_, err = f.uc.GetOrCreate.Execute(ctx, actorOf(f.alice), uuid.New())
	assert.True(t, apperror.IsNotFound(err))

	_, err = f.uc.GetOrCreate.Execute(ctx, actorOf(f.alice), uuid.Nil)
	assert.True(t, apperror.IsValidation(err))
}

func TestSendMessage_PublishesToOtherParticipant(t *testing.T) {
	f := newFixture(capability.All())
	conv, err := f.uc.GetOrCreate.Execute(context.Background(), actorOf(f.alice), f.bob.ID)
	require.NoError(t, err)

	msg := f.send(t, f.alice, conv.ID, "  привет  ")
	assert.Equal(t, "привет", msg.Content)
	assert.False(t, msg.Read)
	require.NotNil(t, msg.Sender)
	assert.Equal(t, "Alice", msg.Sender.Name)

	events := f.publisher.Of(conversation.EventMessageNew)
	require.Len(t, events, 1)
	assert.Equal(t, f.bob.ID, events[0].UserID)
}

func TestSendMessage_Validation(t *testing.T) {
	f := newFixture(capability.All())
	conv, err := f.uc.GetOrCreate.Execute(context.Background(), actorOf(f.alice), f.bob.ID)
	require.NoError(t, err)

	for name, content := range map[string]string{
		"empty":    "   ",
		"too long": strings.Repeat("я", 2001),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.uc.Send.Execute(context.Background(), actorOf(f.alice), conversation.SendMessageInput{
				ConversationID: conv.ID,
				Content:        content,
			})
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
		})
	}
}

func TestSendMessage_NonParticipantForbidden(t *testing.T) {
	f := newFixture(capability.All())
	carol := f.store.AddUser("Carol")
	conv, err := f.uc.GetOrCreate.Execute(context.Background(), actorOf(f.alice), f.bob.ID)
	require.NoError(t, err)

	_, err = f.uc.Send.Execute(context.Background(), actorOf(carol), conversation.SendMessageInput{
		ConversationID: conv.ID,
		Content:        "можно к вам?",
	})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	_, err = f.uc.Load.Execute(context.Background(), actorOf(carol), conv.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestLoadThread_DoesNotMarkRead(t *testing.T) {
	f := newFixture(capability.All())
	ctx := context.Background()
	conv, err := f.uc.GetOrCreate.Execute(ctx, actorOf(f.alice), f.bob.ID)
	require.NoError(t, err)
	f.send(t, f.alice, conv.ID, "первое")
	f.send(t, f.alice, conv.ID, "второе")

	thread, err := f.uc.Load.Execute(ctx, actorOf(f.bob), conv.ID)
	require.NoError(t, err)
	require.Len(t, thread.Messages, 2)
	assert.Equal(t, "первое", thread.Messages[0].Content)
	assert.Equal(t, "второе", thread.Messages[1].Content)
	assert.Equal(t, 2, f.uc.Unread.Execute(ctx, actorOf(f.bob)))
}

func TestOpen_MarksIncomingReadAndReturnsUpdatedState(t *testing.T) {
	f := newFixture(capability.All())
	ctx := context.Background()
	conv, err := f.uc.GetOrCreate.Execute(ctx, actorOf(f.alice), f.bob.ID)
	require.NoError(t, err)
	f.send(t, f.alice, conv.ID, "вопрос")
	f.send(t, f.bob, conv.ID, "ответ")

	thread, err := f.uc.Open.Execute(ctx, actorOf(f.bob), conv.ID)
	require.NoError(t, err)
	require.Len(t, thread.Messages, 2)
	assert.True(t, thread.Messages[0].Read)
	assert.False(t, thread.Messages[1].Read, "собственное сообщение не отмечается")

	assert.Equal(t, 0, f.uc.Unread.Execute(ctx, actorOf(f.bob)))
	assert.Equal(t, 1, f.uc.Unread.Execute(ctx, actorOf(f.alice)))

	reads := f.publisher.Of(conversation.EventConversationRead)
	require.Len(t, reads, 1)
	assert.Equal(t, f.alice.ID, reads[0].UserID)
}

func TestMarkThreadRead_Monotonic(t *testing.T) {
	f := newFixture(capability.All())
	ctx := context.Background()
	conv, err := f.uc.GetOrCreate.Execute(ctx, actorOf(f.alice), f.bob.ID)
	require.NoError(t, err)
	f.send(t, f.alice, conv.ID, "раз")

	marked, err := f.uc.MarkRead.Execute(ctx, actorOf(f.bob), conv.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), marked)

	marked, err = f.uc.MarkRead.Execute(ctx, actorOf(f.bob), conv.ID)
	require.NoError(t, err)
	assert.Zero(t, marked)
	assert.Len(t, f.publisher.Of(conversation.EventConversationRead), 1)
}

func TestList_OrderedByActivityWithUnread(t *testing.T) {
	f := newFixture(capability.All())
	ctx := context.Background()
	carol := f.store.AddUser("Carol")

	withBob, err := f.uc.GetOrCreate.Execute(ctx, actorOf(f.alice), f.bob.ID)
	require.NoError(t, err)
	withCarol, err := f.uc.GetOrCreate.Execute(ctx, actorOf(f.alice), carol.ID)
	require.NoError(t, err)

	f.send(t, carol, withCarol.ID, "привет от Carol")
	f.send(t, f.bob, withBob.ID, "привет от Bob")
	f.send(t, f.bob, withBob.ID, "ещё раз")

	previews := f.uc.List.Execute(ctx, actorOf(f.alice))
	require.Len(t, previews, 2)
	assert.Equal(t, withBob.ID, previews[0].Conversation.ID)
	assert.Equal(t, 2, previews[0].UnreadCount)
	require.NotNil(t, previews[0].LatestMessage)
	assert.Equal(t, "ещё раз", previews[0].LatestMessage.Content)
	assert.Equal(t, "Bob", previews[0].OtherUser.Name)
	assert.Equal(t, withCarol.ID, previews[1].Conversation.ID)
	assert.Equal(t, 3, f.uc.Unread.Execute(ctx, actorOf(f.alice)))
}

func TestList_SoftFail(t *testing.T) {
	f := newFixture(capability.All())
	f.store.Fail("conversations", errors.New("relation does not exist"))
	f.store.Fail("messages", errors.New("relation does not exist"))

	assert.Empty(t, f.uc.List.Execute(context.Background(), actorOf(f.alice)))
	assert.Zero(t, f.uc.Unread.Execute(context.Background(), actorOf(f.alice)))
	assert.Empty(t, f.uc.List.Execute(context.Background(), nil))
}

func TestMessaging_NotProvisioned(t *testing.T) {
	f := newFixture(capability.All().Without(capability.Messaging))
	ctx := context.Background()

	_, err := f.uc.GetOrCreate.Execute(ctx, actorOf(f.alice), f.bob.ID)
	assert.True(t, apperror.IsNotProvisioned(err))

	_, err = f.uc.Send.Execute(ctx, actorOf(f.alice), conversation.SendMessageInput{ConversationID: uuid.New(), Content: "x"})
	assert.True(t, apperror.IsNotProvisioned(err))

	assert.Empty(t, f.uc.List.Execute(ctx, actorOf(f.alice)))
	assert.Zero(t, f.uc.Unread.Execute(ctx, actorOf(f.alice)))
}
