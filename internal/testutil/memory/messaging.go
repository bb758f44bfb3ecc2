package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

type Conversations struct{ s *Store }

func (s *Store) Conversations() *Conversations { return &Conversations{s: s} }

func (s *Store) hydrateConversation(c *entity.Conversation) *entity.Conversation {
	cp := *c
	cp.User1 = s.summary(c.User1ID)
	cp.User2 = s.summary(c.User2ID)
	return &cp
}

func (s *Store) findPair(a, b uuid.UUID) *entity.Conversation {
	for _, c := range s.conversations {
		if (c.User1ID == a && c.User2ID == b) || (c.User1ID == b && c.User2ID == a) {
			return c
		}
	}
	return nil
}

func (r *Conversations) Create(ctx context.Context, conv *entity.Conversation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("conversations"); err != nil {
		return err
	}
	if r.s.findPair(conv.User1ID, conv.User2ID) != nil {
		return apperror.ErrConversationExists
	}
	cp := *conv
	cp.UpdatedAt = r.s.stamp(cp.UpdatedAt)
	r.s.conversations[conv.ID] = &cp
	return nil
}

// Preseed кладёт беседу в обход Create, имитируя гонку двух запросов.
func (r *Conversations) Preseed(conv *entity.Conversation) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *conv
	r.s.conversations[conv.ID] = &cp
}

func (r *Conversations) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("conversations"); err != nil {
		return nil, err
	}
	c, ok := r.s.conversations[id]
	if !ok {
		return nil, apperror.ErrConversationNotFound
	}
	return r.s.hydrateConversation(c), nil
}

func (r *Conversations) FindByPair(ctx context.Context, userA, userB uuid.UUID) (*entity.Conversation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("conversations"); err != nil {
		return nil, err
	}
	c := r.s.findPair(userA, userB)
	if c == nil {
		return nil, nil
	}
	return r.s.hydrateConversation(c), nil
}

func (r *Conversations) ListPreviews(ctx context.Context, userID uuid.UUID) ([]*entity.ConversationPreview, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("conversations"); err != nil {
		return nil, err
	}
	var convs []*entity.Conversation
	for _, c := range r.s.conversations {
		if c.IsParticipant(userID) {
			convs = append(convs, r.s.hydrateConversation(c))
		}
	}
	sort.SliceStable(convs, func(i, j int) bool { return convs[i].UpdatedAt.After(convs[j].UpdatedAt) })

	out := make([]*entity.ConversationPreview, 0, len(convs))
	for _, c := range convs {
		preview := &entity.ConversationPreview{Conversation: c, OtherUser: c.OtherUser(userID)}
		for _, m := range r.s.messages {
			if m.ConversationID != c.ID {
				continue
			}
			if preview.LatestMessage == nil || m.CreatedAt.After(preview.LatestMessage.CreatedAt) {
				cp := *m
				preview.LatestMessage = &cp
			}
			if m.SenderID != userID && !m.Read {
				preview.UnreadCount++
			}
		}
		out = append(out, preview)
	}
	return out, nil
}

type Messages struct{ s *Store }

func (s *Store) Messages() *Messages { return &Messages{s: s} }

func (r *Messages) Append(ctx context.Context, msg *entity.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("messages"); err != nil {
		return err
	}
	conv, ok := r.s.conversations[msg.ConversationID]
	if !ok {
		return apperror.ErrConversationNotFound
	}
	cp := *msg
	cp.CreatedAt = r.s.stamp(cp.CreatedAt)
	r.s.messages[msg.ID] = &cp
	conv.UpdatedAt = r.s.tick()
	return nil
}

func (r *Messages) ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("messages"); err != nil {
		return nil, err
	}
	var out []*entity.Message
	for _, m := range r.s.messages {
		if m.ConversationID == conversationID {
			cp := *m
			cp.Sender = r.s.summary(m.SenderID)
			out = append(out, &cp)
		}
	}
	sortByCreatedAsc(out, func(m *entity.Message) time.Time { return m.CreatedAt })
	return out, nil
}

func (r *Messages) MarkReadFor(ctx context.Context, conversationID, readerID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("messages"); err != nil {
		return 0, err
	}
	var changed int64
	for _, m := range r.s.messages {
		if m.ConversationID == conversationID && m.SenderID != readerID && !m.Read {
			m.Read = true
			changed++
		}
	}
	return changed, nil
}

func (r *Messages) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("messages"); err != nil {
		return 0, err
	}
	n := 0
	for _, m := range r.s.messages {
		conv, ok := r.s.conversations[m.ConversationID]
		if ok && conv.IsParticipant(userID) && m.SenderID != userID && !m.Read {
			n++
		}
	}
	return n, nil
}
