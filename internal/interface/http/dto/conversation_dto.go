package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
)

type StartConversationRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

type ConversationResponse struct {
	ID        uuid.UUID            `json:"id"`
	User1     *UserSummaryResponse `json:"user1"`
	User2     *UserSummaryResponse `json:"user2"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

type MessageResponse struct {
	ID             uuid.UUID            `json:"id"`
	ConversationID uuid.UUID            `json:"conversationId"`
	SenderID       uuid.UUID            `json:"senderId"`
	Content        string               `json:"content"`
	Read           bool                 `json:"read"`
	CreatedAt      time.Time            `json:"createdAt"`
	Sender         *UserSummaryResponse `json:"sender"`
}

type ConversationPreviewResponse struct {
	ID            uuid.UUID            `json:"id"`
	OtherUser     *UserSummaryResponse `json:"otherUser"`
	LatestMessage *MessageResponse     `json:"latestMessage"`
	UnreadCount   int                  `json:"unreadCount"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

type ThreadResponse struct {
	Conversation ConversationResponse `json:"conversation"`
	Messages     []MessageResponse    `json:"messages"`
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}

func ToConversationResponse(conv *entity.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:        conv.ID,
		User1:     ToUserSummary(conv.User1),
		User2:     ToUserSummary(conv.User2),
		CreatedAt: conv.CreatedAt,
		UpdatedAt: conv.UpdatedAt,
	}
}

func ToMessageResponse(msg *entity.Message) MessageResponse {
	return MessageResponse{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		Content:        msg.Content,
		Read:           msg.Read,
		CreatedAt:      msg.CreatedAt,
		Sender:         ToUserSummary(msg.Sender),
	}
}

func ToMessageResponses(msgs []*entity.Message) []MessageResponse {
	result := make([]MessageResponse, len(msgs))
	for i, msg := range msgs {
		result[i] = ToMessageResponse(msg)
	}
	return result
}

func ToThreadResponse(t *entity.Thread) ThreadResponse {
	return ThreadResponse{
		Conversation: ToConversationResponse(t.Conversation),
		Messages:     ToMessageResponses(t.Messages),
	}
}

func ToPreviewResponses(previews []*entity.ConversationPreview) []ConversationPreviewResponse {
	result := make([]ConversationPreviewResponse, len(previews))
	for i, p := range previews {
		item := ConversationPreviewResponse{
			ID:          p.Conversation.ID,
			OtherUser:   ToUserSummary(p.OtherUser),
			UnreadCount: p.UnreadCount,
			UpdatedAt:   p.Conversation.UpdatedAt,
		}
		if p.LatestMessage != nil {
			msg := ToMessageResponse(p.LatestMessage)
			item.LatestMessage = &msg
		}
		result[i] = item
	}
	return result
}
