package persistence

import "github.com/ignatzorin/creative-network/internal/domain/repository"

var (
	_ repository.UserRepository         = (*UserRepositoryAdapter)(nil)
	_ repository.PostRepository         = (*PostRepositoryAdapter)(nil)
	_ repository.LikeRepository         = (*LikeRepositoryAdapter)(nil)
	_ repository.BookmarkRepository     = (*BookmarkRepositoryAdapter)(nil)
	_ repository.CommentRepository      = (*CommentRepositoryAdapter)(nil)
	_ repository.FollowRepository       = (*FollowRepositoryAdapter)(nil)
	_ repository.NotificationRepository = (*NotificationRepositoryAdapter)(nil)
	_ repository.ConversationRepository = (*ConversationRepositoryAdapter)(nil)
	_ repository.MessageRepository      = (*MessageRepositoryAdapter)(nil)
	_ repository.JobRepository          = (*JobRepositoryAdapter)(nil)
	_ repository.EventRepository        = (*EventRepositoryAdapter)(nil)
	_ repository.ServiceRepository      = (*ServiceRepositoryAdapter)(nil)
	_ repository.PortfolioRepository    = (*PortfolioRepositoryAdapter)(nil)
	_ repository.MoodBoardRepository    = (*MoodBoardRepositoryAdapter)(nil)
)
