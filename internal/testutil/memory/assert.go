package memory

import "github.com/ignatzorin/creative-network/internal/domain/repository"

var (
	_ repository.UserRepository         = (*Users)(nil)
	_ repository.PostRepository         = (*Posts)(nil)
	_ repository.LikeRepository         = (*Likes)(nil)
	_ repository.BookmarkRepository     = (*Bookmarks)(nil)
	_ repository.CommentRepository      = (*Comments)(nil)
	_ repository.FollowRepository       = (*Follows)(nil)
	_ repository.NotificationRepository = (*Notifications)(nil)
	_ repository.RealtimePublisher      = (*Publisher)(nil)
	_ repository.ConversationRepository = (*Conversations)(nil)
	_ repository.MessageRepository      = (*Messages)(nil)
	_ repository.JobRepository          = (*Jobs)(nil)
	_ repository.EventRepository        = (*Events)(nil)
	_ repository.ServiceRepository      = (*Services)(nil)
	_ repository.PortfolioRepository    = (*Portfolio)(nil)
	_ repository.MoodBoardRepository    = (*MoodBoards)(nil)
)
