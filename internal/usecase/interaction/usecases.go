package interaction

import (
	"github.com/ignatzorin/creative-network/internal/domain/capability"
	"github.com/ignatzorin/creative-network/internal/domain/repository"
)

// UseCases собирает лайки, закладки и комментарии.
type UseCases struct {
	ToggleLike     *ToggleLikeUseCase
	LikeStatus     *LikeStatusUseCase
	LikeCounts     *LikeCountsUseCase
	ToggleBookmark *ToggleBookmarkUseCase
	BookmarkStatus *BookmarkStatusUseCase
	Bookmarked     *ListBookmarkedPostsUseCase
	CreateComment  *CreateCommentUseCase
	ListComments   *ListCommentsUseCase
	DeleteComment  *DeleteCommentUseCase
}

type Deps struct {
	Posts     repository.PostRepository
	Likes     repository.LikeRepository
	Bookmarks repository.BookmarkRepository
	Comments  repository.CommentRepository
	Users     repository.UserRepository
	Notifier  Notifier
	Features  capability.Set
}

func New(d Deps) UseCases {
	return UseCases{
		ToggleLike:     NewToggleLikeUseCase(d.Posts, d.Likes, d.Notifier),
		LikeStatus:     NewLikeStatusUseCase(d.Likes),
		LikeCounts:     NewLikeCountsUseCase(d.Likes),
		ToggleBookmark: NewToggleBookmarkUseCase(d.Posts, d.Bookmarks),
		BookmarkStatus: NewBookmarkStatusUseCase(d.Bookmarks),
		Bookmarked:     NewListBookmarkedPostsUseCase(d.Posts),
		CreateComment:  NewCreateCommentUseCase(d.Posts, d.Comments, d.Users, d.Notifier, d.Features),
		ListComments:   NewListCommentsUseCase(d.Comments, d.Features),
		DeleteComment:  NewDeleteCommentUseCase(d.Comments, d.Features),
	}
}
