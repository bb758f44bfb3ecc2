package moodboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/capability"
	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/repository"
	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/logger"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/validation"
)

func notProvisioned() error {
	return apperror.NotProvisioned(string(capability.MoodBoards))
}

type ListMoodBoardsUseCase struct {
	boards   repository.MoodBoardRepository
	features capability.Set
}

func NewListMoodBoardsUseCase(boards repository.MoodBoardRepository, features capability.Set) *ListMoodBoardsUseCase {
	return &ListMoodBoardsUseCase{boards: boards, features: features}
}

// Execute возвращает доски владельца с превью первых элементов.
func (uc *ListMoodBoardsUseCase) Execute(ctx context.Context, actor *session.Actor) []*entity.MoodBoard {
	if !actor.Authenticated() || !uc.features.Enabled(capability.MoodBoards) {
		return []*entity.MoodBoard{}
	}

	boards, err := uc.boards.ListByOwner(ctx, actor.ID, validation.MoodBoardPreviewSize)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", actor.ID).Warn("не удалось получить мудборды")
		return []*entity.MoodBoard{}
	}
	if boards == nil {
		return []*entity.MoodBoard{}
	}
	return boards
}

type CreateMoodBoardInput struct {
	Title       string  `json:"title" validate:"notblank,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsPublic    bool    `json:"isPublic"`
}

type CreateMoodBoardUseCase struct {
	boards   repository.MoodBoardRepository
	features capability.Set
}

func NewCreateMoodBoardUseCase(boards repository.MoodBoardRepository, features capability.Set) *CreateMoodBoardUseCase {
	return &CreateMoodBoardUseCase{boards: boards, features: features}
}

func (uc *CreateMoodBoardUseCase) Execute(ctx context.Context, actor *session.Actor, input CreateMoodBoardInput) (*entity.MoodBoard, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if !uc.features.Enabled(capability.MoodBoards) {
		return nil, notProvisioned()
	}

	board := entity.NewMoodBoard(actor.ID, input.Title, input.Description, input.IsPublic)
	if err := uc.boards.Create(ctx, board); err != nil {
		return nil, err
	}
	board.PreviewItems = []*entity.MoodBoardItem{}
	return board, nil
}

type AddItemInput struct {
	MoodBoardID     uuid.UUID  `json:"moodBoardId" validate:"required"`
	PostID          *uuid.UUID `json:"postId"`
	PortfolioItemID *uuid.UUID `json:"portfolioItemId"`
	ImageURL        *string    `json:"imageUrl" validate:"omitempty,url"`
}

type AddItemUseCase struct {
	boards    repository.MoodBoardRepository
	posts     repository.PostRepository
	portfolio repository.PortfolioRepository
	features  capability.Set
}

func NewAddItemUseCase(boards repository.MoodBoardRepository, posts repository.PostRepository, portfolio repository.PortfolioRepository, features capability.Set) *AddItemUseCase {
	return &AddItemUseCase{boards: boards, posts: posts, portfolio: portfolio, features: features}
}

// Execute добавляет элемент в конец доски. Если изображение не передано,
// оно берётся из поста или работы портфолио.
func (uc *AddItemUseCase) Execute(ctx context.Context, actor *session.Actor, input AddItemInput) (*entity.MoodBoardItem, error) {
	if err := session.Require(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.PostID == nil && input.PortfolioItemID == nil && (input.ImageURL == nil || *input.ImageURL == "") {
		return nil, apperror.FieldError("postId", "нужно указать пост, работу или изображение")
	}
	if !uc.features.Enabled(capability.MoodBoards) {
		return nil, notProvisioned()
	}

	board, err := uc.boards.FindByID(ctx, input.MoodBoardID)
	if err != nil {
		return nil, err
	}
	if !board.IsOwnedBy(actor.ID) {
		return nil, apperror.ErrForbidden
	}

	imageURL := input.ImageURL
	if input.PostID != nil {
		post, err := uc.posts.FindByID(ctx, *input.PostID)
		if err != nil {
			return nil, err
		}
		if imageURL == nil {
			imageURL = post.ImageURL
		}
	}
	if input.PortfolioItemID != nil {
		work, err := uc.portfolio.FindByID(ctx, *input.PortfolioItemID)
		if err != nil {
			return nil, err
		}
		if imageURL == nil {
			imageURL = &work.ImageURL
		}
	}

	highest, err := uc.boards.MaxItemOrder(ctx, board.ID)
	if err != nil {
		return nil, err
	}

	item := entity.NewMoodBoardItem(board.ID, input.PostID, input.PortfolioItemID, imageURL, entity.NextOrder(highest))
	if err := uc.boards.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// SavedState — в каких досках актора сохранён пост.
type SavedState struct {
	Saved        bool        `json:"saved"`
	MoodBoardIDs []uuid.UUID `json:"moodBoardIds"`
}

type IsPostSavedUseCase struct {
	boards   repository.MoodBoardRepository
	features capability.Set
}

func NewIsPostSavedUseCase(boards repository.MoodBoardRepository, features capability.Set) *IsPostSavedUseCase {
	return &IsPostSavedUseCase{boards: boards, features: features}
}

func (uc *IsPostSavedUseCase) Execute(ctx context.Context, actor *session.Actor, postID uuid.UUID) SavedState {
	state := SavedState{MoodBoardIDs: []uuid.UUID{}}
	if !actor.Authenticated() || !uc.features.Enabled(capability.MoodBoards) {
		return state
	}

	ids, err := uc.boards.BoardsContainingPost(ctx, actor.ID, postID)
	if err != nil {
		logger.Log.WithError(err).WithField("post_id", postID).Warn("не удалось проверить сохранение поста")
		return state
	}
	if len(ids) > 0 {
		state.Saved = true
		state.MoodBoardIDs = ids
	}
	return state
}

type UseCases struct {
	List    *ListMoodBoardsUseCase
	Create  *CreateMoodBoardUseCase
	AddItem *AddItemUseCase
	IsSaved *IsPostSavedUseCase
}

func New(boards repository.MoodBoardRepository, posts repository.PostRepository, portfolio repository.PortfolioRepository, features capability.Set) UseCases {
	return UseCases{
		List:    NewListMoodBoardsUseCase(boards, features),
		Create:  NewCreateMoodBoardUseCase(boards, features),
		AddItem: NewAddItemUseCase(boards, posts, portfolio, features),
		IsSaved: NewIsPostSavedUseCase(boards, features),
	}
}
