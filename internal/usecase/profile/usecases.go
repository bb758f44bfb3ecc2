package profile

import (
	"github.com/ignatzorin/creative-network/internal/domain/repository"
)

type UseCases struct {
	Me         *MeUseCase
	Update     *UpdateProfileUseCase
	Public     *PublicProfileUseCase
	People     *PeopleUseCase
	CreateItem *CreatePortfolioItemUseCase
	UpdateItem *UpdatePortfolioItemUseCase
	DeleteItem *DeletePortfolioItemUseCase
	ListItems  *ListPortfolioUseCase
}

type Deps struct {
	Users     repository.UserRepository
	Posts     repository.PostRepository
	Portfolio repository.PortfolioRepository
	Services  ServiceLister
	Follows   FollowReader
}

func New(d Deps) UseCases {
	return UseCases{
		Me:         NewMeUseCase(d.Users, d.Portfolio),
		Update:     NewUpdateProfileUseCase(d.Users),
		Public:     NewPublicProfileUseCase(d.Users, d.Posts, d.Portfolio, d.Services, d.Follows),
		People:     NewPeopleUseCase(d.Users, d.Posts, d.Follows),
		CreateItem: NewCreatePortfolioItemUseCase(d.Portfolio),
		UpdateItem: NewUpdatePortfolioItemUseCase(d.Portfolio),
		DeleteItem: NewDeletePortfolioItemUseCase(d.Portfolio),
		ListItems:  NewListPortfolioUseCase(d.Portfolio),
	}
}
