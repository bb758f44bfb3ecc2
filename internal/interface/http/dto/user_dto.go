package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/service"
	"github.com/ignatzorin/creative-network/internal/usecase/profile"
)

type UserSummaryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image *string   `json:"image"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name"`
	Image     *string   `json:"image"`
	Bio       *string   `json:"bio"`
	Skills    []string  `json:"skills"`
	Tools     []string  `json:"tools"`
	CreatedAt time.Time `json:"createdAt"`
}

type StatsResponse struct {
	Posts     int `json:"posts"`
	Followers int `json:"followers"`
	Following int `json:"following"`
}

type ProfileResponse struct {
	User        UserResponse        `json:"user"`
	Portfolio   []PortfolioResponse `json:"portfolio"`
	Services    []ServiceResponse   `json:"services"`
	Stats       StatsResponse       `json:"stats"`
	IsFollowing bool                `json:"isFollowing"`
}

type PersonResponse struct {
	User        UserResponse  `json:"user"`
	Stats       StatsResponse `json:"stats"`
	IsFollowing bool          `json:"isFollowing"`
}

type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
}

type FollowStatusesRequest struct {
	UserIDs []uuid.UUID `json:"userIds"`
}

func ToUserSummary(u *entity.UserSummary) *UserSummaryResponse {
	if u == nil {
		return nil
	}
	return &UserSummaryResponse{ID: u.ID, Name: u.Name, Image: u.Image}
}

func toUser(u *entity.User, withEmail bool) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Image:     u.Image,
		Bio:       u.Bio,
		Skills:    nonNilStrings(u.Skills),
		Tools:     nonNilStrings(u.Tools),
		CreatedAt: u.CreatedAt,
	}
	if withEmail {
		resp.Email = u.Email
	}
	return resp
}

// ToOwnUser включает email, публичные ответы его не содержат.
func ToOwnUser(u *entity.User) UserResponse {
	return toUser(u, true)
}

func ToPublicUser(u *entity.User) UserResponse {
	return toUser(u, false)
}

func toStats(s entity.UserStats) StatsResponse {
	return StatsResponse{Posts: s.Posts, Followers: s.Followers, Following: s.Following}
}

func ToProfileResponse(p *profile.Profile, own bool) ProfileResponse {
	return ProfileResponse{
		User:        toUser(p.User, own),
		Portfolio:   ToPortfolioResponses(p.Portfolio),
		Services:    ToServiceResponses(p.Services),
		Stats:       toStats(p.Stats),
		IsFollowing: p.IsFollowing,
	}
}

func ToPersonResponses(people []*profile.Person) []PersonResponse {
	result := make([]PersonResponse, len(people))
	for i, p := range people {
		result[i] = PersonResponse{
			User:        ToPublicUser(p.User),
			Stats:       toStats(p.Stats),
			IsFollowing: p.IsFollowing,
		}
	}
	return result
}

func ToAuthResponse(res *service.AuthResult) AuthResponse {
	return AuthResponse{
		User:        ToOwnUser(res.User),
		AccessToken: res.AccessToken,
		ExpiresAt:   res.ExpiresAt,
	}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
