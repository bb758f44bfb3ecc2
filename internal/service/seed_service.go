package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/repository"
	"github.com/ignatzorin/creative-network/internal/domain/valueobject"
)

// SeedPassword — общий пароль всех сгенерированных аккаунтов.
const SeedPassword = "password123"

// SeedAccount описывает созданный аккаунт для входа.
type SeedAccount struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// SeedService генерирует демонстрационные данные для development.
type SeedService struct {
	users   repository.UserRepository
	posts   repository.PostRepository
	jobs    repository.JobRepository
	follows repository.FollowRepository
	rnd     *rand.Rand
}

func NewSeedService(users repository.UserRepository, posts repository.PostRepository, jobs repository.JobRepository, follows repository.FollowRepository, seed int64) *SeedService {
	return &SeedService{
		users:   users,
		posts:   posts,
		jobs:    jobs,
		follows: follows,
		rnd:     rand.New(rand.NewSource(seed)),
	}
}

var (
	seedFirstNames = []string{
		"Анна", "Мария", "Елена", "Ольга", "Дарья", "Алиса",
		"Александр", "Дмитрий", "Максим", "Илья", "Роман", "Егор",
	}
	seedLastNames = []string{"Иванова", "Петрова", "Смирнова", "Козлов", "Соколов", "Волков"}
	seedSkills    = []string{"Иллюстрация", "Фотография", "UI/UX Design", "Типографика", "3D", "Моушн", "Брендинг", "Керамика"}
	seedTools     = []string{"Figma", "Photoshop", "Illustrator", "Blender", "Procreate", "After Effects", "Lightroom"}
	seedPosts     = []string{
		"Закончила серию постеров для фестиваля, делюсь процессом.",
		"Ищу коллаборацию с фотографом для лукбука.",
		"Новый шрифт почти готов, осталось довести кириллицу.",
		"Эскизы к обложке альбома, какой вариант ближе?",
		"Первый опыт с ризографией, цвета получились неожиданные.",
	}
)

// SeedData создаёт пользователей, их посты, вакансии и случайные подписки.
func (s *SeedService) SeedData(ctx context.Context, numUsers, postsPerUser int) ([]SeedAccount, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("seed service: hash password: %w", err)
	}

	users := make([]*entity.User, 0, numUsers)
	accounts := make([]SeedAccount, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		name := seedFirstNames[s.rnd.Intn(len(seedFirstNames))] + " " + seedLastNames[s.rnd.Intn(len(seedLastNames))]
		email := fmt.Sprintf("seed.%d.%d@example.com", i+1, s.rnd.Intn(1_000_000))

		user, err := entity.NewUser(email, name, string(hash))
		if err != nil {
			return nil, err
		}
		user.Skills = s.pick(seedSkills, 3)
		user.Tools = s.pick(seedTools, 2)
		if err := s.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("seed service: create user: %w", err)
		}
		users = append(users, user)
		accounts = append(accounts, SeedAccount{Email: email, Name: name, Password: SeedPassword})
	}

	for _, user := range users {
		for j := 0; j < postsPerUser; j++ {
			content := seedPosts[s.rnd.Intn(len(seedPosts))]
			post, err := entity.NewPost(user.ID, &content, nil)
			if err != nil {
				return nil, err
			}
			if err := s.posts.Create(ctx, post); err != nil {
				return nil, fmt.Errorf("seed service: create post: %w", err)
			}
		}
	}

	if err := s.seedJobs(ctx, users); err != nil {
		return nil, err
	}
	if err := s.seedFollows(ctx, users); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *SeedService) seedJobs(ctx context.Context, users []*entity.User) error {
	for i, user := range users {
		if i%3 != 0 {
			continue
		}
		company := strings.Split(user.Name, " ")[0] + " Studio"
		job := entity.NewJob(user.ID, entity.JobDetails{
			Title:       "Ищем иллюстратора в команду",
			Description: "Нужен иллюстратор для серии обложек и промо-материалов.",
			Company:     &company,
			Type:        valueobject.JobTypes[s.rnd.Intn(len(valueobject.JobTypes))],
		})
		if err := s.jobs.Create(ctx, job); err != nil {
			return fmt.Errorf("seed service: create job: %w", err)
		}
	}
	return nil
}

func (s *SeedService) seedFollows(ctx context.Context, users []*entity.User) error {
	if len(users) < 2 {
		return nil
	}
	for _, user := range users {
		target := users[s.rnd.Intn(len(users))]
		if target.ID == user.ID {
			continue
		}
		follow, err := entity.NewFollow(user.ID, target.ID)
		if err != nil {
			return err
		}
		if _, err := s.follows.Create(ctx, follow); err != nil {
			return fmt.Errorf("seed service: create follow: %w", err)
		}
	}
	return nil
}

// pick возвращает до n различных элементов.
func (s *SeedService) pick(from []string, n int) []string {
	idx := s.rnd.Perm(len(from))
	if n > len(idx) {
		n = len(idx)
	}
	out := make([]string, 0, n)
	for _, i := range idx[:n] {
		out = append(out, from[i])
	}
	return out
}
