package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

type Jobs struct{ s *Store }

func (s *Store) Jobs() *Jobs { return &Jobs{s: s} }

func (r *Jobs) Create(ctx context.Context, job *entity.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("jobs"); err != nil {
		return err
	}
	cp := *job
	cp.CreatedAt = r.s.stamp(cp.CreatedAt)
	r.s.jobs[job.ID] = &cp
	return nil
}

func (r *Jobs) Update(ctx context.Context, job *entity.Job) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("jobs"); err != nil {
		return err
	}
	existing, ok := r.s.jobs[job.ID]
	if !ok {
		return apperror.ErrJobNotFound
	}
	cp := *job
	cp.CreatedAt = existing.CreatedAt
	r.s.jobs[job.ID] = &cp
	return nil
}

func (r *Jobs) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("jobs"); err != nil {
		return err
	}
	if _, ok := r.s.jobs[id]; !ok {
		return apperror.ErrJobNotFound
	}
	delete(r.s.jobs, id)
	return nil
}

func (r *Jobs) FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("jobs"); err != nil {
		return nil, err
	}
	j, ok := r.s.jobs[id]
	if !ok {
		return nil, apperror.ErrJobNotFound
	}
	cp := *j
	cp.PostedBy = r.s.summary(j.PostedByID)
	return &cp, nil
}

func (r *Jobs) List(ctx context.Context, limit int) ([]*entity.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("jobs"); err != nil {
		return nil, err
	}
	var out []*entity.Job
	for _, j := range r.s.jobs {
		cp := *j
		cp.PostedBy = r.s.summary(j.PostedByID)
		out = append(out, &cp)
	}
	sortByCreatedDesc(out, func(j *entity.Job) time.Time { return j.CreatedAt })
	return limitSlice(out, limit), nil
}

type Events struct{ s *Store }

func (s *Store) Events() *Events { return &Events{s: s} }

func (r *Events) Create(ctx context.Context, event *entity.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("events"); err != nil {
		return err
	}
	cp := *event
	r.s.events[event.ID] = &cp
	return nil
}

func (r *Events) Update(ctx context.Context, event *entity.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("events"); err != nil {
		return err
	}
	if _, ok := r.s.events[event.ID]; !ok {
		return apperror.ErrEventNotFound
	}
	cp := *event
	r.s.events[event.ID] = &cp
	return nil
}

func (r *Events) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("events"); err != nil {
		return err
	}
	if _, ok := r.s.events[id]; !ok {
		return apperror.ErrEventNotFound
	}
	delete(r.s.events, id)
	return nil
}

func (r *Events) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("events"); err != nil {
		return nil, err
	}
	e, ok := r.s.events[id]
	if !ok {
		return nil, apperror.ErrEventNotFound
	}
	cp := *e
	cp.Organizer = r.s.summary(e.OrganizerID)
	return &cp, nil
}

func (r *Events) List(ctx context.Context, limit int) ([]*entity.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("events"); err != nil {
		return nil, err
	}
	var out []*entity.Event
	for _, e := range r.s.events {
		cp := *e
		cp.Organizer = r.s.summary(e.OrganizerID)
		out = append(out, &cp)
	}
	sortByCreatedAsc(out, func(e *entity.Event) time.Time { return e.StartDate })
	return limitSlice(out, limit), nil
}

type Services struct{ s *Store }

func (s *Store) Services() *Services { return &Services{s: s} }

func (r *Services) Create(ctx context.Context, svc *entity.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("services"); err != nil {
		return err
	}
	cp := *svc
	cp.CreatedAt = r.s.stamp(cp.CreatedAt)
	r.s.services[svc.ID] = &cp
	return nil
}

func (r *Services) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("services"); err != nil {
		return err
	}
	if _, ok := r.s.services[id]; !ok {
		return apperror.ErrServiceNotFound
	}
	delete(r.s.services, id)
	return nil
}

func (r *Services) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("services"); err != nil {
		return nil, err
	}
	svc, ok := r.s.services[id]
	if !ok {
		return nil, apperror.ErrServiceNotFound
	}
	cp := *svc
	return &cp, nil
}

func (r *Services) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("services"); err != nil {
		return nil, err
	}
	var out []*entity.Service
	for _, svc := range r.s.services {
		if svc.ProviderID == providerID {
			cp := *svc
			out = append(out, &cp)
		}
	}
	sortByCreatedDesc(out, func(s *entity.Service) time.Time { return s.CreatedAt })
	return out, nil
}

type Portfolio struct{ s *Store }

func (s *Store) Portfolio() *Portfolio { return &Portfolio{s: s} }

func (r *Portfolio) Create(ctx context.Context, item *entity.PortfolioItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("portfolio"); err != nil {
		return err
	}
	cp := *item
	r.s.portfolio[item.ID] = &cp
	return nil
}

func (r *Portfolio) Update(ctx context.Context, item *entity.PortfolioItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("portfolio"); err != nil {
		return err
	}
	if _, ok := r.s.portfolio[item.ID]; !ok {
		return apperror.ErrPortfolioItemNotFound
	}
	cp := *item
	r.s.portfolio[item.ID] = &cp
	return nil
}

func (r *Portfolio) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("portfolio"); err != nil {
		return err
	}
	if _, ok := r.s.portfolio[id]; !ok {
		return apperror.ErrPortfolioItemNotFound
	}
	delete(r.s.portfolio, id)
	return nil
}

func (r *Portfolio) FindByID(ctx context.Context, id uuid.UUID) (*entity.PortfolioItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("portfolio"); err != nil {
		return nil, err
	}
	item, ok := r.s.portfolio[id]
	if !ok {
		return nil, apperror.ErrPortfolioItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *Portfolio) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PortfolioItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("portfolio"); err != nil {
		return nil, err
	}
	var out []*entity.PortfolioItem
	for _, item := range r.s.portfolio {
		if item.UserID == userID {
			cp := *item
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *Portfolio) MaxOrder(ctx context.Context, userID uuid.UUID) (*int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("portfolio"); err != nil {
		return nil, err
	}
	var highest *int
	for _, item := range r.s.portfolio {
		if item.UserID == userID && (highest == nil || item.Order > *highest) {
			v := item.Order
			highest = &v
		}
	}
	return highest, nil
}

type MoodBoards struct{ s *Store }

func (s *Store) MoodBoards() *MoodBoards { return &MoodBoards{s: s} }

func (r *MoodBoards) Create(ctx context.Context, board *entity.MoodBoard) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("moodboards"); err != nil {
		return err
	}
	cp := *board
	cp.UpdatedAt = r.s.stamp(cp.UpdatedAt)
	r.s.boards[board.ID] = &cp
	return nil
}

func (r *MoodBoards) FindByID(ctx context.Context, id uuid.UUID) (*entity.MoodBoard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("moodboards"); err != nil {
		return nil, err
	}
	b, ok := r.s.boards[id]
	if !ok {
		return nil, apperror.ErrMoodBoardNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *MoodBoards) itemsOf(boardID uuid.UUID) []*entity.MoodBoardItem {
	var items []*entity.MoodBoardItem
	for _, it := range r.s.boardItems {
		if it.MoodBoardID == boardID {
			cp := *it
			items = append(items, &cp)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return items
}

func (r *MoodBoards) ListByOwner(ctx context.Context, ownerID uuid.UUID, previewSize int) ([]*entity.MoodBoard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("moodboards"); err != nil {
		return nil, err
	}
	var out []*entity.MoodBoard
	for _, b := range r.s.boards {
		if b.OwnerID != ownerID {
			continue
		}
		cp := *b
		items := r.itemsOf(b.ID)
		cp.ItemCount = len(items)
		cp.PreviewItems = limitSlice(items, previewSize)
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *MoodBoards) AddItem(ctx context.Context, item *entity.MoodBoardItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("moodboards"); err != nil {
		return err
	}
	b, ok := r.s.boards[item.MoodBoardID]
	if !ok {
		return apperror.ErrMoodBoardNotFound
	}
	cp := *item
	r.s.boardItems[item.ID] = &cp
	b.UpdatedAt = r.s.tick()
	return nil
}

func (r *MoodBoards) MaxItemOrder(ctx context.Context, moodBoardID uuid.UUID) (*int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("moodboards"); err != nil {
		return nil, err
	}
	var highest *int
	for _, it := range r.s.boardItems {
		if it.MoodBoardID == moodBoardID && (highest == nil || it.Order > *highest) {
			v := it.Order
			highest = &v
		}
	}
	return highest, nil
}

func (r *MoodBoards) BoardsContainingPost(ctx context.Context, ownerID, postID uuid.UUID) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failure("moodboards"); err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]bool)
	var out []uuid.UUID
	for _, it := range r.s.boardItems {
		if it.PostID == nil || *it.PostID != postID || seen[it.MoodBoardID] {
			continue
		}
		if b, ok := r.s.boards[it.MoodBoardID]; ok && b.OwnerID == ownerID {
			seen[it.MoodBoardID] = true
			out = append(out, it.MoodBoardID)
		}
	}
	return out, nil
}
