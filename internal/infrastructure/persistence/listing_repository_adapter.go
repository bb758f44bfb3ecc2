package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/domain/valueobject"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/repository/common"
)

type JobRepositoryAdapter struct {
	db *sqlx.DB
}

func NewJobRepositoryAdapter(db *sqlx.DB) *JobRepositoryAdapter {
	return &JobRepositoryAdapter{db: db}
}

const selectJob = `SELECT j.id, j.posted_by_id, j.title, j.description, j.company, j.location, j.type,
		j.compensation, j.application_url, j.created_at, j.updated_at,
		u.name AS poster_name, u.image AS poster_image
	FROM jobs j
	JOIN users u ON u.id = j.posted_by_id`

func (r *JobRepositoryAdapter) Create(ctx context.Context, job *entity.Job) error {
	query := `INSERT INTO jobs (id, posted_by_id, title, description, company, location, type,
			compensation, application_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query, job.ID, job.PostedByID, job.Title, job.Description, job.Company,
		job.Location, string(job.Type), job.Compensation, job.ApplicationURL, job.CreatedAt, job.UpdatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать вакансию")
	}
	return nil
}

func (r *JobRepositoryAdapter) Update(ctx context.Context, job *entity.Job) error {
	query := `UPDATE jobs SET title = $2, description = $3, company = $4, location = $5, type = $6,
			compensation = $7, application_url = $8, updated_at = $9
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, job.ID, job.Title, job.Description, job.Company, job.Location,
		string(job.Type), job.Compensation, job.ApplicationURL, job.UpdatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить вакансию")
	}
	return requireAffected(res, apperror.ErrJobNotFound)
}

func (r *JobRepositoryAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось удалить вакансию")
	}
	return requireAffected(res, apperror.ErrJobNotFound)
}

func (r *JobRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var row jobRow
	if err := r.db.GetContext(ctx, &row, selectJob+` WHERE j.id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.ErrJobNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить вакансию")
	}
	return row.toEntity(), nil
}

func (r *JobRepositoryAdapter) List(ctx context.Context, limit int) ([]*entity.Job, error) {
	var rows []jobRow
	if err := r.db.SelectContext(ctx, &rows, selectJob+` ORDER BY j.created_at DESC LIMIT $1`, limit); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить вакансии")
	}
	result := make([]*entity.Job, len(rows))
	for i := range rows {
		result[i] = rows[i].toEntity()
	}
	return result, nil
}

type jobRow struct {
	ID             uuid.UUID      `db:"id"`
	PostedByID     uuid.UUID      `db:"posted_by_id"`
	Title          string         `db:"title"`
	Description    string         `db:"description"`
	Company        sql.NullString `db:"company"`
	Location       sql.NullString `db:"location"`
	Type           string         `db:"type"`
	Compensation   sql.NullString `db:"compensation"`
	ApplicationURL sql.NullString `db:"application_url"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	PosterName     string         `db:"poster_name"`
	PosterImage    sql.NullString `db:"poster_image"`
}

func (j *jobRow) toEntity() *entity.Job {
	return &entity.Job{
		ID:             j.ID,
		PostedByID:     j.PostedByID,
		Title:          j.Title,
		Description:    j.Description,
		Company:        nullString(j.Company),
		Location:       nullString(j.Location),
		Type:           valueobject.JobType(j.Type),
		Compensation:   nullString(j.Compensation),
		ApplicationURL: nullString(j.ApplicationURL),
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
		PostedBy:       summaryRow{ID: j.PostedByID, Name: j.PosterName, Image: j.PosterImage}.toEntity(),
	}
}

type EventRepositoryAdapter struct {
	db *sqlx.DB
}

func NewEventRepositoryAdapter(db *sqlx.DB) *EventRepositoryAdapter {
	return &EventRepositoryAdapter{db: db}
}

const selectEvent = `SELECT e.id, e.organizer_id, e.title, e.description, e.image_url, e.location, e.address,
		e.latitude, e.longitude, e.start_date, e.end_date, e.category, e.created_at, e.updated_at,
		u.name AS organizer_name, u.image AS organizer_image
	FROM events e
	JOIN users u ON u.id = e.organizer_id`

func (r *EventRepositoryAdapter) Create(ctx context.Context, event *entity.Event) error {
	query := `INSERT INTO events (id, organizer_id, title, description, image_url, location, address,
			latitude, longitude, start_date, end_date, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecContext(ctx, query, event.ID, event.OrganizerID, event.Title, event.Description,
		event.ImageURL, event.Location, event.Address, event.Latitude, event.Longitude,
		event.StartDate, event.EndDate, event.Category, event.CreatedAt, event.UpdatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать событие")
	}
	return nil
}

func (r *EventRepositoryAdapter) Update(ctx context.Context, event *entity.Event) error {
	query := `UPDATE events SET title = $2, description = $3, image_url = $4, location = $5, address = $6,
			latitude = $7, longitude = $8, start_date = $9, end_date = $10, category = $11, updated_at = $12
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, event.ID, event.Title, event.Description, event.ImageURL,
		event.Location, event.Address, event.Latitude, event.Longitude, event.StartDate, event.EndDate,
		event.Category, event.UpdatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить событие")
	}
	return requireAffected(res, apperror.ErrEventNotFound)
}

func (r *EventRepositoryAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось удалить событие")
	}
	return requireAffected(res, apperror.ErrEventNotFound)
}

func (r *EventRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var row eventRow
	if err := r.db.GetContext(ctx, &row, selectEvent+` WHERE e.id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.ErrEventNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить событие")
	}
	return row.toEntity(), nil
}

func (r *EventRepositoryAdapter) List(ctx context.Context, limit int) ([]*entity.Event, error) {
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, selectEvent+` ORDER BY e.start_date ASC LIMIT $1`, limit); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить события")
	}
	result := make([]*entity.Event, len(rows))
	for i := range rows {
		result[i] = rows[i].toEntity()
	}
	return result, nil
}

type eventRow struct {
	ID             uuid.UUID       `db:"id"`
	OrganizerID    uuid.UUID       `db:"organizer_id"`
	Title          string          `db:"title"`
	Description    string          `db:"description"`
	ImageURL       sql.NullString  `db:"image_url"`
	Location       string          `db:"location"`
	Address        sql.NullString  `db:"address"`
	Latitude       sql.NullFloat64 `db:"latitude"`
	Longitude      sql.NullFloat64 `db:"longitude"`
	StartDate      time.Time       `db:"start_date"`
	EndDate        sql.NullTime    `db:"end_date"`
	Category       sql.NullString  `db:"category"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	OrganizerName  string          `db:"organizer_name"`
	OrganizerImage sql.NullString  `db:"organizer_image"`
}

func (e *eventRow) toEntity() *entity.Event {
	ev := &entity.Event{
		ID:          e.ID,
		OrganizerID: e.OrganizerID,
		Title:       e.Title,
		Description: e.Description,
		ImageURL:    nullString(e.ImageURL),
		Location:    e.Location,
		Address:     nullString(e.Address),
		StartDate:   e.StartDate,
		Category:    nullString(e.Category),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		Organizer:   summaryRow{ID: e.OrganizerID, Name: e.OrganizerName, Image: e.OrganizerImage}.toEntity(),
	}
	if e.Latitude.Valid {
		lat := e.Latitude.Float64
		ev.Latitude = &lat
	}
	if e.Longitude.Valid {
		lon := e.Longitude.Float64
		ev.Longitude = &lon
	}
	if e.EndDate.Valid {
		end := e.EndDate.Time
		ev.EndDate = &end
	}
	return ev
}

type ServiceRepositoryAdapter struct {
	db *sqlx.DB
}

func NewServiceRepositoryAdapter(db *sqlx.DB) *ServiceRepositoryAdapter {
	return &ServiceRepositoryAdapter{db: db}
}

func (r *ServiceRepositoryAdapter) Create(ctx context.Context, svc *entity.Service) error {
	var category *string
	if svc.Category != nil {
		c := string(*svc.Category)
		category = &c
	}
	query := `INSERT INTO services (id, provider_id, title, description, price_range, category, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, svc.ID, svc.ProviderID, svc.Title, svc.Description, svc.PriceRange,
		category, svc.IsActive, svc.CreatedAt, svc.UpdatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать услугу")
	}
	return nil
}

func (r *ServiceRepositoryAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось удалить услугу")
	}
	return requireAffected(res, apperror.ErrServiceNotFound)
}

func (r *ServiceRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	row, err := common.GetByID[serviceRow](ctx, r.db, "services", id, apperror.ErrServiceNotFound)
	if err != nil {
		if errors.Is(err, apperror.ErrServiceNotFound) {
			return nil, err
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить услугу")
	}
	return row.toEntity(), nil
}

func (r *ServiceRepositoryAdapter) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Service, error) {
	var rows []serviceRow
	query := `SELECT * FROM services WHERE provider_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, providerID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить услуги")
	}
	result := make([]*entity.Service, len(rows))
	for i := range rows {
		result[i] = rows[i].toEntity()
	}
	return result, nil
}

type serviceRow struct {
	ID          uuid.UUID      `db:"id"`
	ProviderID  uuid.UUID      `db:"provider_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	PriceRange  string         `db:"price_range"`
	Category    sql.NullString `db:"category"`
	IsActive    bool           `db:"is_active"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (s *serviceRow) toEntity() *entity.Service {
	svc := &entity.Service{
		ID:          s.ID,
		ProviderID:  s.ProviderID,
		Title:       s.Title,
		Description: s.Description,
		PriceRange:  s.PriceRange,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.Category.Valid {
		c := valueobject.ServiceCategory(s.Category.String)
		svc.Category = &c
	}
	return svc
}
