package persistence

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
)

// summaryRow — колонки автора, подмешанные через JOIN users.
type summaryRow struct {
	ID    uuid.UUID      `db:"id"`
	Name  string         `db:"name"`
	Image sql.NullString `db:"image"`
}

func (s summaryRow) toEntity() *entity.UserSummary {
	return &entity.UserSummary{ID: s.ID, Name: s.Name, Image: nullString(s.Image)}
}

// nullableSummary возвращает nil, если LEFT JOIN не нашёл пользователя.
func nullableSummary(id uuid.NullUUID, name, image sql.NullString) *entity.UserSummary {
	if !id.Valid {
		return nil
	}
	return &entity.UserSummary{ID: id.UUID, Name: name.String, Image: nullString(image)}
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func nullUUID(nu uuid.NullUUID) *uuid.UUID {
	if !nu.Valid {
		return nil
	}
	v := nu.UUID
	return &v
}

// uuidArray готовит срез идентификаторов для = ANY($1::uuid[]).
func uuidArray(ids []uuid.UUID) interface{} {
	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = id.String()
	}
	return pq.StringArray(values)
}

// countRow — строка агрегата «ключ → количество».
type countRow struct {
	Key   uuid.UUID `db:"key"`
	Count int       `db:"count"`
}

func countMap(rows []countRow) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Count
	}
	return out
}
