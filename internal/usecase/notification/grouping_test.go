package notification

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
)

func TestBucketOf(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, BucketToday, BucketOf(now, time.Date(2024, 5, 15, 0, 0, 1, 0, time.UTC)))
	assert.Equal(t, BucketYesterday, BucketOf(now, time.Date(2024, 5, 14, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, BucketYesterday, BucketOf(now, time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, BucketThisWeek, BucketOf(now, time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, BucketOlder, BucketOf(now, time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC)))
}

func TestGroupByRecency_OrderAndEmptyGroups(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	mk := func(at time.Time) *entity.Notification {
		return &entity.Notification{ID: uuid.New(), CreatedAt: at}
	}

	today1 := mk(now.Add(-time.Hour))
	today2 := mk(now.Add(-2 * time.Hour))
	old := mk(now.AddDate(0, -1, 0))

	groups := GroupByRecency(now, []*entity.Notification{today1, today2, old})
	require.Len(t, groups, 2)

	assert.Equal(t, BucketToday, groups[0].Bucket)
	assert.Equal(t, []*entity.Notification{today1, today2}, groups[0].Items)
	assert.Equal(t, BucketOlder, groups[1].Bucket)
	assert.NotEmpty(t, groups[1].Label)

	assert.Empty(t, GroupByRecency(now, nil))
}
