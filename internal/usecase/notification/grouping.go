package notification

import (
	"time"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
)

type Bucket string

const (
	BucketToday     Bucket = "today"
	BucketYesterday Bucket = "yesterday"
	BucketThisWeek  Bucket = "this_week"
	BucketOlder     Bucket = "older"
)

var bucketOrder = []Bucket{BucketToday, BucketYesterday, BucketThisWeek, BucketOlder}

var bucketLabels = map[Bucket]string{
	BucketToday:     "Сегодня",
	BucketYesterday: "Вчера",
	BucketThisWeek:  "На этой неделе",
	BucketOlder:     "Ранее",
}

// Group — уведомления одного календарного интервала.
type Group struct {
	Bucket Bucket
	Label  string
	Items  []*entity.Notification
}

// BucketOf относит момент времени к интервалу относительно now (в часовом поясе now).
func BucketOf(now, at time.Time) Bucket {
	at = at.In(now.Location())
	today := startOfDay(now)
	switch {
	case !at.Before(today):
		return BucketToday
	case !at.Before(today.AddDate(0, 0, -1)):
		return BucketYesterday
	case at.After(now.AddDate(0, 0, -7)):
		return BucketThisWeek
	default:
		return BucketOlder
	}
}

// GroupByRecency раскладывает список по интервалам, сохраняя порядок внутри групп.
// Пустые группы не возвращаются.
func GroupByRecency(now time.Time, list []*entity.Notification) []Group {
	buckets := make(map[Bucket][]*entity.Notification, len(bucketOrder))
	for _, n := range list {
		b := BucketOf(now, n.CreatedAt)
		buckets[b] = append(buckets[b], n)
	}

	groups := make([]Group, 0, len(buckets))
	for _, b := range bucketOrder {
		if items := buckets[b]; len(items) > 0 {
			groups = append(groups, Group{Bucket: b, Label: bucketLabels[b], Items: items})
		}
	}
	return groups
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
