package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/creative-network/internal/domain/capability"
)

// featureTables перечисляет таблицы, без которых функция считается недоступной.
var featureTables = map[capability.Feature][]string{
	capability.Follows:       {"follows"},
	capability.Notifications: {"notifications"},
	capability.Messaging:     {"conversations", "messages"},
	capability.Comments:      {"comments"},
	capability.Events:        {"events"},
	capability.MoodBoards:    {"mood_boards", "mood_board_items"},
	capability.Services:      {"services"},
}

// ProbeFeatures проверяет наличие таблиц через to_regclass с учётом search_path.
func ProbeFeatures(ctx context.Context, conn *sqlx.DB) (capability.Set, error) {
	features := make(capability.Set, len(featureTables))
	for _, feature := range capability.Known {
		enabled := true
		for _, table := range featureTables[feature] {
			var exists bool
			if err := conn.GetContext(ctx, &exists, `SELECT to_regclass($1) IS NOT NULL`, table); err != nil {
				return nil, fmt.Errorf("postgres: не удалось проверить таблицу %s: %w", table, err)
			}
			if !exists {
				enabled = false
				break
			}
		}
		features[feature] = enabled
	}
	return features, nil
}
