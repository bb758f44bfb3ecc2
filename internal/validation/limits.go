package validation

import "strings"

// Константы валидации
const (
	MaxPostContentLength = 1000
	MaxCommentLength     = 1000
	MaxMessageLength     = 2000

	MinTitleLength       = 3
	MaxTitleLength       = 100
	MinDescriptionLength = 10
	MaxDescriptionLength = 2000
	MaxShortTextLength   = 100

	MinEventLocationLength = 3
	MaxEventLocationLength = 200
	MaxEventAddressLength  = 500
	MaxEventCategoryLength = 50

	MinNameLength = 2
	MaxNameLength = 100
	MaxBioLength  = 500
	MaxTagsCount  = 20

	MaxPortfolioTitleLength       = 100
	MaxPortfolioDescriptionLength = 500
	// MaxInlineImageBytes ограничивает data URL изображения в портфолио.
	MaxInlineImageBytes = 300 * 1024

	MaxMoodBoardTitleLength       = 100
	MaxMoodBoardDescriptionLength = 500

	MinPriceRangeLength = 3
	MaxPriceRangeLength = 50

	MinPasswordLength = 8

	DefaultFeedLimit     = 100
	DefaultListLimit     = 50
	MaxListLimit         = 100
	MoodBoardPreviewSize = 4
)

// ClampLimit приводит лимит выборки к диапазону [1, MaxListLimit].
func ClampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// IsDataURL сообщает, что изображение передано inline.
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}
