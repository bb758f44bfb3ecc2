package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

func TestParseNotificationType(t *testing.T) {
	for _, s := range []string{"like", "comment", "connect", "insight"} {
		got, err := ParseNotificationType(s)
		assert.NoError(t, err)
		assert.Equal(t, NotificationType(s), got)
	}

	_, err := ParseNotificationType("mention")
	assert.True(t, apperror.IsValidation(err))
}

func TestParseJobType(t *testing.T) {
	got, err := ParseJobType("Freelance")
	assert.NoError(t, err)
	assert.Equal(t, JobFreelance, got)

	_, err = ParseJobType("freelance")
	assert.Error(t, err)
}

func TestServiceCategory_IsValid(t *testing.T) {
	assert.True(t, ServiceCategory("UI/UX Design").IsValid())
	assert.True(t, ServiceCategory("Other").IsValid())
	assert.False(t, ServiceCategory("Cooking").IsValid())
}
