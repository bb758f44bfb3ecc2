package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_NilMeansEverythingEnabled(t *testing.T) {
	var s Set
	assert.True(t, s.Enabled(Notifications))
	assert.Empty(t, s.Disabled())
}

func TestSet_Without(t *testing.T) {
	s := All().Without(Follows, Services)

	assert.False(t, s.Enabled(Follows))
	assert.False(t, s.Enabled(Services))
	assert.True(t, s.Enabled(Comments))
	assert.Equal(t, []Feature{Follows, Services}, s.Disabled())
	assert.True(t, All().Enabled(Follows))
}
