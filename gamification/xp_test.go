package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelDerivation(t *testing.T) {
	assert.Equal(t, 1, Level(0))
	assert.Equal(t, 1, Level(99))
	assert.Equal(t, 2, Level(100))
	assert.Equal(t, 3, Level(250))
}

func TestXPForNextLevel(t *testing.T) {
	assert.Equal(t, 100, XPForNextLevel(Level(0)))
	assert.Equal(t, 200, XPForNextLevel(Level(150)))
}

func TestProgressToNextLevel(t *testing.T) {
	assert.Equal(t, 0, ProgressToNextLevel(0))
	assert.Equal(t, 99, ProgressToNextLevel(99))
	assert.Equal(t, 0, ProgressToNextLevel(100))
	assert.Equal(t, 50, ProgressToNextLevel(250))
}
