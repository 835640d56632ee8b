package leetcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreWeights(t *testing.T) {
	assert.Equal(t, 0, Score(0, 0, 0))
	assert.Equal(t, 1, Score(1, 0, 0))
	assert.Equal(t, 2, Score(0, 1, 0))
	assert.Equal(t, 3, Score(0, 0, 1))
	assert.Equal(t, 26, Score(10, 5, 2))
	assert.Equal(t, 600, Score(100, 100, 100))
}
