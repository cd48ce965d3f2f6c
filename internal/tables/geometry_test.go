package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Position{X: 0, Y: 0}, Position{X: 3, Y: 4}))
	assert.Equal(t, 0.0, Distance(Position{X: 7, Y: 7}, Position{X: 7, Y: 7}))
	assert.Equal(t, 5.0, Distance(Position{X: 3, Y: 4}, Position{X: 0, Y: 0}), "distance is symmetric")
}

func TestCenterDistance(t *testing.T) {
	a := &Table{Position: Position{X: 100, Y: 100}}
	b := &Table{Position: Position{X: 400, Y: 100}}
	assert.Equal(t, 300.0, CenterDistance(a, b))
}

func TestNormalizeRotation(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeRotation(0))
	assert.Equal(t, 0.0, NormalizeRotation(360))
	assert.Equal(t, 90.0, NormalizeRotation(450))
	assert.Equal(t, 270.0, NormalizeRotation(-90))
	assert.Equal(t, 359.5, NormalizeRotation(-0.5))
}

func TestWithinBounds(t *testing.T) {
	assert.True(t, WithinBounds(Position{X: 50, Y: 50}, 100, 100))
	assert.True(t, WithinBounds(Position{X: 0, Y: 100}, 100, 100))
	assert.False(t, WithinBounds(Position{X: -1, Y: 50}, 100, 100))
	assert.False(t, WithinBounds(Position{X: 50, Y: 101}, 100, 100))
}
