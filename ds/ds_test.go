package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeChunks(t *testing.T) {
	assert.Equal(
		t,
		[][]int{{1, 2}, {3, 4}, {5}},
		MakeChunks([]int{1, 2, 3, 4, 5}, 2),
	)
	assert.Equal(
		t,
		[][]byte{{1, 2, 3}, {4, 5, 6}},
		MakeChunks([]byte{1, 2, 3, 4, 5, 6}, 3),
	)
}

func TestMakeRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, MakeRange(0, 4, 1))
	assert.Equal(t, []int{2, 4, 6}, MakeRange(2, 8, 2))
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []byte{7, 7, 7}, Repeat(3, byte(7)))
	assert.Empty(t, Repeat(0, 1))
}

func TestShallowCopy(t *testing.T) {
	original := []byte{1, 2, 3}
	duplicated := ShallowCopy(original)
	duplicated[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, original)
	assert.Equal(t, []byte{9, 2, 3}, duplicated)
}
