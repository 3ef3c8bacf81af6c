package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextIdentifier_Empty(t *testing.T) {
	assert.Equal(t, int64(1), NextIdentifier(nil))
}

func TestNextIdentifier_MaxPlusOne(t *testing.T) {
	assert.Equal(t, int64(8), NextIdentifier([]int64{7, 4, 1}))
}

func TestNextIdentifier_SkipsNonPositive(t *testing.T) {
	assert.Equal(t, int64(1), NextIdentifier([]int64{0, -3}))
}
