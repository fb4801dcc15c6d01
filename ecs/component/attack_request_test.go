package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttackRequest(t *testing.T) {
	var r AttackRequest
	_, ok := r.Pending()
	assert.False(t, ok)

	r.Request(0)
	idx, ok := r.Pending()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	r.Request(2)
	idx, _ = r.Pending()
	assert.Equal(t, 2, idx)

	r.Request(-1)
	_, ok = r.Pending()
	assert.False(t, ok)

	r.Request(1)
	r.Clear()
	_, ok = r.Pending()
	assert.False(t, ok)
}
