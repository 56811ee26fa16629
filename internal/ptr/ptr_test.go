package ptr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/hostitask/internal/ptr"
)

func TestTo(t *testing.T) {
	p := ptr.To("Lack of supplies")
	require.NotNil(t, p)
	assert.Equal(t, "Lack of supplies", *p)
}

func TestClone(t *testing.T) {
	assert.Nil(t, ptr.Clone[int](nil))

	orig := ptr.To(30)
	c := ptr.Clone(orig)
	require.NotNil(t, c)
	assert.Equal(t, 30, *c)

	*c = 45
	assert.Equal(t, 30, *orig, "clone must not alias the original")
}
