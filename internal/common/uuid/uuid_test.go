package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUIDIsValid(t *testing.T) {
	id := New().NewUUID()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestShort(t *testing.T) {
	assert.Equal(t, "123e4567", Short("123e4567-e89b-12d3-a456-426614174000"))
	assert.Equal(t, "run-abcd", Short("run-abcdefgh"))
	assert.Equal(t, "abc", Short("abc"))
}
