package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "admingate/pkg/domain-errors"
)

func Test_HashAndVerify(t *testing.T) {
	hash, err := Hash("p1")
	require.NoError(t, err)
	require.NotEqual(t, "p1", hash)

	require.NoError(t, Verify("p1", hash))

	err = Verify("wrong", hash)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func Test_Hash_RejectsEmptySecret(t *testing.T) {
	_, err := Hash("")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func Test_Equal(t *testing.T) {
	assert.True(t, Equal("p1", "p1"))
	assert.False(t, Equal("p1", "p2"))
	assert.False(t, Equal("p1", ""))
	assert.True(t, Equal("", ""))
}
