package persist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMissingKeyIsNil(t *testing.T) {
	m := NewMemory()

	data, err := m.Load(context.Background(), "never_written")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, "k", []byte(`["a","b"]`)))

	data, err := m.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["a","b"]`), data)
}

func TestMemoryCopiesOnSaveAndLoad(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, m.Save(ctx, "k", in))
	in[0] = 'X'

	out, err := m.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	out[0] = 'Y'
	again, err := m.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
