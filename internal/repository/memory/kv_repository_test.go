package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVRepository(t *testing.T) {
	kv := NewKVRepository()
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		data, err := kv.Get(ctx, "absent")
		require.NoError(t, err)
		assert.Nil(t, data)

		exists, err := kv.Exists(ctx, "absent")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "k", []byte("v1")))

		data, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), data)

		exists, err := kv.Exists(ctx, "k")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("stored value is isolated from caller mutations", func(t *testing.T) {
		payload := []byte("original")
		require.NoError(t, kv.Set(ctx, "iso", payload))
		payload[0] = 'X'

		data, err := kv.Get(ctx, "iso")
		require.NoError(t, err)
		assert.Equal(t, []byte("original"), data)

		data[0] = 'Y'
		again, err := kv.Get(ctx, "iso")
		require.NoError(t, err)
		assert.Equal(t, []byte("original"), again)
	})

	t.Run("delete removes the key", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "gone", []byte("x")))
		require.NoError(t, kv.Delete(ctx, "gone"))

		data, err := kv.Get(ctx, "gone")
		require.NoError(t, err)
		assert.Nil(t, data)

		// повторное удаление безопасно
		require.NoError(t, kv.Delete(ctx, "gone"))
	})
}
