package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryKVMissingKey(t *testing.T) {
	kv := NewMemoryKV()

	_, err := kv.Get(context.Background(), KEY_CART)

	assert.ErrorIs(t, err, ErrKeyMissing)
}

func TestMemoryKVRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	c := context.Background()

	err := kv.Set(c, KEY_CART, `[{"id":1}]`)
	assert.NoError(t, err)

	value, err := kv.Get(c, KEY_CART)
	assert.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, value)

	err = kv.Del(c, KEY_CART)
	assert.NoError(t, err)

	_, err = kv.Get(c, KEY_CART)
	assert.ErrorIs(t, err, ErrKeyMissing)
}

func TestMemoryKVDelAbsentKey(t *testing.T) {
	kv := NewMemoryKV()

	err := kv.Del(context.Background(), KEY_CURRENT_USER)

	assert.NoError(t, err)
}
