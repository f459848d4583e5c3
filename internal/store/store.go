// Package store is the persistence bridge for the storefront: a flat
// key-value store holding the serialized cart, the current session and the
// user registry. Readers must tolerate missing keys; malformed values are a
// caller concern.
package store

import (
	"context"
	"errors"
)

const (
	KEY_CART         = "organicStoreCart"
	KEY_CURRENT_USER = "currentUser"
	KEY_USERS        = "users"
)

var ErrKeyMissing = errors.New("key missing in store")

type KV interface {
	Get(c context.Context, key string) (string, error)
	Set(c context.Context, key string, value string) error
	Del(c context.Context, key string) error
}
