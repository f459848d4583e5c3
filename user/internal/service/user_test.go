package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organicstore/storefront/internal/store"
	userErrors "github.com/organicstore/storefront/user/internal/errors"
	"github.com/organicstore/storefront/user/pkg/request"
)

func adultBirthDate() string {
	return time.Now().AddDate(-30, 0, 0).Format(time.DateOnly)
}

func registerParam(email string) request.Register {
	return request.Register{
		Username:        "ana",
		Email:           email,
		Password:        "Secreto123",
		ConfirmPassword: "Secreto123",
		Phone:           "3001234567",
		BirthDate:       adultBirthDate(),
	}
}

func TestRegisterStartsSession(t *testing.T) {
	c := context.Background()
	userService := NewUserService(store.NewMemoryKV())

	registered, err := userService.Register(c, registerParam("ana@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "ana", registered.Username)
	assert.Equal(t, "ana@example.com", registered.Email)
	assert.NotEqual(t, registered.ID.String(), "00000000-0000-0000-0000-000000000000")

	current, err := userService.CurrentUser(c)
	require.NoError(t, err)
	assert.Equal(t, registered, current)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	c := context.Background()
	userService := NewUserService(store.NewMemoryKV())

	_, err := userService.Register(c, registerParam("Ana@Example.com"))
	require.NoError(t, err)

	_, err = userService.Register(c, registerParam("  ana@example.com "))
	assert.ErrorIs(t, err, userErrors.ErrEmailTaken)
}

func TestRegisterRejectsUnderage(t *testing.T) {
	c := context.Background()
	userService := NewUserService(store.NewMemoryKV())

	param := registerParam("nina@example.com")
	param.BirthDate = time.Now().AddDate(-12, 0, 0).Format(time.DateOnly)

	_, err := userService.Register(c, param)
	assert.ErrorIs(t, err, userErrors.ErrTooYoung)
}

func TestRegisterAcceptsExactMinimumAge(t *testing.T) {
	c := context.Background()
	userService := NewUserService(store.NewMemoryKV())

	param := registerParam("joven@example.com")
	param.BirthDate = time.Now().AddDate(-13, 0, 0).Format(time.DateOnly)

	_, err := userService.Register(c, param)
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	c := context.Background()
	userService := NewUserService(store.NewMemoryKV())

	registered, err := userService.Register(c, registerParam("ana@example.com"))
	require.NoError(t, err)
	require.NoError(t, userService.Logout(c))

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "matching credentials", email: "ana@example.com", password: "Secreto123"},
		{name: "email is case insensitive", email: "ANA@EXAMPLE.COM", password: "Secreto123"},
		{name: "wrong password", email: "ana@example.com", password: "Secreto124", wantErr: userErrors.ErrInvalidCredentials},
		{name: "unknown email", email: "otro@example.com", password: "Secreto123", wantErr: userErrors.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loggedIn, err := userService.Login(c, request.Login{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registered.ID, loggedIn.ID)

			current, err := userService.CurrentUser(c)
			require.NoError(t, err)
			assert.Equal(t, registered.ID, current.ID)
		})
	}
}

func TestLogoutEndsSession(t *testing.T) {
	c := context.Background()
	userService := NewUserService(store.NewMemoryKV())

	_, err := userService.Register(c, registerParam("ana@example.com"))
	require.NoError(t, err)
	require.NoError(t, userService.Logout(c))

	_, err = userService.CurrentUser(c)
	assert.ErrorIs(t, err, userErrors.ErrNotLoggedIn)
}

func TestCurrentUserWithoutSession(t *testing.T) {
	c := context.Background()
	userService := NewUserService(store.NewMemoryKV())

	_, err := userService.CurrentUser(c)
	assert.ErrorIs(t, err, userErrors.ErrNotLoggedIn)
}

func TestRegisterToleratesCorruptRegistry(t *testing.T) {
	c := context.Background()
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(c, store.KEY_USERS, "{not json"))
	userService := NewUserService(kv)

	_, err := userService.Register(c, registerParam("ana@example.com"))
	assert.NoError(t, err)
}

func TestSessionWatcherEmitsTransitions(t *testing.T) {
	c, cancel := context.WithCancel(context.Background())
	defer cancel()

	userService := NewUserService(store.NewMemoryKV())
	watcher := NewSessionWatcher(userService, 5*time.Millisecond)
	events := watcher.Watch(c)

	initial := <-events
	assert.False(t, initial.LoggedIn)

	registered, err := userService.Register(c, registerParam("ana@example.com"))
	require.NoError(t, err)

	select {
	case event := <-events:
		assert.True(t, event.LoggedIn)
		assert.Equal(t, registered.ID, event.User.ID)
	case <-time.After(time.Second):
		t.Fatal("expected a login event")
	}

	require.NoError(t, userService.Logout(c))
	select {
	case event := <-events:
		assert.False(t, event.LoggedIn)
	case <-time.After(time.Second):
		t.Fatal("expected a logout event")
	}
}

func TestRegisterKeepsEarlierUsers(t *testing.T) {
	c := context.Background()
	userService := NewUserService(store.NewMemoryKV())

	for i := range 3 {
		_, err := userService.Register(c, registerParam(fmt.Sprintf("user%d@example.com", i)))
		require.NoError(t, err)
	}

	for i := range 3 {
		_, err := userService.Login(c, request.Login{
			Email:    fmt.Sprintf("user%d@example.com", i),
			Password: "Secreto123",
		})
		assert.NoError(t, err)
	}
}
