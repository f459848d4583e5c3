package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/organicstore/storefront/internal/constants"
	"github.com/organicstore/storefront/user/pkg/response"
)

// SessionEvent reports a change in the active session.
type SessionEvent struct {
	LoggedIn bool
	User     response.User
}

// SessionWatcher polls the session key on a fixed interval and emits an
// event whenever the logged-in user changes, including external writes to
// the store that bypass this process.
type SessionWatcher struct {
	users    *UserService
	interval time.Duration
}

func NewSessionWatcher(users *UserService, interval time.Duration) *SessionWatcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &SessionWatcher{users: users, interval: interval}
}

// Watch emits the initial session state and then one event per observed
// transition. The channel closes when the context is done.
func (w *SessionWatcher) Watch(c context.Context) <-chan SessionEvent {
	events := make(chan SessionEvent, 1)
	go func() {
		defer close(events)

		logger := zerolog.Ctx(c).
			With().
			Str(constants.KEY_TAG, "SessionWatcher Watch").
			Logger()

		last, seeded := w.observe(c)
		events <- last
		if !seeded {
			logger.Debug().Msg("session watcher started without a session")
		}

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-c.Done():
				return
			case <-ticker.C:
				current, _ := w.observe(c)
				if current == last {
					continue
				}
				last = current
				logger.Info().
					Bool("logged_in", current.LoggedIn).
					Str(constants.KEY_USER_ID, current.User.ID.String()).
					Msg("session changed")
				select {
				case events <- current:
				case <-c.Done():
					return
				}
			}
		}
	}()
	return events
}

func (w *SessionWatcher) observe(c context.Context) (SessionEvent, bool) {
	user, err := w.users.CurrentUser(c)
	if err != nil {
		return SessionEvent{}, false
	}
	return SessionEvent{LoggedIn: true, User: user}, true
}
