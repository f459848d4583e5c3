package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/organicstore/storefront/internal/constants"
	inOtel "github.com/organicstore/storefront/internal/otel"
	"github.com/organicstore/storefront/internal/store"
	userErrors "github.com/organicstore/storefront/user/internal/errors"
	"github.com/organicstore/storefront/user/internal/otel"
	"github.com/organicstore/storefront/user/pkg/request"
	"github.com/organicstore/storefront/user/pkg/response"
)

const minimumAge = 13

// userRecord is the persisted account shape. The password stays in plain
// text to keep the stored value interchangeable with the browser client.
type userRecord struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Phone     string    `json:"phone"`
	BirthDate string    `json:"birth_date"`
}

func (u userRecord) view() response.User {
	return response.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		BirthDate: u.BirthDate,
	}
}

type UserService struct {
	kv store.KV
}

func NewUserService(kv store.KV) *UserService {
	return &UserService{kv: kv}
}

func (s *UserService) Register(c context.Context, param request.Register) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService Register")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "UserService Register").
		Str(constants.KEY_EMAIL, param.Email).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "checking minimum age").Logger()
	birthDate, err := time.Parse(time.DateOnly, param.BirthDate)
	if err != nil {
		err = fmt.Errorf("failed parsing birth_date=%s with error=%w", param.BirthDate, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	if yearsSince(birthDate, time.Now()) < minimumAge {
		err = userErrors.ErrTooYoung
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}

	logger = logger.With().Str(constants.KEY_PROCESS, "checking duplicate email").Logger()
	users, err := s.loadUsers(c)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	email := normalizeEmail(param.Email)
	for _, existing := range users {
		if normalizeEmail(existing.Email) == email {
			err = userErrors.ErrEmailTaken
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.User{}, err
		}
	}

	logger = logger.With().Str(constants.KEY_PROCESS, "inserting user").Logger()
	record := userRecord{
		ID:        uuid.New(),
		Username:  strings.TrimSpace(param.Username),
		Email:     strings.TrimSpace(param.Email),
		Password:  param.Password,
		Phone:     param.Phone,
		BirthDate: param.BirthDate,
	}
	users = append(users, record)
	if err = s.saveUsers(c, users); err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}

	logger = logger.With().Str(constants.KEY_PROCESS, "starting session").Logger()
	if err = s.setCurrentUser(c, record); err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}

	logger.Info().
		Str(constants.KEY_USER_ID, record.ID.String()).
		Msg("registered user")
	return record.view(), nil
}

func (s *UserService) Login(c context.Context, param request.Login) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "UserService Login").
		Str(constants.KEY_EMAIL, param.Email).
		Logger()

	logger = logger.With().Str(constants.KEY_PROCESS, "finding user").Logger()
	users, err := s.loadUsers(c)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	email := normalizeEmail(param.Email)
	for _, candidate := range users {
		if normalizeEmail(candidate.Email) != email || candidate.Password != param.Password {
			continue
		}
		if err = s.setCurrentUser(c, candidate); err != nil {
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.User{}, err
		}
		logger.Info().
			Str(constants.KEY_USER_ID, candidate.ID.String()).
			Msg("logged in user")
		return candidate.view(), nil
	}

	err = userErrors.ErrInvalidCredentials
	inOtel.RecordError(err, span)
	logger.Error().Err(err).Msg(err.Error())
	return response.User{}, err
}

func (s *UserService) Logout(c context.Context) error {
	c, span := otel.Tracer.Start(c, "UserService Logout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(constants.KEY_TAG, "UserService Logout").
		Logger()

	if err := s.kv.Del(c, store.KEY_CURRENT_USER); err != nil {
		err = fmt.Errorf("failed deleting key=%s with error=%w", store.KEY_CURRENT_USER, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("logged out user")
	return nil
}

// CurrentUser returns the active session. A missing or unreadable session
// value reports ErrNotLoggedIn rather than a storage error.
func (s *UserService) CurrentUser(c context.Context) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService CurrentUser")
	defer span.End()

	raw, err := s.kv.Get(c, store.KEY_CURRENT_USER)
	if err != nil {
		return response.User{}, userErrors.ErrNotLoggedIn
	}
	record := userRecord{}
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return response.User{}, userErrors.ErrNotLoggedIn
	}
	return record.view(), nil
}

func (s *UserService) loadUsers(c context.Context) ([]userRecord, error) {
	raw, err := s.kv.Get(c, store.KEY_USERS)
	if err != nil {
		if errors.Is(err, store.ErrKeyMissing) {
			return []userRecord{}, nil
		}
		return nil, fmt.Errorf("failed reading key=%s with error=%w", store.KEY_USERS, err)
	}
	users := []userRecord{}
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		// an unreadable registry is treated as empty, matching the cart restore path
		return []userRecord{}, nil
	}
	return users, nil
}

func (s *UserService) saveUsers(c context.Context, users []userRecord) error {
	encoded, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed marshaling users with error=%w", err)
	}
	if err := s.kv.Set(c, store.KEY_USERS, string(encoded)); err != nil {
		return fmt.Errorf("failed writing key=%s with error=%w", store.KEY_USERS, err)
	}
	return nil
}

func (s *UserService) setCurrentUser(c context.Context, record userRecord) error {
	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed marshaling current user with error=%w", err)
	}
	if err := s.kv.Set(c, store.KEY_CURRENT_USER, string(encoded)); err != nil {
		return fmt.Errorf("failed writing key=%s with error=%w", store.KEY_CURRENT_USER, err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func yearsSince(birth time.Time, now time.Time) int {
	years := now.Year() - birth.Year()
	if birth.AddDate(years, 0, 0).After(now) {
		years--
	}
	return years
}
