package response

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// User is the outward view of an account. It never carries the password.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	BirthDate string    `json:"birth_date"`
}

func (u User) MarshalZerologObject(e *zerolog.Event) {
	e.Str("id", u.ID.String()).
		Str("username", u.Username).
		Str("email", u.Email)
}
