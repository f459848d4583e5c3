package request

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

type Register struct {
	Username        string `validate:"required"                 json:"username"`
	Email           string `validate:"required,email"           json:"email"`
	Password        string `validate:"required,password_policy" json:"password"`
	ConfirmPassword string `validate:"required,eqfield=Password" json:"confirm_password"`
	Phone           string `validate:"required,phone_digits"    json:"phone"`
	BirthDate       string `validate:"required,datetime=2006-01-02" json:"birth_date"`
}

func (r Register) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", r.Username).
		Str("email", r.Email).
		Str("phone", r.Phone).
		Str("birth_date", r.BirthDate).
		Str("password", "***").
		Str("confirm_password", "***")
}

func (r Register) MarshalJSON() ([]byte, error) {
	r.Password = "***"
	r.ConfirmPassword = "***"
	type R Register
	return json.Marshal(R(r))
}
