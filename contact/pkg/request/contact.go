package request

import "github.com/rs/zerolog"

type Contact struct {
	Name    string `validate:"required"       json:"name"`
	Email   string `validate:"required,email" json:"email"`
	Phone   string `validate:"omitempty"      json:"phone,omitempty"`
	Message string `validate:"required"       json:"message"`
}

func (m Contact) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", m.Name).Str("email", m.Email)
}
