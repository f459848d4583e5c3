package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginMasksPassword(t *testing.T) {
	expectedMap := map[string]string{"email": "ana@example.com", "password": "***"}
	expected, _ := json.Marshal(expectedMap)
	loginReq := Login{Email: "ana@example.com", Password: "Secreto123"}

	actual, _ := json.Marshal(loginReq)

	assert.EqualValues(t, expected, actual)
	assert.EqualValues(t, "Secreto123", loginReq.Password)
}

func TestRegisterMasksPasswords(t *testing.T) {
	registerReq := Register{
		Username:        "ana",
		Email:           "ana@example.com",
		Password:        "Secreto123",
		ConfirmPassword: "Secreto123",
		Phone:           "3001234567",
		BirthDate:       "1990-05-01",
	}

	actual, err := json.Marshal(registerReq)
	assert.NoError(t, err)

	decoded := map[string]string{}
	assert.NoError(t, json.Unmarshal(actual, &decoded))
	assert.Equal(t, "***", decoded["password"])
	assert.Equal(t, "***", decoded["confirm_password"])
	assert.Equal(t, "ana@example.com", decoded["email"])
	assert.EqualValues(t, "Secreto123", registerReq.Password)
}
