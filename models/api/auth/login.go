package authapimodels

import (
	"net/mail"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type PasswordChangeRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (r PasswordChangeRequest) Validate() error {
	if r.OldPassword == "" {
		return errors.New("не указан текущий пароль")
	}
	if r.NewPassword == "" {
		return errors.New("не указан новый пароль")
	}
	if len(r.NewPassword) < 6 {
		return errors.New("новый пароль слишком короткий")
	}
	return nil
}
