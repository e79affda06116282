package authapimodels

import (
	"github.com/pkg/errors"

	employeeapimodels "hrms-backend/models/api/employee"
)

type JWTResponse struct {
	Token        string                      `json:"token"`
	RefreshToken string                      `json:"refresh_token,omitempty"`
	User         *employeeapimodels.Employee `json:"user,omitempty"`
}

type JWTRefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r JWTRefreshRequest) Validate() error {
	if r.RefreshToken == "" {
		return errors.New("не указан refresh-токен")
	}
	return nil
}
