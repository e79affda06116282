package authhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hrms-backend/db"
	employeestore "hrms-backend/lib/employee/store"
	authutils "hrms-backend/lib/utils/auth-utils"
	authapimodels "hrms-backend/models/api/auth"
)

var (
	ErrInvalidCredentials = errors.New("неверная почта или пароль")
	ErrPasswordReused     = errors.New("новый пароль совпадает с текущим")
)

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	RefreshToken(refreshToken string) (response authapimodels.JWTResponse, err error)
	Me(userID string) (response authapimodels.JWTResponse, err error)
	ChangePassword(userID, oldPassword, newPassword string) error
	TokenVersionOf(userID string) (int, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store employeestore.Provider
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска пользователя по почте")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		logger.Debug("активный пользователь с такой почтой не найден")
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	if !authutils.CheckPassword(user.Password, password) {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	token, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role, user.TokenVersion)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.JWTResponse{}, err
	}
	refresh, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		logger.WithError(err).Error("ошибка генерации refresh-токена")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"LastLogin": time.Now()})
	if err != nil {
		logger.WithError(err).Error("ошибка обновления даты последнего входа")
	}
	userModel := user.ToModel()
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refresh,
		User:         &userModel,
	}, nil
}

func (i impl) RefreshToken(refreshToken string) (response authapimodels.JWTResponse, err error) {
	claims, err := authutils.ParseToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "refresh-токен не прошел проверку")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return authapimodels.JWTResponse{}, errors.New("refresh-токен не прошел проверку")
	}
	user, err := i.store.GetByID(sub)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	token, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role, user.TokenVersion)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	refresh, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refresh,
	}, nil
}

func (i impl) Me(userID string) (response authapimodels.JWTResponse, err error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		return authapimodels.JWTResponse{}, errors.New("пользователь не найден")
	}
	userModel := user.ToModel()
	return authapimodels.JWTResponse{User: &userModel}, nil
}

// ChangePassword - смена пароля с запретом повторного использования текущего.
// Инкремент token_version отзывает все ранее выданные токены.
func (i impl) ChangePassword(userID, oldPassword, newPassword string) error {
	logger := log.WithField("user_id", userID)
	user, err := i.store.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения пользователя")
		return err
	}
	if user == nil {
		return ErrInvalidCredentials
	}
	if !authutils.CheckPassword(user.Password, oldPassword) {
		return ErrInvalidCredentials
	}
	if authutils.CheckPassword(user.Password, newPassword) {
		return ErrPasswordReused
	}
	hash, err := authutils.HashPassword(newPassword)
	if err != nil {
		logger.WithError(err).Error("ошибка хеширования пароля")
		return err
	}
	err = i.store.Update(userID, map[string]interface{}{
		"Password":     hash,
		"TokenVersion": user.TokenVersion + 1,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка обновления пароля")
		return err
	}
	return nil
}

func (i impl) TokenVersionOf(userID string) (int, error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, errors.New("пользователь не найден")
	}
	return user.TokenVersion, nil
}
