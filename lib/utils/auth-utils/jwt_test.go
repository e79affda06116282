package authutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hrms-backend/config"
	"hrms-backend/models"
)

func initTestConfig() {
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 3600
	conf.Auth.JWTRefreshExpireInSec = 86400
	config.Conf = conf
}

func TestJWT(t *testing.T) {
	initTestConfig()

	t.Run(`token round trip check`, func(t *testing.T) {
		token, err := GetToken("user-1", "Иван Иванов", models.UserRoleManager, 3)
		require.Nil(t, err)
		require.NotEmpty(t, token)

		claims, err := ParseToken(token)
		require.Nil(t, err)
		require.Equal(t, "user-1", claims["sub"])
		require.Equal(t, "Иван Иванов", claims["name"])
		require.Equal(t, string(models.UserRoleManager), claims["role"])
		// числовые claim приходят из json как float64
		require.Equal(t, float64(3), claims["ver"])
	})

	t.Run(`refresh token check`, func(t *testing.T) {
		token, err := GetRefreshToken("user-1", "Иван Иванов")
		require.Nil(t, err)

		claims, err := ParseToken(token)
		require.Nil(t, err)
		require.Equal(t, "user-1", claims["sub"])
		// refresh не несет роль и версию сессии
		require.NotContains(t, claims, "role")
		require.NotContains(t, claims, "ver")
	})

	t.Run(`tampered token rejected check`, func(t *testing.T) {
		token, err := GetToken("user-1", "Иван Иванов", models.UserRoleEmployee, 0)
		require.Nil(t, err)

		_, err = ParseToken(token + "x")
		require.Error(t, err)
	})
}
