package apiv1

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestInitLeaveApiRouters(t *testing.T) {
	app := fiber.New()
	InitLeaveApiRouters(app)

	registered := map[string]bool{}
	for _, route := range app.GetRoutes() {
		registered[route.Method+" "+route.Path] = true
	}

	t.Run(`заявка подаётся через apply`, func(t *testing.T) {
		require.True(t, registered["POST /leaves/apply"])
		require.False(t, registered["POST /leaves"])
	})

	t.Run(`остальные маршруты на месте`, func(t *testing.T) {
		require.True(t, registered["GET /leaves/my"])
		require.True(t, registered["GET /leaves/balance"])
		require.True(t, registered["GET /leaves/pending"])
		require.True(t, registered["DELETE /leaves/:id"])
		require.True(t, registered["PUT /leaves/:id/action"])
	})
}
