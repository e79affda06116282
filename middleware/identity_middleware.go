package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "hrms-backend/lib/utils/auth-utils"
	"hrms-backend/models"
	apimodels "hrms-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if id, ok := sub.(string); ok {
			return id
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func GetTokenVersion(ctx *fiber.Ctx) int {
	claims := authutils.GetClaims(ctx)
	if ver, exist := claims["ver"]; exist {
		if verFloat, ok := ver.(float64); ok {
			return int(verFloat)
		}
	}
	return -1
}

// SessionVersionCheck - токены, выданные до смены пароля, отклоняются
func SessionVersionCheck(versionOf func(userID string) (int, error)) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		if userID == "" {
			return ctx.SendStatus(fiber.StatusUnauthorized)
		}
		current, err := versionOf(userID)
		if err != nil {
			return ctx.SendStatus(fiber.StatusUnauthorized)
		}
		if GetTokenVersion(ctx) != current {
			return ctx.SendStatus(fiber.StatusUnauthorized)
		}
		return ctx.Next()
	}
}

func ApproverRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).CanApprove() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}

func StaffRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsStaff() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
