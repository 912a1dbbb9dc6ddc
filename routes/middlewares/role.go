package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zsmartex/passbook/controllers/helpers"
	"github.com/zsmartex/passbook/types"
)

// RoleVaildator lets the request through when the current user holds one of
// roles. Admins always pass.
func RoleVaildator(roles ...types.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current_user := CurrentUser(c)

		if current_user == nil {
			return c.Status(401).JSON(helpers.Errors{
				Errors: []string{helpers.AuthzInvalidSession},
			})
		}

		if current_user.Role == types.RoleAdmin {
			return c.Next()
		}

		for _, role := range roles {
			if current_user.Role == role {
				return c.Next()
			}
		}

		return c.Status(403).JSON(helpers.Errors{
			Errors: []string{helpers.AuthzPermission},
		})
	}
}

func AdminVaildator(c *fiber.Ctx) error {
	return RoleVaildator()(c)
}
