package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"
)

const (
	// Skill-path permissions
	ReadSkillPathPermission    = "read:skill-path"
	ReadAllSkillPathPermission = "read:skill-path:all"
	RefreshSkillPathPermission = "refresh:skill-path"
	ReadCatalogPermission      = "read:skill-path:catalog"

	// Admin permissions (gateway-wide)
	AdminPermission   = "admin"
	ManagerPermission = "manager"
)

// PermissionRequired gates a route on a permission carried in the gateway's
// X-User-Permissions header
func PermissionRequired(required_permission string) fiber.Handler {
	return func(c fiber.Ctx) error {
		log.Println("Permission required function called from", c.IP(), "Calling", c.Method(), "Request", c.OriginalURL())
		userPermissions := c.Get("X-User-Permissions")
		hasPermission := false
		if userPermissions != "" {
			permissions := strings.Split(userPermissions, ",")

			for _, perm := range permissions {
				if perm == required_permission || strings.HasPrefix(perm, AdminPermission) || strings.HasPrefix(perm, ManagerPermission) {
					hasPermission = true
					break
				}
			}
		}

		if !hasPermission {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}

// OwnerPermissionRequired allows only the owner named by the userID route
// parameter (or elevated roles) through
func OwnerPermissionRequired() fiber.Handler {
	return func(c fiber.Ctx) error {
		userID := c.Params("userID")
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		currentUserID := c.Get("X-User-ID")
		if currentUserID == userID {
			return c.Next()
		}

		userPermissions := c.Get("X-User-Permissions")
		if strings.Contains(userPermissions, AdminPermission) || strings.Contains(userPermissions, ManagerPermission) {
			return c.Next()
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}
}
