package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-manager/internal/config"
	"alfredoptarigan/resume-manager/internal/repositories"
)

const userEmailKey = "user_email"

// AuthMiddleware validates the Bearer token and stores the authenticated
// user's email in the request locals.
func AuthMiddleware(authCfg *config.AuthConfig, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing or malformed authorization header",
			})
		}

		token := strings.TrimPrefix(header, "Bearer ")
		email, err := authCfg.ParseAccessToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Could not validate credentials",
			})
		}

		user, err := userRepo.FindByEmail(email)
		if err != nil || !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Could not validate credentials",
			})
		}

		c.Locals(userEmailKey, user.Email)
		return c.Next()
	}
}

// currentUserEmail reads the email set by AuthMiddleware.
func currentUserEmail(c *fiber.Ctx) string {
	if email, ok := c.Locals(userEmailKey).(string); ok {
		return email
	}
	return ""
}
