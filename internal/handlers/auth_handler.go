package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-manager/internal/config"
	"alfredoptarigan/resume-manager/internal/models"
	"alfredoptarigan/resume-manager/internal/repositories"
)

type AuthHandler struct {
	userRepo repositories.UserRepository
	authCfg  *config.AuthConfig
}

func NewAuthHandler(userRepo repositories.UserRepository, authCfg *config.AuthConfig) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		authCfg:  authCfg,
	}
}

// HandleRegister handles POST /auth/register
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	exists, err := h.userRepo.EmailExists(req.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check registration",
		})
	}
	if exists {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email already registered",
		})
	}

	hashed, err := h.authCfg.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register user",
		})
	}

	role := req.Role
	if role == "" {
		role = "student"
	}

	user := &models.User{
		ID:             uuid.New(),
		Email:          req.Email,
		FullName:       req.FullName,
		Role:           role,
		HashedPassword: hashed,
		IsActive:       true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.userRepo.Create(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register user",
		})
	}

	token, err := h.authCfg.CreateAccessToken(user.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to issue access token",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// HandleLogin handles POST /auth/login
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Incorrect email or password",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to log in",
		})
	}

	if !h.authCfg.VerifyPassword(req.Password, user.HashedPassword) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Incorrect email or password",
		})
	}

	token, err := h.authCfg.CreateAccessToken(user.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to issue access token",
		})
	}

	return c.JSON(models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// HandleMe handles GET /auth/me
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	user, err := h.userRepo.FindByEmail(currentUserEmail(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Could not validate credentials",
		})
	}

	return c.JSON(models.MeResponse{
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	})
}
