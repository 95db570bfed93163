package handlers

import (
	"errors"

	applog "stylebay/internal/log"
	"stylebay/internal/services"
	"stylebay/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	name, ok := validate.Name(req.Username)
	if !ok {
		return failJSON(c, fiber.StatusBadRequest, "Username is required")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return failJSON(c, fiber.StatusBadRequest, "A valid email is required")
	}
	if !validate.Password(req.Password) {
		return failJSON(c, fiber.StatusBadRequest, "Password is required")
	}

	tok, err := h.Auth.Signup(name, email, req.Password)
	if errors.Is(err, services.ErrEmailTaken) {
		return failJSON(c, fiber.StatusBadRequest, "Email already in use.")
	}
	if err != nil {
		applog.Error(c, "auth.signup.error", err, nil)
		return failJSON(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	applog.Audit(c, "auth.signup.success", map[string]any{"email": email})
	return c.JSON(fiber.Map{"success": true, "token": tok})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	tok, err := h.Auth.Login(req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrUnknownEmail):
		// Business failures ride on 200; the client keys off success:false.
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email, "reason": "unknown_email"})
		return c.JSON(fiber.Map{"success": false, "errors": "Wrong Email Id"})
	case errors.Is(err, services.ErrWrongPassword):
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email, "reason": "wrong_password"})
		return c.JSON(fiber.Map{"success": false, "errors": "Wrong Password"})
	case err != nil:
		applog.Error(c, "auth.login.error", err, nil)
		return failJSON(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	applog.Audit(c, "auth.login.success", map[string]any{"email": req.Email})
	return c.JSON(fiber.Map{"success": true, "token": tok})
}
