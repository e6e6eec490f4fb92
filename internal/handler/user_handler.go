package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"kenshi-webspace/internal/domain"
	"kenshi-webspace/internal/middleware"
	"kenshi-webspace/internal/service/user"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// HandleWebhook receives identity-provider lifecycle events. The
// signature covers the raw body, so the body must not be parsed before
// verification.
func (h *UserHandler) HandleWebhook(c *fiber.Ctx) error {
	headers := user.WebhookHeaders{
		ID:        c.Get("webhook-id"),
		Timestamp: c.Get("webhook-timestamp"),
		Signature: c.Get("webhook-signature"),
	}

	event, err := h.userService.VerifyAndParse(c.Body(), headers)
	if err != nil {
		if errors.Is(err, user.ErrInvalidSignature) || errors.Is(err, user.ErrStaleTimestamp) {
			return middleware.Unauthorized("Invalid webhook signature")
		}
		return middleware.BadRequest("Malformed webhook payload")
	}

	if err := h.userService.HandleEvent(c.Context(), event); err != nil {
		if errors.Is(err, user.ErrUnknownEvent) {
			return middleware.BadRequest("Unknown event type")
		}
		return err
	}

	switch event.Type {
	case domain.UserEventCreated:
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User created successfully"})
	default:
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User deleted successfully"})
	}
}
