package handler

import (
	"github.com/gofiber/fiber/v2"

	"kenshi-webspace/internal/domain"
	"kenshi-webspace/internal/middleware"
	"kenshi-webspace/internal/service/notification"
)

type NotificationHandler struct {
	notifService notification.Service
}

func NewNotificationHandler(notifService notification.Service) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

// RegisterToken stores a push registration token. The endpoint also
// serves unauthenticated public service requests, so the user link is
// optional.
func (h *NotificationHandler) RegisterToken(c *fiber.Ctx) error {
	var input domain.RegisterTokenInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	var userID *string
	if id := middleware.GetCurrentUserID(c); id != "" {
		userID = &id
	}

	if _, err := h.notifService.RegisterToken(c.Context(), userID, input); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "FCM token received"})
}
