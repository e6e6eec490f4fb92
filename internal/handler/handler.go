package handler

import "kenshi-webspace/internal/service"

type Handlers struct {
	Post         *PostHandler
	Media        *MediaHandler
	User         *UserHandler
	Notification *NotificationHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Post:         NewPostHandler(services.Post),
		Media:        NewMediaHandler(services.Media),
		User:         NewUserHandler(services.User),
		Notification: NewNotificationHandler(services.Notification),
	}
}
