package service

import (
	"github.com/redis/go-redis/v9"

	"kenshi-webspace/internal/config"
	"kenshi-webspace/internal/logger"
	"kenshi-webspace/internal/repository"
	"kenshi-webspace/internal/service/email"
	"kenshi-webspace/internal/service/media"
	"kenshi-webspace/internal/service/notification"
	"kenshi-webspace/internal/service/objectstore"
	"kenshi-webspace/internal/service/post"
	"kenshi-webspace/internal/service/reference"
	"kenshi-webspace/internal/service/user"
)

type Services struct {
	User         user.Service
	Post         post.Service
	Media        media.Service
	Reference    reference.Service
	Email        email.Service
	Notification notification.Service
}

func NewServices(repos *repository.Repositories, txm repository.TxManager, redisClient *redis.Client, store objectstore.Store, cfg *config.Config) *Services {
	log := logger.L()

	emailService := email.NewService(cfg)
	userService := user.NewService(repos.User, cfg.WebhookSecret)
	referenceService := reference.NewService(repos.Reference, repos.Media)
	mediaService := media.NewService(repos.Media, repos.Reference, store, log)
	notificationService := notification.NewService(repos.Device, notification.LogSender{Log: log}, log)
	postService := post.NewService(repos, txm, store, redisClient, emailService, log)
	postService.SetNotificationService(notificationService)

	return &Services{
		User:         userService,
		Post:         postService,
		Media:        mediaService,
		Reference:    referenceService,
		Email:        emailService,
		Notification: notificationService,
	}
}
