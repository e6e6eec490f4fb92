// Package notification stores push registration tokens and fans new-post
// notices out to a messaging provider. Delivery itself stays behind the
// Sender interface; this service never talks to the provider directly.
package notification

import (
	"context"

	"github.com/rs/zerolog"

	"kenshi-webspace/internal/domain"
	"kenshi-webspace/internal/repository"
)

// Sender pushes one message to a set of device tokens.
type Sender interface {
	Send(ctx context.Context, tokens []string, title, body string) error
}

type Service interface {
	RegisterToken(ctx context.Context, userID *string, input domain.RegisterTokenInput) (*domain.DeviceToken, error)
	NotifyNewPost(ctx context.Context, post *domain.Post, authorName string) error
}

type service struct {
	deviceRepo repository.DeviceRepository
	sender     Sender
	log        *zerolog.Logger
}

func NewService(deviceRepo repository.DeviceRepository, sender Sender, log *zerolog.Logger) Service {
	return &service{
		deviceRepo: deviceRepo,
		sender:     sender,
		log:        log,
	}
}

func (s *service) RegisterToken(ctx context.Context, userID *string, input domain.RegisterTokenInput) (*domain.DeviceToken, error) {
	platform := input.Platform
	if platform == "" {
		platform = "web"
	}

	token := &domain.DeviceToken{
		Token:    input.Token,
		UserID:   userID,
		Platform: platform,
	}
	if err := s.deviceRepo.Upsert(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *service) NotifyNewPost(ctx context.Context, post *domain.Post, authorName string) error {
	devices, err := s.deviceRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, d := range devices {
		tokens = append(tokens, d.Token)
	}

	title := "New article on Kenshi Webspace"
	body := authorName + " published: " + post.Title
	if err := s.sender.Send(ctx, tokens, title, body); err != nil {
		s.log.Warn().Err(err).Str("post_id", post.ID.String()).
			Int("tokens", len(tokens)).Msg("push fan-out failed")
		return err
	}
	return nil
}

// LogSender is the stub Sender used until a real messaging provider is
// wired in deployment.
type LogSender struct {
	Log *zerolog.Logger
}

func (s LogSender) Send(ctx context.Context, tokens []string, title, body string) error {
	s.Log.Info().Int("tokens", len(tokens)).Str("title", title).Msg("push notification (stub sender)")
	return nil
}
