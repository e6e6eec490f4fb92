// Package user mirrors accounts managed by the external identity
// provider. Rows only change through signed provider webhooks; the
// service itself never validates credentials.
package user

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"kenshi-webspace/internal/domain"
	"kenshi-webspace/internal/repository"
)

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrStaleTimestamp   = errors.New("webhook timestamp outside tolerance")
	ErrUnknownEvent     = errors.New("unknown webhook event type")
)

// Webhook signatures older than this are rejected to blunt replay.
const timestampTolerance = 5 * time.Minute

// WebhookHeaders are the signature headers the identity provider sends
// with every lifecycle event.
type WebhookHeaders struct {
	ID        string
	Timestamp string
	Signature string
}

type Service interface {
	// VerifyAndParse checks the HMAC signature over the raw body and
	// decodes the event. The raw body must be exactly as received.
	VerifyAndParse(payload []byte, headers WebhookHeaders) (*domain.UserEvent, error)
	HandleEvent(ctx context.Context, event *domain.UserEvent) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type service struct {
	userRepo      repository.UserRepository
	webhookSecret []byte
	now           func() time.Time
}

func NewService(userRepo repository.UserRepository, webhookSecret string) Service {
	return &service{
		userRepo:      userRepo,
		webhookSecret: []byte(webhookSecret),
		now:           time.Now,
	}
}

func (s *service) VerifyAndParse(payload []byte, headers WebhookHeaders) (*domain.UserEvent, error) {
	ts, err := strconv.ParseInt(headers.Timestamp, 10, 64)
	if err != nil {
		return nil, ErrInvalidSignature
	}
	if delta := s.now().Sub(time.Unix(ts, 0)); delta > timestampTolerance || delta < -timestampTolerance {
		return nil, ErrStaleTimestamp
	}

	mac := hmac.New(sha256.New, s.webhookSecret)
	fmt.Fprintf(mac, "%s.%s.", headers.ID, headers.Timestamp)
	mac.Write(payload)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(headers.Signature)) {
		return nil, ErrInvalidSignature
	}

	var event domain.UserEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("malformed webhook payload: %w", err)
	}
	return &event, nil
}

func (s *service) HandleEvent(ctx context.Context, event *domain.UserEvent) error {
	switch event.Type {
	case domain.UserEventCreated:
		user := &domain.User{
			ID:        event.Data.ID,
			Email:     event.Data.Email,
			FullName:  fullName(event.Data),
			AvatarURL: event.Data.ImageURL,
			Role:      domain.RoleUser,
		}
		return s.userRepo.Upsert(ctx, user)
	case domain.UserEventDeleted:
		return s.userRepo.Delete(ctx, event.Data.ID)
	}
	return fmt.Errorf("%w: %s", ErrUnknownEvent, event.Type)
}

func (s *service) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func fullName(data domain.UserEventData) string {
	if data.FirstName == "" {
		return data.LastName
	}
	if data.LastName == "" {
		return data.FirstName
	}
	return data.FirstName + " " + data.LastName
}
