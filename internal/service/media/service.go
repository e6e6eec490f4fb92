// Package media owns the upload workflow: pushing image bytes to the
// external object store, recording metadata for each stored object, and
// rolling the external object back whenever the application-side record
// cannot be completed.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"kenshi-webspace/internal/domain"
	"kenshi-webspace/internal/repository"
	"kenshi-webspace/internal/service/objectstore"
	"kenshi-webspace/internal/service/reference"
)

// UploadFile is one multipart file as received by the handler.
type UploadFile struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

type Service interface {
	// UploadImages stores the submitted thumbnail and cover image and
	// creates an orphaned media record for each.
	UploadImages(ctx context.Context, userID string, thumbnail, coverImage *UploadFile) (*domain.UploadResult, error)
	// AttachMedia records metadata for an already-uploaded object. If
	// opts carries a target reference the media is linked immediately;
	// any failure deletes the external object so no orphan survives an
	// error return.
	AttachMedia(ctx context.Context, publicID, url, userID string, mediaType domain.MediaType, ownerType domain.OwnerType, opts domain.AttachMediaOptions) (*domain.Media, error)
	GetByPublicID(ctx context.Context, publicID string) (*domain.Media, error)
}

type service struct {
	mediaRepo repository.MediaRepository
	refRepo   repository.ReferenceRepository
	store     objectstore.Store
	log       *zerolog.Logger
}

func NewService(mediaRepo repository.MediaRepository, refRepo repository.ReferenceRepository, store objectstore.Store, log *zerolog.Logger) Service {
	return &service{
		mediaRepo: mediaRepo,
		refRepo:   refRepo,
		store:     store,
		log:       log,
	}
}

func (s *service) UploadImages(ctx context.Context, userID string, thumbnail, coverImage *UploadFile) (*domain.UploadResult, error) {
	result := &domain.UploadResult{}

	if thumbnail != nil {
		folder := fmt.Sprintf("kenshi_webspace/%s/thumbnails", userID)
		media, err := s.uploadOne(ctx, folder, userID, thumbnail)
		if err != nil {
			return nil, err
		}
		result.Thumbnail = media.URL
		result.ThumbID = media.PublicID
	}

	if coverImage != nil {
		folder := fmt.Sprintf("kenshi_webspace/%s/coverImages", userID)
		media, err := s.uploadOne(ctx, folder, userID, coverImage)
		if err != nil {
			return nil, err
		}
		result.CoverImage = media.URL
		result.CoverID = media.PublicID
	}

	return result, nil
}

func (s *service) uploadOne(ctx context.Context, folder, userID string, file *UploadFile) (*domain.Media, error) {
	obj, err := s.store.Upload(ctx, folder, file.Reader, file.Size, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExternalStoreFailure, err)
	}

	return s.AttachMedia(ctx, obj.PublicID, obj.URL, userID, domain.MediaTypeImage, domain.OwnerTypePost, domain.AttachMediaOptions{})
}

func (s *service) AttachMedia(ctx context.Context, publicID, url, userID string, mediaType domain.MediaType, ownerType domain.OwnerType, opts domain.AttachMediaOptions) (*domain.Media, error) {
	if publicID == "" {
		return nil, fmt.Errorf("%w: empty public id", domain.ErrInvalidEnumValue)
	}
	if !mediaType.Valid() {
		return nil, fmt.Errorf("%w: media type %q", domain.ErrInvalidEnumValue, mediaType)
	}
	if !ownerType.Valid() {
		return nil, fmt.Errorf("%w: owner type %q", domain.ErrInvalidEnumValue, ownerType)
	}

	media := &domain.Media{
		PublicID:   publicID,
		MediaType:  mediaType,
		URL:        url,
		UploadedBy: userID,
	}

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		s.compensateObject(ctx, publicID)
		return nil, fmt.Errorf("%w: %v", domain.ErrMetadataCreationFailed, err)
	}

	if opts.ServiceRefID == nil {
		return media, nil
	}

	ref, err := reference.Link(ctx, s.refRepo, *opts.ServiceRefID, ownerType)
	if err == nil {
		err = s.mediaRepo.SetServiceRef(ctx, publicID, ref.ID)
	}
	if err != nil {
		// Unwind: the metadata row first, then the external object, so
		// an error return leaves no trace of this upload.
		if delErr := s.mediaRepo.Delete(ctx, publicID); delErr != nil {
			s.log.Error().Err(delErr).Str("public_id", publicID).
				Msg("compensating media metadata delete failed")
		}
		s.compensateObject(ctx, publicID)
		return nil, err
	}

	media.ServiceRefID = opts.ServiceRefID
	return media, nil
}

func (s *service) GetByPublicID(ctx context.Context, publicID string) (*domain.Media, error) {
	return s.mediaRepo.GetByPublicID(ctx, publicID)
}

// compensateObject best-effort deletes an external object after a failed
// attach. Failures are logged, never retried, and never mask the error
// that triggered the compensation.
func (s *service) compensateObject(ctx context.Context, publicID string) {
	if err := s.store.Delete(ctx, publicID); err != nil && !errors.Is(err, objectstore.ErrObjectNotFound) {
		s.log.Error().Err(err).Str("public_id", publicID).
			Msg("compensating object store delete failed")
	}
}
