// Package post is the coordinator for the media-post reference workflow:
// it keeps posts, their service reference, the media metadata rows, and
// the external objects from diverging across create, update, and delete.
package post

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"kenshi-webspace/internal/domain"
	"kenshi-webspace/internal/repository"
	"kenshi-webspace/internal/service/email"
	"kenshi-webspace/internal/service/notification"
	"kenshi-webspace/internal/service/objectstore"
	"kenshi-webspace/internal/service/reference"
)

const (
	listCacheKey = "posts:list"
	listCacheTTL = 5 * time.Minute

	featuredLimit = 6
)

type Service interface {
	CreateWithMedia(ctx context.Context, authorID string, input domain.CreatePostInput) (*domain.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PostWithAuthor, error)
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.PostWithAuthor], error)
	ListFeatured(ctx context.Context) ([]domain.PostWithAuthor, error)
	ListByAuthor(ctx context.Context, authorID string, params domain.PaginationParams) (domain.PaginatedResponse[domain.Post], error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdatePostInput) (*domain.Post, error)
	DeleteCascade(ctx context.Context, id uuid.UUID, actor *domain.User) error
	ToggleLike(ctx context.Context, postID uuid.UUID, userID string) (bool, int64, error)
	ToggleBookmark(ctx context.Context, postID uuid.UUID, userID string) (bool, error)
	CountView(ctx context.Context, postID uuid.UUID) error
	SetNotificationService(notifSvc notification.Service)
}

type service struct {
	postRepo       repository.PostRepository
	mediaRepo      repository.MediaRepository
	engagementRepo repository.EngagementRepository
	userRepo       repository.UserRepository
	txm            repository.TxManager
	store          objectstore.Store
	redis          *redis.Client
	emailSvc       email.Service
	notifSvc       notification.Service
	log            *zerolog.Logger
}

func NewService(
	repos *repository.Repositories,
	txm repository.TxManager,
	store objectstore.Store,
	redisClient *redis.Client,
	emailSvc email.Service,
	log *zerolog.Logger,
) Service {
	return &service{
		postRepo:       repos.Post,
		mediaRepo:      repos.Media,
		engagementRepo: repos.Engagement,
		userRepo:       repos.User,
		txm:            txm,
		store:          store,
		redis:          redisClient,
		emailSvc:       emailSvc,
		log:            log,
	}
}

func (s *service) SetNotificationService(notifSvc notification.Service) {
	s.notifSvc = notifSvc
}

// CreateWithMedia creates the post row and, when the post declares
// referenceStatus, its service reference — both inside one transaction,
// so a reference failure leaves no post behind. Attaching the submitted
// media identifiers happens after commit and is deliberately
// best-effort: a failed attachment is logged, never rolled back.
func (s *service) CreateWithMedia(ctx context.Context, authorID string, input domain.CreatePostInput) (*domain.Post, error) {
	post := &domain.Post{
		ID:              uuid.New(),
		AuthorID:        authorID,
		Title:           input.Title,
		Excerpt:         input.Excerpt,
		Category:        input.Category,
		Thumbnail:       input.Thumbnail,
		CoverImage:      input.CoverImage,
		Content:         input.Content,
		ReadTime:        input.ReadTime,
		ReferenceStatus: input.ReferenceStatus,
	}

	err := s.txm.RunInTx(ctx, func(ctx context.Context, r *repository.Repositories) error {
		if err := r.Post.Create(ctx, post); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrPostCreationFailed, err)
		}
		if post.ReferenceStatus {
			if _, err := reference.Link(ctx, r.Reference, post.ID, domain.OwnerTypePost); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrPostCreationFailed, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if post.ReferenceStatus {
		for _, publicID := range input.MediaIDs() {
			if err := s.mediaRepo.SetServiceRef(ctx, publicID, post.ID); err != nil {
				s.log.Warn().Err(err).Str("post_id", post.ID.String()).
					Str("public_id", publicID).Msg("media attach failed after post creation")
			}
		}
	}

	s.invalidateListCache(ctx)

	if s.notifSvc != nil {
		authorName := authorID
		if author, err := s.userRepo.GetByID(ctx, authorID); err == nil {
			authorName = author.FullName
		}
		go func() {
			_ = s.notifSvc.NotifyNewPost(context.Background(), post, authorName)
		}()
	}

	return post, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.PostWithAuthor, error) {
	post, err := s.postRepo.GetWithAuthor(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.PostWithAuthor], error) {
	params.Validate()

	if cached, ok := s.getCachedList(ctx, params); ok {
		return cached, nil
	}

	posts, total, err := s.postRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.PostWithAuthor]{}, err
	}

	resp := domain.NewPaginatedResponse(posts, params.Page, params.PageSize, total)
	s.setCachedList(ctx, params, resp)
	return resp, nil
}

func (s *service) ListFeatured(ctx context.Context) ([]domain.PostWithAuthor, error) {
	return s.postRepo.ListFeatured(ctx, featuredLimit)
}

func (s *service) ListByAuthor(ctx context.Context, authorID string, params domain.PaginationParams) (domain.PaginatedResponse[domain.Post], error) {
	posts, total, err := s.postRepo.ListByAuthor(ctx, authorID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Post]{}, err
	}
	return domain.NewPaginatedResponse(posts, params.Page, params.PageSize, total), nil
}

// Update applies partial post fields. The workflow-only inputs thumb_id,
// cover_id, and del_req drive the reference side and are never persisted
// as post columns. With del_req set the existing reference is dropped
// first so a fresh one can be linked in the same request.
func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdatePostInput) (*domain.Post, error) {
	var post *domain.Post

	err := s.txm.RunInTx(ctx, func(ctx context.Context, r *repository.Repositories) error {
		p, err := r.Post.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrPostNotFound
			}
			return err
		}

		if input.DelReq && p.ReferenceStatus {
			if err := reference.Detach(ctx, r.Reference, r.Media, p.ID); err != nil {
				return err
			}
			p.ReferenceStatus = false
		}

		applyPostFields(p, input)

		if p.ReferenceStatus {
			ref, err := reference.Link(ctx, r.Reference, p.ID, domain.OwnerTypePost)
			if err != nil {
				return err
			}
			for _, publicID := range input.MediaIDs() {
				if err := r.Media.SetServiceRef(ctx, publicID, ref.ID); err != nil {
					return err
				}
			}
		}

		if err := r.Post.Update(ctx, p); err != nil {
			return err
		}
		post = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return post, nil
}

// DeleteCascade unwinds a post in strict dependency order: media
// metadata rows, then the service reference, then the external objects,
// and only then the post row itself. If the initial fetch fails nothing
// is deleted. An external object that is already gone counts as done but
// is logged as drift between the store and the application records.
func (s *service) DeleteCascade(ctx context.Context, id uuid.UUID, actor *domain.User) error {
	var (
		post      *domain.Post
		mediaList []domain.Media
	)

	err := s.txm.RunInTx(ctx, func(ctx context.Context, r *repository.Repositories) error {
		p, err := r.Post.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrPostNotFound
			}
			return fmt.Errorf("%w: %v", domain.ErrCascadeAborted, err)
		}
		post = p

		if !post.ReferenceStatus {
			return nil
		}

		mediaList, err = r.Media.ListByServiceRef(ctx, post.ID)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrCascadeAborted, err)
		}

		if err := r.Media.DeleteByServiceRef(ctx, post.ID); err != nil {
			return err
		}
		return r.Reference.Delete(ctx, post.ID)
	})
	if err != nil {
		return err
	}

	for _, m := range mediaList {
		if err := s.store.Delete(ctx, m.PublicID); err != nil {
			if errors.Is(err, objectstore.ErrObjectNotFound) {
				s.log.Warn().Str("public_id", m.PublicID).Str("post_id", id.String()).
					Msg("external object already gone, state drift between store and records")
				continue
			}
			return fmt.Errorf("%w: %v", domain.ErrExternalStoreFailure, err)
		}
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)

	if actor != nil && actor.ID != post.AuthorID {
		go s.notifyAuthorOfRemoval(post)
	}

	return nil
}

func (s *service) notifyAuthorOfRemoval(post *domain.Post) {
	ctx := context.Background()
	author, err := s.userRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		s.log.Warn().Err(err).Str("author_id", post.AuthorID).Msg("could not load author for removal notice")
		return
	}
	if err := s.emailSvc.SendPostRemovedEmail(ctx, author.Email, author.FullName, post.Title); err != nil {
		s.log.Warn().Err(err).Str("author_id", post.AuthorID).Msg("removal notice email failed")
	}
}

func (s *service) ToggleLike(ctx context.Context, postID uuid.UUID, userID string) (bool, int64, error) {
	liked, err := s.engagementRepo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return false, 0, err
	}
	count, err := s.engagementRepo.CountLikes(ctx, postID)
	return liked, count, err
}

func (s *service) ToggleBookmark(ctx context.Context, postID uuid.UUID, userID string) (bool, error) {
	return s.engagementRepo.ToggleBookmark(ctx, postID, userID)
}

func (s *service) CountView(ctx context.Context, postID uuid.UUID) error {
	return s.postRepo.IncrementViews(ctx, postID)
}

func applyPostFields(p *domain.Post, input domain.UpdatePostInput) {
	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Excerpt != nil {
		p.Excerpt = input.Excerpt
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Thumbnail != nil {
		p.Thumbnail = input.Thumbnail
	}
	if input.CoverImage != nil {
		p.CoverImage = input.CoverImage
	}
	if input.Content != nil {
		p.Content = *input.Content
	}
	if input.ReadTime != nil {
		p.ReadTime = *input.ReadTime
	}
	if input.ReferenceStatus != nil {
		p.ReferenceStatus = *input.ReferenceStatus
	}
}
