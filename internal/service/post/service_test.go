package post_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kenshi-webspace/internal/domain"
	"kenshi-webspace/internal/mocks"
	"kenshi-webspace/internal/repository"
	"kenshi-webspace/internal/service/objectstore"
	"kenshi-webspace/internal/service/post"
)

type coordinatorMocks struct {
	postRepo  *mocks.PostRepository
	mediaRepo *mocks.MediaRepository
	refRepo   *mocks.ReferenceRepository
	userRepo  *mocks.UserRepository
	engRepo   *mocks.EngagementRepository
	store     *mocks.ObjectStore
	email     *mocks.EmailService
}

func newCoordinator(t *testing.T) (post.Service, *coordinatorMocks) {
	t.Helper()

	m := &coordinatorMocks{
		postRepo:  new(mocks.PostRepository),
		mediaRepo: new(mocks.MediaRepository),
		refRepo:   new(mocks.ReferenceRepository),
		userRepo:  new(mocks.UserRepository),
		engRepo:   new(mocks.EngagementRepository),
		store:     new(mocks.ObjectStore),
		email:     new(mocks.EmailService),
	}

	repos := &repository.Repositories{
		User:       m.userRepo,
		Post:       m.postRepo,
		Media:      m.mediaRepo,
		Reference:  m.refRepo,
		Engagement: m.engRepo,
		Device:     new(mocks.DeviceRepository),
	}
	txm := &mocks.TxManager{Repos: repos}

	log := zerolog.Nop()
	return post.NewService(repos, txm, m.store, nil, m.email, &log), m
}

func TestPostService_CreateWithMedia(t *testing.T) {
	ctx := context.Background()
	const authorID = "user_1"

	thumbID := "kenshi_webspace/user_1/thumbnails/t1"
	input := domain.CreatePostInput{
		Title:           "Ways of the sword",
		Category:        "essays",
		Content:         "body",
		ReadTime:        4,
		ThumbID:         &thumbID,
		ReferenceStatus: true,
	}

	t.Run("Success - Post, Reference, Then Media Attach", func(t *testing.T) {
		svc, m := newCoordinator(t)

		m.postRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Post) bool {
			return p.AuthorID == authorID && p.Title == input.Title && p.ReferenceStatus
		})).Return(nil).Once()
		m.refRepo.On("Upsert", ctx, mock.AnythingOfType("uuid.UUID"), domain.OwnerTypePost).
			Return(&domain.ServiceReference{Type: domain.OwnerTypePost}, nil).Once()
		m.mediaRepo.On("SetServiceRef", ctx, thumbID, mock.AnythingOfType("uuid.UUID")).Return(nil).Once()

		created, err := svc.CreateWithMedia(ctx, authorID, input)

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, authorID, created.AuthorID)
		m.postRepo.AssertExpectations(t)
		m.refRepo.AssertExpectations(t)
		m.mediaRepo.AssertExpectations(t)
	})

	t.Run("Reference Failure Rolls The Post Back", func(t *testing.T) {
		svc, m := newCoordinator(t)

		m.postRepo.On("Create", ctx, mock.AnythingOfType("*domain.Post")).Return(nil).Once()
		m.refRepo.On("Upsert", ctx, mock.AnythingOfType("uuid.UUID"), domain.OwnerTypePost).
			Return(nil, errors.New("relation does not exist")).Once()

		created, err := svc.CreateWithMedia(ctx, authorID, input)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, domain.ErrPostCreationFailed)
		m.mediaRepo.AssertNotCalled(t, "SetServiceRef")
	})

	t.Run("Post Insert Failure", func(t *testing.T) {
		svc, m := newCoordinator(t)

		m.postRepo.On("Create", ctx, mock.AnythingOfType("*domain.Post")).
			Return(errors.New("null value in column")).Once()

		created, err := svc.CreateWithMedia(ctx, authorID, input)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, domain.ErrPostCreationFailed)
		m.refRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("Media Attach Failure Leaves The Post In Place", func(t *testing.T) {
		svc, m := newCoordinator(t)

		m.postRepo.On("Create", ctx, mock.AnythingOfType("*domain.Post")).Return(nil).Once()
		m.refRepo.On("Upsert", ctx, mock.AnythingOfType("uuid.UUID"), domain.OwnerTypePost).
			Return(&domain.ServiceReference{Type: domain.OwnerTypePost}, nil).Once()
		m.mediaRepo.On("SetServiceRef", ctx, thumbID, mock.AnythingOfType("uuid.UUID")).
			Return(domain.ErrMediaNotFound).Once()

		created, err := svc.CreateWithMedia(ctx, authorID, input)

		assert.NoError(t, err)
		assert.NotNil(t, created)
		m.postRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("No Reference Requested - Reference And Media Untouched", func(t *testing.T) {
		svc, m := newCoordinator(t)

		plain := input
		plain.ReferenceStatus = false
		m.postRepo.On("Create", ctx, mock.AnythingOfType("*domain.Post")).Return(nil).Once()

		created, err := svc.CreateWithMedia(ctx, authorID, plain)

		assert.NoError(t, err)
		assert.False(t, created.ReferenceStatus)
		m.refRepo.AssertNotCalled(t, "Upsert")
		m.mediaRepo.AssertNotCalled(t, "SetServiceRef")
	})
}

func TestPostService_DeleteCascade(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()

	referenced := func() *domain.Post {
		return &domain.Post{ID: postID, AuthorID: "user_1", Title: "Ways of the sword", ReferenceStatus: true}
	}
	mediaList := []domain.Media{
		{PublicID: "kenshi_webspace/user_1/thumbnails/t1", MediaType: domain.MediaTypeImage},
		{PublicID: "kenshi_webspace/user_1/coverImages/c1", MediaType: domain.MediaTypeImage},
	}

	t.Run("Success - Strict Dependency Order", func(t *testing.T) {
		svc, m := newCoordinator(t)

		var calls []string
		m.postRepo.On("GetByIDForUpdate", ctx, postID).Return(referenced(), nil).Once()
		m.mediaRepo.On("ListByServiceRef", ctx, postID).Return(mediaList, nil).Once()
		m.mediaRepo.On("DeleteByServiceRef", ctx, postID).Run(func(mock.Arguments) {
			calls = append(calls, "media rows")
		}).Return(nil).Once()
		m.refRepo.On("Delete", ctx, postID).Run(func(mock.Arguments) {
			calls = append(calls, "reference")
		}).Return(nil).Once()
		m.store.On("Delete", ctx, mock.AnythingOfType("string")).Run(func(mock.Arguments) {
			calls = append(calls, "object")
		}).Return(nil).Twice()
		m.postRepo.On("Delete", ctx, postID).Run(func(mock.Arguments) {
			calls = append(calls, "post row")
		}).Return(nil).Once()

		err := svc.DeleteCascade(ctx, postID, nil)

		assert.NoError(t, err)
		assert.Equal(t, []string{"media rows", "reference", "object", "object", "post row"}, calls)
		m.postRepo.AssertExpectations(t)
		m.mediaRepo.AssertExpectations(t)
		m.refRepo.AssertExpectations(t)
		m.store.AssertExpectations(t)
	})

	t.Run("Media Fetch Failure Aborts Before Any Delete", func(t *testing.T) {
		svc, m := newCoordinator(t)

		m.postRepo.On("GetByIDForUpdate", ctx, postID).Return(referenced(), nil).Once()
		m.mediaRepo.On("ListByServiceRef", ctx, postID).
			Return(nil, errors.New("statement timeout")).Once()

		err := svc.DeleteCascade(ctx, postID, nil)

		assert.ErrorIs(t, err, domain.ErrCascadeAborted)
		m.mediaRepo.AssertNotCalled(t, "DeleteByServiceRef")
		m.refRepo.AssertNotCalled(t, "Delete")
		m.store.AssertNotCalled(t, "Delete")
		m.postRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("Missing External Object Counts As Deleted", func(t *testing.T) {
		svc, m := newCoordinator(t)

		m.postRepo.On("GetByIDForUpdate", ctx, postID).Return(referenced(), nil).Once()
		m.mediaRepo.On("ListByServiceRef", ctx, postID).Return(mediaList[:1], nil).Once()
		m.mediaRepo.On("DeleteByServiceRef", ctx, postID).Return(nil).Once()
		m.refRepo.On("Delete", ctx, postID).Return(nil).Once()
		m.store.On("Delete", ctx, mediaList[0].PublicID).Return(objectstore.ErrObjectNotFound).Once()
		m.postRepo.On("Delete", ctx, postID).Return(nil).Once()

		err := svc.DeleteCascade(ctx, postID, nil)

		assert.NoError(t, err)
		m.postRepo.AssertExpectations(t)
	})

	t.Run("External Store Failure Keeps The Post Row", func(t *testing.T) {
		svc, m := newCoordinator(t)

		m.postRepo.On("GetByIDForUpdate", ctx, postID).Return(referenced(), nil).Once()
		m.mediaRepo.On("ListByServiceRef", ctx, postID).Return(mediaList[:1], nil).Once()
		m.mediaRepo.On("DeleteByServiceRef", ctx, postID).Return(nil).Once()
		m.refRepo.On("Delete", ctx, postID).Return(nil).Once()
		m.store.On("Delete", ctx, mediaList[0].PublicID).Return(errors.New("access denied")).Once()

		err := svc.DeleteCascade(ctx, postID, nil)

		assert.ErrorIs(t, err, domain.ErrExternalStoreFailure)
		m.postRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("Post Not Found", func(t *testing.T) {
		svc, m := newCoordinator(t)

		m.postRepo.On("GetByIDForUpdate", ctx, postID).Return(nil, sql.ErrNoRows).Once()

		err := svc.DeleteCascade(ctx, postID, nil)

		assert.ErrorIs(t, err, domain.ErrPostNotFound)
		m.store.AssertNotCalled(t, "Delete")
	})

	t.Run("Unreferenced Post - Only The Row Goes", func(t *testing.T) {
		svc, m := newCoordinator(t)

		plain := referenced()
		plain.ReferenceStatus = false
		m.postRepo.On("GetByIDForUpdate", ctx, postID).Return(plain, nil).Once()
		m.postRepo.On("Delete", ctx, postID).Return(nil).Once()

		err := svc.DeleteCascade(ctx, postID, nil)

		assert.NoError(t, err)
		m.mediaRepo.AssertNotCalled(t, "ListByServiceRef")
		m.refRepo.AssertNotCalled(t, "Delete")
		m.store.AssertNotCalled(t, "Delete")
	})
}

func TestPostService_Update(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()

	t.Run("Detach Requested - Reference Dropped Before Update", func(t *testing.T) {
		svc, m := newCoordinator(t)

		existing := &domain.Post{ID: postID, AuthorID: "user_1", Title: "Old title", ReferenceStatus: true}
		m.postRepo.On("GetByIDForUpdate", ctx, postID).Return(existing, nil).Once()
		m.mediaRepo.On("DetachByServiceRef", ctx, postID).Return(nil).Once()
		m.refRepo.On("Delete", ctx, postID).Return(nil).Once()
		m.postRepo.On("Update", ctx, mock.MatchedBy(func(p *domain.Post) bool {
			return !p.ReferenceStatus
		})).Return(nil).Once()

		updated, err := svc.Update(ctx, postID, domain.UpdatePostInput{DelReq: true})

		assert.NoError(t, err)
		assert.False(t, updated.ReferenceStatus)
		m.refRepo.AssertNotCalled(t, "Upsert")
		m.mediaRepo.AssertExpectations(t)
	})

	t.Run("Detach Then Relink With Fresh Media", func(t *testing.T) {
		svc, m := newCoordinator(t)

		refTrue := true
		newThumb := "kenshi_webspace/user_1/thumbnails/t2"
		existing := &domain.Post{ID: postID, AuthorID: "user_1", Title: "Old title", ReferenceStatus: true}

		var calls []string
		m.postRepo.On("GetByIDForUpdate", ctx, postID).Return(existing, nil).Once()
		m.mediaRepo.On("DetachByServiceRef", ctx, postID).Run(func(mock.Arguments) {
			calls = append(calls, "detach")
		}).Return(nil).Once()
		m.refRepo.On("Delete", ctx, postID).Run(func(mock.Arguments) {
			calls = append(calls, "drop reference")
		}).Return(nil).Once()
		m.refRepo.On("Upsert", ctx, postID, domain.OwnerTypePost).Run(func(mock.Arguments) {
			calls = append(calls, "relink")
		}).Return(&domain.ServiceReference{ID: postID, Type: domain.OwnerTypePost}, nil).Once()
		m.mediaRepo.On("SetServiceRef", ctx, newThumb, postID).Return(nil).Once()
		m.postRepo.On("Update", ctx, mock.AnythingOfType("*domain.Post")).Return(nil).Once()

		updated, err := svc.Update(ctx, postID, domain.UpdatePostInput{
			DelReq:          true,
			ReferenceStatus: &refTrue,
			ThumbID:         &newThumb,
		})

		assert.NoError(t, err)
		assert.True(t, updated.ReferenceStatus)
		assert.Equal(t, []string{"detach", "drop reference", "relink"}, calls)
	})

	t.Run("Field Update Only", func(t *testing.T) {
		svc, m := newCoordinator(t)

		title := "New title"
		existing := &domain.Post{ID: postID, AuthorID: "user_1", Title: "Old title"}
		m.postRepo.On("GetByIDForUpdate", ctx, postID).Return(existing, nil).Once()
		m.postRepo.On("Update", ctx, mock.MatchedBy(func(p *domain.Post) bool {
			return p.Title == title
		})).Return(nil).Once()

		updated, err := svc.Update(ctx, postID, domain.UpdatePostInput{Title: &title})

		assert.NoError(t, err)
		assert.Equal(t, title, updated.Title)
		m.refRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("Post Not Found", func(t *testing.T) {
		svc, m := newCoordinator(t)

		m.postRepo.On("GetByIDForUpdate", ctx, postID).Return(nil, sql.ErrNoRows).Once()

		updated, err := svc.Update(ctx, postID, domain.UpdatePostInput{})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, domain.ErrPostNotFound)
	})
}

func TestPostService_Engagement(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()
	const userID = "user_1"

	t.Run("Toggle Like Returns Fresh Count", func(t *testing.T) {
		svc, m := newCoordinator(t)

		m.engRepo.On("ToggleLike", ctx, postID, userID).Return(true, nil).Once()
		m.engRepo.On("CountLikes", ctx, postID).Return(int64(4), nil).Once()

		liked, count, err := svc.ToggleLike(ctx, postID, userID)

		assert.NoError(t, err)
		assert.True(t, liked)
		assert.Equal(t, int64(4), count)
		m.engRepo.AssertExpectations(t)
	})

	t.Run("Toggle Bookmark", func(t *testing.T) {
		svc, m := newCoordinator(t)

		m.engRepo.On("ToggleBookmark", ctx, postID, userID).Return(false, nil).Once()

		bookmarked, err := svc.ToggleBookmark(ctx, postID, userID)

		assert.NoError(t, err)
		assert.False(t, bookmarked)
	})

	t.Run("Count View", func(t *testing.T) {
		svc, m := newCoordinator(t)

		m.postRepo.On("IncrementViews", ctx, postID).Return(nil).Once()

		assert.NoError(t, svc.CountView(ctx, postID))
	})
}
