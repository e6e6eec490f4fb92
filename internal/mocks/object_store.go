package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"kenshi-webspace/internal/service/objectstore"
)

type ObjectStore struct {
	mock.Mock
}

func (m *ObjectStore) Upload(ctx context.Context, folder string, reader io.Reader, size int64, contentType string) (*objectstore.Object, error) {
	args := m.Called(ctx, folder, reader, size, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*objectstore.Object), args.Error(1)
}

func (m *ObjectStore) Delete(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}
