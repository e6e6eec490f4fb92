package mocks

import (
	"context"

	"kenshi-webspace/internal/repository"
)

// TxManager is a pass-through fake: it hands the configured repository
// set straight to the callback. A returned error stands in for a
// rollback, which the real manager performs at the database level.
type TxManager struct {
	Repos *repository.Repositories
	Err   error
}

func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context, repos *repository.Repositories) error) error {
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx, m.Repos)
}
