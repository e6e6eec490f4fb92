package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// DBTX is the subset of sqlx satisfied by both *sqlx.DB and *sqlx.Tx,
// so every repository can run standalone or inside a transaction.
type DBTX interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repositories struct {
	User       UserRepository
	Post       PostRepository
	Media      MediaRepository
	Reference  ReferenceRepository
	Engagement EngagementRepository
	Device     DeviceRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return newRepositories(db)
}

func newRepositories(db DBTX) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Post:       NewPostRepository(db),
		Media:      NewMediaRepository(db),
		Reference:  NewReferenceRepository(db),
		Engagement: NewEngagementRepository(db),
		Device:     NewDeviceRepository(db),
	}
}

// TxManager runs a repository sequence inside one database transaction.
// The callback receives a repository set bound to the transaction; any
// returned error rolls everything back.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error
}

type txManager struct {
	db *sqlx.DB
}

func NewTxManager(db *sqlx.DB) TxManager {
	return &txManager{db: db}
}

func (m *txManager) RunInTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(ctx, newRepositories(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
