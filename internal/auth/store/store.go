package store

import (
	"context"
	"errors"

	"github.com/hirewire/hirewire/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres if we ever outgrow it) implement this.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Users is the credential-record repository. The driver must enforce
// subject-id uniqueness as a hard constraint: the registration flow's
// existence check and insert are not one atomic operation, so a concurrent
// duplicate has to surface here as ErrAlreadyExists.
type Users interface {
	// GetByID returns a user by primary id.
	GetByID(ctx context.Context, id string) (domain.User, error)

	// GetBySubjectID is used during login.
	GetBySubjectID(ctx context.Context, subjectID string) (domain.User, error)

	// ExistsBySubjectID reports whether a record holds this subject id.
	ExistsBySubjectID(ctx context.Context, subjectID string) (bool, error)

	// Create inserts a new user (id is provided by the app via ULID).
	Create(ctx context.Context, u domain.User) error
}
