package identity

import (
	"context"

	"github.com/samplestore/backend/internal/domain/shared"
)

// UserRepository defines the persistence contract for users
type UserRepository interface {
	shared.Repository[User]
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
