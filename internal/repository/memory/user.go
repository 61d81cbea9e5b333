package memory

import (
	"context"
	"time"

	"frota-backend/internal/domain"

	"github.com/google/uuid"
)

type userRepository struct {
	core *core
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	c := r.core
	c.mu.Lock()
	defer c.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedOn = time.Now().Format(dateLayout)
	c.users[user.ID] = *user
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	c := r.core
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, u := range c.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}
