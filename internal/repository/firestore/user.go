package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"frota-backend/internal/domain"

	"github.com/google/uuid"
)

type userRepository struct {
	client *firestore.Client
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedOn = time.Now().Format(dateLayout)
	_, err := r.client.Collection(collUsers).Doc(user.ID).Set(ctx, user)
	return err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	snaps, err := r.client.Collection(collUsers).Query.
		Where("Email", "==", email).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, domain.ErrNotFound
	}
	var user domain.User
	if err := snaps[0].DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
