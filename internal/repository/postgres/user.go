package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"frota-backend/internal/domain"
	"frota-backend/internal/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedOn = time.Now().Format(dateLayout)
	query := `INSERT INTO users (id, name, email, password_hash, active, created_on)
	          VALUES ($1, $2, $3, $4, $5, NOW())`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.PasswordHash, user.Active)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	var createdOn sql.NullTime
	query := `SELECT id, name, email, password_hash, active, created_on FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Active, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.CreatedOn = dateString(createdOn)
	return &u, nil
}
