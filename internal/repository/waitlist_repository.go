package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	appErrors "github.com/samar-703/Vyapaar/internal/errors"
	"github.com/samar-703/Vyapaar/internal/model"
)

type WaitlistRepositoryInterface interface {
	GetByEmail(email string) (*model.WaitlistUser, error)
	Create(email string) (*model.WaitlistUser, error)
}

type WaitlistRepository struct {
	DB *sql.DB
}

func (r *WaitlistRepository) GetByEmail(email string) (*model.WaitlistUser, error) {
	query := `SELECT id, email, created_at FROM waitlist_users WHERE email = $1`
	var u model.WaitlistUser
	err := r.DB.QueryRow(query, email).Scan(&u.ID, &u.Email, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Create inserts a waitlist entry. A unique-violation from a concurrent
// signup surfaces as the same duplicate error the pre-check produces.
func (r *WaitlistRepository) Create(email string) (*model.WaitlistUser, error) {
	u := model.WaitlistUser{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now(),
	}

	query := `INSERT INTO waitlist_users (id, email, created_at) VALUES ($1, $2, $3)`
	if _, err := r.DB.Exec(query, u.ID, u.Email, u.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, appErrors.NewDuplicateEmail(email)
		}
		return nil, err
	}
	return &u, nil
}

var _ WaitlistRepositoryInterface = (*WaitlistRepository)(nil)
