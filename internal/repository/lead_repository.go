package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/samar-703/Vyapaar/internal/model"
)

type LeadRepositoryInterface interface {
	Create(l *model.Lead) error
	ListAll() ([]model.Lead, error)
	UpdateStatus(id, status, notes string) error
}

type LeadRepository struct {
	DB *sql.DB
}

// Create inserts a lead; best effort, the caller decides whether a failure
// aborts anything.
func (r *LeadRepository) Create(l *model.Lead) error {
	now := time.Now()
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Status == "" {
		l.Status = "new"
	}
	l.CreatedAt = now
	l.UpdatedAt = now

	query := `
        INSERT INTO leads (id, twitter_id, username, name, bio, tweet, follower_count, topics, status, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `
	_, err := r.DB.Exec(query,
		l.ID, l.TwitterID, l.Username, l.Name, l.Bio, l.Tweet,
		l.FollowerCount, pq.Array(l.Topics), l.Status, l.Notes,
		l.CreatedAt, l.UpdatedAt,
	)
	return err
}

func (r *LeadRepository) ListAll() ([]model.Lead, error) {
	query := `
        SELECT id, twitter_id, username, name, bio, tweet, follower_count, topics, status, notes, created_at, updated_at
        FROM leads ORDER BY created_at DESC
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []model.Lead{}
	for rows.Next() {
		var l model.Lead
		if err := rows.Scan(
			&l.ID, &l.TwitterID, &l.Username, &l.Name, &l.Bio, &l.Tweet,
			&l.FollowerCount, pq.Array(&l.Topics), &l.Status, &l.Notes,
			&l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) UpdateStatus(id, status, notes string) error {
	query := `UPDATE leads SET status=$1, notes=$2, updated_at=NOW() WHERE id=$3`
	_, err := r.DB.Exec(query, status, notes, id)
	return err
}

var _ LeadRepositoryInterface = (*LeadRepository)(nil)
