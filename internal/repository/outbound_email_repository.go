package repository

import (
	"database/sql"
	"time"

	"github.com/samar-703/Vyapaar/internal/model"
)

type OutboundEmailRepositoryInterface interface {
	Create(e *model.OutboundEmail) error
	GetByID(id int) (*model.OutboundEmail, error)
	Update(e *model.OutboundEmail) error
	UpdateStatus(id int, status, lastError string) error
}

type OutboundEmailRepository struct {
	DB *sql.DB
}

// Create journals a delivery attempt and fills in the generated ID
func (r *OutboundEmailRepository) Create(e *model.OutboundEmail) error {
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now

	query := `
        INSERT INTO outbound_emails (recipient, subject, body, status, last_error, retry_count, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	return r.DB.QueryRow(
		query,
		e.Recipient, e.Subject, e.Body, e.Status, e.LastError, e.RetryCount,
		e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

// GetByID fetches a journaled email by its ID
func (r *OutboundEmailRepository) GetByID(id int) (*model.OutboundEmail, error) {
	query := `
        SELECT id, recipient, subject, body, status, last_error, retry_count, created_at, updated_at
        FROM outbound_emails
        WHERE id=$1
    `
	var e model.OutboundEmail
	err := r.DB.QueryRow(query, id).Scan(
		&e.ID, &e.Recipient, &e.Subject, &e.Body, &e.Status,
		&e.LastError, &e.RetryCount, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// Update rewrites status, last_error and retry_count after a retry attempt
func (r *OutboundEmailRepository) Update(e *model.OutboundEmail) error {
	e.UpdatedAt = time.Now()
	query := `
        UPDATE outbound_emails
        SET status=$1, last_error=$2, retry_count=$3, updated_at=$4
        WHERE id=$5
    `
	_, err := r.DB.Exec(query, e.Status, e.LastError, e.RetryCount, e.UpdatedAt, e.ID)
	return err
}

func (r *OutboundEmailRepository) UpdateStatus(id int, status, lastError string) error {
	query := `UPDATE outbound_emails SET status=$1, last_error=$2, retry_count=retry_count+1, updated_at=NOW() WHERE id=$3`
	_, err := r.DB.Exec(query, status, lastError, id)
	return err
}

var _ OutboundEmailRepositoryInterface = (*OutboundEmailRepository)(nil)
