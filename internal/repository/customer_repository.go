package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/samar-703/Vyapaar/internal/model"
)

// CustomerRepositoryInterface defines methods used by services
type CustomerRepositoryInterface interface {
	Upsert(c model.Customer) (*model.Customer, error)
	GetByEmail(email string) (*model.Customer, error)
	ListAll() ([]model.Customer, error)
}

// CustomerRepository is the concrete implementation
type CustomerRepository struct {
	DB *sql.DB
}

const customerColumns = `
        id, name, email, gender, phone, city, state, purchase_history,
        age, business_expenses, business_growth_rate, customer_satisfaction_score,
        loyalty_points, average_order_value, created_at, updated_at
`

func scanCustomer(row interface{ Scan(...any) error }) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Gender, &c.Phone, &c.City, &c.State,
		&c.PurchaseHistory, &c.Age, &c.BusinessExpenses, &c.BusinessGrowthRate,
		&c.CustomerSatisfactionScore, &c.LoyaltyPoints, &c.AverageOrderValue,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByEmail fetches a customer by email, the upsert key
func (r *CustomerRepository) GetByEmail(email string) (*model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	c, err := scanCustomer(r.DB.QueryRow(query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return c, nil
}

// Upsert inserts a new customer or sparse-merges into the existing row
// keyed on email. Always refreshes updated_at on the update path.
func (r *CustomerRepository) Upsert(c model.Customer) (*model.Customer, error) {
	existing, err := r.GetByEmail(c.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	if existing == nil {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		c.CreatedAt = now
		c.UpdatedAt = now

		query := `
            INSERT INTO customers (` + customerColumns + `)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        `
		_, err = r.DB.Exec(query,
			c.ID, c.Name, c.Email, c.Gender, c.Phone, c.City, c.State,
			c.PurchaseHistory, c.Age, c.BusinessExpenses, c.BusinessGrowthRate,
			c.CustomerSatisfactionScore, c.LoyaltyPoints, c.AverageOrderValue,
			c.CreatedAt, c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		return &c, nil
	}

	merged := model.SparseMerge(*existing, c)
	merged.UpdatedAt = now

	query := `
        UPDATE customers
        SET name=$1, gender=$2, phone=$3, city=$4, state=$5, purchase_history=$6,
            age=$7, business_expenses=$8, business_growth_rate=$9,
            customer_satisfaction_score=$10, loyalty_points=$11,
            average_order_value=$12, updated_at=$13
        WHERE email=$14
    `
	_, err = r.DB.Exec(query,
		merged.Name, merged.Gender, merged.Phone, merged.City, merged.State,
		merged.PurchaseHistory, merged.Age, merged.BusinessExpenses,
		merged.BusinessGrowthRate, merged.CustomerSatisfactionScore,
		merged.LoyaltyPoints, merged.AverageOrderValue, merged.UpdatedAt,
		merged.Email,
	)
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

// ListAll fetches every customer (used by the query and campaign services)
func (r *CustomerRepository) ListAll() ([]model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
