package model

import "time"

type Customer struct {
	ID                        string    `db:"id" json:"id"`
	Name                      string    `db:"name" json:"name"`
	Email                     string    `db:"email" json:"email"`
	Gender                    string    `db:"gender" json:"gender"`
	Phone                     string    `db:"phone" json:"phone"`
	City                      string    `db:"city" json:"city"`
	State                     string    `db:"state" json:"state"`
	PurchaseHistory           string    `db:"purchase_history" json:"purchaseHistory"`
	Age                       int       `db:"age" json:"age"`
	BusinessExpenses          int       `db:"business_expenses" json:"businessExpenses"`
	BusinessGrowthRate        float64   `db:"business_growth_rate" json:"businessGrowthRate"`
	CustomerSatisfactionScore int       `db:"customer_satisfaction_score" json:"customerSatisfactionScore"`
	LoyaltyPoints             int       `db:"loyalty_points" json:"loyaltyPoints"`
	AverageOrderValue         int       `db:"average_order_value" json:"averageOrderValue"`
	CreatedAt                 time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt                 time.Time `db:"updated_at" json:"updatedAt"`
}

// SparseMerge overlays incoming onto existing, field by field: an incoming
// empty string or zero numeric never erases a stored value. A later import
// with blanks therefore cannot wipe out data from an earlier one. The merge
// is deliberately explicit rather than delegated to the database's native
// upsert so the rule is the same regardless of storage engine.
func SparseMerge(existing, incoming Customer) Customer {
	merged := existing

	if incoming.Name != "" {
		merged.Name = incoming.Name
	}
	if incoming.Gender != "" {
		merged.Gender = incoming.Gender
	}
	if incoming.Phone != "" {
		merged.Phone = incoming.Phone
	}
	if incoming.City != "" {
		merged.City = incoming.City
	}
	if incoming.State != "" {
		merged.State = incoming.State
	}
	if incoming.PurchaseHistory != "" {
		merged.PurchaseHistory = incoming.PurchaseHistory
	}
	if incoming.Age != 0 {
		merged.Age = incoming.Age
	}
	if incoming.BusinessExpenses != 0 {
		merged.BusinessExpenses = incoming.BusinessExpenses
	}
	if incoming.BusinessGrowthRate != 0 {
		merged.BusinessGrowthRate = incoming.BusinessGrowthRate
	}
	if incoming.CustomerSatisfactionScore != 0 {
		merged.CustomerSatisfactionScore = incoming.CustomerSatisfactionScore
	}
	if incoming.LoyaltyPoints != 0 {
		merged.LoyaltyPoints = incoming.LoyaltyPoints
	}
	if incoming.AverageOrderValue != 0 {
		merged.AverageOrderValue = incoming.AverageOrderValue
	}

	return merged
}
