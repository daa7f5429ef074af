// internal/service/import_service.go
package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	appErrors "github.com/samar-703/Vyapaar/internal/errors"
	"github.com/samar-703/Vyapaar/internal/model"
	"github.com/samar-703/Vyapaar/internal/repository"
)

// ImportService turns an uploaded CSV into customer upserts.
type ImportService struct {
	CustomerRepo repository.CustomerRepositoryInterface
	Log          *zap.SugaredLogger
}

// ImportResult reports both how many rows the file contained and how many
// actually reached the store. The two differ when a row aborts the batch
// midway.
type ImportResult struct {
	Parsed    int
	Committed int
}

// Import parses the file and upserts rows strictly in file order. The first
// failing row aborts the whole request; rows before it stay committed.
func (s *ImportService) Import(r io.Reader) (*ImportResult, error) {
	rows, err := parseCSV(r)
	if err != nil {
		return nil, appErrors.NewMalformedCSV(err)
	}

	result := &ImportResult{Parsed: len(rows)}

	for i, row := range rows {
		customer := rowToCustomer(row)

		// A row with no usable numeric data is treated as malformed.
		if customer.BusinessExpenses == 0 &&
			customer.BusinessGrowthRate == 0 &&
			customer.CustomerSatisfactionScore == 0 {
			return result, appErrors.NewInvalidRow(i + 1)
		}

		if _, err := s.CustomerRepo.Upsert(customer); err != nil {
			s.Log.Errorw("database error during import", "row", i+1, "error", err)
			return result, fmt.Errorf("row %d: %w", i+1, err)
		}
		result.Committed++
	}

	return result, nil
}

// parseCSV reads the whole file into header-keyed row maps. Blank lines are
// skipped by the reader; short rows keep whatever columns they have.
func parseCSV(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []map[string]string{}, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[strings.TrimSpace(name)] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// field tries the capitalized header first, then the lowercase variant.
func field(row map[string]string, name, fallback string) string {
	if v := row[name]; v != "" {
		return v
	}
	if v := row[strings.ToLower(name[:1])+name[1:]]; v != "" {
		return v
	}
	return fallback
}

func rowToCustomer(row map[string]string) model.Customer {
	return model.Customer{
		Name:                      field(row, "Name", ""),
		Email:                     field(row, "Email", ""),
		Gender:                    field(row, "Gender", ""),
		Phone:                     field(row, "Phone", ""),
		City:                      field(row, "City", ""),
		State:                     field(row, "State", ""),
		PurchaseHistory:           field(row, "PurchaseHistory", ""),
		Age:                       parseIntField(field(row, "Age", "0")),
		BusinessExpenses:          parseIntField(field(row, "BusinessExpenses", "0")),
		BusinessGrowthRate:        parseFloatField(field(row, "BusinessGrowthRate", "0")),
		CustomerSatisfactionScore: parseIntField(field(row, "CustomerSatisfactionScore", "0")),
		LoyaltyPoints:             parseIntField(field(row, "LoyaltyPoints", "0")),
		AverageOrderValue:         parseIntField(field(row, "AverageOrderValue", "0")),
	}
}

// parseIntField coerces to an integer; unparseable values become 0. Decimal
// strings are truncated like the source data expects.
func parseIntField(v string) int {
	v = strings.TrimSpace(v)
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f)
	}
	return 0
}

func parseFloatField(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}
