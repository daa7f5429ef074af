package appErrors

import "fmt"

// ErrInvalidRow marks a CSV row whose numeric fields were all unusable.
type ErrInvalidRow struct {
	Row int
}

func (e *ErrInvalidRow) Error() string {
	return fmt.Sprintf("row %d: invalid numerical values in CSV", e.Row)
}

// Helper constructor
func NewInvalidRow(row int) error {
	return &ErrInvalidRow{Row: row}
}

// ErrMalformedCSV marks an upload the CSV reader could not parse at all,
// as opposed to a file that parsed but carried a bad row.
type ErrMalformedCSV struct {
	Err error
}

func (e *ErrMalformedCSV) Error() string {
	return fmt.Sprintf("failed to parse CSV: %v", e.Err)
}

func (e *ErrMalformedCSV) Unwrap() error { return e.Err }

func NewMalformedCSV(err error) error {
	return &ErrMalformedCSV{Err: err}
}

// ErrNoRecipients is returned when a campaign region matches no customers.
type ErrNoRecipients struct {
	Region string
}

func (e *ErrNoRecipients) Error() string {
	return fmt.Sprintf("No customers found in %s", e.Region)
}

func NewNoRecipients(region string) error {
	return &ErrNoRecipients{Region: region}
}

// ErrMissingCredential is returned when a feature's API key is not configured.
type ErrMissingCredential struct {
	Name string
}

func (e *ErrMissingCredential) Error() string {
	return fmt.Sprintf("%s is not set", e.Name)
}

func NewMissingCredential(name string) error {
	return &ErrMissingCredential{Name: name}
}

// ErrDuplicateEmail is returned on a second waitlist signup with the same address.
type ErrDuplicateEmail struct {
	Email string
}

func (e *ErrDuplicateEmail) Error() string {
	return fmt.Sprintf("email %s already on the waitlist", e.Email)
}

func NewDuplicateEmail(email string) error {
	return &ErrDuplicateEmail{Email: email}
}

// ErrAllSendsFailed is returned when a non-preview campaign delivers nothing.
type ErrAllSendsFailed struct {
	Attempted int
}

func (e *ErrAllSendsFailed) Error() string {
	return fmt.Sprintf("failed to send any emails (%d attempted)", e.Attempted)
}

func NewAllSendsFailed(attempted int) error {
	return &ErrAllSendsFailed{Attempted: attempted}
}
