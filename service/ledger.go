package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// DeleteWindow only the most recent N expenses or transfers may be deleted
	DeleteWindow = 10
	// PageSize fixed page size of paginated listings
	PageSize = 10

	maxDescriptionLen = 255
)

// Ledger owns every operation that reads or mutates a user's balance and movements.
// Mutations run in a single transaction holding the user's balance row lock.
type Ledger struct {
	db  *gorm.DB
	now func() time.Time
}

// NewLedger creates a ledger backed by db
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db, now: time.Now}
}

// WithClock returns a copy of the ledger that reads time from now
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	c := *l
	c.now = now
	return &c
}

func (l *Ledger) conn(ctx context.Context) *gorm.DB {
	if ctx == nil {
		ctx = context.Background()
	}
	return l.db.WithContext(ctx)
}

// Page one page of a listing
type Page[T any] struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	List     []T   `json:"list"`
}

func normalizePage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

func pageOffset(page int) int {
	return (normalizePage(page) - 1) * PageSize
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// parseMonth accepts "2006-01" or any longer value starting with it ("2006-01-02").
// An empty value selects the month containing now.
func parseMonth(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return startOfMonth(now), nil
	}
	if len(value) > 7 {
		value = value[:7]
	}
	t, err := time.ParseInLocation("2006-01", value, now.Location())
	if err != nil {
		return time.Time{}, ErrInvalidMonth
	}
	return t, nil
}

// normalizeAmount rounds to cents and requires a strictly positive result
func normalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	amount = amount.Round(2)
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

func requireDescription(desc string) (string, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return "", ErrDescriptionRequired
	}
	return optionalDescription(desc, "")
}

func optionalDescription(desc, fallback string) (string, error) {
	desc = strings.TrimSpace(desc)
	if len([]rune(desc)) > maxDescriptionLen {
		return "", ErrDescriptionTooLong
	}
	if desc == "" {
		return fallback, nil
	}
	return desc, nil
}
