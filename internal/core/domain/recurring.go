package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency is the cadence of a recurring token purchase.
type Frequency string

const (
	FrequencyWeekly    Frequency = "WEEKLY"
	FrequencyBiWeekly  Frequency = "BI_WEEKLY"
	FrequencyMonthly   Frequency = "MONTHLY"
	FrequencyBiMonthly Frequency = "BI_MONTHLY"
	FrequencyQuarterly Frequency = "QUARTERLY"
	FrequencyAnnually  Frequency = "ANNUALLY"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly,
		FrequencyBiMonthly, FrequencyQuarterly, FrequencyAnnually:
		return true
	}
	return false
}

// RecurringStatus is the lifecycle state of a recurring purchase.
// ACTIVE and PAUSED toggle; CANCELLED is terminal.
type RecurringStatus string

const (
	RecurringStatusActive    RecurringStatus = "ACTIVE"
	RecurringStatusPaused    RecurringStatus = "PAUSED"
	RecurringStatusCancelled RecurringStatus = "CANCELLED"
)

// RecurringPurchase is a standing instruction to buy a fixed token quantity on
// a schedule until paused or cancelled. Cancel is a logical delete: the entity
// is retained for audit with a cancellation marker.
type RecurringPurchase struct {
	ID                uuid.UUID       `json:"id"`
	UserID            uuid.UUID       `json:"user_id"`
	TokensPerPurchase decimal.Decimal `json:"tokens_per_purchase"` // >= 1
	Frequency         Frequency       `json:"frequency"`
	NextPurchaseDate  time.Time       `json:"next_purchase_date"`
	Status            RecurringStatus `json:"status"`
	PaymentMethodID   uuid.UUID       `json:"payment_method_id"`
	StartDate         time.Time       `json:"start_date"`
	CancelledAt       *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// IsActive reports whether the subscription may fire.
func (r *RecurringPurchase) IsActive() bool {
	return r.Status == RecurringStatusActive
}

// IsDue reports whether the subscription should fire at the given instant.
func (r *RecurringPurchase) IsDue(now time.Time) bool {
	return r.IsActive() && !r.NextPurchaseDate.After(now)
}

// ComputeNext returns the next purchase date after base for the frequency.
// Calendar month and year arithmetic clamps overflow days to the last day of
// the target month: Jan 31 + 1 month = Feb 29 in a leap year, never Mar 2.
func ComputeNext(base time.Time, f Frequency) time.Time {
	switch f {
	case FrequencyWeekly:
		return base.AddDate(0, 0, 7)
	case FrequencyBiWeekly:
		return base.AddDate(0, 0, 14)
	case FrequencyMonthly:
		return addMonthsClamped(base, 1)
	case FrequencyBiMonthly:
		return addMonthsClamped(base, 2)
	case FrequencyQuarterly:
		return addMonthsClamped(base, 3)
	case FrequencyAnnually:
		return addMonthsClamped(base, 12)
	}
	return base
}

// addMonthsClamped adds calendar months, clamping the day-of-month to the last
// day of the target month instead of letting time.AddDate roll into the next.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	targetMonth := time.Month(int(month) + months)
	first := time.Date(year, targetMonth, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := daysIn(first.Year(), first.Month())
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildTriggerKey constructs the idempotency key for one due firing of a
// subscription. At-least-once external schedulers may call Trigger repeatedly;
// the (subscription, due date) pair makes retries safe.
func BuildTriggerKey(subscriptionID uuid.UUID, due time.Time) string {
	return subscriptionID.String() + ":" + due.UTC().Format(time.RFC3339)
}
