package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ==================== Wallet ====================

func TestWallet_Available(t *testing.T) {
	w := &Wallet{Balance: dec("100")}
	assert.True(t, w.Available().Equal(dec("100")))

	hold := dec("60")
	w.AvailableBalance = &hold
	assert.True(t, w.Available().Equal(dec("60")))
}

func TestWallet_EligibleFor(t *testing.T) {
	base := Wallet{
		Kind:     WalletKindPrimary,
		Currency: "USD",
		Balance:  dec("100"),
		IsActive: true,
	}

	tests := []struct {
		name     string
		mutate   func(w *Wallet)
		min      string
		eligible bool
	}{
		{"sufficient balance", func(w *Wallet) {}, "83", true},
		{"exact balance", func(w *Wallet) {}, "100", true},
		{"insufficient balance", func(w *Wallet) {}, "100.01", false},
		{"inactive", func(w *Wallet) { w.IsActive = false }, "10", false},
		{"wrong currency", func(w *Wallet) { w.Currency = "EUR" }, "10", false},
		{"token wallet excluded", func(w *Wallet) { w.Kind = WalletKindToken }, "10", false},
		{"hold reduces availability", func(w *Wallet) {
			hold := dec("50")
			w.AvailableBalance = &hold
		}, "83", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := base
			tt.mutate(&w)
			assert.Equal(t, tt.eligible, w.EligibleFor("USD", dec(tt.min)))
		})
	}
}

// ==================== FeeQuote ====================

func TestNewFeeQuote_TotalIsSum(t *testing.T) {
	q := NewFeeQuote(dec("100"), dec("3"))
	assert.True(t, q.Total.Equal(dec("103")))
	assert.True(t, q.Total.Equal(q.Amount.Add(q.ServiceFee)))
}

// ==================== SplitCoverage ====================

func TestSplitCoverage(t *testing.T) {
	tests := []struct {
		name          string
		total         string
		tokenBalance  string
		use           bool
		wantCoverage  string
		wantRemaining string
	}{
		{"coverage off", "103", "20", false, "0", "103"},
		{"partial coverage", "103", "20", true, "20", "83"},
		{"full coverage", "50", "80", true, "50", "0"},
		{"exact coverage", "50", "50", true, "50", "0"},
		{"zero balance with toggle on", "103", "0", true, "0", "103"},
		{"zero total", "0", "20", true, "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SplitCoverage(dec(tt.total), dec(tt.tokenBalance), tt.use)
			assert.True(t, r.TokenCoverage.Equal(dec(tt.wantCoverage)), "coverage: got %s", r.TokenCoverage)
			assert.True(t, r.RemainingFiat.Equal(dec(tt.wantRemaining)), "remaining: got %s", r.RemainingFiat)

			// Invariants hold for every case.
			assert.True(t, r.TokenCoverage.Add(r.RemainingFiat).Equal(dec(tt.total)))
			assert.True(t, r.TokenCoverage.LessThanOrEqual(dec(tt.tokenBalance)))
			assert.False(t, r.RemainingFiat.IsNegative())
		})
	}
}

func TestSplitCoverage_Idempotent(t *testing.T) {
	a := SplitCoverage(dec("103"), dec("20"), true)
	b := SplitCoverage(dec("103"), dec("20"), true)
	assert.True(t, a.TokenCoverage.Equal(b.TokenCoverage))
	assert.True(t, a.RemainingFiat.Equal(b.RemainingFiat))
}

// ==================== PaymentSession ====================

func TestPaymentSession_AcceptsInput(t *testing.T) {
	s := &PaymentSession{Step: StepAmount}
	assert.True(t, s.AcceptsInput())

	s.Step = StepProcessing
	assert.False(t, s.AcceptsInput())

	s.Step = StepSuccess
	assert.False(t, s.AcceptsInput())
}

func TestPaymentSession_RemainingFiat(t *testing.T) {
	s := &PaymentSession{Amount: dec("100")}
	assert.True(t, s.RemainingFiat().Equal(dec("100")))

	q := NewFeeQuote(dec("100"), dec("3"))
	s.Quote = &q
	assert.True(t, s.RemainingFiat().Equal(dec("103")))

	cov := SplitCoverage(q.Total, dec("20"), true)
	s.Coverage = &cov
	assert.True(t, s.RemainingFiat().Equal(dec("83")))
}

func TestPaymentSession_WalletEligible(t *testing.T) {
	id := uuid.New()
	s := &PaymentSession{EligibleWallets: []Wallet{{ID: id}}}
	assert.True(t, s.WalletEligible(id))
	assert.False(t, s.WalletEligible(uuid.New()))
}

// ==================== Token ledger ====================

func TestTokenTransactionType_Signed(t *testing.T) {
	assert.True(t, TokenTxPurchase.Signed(dec("10")).Equal(dec("10")))
	assert.True(t, TokenTxReward.Signed(dec("5")).Equal(dec("5")))
	assert.True(t, TokenTxTransfer.Signed(dec("4")).Equal(dec("-4")))
	assert.True(t, TokenTxRedemption.Signed(dec("7")).Equal(dec("-7")))
}

func TestReplayBalances(t *testing.T) {
	userID := uuid.New()
	entries := []TokenLedgerEntry{
		{UserID: userID, TransactionType: TokenTxPurchase, Tokens: dec("50"), Balance: dec("50")},
		{UserID: userID, TransactionType: TokenTxReward, Tokens: dec("10"), Balance: dec("60")},
		{UserID: userID, TransactionType: TokenTxRedemption, Tokens: dec("25"), Balance: dec("35")},
		{UserID: userID, TransactionType: TokenTxTransfer, Tokens: dec("5"), Balance: dec("30")},
	}

	final, ok := ReplayBalances(entries)
	assert.True(t, ok)
	assert.True(t, final.Equal(dec("30")))
}

func TestReplayBalances_DetectsCorruption(t *testing.T) {
	entries := []TokenLedgerEntry{
		{TransactionType: TokenTxPurchase, Tokens: dec("50"), Balance: dec("50")},
		{TransactionType: TokenTxRedemption, Tokens: dec("20"), Balance: dec("50")}, // wrong: should be 30
	}

	_, ok := ReplayBalances(entries)
	assert.False(t, ok)
}

// The current balance is the chronologically last entry, not the maximum.
// A debit after a peak must lower the reported balance.
func TestLedger_LastEntryNotMaximum(t *testing.T) {
	entries := []TokenLedgerEntry{
		{TransactionType: TokenTxPurchase, Tokens: dec("100"), Balance: dec("100")},
		{TransactionType: TokenTxRedemption, Tokens: dec("60"), Balance: dec("40")},
	}

	final, ok := ReplayBalances(entries)
	require.True(t, ok)
	assert.True(t, final.Equal(dec("40")))
	assert.False(t, final.Equal(dec("100")))
}

// ==================== Recurring purchase ====================

func TestFrequency_Valid(t *testing.T) {
	assert.True(t, FrequencyWeekly.Valid())
	assert.True(t, FrequencyAnnually.Valid())
	assert.False(t, Frequency("DAILY").Valid())
}

func TestComputeNext_FixedIntervals(t *testing.T) {
	base := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, base.AddDate(0, 0, 7), ComputeNext(base, FrequencyWeekly))
	assert.Equal(t, base.AddDate(0, 0, 14), ComputeNext(base, FrequencyBiWeekly))
}

func TestComputeNext_CalendarIntervals(t *testing.T) {
	base := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC), ComputeNext(base, FrequencyMonthly))
	assert.Equal(t, time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC), ComputeNext(base, FrequencyBiMonthly))
	assert.Equal(t, time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC), ComputeNext(base, FrequencyQuarterly))
	assert.Equal(t, time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC), ComputeNext(base, FrequencyAnnually))
}

// Regression pin for the documented end-of-month clamping policy:
// Jan 31 + 1 month lands on the last day of February, never March 2.
func TestComputeNext_MonthlyClampsEndOfMonth(t *testing.T) {
	base := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), ComputeNext(base, FrequencyMonthly))

	// Non-leap year clamps to Feb 28.
	base = time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC), ComputeNext(base, FrequencyMonthly))
}

func TestComputeNext_QuarterlyClamp(t *testing.T) {
	// Nov 30 + 3 months = Feb 28/29, clamped.
	base := time.Date(2023, 11, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), ComputeNext(base, FrequencyQuarterly))
}

func TestComputeNext_AnnualLeapDayClamp(t *testing.T) {
	base := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC), ComputeNext(base, FrequencyAnnually))
}

func TestRecurringPurchase_IsDue(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	r := &RecurringPurchase{
		Status:           RecurringStatusActive,
		NextPurchaseDate: now.Add(-time.Hour),
	}
	assert.True(t, r.IsDue(now))

	r.NextPurchaseDate = now
	assert.True(t, r.IsDue(now))

	r.NextPurchaseDate = now.Add(time.Minute)
	assert.False(t, r.IsDue(now))

	r.NextPurchaseDate = now.Add(-time.Hour)
	r.Status = RecurringStatusPaused
	assert.False(t, r.IsDue(now))

	r.Status = RecurringStatusCancelled
	assert.False(t, r.IsDue(now))
}

func TestBuildTriggerKey_Deterministic(t *testing.T) {
	id := uuid.New()
	due := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	k1 := BuildTriggerKey(id, due)
	k2 := BuildTriggerKey(id, due)
	assert.Equal(t, k1, k2)
	assert.Contains(t, k1, id.String())

	// A different due date yields a different key.
	assert.NotEqual(t, k1, BuildTriggerKey(id, due.Add(7*24*time.Hour)))
}

// ==================== TokenPurchase ====================

func TestNewTokenPurchase(t *testing.T) {
	userID := uuid.New()
	at := time.Now().UTC()

	p := NewTokenPurchase(userID, dec("10"), dec("1.50"), "USD", at)

	assert.Equal(t, PurchaseStatusPending, p.Status)
	assert.True(t, p.TotalCost.Equal(dec("15")))
	assert.Nil(t, p.CertificateURL)
	assert.Nil(t, p.TransactionID)
}
