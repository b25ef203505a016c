package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

// fixedClock pins Now for deterministic schedule tests.
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// decMatcher matches decimals by value, not representation: 83 and 83.00 are
// the same amount even though reflect.DeepEqual disagrees.
type decMatcher struct{ want decimal.Decimal }

func (m decMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decMatcher) String() string { return "decimal " + m.want.String() }

func decEq(s string) gomock.Matcher {
	return decMatcher{want: decimal.RequireFromString(s)}
}
