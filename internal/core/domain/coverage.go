package domain

import "github.com/shopspring/decimal"

// CoverageResult splits a payable total between the token balance and fiat.
// Invariant: TokenCoverage + RemainingFiat == total and RemainingFiat >= 0.
type CoverageResult struct {
	TokenCoverage decimal.Decimal `json:"token_coverage"`
	RemainingFiat decimal.Decimal `json:"remaining_fiat"`
}

// SplitCoverage computes how much of total the token balance covers.
// With coverage disabled the token share is zero. A zero token balance with
// coverage enabled yields zero coverage; the toggle simply has no effect.
func SplitCoverage(total, tokenBalance decimal.Decimal, useTokenCoverage bool) CoverageResult {
	tokenCoverage := decimal.Zero
	if useTokenCoverage && tokenBalance.IsPositive() {
		tokenCoverage = decimal.Min(tokenBalance, total)
	}
	return CoverageResult{
		TokenCoverage: tokenCoverage,
		RemainingFiat: total.Sub(tokenCoverage),
	}
}
