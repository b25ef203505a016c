package service

import (
	"context"
	"errors"
	"testing"

	"tokenpay-core/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFeeEngine_Quote(t *testing.T) {
	engine, err := NewDefaultFeeEngine("0.50", "0.025")
	require.NoError(t, err)

	tests := []struct {
		name      string
		amount    string
		hasWaiver bool
		wantFee   string
		wantTotal string
	}{
		{"standard amount", "100", false, "3", "103"},
		{"small amount", "10", false, "0.75", "10.75"},
		{"rounds to cents", "33.33", false, "1.33", "34.66"},
		{"waiver zeroes fee", "100", true, "0", "100"},
		{"waiver on small amount", "0.01", true, "0", "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := engine.Quote(context.Background(), decimal.RequireFromString(tt.amount), "USD", tt.hasWaiver)
			require.NoError(t, err)
			assert.True(t, quote.ServiceFee.Equal(decimal.RequireFromString(tt.wantFee)),
				"fee: want %s, got %s", tt.wantFee, quote.ServiceFee)
			assert.True(t, quote.Total.Equal(decimal.RequireFromString(tt.wantTotal)),
				"total: want %s, got %s", tt.wantTotal, quote.Total)
			assert.True(t, quote.Amount.Add(quote.ServiceFee).Equal(quote.Total))
		})
	}
}

func TestDefaultFeeEngine_Quote_Deterministic(t *testing.T) {
	engine, err := NewDefaultFeeEngine("0.50", "0.025")
	require.NoError(t, err)

	amount := decimal.RequireFromString("47.19")
	first, err := engine.Quote(context.Background(), amount, "USD", false)
	require.NoError(t, err)
	second, err := engine.Quote(context.Background(), amount, "USD", false)
	require.NoError(t, err)

	assert.True(t, first.ServiceFee.Equal(second.ServiceFee))
	assert.True(t, first.Total.Equal(second.Total))
}

func TestDefaultFeeEngine_Quote_InvalidAmount(t *testing.T) {
	engine, err := NewDefaultFeeEngine("0.50", "0.025")
	require.NoError(t, err)

	for _, amount := range []string{"0", "-5"} {
		_, err := engine.Quote(context.Background(), decimal.RequireFromString(amount), "USD", false)
		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VAL_002", appErr.Code)
	}
}

func TestNewDefaultFeeEngine_Invalid(t *testing.T) {
	_, err := NewDefaultFeeEngine("abc", "0.025")
	assert.Error(t, err)

	_, err = NewDefaultFeeEngine("0.50", "xyz")
	assert.Error(t, err)

	_, err = NewDefaultFeeEngine("-1", "0.025")
	assert.Error(t, err)
}
