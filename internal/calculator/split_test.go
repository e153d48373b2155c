package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestEqualSplit(t *testing.T) {
	tests := []struct {
		name         string
		amount       string
		participants int
		wantErr      bool
		wantShare    string
		wantResidual string
	}{
		{
			name:         "divides evenly",
			amount:       "80.00",
			participants: 4,
			wantShare:    "20",
			wantResidual: "0",
		},
		{
			name:         "fractional cents are kept",
			amount:       "120.50",
			participants: 4,
			wantShare:    "30.125",
			wantResidual: "0",
		},
		{
			name:         "non-terminating split leaves residual with payer",
			amount:       "100",
			participants: 3,
			wantShare:    "33.3333",
			wantResidual: "0.0001",
		},
		{
			name:         "single participant carries everything",
			amount:       "45.99",
			participants: 1,
			wantShare:    "45.99",
			wantResidual: "0",
		},
		{
			name:         "share below precision should error",
			amount:       "0.0001",
			participants: 3,
			wantErr:      true,
		},
		{
			name:         "no participants should error",
			amount:       "10",
			participants: 0,
			wantErr:      true,
		},
		{
			name:         "zero amount should error",
			amount:       "0",
			participants: 2,
			wantErr:      true,
		},
		{
			name:         "negative amount should error",
			amount:       "-5",
			participants: 2,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split, err := EqualSplit(decimal.RequireFromString(tt.amount), tt.participants)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EqualSplit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if !split.Share.Equal(decimal.RequireFromString(tt.wantShare)) {
				t.Errorf("share = %s, want %s", split.Share, tt.wantShare)
			}
			if !split.Residual.Equal(decimal.RequireFromString(tt.wantResidual)) {
				t.Errorf("residual = %s, want %s", split.Residual, tt.wantResidual)
			}

			// Shares plus residual always reconstruct the amount exactly
			total := split.Share.Mul(decimal.NewFromInt(int64(tt.participants))).Add(split.Residual)
			if !total.Equal(decimal.RequireFromString(tt.amount)) {
				t.Errorf("share*n + residual = %s, want %s", total, tt.amount)
			}
		})
	}
}
