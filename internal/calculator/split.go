package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// SharePlaces is the number of decimal places a per-participant share is
// truncated to. Whatever the truncation drops stays with the payer.
const SharePlaces int32 = 4

// Split is the result of dividing an amount equally among participants.
type Split struct {
	Share    decimal.Decimal // Amount each participant carries
	Residual decimal.Decimal // amount - Share*participants, absorbed by the payer
}

// ErrShareTooSmall is returned when an amount is too small to give every
// participant a non-zero share at SharePlaces precision.
var ErrShareTooSmall = errors.New("amount too small to split")

// EqualSplit divides amount equally among n participants.
// The share is truncated to SharePlaces so that participants are never charged
// more than their exact portion; the leftover is reported as Residual.
//
// 120.50 / 4 = 30.125 (residual 0), 100 / 3 = 33.3333 (residual 0.0001).
func EqualSplit(amount decimal.Decimal, n int) (Split, error) {
	if n <= 0 {
		return Split{}, fmt.Errorf("must have at least one participant")
	}
	if !amount.IsPositive() {
		return Split{}, fmt.Errorf("amount must be positive, got %s", amount)
	}

	count := decimal.NewFromInt(int64(n))
	share := amount.Div(count).Truncate(SharePlaces)
	if !share.IsPositive() {
		return Split{}, fmt.Errorf("%w: %s among %d", ErrShareTooSmall, amount, n)
	}

	return Split{
		Share:    share,
		Residual: amount.Sub(share.Mul(count)),
	}, nil
}
