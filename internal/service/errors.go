package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/roomledger/internal/calculator"
	"github.com/mmynk/roomledger/internal/storage"
	"github.com/mmynk/roomledger/internal/validation"
)

// toConnectError maps domain errors onto Connect codes.
func toConnectError(err error) *connect.Error {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, calculator.ErrUnknownMember),
		errors.Is(err, calculator.ErrInvalidExpense),
		errors.Is(err, calculator.ErrInvalidPayment),
		errors.Is(err, calculator.ErrDuplicateMember):
		// Stored history the ledger cannot balance
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
