package types

import "cosmossdk.io/errors"

var (
	ErrInvalidRequest = errors.Register(ModuleName, 2, "invalid request")
	ErrUnauthorized   = errors.Register(ModuleName, 3, "unauthorized")

	// lookup failures
	ErrOfferNotFound  = errors.Register(ModuleName, 10, "offer not found")
	ErrVectorNotFound = errors.Register(ModuleName, 11, "vector not found")
	ErrOfferExists    = errors.Register(ModuleName, 12, "offer already exists for pair")

	// capacity
	ErrAccountFull = errors.Register(ModuleName, 20, "no empty vector slot available")

	// invariant violations
	ErrCannotDeletePreviousVector = errors.Register(ModuleName, 30, "cannot delete the vector preceding the active vector")
	ErrDuplicateStartTime         = errors.Register(ModuleName, 31, "a vector with the same start time already exists")
	ErrInvalidVector              = errors.Register(ModuleName, 32, "invalid vector")
	ErrInvalidVectorID            = errors.Register(ModuleName, 33, "invalid vector id")
	ErrInvalidFee                 = errors.Register(ModuleName, 34, "invalid fee basis points")

	// arithmetic
	ErrMathOverflow   = errors.Register(ModuleName, 40, "math overflow")
	ErrResultOverflow = errors.Register(ModuleName, 41, "result overflow")
	ErrDivByZero      = errors.Register(ModuleName, 42, "division by zero")

	// temporal
	ErrNoActiveVector     = errors.Register(ModuleName, 50, "no active vector")
	ErrTimeBeforeBaseTime = errors.Register(ModuleName, 51, "time precedes vector base time")
)
