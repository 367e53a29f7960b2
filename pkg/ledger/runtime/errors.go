package runtime

import "errors"

var (
	// ErrInvalidProgram indicates the instruction does not target the hackathon program
	ErrInvalidProgram = errors.New("instruction does not target the hackathon program")

	// ErrMissingSignature indicates a required signer is not attached to the transaction
	ErrMissingSignature = errors.New("missing required signature")

	// ErrConstraintViolation indicates a stored account reference does not match a supplied account
	ErrConstraintViolation = errors.New("account constraint violation")

	// ErrInvalidAccountAddress indicates a supplied account does not match the address recomputed from seeds
	ErrInvalidAccountAddress = errors.New("account address does not match derived pda")

	// ErrInsufficientFunds indicates a transfer would leave the source account negative
	ErrInsufficientFunds = errors.New("insufficient funds for transfer")
)
