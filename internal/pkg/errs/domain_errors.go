package errs

// Error taxonomy shared by every layer. Concrete errors are marked with one of
// these so handlers can map them without knowing the producing package.
var (
	ErrValidation         = New("validation error")
	ErrNotFound           = New("not found")
	ErrAlreadyClaimed     = New("listing already claimed")
	ErrExpired            = New("listing expired")
	ErrSelfClaim          = New("cannot claim own listing")
	ErrStorageUnavailable = New("storage unavailable")

	// Identity
	ErrUnauthenticated = New("unauthenticated")
	ErrConflict        = New("conflict")

	// Idempotency
	ErrIdempotencyInProgress = New("idempotency in progress")
	ErrIdempotencyMismatch   = New("idempotency key reused with different request")
)
