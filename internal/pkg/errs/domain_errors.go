package errs

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Input errors
	ErrValidationFailed = New("validation failed")

	// Item errors
	ErrItemNotFound     = New("item not found")
	ErrAlreadyCompleted = New("item already completed")

	// Reservation errors
	ErrReservedByOther = New("item reserved by another contributor")

	// Idempotency errors
	ErrIdempotencyKeyRequired = New("idempotency key required")
	ErrIdempotencyInProgress  = New("idempotency in progress")
	ErrIdempotencyKeyReused   = New("idempotency key reused with a different request")

	// Notification errors
	ErrNotificationFailed = New("notification failed")
	ErrNoRecipients       = New("no recipients")
	ErrSendFailed         = New("mail transport failed")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
	ErrCacheOperationFailed    = New("cache operation failed")
)
