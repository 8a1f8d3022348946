package crimping

import "errors"

var (
	ErrOrderNotFound  = errors.New("production order not found")
	ErrRecordNotFound = errors.New("inspection record not found")

	ErrOrderClosed       = errors.New("production order is closed")
	ErrOrderHasPassed    = errors.New("production order has passed inspection records")
	ErrOrderIDMismatch   = errors.New("order id in path and body differ")
	ErrOrderIDRequired   = errors.New("order id is required")
	ErrOrderNoRequired   = errors.New("production order no is required")
	ErrRecordIDRequired  = errors.New("record id is required")
	ErrToolNoRequired    = errors.New("tool no is required")
	ErrAuditorRequired   = errors.New("auditor name is required")
	ErrInvalidAuditState = errors.New("audit status must be pass or fail")
)
