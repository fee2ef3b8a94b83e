package budget

import "errors"

var (
	ErrNegativeAmount       = errors.New("allocation amounts must not be negative")
	ErrAllocationSettled    = errors.New("allocation has already been distributed")
	ErrNilAllocation        = errors.New("allocation is required")
	ErrSupporterMismatch    = errors.New("support edge belongs to a different supporter")
	ErrAllocationNotSettled = errors.New("only distributed allocations can be persisted")
)
