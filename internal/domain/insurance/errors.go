package insurance

import "errors"

var (
	ErrPolicyNotFound   = errors.New("insurance policy not found")
	ErrInvalidDateOrder = errors.New("end date must be after start date and issue date")
	ErrHistoryNotFound  = errors.New("insurance history row not found")
)
