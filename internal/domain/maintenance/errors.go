package maintenance

import "errors"

var (
	ErrRecordNotFound      = errors.New("maintenance record not found")
	ErrInvalidOdometerPair = errors.New("odometer reading after service must not be lower than before")
)
