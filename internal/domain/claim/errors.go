package claim

import "errors"

var (
	ErrClaimNotFound           = errors.New("claim not found")
	ErrInsuranceRequired       = errors.New("insurance is required to file a claim")
	ErrInvalidStatus           = errors.New("invalid claim status")
	ErrInvalidStatusTransition = errors.New("invalid claim status transition")
)
