package driver

import "errors"

var (
	ErrDriverNotFound     = errors.New("driver not found")
	ErrDriverInactive     = errors.New("driver is inactive")
	ErrLicenseNumberInUse = errors.New("license number already in use")
	ErrAlreadyAssigned    = errors.New("vehicle already assigned to driver")
	ErrAssignmentNotFound = errors.New("vehicle assignment not found")
)
