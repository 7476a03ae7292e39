package vehicle

import "errors"

var (
	ErrVehicleNotFound           = errors.New("vehicle not found")
	ErrVehicleDeleted            = errors.New("vehicle is deleted")
	ErrRegistrationNumberInUse   = errors.New("registration number already in use")
	ErrInvalidFuelType           = errors.New("invalid fuel type")
	ErrOdometerRegression        = errors.New("odometer reading is lower than the current value")
	ErrPurchaseDateInFuture      = errors.New("purchase date must not be in the future")
	ErrVehicleHasActiveInsurance = errors.New("vehicle still has an active insurance policy")
)
