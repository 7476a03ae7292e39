package handler

import (
	"errors"
	"net/http"

	domainClaim "fleet-maintenance-manager/internal/domain/claim"
	domainDriver "fleet-maintenance-manager/internal/domain/driver"
	domainInsurance "fleet-maintenance-manager/internal/domain/insurance"
	domainMaintenance "fleet-maintenance-manager/internal/domain/maintenance"
	domainVehicle "fleet-maintenance-manager/internal/domain/vehicle"
	appErrors "fleet-maintenance-manager/pkg/errors"
	"fleet-maintenance-manager/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the API envelope. Validation errors
// carry the per-field map; domain sentinels map to their natural status codes;
// anything unrecognized becomes an opaque 500.
func respondError(c *gin.Context, err error) {
	if appErr, ok := appErrors.AsAppError(err); ok {
		switch appErr.Code {
		case "VALIDATION_ERROR":
			utils.ValidationErrorResponse(c, http.StatusBadRequest, utils.FieldErrors(appErr.Err))
		case "INVALID_DATE", "INVALID_DATE_RANGE", "INVALID_STATUS", "INVALID_TRANSITION":
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
		case "INSURANCE_REQUIRED":
			utils.ErrorResponse(c, http.StatusUnprocessableEntity, appErr.Message)
		default:
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
		}
		return
	}

	switch {
	case errors.Is(err, domainVehicle.ErrVehicleNotFound),
		errors.Is(err, domainInsurance.ErrPolicyNotFound),
		errors.Is(err, domainInsurance.ErrHistoryNotFound),
		errors.Is(err, domainDriver.ErrDriverNotFound),
		errors.Is(err, domainDriver.ErrAssignmentNotFound),
		errors.Is(err, domainMaintenance.ErrRecordNotFound),
		errors.Is(err, domainClaim.ErrClaimNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())

	case errors.Is(err, domainVehicle.ErrRegistrationNumberInUse),
		errors.Is(err, domainDriver.ErrLicenseNumberInUse),
		errors.Is(err, domainDriver.ErrAlreadyAssigned),
		errors.Is(err, domainVehicle.ErrVehicleDeleted),
		errors.Is(err, domainVehicle.ErrVehicleHasActiveInsurance):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())

	case errors.Is(err, domainVehicle.ErrInvalidFuelType),
		errors.Is(err, domainVehicle.ErrPurchaseDateInFuture),
		errors.Is(err, domainVehicle.ErrOdometerRegression),
		errors.Is(err, domainDriver.ErrDriverInactive),
		errors.Is(err, domainMaintenance.ErrInvalidOdometerPair),
		errors.Is(err, domainInsurance.ErrInvalidDateOrder):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())

	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
