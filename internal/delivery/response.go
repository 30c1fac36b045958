package delivery

import (
	"errors"
	"net/http"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/domain"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/session"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

// FailWithError writes err using the status mapErrorToStatus picks for it.
// Validation failures carry the per-field messages in Data.
func FailWithError(c *gin.Context, prefix string, err error) {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, Response{
			Status:  "Fail",
			Message: prefix + ": validation failed",
			Data:    verrs,
		})
		return
	}
	ErrorResponse(c, mapErrorToStatus(err), prefix+": "+err.Error())
}

func mapErrorToStatus(err error) int {
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrMaterialNotFound),
		errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateProductID),
		errors.Is(err, domain.ErrDuplicateMaterialKey),
		errors.Is(err, session.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEmptyProductID),
		errors.Is(err, domain.ErrInvalidMaterialKey),
		errors.Is(err, domain.ErrInvalidUnitOfMeasure),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
