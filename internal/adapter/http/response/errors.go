package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func writeError(c echo.Context, status int, code, message string, details map[string]string) error {
	return c.JSON(status, &ErrorDetail{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// InvalidRequestBody writes a 400 for a body or query that cannot be bound.
func InvalidRequestBody(c echo.Context) error {
	return writeError(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody, nil)
}

// ValidationError writes a 400 with per-field details.
func ValidationError(c echo.Context, details map[string]string) error {
	return writeError(c, http.StatusBadRequest, CodeValidationError, MsgValidationFailed, details)
}

// APIError writes a 502 carrying the detail reported by the flight offers API.
func APIError(c echo.Context, detail string) error {
	return writeError(c, http.StatusBadGateway, CodeAPIError, msgAPIErrorPrefix+detail, nil)
}

// ClassificationFailure writes a 502 for an error response that could not be interpreted.
func ClassificationFailure(c echo.Context, message string) error {
	return writeError(c, http.StatusBadGateway, CodeClassificationFailure, msgClassificationPrefix+message, nil)
}

// ServiceUnavailable writes a 503.
func ServiceUnavailable(c echo.Context) error {
	return writeError(c, http.StatusServiceUnavailable, CodeServiceUnavailable, MsgServiceUnavailable, nil)
}

// GatewayTimeout writes a 504.
func GatewayTimeout(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout, nil)
}

// RequestCancelled writes a 504 for a request whose context was cancelled.
func RequestCancelled(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled, nil)
}

// InternalServerError writes a 500.
func InternalServerError(c echo.Context) error {
	return writeError(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError, nil)
}
