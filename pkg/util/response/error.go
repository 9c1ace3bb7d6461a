package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type MetaError struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`

	Err error `json:"-"`
}

func (m *MetaError) Error() string {
	return m.Message
}

func ErrorBuilder(code int, err error, message string) *MetaError {
	if code >= http.StatusInternalServerError {
		logrus.Error(err)
	}
	return &MetaError{
		Success: false,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrorResponse normalizes any error into a MetaError envelope; unknown errors
// become 500s with their raw message.
func ErrorResponse(err error) *MetaError {
	if m, ok := err.(*MetaError); ok {
		return m
	}
	return ErrorBuilder(http.StatusInternalServerError, err, err.Error())
}

func (m *MetaError) SendError(c echo.Context) error {
	return c.JSON(m.Code, m)
}
