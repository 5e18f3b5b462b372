package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrors pairs response statuses with package errors.
// The API answers 411 for invalid input.
var statusErrors = []struct {
	status int
	err    error
}{
	{http.StatusBadRequest, ErrBadRequest},
	{http.StatusUnauthorized, ErrUnauthorized},
	{http.StatusForbidden, ErrForbidden},
	{http.StatusNotFound, ErrNotFound},
	{http.StatusConflict, ErrConflict},
	{http.StatusLengthRequired, ErrInvalidInput},
	{http.StatusInternalServerError, ErrInternalServerError},
	{http.StatusServiceUnavailable, ErrUnavailable},
}

func errorForStatus(status int) error {
	for _, se := range statusErrors {
		if se.status == status {
			return se.err
		}
	}
	return nil
}

// mapHTTPError returns nil for 2xx responses and a wrapped package error otherwise.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if err := errorForStatus(status); err != nil {
		return fmt.Errorf("%w: %s", err, body)
	}

	if body == "" {
		body = http.StatusText(status)
	}
	return fmt.Errorf("http %d: %s", status, body)
}
