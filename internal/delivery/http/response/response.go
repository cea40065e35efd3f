// Package response renders the API's jsend-style envelope. Every reply is
// {status, data, messages}: status is "success", "fail" for client mistakes,
// or "error" for server faults; data keys the payload under a per-resource
// field name; messages carries human-readable strings on non-success.
package response

import (
	"github.com/labstack/echo/v4"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Response is the envelope every endpoint replies with.
type Response struct {
	Status   string         `json:"status"`
	Data     map[string]any `json:"data"`
	Messages []string       `json:"messages"`
}

// Success wraps a payload under its resource field name, e.g.
// {"status":"success","data":{"drinks":[...]},"messages":null}.
func Success(c echo.Context, statusCode int, field string, payload any) error {
	return c.JSON(statusCode, Response{
		Status: StatusSuccess,
		Data:   map[string]any{field: payload},
	})
}

// Fail reports a client mistake: bad input, bad credentials, missing
// resource. Data stays null so clients never have to guess which shape an
// error took.
func Fail(c echo.Context, statusCode int, messages ...string) error {
	return c.JSON(statusCode, Response{
		Status:   StatusFail,
		Messages: messages,
	})
}

// Error reports a server-side fault.
func Error(c echo.Context, statusCode int, messages ...string) error {
	return c.JSON(statusCode, Response{
		Status:   StatusError,
		Messages: messages,
	})
}
