// Package api defines the response envelope and error taxonomy shared by all
// HTTP handlers: every endpoint answers {success, message?, data?}.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope returned by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK writes a 200 envelope with data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// Created writes a 201 envelope with data.
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

// Fail writes a failure envelope with the given status and message.
func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Response{Success: false, Message: message})
}

// Error maps a domain error onto the envelope: validation errors become 400
// naming the missing fields, not-found errors become 404, anything else is a
// generic 500. Persistence details are never exposed to the client; callers
// log them before handing the error here.
func Error(c echo.Context, err error) error {
	switch {
	case IsValidation(err):
		return Fail(c, http.StatusBadRequest, err.Error())
	case IsNotFound(err):
		return Fail(c, http.StatusNotFound, err.Error())
	default:
		return Fail(c, http.StatusInternalServerError, "internal server error")
	}
}
