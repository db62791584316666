package models

import "net/http"

// RequestError is the tagged result service functions return instead of
// a raw error. Status is the HTTP status the controller should answer
// with; Message is safe to send to the client.
type RequestError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *RequestError) Error() string {
	return e.Message
}

func NotFound(message string) *RequestError {
	return &RequestError{Status: http.StatusNotFound, Message: message}
}

func ServerError(message string) *RequestError {
	return &RequestError{Status: http.StatusInternalServerError, Message: message}
}

func BadRequest(message string) *RequestError {
	return &RequestError{Status: http.StatusBadRequest, Message: message}
}
