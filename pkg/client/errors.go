package client

import "fmt"

// ErrorClass represents a classification of upstream fetch failures.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx responses from the upstream API.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx responses from the upstream API.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassNetwork represents transport failures (timeout, refused
	// connection, cancelled context).
	ErrorClassNetwork ErrorClass = "network"

	// ErrorClassDecode represents a malformed response body.
	ErrorClassDecode ErrorClass = "decode"
)

// APIError is a failed upstream fetch. Cache backend failures never
// produce an APIError; they degrade to a live fetch instead.
type APIError struct {
	Endpoint   string
	StatusCode int
	Class      ErrorClass
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("spacex %s error on %s (status %d): %s: %v",
			e.Class, e.Endpoint, e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("spacex %s error on %s (status %d): %s",
		e.Class, e.Endpoint, e.StatusCode, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// classifyStatus maps an HTTP status code to an error class.
func classifyStatus(status int) ErrorClass {
	switch {
	case status >= 400 && status < 500:
		return ErrorClassClient
	case status >= 500:
		return ErrorClassServer
	default:
		return ""
	}
}
