package exceptions

import (
	"errors"
	"fmt"
	"mosefak-service/internal/pkg/constvars"
	"runtime"
)

// ErrorKind classifies a failure for the caller. Business rules surface as
// tagged errors instead of being encoded in status codes alone.
type ErrorKind string

const (
	KindNotFound       ErrorKind = "not_found"
	KindInvalidState   ErrorKind = "invalid_state"
	KindConflict       ErrorKind = "conflict"
	KindGatewayFailure ErrorKind = "gateway_failure"
	KindFatal          ErrorKind = "fatal"
)

type CustomError struct {
	Kind          ErrorKind `json:"code"`
	StatusCode    int       `json:"status_code"`
	Success       bool      `json:"success"`
	ClientMessage string    `json:"message"`
	DevMessage    string    `json:"-"`
	Location      Location  `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

// KindOf reports the taxonomy kind of err, or KindFatal for anything that is
// not a CustomError.
func KindOf(err error) ErrorKind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return KindFatal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

func BuildNewCustomError(err error, kind ErrorKind, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		Kind:          kind,
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
