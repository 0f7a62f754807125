package gridocr

import (
	"errors"
	"fmt"
)

// ErrorCode 错误类型
type ErrorCode int

const (
	CodeUnknown ErrorCode = iota
	CodeConfiguration
	CodeNotFound
	CodeInference
)

func (c ErrorCode) String() string {
	switch c {
	case CodeConfiguration:
		return "CONFIGURATION"
	case CodeNotFound:
		return "NOT_FOUND"
	case CodeInference:
		return "INFERENCE"
	default:
		return "UNKNOWN"
	}
}

var (
	ErrConfiguration = &Error{Code: CodeConfiguration}
	ErrNotFound      = &Error{Code: CodeNotFound}
	ErrInference     = &Error{Code: CodeInference}
)

// Error 带错误码的错误
type Error struct {
	Code    ErrorCode
	Message string
	Path    string
	Cause   error
}

func (e *Error) Error() string {
	s := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Path != "" {
		s += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// Is 按错误码比较, 使 errors.Is(err, ErrNotFound) 可用
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func wrapError(err error, code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// IsCode 判断错误链中是否带有指定错误码
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
