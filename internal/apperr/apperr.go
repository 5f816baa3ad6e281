// File: internal/apperr/apperr.go
package apperr

import (
	"errors"
	"fmt"
)

// 錯誤種類，handler 依此對應 HTTP 狀態碼
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error 帶有種類與可直接回傳給客戶端的訊息
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// New 建立指定種類的錯誤
func New(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf 同 New，訊息以 fmt.Sprintf 格式化
func Newf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Validation(msg string) error { return New(ErrValidation, msg) }

func NotFound(msg string) error { return New(ErrNotFound, msg) }
