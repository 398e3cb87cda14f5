package model

import (
	"errors"
	"fmt"
)

// BadRequestError 客户端请求错误
// handler 层据此区分 400 与 502
type BadRequestError struct {
	Reason string
}

func (e *BadRequestError) Error() string {
	return e.Reason
}

// NewBadRequest 创建客户端请求错误
func NewBadRequest(format string, args ...any) *BadRequestError {
	return &BadRequestError{Reason: fmt.Sprintf(format, args...)}
}

// IsBadRequest 判断错误链中是否存在客户端请求错误
func IsBadRequest(err error) bool {
	var target *BadRequestError
	return errors.As(err, &target)
}
