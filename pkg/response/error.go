package response

import "net/http"

// BizError 业务错误，Code 即最终返回的 HTTP 状态码
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// NotFound 目标数据不存在
func NotFound(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

// BadRequest 引用校验失败、请求数据不合法
func BadRequest(msg string) *BizError {
	return NewError(http.StatusBadRequest, msg)
}
