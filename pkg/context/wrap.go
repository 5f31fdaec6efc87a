package context

import (
	"errors"
	"net/http"

	"Retail/pkg/log"
	"Retail/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HandlerFunc func(*gin.Context) error

// Wrap 把返回 error 的 handler 适配成 gin.HandlerFunc
// 业务错误按其自带状态码返回 {"msg": ...}，其余一律 500
func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}

			var be *response.BizError
			if errors.As(err, &be) {
				response.Abort(c, be.Code, be.Msg)
				return
			}

			log.L.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
			response.Abort(c, http.StatusInternalServerError, "internal server error")
		}
	}
}
