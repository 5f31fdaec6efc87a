package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MsgResponse 纯消息响应体，删除成功和错误响应都用这个结构
type MsgResponse struct {
	Msg string `json:"msg"`
}

func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, MsgResponse{Msg: "Successfully deleted."})
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, MsgResponse{Msg: msg})
}
