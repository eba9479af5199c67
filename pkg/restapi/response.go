package restapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"highlight-vmaf-service/pkg/errno"
)

// Response is the uniform API envelope. Status is "success" or "failed".
type Response struct {
	Code    int         `json:"code"`
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success writes a 200 envelope.
func Success(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Created writes a 201 envelope. Batch endpoints use this regardless of
// per-item failures; callers inspect the payload for detail.
func Created(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Failed maps an error to its sentinel code and writes a failed envelope.
// The underlying cause stays out of the response body.
func Failed(ctx *gin.Context, err error) {
	en := errno.CodeOf(err)
	ctx.JSON(httpStatus(en), Response{
		Code:    en.Code,
		Status:  "failed",
		Message: en.Message,
		Data:    nil,
	})
}

func httpStatus(en *errno.Errno) int {
	switch {
	case en.Code >= 20000:
		return http.StatusBadRequest
	case en.Code >= 500 && en.Code < 600:
		return http.StatusInternalServerError
	case en.Code >= 400 && en.Code < 500:
		return en.Code
	default:
		return http.StatusInternalServerError
	}
}
