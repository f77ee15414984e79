package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一返回格式
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse 错误返回格式
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

// ========== 基础返回方法 ==========

// Success 成功返回
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created 资源创建成功返回
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error 通用错误返回，HTTP状态码承载主要信号
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{
		Success: false,
		Message: message,
		Details: []string{},
	})
}

// ErrorWithDetails 带详情列表的错误返回（用于校验错误）
func ErrorWithDetails(c *gin.Context, statusCode int, message string, details []string) {
	if details == nil {
		details = []string{}
	}
	c.JSON(statusCode, ErrorResponse{
		Success: false,
		Message: message,
		Details: details,
	})
}

// ========== HTTP错误快捷方法 ==========

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func ServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
