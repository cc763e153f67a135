package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"cuentas/service"

	"github.com/gin-gonic/gin"
)

// Response common response envelope
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PageResponse paginated list
type PageResponse struct {
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	List     interface{} `json:"list"`
}

// Success 200 response
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 200 response with a custom message
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: message,
		Data:    data,
	})
}

// Created 201 response
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// UnprocessableEntity 422
func UnprocessableEntity(c *gin.Context, message string) {
	Error(c, http.StatusUnprocessableEntity, message)
}

// InternalError 500
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// respondError maps ledger errors to HTTP statuses. Unknown errors are 500 and
// their details are hidden in release mode.
func respondError(c *gin.Context, err error, fallback string) {
	var ledgerErr *service.Error
	if errors.As(err, &ledgerErr) {
		switch {
		case errors.Is(err, service.ErrValidation):
			BadRequest(c, ledgerErr.Message)
		case errors.Is(err, service.ErrForbidden):
			Forbidden(c, ledgerErr.Message)
		case errors.Is(err, service.ErrNotFound):
			NotFound(c, ledgerErr.Message)
		case errors.Is(err, service.ErrBusinessRule):
			UnprocessableEntity(c, ledgerErr.Message)
		default:
			InternalError(c, SafeErrorMessage(err, fallback))
		}
		return
	}

	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	InternalError(c, SafeErrorMessage(err, fallback))
}

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, "ID inválido")
		return 0, false
	}
	return uint(id), true
}

// pageParam reads ?page=, defaulting to 1
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
