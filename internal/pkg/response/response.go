package response

import (
	"TrendRadar/internal/api/dto"
	"TrendRadar/internal/pkg/util"
	"TrendRadar/internal/service"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 200 直接返回对象或数组
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created 201
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, util.ValidationMessage(ve))
		return
	}

	// gin 绑定走 encoding/json, OptionalString 内部走 goccy
	var stdTypeErr *stdjson.UnmarshalTypeError
	if errors.As(err, &stdTypeErr) {
		Fail(c, http.StatusBadRequest, typeErrorMessage(stdTypeErr.Field))
		return
	}
	var goTypeErr *json.UnmarshalTypeError
	if errors.As(err, &goTypeErr) {
		Fail(c, http.StatusBadRequest, service.ErrInvalidFieldValue.Error())
		return
	}
	var stdSyntaxErr *stdjson.SyntaxError
	var goSyntaxErr *json.SyntaxError
	if errors.As(err, &stdSyntaxErr) || errors.As(err, &goSyntaxErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		Fail(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	code, ok := service.StatusOf(err)
	if !ok {
		log.ErrorContext(c.Request.Context(), "unhandled error", "path", c.FullPath(), "err", err)
	}
	Fail(c, code, err.Error())
}

func typeErrorMessage(field string) string {
	switch field {
	case "value":
		return service.ErrRatingValue.Error()
	case "":
		return "Invalid JSON body"
	default:
		return fmt.Sprintf("Invalid type for field: %s", field)
	}
}
