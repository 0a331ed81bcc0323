package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("Invalid request parameters")
	ErrUserNotFound       = errors.New("User not found")
	ErrUserExist          = errors.New("User already exists")
	ErrContentNotFound    = errors.New("Content not found")
	ErrInvalidContentType = errors.New("Invalid content type. Must be one of: trend, technology, inspiration")
	ErrInvalidStatus      = errors.New("Invalid status. Must be one of: draft, approved")
	ErrTitleRequired      = errors.New("Missing required field: title")
	ErrInvalidFieldValue  = errors.New("Fields must be strings or null")
	ErrRatingValue        = errors.New("Rating value must be an integer between 1 and 5")
	ErrFileMissing        = errors.New("file missing")
	ErrEmptyFilename      = errors.New("empty filename")
	ErrCreatedByInvalid   = errors.New("created_by must be integer")
	ErrInvalidURL         = errors.New("invalid url")
	UnExpectedError       = errors.New("Unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrUserNotFound:       NotFound,
	ErrUserExist:          BadRequest,
	ErrContentNotFound:    NotFound,
	ErrInvalidContentType: BadRequest,
	ErrInvalidStatus:      BadRequest,
	ErrTitleRequired:      BadRequest,
	ErrInvalidFieldValue:  BadRequest,
	ErrRatingValue:        BadRequest,
	ErrFileMissing:        BadRequest,
	ErrEmptyFilename:      BadRequest,
	ErrCreatedByInvalid:   BadRequest,
	ErrInvalidURL:         BadRequest,
	UnExpectedError:       InternalServerError,
}

// StatusOf 返回错误对应的 HTTP 状态码, 未登记的错误按 500 处理
func StatusOf(err error) (int, bool) {
	if code, ok := ErrorMap[err]; ok {
		return code, true
	}
	for known, code := range ErrorMap {
		if errors.Is(err, known) {
			return code, true
		}
	}
	return InternalServerError, false
}
