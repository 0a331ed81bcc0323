package dto

// ErrorResponse 统一错误体
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse 无数据返回时的提示
type MessageResponse struct {
	Message string `json:"message"`
}
