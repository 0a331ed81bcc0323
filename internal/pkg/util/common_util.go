package util

import (
	"strings"
)

// NormalizeKey 去除首尾空白并转小写, 用于枚举类输入
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// PtrString 空串返回 nil
func PtrString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// DerefString nil 返回空串
func DerefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
