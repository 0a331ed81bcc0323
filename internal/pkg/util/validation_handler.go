package util

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	// gin 绑定使用的校验器同样按 json 字段名报错
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// ValidateDTO 校验非 gin 绑定产生的 DTO, 返回 validator.ValidationErrors
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}

// ValidationMessage 将第一条校验错误转换为面向调用方的提示
func ValidationMessage(vErrs validator.ValidationErrors) string {
	if len(vErrs) == 0 {
		return "Invalid request parameters"
	}
	fe := vErrs[0]
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Missing required field: %s", field)
	case "oneof":
		return fmt.Sprintf("Invalid %s. Must be one of: %s", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "min", "max":
		if field == "value" {
			return "Rating value must be an integer between 1 and 5"
		}
		return fmt.Sprintf("Field %s violates %s=%s", field, fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("Field %s failed on '%s'", field, fe.Tag())
	}
}
