package model

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	MinAge  = 8
	MaxAge  = 18
	MinTime = 0
	MaxTime = 23
)

// ValidationError 字段值违反约束，Message 原样返回给客户端
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Field == e.Field
}

var (
	ErrNameRequired = &ValidationError{Field: "name", Message: "Name must exist"}
	ErrAgeRange     = &ValidationError{Field: "age", Message: "Age must be between 8 and 18"}
	ErrTimeRange    = &ValidationError{Field: "time", Message: "Time must be between 0 and 23"}
)

// ErrInvalidValue 字段缺失或为 null 且没有对应的校验器
var ErrInvalidValue = errors.New("invalid value")

var validate = validator.New()

var (
	nameRule = "required"
	ageRule  = fmt.Sprintf("gte=%d,lte=%d", MinAge, MaxAge)
	timeRule = fmt.Sprintf("gte=%d,lte=%d", MinTime, MaxTime)
)

// check 用 validator 校验单个值，校验不通过时返回该字段的 ValidationError
func check[T any](value T, rule string, fieldErr *ValidationError) (T, error) {
	if err := validate.Var(value, rule); err != nil {
		var zero T
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			return zero, fieldErr
		}
		return zero, err
	}
	return value, nil
}

func ValidateName(name string) (string, error) {
	return check(name, nameRule, ErrNameRequired)
}

func ValidateAge(age int) (int, error) {
	return check(age, ageRule, ErrAgeRange)
}

func ValidateTime(hour int) (int, error) {
	return check(hour, timeRule, ErrTimeRange)
}
