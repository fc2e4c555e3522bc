package response

import "net/http"

var (
	// ErrValidation 的消息由 WithMessage 替换为校验器的提示
	ErrValidation       = newError(http.StatusNotAcceptable, "Validation failed")
	ErrInvalidData      = newError(http.StatusNotAcceptable, "Invalid data")
	ErrInvalidCamper    = newError(http.StatusNotAcceptable, "Invalid camper")
	ErrCamperNotFound   = newError(http.StatusNotFound, "Camper not found")
	ErrActivityNotFound = newError(http.StatusNotFound, "Activity not found")
	ErrDatabase         = newError(http.StatusInternalServerError, "Internal server error")
	ErrInternal         = newError(http.StatusInternalServerError, "Internal server error")
)
