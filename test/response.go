package test

import (
	"net/http/httptest"
	"testing"

	"camp-signup/internal/global/response"

	"github.com/stretchr/testify/require"
)

type ErrorBody struct {
	Error string `json:"error"`
}

func ErrorEqual(t *testing.T, expected *response.Error, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, expected.Status, w.Code)
	require.Equal(t, expected.Message, Decode[ErrorBody](t, w).Error)
}

// ValidationEqual 校验错误的状态码固定，消息来自校验器
func ValidationEqual(t *testing.T, msg string, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, response.ErrValidation.Status, w.Code)
	require.Equal(t, msg, Decode[ErrorBody](t, w).Error)
}
