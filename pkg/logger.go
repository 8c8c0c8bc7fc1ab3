package pkg

import (
	"io"
	"log/slog"
)

// NewLogger возвращает структурный JSON-логгер сервиса уведомлений.
// Компоненты получают его через конструкторы, а не из глобального состояния.
func NewLogger(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, nil)
	return slog.New(handler)
}
