package handlers

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"
)

// TextHandler writes records as "time level message key=value..." lines.
type TextHandler struct {
	slog.Handler
	l     *log.Logger
	attrs []slog.Attr
}

func (h *TextHandler) Handle(_ context.Context, r slog.Record) error {
	timeStr := r.Time.Format("2006/01/02 15:04:05")
	levelStr := r.Level.String()
	msg := r.Message

	attrs := make([]string, 0, len(h.attrs)+r.NumAttrs())

	for _, a := range h.attrs {
		attrs = append(attrs, formatAttr(a))
	}

	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, formatAttr(a))

		return true
	})

	h.l.Println(timeStr, levelStr, msg, strings.Join(attrs, " "))

	return nil
}

func (h *TextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TextHandler{
		Handler: h.Handler.WithAttrs(attrs),
		l:       h.l,
		attrs:   append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

func formatAttr(a slog.Attr) string {
	return fmt.Sprintf("%s=%v", a.Key, a.Value.Any())
}

func NewTextHandler(out io.Writer, options *slog.HandlerOptions) *TextHandler {
	return &TextHandler{
		Handler: slog.NewTextHandler(out, options),
		l:       log.New(out, "", 0),
	}
}
