// tracing.go — zap adapters for anyhow error fields
//
// Package tracing converts the diagnostic fields carried by anyhow errors
// into zap fields, so an error's context lands in structured log output
// instead of being flattened into the message string.
//
//	if err := store.Save(ctx, rec); err != nil {
//		logger.Error("save failed", tracing.Fields(err)...)
//	}
//
// Field values are already rendered text by the time they reach an error,
// so every field maps to zap.String; ordering is preserved. The error
// itself is appended last under zap's standard "error" key.
package tracing

import (
	"errors"

	"go.uber.org/zap"

	anyhow "github.com/JosiahBull/anyhow-tracing"
)

// Fields converts err's diagnostic fields into zap fields, one zap.String
// per field in attach order, followed by zap.Error(err). Errors that do not
// carry anyhow fields anywhere in their chain still yield the zap.Error
// entry. A nil err yields nil.
func Fields(err error) []zap.Field {
	if err == nil {
		return nil
	}
	var fe anyhow.Error
	if !errors.As(err, &fe) {
		return []zap.Field{zap.Error(err)}
	}
	fs := fe.Fields()
	out := make([]zap.Field, 0, len(fs)+1)
	for _, f := range fs {
		out = append(out, zap.String(f.Key, f.Val))
	}
	return append(out, zap.Error(err))
}

// With returns a logger that carries err's fields on every subsequent
// entry. A nil logger or a nil err is returned unchanged.
func With(logger *zap.Logger, err error) *zap.Logger {
	if logger == nil || err == nil {
		return logger
	}
	return logger.With(Fields(err)...)
}
