package autherr

import "log/slog"

// LogAttrs returns attributes describing err for structured logs: the error
// code and, when present, the provider's error code.
func LogAttrs(err error) []slog.Attr {
	code, ok := CodeOf(err)
	if !ok {
		return nil
	}

	attrs := []slog.Attr{slog.String("error_code", string(code))}

	if cause, ok := CauseOf(err); ok {
		attrs = append(attrs, slog.String("cause_code", cause.Code().String()))
	}

	return attrs
}
