package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Subject records the authenticated subject under the key "subject".
func Subject(sub string) slog.Attr {
	return slog.String("subject", sub)
}

// ClinicID records the tenant identifier under the key "clinic_id".
func ClinicID(id int64) slog.Attr {
	return slog.Int64("clinic_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
