package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeySite         = "site"
	KeyPath         = "path"
	KeyFile         = "file"
	KeyURL          = "url"
	KeyTheme        = "theme"
	KeyGenerationID = "generation_id"
	KeyDurationMS   = "duration_ms"
	KeyCount        = "count"
	KeyError        = "error"
)

func Site(key string) slog.Attr { return slog.String(KeySite, key) }
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func File(f string) slog.Attr { return slog.String(KeyFile, f) }
func URL(u string) slog.Attr { return slog.String(KeyURL, u) }
func Theme(t string) slog.Attr { return slog.String(KeyTheme, t) }
func GenerationID(id string) slog.Attr { return slog.String(KeyGenerationID, id) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
