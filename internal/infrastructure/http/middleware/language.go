package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/rezkam/hostitask/internal/i18n"
	"github.com/rezkam/hostitask/internal/infrastructure/http/response"
)

// LangQueryParam overrides Accept-Language when present.
const LangQueryParam = "lang"

// Language is a Chi middleware that resolves the display language of a request.
// An explicit ?lang= wins and must be a supported language; otherwise the
// Accept-Language header is negotiated, falling back to English.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.Negotiate(r.Header.Get("Accept-Language"))

		if raw := r.URL.Query().Get(LangQueryParam); raw != "" {
			parsed, err := i18n.ParseLang(raw)
			if err != nil {
				slog.WarnContext(r.Context(), "rejected unsupported language",
					"path", r.URL.Path,
					"lang", raw)
				response.FromDomainError(w, r, err)
				return
			}
			lang = parsed
		}

		next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), lang)))
	})
}

// WithLang returns a copy of ctx carrying lang.
func WithLang(ctx context.Context, lang i18n.Lang) context.Context {
	return i18n.NewContext(ctx, lang)
}

// LangFromContext returns the request language, or i18n.DefaultLang if none was set.
func LangFromContext(ctx context.Context) i18n.Lang {
	return i18n.FromContext(ctx)
}
