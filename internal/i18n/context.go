package i18n

import "context"

type langContextKey struct{}

// NewContext returns a copy of ctx carrying lang.
func NewContext(ctx context.Context, lang Lang) context.Context {
	return context.WithValue(ctx, langContextKey{}, lang)
}

// FromContext returns the language stored in ctx, or DefaultLang.
func FromContext(ctx context.Context) Lang {
	if lang, ok := ctx.Value(langContextKey{}).(Lang); ok {
		return lang
	}
	return DefaultLang
}
