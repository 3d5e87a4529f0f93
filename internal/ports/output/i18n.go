package output

// T looks up user-facing messages by key. data fills template
// placeholders and may be nil.
type T interface {
	T(locale, key string, data map[string]any) string
}

// Catalog is a T that knows which locales it has messages for. Slash
// command descriptions are localized for each of them.
type Catalog interface {
	T
	Locales() []string
}
