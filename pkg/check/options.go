package check

// Options carries per-rule settings. Values come from the
// [rules.options.<ID>] config table plus a few engine-injected
// entries, so the concrete types depend on the TOML decoder.
type Options = map[string]any

// GetOption retrieves a typed option value, falling back to def when
// the key is absent or the value has the wrong type.
func GetOption[T any](opts Options, key string, def T) T {
	if opts == nil {
		return def
	}
	raw, ok := opts[key]
	if !ok {
		return def
	}
	v, ok := raw.(T)
	if !ok {
		return def
	}
	return v
}

// GetStringOption retrieves a string option.
func GetStringOption(opts Options, key, def string) string {
	return GetOption(opts, key, def)
}

// GetBoolOption retrieves a bool option.
func GetBoolOption(opts Options, key string, def bool) bool {
	return GetOption(opts, key, def)
}

// GetIntOption retrieves an int option. TOML decoders deliver
// integers as int64 and JSON decoders as float64, so both are
// accepted alongside plain int.
func GetIntOption(opts Options, key string, def int) int {
	if opts == nil {
		return def
	}
	raw, ok := opts[key]
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// GetStringSliceOption retrieves a string slice option. Decoded
// config arrays arrive as []any, so elements are converted one by
// one; a non-string element invalidates the whole value.
func GetStringSliceOption(opts Options, key string, def []string) []string {
	if opts == nil {
		return def
	}
	raw, ok := opts[key]
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return def
			}
			out = append(out, s)
		}
		return out
	default:
		return def
	}
}
