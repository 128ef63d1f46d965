package codec

// Code parses and formats inline code snippets. The stored representation
// is a plain string; numbers are accepted for backward compatibility with
// properties that held numeric values before being retyped.
var Code = Codec{
	Parse:  parseCode,
	Format: formatCode,
}

func parseCode(raw any, _ Config) any {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		return v
	default:
		if n, ok := asNumber(raw); ok {
			return formatNumber(n, 0)
		}
		return nil
	}
}

func formatCode(v any, _ Config) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
