package hugo

// mergeParams deep-merges src into dst.
// - Maps: merged recursively
// - Slices & scalars: replaced.
func mergeParams(dst, src map[string]any) {
	for k, v := range src {
		if mv, ok := v.(map[string]any); ok {
			if existing, ok2 := dst[k].(map[string]any); ok2 {
				mergeParams(existing, mv)
			} else {
				dst[k] = deepCopy(mv)
			}
			continue
		}
		dst[k] = copyValue(v)
	}
}

// ComposeParams merges configuration layers into a new map. Precedence is
// overrides > base > computed; none of the inputs is modified.
func ComposeParams(base, overrides, computed map[string]any) map[string]any {
	out := deepCopy(computed)
	mergeParams(out, base)
	mergeParams(out, overrides)
	return out
}

func deepCopy(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return deepCopy(t)
	case []any:
		cp := make([]any, len(t))
		for i, e := range t {
			cp[i] = copyValue(e)
		}
		return cp
	default:
		return v
	}
}
