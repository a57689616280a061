package patch

// Field parses raw when present and keeps current otherwise.
func Field[T any](raw *string, current T, parse func(string) (T, error)) (T, error) {
	if raw == nil {
		return current, nil
	}
	return parse(*raw)
}
