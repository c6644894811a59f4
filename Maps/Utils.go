package Maps

// KeyOf checks that k is a string and returns it. op names the calling operation in the error.
func KeyOf(op string, k any) (string, error) {
	if s, ok := k.(string); ok {
		return s, nil
	}
	return "", InvalidArgument(op, "key", "must be a string, got %T", k)
}
