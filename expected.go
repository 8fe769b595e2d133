package safecall

// ExpectedErrors maps response status codes to the human-readable message the
// caller wants surfaced when a call fails with that code. The map is caller-owned
// and consulted once per Execute call; Execute never mutates or retains it.
//
// Lookup is exact integer equality. Key presence is the sole gate: a failure whose
// code is a key is expected, everything else is unexpected. There is no range or
// wildcard matching.
type ExpectedErrors map[int]string

// Message returns the registered message for a status code and whether the code
// is registered at all. Non-positive codes are never registered; they stand for
// "no status code" and always miss.
func (e ExpectedErrors) Message(code int) (string, bool) {
	if e == nil || code <= 0 {
		return "", false
	}

	message, ok := e[code]
	return message, ok
}

// Merge returns a new map containing the entries of both maps. Entries in other
// override entries with the same code. Neither input is modified.
func (e ExpectedErrors) Merge(other ExpectedErrors) ExpectedErrors {
	merged := make(ExpectedErrors, len(e)+len(other))
	for code, message := range e {
		merged[code] = message
	}
	for code, message := range other {
		merged[code] = message
	}
	return merged
}
