package pipeline

import "bytes"

// ReplaceAll collapses every occurrence of pattern in text to the single
// byte replacement, shifting the remaining bytes left. After a collapse
// the scan resumes at the replacement byte itself: a pattern whose first
// byte equals the replacement is matched across the freshly written byte,
// but an occurrence formed with bytes before the replacement point is
// left alone, since the scan never moves back. For patterns the
// replacement byte cannot re-form, such as the pipeline's own rules, the
// returned text contains no occurrence of pattern.
func ReplaceAll(text, pattern string, replacement byte) (string, error) {
	if pattern == "" {
		return "", ErrEmptyPattern
	}

	buf := []byte(text)
	pat := []byte(pattern)

	pos := 0
	for {
		idx := bytes.Index(buf[pos:], pat)
		if idx < 0 {
			break
		}
		pos += idx
		buf[pos] = replacement
		buf = append(buf[:pos+1], buf[pos+len(pat):]...)
	}

	return string(buf), nil
}
