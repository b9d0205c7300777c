package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator checks a decoded value. A non-nil error rejects it.
type SchemaValidator[T any] func(T) error

// ExtractJSON pulls the first JSON object out of model output and decodes it
// into T. Markdown fences, surrounding prose, comments, trailing commas and
// bare leading decimals (".5") are tolerated.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	block := firstObject(stripFences(raw))
	if block == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var result T
	if err := json.Unmarshal([]byte(repairJSON(block)), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return result, nil
}

func stripFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// scanner walks JSON text and tracks whether the cursor is inside a string
// literal.
type scanner struct {
	inString bool
	escaped  bool
}

// step consumes c and reports whether it is structural (outside a string).
func (sc *scanner) step(c byte) bool {
	switch {
	case sc.escaped:
		sc.escaped = false
		return false
	case sc.inString && c == '\\':
		sc.escaped = true
		return false
	case c == '"':
		sc.inString = !sc.inString
		return false
	}
	return !sc.inString
}

func firstObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	var sc scanner
	depth := 0
	for i := start; i < len(s); i++ {
		if !sc.step(s[i]) {
			continue
		}
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// repairJSON fixes the non-JSON habits small models have outside string
// literals.
func repairJSON(s string) string {
	var (
		b  strings.Builder
		sc scanner
	)
	b.Grow(len(s) + 8)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if !sc.step(c) {
			b.WriteByte(c)
			continue
		}

		switch {
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				i = len(s)
			} else {
				i += end + 3
			}
			continue
		case c == ',' && closesNext(s, i+1):
			continue
		case c == '.' && i+1 < len(s) && isDigit(s[i+1]) && startsNumber(lastNonSpace(b.String())):
			b.WriteByte('0')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// closesNext reports whether the next significant byte after i closes an
// object or array, skipping whitespace and comments.
func closesNext(s string, i int) bool {
	for i < len(s) {
		switch {
		case isSpace(s[i]):
			i++
		case strings.HasPrefix(s[i:], "//"):
			nl := strings.IndexByte(s[i:], '\n')
			if nl < 0 {
				return false
			}
			i += nl + 1
		case strings.HasPrefix(s[i:], "/*"):
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				return false
			}
			i += end + 4
		default:
			return s[i] == '}' || s[i] == ']'
		}
	}
	return false
}

func lastNonSpace(s string) byte {
	for i := len(s) - 1; i >= 0; i-- {
		if !isSpace(s[i]) {
			return s[i]
		}
	}
	return 0
}

func startsNumber(prev byte) bool {
	switch prev {
	case 0, ':', ',', '[', '{', '-':
		return true
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
