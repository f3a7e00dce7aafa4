package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator validates a parsed struct after JSON extraction.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func(T) error

// ExtractJSON pulls the first JSON object of type T out of raw model output.
// It tolerates markdown fences, chatter around the object, comments and
// trailing commas. A non-nil validator runs on the decoded value.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	obj := firstObject(unfence(raw))
	if obj == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}
	obj = dropTrailingCommas(dropComments(obj))

	var result T
	if err := json.Unmarshal([]byte(obj), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return result, nil
}

// unfence removes markdown fence lines, keeping their content.
func unfence(s string) string {
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

// lexer tracks whether a byte offset sits inside a JSON string literal.
type lexer struct {
	inString bool
	escaped  bool
}

// step consumes c and reports whether it belongs to a string literal
// (quotes included).
func (l *lexer) step(c byte) bool {
	switch {
	case l.escaped:
		l.escaped = false
		return true
	case l.inString && c == '\\':
		l.escaped = true
		return true
	case c == '"':
		l.inString = !l.inString
		return true
	default:
		return l.inString
	}
}

// firstObject returns the first balanced {...} block, or "".
func firstObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	var lx lexer
	depth := 0
	for i := start; i < len(s); i++ {
		if lx.step(s[i]) {
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

// dropComments strips // and /* */ comments outside string literals.
func dropComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var lx lexer
	for i := 0; i < len(s); i++ {
		c := s[i]
		if lx.step(c) {
			b.WriteByte(c)
			continue
		}
		if c == '/' && i+1 < len(s) {
			switch s[i+1] {
			case '/':
				for i+1 < len(s) && s[i+1] != '\n' {
					i++
				}
				continue
			case '*':
				end := strings.Index(s[i+2:], "*/")
				if end == -1 {
					return b.String()
				}
				i += end + 3
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// dropTrailingCommas removes a comma directly before a closing ] or }.
func dropTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var lx lexer
	for i := 0; i < len(s); i++ {
		c := s[i]
		if lx.step(c) || c != ',' {
			b.WriteByte(c)
			continue
		}
		j := i + 1
		for j < len(s) && strings.IndexByte(" \t\r\n", s[j]) >= 0 {
			j++
		}
		if j < len(s) && (s[j] == '}' || s[j] == ']') {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
