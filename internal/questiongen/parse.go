package questiongen

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ExtractJSONObject returns the first balanced {...} substring of s.
// Models sometimes wrap their JSON in conversational text or code fences;
// this tolerates anything around the object itself. String literals and
// escapes inside the object are honored when counting braces.
func ExtractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// DecodePayload coerces a JSON object into a candidate Payload. It is
// deliberately lenient about field spellings and numeric representations;
// the validator chain decides acceptability afterwards.
func DecodePayload(raw string) (*Payload, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("parse candidate JSON: %w", err)
	}

	p := &Payload{
		Visual:      coerceString(m, "visual"),
		Question:    coerceString(m, "question", "question_text"),
		Explanation: coerceString(m, "explanation"),
	}

	if opts, ok := m["options"].([]any); ok {
		for _, o := range opts {
			if s, ok := o.(string); ok {
				p.Options = append(p.Options, s)
			}
		}
	}

	p.CorrectIndex = coerceInt(m, "correct_index", "correctIndex")
	return p, nil
}

func coerceString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func coerceInt(m map[string]any, keys ...string) int {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return int(v)
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n
			}
		}
	}
	return -1
}
