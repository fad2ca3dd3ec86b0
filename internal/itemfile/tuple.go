package itemfile

import (
	"errors"
	"strconv"
	"strings"
)

var (
	errUnterminatedString = errors.New("unterminated string literal")
	errUnbalancedParens   = errors.New("unbalanced parentheses")
	errEmptyTuple         = errors.New("empty tuple")
)

// ParseTuple splits one line of an item dump into its values. Accepted forms:
//
//	(25,2,7,'Worn Shortsword',...),
//	INSERT INTO item_template VALUES (25,2,7,'Worn Shortsword',...);
//	25,2,7,'Worn Shortsword',...
//
// Quoted values become strings ('' and backslash escapes are honored),
// NULL becomes nil, and bare values become int64 or float64 when they parse
// as such and stay strings otherwise.
func ParseTuple(line string) ([]any, error) {
	body := stripTuple(line)
	if body == "" {
		return nil, errEmptyTuple
	}

	var (
		values []any
		buf    strings.Builder
		quoted bool // current value was a string literal
		inStr  bool
		depth  int
	)

	flush := func() {
		if quoted {
			values = append(values, buf.String())
		} else {
			values = append(values, literal(strings.TrimSpace(buf.String())))
		}
		buf.Reset()
		quoted = false
	}

	for i := 0; i < len(body); i++ {
		c := body[i]
		if inStr {
			switch {
			case c == '\\' && i+1 < len(body):
				i++
				buf.WriteByte(unescape(body[i]))
			case c == '\'' && i+1 < len(body) && body[i+1] == '\'':
				i++
				buf.WriteByte('\'')
			case c == '\'':
				inStr = false
			default:
				buf.WriteByte(c)
			}
			continue
		}

		switch c {
		case '\'':
			inStr = true
			quoted = true
			buf.Reset()
		case '(':
			depth++
			buf.WriteByte(c)
		case ')':
			depth--
			if depth < 0 {
				return nil, errUnbalancedParens
			}
			buf.WriteByte(c)
		case ',':
			if depth > 0 {
				buf.WriteByte(c)
				continue
			}
			flush()
		default:
			if !quoted {
				buf.WriteByte(c)
			}
		}
	}

	if inStr {
		return nil, errUnterminatedString
	}
	if depth != 0 {
		return nil, errUnbalancedParens
	}
	flush()
	return values, nil
}

// stripTuple removes an INSERT ... VALUES prefix, the trailing comma or
// semicolon, and one pair of enclosing parentheses.
func stripTuple(line string) string {
	s := strings.TrimSpace(line)
	if hasPrefixFold(s, "INSERT") {
		if i := indexFold(s, "VALUES"); i >= 0 {
			s = strings.TrimSpace(s[i+len("VALUES"):])
		}
	}
	s = strings.TrimRight(s, ",; \t")
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}

// hasPrefixFold and indexFold match an ASCII keyword byte by byte, so
// offsets stay valid in s whatever non-ASCII text surrounds the keyword.
func hasPrefixFold(s, keyword string) bool {
	return len(s) >= len(keyword) && equalFoldASCII(s[:len(keyword)], keyword)
}

func indexFold(s, keyword string) int {
	for i := 0; i+len(keyword) <= len(s); i++ {
		if equalFoldASCII(s[i:i+len(keyword)], keyword) {
			return i
		}
	}
	return -1
}

func equalFoldASCII(a, b string) bool {
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func literal(s string) any {
	if strings.EqualFold(s, "NULL") {
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case '0':
		return 0
	default:
		return c
	}
}

// skipLine reports whether a line carries no record: blank lines, SQL and
// shell style comments.
func skipLine(line string) bool {
	s := strings.TrimSpace(line)
	return s == "" || strings.HasPrefix(s, "--") || strings.HasPrefix(s, "#")
}
