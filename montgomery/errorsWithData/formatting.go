package errorsWithData

import (
	"fmt"
	"strings"
)

// interpolate processes the message format described in the package documentation.
//
// Malformed format strings (unterminated %...{, a non-verb between % and {, or references to missing parameters) do not panic;
// the offending part is reported inline, in the style of fmt's %!v(MISSING).
func interpolate(message string, baseError error, params map[string]any) string {
	var b strings.Builder
	for i := 0; i < len(message); i++ {
		c := message[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 == len(message) {
			b.WriteString("%!(NOVERB)")
			break
		}
		switch message[i+1] {
		case '%':
			b.WriteByte('%')
			i++
			continue
		case 'w':
			if baseError != nil {
				b.WriteString(baseError.Error())
			} else {
				b.WriteString("<nil>")
			}
			i++
			continue
		}
		// %VERB{Name}
		open := strings.IndexByte(message[i:], '{')
		closing := strings.IndexByte(message[i:], '}')
		if open < 0 || closing < open {
			b.WriteString("%!(BADFORMAT)")
			break
		}
		verb := message[i+1 : i+open]
		name := message[i+open+1 : i+closing]
		if verb == "" {
			verb = "v"
		}
		if !isPlainVerb(verb) {
			b.WriteString("%!(BADFORMAT)")
			break
		}
		value, ok := params[name]
		if ok {
			fmt.Fprintf(&b, "%"+verb, value)
		} else {
			fmt.Fprintf(&b, "%%!%v(MISSING %v)", verb, name)
		}
		i += closing
	}
	return b.String()
}

// isPlainVerb reports whether verb is a fmt verb letter, optionally preceded by flags, width and precision, e.g. "v", "08x", "+.3f".
func isPlainVerb(verb string) bool {
	last := verb[len(verb)-1]
	if !('a' <= last && last <= 'z' || 'A' <= last && last <= 'Z') {
		return false
	}
	for i := 0; i < len(verb)-1; i++ {
		if !strings.ContainsRune("+-# 0123456789.", rune(verb[i])) {
			return false
		}
	}
	return true
}
