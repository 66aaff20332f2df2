package htmltable

import "strings"

// entities covers the named character references actually seen in table
// markup and test fixtures. A full HTML5 entity table (~2000 names) is out
// of scope for this package; unrecognized names pass through unchanged
// (with the surrounding "&" and ";" kept verbatim), which matches browser
// behavior for bogus references closely enough for a tolerant extractor.
var entities = map[string]string{
	"amp":     "&",
	"lt":      "<",
	"gt":      ">",
	"quot":    "\"",
	"apos":    "'",
	"nbsp":    " ",
	"copy":    "©",
	"reg":     "®",
	"trade":   "™",
	"mdash":   "—",
	"ndash":   "–",
	"hellip":  "…",
	"ldquo":   "“",
	"rdquo":   "”",
	"lsquo":   "‘",
	"rsquo":   "’",
	"middot":  "·",
	"bull":    "•",
	"deg":     "°",
	"plusmn":  "±",
	"times":   "×",
	"divide":  "÷",
	"euro":    "€",
	"pound":   "£",
	"cent":    "¢",
	"yen":     "¥",
	"sect":    "§",
	"para":    "¶",
	"laquo":   "«",
	"raquo":   "»",
	"shy":     "­",
	"ensp":    " ",
	"emsp":    " ",
	"thinsp":  " ",
}

// decodeEntities replaces HTML character references in s with their decoded
// form. It handles named references from the entities table, decimal
// references (&#NNN;), and hexadecimal references (&#xHHH;). A reference
// without a terminating ";" is still decoded up to the maximal matching
// digit run (numeric) or name (named), mirroring common browser leniency.
// Anything that doesn't parse as a reference is copied through verbatim.
func decodeEntities(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if c != '&' {
			b.WriteByte(c)
			i++
			continue
		}

		rest := s[i+1:]
		if decoded, n, ok := decodeReference(rest); ok {
			b.WriteString(decoded)
			i += 1 + n
			continue
		}

		b.WriteByte(c)
		i++
	}

	return b.String()
}

// decodeReference attempts to parse a single character reference from s
// (s does not include the leading "&"). It returns the decoded text, the
// number of bytes of s consumed (not including "&"), and whether a
// reference was recognized at all.
func decodeReference(s string) (string, int, bool) {
	if s == "" {
		return "", 0, false
	}

	if s[0] == '#' {
		return decodeNumericReference(s)
	}

	end := 0
	for end < len(s) && isEntityNameByte(s[end]) {
		end++
	}
	if end == 0 {
		return "", 0, false
	}

	name := s[:end]
	consumed := end
	if end < len(s) && s[end] == ';' {
		consumed++
	}

	if v, ok := entities[name]; ok {
		return v, consumed, true
	}

	// Try progressively shorter prefixes so "&ampfoo" still decodes "&amp".
	for l := end - 1; l > 0; l-- {
		if v, ok := entities[name[:l]]; ok {
			return v, l, true
		}
	}

	return "", 0, false
}

func decodeNumericReference(s string) (string, int, bool) {
	// s[0] == '#'
	i := 1
	hex := false
	if i < len(s) && (s[i] == 'x' || s[i] == 'X') {
		hex = true
		i++
	}

	start := i
	var r rune
	if hex {
		for i < len(s) && isHexDigit(s[i]) {
			r = r*16 + rune(hexVal(s[i]))
			i++
		}
	} else {
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			r = r*10 + rune(s[i]-'0')
			i++
		}
	}
	if i == start {
		return "", 0, false
	}

	consumed := i
	if i < len(s) && s[i] == ';' {
		consumed++
	}

	if r <= 0 || r > 0x10FFFF {
		return "�", consumed, true
	}
	return string(r), consumed, true
}

func isEntityNameByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexVal(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	default:
		return int(b-'A') + 10
	}
}
