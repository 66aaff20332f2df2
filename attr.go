package htmltable

import "strings"

// Attribute is one name/value pair from a start tag. A nil Value means the
// attribute was written bare (e.g. <table class>); a non-nil Value pointing
// at "" means it was written with an explicit empty value (class=""). The
// two are distinct states per the HTML attribute grammar, and the filter
// layer's "null" sentinel (see Filter.Attrs) matches only the bare form.
type Attribute struct {
	Key   string
	Value *string
}

// Attributes is the ordered set of attributes parsed from a single start
// tag. Keys are stored lower-cased; duplicate keys keep their first
// occurrence, per the HTML parsing rule.
type Attributes []Attribute

// Get returns the value for key (case-insensitive) and whether it was
// present at all. A present-but-bare attribute returns (nil, true).
func (a Attributes) Get(key string) (*string, bool) {
	key = strings.ToLower(key)
	for _, at := range a {
		if at.Key == key {
			return at.Value, true
		}
	}
	return nil, false
}

// GetString returns the decoded string value for key, or "" if the
// attribute is absent or bare.
func (a Attributes) GetString(key string) string {
	v, ok := a.Get(key)
	if !ok || v == nil {
		return ""
	}
	return *v
}

func strPtr(s string) *string { return &s }

// parseAttributes walks the raw bytes between a tag name and the closing
// ">"/"/>" of a start tag, splitting it into ordered Attributes. It
// tolerates missing quotes, missing "=", and EOF mid-attribute, per
// spec §4.2: name "=" value, where value is double-quoted, single-quoted,
// or unquoted up to whitespace/">"; "=" may be omitted entirely (bare
// attribute, Value == nil). Entity references inside values are decoded.
//
// raw is positioned just after the tag name (leading/trailing whitespace is
// tolerated).
func parseAttributes(raw string) Attributes {
	var attrs Attributes
	seen := make(map[string]bool)

	pos := 0
	n := len(raw)

	for pos < n {
		pos = skipAttrSpace(raw, pos)
		if pos >= n || raw[pos] == '/' {
			break
		}

		nameStart := pos
		for pos < n && raw[pos] != '=' && !isAttrSpace(raw[pos]) && raw[pos] != '/' {
			pos++
		}
		if pos == nameStart {
			// Stray character (e.g. a lone "/" was handled above, this
			// covers anything else odd); skip it to make progress.
			pos++
			continue
		}
		name := strings.ToLower(raw[nameStart:pos])

		pos = skipAttrSpace(raw, pos)

		var val *string
		if pos < n && raw[pos] == '=' {
			pos++
			pos = skipAttrSpace(raw, pos)
			var raw_ string
			raw_, pos = scanAttrValue(raw, pos)
			decoded := decodeEntities(raw_)
			val = &decoded
		}

		if !seen[name] {
			seen[name] = true
			attrs = append(attrs, Attribute{Key: name, Value: val})
		}
	}

	return attrs
}

// scanAttrValue reads one attribute value starting at pos (which must point
// at the first byte of the value, past any "=" and whitespace). It returns
// the raw (un-decoded) value text and the position just past the value.
func scanAttrValue(raw string, pos int) (string, int) {
	n := len(raw)
	if pos >= n {
		return "", pos
	}

	if raw[pos] == '"' || raw[pos] == '\'' {
		quote := raw[pos]
		pos++
		start := pos
		for pos < n && raw[pos] != quote {
			pos++
		}
		val := raw[start:pos]
		if pos < n {
			pos++ // consume closing quote
		}
		return val, pos
	}

	start := pos
	for pos < n && !isAttrSpace(raw[pos]) && raw[pos] != '>' {
		pos++
	}
	return raw[start:pos], pos
}

func skipAttrSpace(raw string, pos int) int {
	for pos < len(raw) && isAttrSpace(raw[pos]) {
		pos++
	}
	return pos
}

func isAttrSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}
