package css

import (
	"strconv"
	"strings"
)

// Style holds inline style declarations for a single element.
// Declaration order is preserved so serialized style attributes are stable
// across ticks; setting a property again keeps its original position.
type Style struct {
	keys  []string
	props map[string]string
}

func NewStyle() *Style {
	return &Style{props: make(map[string]string)}
}

func (s *Style) Get(property string) (string, bool) {
	val, ok := s.props[property]
	return val, ok
}

func (s *Style) Set(property, value string) {
	if _, ok := s.props[property]; !ok {
		s.keys = append(s.keys, property)
	}
	s.props[property] = value
}

// Remove deletes a property entirely. This is different from setting it to
// the empty string: an empty value is still serialized away but keeps its
// place in the declaration set, which the affix resolver relies on to emit
// complete style sets.
func (s *Style) Remove(property string) {
	if _, ok := s.props[property]; !ok {
		return
	}
	delete(s.props, property)
	for i, k := range s.keys {
		if k == property {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

func (s *Style) Len() int {
	return len(s.keys)
}

// Properties returns the declared property names in declaration order.
func (s *Style) Properties() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Clone returns an independent copy.
func (s *Style) Clone() *Style {
	c := NewStyle()
	for _, k := range s.keys {
		c.Set(k, s.props[k])
	}
	return c
}

// Merge overlays other's declarations onto s. Properties in other win.
func (s *Style) Merge(other *Style) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		s.Set(k, other.props[k])
	}
}

// Inline serializes the style to a style-attribute string. Properties with
// empty values are omitted from the output but remain declared.
func (s *Style) Inline() string {
	var b strings.Builder
	for _, k := range s.keys {
		v := s.props[k]
		if v == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
	}
	return b.String()
}

// ParseInline parses a style-attribute string ("top: 10px; width: 200px").
// Malformed declarations are skipped.
func ParseInline(attr string) *Style {
	s := NewStyle()
	for _, decl := range strings.Split(attr, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		idx := strings.Index(decl, ":")
		if idx <= 0 {
			continue
		}
		prop := strings.TrimSpace(decl[:idx])
		val := strings.TrimSpace(decl[idx+1:])
		if prop == "" {
			continue
		}
		s.Set(prop, val)
	}
	return s
}

// ParseLength parses a pixel length value (e.g. "100px" or "100").
func ParseLength(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	val = strings.TrimSuffix(val, "px")
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// FormatLength renders a pixel length without a trailing fraction when the
// value is integral ("20px", "12.5px").
func FormatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// GetLength returns the parsed pixel value of a declared property.
func (s *Style) GetLength(property string) (float64, bool) {
	val, ok := s.Get(property)
	if !ok {
		return 0, false
	}
	return ParseLength(val)
}
