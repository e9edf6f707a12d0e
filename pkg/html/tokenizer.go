package html

import (
	"fmt"
	gohtml "html"
	"strings"
	"unicode"
)

type TokenType int

const (
	TokenStartTag TokenType = iota
	TokenEndTag
	TokenText
	TokenEOF
)

type Token struct {
	Type        TokenType
	TagName     string
	Attributes  map[string]string
	Text        string
	SelfClosing bool
}

type Tokenizer struct {
	input string
	pos   int
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

func (t *Tokenizer) NextToken() (Token, error) {
	if t.pos >= len(t.input) {
		return Token{Type: TokenEOF}, nil
	}
	if t.input[t.pos] == '<' {
		return t.readTag()
	}
	return t.readText()
}

// ReadRawText consumes everything up to the matching end tag without
// interpreting markup. Used for <script> content.
func (t *Tokenizer) ReadRawText(tagName string) string {
	end := "</" + tagName
	lower := strings.ToLower(t.input[t.pos:])
	idx := strings.Index(lower, end)
	if idx < 0 {
		raw := t.input[t.pos:]
		t.pos = len(t.input)
		return raw
	}
	raw := t.input[t.pos : t.pos+idx]
	t.pos += idx
	return raw
}

func (t *Tokenizer) readTag() (Token, error) {
	t.pos++

	// <!-- comments -->
	if strings.HasPrefix(t.input[t.pos:], "!--") {
		t.pos += 3
		if idx := strings.Index(t.input[t.pos:], "-->"); idx >= 0 {
			t.pos += idx + 3
		} else {
			t.pos = len(t.input)
		}
		return t.NextToken()
	}

	// <!DOCTYPE ...> and other declarations
	if t.pos < len(t.input) && t.input[t.pos] == '!' {
		if err := t.skipTo('>'); err != nil {
			return Token{}, err
		}
		t.pos++
		return t.NextToken()
	}

	isEndTag := false
	if t.pos < len(t.input) && t.input[t.pos] == '/' {
		isEndTag = true
		t.pos++
	}
	tagName := t.readTagName()
	if tagName == "" {
		return Token{}, fmt.Errorf("expected tag name at position %d", t.pos)
	}
	if isEndTag {
		if err := t.skipTo('>'); err != nil {
			return Token{}, err
		}
		t.pos++
		return Token{Type: TokenEndTag, TagName: tagName}, nil
	}

	attrs, selfClosing, err := t.readAttributes()
	if err != nil {
		return Token{}, err
	}
	return Token{
		Type:        TokenStartTag,
		TagName:     tagName,
		Attributes:  attrs,
		SelfClosing: selfClosing,
	}, nil
}

func (t *Tokenizer) readText() (Token, error) {
	start := t.pos
	for t.pos < len(t.input) && t.input[t.pos] != '<' {
		t.pos++
	}
	text := gohtml.UnescapeString(t.input[start:t.pos])
	return Token{Type: TokenText, Text: text}, nil
}

func (t *Tokenizer) readTagName() string {
	start := t.pos
	for t.pos < len(t.input) {
		c := rune(t.input[t.pos])
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '-' {
			break
		}
		t.pos++
	}
	return strings.ToLower(t.input[start:t.pos])
}

func (t *Tokenizer) readAttributes() (map[string]string, bool, error) {
	attrs := make(map[string]string)
	selfClosing := false
	for {
		t.skipWhitespace()
		if t.pos >= len(t.input) {
			return nil, false, fmt.Errorf("unterminated tag")
		}
		if t.input[t.pos] == '>' {
			t.pos++
			return attrs, selfClosing, nil
		}
		if t.input[t.pos] == '/' {
			selfClosing = true
			t.pos++
			continue
		}

		name := t.readAttrName()
		if name == "" {
			t.pos++ // skip stray character
			continue
		}
		t.skipWhitespace()
		if t.pos < len(t.input) && t.input[t.pos] == '=' {
			t.pos++
			t.skipWhitespace()
			attrs[name] = t.readAttrValue()
		} else {
			attrs[name] = ""
		}
	}
}

func (t *Tokenizer) readAttrName() string {
	start := t.pos
	for t.pos < len(t.input) {
		c := t.input[t.pos]
		if c == '=' || c == '>' || c == '/' || isSpace(c) {
			break
		}
		t.pos++
	}
	return strings.ToLower(t.input[start:t.pos])
}

func (t *Tokenizer) readAttrValue() string {
	if t.pos >= len(t.input) {
		return ""
	}
	if q := t.input[t.pos]; q == '"' || q == '\'' {
		t.pos++
		start := t.pos
		for t.pos < len(t.input) && t.input[t.pos] != q {
			t.pos++
		}
		val := t.input[start:t.pos]
		if t.pos < len(t.input) {
			t.pos++ // closing quote
		}
		return gohtml.UnescapeString(val)
	}
	start := t.pos
	for t.pos < len(t.input) {
		c := t.input[t.pos]
		if c == '>' || isSpace(c) {
			break
		}
		t.pos++
	}
	return gohtml.UnescapeString(t.input[start:t.pos])
}

func (t *Tokenizer) skipTo(c byte) error {
	for t.pos < len(t.input) {
		if t.input[t.pos] == c {
			return nil
		}
		t.pos++
	}
	return fmt.Errorf("expected %q before end of input", c)
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && isSpace(t.input[t.pos]) {
		t.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
