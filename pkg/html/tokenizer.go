package html

import (
	"strings"
	"unicode"
)

type TokenType int

const (
	TokenStartTag TokenType = iota
	TokenEndTag
	TokenText
	TokenComment
	TokenDoctype
	TokenEOF
)

type Token struct {
	Type        TokenType
	TagName     string
	Attributes  map[string]string
	Text        string
	SelfClosing bool // True for tags ending with /> (XHTML self-closing syntax)
}

// Tokenizer is a pull lexer over a complete in-memory document. It never
// fails: malformed markup degrades to literal text and the stream always
// ends in TokenEOF.
type Tokenizer struct {
	input string
	pos   int
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input, pos: 0}
}

func (t *Tokenizer) NextToken() Token {
	if t.pos >= len(t.input) {
		return Token{Type: TokenEOF}
	}
	// Only treat '<' as markup when it can actually open a tag, a comment,
	// a declaration, or a processing instruction. A stray '<' reads as text.
	if t.input[t.pos] == '<' && t.markupAhead() {
		return t.readTag()
	}
	return t.readText()
}

// markupAhead reports whether the '<' at the current position begins
// markup rather than literal text.
func (t *Tokenizer) markupAhead() bool {
	if t.pos+1 >= len(t.input) {
		return false
	}
	c := t.input[t.pos+1]
	return isASCIILetter(c) || c == '/' || c == '!' || c == '?'
}

func (t *Tokenizer) readTag() Token {
	tagStart := t.pos
	t.pos++

	// Handle <!-- comments -->
	if t.pos+2 < len(t.input) && t.input[t.pos] == '!' && t.input[t.pos+1] == '-' && t.input[t.pos+2] == '-' {
		t.pos += 3
		for t.pos+2 < len(t.input) {
			if t.input[t.pos] == '-' && t.input[t.pos+1] == '-' && t.input[t.pos+2] == '>' {
				t.pos += 3
				return Token{Type: TokenComment}
			}
			t.pos++
		}
		// Unterminated comment swallows the rest of the input.
		t.pos = len(t.input)
		return Token{Type: TokenComment}
	}

	// Handle <?xml ...?> and other processing instructions: skipped silently
	if t.input[t.pos] == '?' {
		for t.pos+1 < len(t.input) {
			if t.input[t.pos] == '?' && t.input[t.pos+1] == '>' {
				t.pos += 2
				return t.NextToken()
			}
			t.pos++
		}
		t.pos = len(t.input)
		return Token{Type: TokenEOF}
	}

	// Handle <!DOCTYPE ...> and any other markup declaration
	if t.input[t.pos] == '!' {
		if !t.skipTo('>') {
			return t.literalText(tagStart)
		}
		t.pos++
		return Token{Type: TokenDoctype}
	}

	isEndTag := false
	if t.input[t.pos] == '/' {
		isEndTag = true
		t.pos++
	}
	tagName := t.readTagName()
	if isEndTag {
		if !t.skipTo('>') {
			return t.literalText(tagStart)
		}
		t.pos++
		if tagName == "" {
			// </> carries no name and is dropped.
			return t.NextToken()
		}
		return Token{Type: TokenEndTag, TagName: tagName}
	}
	attributes := make(map[string]string)
	for {
		t.skipWhitespace()
		if t.pos >= len(t.input) {
			return t.literalText(tagStart)
		}
		if t.input[t.pos] == '>' {
			t.pos++
			break
		}
		if t.input[t.pos] == '/' {
			t.pos++
			t.skipWhitespace()
			if t.pos < len(t.input) && t.input[t.pos] == '>' {
				t.pos++
				return Token{Type: TokenStartTag, TagName: tagName, Attributes: attributes, SelfClosing: true}
			}
			continue
		}
		name, value, ok := t.readAttribute()
		if !ok {
			return t.literalText(tagStart)
		}
		if name != "" {
			attributes[name] = value
		}
	}
	return Token{Type: TokenStartTag, TagName: tagName, Attributes: attributes}
}

func (t *Tokenizer) readTagName() string {
	start := t.pos
	for t.pos < len(t.input) && isTagNameChar(t.input[t.pos]) {
		t.pos++
	}
	return strings.ToLower(t.input[start:t.pos])
}

// readAttribute returns ok=false only when the attribute value never
// terminates, which degrades the whole tag to text.
func (t *Tokenizer) readAttribute() (string, string, bool) {
	start := t.pos
	for t.pos < len(t.input) && isAttributeNameChar(t.input[t.pos]) {
		t.pos++
	}
	name := strings.ToLower(t.input[start:t.pos])
	if name == "" {
		// Stray byte inside a tag. Drop it and keep scanning.
		t.pos++
		return "", "", true
	}
	t.skipWhitespace()
	if t.pos >= len(t.input) || t.input[t.pos] != '=' {
		return name, "", true
	}
	t.pos++
	t.skipWhitespace()
	value, ok := t.readAttributeValue()
	if !ok {
		return "", "", false
	}
	return name, value, true
}

func (t *Tokenizer) readAttributeValue() (string, bool) {
	if t.pos >= len(t.input) {
		return "", false
	}
	quote := t.input[t.pos]
	if quote == '"' || quote == '\'' {
		t.pos++
		start := t.pos
		for t.pos < len(t.input) && t.input[t.pos] != quote {
			t.pos++
		}
		if t.pos >= len(t.input) {
			return "", false
		}
		value := t.input[start:t.pos]
		t.pos++
		return value, true
	}
	start := t.pos
	for t.pos < len(t.input) && !unicode.IsSpace(rune(t.input[t.pos])) && t.input[t.pos] != '>' {
		t.pos++
	}
	return t.input[start:t.pos], true
}

func (t *Tokenizer) readText() Token {
	start := t.pos
	if t.input[t.pos] == '<' {
		// Literal '<' that opens no markup.
		t.pos++
	}
	for t.pos < len(t.input) && t.input[t.pos] != '<' {
		t.pos++
	}
	raw := t.input[start:t.pos]
	// If the raw text is entirely whitespace (e.g., indentation between tags),
	// skip it. But if it contains any non-whitespace characters, normalize it
	// while preserving leading/trailing spaces so word boundaries survive
	// around styled spans.
	if strings.TrimSpace(raw) == "" {
		if t.pos < len(t.input) {
			return t.NextToken()
		}
		return Token{Type: TokenEOF}
	}
	return Token{Type: TokenText, Text: normalizeWhitespace(raw)}
}

// literalText re-reads everything from start to the end of the input as
// one plain text run. Used when a tag never terminates.
func (t *Tokenizer) literalText(start int) Token {
	t.pos = len(t.input)
	raw := t.input[start:]
	if strings.TrimSpace(raw) == "" {
		return Token{Type: TokenEOF}
	}
	return Token{Type: TokenText, Text: normalizeWhitespace(raw)}
}

// normalizeWhitespace collapses runs of whitespace to a single space,
// preserving a single space at each boundary. "Hello <strong>world" must
// keep the space after "Hello" or the words fuse.
func normalizeWhitespace(s string) string {
	hasLeading := len(s) > 0 && unicode.IsSpace(rune(s[0]))
	hasTrailing := len(s) > 0 && unicode.IsSpace(rune(s[len(s)-1]))

	fields := strings.Fields(s)
	if len(fields) == 0 {
		if hasLeading || hasTrailing {
			return " "
		}
		return ""
	}

	result := strings.Join(fields, " ")
	if hasLeading {
		result = " " + result
	}
	if hasTrailing {
		result = result + " "
	}
	return result
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(rune(t.input[t.pos])) {
		t.pos++
	}
}

// skipTo advances to the next occurrence of target and reports whether
// one was found before the end of the input.
func (t *Tokenizer) skipTo(target byte) bool {
	for t.pos < len(t.input) && t.input[t.pos] != target {
		t.pos++
	}
	return t.pos < len(t.input)
}

// ReadRawUntil reads raw content until the closing end tag is found (e.g.
// </script>). This is used for raw text elements like <script> and <style>
// where '<' does not start a new tag.
func (t *Tokenizer) ReadRawUntil(endTag string) string {
	needle := "</" + endTag + ">"
	needleLower := strings.ToLower(needle)
	start := t.pos
	for t.pos+len(needle) <= len(t.input) {
		// Case-insensitive match for the end tag
		if strings.ToLower(t.input[t.pos:t.pos+len(needle)]) == needleLower {
			content := t.input[start:t.pos]
			t.pos += len(needle)
			return content
		}
		t.pos++
	}
	// No closing tag found: consume everything remaining
	content := t.input[start:]
	t.pos = len(t.input)
	return content
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isTagNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isAttributeNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_' || c == ':' || c == '.'
}
