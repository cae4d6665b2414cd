package html

// Parser builds one document tree from the token stream. It keeps an
// explicit stack of open elements; children attach to their parent when
// the open tag arrives, so an unclosed element is already in the tree
// and EOF simply abandons the stack.
type Parser struct {
	tokenizer *Tokenizer
	doc       *Document
	stack     []*Node
}

func NewParser(input string) *Parser {
	return &Parser{
		tokenizer: NewTokenizer(input),
		doc:       NewDocument(),
	}
}

func Parse(input string) *Document {
	return NewParser(input).Parse()
}

func (p *Parser) Parse() *Document {
	p.stack = []*Node{p.doc.Root}

	for {
		token := p.tokenizer.NextToken()
		if token.Type == TokenEOF {
			break
		}

		switch token.Type {
		case TokenStartTag:
			p.startTag(token)
		case TokenEndTag:
			p.closeTag(token.TagName)
		case TokenText:
			if token.Text != "" {
				p.currentParent().AppendText(token.Text)
			}
		case TokenComment, TokenDoctype:
			// Never reach the tree.
		}
	}

	return p.doc
}

func (p *Parser) startTag(token Token) {
	if isSkipSubtree(token.TagName) {
		p.skipSubtree(token)
		return
	}

	// Auto-close <p> when a block-level element is encountered inside it
	if p.isBlockElement(token.TagName) {
		p.autoCloseP()
	}

	node := &Node{
		Type:       ElementNode,
		TagName:    token.TagName,
		Attributes: token.Attributes,
		Children:   make([]*Node, 0),
	}
	p.currentParent().AddChild(node)

	// Void elements never have children; a self-closed tag of any name
	// stays a leaf too.
	if token.SelfClosing || isVoidElement(token.TagName) {
		return
	}
	p.push(node)
}

// skipSubtree consumes and drops everything under a skip-subtree element.
// meta and link carry no content; script and style are raw text elements
// whose body is consumed at the lexical level; head and title swallow
// tokens until the matching end tag, tracking same-name nesting.
func (p *Parser) skipSubtree(token Token) {
	switch token.TagName {
	case "meta", "link":
		return
	case "script", "style":
		if !token.SelfClosing {
			p.tokenizer.ReadRawUntil(token.TagName)
		}
		return
	}

	if token.SelfClosing {
		return
	}
	depth := 1
	for depth > 0 {
		tok := p.tokenizer.NextToken()
		switch tok.Type {
		case TokenEOF:
			return
		case TokenStartTag:
			// Raw text elements keep their lexical rule even inside a
			// discarded subtree, so "</head>" in a script body does not
			// end the skip early.
			if tok.TagName == "script" || tok.TagName == "style" {
				if !tok.SelfClosing {
					p.tokenizer.ReadRawUntil(tok.TagName)
				}
				continue
			}
			if tok.TagName == token.TagName && !tok.SelfClosing {
				depth++
			}
		case TokenEndTag:
			if tok.TagName == token.TagName {
				depth--
			}
		}
	}
}

// currentParent returns the current parent node (top of stack)
func (p *Parser) currentParent() *Node {
	if len(p.stack) == 0 {
		return p.doc.Root
	}
	return p.stack[len(p.stack)-1]
}

// push adds a node to the stack
func (p *Parser) push(node *Node) {
	p.stack = append(p.stack, node)
}

// closeTag pops the stack until the matching tag is found and closed
func (p *Parser) closeTag(tagName string) {
	for i := len(p.stack) - 1; i >= 1; i-- {
		if p.stack[i].TagName == tagName {
			p.stack = p.stack[:i]
			return
		}
	}
	// Tag not found on stack; ignore the end tag
}

// autoCloseP closes an open <p> element if one is on the stack
func (p *Parser) autoCloseP() {
	for i := len(p.stack) - 1; i >= 1; i-- {
		if p.stack[i].TagName == "p" {
			p.stack = p.stack[:i]
			return
		}
		// Don't close past block-level containers
		if p.isBlockElement(p.stack[i].TagName) {
			return
		}
	}
}

// isBlockElement returns true for elements that auto-close <p>
func (p *Parser) isBlockElement(tagName string) bool {
	switch tagName {
	case "address", "article", "aside", "blockquote", "details", "dialog",
		"dd", "div", "dl", "dt", "fieldset", "figcaption", "figure",
		"footer", "form", "h1", "h2", "h3", "h4", "h5", "h6",
		"header", "hgroup", "hr", "li", "main", "nav", "ol",
		"p", "pre", "section", "table", "ul":
		return true
	}
	return false
}

// isVoidElement reports tags that can never have children.
func isVoidElement(tag string) bool {
	switch tag {
	case "br", "hr", "img":
		return true
	}
	return false
}

// isSkipSubtree reports tags whose entire content, nested markup
// included, is discarded rather than parsed into the tree.
func isSkipSubtree(tag string) bool {
	switch tag {
	case "head", "title", "script", "style", "meta", "link":
		return true
	}
	return false
}
