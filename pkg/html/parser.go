package html

import (
	"fmt"
	"strings"
)

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

func (p *Parser) Parse() (*Document, error) {
	p.stack = []*Node{p.doc.Root}

	for {
		token, err := p.tokenizer.NextToken()
		if err != nil {
			return nil, fmt.Errorf("tokenizer error: %w", err)
		}
		if token.Type == TokenEOF {
			break
		}

		switch token.Type {
		case TokenStartTag:
			// Scripts are captured for the JS engine, not added to the tree.
			if token.TagName == "script" {
				script := p.tokenizer.ReadRawText("script")
				if strings.TrimSpace(script) != "" {
					p.doc.Scripts = append(p.doc.Scripts, script)
				}
				continue
			}

			node := &Node{
				Type:       ElementNode,
				TagName:    token.TagName,
				Attributes: token.Attributes,
			}
			p.currentParent().AddChild(node)
			if !token.SelfClosing && !isVoidElement(token.TagName) {
				p.stack = append(p.stack, node)
			}

		case TokenText:
			if strings.TrimSpace(token.Text) != "" {
				p.currentParent().AppendText(token.Text)
			}

		case TokenEndTag:
			if token.TagName == "script" {
				continue
			}
			p.closeTag(token.TagName)
		}
	}

	return p.doc, nil
}

func (p *Parser) currentParent() *Node {
	return p.stack[len(p.stack)-1]
}

// closeTag pops the stack until the matching open tag is found and closed.
// Unmatched end tags are ignored.
func (p *Parser) closeTag(tagName string) {
	for i := len(p.stack) - 1; i >= 1; i-- {
		if p.stack[i].TagName == tagName {
			p.stack = p.stack[:i]
			return
		}
	}
}

func isVoidElement(tagName string) bool {
	switch tagName {
	case "br", "hr", "img", "input", "meta", "link",
		"area", "base", "col", "embed", "source", "track", "wbr":
		return true
	}
	return false
}

func Parse(input string) (*Document, error) {
	return NewParser(input).Parse()
}
