package html

import (
	"fmt"
	"sort"
	"strings"

	tp "github.com/xlab/treeprint"
)

type Node struct {
	Type       NodeType
	TagName    string
	Attributes map[string]string
	Text       string
	Children   []*Node
	Parent     *Node
}

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// Document wraps the single root of a parsed page. The root is always a
// synthesized "document" element; a source-level <html> tag becomes an
// ordinary child of it.
type Document struct {
	Root *Node
}

func NewDocument() *Document {
	return &Document{
		Root: &Node{
			Type:     ElementNode,
			TagName:  "document",
			Children: make([]*Node, 0),
		},
	}
}

func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

// AddChild adds a child node and sets up the parent relationship
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// AppendText creates a text node and adds it as a child
func (n *Node) AppendText(text string) {
	if text == "" {
		return
	}
	textNode := &Node{
		Type:   TextNode,
		Text:   text,
		Parent: n,
	}
	n.Children = append(n.Children, textNode)
}

// DumpTree returns an indented rendering of the tree for debugging.
func (d *Document) DumpTree() string {
	tree := tp.NewWithRoot(d.Root.TagName)
	for _, child := range d.Root.Children {
		dumpNode(tree, child)
	}
	return tree.String()
}

func dumpNode(branch tp.Tree, n *Node) {
	if n.Type == TextNode {
		branch.AddNode(fmt.Sprintf("%q", n.Text))
		return
	}
	label := n.TagName
	if len(n.Attributes) > 0 {
		// Sort attributes for deterministic output
		keys := make([]string, 0, len(n.Attributes))
		for k := range n.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var sb strings.Builder
		sb.WriteString(n.TagName)
		for _, k := range keys {
			fmt.Fprintf(&sb, " %s=%q", k, n.Attributes[k])
		}
		label = sb.String()
	}
	if len(n.Children) == 0 {
		branch.AddNode(label)
		return
	}
	sub := branch.AddBranch(label)
	for _, child := range n.Children {
		dumpNode(sub, child)
	}
}
