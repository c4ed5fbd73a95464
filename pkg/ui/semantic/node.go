// Package semantic defines the label/content tree that AI agents read instead
// of pixels. Field names serialize to compact keys to keep payloads small.
package semantic

// Node is one element of the semantic tree.
type Node struct {
	Role          string      `json:"r"`
	ID            string      `json:"id,omitempty"`
	Label         string      `json:"l,omitempty"`
	Content       string      `json:"c,omitempty"`
	Children      []Node      `json:"ch,omitempty"`
	Tags          []string    `json:"t,omitempty"`
	Documentation string      `json:"d,omitempty"`
	Disabled      bool        `json:"dis,omitempty"`
	Hidden        bool        `json:"hid,omitempty"`
	Protected     bool        `json:"p,omitempty"`
	ProtectReason string      `json:"pr,omitempty"`
	Depth         float32     `json:"z,omitempty"` // layer within the parent, not nesting level
	Scale         *[3]float32 `json:"s,omitempty"`
	Color         string      `json:"col,omitempty"`
}

// New creates a node with the given role.
func New(role string) Node {
	return Node{Role: role}
}

// WithID returns n with a stable identifier.
func (n Node) WithID(id string) Node {
	n.ID = id
	return n
}

// WithLabel returns n with a label.
func (n Node) WithLabel(label string) Node {
	n.Label = label
	return n
}

// WithContent returns n with content.
func (n Node) WithContent(content string) Node {
	n.Content = content
	return n
}

// WithColor returns n with a hex color.
func (n Node) WithColor(hex string) Node {
	n.Color = hex
	return n
}

// WithDocumentation returns n with developer documentation.
func (n Node) WithDocumentation(doc string) Node {
	n.Documentation = doc
	return n
}

// WithTag returns n with tag appended. The tag slice is copied so siblings
// derived from the same node never share backing storage.
func (n Node) WithTag(tag string) Node {
	tags := make([]string, 0, len(n.Tags)+1)
	tags = append(tags, n.Tags...)
	n.Tags = append(tags, tag)
	return n
}

// Push returns n with child appended.
func (n Node) Push(child Node) Node {
	return n.Extend(child)
}

// Extend returns n with children appended.
func (n Node) Extend(children ...Node) Node {
	if len(children) == 0 {
		return n
	}
	kids := make([]Node, 0, len(n.Children)+len(children))
	kids = append(kids, n.Children...)
	n.Children = append(kids, children...)
	return n
}

// HasTag reports whether n carries tag.
func (n Node) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FindDeep returns the first node, in depth-first pre-order, that matches.
func (n *Node) FindDeep(match func(*Node) bool) *Node {
	if match(n) {
		return n
	}
	for i := range n.Children {
		if found := n.Children[i].FindDeep(match); found != nil {
			return found
		}
	}
	return nil
}

// FindRole returns the first node with the given role.
func (n *Node) FindRole(role string) *Node {
	return n.FindDeep(func(c *Node) bool { return c.Role == role })
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(node *Node, level int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, level int) {
	if !fn(n, level) {
		return
	}
	for i := range n.Children {
		n.Children[i].walk(fn, level+1)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node, int) bool {
		total++
		return true
	})
	return total
}

// Clone returns a deep copy of n.
func (n Node) Clone() Node {
	out := n
	if n.Tags != nil {
		out.Tags = append([]string(nil), n.Tags...)
	}
	if n.Scale != nil {
		s := *n.Scale
		out.Scale = &s
	}
	if n.Children != nil {
		out.Children = make([]Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}
