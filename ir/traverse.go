package ir

// Traverse rebuilds the tree rooted at n top down. visit is called on each
// node before its children; the children of the node it returns are then
// replaced by their own traversals. A visit which returns its argument
// unchanged therefore rewrites the original tree in place, while one
// returning Copy(n) leaves it untouched.
func Traverse(n Node, visit func(Node) Node) Node {
	if n == nil {
		return nil
	}
	m := visit(n)
	switch x := m.(type) {
	case *Array:
		for i, it := range x.Items {
			x.Items[i] = Traverse(it, visit).(*Item)
		}
	case *Item:
		x.Key = Traverse(x.Key, visit)
		x.Value = Traverse(x.Value, visit)
	case *Entity:
		x.Value = Traverse(x.Value, visit)
		for i, it := range x.Attributes {
			x.Attributes[i] = Traverse(it, visit).(*Item)
		}
	case *EntityChain:
		for i, e := range x.Chain {
			x.Chain[i] = Traverse(e, visit).(*Entity)
		}
	}
	return m
}

// Walk calls f on n and its descendants in document order, skipping the
// children of nodes for which f returns false.
func Walk(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, f)
	}
}
