package scene

import (
	"strings"
	"sync"

	"github.com/mogaika/material_fixer/material"
	"github.com/mogaika/material_fixer/migrate"
)

// Surface is a renderable with an ordered list of material slots. Readers
// always see either the old or the new list, never a mix.
type Surface struct {
	mu       sync.RWMutex
	slots    []*material.Bag
	revision int
}

func NewSurface(slots ...*material.Bag) *Surface {
	return &Surface{slots: append([]*material.Bag(nil), slots...)}
}

func (s *Surface) Materials() []*material.Bag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*material.Bag(nil), s.slots...)
}

func (s *Surface) SetMaterials(slots []*material.Bag) {
	copied := append([]*material.Bag(nil), slots...)
	s.mu.Lock()
	s.slots = copied
	s.revision++
	s.mu.Unlock()
}

// Revision counts SetMaterials calls.
func (s *Surface) Revision() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

type Node struct {
	Name    string
	Surface *Surface

	Parent *Node
	Childs []*Node
}

func NewNode(name string, surface *Surface) *Node {
	return &Node{Name: name, Surface: surface}
}

func (n *Node) AddChild(child *Node) *Node {
	child.Parent = n
	n.Childs = append(n.Childs, child)
	return child
}

// Walk visits n and its subtree depth first, parents before children.
// Returning false from fn skips the children of that node.
func (n *Node) Walk(fn func(n *Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Childs {
		c.Walk(fn)
	}
}

func (n *Node) Surfaces() []migrate.Surface {
	var list []migrate.Surface
	n.Walk(func(n *Node) bool {
		if n.Surface != nil {
			list = append(list, n.Surface)
		}
		return true
	})
	return list
}

func (n *Node) Path() string {
	if n.Parent == nil {
		return n.Name
	}
	return n.Parent.Path() + "/" + n.Name
}

// Find resolves a slash separated path of child names below n.
func (n *Node) Find(path string) *Node {
	cur := n
	for _, name := range strings.Split(strings.Trim(path, "/"), "/") {
		if name == "" {
			continue
		}
		var next *Node
		for _, c := range cur.Childs {
			if c.Name == name {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// Materials returns every distinct bag referenced below n in walk order.
func (n *Node) Materials() []*material.Bag {
	seen := make(map[*material.Bag]struct{})
	var list []*material.Bag
	for _, s := range n.Surfaces() {
		for _, b := range s.Materials() {
			if b == nil {
				continue
			}
			if _, ok := seen[b]; !ok {
				seen[b] = struct{}{}
				list = append(list, b)
			}
		}
	}
	return list
}
