package scene

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mogaika/material_fixer/material"
	"github.com/mogaika/material_fixer/shading"
)

const RootName = "scene"

// File is the YAML layout of a scene: a material library and a node tree
// whose slots name library entries. A null or empty slot name is an empty
// slot.
type File struct {
	Materials map[string]material.Description `yaml:"materials"`
	Nodes     []NodeFile                      `yaml:"nodes"`
}

type NodeFile struct {
	Name      string     `yaml:"name"`
	Materials []*string  `yaml:"materials,omitempty,flow"`
	Childs    []NodeFile `yaml:"children,omitempty"`
}

func Load(path string, rt shading.Runtime) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read scene %q", path)
	}
	root, err := Parse(data, rt)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to load scene %q", path)
	}
	return root, nil
}

// Parse builds the node tree. Slots naming the same library entry share one
// bag. When a material does not say whether its shader is supported, rt
// decides.
func Parse(data []byte, rt shading.Runtime) (*Node, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "Failed to parse scene")
	}

	var supports func(string) bool
	if rt != nil {
		supports = rt.Supports
	}

	library := make(map[string]*material.Bag, len(f.Materials))
	for key, d := range f.Materials {
		if d.Name == "" {
			d.Name = key
		}
		library[key] = material.FromDescription(d, supports)
	}

	root := NewNode(RootName, nil)
	for i := range f.Nodes {
		child, err := buildNode(&f.Nodes[i], library)
		if err != nil {
			return nil, err
		}
		root.AddChild(child)
	}
	log.Printf("[scene] loaded %d materials, %d surfaces", len(library), len(root.Surfaces()))
	return root, nil
}

func buildNode(nf *NodeFile, library map[string]*material.Bag) (*Node, error) {
	n := NewNode(nf.Name, nil)
	if len(nf.Materials) != 0 {
		slots := make([]*material.Bag, len(nf.Materials))
		for i, name := range nf.Materials {
			if name == nil || *name == "" {
				continue
			}
			b, ok := library[*name]
			if !ok {
				return nil, errors.Errorf("node %q slot %d: unknown material %q", nf.Name, i, *name)
			}
			slots[i] = b
		}
		n.Surface = NewSurface(slots...)
	}
	for i := range nf.Childs {
		child, err := buildNode(&nf.Childs[i], library)
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

// Marshal writes the subtree below root back to YAML. Every distinct bag
// becomes one library entry.
func Marshal(root *Node) ([]byte, error) {
	f := File{Materials: make(map[string]material.Description)}

	keys := make(map[*material.Bag]string)
	used := make(map[string]struct{})
	for _, b := range root.Materials() {
		key := b.Name()
		for i := 2; ; i++ {
			if _, taken := used[key]; !taken && key != "" {
				break
			}
			key = fmt.Sprintf("%s #%d", b.Name(), i)
		}
		used[key] = struct{}{}
		keys[b] = key
		f.Materials[key] = b.Describe()
	}

	for _, c := range root.Childs {
		f.Nodes = append(f.Nodes, marshalNode(c, keys))
	}

	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to marshal scene")
	}
	return data, nil
}

func marshalNode(n *Node, keys map[*material.Bag]string) NodeFile {
	nf := NodeFile{Name: n.Name}
	if n.Surface != nil {
		for _, b := range n.Surface.Materials() {
			if b == nil {
				nf.Materials = append(nf.Materials, nil)
				continue
			}
			key := keys[b]
			nf.Materials = append(nf.Materials, &key)
		}
	}
	for _, c := range n.Childs {
		nf.Childs = append(nf.Childs, marshalNode(c, keys))
	}
	return nf
}

func Save(path string, root *Node) error {
	data, err := Marshal(root)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		return errors.Wrapf(err, "Failed to write scene %q", path)
	}
	return nil
}
