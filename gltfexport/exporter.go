package gltfexport

import (
	"io"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"

	"github.com/mogaika/material_fixer/material"
	"github.com/mogaika/material_fixer/migrate"
	"github.com/mogaika/material_fixer/scene"
)

const ExtTextureTransform = "KHR_texture_transform"

// Exporter writes migrated materials and the node tree referencing them into
// a glTF document. Every bag becomes one material and every texture path one
// image, no matter how many slots share it.
type Exporter struct {
	Doc *gltf.Document

	materials map[*material.Bag]uint32
	textures  map[string]uint32
	sampler   *uint32
}

func NewExporter() *Exporter {
	return &Exporter{
		Doc:       gltf.NewDocument(),
		materials: make(map[*material.Bag]uint32),
		textures:  make(map[string]uint32),
	}
}

func float(v float32) *float32 {
	return &v
}

func textureURI(t material.Texture) string {
	if t.Path != "" {
		return t.Path
	}
	return t.Name + ".png"
}

func (e *Exporter) defaultSampler() uint32 {
	if e.sampler == nil {
		e.sampler = gltf.Index(uint32(len(e.Doc.Samplers)))
		e.Doc.Samplers = append(e.Doc.Samplers, &gltf.Sampler{
			MinFilter: gltf.MinLinear,
			MagFilter: gltf.MagLinear,
			WrapS:     gltf.WrapRepeat,
			WrapT:     gltf.WrapRepeat,
		})
	}
	return *e.sampler
}

// AddTexture returns the texture index for t, adding image and texture on
// first use.
func (e *Exporter) AddTexture(t material.Texture) uint32 {
	uri := textureURI(t)
	if id, ok := e.textures[uri]; ok {
		return id
	}

	imageIndex := uint32(len(e.Doc.Images))
	e.Doc.Images = append(e.Doc.Images, &gltf.Image{
		Name: t.Name,
		URI:  uri,
	})

	id := uint32(len(e.Doc.Textures))
	e.Doc.Textures = append(e.Doc.Textures, &gltf.Texture{
		Name:    t.Name,
		Sampler: gltf.Index(e.defaultSampler()),
		Source:  gltf.Index(imageIndex),
	})
	e.textures[uri] = id
	return id
}

func (e *Exporter) useExtension(name string) {
	for _, ext := range e.Doc.ExtensionsUsed {
		if ext == name {
			return
		}
	}
	e.Doc.ExtensionsUsed = append(e.Doc.ExtensionsUsed, name)
}

// textureTransform converts tiling to KHR_texture_transform, whose V axis
// points down.
func textureTransform(t material.Transform) map[string]interface{} {
	return map[string]interface{}{
		"scale":  [2]float32{t.Scale.X(), t.Scale.Y()},
		"offset": [2]float32{t.Offset.X(), 1 - t.Scale.Y() - t.Offset.Y()},
	}
}

func (e *Exporter) textureInfo(b *material.Bag, k material.TextureKey) *gltf.TextureInfo {
	t, ok := b.Texture(k)
	if !ok {
		return nil
	}
	info := &gltf.TextureInfo{Index: e.AddTexture(t)}
	if tr, ok := b.Transform(k); ok && !tr.IsIdentity() {
		info.Extensions = gltf.Extensions{ExtTextureTransform: textureTransform(tr)}
		e.useExtension(ExtTextureTransform)
	}
	return info
}

func clamp01(v float32) float32 {
	return mgl32.Clamp(v, 0, 1)
}

// AddMaterial returns the material index for b. Bags are expected to be
// migrated already; properties of other shading models are ignored.
func (e *Exporter) AddMaterial(b *material.Bag) uint32 {
	if id, ok := e.materials[b]; ok {
		return id
	}

	pbr := &gltf.PBRMetallicRoughness{}
	if c, ok := b.Color(material.ColBaseColor); ok {
		factor := [4]float32(c)
		pbr.BaseColorFactor = &factor
	}
	pbr.BaseColorTexture = e.textureInfo(b, material.TexBaseMap)

	metallic, _ := b.Scalar(material.ScalMetallic)
	pbr.MetallicFactor = float(clamp01(metallic))
	smoothness, ok := b.Scalar(material.ScalSmoothness)
	if !ok {
		smoothness = 0.5
	}
	pbr.RoughnessFactor = float(clamp01(1 - smoothness))
	pbr.MetallicRoughnessTexture = e.textureInfo(b, material.TexMetallicGloss)

	m := &gltf.Material{
		Name:                 b.Name(),
		PBRMetallicRoughness: pbr,
	}

	if t, ok := b.Texture(material.TexBumpMap); ok {
		m.NormalTexture = &gltf.NormalTexture{Index: gltf.Index(e.AddTexture(t))}
		if scale, ok := b.Scalar(material.ScalBumpScale); ok {
			m.NormalTexture.Scale = float(scale)
		}
	}
	if t, ok := b.Texture(material.TexOcclusionMap); ok {
		m.OcclusionTexture = &gltf.OcclusionTexture{Index: gltf.Index(e.AddTexture(t))}
		if strength, ok := b.Scalar(material.ScalOcclusionStrength); ok {
			m.OcclusionTexture.Strength = float(clamp01(strength))
		}
	}
	if b.HasKeyword(material.KwEmission) {
		if c, ok := b.Color(material.ColEmissionColor); ok {
			m.EmissiveFactor = [3]float32{clamp01(c.X()), clamp01(c.Y()), clamp01(c.Z())}
		}
		m.EmissiveTexture = e.textureInfo(b, material.TexEmissionMap)
	}

	switch migrate.SurfaceTypeOf(b) {
	case migrate.Cutout:
		m.AlphaMode = gltf.AlphaMask
		cutoff, ok := b.Scalar(material.ScalCutoff)
		if !ok {
			cutoff = 0.5
		}
		m.AlphaCutoff = float(cutoff)
		m.DoubleSided = true
	case migrate.Transparent:
		m.AlphaMode = gltf.AlphaBlend
	default:
		m.AlphaMode = gltf.AlphaOpaque
	}

	id := uint32(len(e.Doc.Materials))
	e.Doc.Materials = append(e.Doc.Materials, m)
	e.materials[b] = id
	return id
}

// AddNode adds n and its subtree. Surface slots are listed in the node
// extras as material indices, -1 for an empty slot.
func (e *Exporter) AddNode(n *scene.Node) uint32 {
	node := &gltf.Node{Name: n.Name}
	if n.Surface != nil {
		slots := n.Surface.Materials()
		indices := make([]int, len(slots))
		for i, b := range slots {
			if b == nil {
				indices[i] = -1
			} else {
				indices[i] = int(e.AddMaterial(b))
			}
		}
		node.Extras = map[string]interface{}{"materials": indices}
	}

	id := uint32(len(e.Doc.Nodes))
	e.Doc.Nodes = append(e.Doc.Nodes, node)
	for _, c := range n.Childs {
		node.Children = append(node.Children, e.AddNode(c))
	}
	return id
}

// AddScene adds the tree below root as a root node of the default scene.
func (e *Exporter) AddScene(root *scene.Node) uint32 {
	id := e.AddNode(root)
	if len(e.Doc.Scenes) == 0 {
		e.Doc.Scenes = append(e.Doc.Scenes, &gltf.Scene{Name: root.Name})
		e.Doc.Scene = gltf.Index(0)
	}
	e.Doc.Scenes[0].Nodes = append(e.Doc.Scenes[0].Nodes, id)
	log.Printf("[gltf] exported %d nodes, %d materials, %d textures",
		len(e.Doc.Nodes), len(e.Doc.Materials), len(e.Doc.Textures))
	return id
}

func (e *Exporter) Save(path string) error {
	if err := gltf.Save(e.Doc, path); err != nil {
		return errors.Wrapf(err, "Failed to save gltf %q", path)
	}
	return nil
}

func (e *Exporter) Encode(w io.Writer, binary bool) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = binary
	if err := encoder.Encode(e.Doc); err != nil {
		return errors.Wrapf(err, "Failed to encode gltf")
	}
	return nil
}
