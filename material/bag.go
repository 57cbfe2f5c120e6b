package material

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type Texture struct {
	Name string `yaml:"name" json:"name"`
	Path string `yaml:"path,omitempty" json:"path,omitempty"`
}

// Transform is the tiling/offset pair of one texture property.
type Transform struct {
	Scale  mgl32.Vec2
	Offset mgl32.Vec2
}

var IdentityTransform = Transform{Scale: mgl32.Vec2{1, 1}}

func (t Transform) IsIdentity() bool {
	return t == IdentityTransform
}

// Bag is one material: a shading model identifier plus its named properties.
// A Bag is never changed after Build, so the same pointer can be shared by
// many surfaces and by the migration cache.
type Bag struct {
	id           uuid.UUID
	name         string
	shadingModel string
	supported    bool
	drawOrder    int

	textures   map[TextureKey]Texture
	transforms map[TextureKey]Transform
	colors     map[ColorKey]mgl32.Vec4
	scalars    map[ScalarKey]float32
	keywords   map[Keyword]struct{}
}

func (b *Bag) ID() uuid.UUID        { return b.id }
func (b *Bag) Name() string         { return b.name }
func (b *Bag) ShadingModel() string { return b.shadingModel }
func (b *Bag) Supported() bool      { return b.supported }
func (b *Bag) DrawOrder() int       { return b.drawOrder }

func (b *Bag) Texture(k TextureKey) (Texture, bool) {
	t, ok := b.textures[k]
	return t, ok
}

func (b *Bag) Transform(k TextureKey) (Transform, bool) {
	t, ok := b.transforms[k]
	return t, ok
}

func (b *Bag) Color(k ColorKey) (mgl32.Vec4, bool) {
	c, ok := b.colors[k]
	return c, ok
}

func (b *Bag) Scalar(k ScalarKey) (float32, bool) {
	v, ok := b.scalars[k]
	return v, ok
}

func (b *Bag) HasKeyword(k Keyword) bool {
	_, ok := b.keywords[k]
	return ok
}

// Empty reports whether the bag carries no property values at all.
// Keywords and draw order alone do not count.
func (b *Bag) Empty() bool {
	return len(b.textures) == 0 && len(b.colors) == 0 && len(b.scalars) == 0
}

func (b *Bag) TextureKeys() []TextureKey {
	keys := make([]TextureKey, 0, len(b.textures))
	for k := range b.textures {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (b *Bag) TransformKeys() []TextureKey {
	keys := make([]TextureKey, 0, len(b.transforms))
	for k := range b.transforms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (b *Bag) ColorKeys() []ColorKey {
	keys := make([]ColorKey, 0, len(b.colors))
	for k := range b.colors {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (b *Bag) ScalarKeys() []ScalarKey {
	keys := make([]ScalarKey, 0, len(b.scalars))
	for k := range b.scalars {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (b *Bag) Keywords() []Keyword {
	keys := make([]Keyword, 0, len(b.keywords))
	for k := range b.keywords {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (b *Bag) String() string {
	if b == nil {
		return "<nil material>"
	}
	return b.name + " (" + b.shadingModel + ")"
}
