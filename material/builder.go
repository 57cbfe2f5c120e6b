package material

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Builder accumulates properties of a new Bag. Build copies everything, so a
// builder may keep being used after Build without touching built bags.
type Builder struct {
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

func NewBuilder(name, shadingModel string) *Builder {
	return &Builder{
		name:         name,
		shadingModel: shadingModel,
		supported:    true,
		drawOrder:    DrawOrderFromModel,
		textures:     make(map[TextureKey]Texture),
		transforms:   make(map[TextureKey]Transform),
		colors:       make(map[ColorKey]mgl32.Vec4),
		scalars:      make(map[ScalarKey]float32),
		keywords:     make(map[Keyword]struct{}),
	}
}

func (b *Builder) SetName(name string) *Builder {
	b.name = name
	return b
}

func (b *Builder) ShadingModel() string {
	return b.shadingModel
}

func (b *Builder) SetSupported(supported bool) *Builder {
	b.supported = supported
	return b
}

func (b *Builder) SetDrawOrder(order int) *Builder {
	b.drawOrder = order
	return b
}

func (b *Builder) DrawOrder() int {
	return b.drawOrder
}

func (b *Builder) SetTexture(k TextureKey, t Texture) *Builder {
	b.textures[k] = t
	return b
}

func (b *Builder) SetTransform(k TextureKey, t Transform) *Builder {
	b.transforms[k] = t
	return b
}

func (b *Builder) SetColor(k ColorKey, c mgl32.Vec4) *Builder {
	b.colors[k] = c
	return b
}

func (b *Builder) SetScalar(k ScalarKey, v float32) *Builder {
	b.scalars[k] = v
	return b
}

func (b *Builder) Scalar(k ScalarKey) (float32, bool) {
	v, ok := b.scalars[k]
	return v, ok
}

func (b *Builder) EnableKeyword(k Keyword) *Builder {
	b.keywords[k] = struct{}{}
	return b
}

func (b *Builder) DisableKeyword(k Keyword) *Builder {
	delete(b.keywords, k)
	return b
}

func (b *Builder) SetKeyword(k Keyword, on bool) *Builder {
	if on {
		return b.EnableKeyword(k)
	}
	return b.DisableKeyword(k)
}

func (b *Builder) Build() *Bag {
	bag := &Bag{
		id:           uuid.New(),
		name:         b.name,
		shadingModel: b.shadingModel,
		supported:    b.supported,
		drawOrder:    b.drawOrder,
		textures:     make(map[TextureKey]Texture, len(b.textures)),
		transforms:   make(map[TextureKey]Transform, len(b.transforms)),
		colors:       make(map[ColorKey]mgl32.Vec4, len(b.colors)),
		scalars:      make(map[ScalarKey]float32, len(b.scalars)),
		keywords:     make(map[Keyword]struct{}, len(b.keywords)),
	}
	for k, v := range b.textures {
		bag.textures[k] = v
	}
	for k, v := range b.transforms {
		bag.transforms[k] = v
	}
	for k, v := range b.colors {
		bag.colors[k] = v
	}
	for k, v := range b.scalars {
		bag.scalars[k] = v
	}
	for k := range b.keywords {
		bag.keywords[k] = struct{}{}
	}
	return bag
}
