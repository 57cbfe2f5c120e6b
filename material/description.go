package material

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Description is the plain value form of a Bag, used in scene files and web
// responses. It carries no identity.
type Description struct {
	Name      string                          `yaml:"name,omitempty" json:"name"`
	Shader    string                          `yaml:"shader" json:"shader"`
	Supported *bool                           `yaml:"supported,omitempty" json:"supported,omitempty"`
	Textures  map[string]Texture              `yaml:"textures,omitempty" json:"textures,omitempty"`
	Tiling    map[string]TransformDescription `yaml:"tiling,omitempty" json:"tiling,omitempty"`
	Colors    map[string][4]float32           `yaml:"colors,omitempty" json:"colors,omitempty"`
	Scalars   map[string]float32              `yaml:"scalars,omitempty" json:"scalars,omitempty"`
	Keywords  []string                        `yaml:"keywords,omitempty" json:"keywords,omitempty"`
	DrawOrder *int                            `yaml:"draw_order,omitempty" json:"draw_order,omitempty"`
}

type TransformDescription struct {
	Scale  [2]float32 `yaml:"scale,flow" json:"scale"`
	Offset [2]float32 `yaml:"offset,flow" json:"offset"`
}

// Describe returns the value form of the bag.
func (b *Bag) Describe() Description {
	supported := b.supported
	drawOrder := b.drawOrder
	d := Description{
		Name:      b.name,
		Shader:    b.shadingModel,
		Supported: &supported,
		DrawOrder: &drawOrder,
	}
	if keys := b.TextureKeys(); len(keys) != 0 {
		d.Textures = make(map[string]Texture, len(keys))
		for _, k := range keys {
			d.Textures[string(k)] = b.textures[k]
		}
	}
	if keys := b.TransformKeys(); len(keys) != 0 {
		d.Tiling = make(map[string]TransformDescription, len(keys))
		for _, k := range keys {
			t := b.transforms[k]
			d.Tiling[string(k)] = TransformDescription{Scale: t.Scale, Offset: t.Offset}
		}
	}
	if keys := b.ColorKeys(); len(keys) != 0 {
		d.Colors = make(map[string][4]float32, len(keys))
		for _, k := range keys {
			d.Colors[string(k)] = b.colors[k]
		}
	}
	if keys := b.ScalarKeys(); len(keys) != 0 {
		d.Scalars = make(map[string]float32, len(keys))
		for _, k := range keys {
			d.Scalars[string(k)] = b.scalars[k]
		}
	}
	for _, kw := range b.Keywords() {
		d.Keywords = append(d.Keywords, string(kw))
	}
	return d
}

// FromDescription builds a new Bag. When the description does not say
// whether its shader is supported, supports decides (nil means supported).
func FromDescription(d Description, supports func(model string) bool) *Bag {
	b := NewBuilder(d.Name, d.Shader)

	switch {
	case d.Supported != nil:
		b.SetSupported(*d.Supported)
	case supports != nil:
		b.SetSupported(supports(d.Shader))
	}
	if d.DrawOrder != nil {
		b.SetDrawOrder(*d.DrawOrder)
	}

	for k, v := range d.Textures {
		b.SetTexture(TextureKey(k), v)
	}
	for k, v := range d.Tiling {
		b.SetTransform(TextureKey(k), Transform{Scale: mgl32.Vec2(v.Scale), Offset: mgl32.Vec2(v.Offset)})
	}
	for k, v := range d.Colors {
		b.SetColor(ColorKey(k), mgl32.Vec4(v))
	}
	for k, v := range d.Scalars {
		b.SetScalar(ScalarKey(k), v)
	}
	for _, kw := range d.Keywords {
		b.EnableKeyword(Keyword(kw))
	}
	return b.Build()
}
