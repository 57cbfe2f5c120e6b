package worldgen

import (
	"log"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/material_fixer/material"
	"github.com/mogaika/material_fixer/scene"
	"github.com/mogaika/material_fixer/shading"
	"github.com/mogaika/material_fixer/utils"
)

type palette struct {
	brick, plaster, glass, frame, roof, metal, bark, leaves, broken, removed *material.Bag
}

func texture(name string) material.Texture {
	return material.Texture{Name: name, Path: "textures/" + name + ".png"}
}

func newPalette(rt shading.Runtime) *palette {
	build := func(b *material.Builder) *material.Bag {
		if rt != nil {
			b.SetSupported(rt.Supports(b.ShadingModel()))
		}
		return b.Build()
	}

	return &palette{
		brick: build(material.NewBuilder("brick", "Standard").
			SetTexture(material.TexMainTex, texture("brick_d")).
			SetTransform(material.TexMainTex, material.Transform{Scale: mgl32.Vec2{4, 2}}).
			SetTexture(material.TexBumpMap, texture("brick_n")).
			SetScalar(material.ScalBumpScale, 0.8).
			SetColor(material.ColColor, mgl32.Vec4{1, 0.92, 0.9, 1}).
			SetScalar(material.ScalMetallic, 0).
			SetScalar(material.ScalGlossiness, 0.25)),
		plaster: build(material.NewBuilder("plaster", "Mobile/Diffuse").
			SetTexture(material.TexMainTex, texture("plaster_d"))),
		glass: build(material.NewBuilder("glass", "Legacy Shaders/Transparent/Diffuse").
			SetColor(material.ColColor, mgl32.Vec4{0.8, 0.9, 1, 0.3}).
			SetDrawOrder(3000)),
		frame: build(material.NewBuilder("window frame", "Universal Render Pipeline/Lit").
			SetColor(material.ColBaseColor, mgl32.Vec4{0.9, 0.9, 0.85, 1}).
			SetScalar(material.ScalSmoothness, 0.4)),
		roof: build(material.NewBuilder("roof tiles", "Standard").
			SetTexture(material.TexAlbedo, texture("roof_d")).
			SetTexture(material.TexOcclusionMap, texture("roof_ao")).
			SetScalar(material.ScalRoughness, 0.7)),
		metal: build(material.NewBuilder("gutter", "Standard (Specular setup)").
			SetColor(material.ColSpecColor, mgl32.Vec4{0.6, 0.6, 0.6, 1}).
			SetTexture(material.TexSpecGlossMap, texture("gutter_s")).
			SetScalar(material.ScalGlossiness, 0.6)),
		bark: build(material.NewBuilder("bark", "Nature/Tree Creator Bark").
			SetTexture(material.TexMainTex, texture("bark_d")).
			SetTexture(material.TexNormalMap, texture("bark_n"))),
		leaves: build(material.NewBuilder("leaves", "Nature/Tree Creator Leaves").
			SetTexture(material.TexMainTex, texture("leaves_d")).
			EnableKeyword(material.KwAlphaTestOn).
			SetScalar(material.ScalCutoff, 0.35)),
		removed: build(material.NewBuilder("neon sign", "Custom/Removed").
			SetColor(material.ColEmissionColor, mgl32.Vec4{1, 0.2, 0.6, 1}).
			SetTexture(material.TexEmissionMap, texture("neon_e"))),
		broken: build(material.NewBuilder("lost material", "Hidden/InternalErrorShader")),
	}
}

// Generate builds a deterministic demo world of buildings. Palette materials
// are shared between surfaces and some slots are left empty. rt decides which
// shading models are supported; nil marks every model supported.
func Generate(seed int64, buildings int, rt shading.Runtime) *scene.Node {
	r := rand.New(rand.NewSource(seed))
	names := utils.NewRandomNameGenerator(seed)
	p := newPalette(rt)

	// maybe returns nil for roughly one slot out of eight
	maybe := func(b *material.Bag) *material.Bag {
		if r.Intn(8) == 0 {
			return nil
		}
		return b
	}
	pick := func(list ...*material.Bag) *material.Bag {
		return list[r.Intn(len(list))]
	}

	root := scene.NewNode(scene.RootName, nil)
	for i := 0; i < buildings; i++ {
		house := root.AddChild(scene.NewNode(names.RandomName(), nil))

		house.AddChild(scene.NewNode("walls", scene.NewSurface(
			pick(p.brick, p.plaster), maybe(p.plaster))))

		windows := house.AddChild(scene.NewNode("windows", nil))
		for w, count := 0, 1+r.Intn(4); w < count; w++ {
			windows.AddChild(scene.NewNode(names.RandomName(), scene.NewSurface(p.glass, p.frame)))
		}

		house.AddChild(scene.NewNode("roof", scene.NewSurface(p.roof, maybe(p.metal))))

		if r.Intn(2) == 0 {
			garden := house.AddChild(scene.NewNode("garden", nil))
			for t, count := 0, 1+r.Intn(3); t < count; t++ {
				garden.AddChild(scene.NewNode(names.RandomName(), scene.NewSurface(p.bark, p.leaves)))
			}
		}

		if r.Intn(4) == 0 {
			house.AddChild(scene.NewNode("sign", scene.NewSurface(pick(p.removed, p.broken))))
		}
	}

	log.Printf("[worldgen] seed %d: %d buildings, %d surfaces", seed, buildings, len(root.Surfaces()))
	return root
}
