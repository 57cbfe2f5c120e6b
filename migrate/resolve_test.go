package migrate_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/material_fixer/config"
	"github.com/mogaika/material_fixer/material"
	"github.com/mogaika/material_fixer/migrate"
)

func resolve(src *material.Bag) *material.Bag {
	return migrate.NewResolver(config.Default()).Resolve(src).Build()
}

func TestResolveStandard(t *testing.T) {
	albedo := material.Texture{Name: "brick_albedo", Path: "textures/brick.png"}
	src := material.NewBuilder("brick", "Standard").
		SetTexture(material.TexMainTex, albedo).
		SetColor(material.ColColor, mgl32.Vec4{1, 0, 0, 1}).
		SetScalar(material.ScalMetallic, 0.2).
		SetScalar(material.ScalGlossiness, 0.8).
		SetDrawOrder(2000).
		Build()

	dst := resolve(src)

	assert.Equal(t, "Universal Render Pipeline/Lit", dst.ShadingModel())
	assert.Equal(t, "brick", dst.Name())
	assert.True(t, dst.Supported())
	assert.Equal(t, 2000, dst.DrawOrder())

	for _, k := range []material.TextureKey{material.TexBaseMap, material.TexMainTex} {
		tex, ok := dst.Texture(k)
		require.True(t, ok, "texture %v", k)
		assert.Equal(t, albedo, tex)
	}
	for _, k := range []material.ColorKey{material.ColBaseColor, material.ColColor} {
		c, ok := dst.Color(k)
		require.True(t, ok, "color %v", k)
		assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, c)
	}

	metallic, ok := dst.Scalar(material.ScalMetallic)
	require.True(t, ok)
	assert.Equal(t, float32(0.2), metallic)

	for _, k := range []material.ScalarKey{material.ScalSmoothness, material.ScalGlossiness} {
		v, ok := dst.Scalar(k)
		require.True(t, ok, "scalar %v", k)
		assert.Equal(t, float32(0.8), v)
	}

	workflow, _ := dst.Scalar(material.ScalWorkflowMode)
	assert.Equal(t, float32(1), workflow)
	assert.False(t, dst.HasKeyword(material.KwEmission))
	assert.False(t, dst.HasKeyword(material.KwNormalMap))
}

func TestResolveBaseMapPriority(t *testing.T) {
	var tests = []struct {
		textures map[material.TextureKey]string
		want     string
	}{
		{map[material.TextureKey]string{material.TexBaseMap: "base", material.TexMainTex: "main"}, "base"},
		{map[material.TextureKey]string{material.TexMainTex: "main", material.TexAlbedo: "albedo"}, "main"},
		{map[material.TextureKey]string{material.TexAlbedo: "albedo", material.TexDiffuse: "diffuse"}, "albedo"},
		{map[material.TextureKey]string{material.TexAlbedoMap: "albedomap", material.TexDiffuseMap: "diffusemap"}, "albedomap"},
		{map[material.TextureKey]string{material.TexDiffuseMap: "diffusemap", material.TexDiffuse: "diffuse"}, "diffuse"},
		{map[material.TextureKey]string{material.TexDiffuseMap: "diffusemap"}, "diffusemap"},
	}
	for _, test := range tests {
		b := material.NewBuilder("priority", "Standard")
		for k, name := range test.textures {
			b.SetTexture(k, material.Texture{Name: name})
		}
		dst := resolve(b.Build())

		tex, ok := dst.Texture(material.TexBaseMap)
		require.True(t, ok)
		assert.Equal(t, test.want, tex.Name, "textures %v", test.textures)
	}
}

func TestResolveMissingChannelsStayUnset(t *testing.T) {
	dst := resolve(material.NewBuilder("bare", "Mobile/Diffuse").Build())

	assert.Equal(t, []material.TextureKey{}, dst.TextureKeys())
	_, ok := dst.Color(material.ColBaseColor)
	assert.False(t, ok)
	_, ok = dst.Scalar(material.ScalMetallic)
	assert.False(t, ok)
	_, ok = dst.Scalar(material.ScalSmoothness)
	assert.False(t, ok)
	_, ok = dst.Transform(material.TexBaseMap)
	assert.False(t, ok)
	assert.Equal(t, material.DrawOrderFromModel, dst.DrawOrder())
}

func TestResolveTintAliases(t *testing.T) {
	src := material.NewBuilder("tint", "Particles/Alpha Blended").
		SetColor(material.ColTintColor, mgl32.Vec4{0.5, 0.5, 1, 0.5}).
		SetColor(material.ColMainColor, mgl32.Vec4{0, 0, 0, 1}).
		Build()

	c, ok := resolve(src).Color(material.ColBaseColor)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec4{0.5, 0.5, 1, 0.5}, c)
}

func TestResolveSmoothness(t *testing.T) {
	var tests = []struct {
		scalars map[material.ScalarKey]float32
		want    float32
		ok      bool
	}{
		{map[material.ScalarKey]float32{material.ScalSmoothness: 0.3, material.ScalGlossiness: 0.9}, 0.3, true},
		{map[material.ScalarKey]float32{material.ScalGlossiness: 0.9, material.ScalGloss: 0.1}, 0.9, true},
		{map[material.ScalarKey]float32{material.ScalGloss: 0.1, material.ScalShininess: 0.7}, 0.1, true},
		{map[material.ScalarKey]float32{material.ScalShininess: 0.7}, 0.7, true},
		{map[material.ScalarKey]float32{material.ScalRoughness: 0.25}, 0.75, true},
		{map[material.ScalarKey]float32{material.ScalRoughness: 0.25, material.ScalGloss: 0.4}, 0.4, true},
		{map[material.ScalarKey]float32{}, 0, false},
	}
	for _, test := range tests {
		b := material.NewBuilder("smooth", "Standard")
		for k, v := range test.scalars {
			b.SetScalar(k, v)
		}
		dst := resolve(b.Build())

		v, ok := dst.Scalar(material.ScalSmoothness)
		assert.Equal(t, test.ok, ok, "scalars %v", test.scalars)
		assert.InDelta(t, test.want, v, 1e-6, "scalars %v", test.scalars)

		legacy, _ := dst.Scalar(material.ScalGlossiness)
		assert.Equal(t, v, legacy)
	}
}

func TestResolveNormalAndOcclusion(t *testing.T) {
	src := material.NewBuilder("rock", "Legacy Shaders/Bumped Diffuse").
		SetTexture(material.TexNormalMap, material.Texture{Name: "rock_n"}).
		SetTexture(material.TexNormal, material.Texture{Name: "ignored"}).
		SetScalar(material.ScalNormalScale, 0.5).
		SetTexture(material.TexAOMap, material.Texture{Name: "rock_ao"}).
		SetScalar(material.ScalAOStrength, 0.7).
		Build()

	dst := resolve(src)

	tex, ok := dst.Texture(material.TexBumpMap)
	require.True(t, ok)
	assert.Equal(t, "rock_n", tex.Name)
	scale, _ := dst.Scalar(material.ScalBumpScale)
	assert.Equal(t, float32(0.5), scale)
	assert.True(t, dst.HasKeyword(material.KwNormalMap))

	tex, ok = dst.Texture(material.TexOcclusionMap)
	require.True(t, ok)
	assert.Equal(t, "rock_ao", tex.Name)
	strength, _ := dst.Scalar(material.ScalOcclusionStrength)
	assert.Equal(t, float32(0.7), strength)
	assert.True(t, dst.HasKeyword(material.KwOcclusionMap))
}

func TestResolveMetallicMask(t *testing.T) {
	src := material.NewBuilder("metal", "Standard").
		SetScalar(material.ScalMetalness, 1).
		SetTexture(material.TexMetallicMap, material.Texture{Name: "metal_mask"}).
		Build()

	dst := resolve(src)

	metallic, ok := dst.Scalar(material.ScalMetallic)
	require.True(t, ok)
	assert.Equal(t, float32(1), metallic)
	tex, ok := dst.Texture(material.TexMetallicGloss)
	require.True(t, ok)
	assert.Equal(t, "metal_mask", tex.Name)
	assert.True(t, dst.HasKeyword(material.KwMetallicGlossMap))
}

func TestResolveEmission(t *testing.T) {
	glow := material.Texture{Name: "glow"}

	var tests = []struct {
		name      string
		colors    map[material.ColorKey]mgl32.Vec4
		textures  map[material.TextureKey]material.Texture
		enabled   bool
		wantColor *mgl32.Vec4
	}{
		{"none", nil, nil, false, nil},
		{"black color", map[material.ColorKey]mgl32.Vec4{material.ColEmissionColor: {0, 0, 0, 1}}, nil, false, &mgl32.Vec4{0, 0, 0, 1}},
		{"colored", map[material.ColorKey]mgl32.Vec4{material.ColEmissiveColor: {1, 0.5, 0, 1}}, nil, true, &mgl32.Vec4{1, 0.5, 0, 1}},
		{"map only", nil, map[material.TextureKey]material.Texture{material.TexIllum: glow}, true, &mgl32.Vec4{1, 1, 1, 1}},
		{"map and black", map[material.ColorKey]mgl32.Vec4{material.ColEmission: {0, 0, 0, 1}},
			map[material.TextureKey]material.Texture{material.TexEmissionMap: glow}, true, &mgl32.Vec4{0, 0, 0, 1}},
	}
	for _, test := range tests {
		b := material.NewBuilder(test.name, "Legacy Shaders/Self-Illumin/Diffuse")
		for k, v := range test.colors {
			b.SetColor(k, v)
		}
		for k, v := range test.textures {
			b.SetTexture(k, v)
		}
		dst := resolve(b.Build())

		assert.Equal(t, test.enabled, dst.HasKeyword(material.KwEmission), test.name)
		c, ok := dst.Color(material.ColEmissionColor)
		if test.wantColor == nil {
			assert.False(t, ok, test.name)
		} else {
			assert.True(t, ok, test.name)
			assert.Equal(t, *test.wantColor, c, test.name)
		}
		_, hasMap := dst.Texture(material.TexEmissionMap)
		assert.Equal(t, len(test.textures) != 0, hasMap, test.name)
	}
}

func TestResolveTilingFollowsFoundAlias(t *testing.T) {
	mainTiling := material.Transform{Scale: mgl32.Vec2{4, 4}, Offset: mgl32.Vec2{0.5, 0}}
	baseTiling := material.Transform{Scale: mgl32.Vec2{2, 2}}

	// _BaseMap has a tiling but no texture: the tiling of the found _MainTex wins
	src := material.NewBuilder("floor", "Standard").
		SetTexture(material.TexMainTex, material.Texture{Name: "floor"}).
		SetTransform(material.TexMainTex, mainTiling).
		SetTransform(material.TexBaseMap, baseTiling).
		Build()

	dst := resolve(src)
	for _, k := range []material.TextureKey{material.TexBaseMap, material.TexMainTex} {
		tr, ok := dst.Transform(k)
		require.True(t, ok)
		assert.Equal(t, mainTiling, tr)
	}

	// found alias without tiling falls back to the first alias that has one
	src = material.NewBuilder("floor", "Standard").
		SetTexture(material.TexAlbedo, material.Texture{Name: "floor"}).
		SetTransform(material.TexMainTex, mainTiling).
		Build()

	tr, ok := resolve(src).Transform(material.TexBaseMap)
	require.True(t, ok)
	assert.Equal(t, mainTiling, tr)
}

func TestResolveSpecularWorkflow(t *testing.T) {
	src := material.NewBuilder("chrome", "Standard (Specular setup)").
		SetColor(material.ColSpecColor, mgl32.Vec4{0.9, 0.9, 0.9, 1}).
		SetTexture(material.TexSpecGlossMap, material.Texture{Name: "chrome_spec"}).
		Build()

	dst := resolve(src)

	workflow, ok := dst.Scalar(material.ScalWorkflowMode)
	require.True(t, ok)
	assert.Equal(t, float32(0), workflow)
	assert.True(t, dst.HasKeyword(material.KwSpecularSetup))
	c, ok := dst.Color(material.ColSpecColor)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec4{0.9, 0.9, 0.9, 1}, c)
	_, ok = dst.Texture(material.TexSpecGlossMap)
	assert.True(t, ok)
}

func TestResolveCutoffAlias(t *testing.T) {
	src := material.NewBuilder("leaves", "Nature/Tree Creator Leaves").
		SetScalar(material.ScalAlphaCutoff, 0.3).
		Build()

	cutoff, ok := resolve(src).Scalar(material.ScalCutoff)
	require.True(t, ok)
	assert.Equal(t, float32(0.3), cutoff)
}

func TestResolveIsPure(t *testing.T) {
	src := material.NewBuilder("pure", "Standard").
		SetTexture(material.TexMainTex, material.Texture{Name: "a"}).
		Build()
	before := src.Describe()

	r := migrate.NewResolver(config.Default())
	first, second := r.Resolve(src).Build(), r.Resolve(src).Build()

	assert.Equal(t, before, src.Describe())
	assert.NotSame(t, first, second)
	assert.Equal(t, first.Describe(), second.Describe())
}
