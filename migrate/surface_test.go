package migrate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mogaika/material_fixer/config"
	"github.com/mogaika/material_fixer/material"
	"github.com/mogaika/material_fixer/migrate"
)

func TestResolveSurfaceType(t *testing.T) {
	var tests = []struct {
		name      string
		mode      *float32
		drawOrder int
		alphaTest bool
		want      migrate.SurfaceType
	}{
		{"nothing", nil, material.DrawOrderFromModel, false, migrate.Opaque},
		{"geometry order", nil, 2000, false, migrate.Opaque},
		{"mode opaque", f32(0), 2000, false, migrate.Opaque},
		{"mode cutout", f32(1), material.DrawOrderFromModel, false, migrate.Cutout},
		{"mode fade", f32(2), material.DrawOrderFromModel, false, migrate.Transparent},
		{"mode transparent", f32(3), material.DrawOrderFromModel, false, migrate.Transparent},
		{"alpha test band", nil, 2450, false, migrate.Cutout},
		{"alpha test band top", nil, 2999, false, migrate.Cutout},
		{"transparent band", nil, 3000, false, migrate.Transparent},
		{"overlay", nil, 4000, false, migrate.Transparent},
		{"keyword", nil, material.DrawOrderFromModel, true, migrate.Cutout},
		{"keyword vs transparent order", nil, 3000, true, migrate.Transparent},
		{"cutout mode vs transparent order", f32(1), 3100, false, migrate.Transparent},
		{"transparent mode vs cutout order", f32(3), 2450, true, migrate.Transparent},
		{"cutout mode vs opaque order", f32(1), 2000, false, migrate.Cutout},
	}

	r := migrate.NewSurfaceResolver(config.Default())
	for _, test := range tests {
		b := material.NewBuilder(test.name, "Standard").SetDrawOrder(test.drawOrder)
		if test.mode != nil {
			b.SetScalar(material.ScalMode, *test.mode)
		}
		if test.alphaTest {
			b.EnableKeyword(material.KwAlphaTestOn)
		}

		got, _ := r.Resolve(b.Build())
		assert.Equal(t, test.want, got, test.name)
	}
}

func TestSurfaceVotes(t *testing.T) {
	src := material.NewBuilder("votes", "Standard").
		SetScalar(material.ScalMode, 1).
		SetDrawOrder(3000).
		EnableKeyword(material.KwAlphaTestOn).
		Build()

	got, votes := migrate.NewSurfaceResolver(config.Default()).Resolve(src)

	assert.Equal(t, migrate.Transparent, got)
	assert.Equal(t, []string{migrate.SignalMode, migrate.SignalAlphaTest}, votes.Cutout)
	assert.Equal(t, []string{migrate.SignalDrawOrder}, votes.Transparent)
}

func TestApplySurfaceType(t *testing.T) {
	r := migrate.NewSurfaceResolver(config.Default())

	var tests = []struct {
		typ       migrate.SurfaceType
		drawOrder int
		wantOrder int
		scalars   map[material.ScalarKey]float32
		keywords  []material.Keyword
	}{
		{migrate.Opaque, 2000, 2000, map[material.ScalarKey]float32{
			material.ScalSurface: 0, material.ScalAlphaClip: 0, material.ScalZWrite: 1,
			material.ScalSrcBlend: 1, material.ScalDstBlend: 0,
		}, []material.Keyword{}},
		{migrate.Cutout, material.DrawOrderFromModel, 2450, map[material.ScalarKey]float32{
			material.ScalSurface: 0, material.ScalAlphaClip: 1, material.ScalZWrite: 1, material.ScalCutoff: 0.5,
		}, []material.Keyword{material.KwAlphaTestOn}},
		{migrate.Cutout, 2460, 2460, nil, []material.Keyword{material.KwAlphaTestOn}},
		{migrate.Cutout, 3000, 2450, nil, []material.Keyword{material.KwAlphaTestOn}},
		{migrate.Transparent, 2450, 3000, map[material.ScalarKey]float32{
			material.ScalSurface: 1, material.ScalAlphaClip: 0, material.ScalZWrite: 0,
			material.ScalSrcBlend: 5, material.ScalDstBlend: 10,
		}, []material.Keyword{material.KwSurfaceTransparent}},
		{migrate.Transparent, 3100, 3100, nil, []material.Keyword{material.KwSurfaceTransparent}},
	}

	for _, test := range tests {
		b := material.NewBuilder("apply", "Universal Render Pipeline/Lit").
			SetDrawOrder(test.drawOrder).
			EnableKeyword(material.KwAlphaTestOn)
		if test.typ == migrate.Cutout {
			b.DisableKeyword(material.KwAlphaTestOn)
		}
		r.Apply(b, test.typ)
		bag := b.Build()

		assert.Equal(t, test.wantOrder, bag.DrawOrder(), "%v", test.typ)
		for k, want := range test.scalars {
			got, ok := bag.Scalar(k)
			assert.True(t, ok, "%v %v", test.typ, k)
			assert.Equal(t, want, got, "%v %v", test.typ, k)
		}
		assert.Equal(t, test.keywords, bag.Keywords(), "%v", test.typ)
		assert.Equal(t, test.typ, migrate.SurfaceTypeOf(bag))
	}
}

func TestApplyCutoutKeepsResolvedCutoff(t *testing.T) {
	b := material.NewBuilder("leaves", "Universal Render Pipeline/Lit").
		SetScalar(material.ScalCutoff, 0.3)
	migrate.NewSurfaceResolver(config.Default()).Apply(b, migrate.Cutout)

	cutoff, _ := b.Build().Scalar(material.ScalCutoff)
	assert.Equal(t, float32(0.3), cutoff)
}

func TestSurfaceTypeString(t *testing.T) {
	assert.Equal(t, "opaque", migrate.Opaque.String())
	assert.Equal(t, "cutout", migrate.Cutout.String())
	assert.Equal(t, "transparent", migrate.Transparent.String())
	assert.Equal(t, "SurfaceType(7)", migrate.SurfaceType(7).String())
}

func f32(v float32) *float32 {
	return &v
}
