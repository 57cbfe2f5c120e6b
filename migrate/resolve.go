package migrate

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/material_fixer/config"
	"github.com/mogaika/material_fixer/material"
)

// Resolver maps the channels of a source bag onto the target shading model.
// The target also keeps the legacy names it still understands (_MainTex,
// _Color, _Glossiness), since some readers look those up.
type Resolver struct {
	targetModel    string
	specularModels map[string]struct{}
}

func NewResolver(cfg *config.Config) *Resolver {
	r := &Resolver{
		targetModel:    cfg.TargetModel,
		specularModels: make(map[string]struct{}, len(cfg.SpecularModels)),
	}
	for _, m := range cfg.SpecularModels {
		r.specularModels[m] = struct{}{}
	}
	return r
}

// Resolve never fails: a channel missing from src stays unset on the result.
func (r *Resolver) Resolve(src *material.Bag) *material.Builder {
	b := material.NewBuilder(src.Name(), r.targetModel).
		SetDrawOrder(src.DrawOrder())

	r.resolveBase(src, b)
	r.resolveNormal(src, b)
	r.resolveMetallic(src, b)
	r.resolveSmoothness(src, b)
	r.resolveEmission(src, b)
	r.resolveOcclusion(src, b)

	if _, cutoff, ok := first(src.Scalar, cutoffAliases); ok {
		b.SetScalar(material.ScalCutoff, cutoff)
	}
	return b
}

func (r *Resolver) resolveBase(src *material.Bag, b *material.Builder) {
	baseKey, tex, found := first(src.Texture, baseMapAliases)
	if found {
		b.SetTexture(material.TexBaseMap, tex).
			SetTexture(material.TexMainTex, tex)
	}

	if t, ok := baseTransform(src, baseKey, found); ok {
		b.SetTransform(material.TexBaseMap, t).
			SetTransform(material.TexMainTex, t)
	}

	if _, tint, ok := first(src.Color, tintAliases); ok {
		b.SetColor(material.ColBaseColor, tint).
			SetColor(material.ColColor, tint)
	}
}

// baseTransform prefers the tiling of the base map alias that was found,
// then falls back to any base alias carrying a tiling.
func baseTransform(src *material.Bag, baseKey material.TextureKey, found bool) (material.Transform, bool) {
	if found {
		if t, ok := src.Transform(baseKey); ok {
			return t, true
		}
	}
	_, t, ok := first(src.Transform, baseMapAliases)
	return t, ok
}

func (r *Resolver) resolveNormal(src *material.Bag, b *material.Builder) {
	if _, tex, ok := first(src.Texture, normalMapAliases); ok {
		b.SetTexture(material.TexBumpMap, tex).
			EnableKeyword(material.KwNormalMap)
	}
	if _, scale, ok := first(src.Scalar, normalScaleAliases); ok {
		b.SetScalar(material.ScalBumpScale, scale)
	}
}

func (r *Resolver) resolveMetallic(src *material.Bag, b *material.Builder) {
	if _, metallic, ok := first(src.Scalar, metallicAliases); ok {
		b.SetScalar(material.ScalMetallic, metallic)
	}
	if _, tex, ok := first(src.Texture, metallicMaskAliases); ok {
		b.SetTexture(material.TexMetallicGloss, tex).
			EnableKeyword(material.KwMetallicGlossMap)
	}

	specGloss, hasSpecGloss := src.Texture(material.TexSpecGlossMap)
	if _, specular := r.specularModels[src.ShadingModel()]; !specular && !hasSpecGloss {
		b.SetScalar(material.ScalWorkflowMode, 1)
		return
	}

	b.SetScalar(material.ScalWorkflowMode, 0).
		EnableKeyword(material.KwSpecularSetup)
	if c, ok := src.Color(material.ColSpecColor); ok {
		b.SetColor(material.ColSpecColor, c)
	}
	if hasSpecGloss {
		b.SetTexture(material.TexSpecGlossMap, specGloss).
			EnableKeyword(material.KwMetallicGlossMap)
	}
}

func (r *Resolver) resolveSmoothness(src *material.Bag, b *material.Builder) {
	_, smoothness, ok := first(src.Scalar, smoothnessAliases)
	if !ok {
		var roughness float32
		if roughness, ok = src.Scalar(material.ScalRoughness); ok {
			smoothness = 1 - roughness
		}
	}
	if ok {
		b.SetScalar(material.ScalSmoothness, smoothness).
			SetScalar(material.ScalGlossiness, smoothness)
	}
}

func (r *Resolver) resolveEmission(src *material.Bag, b *material.Builder) {
	_, color, hasColor := first(src.Color, emissionColorAliases)
	_, tex, hasMap := first(src.Texture, emissionMapAliases)

	if hasMap {
		b.SetTexture(material.TexEmissionMap, tex)
		if !hasColor {
			color, hasColor = mgl32.Vec4{1, 1, 1, 1}, true
		}
	}
	if hasColor {
		b.SetColor(material.ColEmissionColor, color)
	}
	b.SetKeyword(material.KwEmission, hasMap || (hasColor && !isBlack(color)))
}

func (r *Resolver) resolveOcclusion(src *material.Bag, b *material.Builder) {
	if _, tex, ok := first(src.Texture, occlusionMapAliases); ok {
		b.SetTexture(material.TexOcclusionMap, tex).
			EnableKeyword(material.KwOcclusionMap)
	}
	if _, strength, ok := first(src.Scalar, occlusionStrengthAliases); ok {
		b.SetScalar(material.ScalOcclusionStrength, strength)
	}
}

func isBlack(c mgl32.Vec4) bool {
	return c[0] <= 0 && c[1] <= 0 && c[2] <= 0
}
