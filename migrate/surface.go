package migrate

import (
	"fmt"
	"math"
	"strings"

	"github.com/mogaika/material_fixer/config"
	"github.com/mogaika/material_fixer/material"
)

type SurfaceType int

const (
	Opaque SurfaceType = iota
	Cutout
	Transparent
)

func (t SurfaceType) String() string {
	switch t {
	case Opaque:
		return "opaque"
	case Cutout:
		return "cutout"
	case Transparent:
		return "transparent"
	default:
		return fmt.Sprintf("SurfaceType(%d)", int(t))
	}
}

const (
	SignalMode      = "mode"
	SignalDrawOrder = "draw-order"
	SignalAlphaTest = "alpha-test-keyword"
)

// Votes lists which signals asked for a cutout or a transparent surface.
type Votes struct {
	Cutout      []string
	Transparent []string
}

func (v Votes) String() string {
	return fmt.Sprintf("cutout:[%s] transparent:[%s]",
		strings.Join(v.Cutout, ","), strings.Join(v.Transparent, ","))
}

// Legacy blend factor values.
const (
	blendZero             = 0
	blendOne              = 1
	blendSrcAlpha         = 5
	blendOneMinusSrcAlpha = 10
)

type SurfaceResolver struct {
	alphaTestOrder   int
	transparentOrder int
	defaultCutoff    float32
}

func NewSurfaceResolver(cfg *config.Config) *SurfaceResolver {
	return &SurfaceResolver{
		alphaTestOrder:   cfg.AlphaTestDrawOrder,
		transparentOrder: cfg.TransparentDrawOrder,
		defaultCutoff:    cfg.DefaultCutoff,
	}
}

// Resolve combines the legacy mode scalar, the draw order band and the
// alpha test keyword. A transparent vote from any signal wins over cutout
// votes; no vote at all means opaque.
func (r *SurfaceResolver) Resolve(src *material.Bag) (SurfaceType, Votes) {
	var v Votes

	if mode, ok := src.Scalar(material.ScalMode); ok {
		switch int(math.Round(float64(mode))) {
		case 1:
			v.Cutout = append(v.Cutout, SignalMode)
		case 2, 3:
			v.Transparent = append(v.Transparent, SignalMode)
		}
	}

	switch order := src.DrawOrder(); {
	case order >= r.transparentOrder:
		v.Transparent = append(v.Transparent, SignalDrawOrder)
	case order >= r.alphaTestOrder:
		v.Cutout = append(v.Cutout, SignalDrawOrder)
	}

	if src.HasKeyword(material.KwAlphaTestOn) {
		v.Cutout = append(v.Cutout, SignalAlphaTest)
	}

	switch {
	case len(v.Transparent) != 0:
		return Transparent, v
	case len(v.Cutout) != 0:
		return Cutout, v
	default:
		return Opaque, v
	}
}

// Apply writes the blend, depth and clip settings of t into b and moves the
// draw order into the band of t when it lies outside of it.
func (r *SurfaceResolver) Apply(b *material.Builder, t SurfaceType) {
	switch t {
	case Transparent:
		b.SetScalar(material.ScalSurface, 1).
			SetScalar(material.ScalBlend, 0).
			SetScalar(material.ScalAlphaClip, 0).
			SetScalar(material.ScalSrcBlend, blendSrcAlpha).
			SetScalar(material.ScalDstBlend, blendOneMinusSrcAlpha).
			SetScalar(material.ScalZWrite, 0).
			EnableKeyword(material.KwSurfaceTransparent).
			DisableKeyword(material.KwAlphaTestOn)
		if b.DrawOrder() < r.transparentOrder {
			b.SetDrawOrder(r.transparentOrder)
		}
	case Cutout:
		r.applyOpaque(b)
		b.SetScalar(material.ScalAlphaClip, 1).
			EnableKeyword(material.KwAlphaTestOn)
		if _, ok := b.Scalar(material.ScalCutoff); !ok {
			b.SetScalar(material.ScalCutoff, r.defaultCutoff)
		}
		if order := b.DrawOrder(); order < r.alphaTestOrder || order >= r.transparentOrder {
			b.SetDrawOrder(r.alphaTestOrder)
		}
	default:
		r.applyOpaque(b)
		b.DisableKeyword(material.KwAlphaTestOn)
	}
}

func (r *SurfaceResolver) applyOpaque(b *material.Builder) {
	b.SetScalar(material.ScalSurface, 0).
		SetScalar(material.ScalBlend, 0).
		SetScalar(material.ScalAlphaClip, 0).
		SetScalar(material.ScalSrcBlend, blendOne).
		SetScalar(material.ScalDstBlend, blendZero).
		SetScalar(material.ScalZWrite, 1).
		DisableKeyword(material.KwSurfaceTransparent)
}

// SurfaceTypeOf reads the surface type back from a migrated bag.
func SurfaceTypeOf(b *material.Bag) SurfaceType {
	if s, ok := b.Scalar(material.ScalSurface); ok && s >= 0.5 {
		return Transparent
	}
	if clip, ok := b.Scalar(material.ScalAlphaClip); ok && clip >= 0.5 {
		return Cutout
	}
	return Opaque
}
