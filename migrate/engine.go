package migrate

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/mogaika/material_fixer/config"
	"github.com/mogaika/material_fixer/material"
	"github.com/mogaika/material_fixer/shading"
)

var ErrTargetUnavailable = errors.New("target shading model is not available")

const DefaultMaterialName = "Default Material"

// Reporter receives the counts of every batch pass.
type Reporter interface {
	Report(r Result)
}

type Engine struct {
	cfg        *config.Config
	classifier *Classifier
	resolver   *Resolver
	surfaces   *SurfaceResolver
	cache      *Cache
	reporter   Reporter

	err error
}

type Option func(e *Engine)

// WithCache makes the engine share an existing cache.
func WithCache(c *Cache) Option {
	return func(e *Engine) { e.cache = c }
}

func WithReporter(r Reporter) Option {
	return func(e *Engine) { e.reporter = r }
}

// New creates an engine migrating into cfg.TargetModel. When rt cannot
// evaluate the target model the engine logs one warning and does nothing
// afterwards; Err reports the reason.
func New(cfg *config.Config, rt shading.Runtime, opts ...Option) *Engine {
	e := &Engine{
		cfg:        cfg,
		classifier: NewClassifier(cfg),
		resolver:   NewResolver(cfg),
		surfaces:   NewSurfaceResolver(cfg),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cache == nil {
		e.cache = NewCache()
	}

	if !rt.Supports(cfg.TargetModel) {
		e.err = errors.Wrapf(ErrTargetUnavailable, "%q", cfg.TargetModel)
		log.Printf("[migrate] warning: %v, materials are left as is", e.err)
	}
	return e
}

func (e *Engine) Err() error              { return e.err }
func (e *Engine) Cache() *Cache           { return e.cache }
func (e *Engine) Classifier() *Classifier { return e.classifier }
func (e *Engine) Config() *config.Config  { return e.cfg }
func (e *Engine) ClearCache() int         { return e.cache.Clear() }

func (e *Engine) NeedsMigration(b *material.Bag) bool {
	return e.classifier.NeedsMigration(b)
}

// Migrate returns the bag that should replace src. Normalized bags come
// back unchanged, broken ones are converted once and then served from the
// cache.
func (e *Engine) Migrate(src *material.Bag) *material.Bag {
	if e.err != nil {
		return src
	}
	if src == nil {
		return e.defaultBag(DefaultMaterialName)
	}
	if dst, ok := e.cache.Get(src); ok {
		return dst
	}

	v := e.classifier.Classify(src)
	if !v.Migrate {
		return src
	}
	if v.Rule == RuleBroken && src.Empty() {
		// nothing left to carry over, and nothing worth caching
		return e.defaultBag(src.Name())
	}

	dst, created := e.cache.GetOrCreate(src, func() *material.Bag {
		return e.convert(src)
	})
	if created {
		log.Printf("[migrate] %v -> %v (%s, %v)", src, dst.ShadingModel(), v.Rule, SurfaceTypeOf(dst))
	}
	return dst
}

func (e *Engine) convert(src *material.Bag) *material.Bag {
	b := e.resolver.Resolve(src)
	st, _ := e.surfaces.Resolve(src)
	e.surfaces.Apply(b, st)
	return b.Build()
}

// defaultBag is a neutral gray opaque material of the target model.
func (e *Engine) defaultBag(name string) *material.Bag {
	tint := mgl32.Vec4(e.cfg.DefaultTint)
	b := material.NewBuilder(name, e.cfg.TargetModel).
		SetColor(material.ColBaseColor, tint).
		SetColor(material.ColColor, tint).
		SetScalar(material.ScalMetallic, 0).
		SetScalar(material.ScalSmoothness, 0.5).
		SetScalar(material.ScalGlossiness, 0.5).
		SetScalar(material.ScalWorkflowMode, 1)
	e.surfaces.Apply(b, Opaque)
	return b.Build()
}
