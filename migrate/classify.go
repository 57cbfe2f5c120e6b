package migrate

import (
	"strings"

	"github.com/mogaika/material_fixer/config"
	"github.com/mogaika/material_fixer/material"
)

const (
	RuleNil                = "nil"
	RuleBroken             = "error-or-unsupported"
	RuleLegacyMonolithic   = "legacy-monolithic"
	RuleIncompatibleFamily = "incompatible-family"
	RuleNormalized         = "normalized"
)

// Rule is one row of the classification table. Rules are checked in order
// and the first matching one decides.
type Rule struct {
	Name    string
	Match   func(b *material.Bag) bool
	Migrate bool
}

type Verdict struct {
	Rule    string
	Migrate bool
}

type Classifier struct {
	rules []Rule
}

func NewClassifier(cfg *config.Config) *Classifier {
	errorModel := cfg.ErrorModel
	legacy := make(map[string]struct{}, len(cfg.LegacyModels))
	for _, m := range cfg.LegacyModels {
		legacy[m] = struct{}{}
	}
	prefixes := append([]string(nil), cfg.IncompatiblePrefixes...)

	return &Classifier{rules: []Rule{
		{
			Name: RuleBroken,
			Match: func(b *material.Bag) bool {
				return !b.Supported() || (errorModel != "" && b.ShadingModel() == errorModel)
			},
			Migrate: true,
		},
		{
			Name: RuleLegacyMonolithic,
			Match: func(b *material.Bag) bool {
				_, ok := legacy[b.ShadingModel()]
				return ok
			},
			Migrate: true,
		},
		{
			Name: RuleIncompatibleFamily,
			Match: func(b *material.Bag) bool {
				for _, p := range prefixes {
					if strings.HasPrefix(b.ShadingModel(), p) {
						return true
					}
				}
				return false
			},
			Migrate: true,
		},
		{
			Name:    RuleNormalized,
			Match:   func(b *material.Bag) bool { return true },
			Migrate: false,
		},
	}}
}

func (c *Classifier) Rules() []Rule {
	return c.rules
}

func (c *Classifier) Classify(b *material.Bag) Verdict {
	if b == nil {
		return Verdict{Rule: RuleNil, Migrate: true}
	}
	for _, r := range c.rules {
		if r.Match(b) {
			return Verdict{Rule: r.Name, Migrate: r.Migrate}
		}
	}
	return Verdict{Rule: RuleNormalized}
}

func (c *Classifier) NeedsMigration(b *material.Bag) bool {
	return c.Classify(b).Migrate
}
