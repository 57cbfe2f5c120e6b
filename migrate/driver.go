package migrate

import (
	"fmt"
	"log"

	"github.com/mogaika/material_fixer/material"
)

// Surface is anything rendered with an ordered list of material slots.
// Materials must return a copy; SetMaterials replaces the whole list at once.
type Surface interface {
	Materials() []*material.Bag
	SetMaterials(slots []*material.Bag)
}

// Tree yields the surfaces of a subtree in a stable order.
type Tree interface {
	Surfaces() []Surface
}

type SurfaceResult struct {
	Slots    int  `json:"slots"`
	Migrated int  `json:"migrated"`
	Skipped  int  `json:"skipped"`
	Empty    int  `json:"empty"`
	Changed  bool `json:"changed"`
}

type Result struct {
	Surfaces        int  `json:"surfaces"`
	ChangedSurfaces int  `json:"changed_surfaces"`
	Slots           int  `json:"slots"`
	Migrated        int  `json:"migrated"`
	Skipped         int  `json:"skipped"`
	Empty           int  `json:"empty"`
	Disabled        bool `json:"disabled"`
}

func (r *Result) add(s SurfaceResult) {
	r.Surfaces++
	if s.Changed {
		r.ChangedSurfaces++
	}
	r.Slots += s.Slots
	r.Migrated += s.Migrated
	r.Skipped += s.Skipped
	r.Empty += s.Empty
}

func (r Result) String() string {
	if r.Disabled {
		return "migration disabled"
	}
	return fmt.Sprintf("%d/%d surfaces changed, %d slots migrated, %d skipped, %d empty",
		r.ChangedSurfaces, r.Surfaces, r.Migrated, r.Skipped, r.Empty)
}

// FixSurface migrates every slot of s in order and commits the new slot list
// with a single SetMaterials call, only when at least one slot changed.
func (e *Engine) FixSurface(s Surface) SurfaceResult {
	slots := s.Materials()
	res := SurfaceResult{Slots: len(slots)}
	if e.err != nil {
		res.Skipped = len(slots)
		return res
	}

	var updated []*material.Bag
	for i, src := range slots {
		if src == nil {
			res.Empty++
		}
		dst := e.Migrate(src)
		if dst == src {
			res.Skipped++
			continue
		}
		if updated == nil {
			updated = make([]*material.Bag, len(slots))
			copy(updated, slots)
		}
		updated[i] = dst
		res.Migrated++
	}

	if updated != nil {
		s.SetMaterials(updated)
		res.Changed = true
	}
	return res
}

// FixTree runs FixSurface over every surface of t.
func (e *Engine) FixTree(t Tree) Result {
	var res Result
	if e.err != nil {
		res.Disabled = true
		return res
	}

	for _, s := range t.Surfaces() {
		res.add(e.FixSurface(s))
	}

	log.Printf("[migrate] batch done: %v (cache %d)", res, e.cache.Len())
	if e.reporter != nil {
		e.reporter.Report(res)
	}
	return res
}

// NeedsFix reports whether any slot of t would be migrated.
func (e *Engine) NeedsFix(t Tree) bool {
	for _, s := range t.Surfaces() {
		for _, b := range s.Materials() {
			if e.classifier.NeedsMigration(b) {
				return true
			}
		}
	}
	return false
}

// FixIfNeeded scans t first and runs the batch pass only when something
// needs migration. The bool tells whether the pass ran.
func (e *Engine) FixIfNeeded(t Tree) (Result, bool) {
	if e.err != nil {
		return Result{Disabled: true}, false
	}
	if !e.NeedsFix(t) {
		return Result{}, false
	}
	return e.FixTree(t), true
}
