package web

import (
	"bytes"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/mogaika/material_fixer/gltfexport"
	"github.com/mogaika/material_fixer/material"
	"github.com/mogaika/material_fixer/scene"
	"github.com/mogaika/material_fixer/status"
	"github.com/mogaika/material_fixer/webutils"
)

type AjaxSlot struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Shader         string    `json:"shader"`
	Rule           string    `json:"rule"`
	NeedsMigration bool      `json:"needs_migration"`
}

type AjaxNode struct {
	Name     string      `json:"name"`
	Path     string      `json:"path"`
	Slots    []*AjaxSlot `json:"slots,omitempty"`
	Children []*AjaxNode `json:"children,omitempty"`
}

type AjaxCacheEntry struct {
	Source *AjaxSlot `json:"source"`
	Target *AjaxSlot `json:"target"`
}

type AjaxMaterial struct {
	*AjaxSlot
	Description material.Description `json:"description"`
}

func (s *Server) ajaxSlot(b *material.Bag) *AjaxSlot {
	if b == nil {
		return nil
	}
	v := s.Engine.Classifier().Classify(b)
	return &AjaxSlot{
		ID:             b.ID(),
		Name:           b.Name(),
		Shader:         b.ShadingModel(),
		Rule:           v.Rule,
		NeedsMigration: v.Migrate,
	}
}

func (s *Server) ajaxNode(n *scene.Node) *AjaxNode {
	an := &AjaxNode{Name: n.Name, Path: n.Path()}
	if n.Surface != nil {
		for _, b := range n.Surface.Materials() {
			an.Slots = append(an.Slots, s.ajaxSlot(b))
		}
	}
	for _, c := range n.Childs {
		an.Children = append(an.Children, s.ajaxNode(c))
	}
	return an
}

func (s *Server) HandlerAjaxScene(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, s.ajaxNode(s.Root))
}

func (s *Server) HandlerAjaxCache(w http.ResponseWriter, r *http.Request) {
	entries := s.Engine.Cache().Entries()
	result := make([]AjaxCacheEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, AjaxCacheEntry{Source: s.ajaxSlot(e.Source), Target: s.ajaxSlot(e.Target)})
	}
	webutils.WriteJson(w, result)
}

// findMaterial looks for a bag in the scene, then among cached sources and
// targets, which may no longer be referenced by any surface.
func (s *Server) findMaterial(id uuid.UUID) *material.Bag {
	for _, b := range s.Root.Materials() {
		if b.ID() == id {
			return b
		}
	}
	for _, e := range s.Engine.Cache().Entries() {
		if e.Source.ID() == id {
			return e.Source
		}
		if e.Target.ID() == id {
			return e.Target
		}
	}
	return nil
}

func (s *Server) HandlerAjaxMaterial(w http.ResponseWriter, r *http.Request) {
	param := mux.Vars(r)["id"]
	id, err := uuid.Parse(param)
	if err != nil {
		webutils.WriteError(w, errors.Wrapf(webutils.ErrNotFound, "param %q is not material id", param))
		return
	}

	b := s.findMaterial(id)
	if b == nil {
		webutils.WriteError(w, errors.Wrapf(webutils.ErrNotFound, "material %v", id))
		return
	}
	webutils.WriteJson(w, &AjaxMaterial{AjaxSlot: s.ajaxSlot(b), Description: b.Describe()})
}

func (s *Server) HandlerActionFix(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	res := s.Engine.FixTree(s.Root)
	s.lock.Unlock()

	if res.Disabled {
		status.Error("Fix failed: %v", s.Engine.Err())
		webutils.WriteError(w, s.Engine.Err())
		return
	}
	webutils.WriteJson(w, res)
}

func (s *Server) HandlerActionClear(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	cleared := s.Engine.ClearCache()
	s.lock.Unlock()

	status.Info("Cleared %d cached materials", cleared)
	webutils.WriteJson(w, map[string]int{"cleared": cleared})
}

func (s *Server) HandlerExportGltf(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	e := gltfexport.NewExporter()
	e.AddScene(s.Root)
	s.lock.Unlock()
	status.Progress(1, "Exported %d materials, %d textures", len(e.Doc.Materials), len(e.Doc.Textures))

	var buf bytes.Buffer
	if err := e.Encode(&buf, true); err != nil {
		webutils.WriteError(w, err)
		return
	}
	webutils.WriteFile(w, &buf, "scene.glb")
}

func (s *Server) HandlerStatus(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[web] ws upgrade error: %v", err)
		return
	}
	status.NewClient(conn)
}
