package web

import (
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/mogaika/material_fixer/migrate"
	"github.com/mogaika/material_fixer/scene"
)

// Server exposes a loaded scene and the engine fixing it over HTTP.
type Server struct {
	Root   *scene.Node
	Engine *migrate.Engine

	// serializes fix passes and exports
	lock     sync.Mutex
	upgrader websocket.Upgrader
}

func NewServer(root *scene.Node, engine *migrate.Engine) *Server {
	return &Server{
		Root:   root,
		Engine: engine,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/json/scene", s.HandlerAjaxScene).Methods("GET")
	r.HandleFunc("/json/cache", s.HandlerAjaxCache).Methods("GET")
	r.HandleFunc("/json/material/{id}", s.HandlerAjaxMaterial).Methods("GET")
	r.HandleFunc("/action/fix", s.HandlerActionFix).Methods("POST")
	r.HandleFunc("/action/clear", s.HandlerActionClear).Methods("POST")
	r.HandleFunc("/export/gltf", s.HandlerExportGltf).Methods("GET")
	r.HandleFunc("/ws/status", s.HandlerStatus)
	return r
}

func (s *Server) Start(addr string) error {
	h := handlers.RecoveryHandler()(s.Router())
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
