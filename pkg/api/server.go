// Package api runs the local bridge: a loopback REST/WebSocket server
// that lets host-side listeners watch the option box. Clients connected
// to /ws receive every executed camera command, and /command returns the
// currently assembled invocation without executing it.
package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/jonntd/anima/camera"
	"github.com/jonntd/anima/config"
	"github.com/jonntd/anima/util/log"
)

// Server represents the local REST/WebSocket bridge.
type Server struct {
	httpServer *http.Server
	mux        *http.ServeMux
	upgrader   websocket.Upgrader

	box *camera.OptionBox

	// WebSocket management
	clients   map[*websocket.Conn]bool
	clientsMu sync.Mutex
}

// NewServer creates a bridge over the given option box.
func NewServer(box *camera.OptionBox) *Server {
	s := &Server{
		mux: http.NewServeMux(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		box:     box,
		clients: make(map[*websocket.Conn]bool),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/command", s.handleCommand)
	s.mux.HandleFunc("/ws", s.handleWebSocket)
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the server on the loopback bridge address. This is
// blocking.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:    config.BridgeAddr,
		Handler: s.mux,
	}
	return s.httpServer.ListenAndServe()
}

// Stop stops the server.
func (s *Server) Stop() error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(context.Background())
	}
	return nil
}

// Execute broadcasts an executed command to all connected clients, making
// the server usable as a camera.Dispatcher alongside the real one.
func (s *Server) Execute(cmd camera.Command) error {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	msg := map[string]string{
		"type":    "camera_command",
		"command": cmd.String(),
	}

	for client := range s.clients {
		err := client.WriteJSON(msg)
		if err != nil {
			log.Printf("Failed to broadcast to client: %v", err)
			client.Close()
			delete(s.clients, client)
		}
	}
	return nil
}
