package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/louisbranch/worldgen/internal/storage"
	"github.com/louisbranch/worldgen/internal/telemetry"
)

// handleStream upgrades to a websocket and serves chunk requests until the
// client closes the connection. Each text message is one ChunkRequest; the
// reply is the matching ChunkResponse or an error payload.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		log.Printf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	s.emitStream(ctx, telemetry.KindStreamOpened, r.RemoteAddr)
	defer s.emitStream(ctx, telemetry.KindStreamClosed, r.RemoteAddr)

	for {
		var req ChunkRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				return
			}
			log.Printf("websocket read: %v", err)
			return
		}

		resp, err := s.generateChunk(ctx, req)
		if err != nil {
			if werr := conn.WriteJSON(errorResponse{Error: err.Error()}); werr != nil {
				log.Printf("websocket write error payload: %v", werr)
				return
			}
			continue
		}

		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("websocket write: %v", err)
			return
		}
	}
}

func (s *Server) emitStream(ctx context.Context, kind, remote string) {
	err := s.emitter.Emit(ctx, storage.TelemetryEvent{
		Service: "server",
		Kind:    kind,
		Detail:  "remote=" + remote,
	})
	if err != nil {
		log.Printf("emit %s: %v", kind, err)
	}
}
