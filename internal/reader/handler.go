package reader

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/graceview/graceview-api/internal/annotation"
	"github.com/graceview/graceview-api/internal/auth"
	"github.com/graceview/graceview-api/internal/bible"
	"github.com/graceview/graceview-api/pkg/response"
)

const (
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	writeWait      = 10 * time.Second
	maxMessageSize = 16 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type ReaderHandler struct {
	library     *bible.Library
	annotations annotation.AnnotationService
}

func NewReaderHandler(library *bible.Library, annotations annotation.AnnotationService) ReaderHandler {
	return ReaderHandler{library: library, annotations: annotations}
}

// SessionHandler upgrades GET /reader/{translation}/{book}/{chapter} into a
// websocket carrying one reader screen. The connection starts with a chapter
// snapshot; after that it is event in, messages out until the screen closes.
func (h *ReaderHandler) SessionHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	tr := bible.Translation(chi.URLParam(r, "translation"))
	if !tr.IsValid() {
		response.Error(w, http.StatusBadRequest, "Unknown translation", string(tr))
		return
	}
	chapter, err := strconv.Atoi(chi.URLParam(r, "chapter"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid chapter number", err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("reader: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	session := NewSession(userID, tr, chi.URLParam(r, "book"), chapter, h.library, h.annotations)
	log.Printf("reader: session opened for user %d (%s %s %d)", userID, tr, chi.URLParam(r, "book"), chapter)

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	send := func(msgs []outbound) bool {
		for _, msg := range msgs {
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				return false
			}
		}
		return true
	}

	// Initial render.
	if !send(session.chapterSnapshot(r.Context())) {
		return
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("reader: session closed unexpectedly: %v", err)
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			if !send(errOut("invalid message")) {
				return
			}
			continue
		}

		if !send(session.Handle(r.Context(), env)) {
			return
		}
	}
}
