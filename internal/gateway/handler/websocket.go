package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic"
	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic/ast"
	"github.com/BrunoMiglioretto/Parser-Latex/internal/history"
	"github.com/BrunoMiglioretto/Parser-Latex/pkg/core/logging"
)

// WebSocket upgrader with permissive settings for local development
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// WebSocketHandler handles WebSocket connections for interactive parsing
type WebSocketHandler struct {
	engine   *logic.Engine
	recorder *history.Writer
	logger   *logging.Logger
}

// NewWebSocketHandler creates a new WebSocket handler. The recorder may be
// nil when history is disabled.
func NewWebSocketHandler(engine *logic.Engine, recorder *history.Writer) *WebSocketHandler {
	return &WebSocketHandler{
		engine:   engine,
		recorder: recorder,
		logger:   logging.New("gateway-websocket"),
	}
}

// WSMessage represents an inbound WebSocket message
type WSMessage struct {
	Type    string          `json:"type"`    // "parse", "ping"
	Payload json.RawMessage `json:"payload"` // Message-specific payload
}

// WSParsePayload represents the parse message payload
type WSParsePayload struct {
	Formula string `json:"formula"`
}

// WSResponse represents an outbound WebSocket message
type WSResponse struct {
	Type    string      `json:"type"`    // "result", "error", "pong"
	Payload interface{} `json:"payload"` // Response-specific payload
}

// WSResultPayload represents a parse result payload
type WSResultPayload struct {
	Input    string `json:"input"`
	OK       bool   `json:"ok"`
	Rendered string `json:"rendered,omitempty"`
	Tree     string `json:"tree,omitempty"`
	Error    string `json:"error,omitempty"`
	Stage    string `json:"stage,omitempty"`
}

// WSErrorPayload represents an error payload
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ServeHTTP handles WebSocket upgrade and connections
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", "error", err)
		return
	}
	h.handleConnection(conn)
}

// handleConnection handles a single WebSocket connection
func (h *WebSocketHandler) handleConnection(conn *websocket.Conn) {
	defer conn.Close()

	connID := uuid.New().String()
	h.logger.Info("WebSocket connection established",
		"conn_id", connID,
		"remote", conn.RemoteAddr().String(),
	)

	// Set read deadline for ping/pong
	conn.SetReadDeadline(time.Now().Add(120 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(120 * time.Second))
		return nil
	})

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("WebSocket read error", "conn_id", connID, "error", err)
			} else {
				h.logger.Info("WebSocket connection closed", "conn_id", connID)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(120 * time.Second))

		switch msg.Type {
		case "ping":
			h.sendResponse(conn, WSResponse{Type: "pong", Payload: nil})

		case "parse":
			var payload WSParsePayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				h.sendError(conn, "invalid_payload", "Invalid parse payload")
				continue
			}
			h.handleParseMessage(conn, payload)

		default:
			h.sendError(conn, "unknown_type", "Unknown message type: "+msg.Type)
		}
	}
}

// handleParseMessage parses one formula and sends the result
func (h *WebSocketHandler) handleParseMessage(conn *websocket.Conn, payload WSParsePayload) {
	if payload.Formula == "" {
		h.sendError(conn, "invalid_request", "Formula required")
		return
	}

	results := h.engine.ParseAll([]string{payload.Formula})
	res := results[0]

	out := WSResultPayload{
		Input: res.Input,
		OK:    res.Err == nil,
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
		out.Stage = string(stageOf(res.Err))
	} else {
		out.Rendered = res.Rendered
		out.Tree = ast.Tree(res.Formula)
	}

	if h.recorder != nil {
		rec := &history.Record{
			Source:   history.SourceWS,
			Input:    res.Input,
			OK:       res.Err == nil,
			Rendered: res.Rendered,
			Nodes:    res.Nodes,
			Depth:    res.Depth,
			Duration: res.Duration,
		}
		if res.Err != nil {
			rec.Error = res.Err.Error()
		}
		h.recorder.Record(rec)
	}

	h.sendResponse(conn, WSResponse{Type: "result", Payload: out})
}

// sendResponse sends a response message via WebSocket
func (h *WebSocketHandler) sendResponse(conn *websocket.Conn, resp WSResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		h.logger.Error("WebSocket send error", "error", err)
	}
}

// sendError sends an error response via WebSocket
func (h *WebSocketHandler) sendError(conn *websocket.Conn, code, message string) {
	h.sendResponse(conn, WSResponse{
		Type: "error",
		Payload: WSErrorPayload{
			Code:    code,
			Message: message,
		},
	})
}
