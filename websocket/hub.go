// Package websocket handles real-time push of queue and ranking
// changes to scoreboard displays and officials' screens.
// File: websocket/hub.go
package websocket

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"go-meet-scoring/logger"
)

// clients tracks all connected scoreboard clients and the contest each
// one is watching
var (
	clients   = make(map[*websocket.Conn]string) // conn -> contest id
	clientsMu sync.Mutex
)

// broadcast is the channel feeding the fan-out loop
var broadcast = make(chan []byte, 64)

// how often we ping idle connections
const pingInterval = 30 * time.Second

// WEBSOCKET UPGRADE
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all if Test-Mode
		if r.Header.Get("Test-Mode") == "true" {
			return true
		}
		origin := r.Header.Get("Origin")
		if origin == "" || origin == "http://localhost:8080" {
			return true
		}
		return origin == os.Getenv("APPLICATION_URL")
	},
}

// ServeWs is the scoreboard WebSocket entry point. Clients subscribe
// to one contest via the contestId query param.
func ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error.Printf("ServeWs: upgrade error: %v", err)
		http.Error(w, "Failed to upgrade WebSocket", http.StatusBadRequest)
		return
	}

	contestID := r.URL.Query().Get("contestId")
	if contestID == "" {
		contestID = "DEFAULT_CONTEST"
	}

	clientsMu.Lock()
	clients[conn] = contestID
	count := len(clients)
	clientsMu.Unlock()
	logger.Info.Printf("ServeWs: scoreboard client connected for contest=%s (%d total)", contestID, count)
	PublishScoreboardConnections(count, contestID)

	go pingLoop(conn)
	go readLoop(conn)
}

// pingLoop keeps the connection alive; the read loop notices the
// failure and cleans up when pings stop being answered.
func pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for range ticker.C {
		if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
			return
		}
	}
}

// readLoop drains inbound frames (scoreboards never send anything
// meaningful) and unregisters the connection on error.
func readLoop(conn *websocket.Conn) {
	defer func() {
		clientsMu.Lock()
		contestID := clients[conn]
		delete(clients, conn)
		count := len(clients)
		clientsMu.Unlock()
		_ = conn.Close()
		logger.Warn.Printf("readLoop: scoreboard client for contest=%s disconnected (%d left)", contestID, count)
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// HandleMessages listens on the broadcast channel and fans each
// message out to the clients watching the message's contest.
func HandleMessages() {
	for msg := range broadcast {
		var msgMap map[string]interface{}
		var contestFilter string
		if err := json.Unmarshal(msg, &msgMap); err == nil {
			if id, ok := msgMap["contestId"].(string); ok {
				contestFilter = id
			}
		}

		clientsMu.Lock()
		targets := make([]*websocket.Conn, 0, len(clients))
		for conn, contestID := range clients {
			if contestFilter != "" && contestID != contestFilter {
				continue
			}
			targets = append(targets, conn)
		}
		clientsMu.Unlock()

		for _, conn := range targets {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Error.Printf("HandleMessages: failed to send to %v: %v", conn.RemoteAddr(), err)
			}
		}
	}
}

// BroadcastMessage sends a message to every client watching the given
// contest. The contest ID is stamped into the payload so the fan-out
// loop can filter.
func BroadcastMessage(contestID string, message map[string]interface{}) {
	message["contestId"] = contestID
	msg, err := json.Marshal(message)
	if err != nil {
		logger.Error.Printf("BroadcastMessage: error marshalling message: %v", err)
		return
	}

	select {
	case broadcast <- msg:
	default:
		logger.Warn.Printf("BroadcastMessage: broadcast queue full, dropping message for contest=%s", contestID)
	}
}
