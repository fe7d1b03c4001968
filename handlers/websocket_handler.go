package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/justplay-app/league-manager/schedule"
	"github.com/justplay-app/league-manager/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict to the frontend origin once it is fixed.
		return true
	},
}

type WebSocketHandler struct {
	hub           *schedule.Hub
	leagueService services.LeagueService
}

func NewWebSocketHandler(hub *schedule.Hub, ls services.LeagueService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:           hub,
		leagueService: ls,
	}
}

// ServeWs handles GET /ws/leagues/{leagueID}: it upgrades the connection and
// subscribes the client to the league's event room.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	if leagueID == "" {
		badRequestResponse(w, r, errors.New("missing leagueID"))
		return
	}

	if _, err := h.leagueService.GetLeague(r.Context(), leagueID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		slog.Warn("websocket upgrade failed", slog.String("league_id", leagueID), slog.Any("error", err))
		return
	}

	h.hub.NewClient(conn, leagueID)
}
