// Package ws streams recorded assignment logs to an external
// step-by-step visualizer over a websocket.
package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/chischaschos/sudoku/internal/domain"
)

// frame is one replay message: the full board as it looked the moment
// a cell was assigned.
type frame struct {
	Step  int          `json:"step"`
	Total int          `json:"total"`
	Board domain.Board `json:"board"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// Replay writes every snapshot in order, one JSON frame per message,
// then closes the connection. The solve is long finished by the time
// this runs, so any failure here is a notice, never a solver error.
func Replay(w http.ResponseWriter, r *http.Request, steps []domain.Board) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("visualizer websocket upgrade failed")
		return
	}
	defer conn.Close()

	for i, b := range steps {
		if err := conn.WriteJSON(frame{Step: i + 1, Total: len(steps), Board: b}); err != nil {
			log.Warn().Err(err).Int("step", i+1).Msg("visualizer stream interrupted")
			return
		}
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replay complete"))
}
