package handlers

import (
	"net/http"
)

type statusResponse struct {
	Busy    bool   `json:"busy"`
	Message string `json:"message,omitempty"`
}

// Status reports whether a cycle is in flight and the current progress
// message. The browser polls this while its generate request is pending.
func (a *App) Status(w http.ResponseWriter, r *http.Request) {
	busy, message := a.Engine.Status()
	a.json(w, http.StatusOK, statusResponse{Busy: busy, Message: message})
}
