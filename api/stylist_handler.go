package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/nomad-essentials/storefront/stylist"
	"github.com/nomad-essentials/storefront/utils"
)

// ChatHandler forwards one user message to the stylist session. While a
// reply is pending, further submissions get a 409 so the UI keeps the
// input disabled.
func (h *Handlers) ChatHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Stylist Chat API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		utils.RespondError(w, &logMessageBuilder, "message is required", http.StatusBadRequest)
		return
	}

	v := h.visitorFor(w, r)
	reply, err := v.stylist.Send(r.Context(), req.Message)
	if errors.Is(err, stylist.ErrBusy) {
		utils.RespondError(w, &logMessageBuilder, "The stylist is still composing a reply", http.StatusConflict)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Stylist replied")
	utils.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// TranscriptHandler returns the caller's conversation so far.
func (h *Handlers) TranscriptHandler(w http.ResponseWriter, r *http.Request) {
	v := h.visitorFor(w, r)
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"transcript": v.stylist.Transcript(),
	})
}
