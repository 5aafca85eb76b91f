package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/nomad-essentials/storefront/utils"
)

const welcomeSubject = "Welcome to the Inner Circle"

const welcomeText = "You're on the list. Expect early access to new drops, journal stories, and members-only pieces from NOMAD."

// NewsletterHandler backs the "Join the Inner Circle" form. The welcome
// email goes out in the background; a delivery failure is logged, never
// surfaced to the subscriber.
func (h *Handlers) NewsletterHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Newsletter API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		utils.RespondError(w, &logMessageBuilder, "A valid email is required", http.StatusBadRequest)
		return
	}

	go func(name, email string) {
		html := fmt.Sprintf("<p>%s</p>", welcomeText)
		if err := utils.SendEmail(name, email, welcomeSubject, welcomeText, html); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", email, err)
		}
	}(req.Name, req.Email)

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Subscribed %s", req.Email))
	utils.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "subscribed"})
}
