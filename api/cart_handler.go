package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/nomad-essentials/storefront/cart"
	"github.com/nomad-essentials/storefront/models"
	"github.com/nomad-essentials/storefront/utils"
)

// CartLineRequest addresses one line by its identity triple.
type CartLineRequest struct {
	ProductID      string `json:"product_id"`
	IsSubscription bool   `json:"is_subscription"`
	Frequency      string `json:"frequency"`
}

func cartBody(c *cart.Cart) map[string]interface{} {
	return map[string]interface{}{
		"items":    c.Lines(),
		"subtotal": c.Subtotal(),
		"count":    c.LineCount(),
	}
}

// CartHandler returns the caller's bag.
func (h *Handlers) CartHandler(w http.ResponseWriter, r *http.Request) {
	v := h.visitorFor(w, r)
	utils.RespondJSON(w, http.StatusOK, cartBody(v.cart))
}

// AddToCartHandler adds one unit of a product in the requested purchase
// mode. The response carries the open_cart flag for the presentation
// layer along with the updated bag.
func (h *Handlers) AddToCartHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Add To Cart API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CartLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		utils.RespondError(w, &logMessageBuilder, "product_id is required", http.StatusBadRequest)
		return
	}
	if req.IsSubscription && !validFrequency(req.Frequency) {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Unknown frequency: %s", req.Frequency), http.StatusBadRequest)
		return
	}

	var product *models.Product
	for _, p := range h.store.Products() {
		if p.ID == req.ProductID {
			product = &p
			break
		}
	}
	if product == nil {
		utils.RespondError(w, &logMessageBuilder, "Product not found", http.StatusNotFound)
		return
	}

	v := h.visitorFor(w, r)
	event := v.cart.AddLine(*product, req.IsSubscription, req.Frequency)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Added product %s (subscription=%v)", req.ProductID, req.IsSubscription))

	body := cartBody(v.cart)
	body["open_cart"] = event.OpenCart
	utils.RespondJSON(w, http.StatusOK, body)
}

// RemoveFromCartHandler removes the line matching the identity triple.
// Removing an absent line is a no-op, not an error.
func (h *Handlers) RemoveFromCartHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Remove From Cart API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CartLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	v := h.visitorFor(w, r)
	v.cart.RemoveLine(req.ProductID, req.IsSubscription, req.Frequency)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Removed product %s (subscription=%v)", req.ProductID, req.IsSubscription))

	utils.RespondJSON(w, http.StatusOK, cartBody(v.cart))
}

func validFrequency(f string) bool {
	switch f {
	case models.Frequency30Days, models.Frequency60Days, models.Frequency90Days:
		return true
	}
	return false
}
