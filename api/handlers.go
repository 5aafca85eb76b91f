// Package api exposes the storefront state model over HTTP: catalog reads,
// per-session carts, the stylist chat, the newsletter form, and the admin
// content overlay.
package api

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/nomad-essentials/storefront/cart"
	"github.com/nomad-essentials/storefront/store"
	"github.com/nomad-essentials/storefront/stylist"
)

const sessionCookie = "nomad_session"

// visitor is the per-browser-session state: a bag and a stylist
// conversation. Neither survives a server restart, matching the original
// storefront where both reset on reload.
type visitor struct {
	cart    *cart.Cart
	stylist *stylist.Session
}

// Handlers carries the stores shared by every request handler.
type Handlers struct {
	store     *store.Store
	responder stylist.Responder

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewHandlers wires the handler set over the given store and chat backend.
func NewHandlers(s *store.Store, responder stylist.Responder) *Handlers {
	return &Handlers{
		store:     s,
		responder: responder,
		visitors:  make(map[string]*visitor),
	}
}

// visitorFor resolves the caller's session, minting a cookie on first
// contact.
func (h *Handlers) visitorFor(w http.ResponseWriter, r *http.Request) *visitor {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		id = c.Value
	} else {
		id = uuid.New().String()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
		})
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	v, ok := h.visitors[id]
	if !ok {
		v = &visitor{
			cart:    cart.New(),
			stylist: stylist.NewSession(h.responder, h.store),
		}
		h.visitors[id] = v
	}
	return v
}
