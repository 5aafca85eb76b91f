package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/nomad-essentials/storefront/store"
	"github.com/nomad-essentials/storefront/utils"
)

// ProductsHandler lists the catalog, optionally filtered by category.
// An absent category means no filter.
func (h *Handlers) ProductsHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Products API]")

	category := r.URL.Query().Get("category")
	if category == "" {
		category = store.CategoryAll
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Filtering by category: %s", category))

	products := h.store.FilterProducts(category)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Returning %d products", len(products)))

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"products": products,
	})
}

// CategoriesHandler returns the category choices, "All" first.
func (h *Handlers) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.store.Categories(),
	})
}

// BlogsHandler returns the journal posts.
func (h *Handlers) BlogsHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"blogs": h.store.Blogs(),
	})
}
