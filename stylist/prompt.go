package stylist

import (
	"encoding/json"
	"fmt"

	"github.com/nomad-essentials/storefront/models"
)

// Catalog supplies the current product list for the system prompt.
// *store.Store satisfies it.
type Catalog interface {
	Products() []models.Product
}

type promptItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
	Desc  string `json:"desc"`
}

// systemPrompt builds the stylist persona instruction, enumerating the
// catalog's name/price/description so recommendations stay on-collection.
func systemPrompt(catalog Catalog) string {
	items := []promptItem{}
	for _, p := range catalog.Products() {
		items = append(items, promptItem{Name: p.Name, Price: p.Price, Desc: p.Description})
	}

	collection, err := json.Marshal(items)
	if err != nil {
		collection = []byte("[]")
	}

	return fmt.Sprintf(`
You are a high-end personal fashion stylist for NOMAD, a premium unisex minimalist brand.
Your style is professional, sophisticated, and helpful.
You know the NOMAD collection well: %s.

Instructions:
1. Provide personalized outfit advice based on user requests (mood, occasion, weather).
2. Recommend specific items from the NOMAD collection listed above.
3. Keep responses concise and elegant.
4. If a user asks for something outside of fashion, gently guide them back to styling.
5. Use markdown for lists and bolding.
`, collection)
}
