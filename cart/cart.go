// Package cart computes per-line pricing for one-time and subscription
// purchases and merges identical lines. Carts are session-only; nothing
// here is persisted.
package cart

import (
	"math"
	"sync"

	"github.com/nomad-essentials/storefront/models"
)

// SubscriptionDiscount is the flat discount applied to subscription lines.
const SubscriptionDiscount = 0.15

// Event describes the presentation reaction a mutation asks for. The
// engine never touches view state itself; callers interpret the flag.
type Event struct {
	OpenCart bool `json:"open_cart"`
}

// Cart holds the bag for one visitor session.
type Cart struct {
	mu    sync.Mutex
	lines []models.CartLine
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// SubscriptionPrice is the discounted unit price for a subscription line.
func SubscriptionPrice(price int) int {
	return int(math.Round(float64(price) * (1 - SubscriptionDiscount)))
}

// AddLine adds one unit of the product in the given purchase mode. The
// final price is computed here and frozen; if a line with the same
// (id, isSubscription, frequency) triple already exists its quantity is
// incremented and every other field is left untouched. One-time lines
// carry no frequency regardless of the argument.
func (c *Cart) AddLine(p models.Product, isSubscription bool, frequency string) Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !isSubscription {
		frequency = ""
	}

	for i := range c.lines {
		if c.lines[i].ID == p.ID &&
			c.lines[i].IsSubscription == isSubscription &&
			c.lines[i].SubscriptionFrequency == frequency {
			c.lines[i].Quantity++
			return Event{OpenCart: true}
		}
	}

	finalPrice := p.Price
	if isSubscription {
		finalPrice = SubscriptionPrice(p.Price)
	}

	c.lines = append(c.lines, models.CartLine{
		Product:               p,
		Quantity:              1,
		IsSubscription:        isSubscription,
		SubscriptionFrequency: frequency,
		FinalPrice:            finalPrice,
	})
	return Event{OpenCart: true}
}

// RemoveLine removes the line matching the triple. No-op if absent.
func (c *Cart) RemoveLine(productID string, isSubscription bool, frequency string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !isSubscription {
		frequency = ""
	}

	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.ID == productID &&
			line.IsSubscription == isSubscription &&
			line.SubscriptionFrequency == frequency {
			continue
		}
		kept = append(kept, line)
	}
	c.lines = kept
}

// Lines returns the current lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.CartLine(nil), c.lines...)
}

// Subtotal is the sum of finalPrice * quantity over all lines.
func (c *Cart) Subtotal() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.FinalPrice * line.Quantity
	}
	return total
}

// LineCount is the sum of quantities, not the number of distinct lines.
// It feeds the bag badge.
func (c *Cart) LineCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}
