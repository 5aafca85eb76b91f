package models

// Subscription refill frequencies offered at add-to-cart time.
const (
	Frequency30Days = "30 Days"
	Frequency60Days = "60 Days"
	Frequency90Days = "90 Days"
)

// CartLine is one priced, quantified entry in a bag.
//
// Two lines are the same line iff (ID, IsSubscription, SubscriptionFrequency)
// all match. FinalPrice is computed once when the line is added and is not
// recomputed if the catalog price changes afterwards.
type CartLine struct {
	Product

	Quantity              int    `json:"quantity"`
	IsSubscription        bool   `json:"isSubscription"`
	SubscriptionFrequency string `json:"subscriptionFrequency,omitempty"`
	FinalPrice            int    `json:"finalPrice"`
}
