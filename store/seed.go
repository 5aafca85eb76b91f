package store

import "github.com/nomad-essentials/storefront/models"

// Built-in fallback dataset, used whenever a persisted snapshot is absent
// or unreadable.

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Heavyweight Boxy Hoodie",
			Price:       120,
			Category:    "Clothing",
			Color:       "Onyx Black",
			Image:       "https://images.unsplash.com/photo-1556821840-3a63f95609a7?auto=format&fit=crop&q=80&w=800",
			Description: "A structural, ultra-heavyweight hoodie designed for a modern oversized fit.",
		},
		{
			ID:          "2",
			Name:        "The Core Sneaker",
			Price:       185,
			Category:    "Footwear",
			Color:       "Bone / Ivory",
			Image:       "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?auto=format&fit=crop&q=80&w=800",
			Description: "Crafted from premium Italian leather, our core sneaker is a versatile staple for any wardrobe.",
		},
		{
			ID:          "3",
			Name:        "Structured Wool Cap",
			Price:       45,
			Category:    "Headwear",
			Color:       "Slate Gray",
			Image:       "https://images.unsplash.com/photo-1588850561407-ed78c282e89b?auto=format&fit=crop&q=80&w=800",
			Description: "Minimalist headwear crafted from fine merino wool for a clean, architectural silhouette.",
		},
		{
			ID:          "4",
			Name:        "Relaxed Tapered Trouser",
			Price:       155,
			Category:    "Clothing",
			Color:       "Sand",
			Image:       "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?auto=format&fit=crop&q=80&w=800",
			Description: "Tailored with a relaxed fit through the seat and a sharp taper towards the ankle.",
		},
		{
			ID:          "5",
			Name:        "Oversized Canvas Tote",
			Price:       85,
			Category:    "Accessories",
			Color:       "Natural",
			Image:       "https://images.unsplash.com/photo-1544816155-12df9643f363?auto=format&fit=crop&q=80&w=800",
			Description: "Durable heavyweight canvas tote for your daily essentials and beyond.",
		},
		{
			ID:          "6",
			Name:        "Technical Shell Jacket",
			Price:       240,
			Category:    "Clothing",
			Color:       "Obsidian",
			Image:       "https://images.unsplash.com/photo-1551028719-00167b16eac5?auto=format&fit=crop&q=80&w=800",
			Description: "Waterproof and breathable shell jacket designed for the modern urban nomad.",
		},
		{
			ID:          "7",
			Name:        "Velvet Ribbon Trainer",
			Price:       145,
			Category:    "Footwear",
			Color:       "Olive Drab",
			Image:       "https://images.unsplash.com/photo-1595341888016-a392ef81b7de?auto=format&fit=crop&q=80&w=800",
			Description: "A sculptural take on the classic trainer, featuring a signature oversized velvet bow detail for a bold, feminine silhouette.",
		},
		{
			ID:          "8",
			Name:        "Aero Precision Runner",
			Price:       210,
			Category:    "Footwear",
			Color:       "Phantom Black / Crimson",
			Image:       "https://images.unsplash.com/photo-1512374382149-4332c6c02151?auto=format&fit=crop&q=80&w=800",
			Description: "Aerodynamic precision meets luxury performance. Engineered for speed and stability in urban environments.",
		},
	}
}

func seedCategories() []string {
	return []string{"Clothing", "Footwear", "Headwear", "Accessories"}
}

func seedBlogs() []models.BlogPost {
	return []models.BlogPost{
		{
			ID:      "b1",
			Title:   "The Art of Essentialism",
			Excerpt: "Exploring why less is often more in the modern urban wardrobe.",
			Content: "Full content...",
			Date:    "February 12, 2024",
			Image:   "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:      "b2",
			Title:   "Sustainability Report 2023",
			Excerpt: "Transparency on our supply chain and environmental goals.",
			Content: "Full content...",
			Date:    "January 28, 2024",
			Image:   "https://images.unsplash.com/photo-1542060717-d79860433221?auto=format&fit=crop&q=80&w=800",
		},
	}
}
