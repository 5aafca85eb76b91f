package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/nomad-essentials/storefront/api"
	"github.com/nomad-essentials/storefront/config"
	"github.com/nomad-essentials/storefront/persist"
	"github.com/nomad-essentials/storefront/store"
	"github.com/nomad-essentials/storefront/stylist"
	"github.com/nomad-essentials/storefront/utils"
)

func newPersister() persist.Persister {
	switch config.StoreBackend {
	case "redis":
		p, err := persist.NewRedis(config.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		return p
	case "mongo":
		p, err := persist.NewMongo(config.MongoURI, config.MongoDatabase)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		return p
	case "memory":
		log.Println("Using in-memory store backend; snapshots will not survive a restart")
		return persist.NewMemory()
	default:
		log.Fatalf("Unknown STORE_BACKEND: %s", config.StoreBackend)
		return nil
	}
}

func main() {
	config.LoadConfig()

	st := store.New(newPersister(), nil, nil)
	st.Load(context.Background())

	responder := &stylist.GeminiResponder{APIKey: config.GeminiAPIKey}
	handlers := api.NewHandlers(st, responder)

	// CORS Middleware
	corsMiddleware := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	// Storefront
	http.HandleFunc("/products", corsMiddleware(handlers.ProductsHandler))
	http.HandleFunc("/categories", corsMiddleware(handlers.CategoriesHandler))
	http.HandleFunc("/blogs", corsMiddleware(handlers.BlogsHandler))

	// Bag (per-session, never persisted)
	http.HandleFunc("/cart", corsMiddleware(handlers.CartHandler))
	http.HandleFunc("/cart/items", corsMiddleware(handlers.AddToCartHandler))
	http.HandleFunc("/cart/remove", corsMiddleware(handlers.RemoveFromCartHandler))

	// AI stylist
	http.HandleFunc("/stylist/chat", corsMiddleware(handlers.ChatHandler))
	http.HandleFunc("/stylist/transcript", corsMiddleware(handlers.TranscriptHandler))

	// Newsletter
	http.HandleFunc("/newsletter/subscribe", corsMiddleware(handlers.NewsletterHandler))

	// Admin overlay
	http.HandleFunc("/admin/unlock", corsMiddleware(handlers.UnlockHandler))
	http.HandleFunc("/admin/products", corsMiddleware(api.AdminOnly(handlers.UpsertProductHandler)))
	http.HandleFunc("/admin/products/delete", corsMiddleware(api.AdminOnly(handlers.DeleteProductHandler)))
	http.HandleFunc("/admin/categories", corsMiddleware(api.AdminOnly(handlers.AddCategoryHandler)))
	http.HandleFunc("/admin/categories/delete", corsMiddleware(api.AdminOnly(handlers.DeleteCategoryHandler)))
	http.HandleFunc("/admin/blogs", corsMiddleware(api.AdminOnly(handlers.AddBlogPostHandler)))
	http.HandleFunc("/admin/blogs/delete", corsMiddleware(api.AdminOnly(handlers.DeleteBlogPostHandler)))
	http.HandleFunc("/admin/blogs/preview", corsMiddleware(api.AdminOnly(handlers.BlogPreviewHandler)))
	http.HandleFunc("/admin/images", corsMiddleware(api.AdminOnly(handlers.UploadImageHandler)))

	port := config.Port
	fmt.Printf("Server starting on port %s...\n", port)
	fmt.Printf("Usage: curl \"http://localhost:%s/products?category=Footwear\"\n", port)
	if err := http.ListenAndServe(":"+port, utils.LatencyMiddleware(http.DefaultServeMux)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
