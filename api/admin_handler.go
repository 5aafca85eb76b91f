package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nomad-essentials/storefront/config"
	"github.com/nomad-essentials/storefront/models"
	"github.com/nomad-essentials/storefront/utils"
)

// UnlockHandler is the easter-egg gate behind the admin overlay. The
// five-tap reveal gesture lives entirely in the client; the server only
// checks the passphrase and mints a token that flags "show the admin
// entry point" for the rest of the session. This is deliberately not an
// authentication system and is documented as cosmetic; whether it should
// ever become one is left open rather than resolved here.
func (h *Handlers) UnlockHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Admin Unlock API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Passphrase string `json:"passphrase"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if !passphraseMatches(req.Passphrase) {
		utils.RespondError(w, &logMessageBuilder, "Invalid credential", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to generate token: %v", err), http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Admin overlay unlocked")
	utils.RespondJSON(w, http.StatusOK, map[string]string{"token": token})
}

func passphraseMatches(passphrase string) bool {
	if config.AdminPassphraseHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(config.AdminPassphraseHash), []byte(passphrase)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(passphrase), []byte(config.AdminPassphrase)) == 1
}

// AdminOnly wraps a handler with the unlock-token check.
func AdminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			utils.RespondError(w, nil, "Missing admin token", http.StatusUnauthorized)
			return
		}
		if err := utils.ValidateAdminToken(token); err != nil {
			utils.RespondError(w, nil, "Invalid admin token", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

// UpsertProductHandler creates or replaces a product. Required fields are
// enforced here at the input layer; the store itself accepts anything.
func (h *Handlers) UpsertProductHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Admin Upsert Product API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if product.Name == "" || product.Category == "" {
		utils.RespondError(w, &logMessageBuilder, "name and category are required", http.StatusBadRequest)
		return
	}

	saved := h.store.UpsertProduct(r.Context(), product)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Saved product %s", saved.ID))
	utils.RespondJSON(w, http.StatusOK, saved)
}

// DeleteProductHandler removes a product by id.
func (h *Handlers) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, "[Admin Delete Product API]", h.store.DeleteProduct)
}

// AddCategoryHandler appends a category; duplicates and empty names are
// silently ignored, matching the original dashboard.
func (h *Handlers) AddCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Admin Add Category API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	h.store.AddCategory(r.Context(), req.Name)
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.store.Categories(),
	})
}

// DeleteCategoryHandler removes a category. Products tagged with it are
// not reassigned; they simply stop matching any concrete category view.
func (h *Handlers) DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Admin Delete Category API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	h.store.DeleteCategory(r.Context(), req.Name)
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.store.Categories(),
	})
}

// AddBlogPostHandler prepends a templated journal draft and returns it.
func (h *Handlers) AddBlogPostHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Admin Add Blog API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	post := h.store.AddBlogPost(r.Context())
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Created journal draft %s", post.ID))
	utils.RespondJSON(w, http.StatusOK, post)
}

// DeleteBlogPostHandler removes a journal post by id.
func (h *Handlers) DeleteBlogPostHandler(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, "[Admin Delete Blog API]", h.store.DeleteBlogPost)
}

// BlogPreviewHandler scrapes OpenGraph metadata from an article URL so the
// dashboard can prefill a journal draft.
func (h *Handlers) BlogPreviewHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Admin Blog Preview API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		utils.RespondError(w, &logMessageBuilder, "url is required", http.StatusBadRequest)
		return
	}

	preview, err := utils.FetchLinkPreview(req.URL)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to fetch preview: %v", err), http.StatusBadGateway)
		return
	}

	utils.RespondJSON(w, http.StatusOK, preview)
}

// UploadImageHandler stores an uploaded image in S3 under a fresh key and
// returns a presigned URL for the product/blog image field.
func (h *Handlers) UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Admin Upload Image API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil { // 10 MB limit
		utils.RespondError(w, &logMessageBuilder, "Error parsing form data", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	objectKey := fmt.Sprintf("catalog/%s%s", uuid.New().String(), ext)

	key, err := utils.UploadFileToS3(r.Context(), file, objectKey, header.Header.Get("Content-Type"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Error uploading image: %v", err), http.StatusInternalServerError)
		return
	}

	url, err := utils.GetPresignedURL(r.Context(), key)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Error signing image URL: %v", err), http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Uploaded image %s", key))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"key": key, "url": url})
}

// deleteByID is the shared shape of the delete endpoints: a POST with a
// JSON {id}, a store delete call, and an ok response. Deleting an absent
// id is a no-op.
func (h *Handlers) deleteByID(w http.ResponseWriter, r *http.Request, tag string, del func(ctx context.Context, id string)) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, tag)

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		utils.RespondError(w, &logMessageBuilder, "id is required", http.StatusBadRequest)
		return
	}

	del(r.Context(), req.ID)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Deleted %s", req.ID))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
