package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomad-essentials/storefront/models"
	"github.com/nomad-essentials/storefront/persist"
)

type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func fixedNow() time.Time {
	return time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
}

func newTestStore(t *testing.T) (*Store, *persist.Memory) {
	t.Helper()
	mem := persist.NewMemory()
	s := New(mem, &seqIDs{}, fixedNow)
	s.Load(context.Background())
	return s, mem
}

func TestLoadFallsBackToSeed(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Len(t, s.Products(), 8)
	assert.Equal(t, []string{"All", "Clothing", "Footwear", "Headwear", "Accessories"}, s.Categories())
	assert.Len(t, s.Blogs(), 2)
}

func TestLoadCorruptSnapshotFallsBackToSeed(t *testing.T) {
	mem := persist.NewMemory()
	ctx := context.Background()
	require.NoError(t, mem.Save(ctx, KeyProducts, []byte("{not json")))
	require.NoError(t, mem.Save(ctx, KeyCategories, []byte("also not json]")))

	s := New(mem, nil, nil)
	s.Load(ctx)

	assert.Len(t, s.Products(), 8, "corrupt snapshot must reseed, not come up empty")
	assert.Equal(t, []string{"All", "Clothing", "Footwear", "Headwear", "Accessories"}, s.Categories())
}

func TestFilterProducts(t *testing.T) {
	s, _ := newTestStore(t)

	all := s.FilterProducts(CategoryAll)
	assert.Len(t, all, 8)

	footwear := s.FilterProducts("Footwear")
	require.Len(t, footwear, 3)
	// Insertion order is preserved.
	assert.Equal(t, "2", footwear[0].ID)
	assert.Equal(t, "7", footwear[1].ID)
	assert.Equal(t, "8", footwear[2].ID)

	assert.Empty(t, s.FilterProducts("footwear"), "match is case-sensitive")
	assert.Empty(t, s.FilterProducts("Nonexistent"))
}

func TestUpsertProductAppendsWithGeneratedID(t *testing.T) {
	s, _ := newTestStore(t)

	saved := s.UpsertProduct(context.Background(), models.Product{Name: "Wool Scarf", Price: 60, Category: "Accessories"})
	assert.Equal(t, "id-1", saved.ID)

	products := s.Products()
	assert.Equal(t, saved, products[len(products)-1])
}

func TestUpsertProductReplacesExisting(t *testing.T) {
	s, _ := newTestStore(t)

	updated := models.Product{ID: "1", Name: "Heavyweight Boxy Hoodie", Price: 130, Category: "Clothing"}
	saved := s.UpsertProduct(context.Background(), updated)
	assert.Equal(t, "1", saved.ID)

	products := s.Products()
	assert.Len(t, products, 8)
	assert.Equal(t, 130, products[0].Price)
}

func TestUpsertProductUnknownIDGetsFreshID(t *testing.T) {
	s, _ := newTestStore(t)

	saved := s.UpsertProduct(context.Background(), models.Product{ID: "ghost", Name: "Ghost", Category: "Clothing"})
	assert.Equal(t, "id-1", saved.ID)
	assert.Len(t, s.Products(), 9)
}

func TestDeleteProduct(t *testing.T) {
	s, _ := newTestStore(t)

	s.DeleteProduct(context.Background(), "3")
	assert.Len(t, s.Products(), 7)

	s.DeleteProduct(context.Background(), "3")
	assert.Len(t, s.Products(), 7)
}

func TestAddCategory(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddCategory(ctx, "Outerwear")
	assert.Contains(t, s.Categories(), "Outerwear")

	s.AddCategory(ctx, "Outerwear")
	s.AddCategory(ctx, "")
	s.AddCategory(ctx, CategoryAll)
	assert.Len(t, s.Categories(), 6) // All + 4 seeds + Outerwear
}

func TestDeleteCategoryLeavesProductsOrphaned(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.Len(t, s.FilterProducts("Footwear"), 3)

	s.DeleteCategory(ctx, "Footwear")

	assert.NotContains(t, s.Categories(), "Footwear")
	assert.Empty(t, s.FilterProducts("Footwear"), "no concrete view matches the deleted category")

	// The products themselves are untouched and still show under All.
	all := s.FilterProducts(CategoryAll)
	assert.Len(t, all, 8)
	var stillTagged int
	for _, p := range all {
		if p.Category == "Footwear" {
			stillTagged++
		}
	}
	assert.Equal(t, 3, stillTagged)
}

func TestAddBlogPostPrependsTemplatedDraft(t *testing.T) {
	s, _ := newTestStore(t)

	post := s.AddBlogPost(context.Background())
	assert.Equal(t, "id-1", post.ID)
	assert.Equal(t, "New Journal Entry", post.Title)
	assert.Equal(t, "March 5, 2024", post.Date)

	blogs := s.Blogs()
	require.Len(t, blogs, 3)
	assert.Equal(t, post, blogs[0])
}

func TestDeleteBlogPost(t *testing.T) {
	s, _ := newTestStore(t)

	s.DeleteBlogPost(context.Background(), "b1")
	blogs := s.Blogs()
	require.Len(t, blogs, 1)
	assert.Equal(t, "b2", blogs[0].ID)
}

func TestMutationsPersistRoundTrip(t *testing.T) {
	s, mem := newTestStore(t)
	ctx := context.Background()

	s.AddCategory(ctx, "Outerwear")
	s.UpsertProduct(ctx, models.Product{Name: "Down Parka", Price: 320, Category: "Outerwear"})
	s.AddBlogPost(ctx)
	s.DeleteProduct(ctx, "5")

	// A fresh store over the same substrate sees exactly the same state.
	reloaded := New(mem, nil, nil)
	reloaded.Load(ctx)

	assert.Equal(t, s.Products(), reloaded.Products())
	assert.Equal(t, s.Categories(), reloaded.Categories())
	assert.Equal(t, s.Blogs(), reloaded.Blogs())
}

func TestSeedIsNotPersistedUntilFirstMutation(t *testing.T) {
	_, mem := newTestStore(t)

	data, err := mem.Load(context.Background(), KeyProducts)
	require.NoError(t, err)
	assert.Nil(t, data, "loading alone must not write snapshots")
}
