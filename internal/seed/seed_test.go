package seed

import (
	"context"
	"testing"

	"halalpoultry-be/internal/category"
	"halalpoultry-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededRepos(t *testing.T) (category.Repository, product.Repository) {
	t.Helper()
	categoryRepo := category.NewMemoryRepository()
	productRepo := product.NewMemoryRepository()
	require.NoError(t, Load(context.Background(), categoryRepo, productRepo))
	return categoryRepo, productRepo
}

func TestLoad_CatalogShape(t *testing.T) {
	ctx := context.Background()
	categoryRepo, productRepo := seededRepos(t)

	cats, err := categoryRepo.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 6)
	assert.Equal(t, 1, cats[0].ID)
	assert.Equal(t, "fresh-chicken-cuts", cats[0].Slug)
	assert.Equal(t, "eggs-add-ons", cats[5].Slug)

	prods, err := productRepo.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, prods, 12)
}

func TestLoad_WholeChicken(t *testing.T) {
	ctx := context.Background()
	_, productRepo := seededRepos(t)

	p, err := productRepo.GetProductBySlug(ctx, "whole-chicken")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 5.99, p.Price)
	assert.Equal(t, "kg", p.Unit)
	assert.Equal(t, float64(5), p.MinimumOrderQuantity)
	assert.True(t, p.Featured)
	require.Len(t, p.Options, 1)
	assert.Equal(t, "Type", p.Options[0].Name)
	assert.Equal(t, []string{"With Skin", "Skinless"}, p.Options[0].Values)
}

func TestLoad_SearchWing(t *testing.T) {
	ctx := context.Background()
	_, productRepo := seededRepos(t)

	matches, err := productRepo.SearchProducts(ctx, "wing")
	require.NoError(t, err)

	names := make([]string, 0, len(matches))
	for _, p := range matches {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"Chicken Wings", "BBQ Chicken Wings"}, names)
}

func TestLoad_FeaturedSelection(t *testing.T) {
	ctx := context.Background()
	_, productRepo := seededRepos(t)

	featured, err := productRepo.GetFeaturedProducts(ctx)
	require.NoError(t, err)

	slugs := make([]string, 0, len(featured))
	for _, p := range featured {
		slugs = append(slugs, p.Slug)
	}
	assert.ElementsMatch(t, []string{
		"whole-chicken", "spicy-chicken-tikka", "bbq-chicken-wings", "chicken-seekh-kabab",
	}, slugs)
}

func TestLoad_SlugsAreUnique(t *testing.T) {
	ctx := context.Background()
	categoryRepo, productRepo := seededRepos(t)

	catSlugs := map[string]bool{}
	cats, _ := categoryRepo.GetCategories(ctx)
	for _, c := range cats {
		assert.False(t, catSlugs[c.Slug], "duplicate category slug %q", c.Slug)
		catSlugs[c.Slug] = true
	}

	prodSlugs := map[string]bool{}
	prods, _ := productRepo.GetProducts(ctx)
	for _, p := range prods {
		assert.False(t, prodSlugs[p.Slug], "duplicate product slug %q", p.Slug)
		prodSlugs[p.Slug] = true
	}
}

func TestLoad_CategoryReferencesResolve(t *testing.T) {
	ctx := context.Background()
	categoryRepo, productRepo := seededRepos(t)

	prods, _ := productRepo.GetProducts(ctx)
	for _, p := range prods {
		c, err := categoryRepo.GetCategoryByID(ctx, p.CategoryID)
		require.NoError(t, err)
		assert.NotNil(t, c, "product %q references missing category %d", p.Slug, p.CategoryID)
	}

	marinated, err := productRepo.GetProductsByCategory(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, marinated, 2)
}
