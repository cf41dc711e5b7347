// Package seed loads the fixed launch catalog into empty repositories at
// process start.
package seed

import (
	"context"
	"fmt"

	"halalpoultry-be/internal/category"
	"halalpoultry-be/internal/logger"
	"halalpoultry-be/internal/product"
	"halalpoultry-be/internal/utils"

	"go.uber.org/zap"
)

func categories() []category.CreateCategoryParams {
	return []category.CreateCategoryParams{
		{Name: "Fresh Chicken Cuts", Description: utils.StrPtr("High-quality fresh cuts of halal chicken"), Slug: "fresh-chicken-cuts"},
		{Name: "Processed Chicken Products", Description: utils.StrPtr("Ready-to-use processed chicken items"), Slug: "processed-chicken-products"},
		{Name: "Marinated & Ready-to-Cook", Description: utils.StrPtr("Pre-marinated and ready-to-cook chicken items"), Slug: "marinated-ready-to-cook"},
		{Name: "Bulk Pack Options", Description: utils.StrPtr("Bulk packs for restaurant needs"), Slug: "bulk-pack-options"},
		{Name: "Value-Added Services", Description: utils.StrPtr("Additional services for processing and packaging"), Slug: "value-added-services"},
		{Name: "Eggs & Add-ons", Description: utils.StrPtr("Eggs and other poultry products"), Slug: "eggs-add-ons"},
	}
}

func products() []product.CreateProductParams {
	return []product.CreateProductParams{
		{
			Name:                 "Whole Chicken",
			Description:          utils.StrPtr("Fresh whole chicken, carefully processed according to halal standards."),
			Slug:                 "whole-chicken",
			Price:                5.99,
			ImageURL:             utils.StrPtr("https://pixabay.com/get/geb4ae53284bfd5c8e540b77e8ec0c18be1c59454c4481ca08ad768b405e850ae7ae09646d11598cf81e5ce01a63cb9fa24b844a8f393137eda13b3c492b0cb6d_1280.jpg"),
			CategoryID:           1,
			Featured:             true,
			InStock:              true,
			MinimumOrderQuantity: 5,
			Unit:                 "kg",
			Options:              product.OptionAxes{{Name: "Type", Values: []string{"With Skin", "Skinless"}}},
		},
		{
			Name:                 "Chicken Breast Boneless",
			Description:          utils.StrPtr("Premium quality boneless chicken breast cuts, perfect for a variety of dishes."),
			Slug:                 "chicken-breast-boneless",
			Price:                7.99,
			ImageURL:             utils.StrPtr("https://images.unsplash.com/photo-1602470520998-f4a52199a3d6?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400&q=80"),
			CategoryID:           1,
			InStock:              true,
			MinimumOrderQuantity: 2,
			Unit:                 "kg",
			Options:              product.OptionAxes{{Name: "Grade", Values: []string{"Premium"}}},
		},
		{
			Name:                 "Chicken Wings",
			Description:          utils.StrPtr("Delicious chicken wings, perfect for restaurants and catering businesses."),
			Slug:                 "chicken-wings",
			Price:                6.49,
			ImageURL:             utils.StrPtr("https://pixabay.com/get/gdbaef659900510c6e613638027971d141109583e0ecb0db084b62e9f0af3aa5c8fdeeb54294deaf730a2de148bc371abf2b1d435d798bee547f33add664a094d_1280.jpg"),
			CategoryID:           1,
			InStock:              true,
			MinimumOrderQuantity: 3,
			Unit:                 "kg",
			Options:              product.OptionAxes{{Name: "Type", Values: []string{"Regular", "Jumbo"}}},
		},
		{
			Name:                 "Chicken Drumsticks",
			Description:          utils.StrPtr("Juicy and tender chicken drumsticks, cut and processed to perfection."),
			Slug:                 "chicken-drumsticks",
			Price:                5.49,
			ImageURL:             utils.StrPtr("https://images.unsplash.com/photo-1587593810167-a84920ea0781?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400&q=80"),
			CategoryID:           1,
			InStock:              true,
			MinimumOrderQuantity: 2,
			Unit:                 "kg",
			Options:              product.OptionAxes{{Name: "Size", Values: []string{"Standard"}}},
		},
		{
			Name:                 "Chicken Thigh Boneless",
			Description:          utils.StrPtr("Boneless chicken thighs, perfect for curries, grills, and more."),
			Slug:                 "chicken-thigh-boneless",
			Price:                7.29,
			ImageURL:             utils.StrPtr("https://pixabay.com/get/g00bd64e6489782f7ef7d060b0a572518b00dec02fffcf6c9da1dc5f848a9a35dd7a3d574b0278599d0b58118b9bc35cc79f55412de3eab9934d9d2a0bc9f6ffa_1280.jpg"),
			CategoryID:           1,
			InStock:              true,
			MinimumOrderQuantity: 2,
			Unit:                 "kg",
			Options:              product.OptionAxes{{Name: "Quality", Values: []string{"Premium"}}},
		},
		{
			Name:                 "Chicken Mince (Kheema)",
			Description:          utils.StrPtr("Finely minced chicken meat, ideal for kababs, koftas, and more."),
			Slug:                 "chicken-mince-kheema",
			Price:                6.99,
			ImageURL:             utils.StrPtr("https://images.unsplash.com/photo-1627662168223-7df99068099a?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400&q=80"),
			CategoryID:           1,
			InStock:              true,
			MinimumOrderQuantity: 2,
			Unit:                 "kg",
			Options:              product.OptionAxes{{Name: "Fat %", Values: []string{"Regular", "Lean"}}},
		},
		{
			Name:                 "Chicken Liver",
			Description:          utils.StrPtr("Fresh chicken liver, cleaned and processed according to halal standards."),
			Slug:                 "chicken-liver",
			Price:                4.99,
			ImageURL:             utils.StrPtr("https://images.unsplash.com/photo-1588168333986-5078d3ae3976?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400&q=80"),
			CategoryID:           1,
			InStock:              true,
			MinimumOrderQuantity: 1,
			Unit:                 "kg",
			Options:              product.OptionAxes{{Name: "Processing", Values: []string{"Clean & Trimmed"}}},
		},
		{
			Name:                 "Chicken Gizzard",
			Description:          utils.StrPtr("Fresh chicken gizzards, cleaned and processed to perfection."),
			Slug:                 "chicken-gizzard",
			Price:                4.49,
			ImageURL:             utils.StrPtr("https://images.unsplash.com/photo-1516684669134-de6f7c473a2a?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400&q=80"),
			CategoryID:           1,
			InStock:              true,
			MinimumOrderQuantity: 1,
			Unit:                 "kg",
			Options:              product.OptionAxes{{Name: "Cleaning", Values: []string{"Cleaned"}}},
		},
		{
			Name:                 "Spicy Chicken Tikka",
			Description:          utils.StrPtr("Pre-marinated tender chicken pieces in our special blend of spices. Ready to cook, perfect for grilling or tandoor."),
			Slug:                 "spicy-chicken-tikka",
			Price:                9.99,
			ImageURL:             utils.StrPtr("https://pixabay.com/get/g031bfb398738079b6eae52adc2a1b2c2661d18713964391d0a101acaf96c78150a0e012ee33811a6e60e9009f0caad7e08f8e22bb2d3393f98bca3a675e740d6_1280.jpg"),
			CategoryID:           3,
			Featured:             true,
			InStock:              true,
			MinimumOrderQuantity: 2,
			Unit:                 "kg",
			Options:              product.OptionAxes{},
		},
		{
			Name:                 "BBQ Chicken Wings",
			Description:          utils.StrPtr("Marinated chicken wings in smoky BBQ sauce. Ready to cook, perfect for grilling, frying or baking."),
			Slug:                 "bbq-chicken-wings",
			Price:                8.99,
			ImageURL:             utils.StrPtr("https://images.unsplash.com/photo-1527477396000-e27163b481c2?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400&q=80"),
			CategoryID:           3,
			Featured:             true,
			InStock:              true,
			MinimumOrderQuantity: 2,
			Unit:                 "kg",
			Options:              product.OptionAxes{},
		},
		{
			Name:                 "Chicken Seekh Kabab",
			Description:          utils.StrPtr("Ready-to-cook minced chicken skewers with aromatic spices. Perfect for grilling or pan-frying."),
			Slug:                 "chicken-seekh-kabab",
			Price:                11.99,
			ImageURL:             utils.StrPtr("https://images.unsplash.com/photo-1555939594-58d7cb561ad1?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400&q=80"),
			CategoryID:           2,
			Featured:             true,
			InStock:              true,
			MinimumOrderQuantity: 2,
			Unit:                 "kg",
			Options:              product.OptionAxes{},
		},
		{
			Name:                 "5 kg Boneless Breast Pack",
			Description:          utils.StrPtr("Bulk pack of 5 kg boneless chicken breast. Perfect for restaurants and catering services."),
			Slug:                 "5kg-boneless-breast-pack",
			Price:                37.95,
			ImageURL:             utils.StrPtr("https://images.unsplash.com/photo-1602470520998-f4a52199a3d6?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400&q=80"),
			CategoryID:           4,
			InStock:              true,
			MinimumOrderQuantity: 1,
			Unit:                 "pack",
			Options:              product.OptionAxes{},
		},
	}
}

// Load writes the launch catalog into the given repositories. Category slugs
// and product slugs in the data set are unique; serial IDs come out 1..6 for
// categories and 1..12 for products when the repositories start empty, which
// the product categoryId references rely on.
func Load(ctx context.Context, categoryRepo category.Repository, productRepo product.Repository) error {
	log := logger.FromCtx(ctx).With(zap.String("component", "seed"))

	for _, params := range categories() {
		if _, err := categoryRepo.CreateCategory(ctx, params); err != nil {
			return fmt.Errorf("seed category %q: %w", params.Slug, err)
		}
	}
	for _, params := range products() {
		if _, err := productRepo.CreateProduct(ctx, params); err != nil {
			return fmt.Errorf("seed product %q: %w", params.Slug, err)
		}
	}

	log.Info("catalog seeded",
		zap.Int("categories", len(categories())),
		zap.Int("products", len(products())),
	)
	return nil
}
