package seed

import (
	"context"

	"gorm.io/gorm"

	"github.com/coppercraft/shop/internal/hash"
	"github.com/coppercraft/shop/internal/models"
	"github.com/coppercraft/shop/internal/repo"
)

const (
	AdminEmail    = "admin@brovionart.com"
	adminName     = "Admin User"
	adminPassword = "admin123"
)

type Seeder struct {
	DB *gorm.DB
}

// Run populates an empty catalog with the sample products and one admin
// account. A non-empty catalog makes it a no-op, so repeated calls never
// duplicate data.
func (s *Seeder) Run(ctx context.Context) (string, error) {
	products := repo.ProductRepo{DB: s.DB}
	total, err := products.Count(ctx)
	if err != nil {
		return "", err
	}
	if total > 0 {
		return "Data already seeded", nil
	}

	pwHash, err := hash.HashPassword(adminPassword)
	if err != nil {
		return "", err
	}
	admin := models.User{
		Email:        AdminEmail,
		FullName:     adminName,
		PasswordHash: pwHash,
		IsAdmin:      true,
	}
	if err := s.DB.WithContext(ctx).Create(&admin).Error; err != nil {
		return "", err
	}

	catalog := sampleProducts()
	if err := s.DB.WithContext(ctx).Create(&catalog).Error; err != nil {
		return "", err
	}

	return "Data seeded successfully", nil
}

func sampleProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Copper Tree of Life",
			Description: "Handcrafted copper wall art depicting the tree of life, symbolizing growth and connection. This intricate piece is made from high-quality copper and features detailed branches and leaves that catch the light beautifully. Each piece is handmade by our skilled artisans, ensuring that no two are exactly alike.",
			Price:       129.99,
			Category:    "wall-art",
			Inventory:   10,
			ImageURL:    "/placeholder.svg?height=600&width=600",
			Dimensions:  `24" x 24"`,
			Weight:      "3.5 lbs",
			Material:    "Pure Copper",
		},
		{
			Name:        "Metal Mandala Wall Art",
			Description: "Intricate metal mandala design, perfect for adding a touch of elegance to any wall. This beautiful mandala is crafted with precision and attention to detail, creating a mesmerizing pattern that draws the eye. The metal construction ensures durability while maintaining a lightweight profile for easy hanging.",
			Price:       89.99,
			Category:    "wall-art",
			Inventory:   15,
			ImageURL:    "/placeholder.svg?height=600&width=600",
			Dimensions:  `20" diameter`,
			Weight:      "2.8 lbs",
			Material:    "Iron with copper finish",
		},
		{
			Name:        "Metal Butterfly Wall Art",
			Description: "Beautiful metal butterfly design that adds a touch of nature to your walls. This delicate yet sturdy piece captures the grace and beauty of butterflies in flight. The metal construction catches and reflects light, creating a dynamic display that changes throughout the day.",
			Price:       79.99,
			Category:    "wall-art",
			Inventory:   8,
			ImageURL:    "/placeholder.svg?height=600&width=600",
			Dimensions:  `18" x 14"`,
			Weight:      "2.2 lbs",
			Material:    "Brass with patina finish",
		},
		{
			Name:        "Engraved Copper Bottle",
			Description: "Premium copper bottle with intricate hand-engraved designs. Keeps water naturally pure. This bottle is crafted from high-quality copper and features traditional hand-engraved patterns that showcase the skill of our artisans. Copper naturally ionizes water, making it more alkaline and beneficial for health.",
			Price:       49.99,
			Category:    "copper-bottles",
			Inventory:   20,
			ImageURL:    "/placeholder.svg?height=600&width=600",
			Capacity:    "750 ml",
			Weight:      "0.9 lbs",
			Material:    "99.5% Pure Copper",
		},
		{
			Name:        "Hammered Copper Bottle",
			Description: "Copper bottle with a beautiful hammered texture for a unique look. The hammered finish not only enhances the visual appeal but also strengthens the bottle. Each hammer mark is made by hand, creating a one-of-a-kind pattern that catches the light beautifully.",
			Price:       54.99,
			Category:    "copper-bottles",
			Inventory:   12,
			ImageURL:    "/placeholder.svg?height=600&width=600",
			Capacity:    "850 ml",
			Weight:      "1.0 lbs",
			Material:    "Pure Copper",
		},
		{
			Name:        "Copper Bottle with Wooden Lid",
			Description: "Copper bottle featuring a handcrafted wooden lid for an eco-friendly touch. This bottle combines the health benefits of copper with the natural warmth of wood. The wooden lid provides a secure seal and adds a touch of organic elegance to the design.",
			Price:       59.99,
			Category:    "copper-bottles",
			Inventory:   15,
			ImageURL:    "/placeholder.svg?height=600&width=600",
			Capacity:    "950 ml",
			Weight:      "1.2 lbs",
			Material:    "Pure Copper with Teak Wood Lid",
		},
	}
}
