package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/rohitkr5850/storefront/internal/domain"
)

// Fixed identifiers so the mock dataset is stable across restarts and
// addressable from docs and manual testing.
var (
	VendorTechGadgetsID = uuid.MustParse("a1f0e3b2-7c44-4a1d-9e85-2f6b8c9d0a11")
	VendorHomeStyleID   = uuid.MustParse("b2e1d4c3-8d55-4b2e-8f96-3a7c9d0e1b22")

	UserShopperID = uuid.MustParse("c3d2e5f4-9e66-4c3f-9aa7-4b8d0e1f2c33")
	UserVendorID  = VendorTechGadgetsID
	UserAdminID   = uuid.MustParse("d4c3f6e5-af77-4d40-8bb8-5c9e1f203d44")
)

func seedUsers() []*domain.User {
	now := time.Now()
	return []*domain.User{
		{
			ID:        UserShopperID,
			Name:      "Alex Morgan",
			Email:     "alex@example.com",
			Role:      domain.RoleUser,
			CreatedAt: now.AddDate(0, -6, 0),
		},
		{
			ID:        UserVendorID,
			Name:      "TechGadgets",
			Email:     "vendor@techgadgets.example.com",
			Role:      domain.RoleVendor,
			CreatedAt: now.AddDate(-1, 0, 0),
		},
		{
			ID:        UserAdminID,
			Name:      "Site Admin",
			Email:     "admin@example.com",
			Role:      domain.RoleAdmin,
			CreatedAt: now.AddDate(-2, 0, 0),
		},
	}
}

func seedProducts() []*domain.Product {
	now := time.Now()

	product := func(id, title, description string, price, discount, rating float64,
		stock int, brand, category string, vendorID uuid.UUID, vendorName string,
		ageDays int, badges ...string) *domain.Product {
		created := now.AddDate(0, 0, -ageDays)
		return &domain.Product{
			ID:                 uuid.MustParse(id),
			Title:              title,
			Description:        description,
			Price:              price,
			DiscountPercentage: discount,
			Rating:             rating,
			Stock:              stock,
			Brand:              brand,
			Category:           category,
			Thumbnail:          "https://images.example.com/" + id + "/thumb.jpg",
			Images:             []string{"https://images.example.com/" + id + "/1.jpg"},
			VendorID:           vendorID,
			VendorName:         vendorName,
			Badges:             badges,
			CreatedAt:          created,
			UpdatedAt:          created,
		}
	}

	return []*domain.Product{
		product("11111111-0000-4000-8000-000000000001",
			"Wireless Noise-Cancelling Headphones",
			"Over-ear headphones with 30-hour battery life and active noise cancellation.",
			199.99, 15, 4.7, 45, "SoundCore", "Electronics",
			VendorTechGadgetsID, "TechGadgets", 3, "Best Seller"),
		product("11111111-0000-4000-8000-000000000002",
			"Smart Fitness Watch",
			"Water-resistant fitness tracker with heart rate monitor and GPS.",
			149.50, 0, 4.3, 60, "FitTech", "Electronics",
			VendorTechGadgetsID, "TechGadgets", 10),
		product("11111111-0000-4000-8000-000000000003",
			"Mechanical Gaming Keyboard",
			"RGB backlit mechanical keyboard with hot-swappable switches.",
			89.99, 10, 4.5, 120, "KeyForge", "Electronics",
			VendorTechGadgetsID, "TechGadgets", 21, "New"),
		product("11111111-0000-4000-8000-000000000004",
			"Portable Bluetooth Speaker",
			"Compact speaker with 360-degree sound and 12-hour playtime.",
			59.00, 0, 3.9, 80, "SoundCore", "Electronics",
			VendorTechGadgetsID, "TechGadgets", 40),
		product("22222222-0000-4000-8000-000000000001",
			"Ceramic Pour-Over Coffee Set",
			"Hand-glazed ceramic dripper and carafe for slow brewing at home.",
			42.00, 0, 4.8, 25, "HomeStyle", "Home",
			VendorHomeStyleID, "HomeStyle", 7, "Handmade"),
		product("22222222-0000-4000-8000-000000000002",
			"Linen Throw Blanket",
			"Stonewashed linen blanket, breathable for all seasons.",
			75.00, 20, 4.4, 30, "HomeStyle", "Home",
			VendorHomeStyleID, "HomeStyle", 14),
		product("22222222-0000-4000-8000-000000000003",
			"Organic Cotton T-Shirt",
			"Classic-fit t-shirt in certified organic cotton.",
			24.99, 0, 4.1, 200, "PlainWear", "Clothing",
			VendorHomeStyleID, "HomeStyle", 5),
		product("22222222-0000-4000-8000-000000000004",
			"Denim Jacket",
			"Mid-weight denim jacket with a relaxed fit.",
			110.00, 25, 4.6, 18, "PlainWear", "Clothing",
			VendorHomeStyleID, "HomeStyle", 30, "Sale"),
		product("22222222-0000-4000-8000-000000000005",
			"Leather Card Wallet",
			"Slim vegetable-tanned leather wallet with four card slots.",
			35.50, 0, 4.2, 55, "HomeStyle", "Accessories",
			VendorHomeStyleID, "HomeStyle", 60),
		product("11111111-0000-4000-8000-000000000005",
			"USB-C Charging Station",
			"Six-port desktop charger with power delivery on every port.",
			48.75, 5, 3.7, 95, "VoltHub", "Accessories",
			VendorTechGadgetsID, "TechGadgets", 90),
	}
}
