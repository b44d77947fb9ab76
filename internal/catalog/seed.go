package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/aimeevoice/aimee-web-app/internal/models"
)

// Сид-данные каталога. ID фиксированы, чтобы ссылки оставались стабильными
// между перезапусками (данные в памяти и восстанавливаются при старте).

func seedWines() []models.Wine {
	return []models.Wine{
		{
			ID:          uuid.MustParse("7b0d9c52-1f6e-4a3b-9f2d-3c8a1e5b7d01"),
			Name:        "Willamette Pinot Noir",
			Vintage:     2021,
			PriceCents:  3850,
			Stock:       14,
			Region:      "Willamette Valley, Oregon",
			Description: "Bright cherry and forest floor, silky tannins.",
		},
		{
			ID:         uuid.MustParse("7b0d9c52-1f6e-4a3b-9f2d-3c8a1e5b7d02"),
			Name:       "Russian River Chardonnay",
			Vintage:    2022,
			PriceCents: 2400,
			Stock:      3,
			Region:     "Sonoma County, California",
		},
		{
			ID:          uuid.MustParse("7b0d9c52-1f6e-4a3b-9f2d-3c8a1e5b7d03"),
			Name:        "Barolo Riserva",
			Vintage:     2017,
			PriceCents:  8999,
			Stock:       0,
			Region:      "Piedmont, Italy",
			Description: "Tar and roses, built for the cellar.",
		},
		{
			ID:         uuid.MustParse("7b0d9c52-1f6e-4a3b-9f2d-3c8a1e5b7d04"),
			Name:       "Rioja Gran Reserva",
			Vintage:    2016,
			PriceCents: 4599,
			Stock:      22,
			Region:     "Rioja, Spain",
		},
		{
			ID:         uuid.MustParse("7b0d9c52-1f6e-4a3b-9f2d-3c8a1e5b7d05"),
			Name:       "Marlborough Sauvignon Blanc",
			Vintage:    2023,
			PriceCents: 1900,
			Stock:      40,
			Region:     "Marlborough, New Zealand",
		},
		{
			ID:         uuid.MustParse("7b0d9c52-1f6e-4a3b-9f2d-3c8a1e5b7d06"),
			Name:       "Chablis Premier Cru",
			Vintage:    2020,
			PriceCents: 5250,
			Stock:      5,
			Region:     "Burgundy, France",
		},
		{
			ID:          uuid.MustParse("7b0d9c52-1f6e-4a3b-9f2d-3c8a1e5b7d07"),
			Name:        "Napa Cabernet Sauvignon",
			Vintage:     2019,
			PriceCents:  7500,
			Stock:       8,
			Region:      "Napa Valley, California",
			Description: "Blackcurrant and cedar, long finish.",
		},
		{
			ID:         uuid.MustParse("7b0d9c52-1f6e-4a3b-9f2d-3c8a1e5b7d08"),
			Name:       "Mosel Riesling Kabinett",
			Vintage:    2022,
			PriceCents: 2250,
			Stock:      2,
			Region:     "Mosel, Germany",
		},
	}
}

func seedCustomers() []models.Customer {
	lastCork := time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC)
	lastBistro := time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC)
	return []models.Customer{
		{
			ID:           uuid.MustParse("a4f1c3e8-5b2d-4c7a-8e9f-1d6b3a2c5e01"),
			Organization: "Cork & Barrel",
			ContactName:  "Maria Santos",
			Email:        "maria@corkandbarrel.com",
			Phone:        "+1-503-555-0114",
			LastOrder:    &lastCork,
		},
		{
			ID:           uuid.MustParse("a4f1c3e8-5b2d-4c7a-8e9f-1d6b3a2c5e02"),
			Organization: "Vineyard Bistro",
			ContactName:  "James Chen",
			Email:        "james@vineyardbistro.com",
			LastOrder:    &lastBistro,
		},
		{
			ID:           uuid.MustParse("a4f1c3e8-5b2d-4c7a-8e9f-1d6b3a2c5e03"),
			Organization: "Harborview Hotel",
			ContactName:  "Sofia Laurent",
			Email:        "sofia.laurent@harborview.com",
			Phone:        "+1-206-555-0182",
		},
		{
			ID:           uuid.MustParse("a4f1c3e8-5b2d-4c7a-8e9f-1d6b3a2c5e04"),
			Organization: "Oak Street Wines",
			ContactName:  "Daniel Brooks",
			Email:        "daniel@oakstreetwines.com",
		},
	}
}

func seedOrders() []models.Order {
	return []models.Order{
		{
			ID:           uuid.MustParse("c2e7a9d4-3f8b-4e1c-a5d6-7b9e2f4c8a01"),
			CustomerName: "Cork & Barrel",
			WineName:     "Willamette Pinot Noir",
			Quantity:     12,
			Date:         time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC),
			TotalCents:   46200,
		},
		{
			ID:           uuid.MustParse("c2e7a9d4-3f8b-4e1c-a5d6-7b9e2f4c8a02"),
			CustomerName: "Vineyard Bistro",
			WineName:     "Rioja Gran Reserva",
			Quantity:     6,
			Date:         time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC),
			TotalCents:   27594,
		},
		{
			// Case discount applied at sale time; total is the invoiced amount,
			// not quantity times list price.
			ID:           uuid.MustParse("c2e7a9d4-3f8b-4e1c-a5d6-7b9e2f4c8a03"),
			CustomerName: "Harborview Hotel",
			WineName:     "Marlborough Sauvignon Blanc",
			Quantity:     24,
			Date:         time.Date(2025, 8, 24, 0, 0, 0, 0, time.UTC),
			TotalCents:   43200,
		},
		{
			ID:           uuid.MustParse("c2e7a9d4-3f8b-4e1c-a5d6-7b9e2f4c8a04"),
			CustomerName: "Oak Street Wines",
			WineName:     "Chablis Premier Cru",
			Quantity:     4,
			Date:         time.Date(2025, 8, 26, 0, 0, 0, 0, time.UTC),
			TotalCents:   21000,
		},
	}
}

// SeedStore builds the store with the shop's static catalog.
func SeedStore() *Store {
	return NewStore(seedWines(), seedCustomers(), seedOrders())
}
