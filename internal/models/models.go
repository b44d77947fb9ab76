package models

import (
	"time"

	"github.com/google/uuid"
)

// Wine — позиция каталога. Каталог статический: загружается один раз на старте
// и после этого не изменяется, поэтому цена и остаток фактически неизменяемы.
type Wine struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Vintage     int       `json:"vintage"`
	PriceCents  int64     `json:"price_cents"`
	Stock       int       `json:"stock"`
	Region      string    `json:"region"`
	Description string    `json:"description,omitempty"`
}

type Customer struct {
	ID           uuid.UUID  `json:"id"`
	Organization string     `json:"organization"`
	ContactName  string     `json:"contact_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	LastOrder    *time.Time `json:"last_order,omitempty"`
}

// Order ссылается на покупателя и вино по имени, а не по id. Так исторически
// устроены сид-данные; коллизии фрагментов имён — известное ограничение.
type Order struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	WineName     string    `json:"wine_name"`
	Quantity     int       `json:"quantity"`
	Date         time.Time `json:"date"`
	TotalCents   int64     `json:"total_cents"`
}

// EmailDraft — черновик письма, собранный интерпретатором. Не сохраняется:
// живёт в памяти до явного подтверждения или истечения срока.
type EmailDraft struct {
	Recipient string `json:"recipient"`
	Body      string `json:"body"`
}
