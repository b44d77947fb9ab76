package catalog

import (
	"strings"

	"github.com/aimeevoice/aimee-web-app/internal/models"
)

// Store хранит статический каталог: вина, покупатели, заказы. Все коллекции
// заполняются один раз при создании и дальше только читаются, поэтому Store
// безопасен для конкурентного доступа без блокировок.
type Store struct {
	wines     []models.Wine
	customers []models.Customer
	orders    []models.Order
}

// NewStore copies the given collections so later mutation of the caller's
// slices cannot leak into the store.
func NewStore(wines []models.Wine, customers []models.Customer, orders []models.Order) *Store {
	s := &Store{
		wines:     make([]models.Wine, len(wines)),
		customers: make([]models.Customer, len(customers)),
		orders:    make([]models.Order, len(orders)),
	}
	copy(s.wines, wines)
	copy(s.customers, customers)
	copy(s.orders, orders)
	return s
}

// fragmentMatch — двунаправленный substring-тест: поле каталога входит в
// запрос, либо запрос входит в поле. Регистр не учитывается.
func fragmentMatch(field, loweredText string) bool {
	f := strings.ToLower(field)
	if f == "" || loweredText == "" {
		return false
	}
	return strings.Contains(loweredText, f) || strings.Contains(f, loweredText)
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// FindWineByFragment returns the first wine (catalog declaration order) whose
// name matches the text as a fragment, or nil when none does.
func (s *Store) FindWineByFragment(text string) *models.Wine {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return nil
	}
	for i := range s.wines {
		if fragmentMatch(s.wines[i].Name, lowered) {
			w := s.wines[i]
			return &w
		}
	}
	return nil
}

// FindCustomerByFragment matches against the organization name, the first word
// of the organization name and the first word of the contact name. First match
// in declaration order wins.
func (s *Store) FindCustomerByFragment(text string) *models.Customer {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return nil
	}
	for i := range s.customers {
		c := &s.customers[i]
		if fragmentMatch(c.Organization, lowered) ||
			fragmentMatch(firstWord(c.Organization), lowered) ||
			fragmentMatch(firstWord(c.ContactName), lowered) {
			out := *c
			return &out
		}
	}
	return nil
}

func (s *Store) Wines() []models.Wine {
	out := make([]models.Wine, len(s.wines))
	copy(out, s.wines)
	return out
}

func (s *Store) Customers() []models.Customer {
	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

func (s *Store) Orders() []models.Order {
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrderSummary — свод по всем сид-заказам. RevenueCents складывается из
// сохранённых total заказов, а не пересчитывается как цена×количество.
type OrderSummary struct {
	Orders       []models.Order `json:"orders"`
	RevenueCents int64          `json:"revenue_cents"`
	Bottles      int            `json:"bottles"`
}

// AggregateOrders folds the whole seed list. There is no time windowing:
// "recent" is everything the catalog was seeded with.
func (s *Store) AggregateOrders() OrderSummary {
	sum := OrderSummary{Orders: s.Orders()}
	for _, o := range s.orders {
		sum.RevenueCents += o.TotalCents
		sum.Bottles += o.Quantity
	}
	return sum
}
