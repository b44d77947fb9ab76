package interpreter

import (
	"strings"

	"github.com/aimeevoice/aimee-web-app/internal/catalog"
	"github.com/aimeevoice/aimee-web-app/internal/models"
)

// Intent — классифицированная цель реплики пользователя.
type Intent string

const (
	IntentEmail     Intent = "email"
	IntentInventory Intent = "inventory"
	IntentPricing   Intent = "pricing"
	IntentCustomers Intent = "customers"
	IntentSales     Intent = "sales"
	IntentHelp      Intent = "help"
	IntentGreeting  Intent = "greeting"
	IntentGeneral   Intent = "general"
)

// Result is what a single utterance interprets to. Draft is set only for
// email intent when a customer was matched.
type Result struct {
	Intent Intent             `json:"intent"`
	Text   string             `json:"text"`
	Draft  *models.EmailDraft `json:"draft,omitempty"`
}

type query struct {
	raw     string
	lowered string
}

// rule — пара (предикат, обработчик). Правила проверяются сверху вниз,
// срабатывает первое подошедшее; порядок списка — часть контракта.
type rule struct {
	match  func(q query) bool
	handle func(q query) Result
}

// Interpreter classifies utterances against a fixed catalog. It holds no
// mutable state: the same input against the same store always yields the
// same result.
type Interpreter struct {
	store *catalog.Store
	rules []rule
}

func New(store *catalog.Store) *Interpreter {
	i := &Interpreter{store: store}
	i.rules = []rule{
		{i.matchConfirmation, i.handleConfirmation},
		{i.matchEmail, i.handleEmail},
		{i.matchInventory, i.handleInventory},
		{i.matchPricing, i.handlePricing},
		{i.matchCustomers, i.handleCustomers},
		{i.matchSales, i.handleSales},
		{i.matchHelp, i.handleHelp},
		{i.matchGreeting, i.handleGreeting},
	}
	return i
}

// Interpret never fails: every branch, including "nothing matched", produces
// a user-facing response.
func (i *Interpreter) Interpret(utterance string) Result {
	q := query{
		raw:     utterance,
		lowered: strings.ToLower(utterance),
	}
	for _, r := range i.rules {
		if r.match(q) {
			return r.handle(q)
		}
	}
	return i.handleFallback(q)
}

func containsAny(s string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// containsAnyWord matches on token boundaries, so "hi" never fires inside
// "which" or "shiraz".
func containsAnyWord(s string, words ...string) bool {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	for _, t := range tokens {
		for _, w := range words {
			if t == w {
				return true
			}
		}
	}
	return false
}

func (i *Interpreter) matchConfirmation(q query) bool {
	return containsAny(q.lowered, "confirm email", "email ready")
}

func (i *Interpreter) matchEmail(q query) bool {
	return containsAny(q.lowered, "email", "send", "contact")
}

func (i *Interpreter) matchInventory(q query) bool {
	return containsAny(q.lowered, "inventory", "stock", "have")
}

func (i *Interpreter) matchPricing(q query) bool {
	return containsAny(q.lowered, "price", "cost", "$", "how much")
}

func (i *Interpreter) matchCustomers(q query) bool {
	return containsAny(q.lowered, "customer", "bought", "ordered", "who", "order", "purchase")
}

func (i *Interpreter) matchSales(q query) bool {
	return containsAny(q.lowered, "sales", "revenue", "total")
}

func (i *Interpreter) matchHelp(q query) bool {
	return containsAny(q.lowered, "help", "what can you", "capabilities")
}

func (i *Interpreter) matchGreeting(q query) bool {
	return containsAnyWord(q.lowered, "hello", "hi", "hey")
}

func wantsEverything(lowered string) bool {
	return containsAny(lowered, "all", "everything", "complete")
}
