package interpreter

import (
	"fmt"
	"strings"

	"github.com/aimeevoice/aimee-web-app/internal/models"
)

const (
	confirmationPrompt = "Your email is drafted and waiting. Open the drafts panel to review it, then confirm to send."

	emailGuidance = "Tell me who to email and I'll draft it for you — for example, 'email Maria about the new arrivals'."

	helpText = "I can check what's in stock, quote prices, summarize recent orders and total sales, and draft emails to your customers. Try 'do we have Barolo Riserva' or 'email Maria about new arrivals'."

	greetingText = "Hello! I'm Aimee, your wine business assistant. Ask me about inventory, pricing, customers, or sales."

	emptyCellarText = "The cellar is empty right now — there's nothing on the inventory list yet."

	noSalesText = "There are no recorded orders yet, so there's nothing to total up."
)

// Шаблоны писем. Имя контакта и организация подставляются буквально,
// как записаны в каталоге.
const (
	deliveryBody = "Hi %s,\n\nI wanted to follow up on the recent delivery to %s and make sure everything arrived in good condition. Let me know if anything needs attention, or if you'd like to schedule your next order.\n\nBest regards,\nAimee Wine Merchants"

	arrivalsBody = "Hi %s,\n\nWe've just received some exciting new arrivals I think would be a great fit for %s. I'd love to set aside a few bottles for you to taste before they're gone.\n\nBest regards,\nAimee Wine Merchants"

	outreachBody = "Hi %s,\n\nI hope business at %s has been good. It's been a little while since your last order, and I wanted to check in and see whether there's anything from our cellar you'd like me to put together for you.\n\nBest regards,\nAimee Wine Merchants"
)

func (i *Interpreter) handleConfirmation(q query) Result {
	return Result{Intent: IntentGeneral, Text: confirmationPrompt}
}

func (i *Interpreter) handleEmail(q query) Result {
	c := i.store.FindCustomerByFragment(q.lowered)
	if c == nil {
		return Result{Intent: IntentGeneral, Text: emailGuidance}
	}

	var body string
	switch {
	case containsAny(q.lowered, "order", "delivery"):
		body = fmt.Sprintf(deliveryBody, c.ContactName, c.Organization)
	case containsAny(q.lowered, "new", "arrival"):
		body = fmt.Sprintf(arrivalsBody, c.ContactName, c.Organization)
	default:
		body = fmt.Sprintf(outreachBody, c.ContactName, c.Organization)
	}

	return Result{
		Intent: IntentEmail,
		Text: fmt.Sprintf("I've drafted an email to %s at %s. Review it and confirm when you're ready to send.",
			c.ContactName, c.Organization),
		Draft: &models.EmailDraft{Recipient: c.Email, Body: body},
	}
}

func (i *Interpreter) handleInventory(q query) Result {
	if w := i.store.FindWineByFragment(q.lowered); w != nil {
		return Result{Intent: IntentInventory, Text: stockLine(w)}
	}

	wines := i.store.Wines()
	if len(wines) == 0 {
		return Result{Intent: IntentInventory, Text: emptyCellarText}
	}
	if wantsEverything(q.lowered) {
		parts := make([]string, 0, len(wines))
		for _, w := range wines {
			parts = append(parts, fmt.Sprintf("%s (%d): %d bottles", w.Name, w.Vintage, w.Stock))
		}
		text := fmt.Sprintf("Here's the full cellar: %s. That's %d varieties in total.",
			strings.Join(parts, ", "), len(wines))
		return Result{Intent: IntentInventory, Text: text}
	}

	text := fmt.Sprintf("We carry %d wines, from %s to %s. Which wine would you like me to check?",
		len(wines), wines[0].Name, wines[len(wines)-1].Name)
	return Result{Intent: IntentInventory, Text: text}
}

func stockLine(w *models.Wine) string {
	switch {
	case w.Stock == 0:
		return fmt.Sprintf("I'm sorry — we're completely out of %s at the moment. I can let you know as soon as it's back.", w.Name)
	case w.Stock <= 5:
		return fmt.Sprintf("We're running low on %s — only %d bottles left. Might be worth reordering soon.", w.Name, w.Stock)
	default:
		return fmt.Sprintf("Yes, %s is in stock. We have %d bottles on hand.", w.Name, w.Stock)
	}
}

func (i *Interpreter) handlePricing(q query) Result {
	if w := i.store.FindWineByFragment(q.lowered); w != nil {
		text := fmt.Sprintf("%s %d is %s a bottle.", w.Name, w.Vintage, SpeechPrice(w.PriceCents))
		return Result{Intent: IntentPricing, Text: text}
	}

	wines := i.store.Wines()
	if len(wines) == 0 {
		return Result{Intent: IntentPricing, Text: emptyCellarText}
	}
	if wantsEverything(q.lowered) {
		parts := make([]string, 0, len(wines))
		for _, w := range wines {
			parts = append(parts, fmt.Sprintf("%s (%d): %s", w.Name, w.Vintage, SpeechPrice(w.PriceCents)))
		}
		return Result{Intent: IntentPricing, Text: fmt.Sprintf("Our full price list: %s.", strings.Join(parts, ", "))}
	}

	minC, maxC := wines[0].PriceCents, wines[0].PriceCents
	var sum int64
	for _, w := range wines {
		if w.PriceCents < minC {
			minC = w.PriceCents
		}
		if w.PriceCents > maxC {
			maxC = w.PriceCents
		}
		sum += w.PriceCents
	}
	avg := averageCents(sum, len(wines))
	text := fmt.Sprintf("Our wines range from %s to %s, averaging %s a bottle. Which wine are you curious about?",
		SpeechPrice(minC), SpeechPrice(maxC), SpeechPrice(avg))
	return Result{Intent: IntentPricing, Text: text}
}

func (i *Interpreter) handleCustomers(q query) Result {
	if containsAny(q.lowered, "week", "recent") {
		sum := i.store.AggregateOrders()
		parts := make([]string, 0, len(sum.Orders)+1)
		for _, o := range sum.Orders {
			parts = append(parts, fmt.Sprintf("%s bought %d bottles of %s for %s.",
				o.CustomerName, o.Quantity, o.WineName, SpeechPrice(o.TotalCents)))
		}
		parts = append(parts, fmt.Sprintf("Total revenue: %s.", SpeechPrice(sum.RevenueCents)))
		return Result{Intent: IntentCustomers, Text: strings.Join(parts, " ")}
	}

	customers := i.store.Customers()
	names := make([]string, 0, len(customers))
	for _, c := range customers {
		names = append(names, c.Organization)
	}
	text := fmt.Sprintf("We have %d active customers: %s.", len(customers), strings.Join(names, ", "))
	return Result{Intent: IntentCustomers, Text: text}
}

func (i *Interpreter) handleSales(q query) Result {
	sum := i.store.AggregateOrders()
	if len(sum.Orders) == 0 {
		return Result{Intent: IntentSales, Text: noSalesText}
	}
	avg := averageCents(sum.RevenueCents, len(sum.Orders))
	text := fmt.Sprintf("Total sales come to %s across %d bottles, with an average order value of %s.",
		SpeechPrice(sum.RevenueCents), sum.Bottles, SpeechPrice(avg))
	return Result{Intent: IntentSales, Text: text}
}

func (i *Interpreter) handleHelp(q query) Result {
	return Result{Intent: IntentHelp, Text: helpText}
}

func (i *Interpreter) handleGreeting(q query) Result {
	return Result{Intent: IntentGreeting, Text: greetingText}
}

// handleFallback echoes the original utterance verbatim, not the lowered copy.
func (i *Interpreter) handleFallback(q query) Result {
	text := fmt.Sprintf("I'm not sure how to help with \"%s\" yet. Ask me about inventory, pricing, customers, or say 'help'.", q.raw)
	return Result{Intent: IntentGeneral, Text: text}
}
