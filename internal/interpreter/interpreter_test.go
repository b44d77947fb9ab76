package interpreter_test

import (
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/aimeevoice/aimee-web-app/internal/catalog"
	"github.com/aimeevoice/aimee-web-app/internal/interpreter"
)

func newInterp() (*interpreter.Interpreter, *catalog.Store) {
	store := catalog.SeedStore()
	return interpreter.New(store), store
}

func TestLowStockMentionsExactCount(t *testing.T) {
	interp, store := newInterp()

	for _, w := range store.Wines() {
		if w.Stock == 0 || w.Stock > 5 {
			continue
		}
		res := interp.Interpret("do we have " + w.Name)
		if res.Intent != interpreter.IntentInventory {
			t.Fatalf("%s: intent = %s, want inventory", w.Name, res.Intent)
		}
		if !strings.Contains(res.Text, strconv.Itoa(w.Stock)) {
			t.Fatalf("%s: response %q must mention stock %d", w.Name, res.Text, w.Stock)
		}
		if !strings.Contains(strings.ToLower(res.Text), "low") {
			t.Fatalf("%s: response %q must flag scarcity", w.Name, res.Text)
		}
	}
}

func TestOutOfStockApologizesWithoutCount(t *testing.T) {
	interp, store := newInterp()

	for _, w := range store.Wines() {
		if w.Stock != 0 {
			continue
		}
		res := interp.Interpret("do we have " + w.Name)
		if !strings.Contains(strings.ToLower(res.Text), "sorry") {
			t.Fatalf("response %q must apologize", res.Text)
		}
		if strings.ContainsAny(res.Text, "0123456789") {
			t.Fatalf("out-of-stock response must not carry a stock count: %q", res.Text)
		}
	}
}

func TestInStockMentionsCount(t *testing.T) {
	interp, _ := newInterp()

	res := interp.Interpret("do we have Marlborough Sauvignon Blanc")
	if res.Intent != interpreter.IntentInventory {
		t.Fatalf("intent = %s", res.Intent)
	}
	if !strings.Contains(res.Text, "40") {
		t.Fatalf("response %q must mention exact stock", res.Text)
	}
}

func TestSpeechFormattedPrices(t *testing.T) {
	interp, _ := newInterp()

	cases := []struct {
		wine   string
		want   string
		forbid string
	}{
		{"Willamette Pinot Noir", "38 50", "38.50"},
		{"Rioja Gran Reserva", "45 99", "45.99"},
		{"Russian River Chardonnay", "$24", "24 00"},
	}
	for _, tc := range cases {
		res := interp.Interpret("what's the price of " + tc.wine)
		if res.Intent != interpreter.IntentPricing {
			t.Fatalf("%s: intent = %s, want pricing", tc.wine, res.Intent)
		}
		if !strings.Contains(res.Text, tc.want) {
			t.Fatalf("%s: %q must contain %q", tc.wine, res.Text, tc.want)
		}
		if strings.Contains(res.Text, tc.forbid) {
			t.Fatalf("%s: %q must not contain %q", tc.wine, res.Text, tc.forbid)
		}
	}
}

func TestEmailDraftForEverySeededCustomer(t *testing.T) {
	interp, store := newInterp()

	for _, c := range store.Customers() {
		res := interp.Interpret("email " + c.Organization)
		if res.Intent != interpreter.IntentEmail {
			t.Fatalf("%s: intent = %s, want email", c.Organization, res.Intent)
		}
		if res.Draft == nil {
			t.Fatalf("%s: draft missing", c.Organization)
		}
		if res.Draft.Recipient != c.Email {
			t.Fatalf("%s: recipient = %s, want %s", c.Organization, res.Draft.Recipient, c.Email)
		}
		if !strings.Contains(res.Draft.Body, c.ContactName) || !strings.Contains(res.Draft.Body, c.Organization) {
			t.Fatalf("%s: body must interpolate contact and organization literally:\n%s", c.Organization, res.Draft.Body)
		}
	}
}

func TestEmailTemplateSelection(t *testing.T) {
	interp, _ := newInterp()

	res := interp.Interpret("email maria about the recent order")
	if res.Draft == nil || !strings.Contains(res.Draft.Body, "delivery") {
		t.Fatalf("order keyword must pick the delivery follow-up template: %+v", res.Draft)
	}

	res = interp.Interpret("send james the new arrivals")
	if res.Draft == nil || !strings.Contains(res.Draft.Body, "arrivals") {
		t.Fatalf("arrival keyword must pick the new-arrivals template: %+v", res.Draft)
	}

	res = interp.Interpret("contact daniel")
	if res.Draft == nil || !strings.Contains(res.Draft.Body, "check in") {
		t.Fatalf("default must be the generic outreach template: %+v", res.Draft)
	}
}

func TestEmailWithoutCustomerGivesGuidance(t *testing.T) {
	interp, _ := newInterp()

	res := interp.Interpret("email the prime minister")
	if res.Intent != interpreter.IntentGeneral {
		t.Fatalf("intent = %s, want general", res.Intent)
	}
	if res.Draft != nil {
		t.Fatalf("no draft expected, got %+v", res.Draft)
	}
}

func TestConfirmationPhraseWinsOverEmail(t *testing.T) {
	interp, _ := newInterp()

	// Содержит и "email", и "confirm email": правило подтверждения стоит выше.
	res := interp.Interpret("please confirm email now")
	if res.Intent != interpreter.IntentGeneral || res.Draft != nil {
		t.Fatalf("confirmation rule must win: %+v", res)
	}

	res2 := interp.Interpret("is my email ready?")
	if res2.Text != res.Text {
		t.Fatalf("both confirmation phrases must share the fixed prompt")
	}
}

func TestFullInventoryListing(t *testing.T) {
	interp, store := newInterp()

	res := interp.Interpret("show me the complete inventory")
	for _, w := range store.Wines() {
		if !strings.Contains(res.Text, w.Name) {
			t.Fatalf("listing must include %s: %q", w.Name, res.Text)
		}
	}
	if !strings.Contains(res.Text, strconv.Itoa(len(store.Wines()))+" varieties") {
		t.Fatalf("listing must state the variety count: %q", res.Text)
	}
}

func TestInventorySummaryInvitesWineName(t *testing.T) {
	interp, _ := newInterp()

	res := interp.Interpret("check the inventory")
	if res.Intent != interpreter.IntentInventory {
		t.Fatalf("intent = %s", res.Intent)
	}
	if !strings.Contains(res.Text, "Which wine") {
		t.Fatalf("summary must invite a specific wine name: %q", res.Text)
	}
}

func TestPriceRangeSummary(t *testing.T) {
	interp, _ := newInterp()

	res := interp.Interpret("how much do these cost")
	for _, want := range []string{"$19", "$89 99", "$45 94"} {
		if !strings.Contains(res.Text, want) {
			t.Fatalf("price summary %q must contain %q", res.Text, want)
		}
	}
}

func TestRecentOrdersSummary(t *testing.T) {
	interp, store := newInterp()

	res := interp.Interpret("who ordered this week")
	if res.Intent != interpreter.IntentCustomers {
		t.Fatalf("intent = %s, want customers", res.Intent)
	}
	for _, o := range store.Orders() {
		if !strings.Contains(res.Text, o.CustomerName) {
			t.Fatalf("summary must mention %s: %q", o.CustomerName, res.Text)
		}
	}
	if !strings.Contains(res.Text, "Total revenue: $1379 94.") {
		t.Fatalf("summary must state total revenue: %q", res.Text)
	}
}

func TestCustomerCountSummary(t *testing.T) {
	interp, store := newInterp()

	res := interp.Interpret("list our customers")
	if !strings.Contains(res.Text, "4 active customers") {
		t.Fatalf("unexpected summary: %q", res.Text)
	}
	for _, c := range store.Customers() {
		if !strings.Contains(res.Text, c.Organization) {
			t.Fatalf("summary must name %s: %q", c.Organization, res.Text)
		}
	}
}

func TestSalesSummary(t *testing.T) {
	interp, _ := newInterp()

	res := interp.Interpret("total sales for the month")
	if res.Intent != interpreter.IntentSales {
		t.Fatalf("intent = %s, want sales", res.Intent)
	}
	for _, want := range []string{"$1379 94", "46 bottles", "$344 99"} {
		if !strings.Contains(res.Text, want) {
			t.Fatalf("sales summary %q must contain %q", res.Text, want)
		}
	}
}

func TestHelpAndGreetingAreFixed(t *testing.T) {
	interp, _ := newInterp()

	h1 := interp.Interpret("help")
	h2 := interp.Interpret("what can you do")
	if h1.Intent != interpreter.IntentHelp || h1.Text != h2.Text {
		t.Fatalf("help must be a fixed string: %+v vs %+v", h1, h2)
	}

	g1 := interp.Interpret("hey aimee")
	g2 := interp.Interpret("hello")
	if g1.Intent != interpreter.IntentGreeting || g1.Text != g2.Text {
		t.Fatalf("greeting must be a fixed string: %+v vs %+v", g1, g2)
	}
}

func TestGreetingNeedsWordBoundary(t *testing.T) {
	interp, _ := newInterp()

	// "this" содержит "hi", но как отдельное слово приветствия нет.
	res := interp.Interpret("this is serious")
	if res.Intent == interpreter.IntentGreeting {
		t.Fatalf("greeting must not fire inside another word: %+v", res)
	}
}

func TestFallbackEchoesInputVerbatim(t *testing.T) {
	interp, _ := newInterp()

	res := interp.Interpret("XyZzy Quux")
	if res.Intent != interpreter.IntentGeneral {
		t.Fatalf("intent = %s, want general", res.Intent)
	}
	if !strings.Contains(res.Text, "XyZzy Quux") {
		t.Fatalf("fallback must echo the original casing: %q", res.Text)
	}
}

func TestInterpretIsIdempotent(t *testing.T) {
	interp, _ := newInterp()

	inputs := []string{
		"do we have barolo riserva",
		"email maria about the recent order",
		"total sales for the month",
		"hello",
		"xyzzy",
	}
	for _, in := range inputs {
		first := interp.Interpret(in)
		second := interp.Interpret(in)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("Interpret(%q) is not idempotent:\n%+v\n%+v", in, first, second)
		}
	}
}

func TestEmptyCatalogAnswersEveryIntent(t *testing.T) {
	interp := interpreter.New(catalog.NewStore(nil, nil, nil))

	inputs := []string{
		"check the inventory",
		"show me the complete inventory",
		"do we have barolo riserva",
		"how much do these cost",
		"show me all prices",
		"total sales for the month",
		"who ordered this week",
		"list our customers",
	}
	for _, in := range inputs {
		res := interp.Interpret(in)
		if res.Text == "" {
			t.Fatalf("Interpret(%q) produced an empty response", in)
		}
	}

	res := interp.Interpret("check the inventory")
	if res.Intent != interpreter.IntentInventory || !strings.Contains(res.Text, "empty") {
		t.Fatalf("empty cellar inventory response = %+v", res)
	}
	res = interp.Interpret("total sales for the month")
	if res.Intent != interpreter.IntentSales || !strings.Contains(res.Text, "no recorded orders") {
		t.Fatalf("empty cellar sales response = %+v", res)
	}
}
