// Package dialog implements the rule-based conversational core: signal
// extraction from raw messages, spec-detail rendering, and the priority
// cascade that turns a message plus session state into a reply.
package dialog

import (
	"fmt"
	"math/rand"
	"strings"

	"eshop-chatbot/internal/catalog"
)

// Fixed conversion rate; the store does not fetch live rates.
const usdToINR = 84

// systemPreamble seeds every session's history, mirroring the store's
// original operator instructions.
const systemPreamble = "You are an e-commerce chatbot for EShop, an Indian online store. " +
	"Answer all shopping-related queries based on user input, interpreting their intent naturally. " +
	"Use INR for prices (convert USD to INR at 1 USD = 84 INR). " +
	"Provide concise, relevant answers without opinions or unrelated comments. " +
	"Maintain context from previous messages. If unclear, make a best guess or ask for clarification."

// Session is the per-conversation state: the turn history (first entry is
// the system preamble, then one "User: ..." entry per turn), the product
// most recently discussed, and the cart. The cart keeps insertion order and
// allows duplicates; adding the same category twice yields two entries,
// possibly at different sampled prices.
type Session struct {
	History     []string
	LastProduct *Mention
	Cart        []Mention
}

func NewSession() *Session {
	return &Session{History: []string{systemPreamble}}
}

// turn carries the signals extracted from one incoming message.
type turn struct {
	lower   string
	session *Session
	mention *Mention
	usd     int
	hasUSD  bool
}

// rule is one step of the priority cascade. Rules are evaluated in order and
// the first whose match returns true produces the reply; later rules are
// never consulted.
type rule struct {
	name    string
	match   func(*Engine, *turn) bool
	respond func(*Engine, *turn) (string, error)
}

// Engine evaluates a fixed, ordered rule cascade over extracted signals and
// session state. Each turn is a bounded in-memory computation; the engine
// itself holds no per-conversation state.
type Engine struct {
	cat     *catalog.Catalog
	extract *Extractor
	render  *Renderer
	greet   tokenMatcher
	intents map[string]substringMatcher
	// buy + price synonyms, used by the details follow-up check.
	buyOrPrice []string
	rules      []rule
}

// NewEngine builds an engine over a validated catalog. The random source
// feeds both price sampling and spec selection; seed it in tests.
func NewEngine(cat *catalog.Catalog, rng *rand.Rand) *Engine {
	e := &Engine{
		cat:     cat,
		extract: NewExtractor(cat, rng),
		render:  NewRenderer(cat, rng),
		greet:   tokenMatcher(cat.Keywords("greeting")),
		intents: make(map[string]substringMatcher),
	}
	for intent, kws := range cat.Intents {
		e.intents[intent] = substringMatcher(kws)
	}
	e.buyOrPrice = append(append([]string(nil), cat.Keywords("buy")...), cat.Keywords("price")...)
	e.rules = []rule{
		{"greeting", (*Engine).matchGreeting, (*Engine).replyGreeting},
		{"buy", (*Engine).matchBuy, (*Engine).replyBuy},
		{"price", (*Engine).matchPrice, (*Engine).replyPrice},
		{"details", (*Engine).matchDetails, (*Engine).replyDetails},
		{"cart", (*Engine).matchCart, (*Engine).replyCart},
		{"shipping", (*Engine).matchShipping, (*Engine).replyShipping},
		{"currency", (*Engine).matchCurrency, (*Engine).replyCurrency},
		{"fallback", (*Engine).matchFallback, (*Engine).replyFallback},
	}
	return e
}

// Reply processes one turn: the raw message is appended to the session
// history, signals are extracted, and the first matching rule answers.
// Empty messages are valid and land in the fallback rule. The only error
// path is detail rendering against a broken catalog, which startup
// validation rules out.
func (e *Engine) Reply(message string, s *Session) (string, error) {
	s.History = append(s.History, "User: "+message)
	t := &turn{lower: strings.ToLower(message), session: s}
	if amt, ok := e.extract.UsdAmount(message); ok {
		t.usd, t.hasUSD = amt, true
	}
	if m, ok := e.extract.Product(message); ok {
		t.mention = &m
	}
	for _, r := range e.rules {
		if r.match(e, t) {
			return r.respond(e, t)
		}
	}
	// Unreachable: the fallback rule matches everything.
	return "", fmt.Errorf("dialog: no rule matched message %q", message)
}

func (e *Engine) matchGreeting(t *turn) bool {
	return e.greet.matches(t.lower)
}

func (e *Engine) replyGreeting(t *turn) (string, error) {
	return "Hi there! Welcome to EShop. How can I help you with your shopping today?", nil
}

func (e *Engine) matchBuy(t *turn) bool {
	return e.intents["buy"].matches(t.lower)
}

func (e *Engine) replyBuy(t *turn) (string, error) {
	if t.mention != nil {
		m := *t.mention
		t.session.LastProduct = &m
		t.session.Cart = append(t.session.Cart, m)
		return fmt.Sprintf("At EShop, a %s costs around ₹%s. Added to your cart. Want more details?", m.Name, formatINR(m.Price)), nil
	}
	if lp := t.session.LastProduct; lp != nil && (strings.Contains(t.lower, "yes") || strings.Contains(t.lower, "confirm")) {
		// Confirmation only: the product was already added when first ordered.
		return fmt.Sprintf("Got it! A %s (₹%s) is in your cart. Anything else to add?", lp.Name, formatINR(lp.Price)), nil
	}
	return "What would you like to order from EShop today?", nil
}

// Price defers to shipping so "shipping cost" is not read as a price query.
func (e *Engine) matchPrice(t *turn) bool {
	return e.intents["price"].matches(t.lower) && !e.intents["shipping"].matches(t.lower)
}

func (e *Engine) replyPrice(t *turn) (string, error) {
	if t.mention != nil {
		m := *t.mention
		t.session.LastProduct = &m
		return fmt.Sprintf("At EShop, a %s costs around ₹%s. Want more details?", m.Name, formatINR(m.Price)), nil
	}
	if lp := t.session.LastProduct; lp != nil {
		return fmt.Sprintf("At EShop, a %s costs around ₹%s. Want more details?", lp.Name, formatINR(lp.Price)), nil
	}
	return "Which product's price are you looking for?", nil
}

// A bare "yes" also reaches details when a product is on the table and the
// last two history entries show a buy or price exchange.
func (e *Engine) matchDetails(t *turn) bool {
	if e.intents["details"].matches(t.lower) {
		return true
	}
	return strings.Contains(t.lower, "yes") &&
		t.session.LastProduct != nil &&
		e.recentHistoryHasAny(t.session, e.buyOrPrice)
}

func (e *Engine) replyDetails(t *turn) (string, error) {
	if t.mention != nil {
		m := *t.mention
		t.session.LastProduct = &m
	}
	lp := t.session.LastProduct
	if lp == nil {
		return "Which product do you want details for?", nil
	}
	details, err := e.render.Details(lp.Category)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("At EShop, a %s has: %s Anything else you'd like to know?", lp.Name, details), nil
}

func (e *Engine) matchCart(t *turn) bool {
	return e.intents["cart"].matches(t.lower)
}

func (e *Engine) replyCart(t *turn) (string, error) {
	cart := t.session.Cart
	if len(cart) == 0 {
		return "Your cart is empty. What would you like to add?", nil
	}
	items := make([]string, 0, len(cart))
	total := 0
	for _, it := range cart {
		items = append(items, fmt.Sprintf("%s (₹%s)", it.Name, formatINR(it.Price)))
		total += it.Price
	}
	return fmt.Sprintf("Your EShop cart contains: %s. Total: ₹%s. Ready to checkout?", strings.Join(items, ", "), formatINR(total)), nil
}

func (e *Engine) matchShipping(t *turn) bool {
	if e.intents["shipping"].matches(t.lower) {
		return true
	}
	return strings.Contains(t.lower, "cost") && e.recentHistoryHasAny(t.session, []string{"ship"})
}

func (e *Engine) replyShipping(t *turn) (string, error) {
	standard := e.cat.Shipping["standard"]
	express := e.cat.Shipping["express"]
	switch {
	case strings.Contains(t.lower, "express"):
		return fmt.Sprintf("Express shipping at EShop costs %s and takes %s.", express.Cost, express.Time), nil
	case strings.Contains(t.lower, "standard"):
		return fmt.Sprintf("Standard shipping at EShop is %s and takes %s.", standard.Cost, standard.Time), nil
	default:
		return fmt.Sprintf("At EShop, we offer Standard shipping (%s, %s) and Express shipping (%s, %s). Which one do you want to know about?",
			standard.Cost, standard.Time, express.Cost, express.Time), nil
	}
}

func (e *Engine) matchCurrency(t *turn) bool {
	return t.hasUSD
}

func (e *Engine) replyCurrency(t *turn) (string, error) {
	return fmt.Sprintf("That's around ₹%s in Indian Rupees. What item are we talking about?", formatINR(t.usd*usdToINR)), nil
}

func (e *Engine) matchFallback(t *turn) bool {
	return true
}

func (e *Engine) replyFallback(t *turn) (string, error) {
	if lp := t.session.LastProduct; lp != nil {
		return fmt.Sprintf("Did you mean something about a %s? I can help with price, details, shipping, or adding it to your cart.", lp.Name), nil
	}
	return "I'm not sure what you mean. Could you tell me more about what you're looking for?", nil
}

// recentHistoryHasAny checks the last two history entries (the current turn
// is already appended, so this is the current and previous user message) for
// any of the given keywords.
func (e *Engine) recentHistoryHasAny(s *Session, keywords []string) bool {
	start := len(s.History) - 2
	if start < 0 {
		start = 0
	}
	recent := strings.ToLower(strings.Join(s.History[start:], " "))
	return containsAny(recent, keywords)
}
