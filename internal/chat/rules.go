package chat

import "regexp"

// patternRule is one entry of the ordered fallback matcher. Rules are
// evaluated in sequence and the first match wins; order is a behavior
// contract because several patterns overlap (the specific order-id
// rule must run before the generic order rule).
type patternRule struct {
	name    string
	pattern *regexp.Regexp
	handle  func(s *Service, message string) (string, string)
}

var (
	orderIDPattern = regexp.MustCompile(`order\s+(?:id\s+)?#?(\d+)`)
	topNPattern    = regexp.MustCompile(`top\s+(\d+)`)
)

// fallbackRules is the stage-2 matcher, consulted only when the
// trained stage returns low confidence.
var fallbackRules = []patternRule{
	{
		name:    "greeting",
		pattern: regexp.MustCompile(`\b(hi|hello|hey|good morning|good afternoon|good evening)\b`),
		handle:  (*Service).handleGreeting,
	},
	{
		name:    "top_products_explicit",
		pattern: regexp.MustCompile(`\b(top\s+\d+\s+most\s+sold|best\s+sellers|popular\s+products|trending)\b`),
		handle:  (*Service).handleTopProducts,
	},
	{
		name:    "top_products",
		pattern: regexp.MustCompile(`\b(most\s+sold|best\s+selling|top\s+products)\b`),
		handle:  (*Service).handleTopProducts,
	},
	{
		name:    "product",
		pattern: regexp.MustCompile(`\b(product|item|clothing|shirt|pants|dress|shoes|accessories)\b`),
		handle:  (*Service).handleProductInquiry,
	},
	{
		name:    "price",
		pattern: regexp.MustCompile(`\b(price|cost|how much|expensive|cheap)\b`),
		handle:  (*Service).handlePriceInquiry,
	},
	{
		name:    "size",
		pattern: regexp.MustCompile(`\b(size|fit|measurement|small|medium|large)\b`),
		handle:  (*Service).handleSizeInquiry,
	},
	{
		name:    "color",
		pattern: regexp.MustCompile(`\b(color|colour|red|blue|green|black|white)\b`),
		handle:  (*Service).handleColorInquiry,
	},
	{
		name:    "order_status",
		pattern: regexp.MustCompile(`\b(order\s+id\s+\d+|order\s+#\d+|status\s+of\s+order)\b`),
		handle:  (*Service).handleOrderStatus,
	},
	{
		name:    "order",
		pattern: regexp.MustCompile(`\b(order|purchase|buy|shopping cart|checkout)\b`),
		handle:  (*Service).handleOrderInquiry,
	},
	{
		name:    "tracking",
		pattern: regexp.MustCompile(`\b(track|tracking|where is|delivery|shipping)\b`),
		handle:  (*Service).handleTrackingInquiry,
	},
	{
		name:    "return",
		pattern: regexp.MustCompile(`\b(return|refund|exchange|cancel)\b`),
		handle:  (*Service).handleReturnInquiry,
	},
	{
		name:    "inventory",
		pattern: regexp.MustCompile(`\b(stock|inventory|available|left\s+in\s+stock|how\s+many)\b`),
		handle:  (*Service).handleInventoryInquiry,
	},
	{
		name:    "help",
		pattern: regexp.MustCompile(`\b(help|support|assist|problem|issue)\b`),
		handle:  (*Service).handleHelpRequest,
	},
	{
		name:    "contact",
		pattern: regexp.MustCompile(`\b(contact|phone|email|customer service)\b`),
		handle:  (*Service).handleContactInquiry,
	},
	{
		name:    "policy",
		pattern: regexp.MustCompile(`\b(policy|terms|conditions|warranty)\b`),
		handle:  (*Service).handlePolicyInquiry,
	},
	{
		name:    "payment",
		pattern: regexp.MustCompile(`\b(payment|pay|credit card|debit|paypal)\b`),
		handle:  (*Service).handlePaymentInquiry,
	},
	{
		name:    "shipping",
		pattern: regexp.MustCompile(`\b(shipping|delivery|free shipping|express|standard)\b`),
		handle:  (*Service).handleShippingInquiry,
	},
}
