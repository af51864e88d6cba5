package chat

// Canned phrasing sets for the pattern-matched intents. One phrasing
// is picked at random per response; the selection is seedable through
// the service for deterministic tests.
var phrasings = map[string][]string{
	"greeting": {
		"Hello! I'm %s, your fashion assistant. How can I help you today?",
		"Hi there! I'm %s, ready to help you with all your fashion needs!",
		"Welcome! I'm %s, your personal shopping assistant. What can I do for you?",
	},
	"product_info": {
		"I'd be happy to help you find the perfect %s! What specific style or features are you looking for?",
		"Great choice! We have a wide selection of %s. Would you like me to show you our best sellers?",
		"Our %s collection is amazing! What size and color are you interested in?",
	},
	"price_info": {
		"Our prices range from $25 to $200 for %s. Is there a specific budget you have in mind?",
		"We offer competitive pricing on all our %s. Plus, we have regular sales and discounts!",
		"Prices vary by style and material. Would you like me to show you our most popular %s options?",
	},
	"size_help": {
		"We offer sizes XS to XXL for most items. You can find our size guide on each product page, or I can help you find the right fit!",
		"Not sure about your size? Our detailed size charts are available on every product page. Would you like me to explain how to measure?",
		"We have a comprehensive size guide to help you find the perfect fit. What's your usual size in other brands?",
	},
	"order_help": {
		"I can help you with your order! Do you need help placing a new order or checking an existing one?",
		"For orders, you can browse our catalog and add items to your cart. Would you like me to show you our featured products?",
		"Placing an order is easy! Just add items to your cart and proceed to checkout. Need help finding something specific?",
	},
	"tracking_help": {
		"To track your order, you'll need your order number. You can find it in your order confirmation email or account dashboard.",
		"Once your order ships, you'll receive a tracking number via email. You can also check your order status in your account.",
		"Track your order by logging into your account or using the tracking number from your shipping confirmation email.",
	},
	"return_help": {
		"We have a 30-day return policy for most items. Items must be unworn and in original packaging. Would you like me to explain the process?",
		"Returns are easy! You can initiate a return through your account or contact our customer service team.",
		"Our return policy allows returns within 30 days of delivery. Just make sure items are in original condition!",
	},
	"contact_help": {
		"You can reach our customer service team at support@fashionstore.com or call us at 1-800-FASHION. We're here to help!",
		"Need to speak with someone? Our customer service team is available Monday-Friday, 9 AM to 6 PM EST.",
		"For immediate assistance, you can email us at support@fashionstore.com or use our live chat feature.",
	},
	"payment_help": {
		"We accept all major credit cards, PayPal, and Apple Pay. All payments are secure and encrypted.",
		"Payment options include Visa, MasterCard, American Express, PayPal, and Apple Pay. Your payment information is always secure.",
		"We offer multiple secure payment methods including credit cards, PayPal, and digital wallets.",
	},
	"shipping_help": {
		"We offer free standard shipping on orders over $50! Express shipping is available for faster delivery.",
		"Standard shipping takes 3-5 business days and is free on orders over $50. Express shipping (1-2 days) is available for an additional fee.",
		"Free shipping on orders over $50! Standard delivery takes 3-5 days, or upgrade to express for 1-2 day delivery.",
	},
	"fallback": {
		"I'm not sure I understood that. Could you rephrase your question? I'm here to help with products, orders, returns, and general support!",
		"I didn't quite catch that. Are you asking about our products, orders, returns, or something else?",
		"Let me help you better. Are you looking for product information, order help, or customer support?",
	},
}

// quickReplies maps an intent tag to its quick-reply chips. Intent
// tags without an entry get none.
var quickReplies = map[string][]string{
	"greeting": {"Show me products", "Track my order", "Return policy", "Contact support"},
	"product":  {"Men's clothing", "Women's clothing", "Accessories", "Sale items"},
	"order":    {"Place order", "Track order", "Order history", "Cancel order"},
	"support":  {"Returns", "Shipping", "Payment", "Contact us"},
}
