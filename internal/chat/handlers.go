package chat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stylebot-ai/support-engine/internal/tabular"
)

func (s *Service) handleGreeting(_ string) (string, string) {
	return fmt.Sprintf(s.pick("greeting"), s.botName), "greeting"
}

// productCategories are scanned in order when a product inquiry does
// not name a category explicitly.
var productCategories = []string{"shirt", "pants", "dress", "shoes", "accessories", "clothing"}

func (s *Service) handleProductInquiry(message string) (string, string) {
	category := "clothing"
	for _, c := range productCategories {
		if strings.Contains(message, c) {
			category = c
			break
		}
	}
	return fmt.Sprintf(s.pick("product_info"), category), "product"
}

func (s *Service) handlePriceInquiry(_ string) (string, string) {
	return fmt.Sprintf(s.pick("price_info"), "clothing"), "product"
}

func (s *Service) handleSizeInquiry(_ string) (string, string) {
	return s.pick("size_help"), "product"
}

func (s *Service) handleColorInquiry(_ string) (string, string) {
	return "We offer a wide range of colors including black, white, red, blue, green, and many more! What's your favorite color?", "product"
}

func (s *Service) handleOrderInquiry(_ string) (string, string) {
	return s.pick("order_help"), "order"
}

func (s *Service) handleTrackingInquiry(_ string) (string, string) {
	return s.pick("tracking_help"), "order"
}

func (s *Service) handleReturnInquiry(_ string) (string, string) {
	return s.pick("return_help"), "support"
}

func (s *Service) handleHelpRequest(_ string) (string, string) {
	return "I'm here to help! I can assist with product information, orders, returns, shipping, and more. What do you need help with?", "support"
}

func (s *Service) handleContactInquiry(_ string) (string, string) {
	return s.pick("contact_help"), "support"
}

func (s *Service) handlePolicyInquiry(_ string) (string, string) {
	return "Our policies include a 30-day return policy, secure payment processing, and free shipping on orders over $50. Which policy would you like to know more about?", "support"
}

func (s *Service) handlePaymentInquiry(_ string) (string, string) {
	return s.pick("payment_help"), "support"
}

func (s *Service) handleShippingInquiry(_ string) (string, string) {
	return s.pick("shipping_help"), "support"
}

// handleTopProducts renders the ranked best-sellers list. A missing
// "top N" count falls back to 5; a non-positive count reads as no data.
func (s *Service) handleTopProducts(message string) (string, string) {
	limit := 5
	if m := topNPattern.FindStringSubmatch(message); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			limit = n
		}
	}

	var top []tabular.ProductSales
	if limit > 0 {
		top = s.Store().TopProducts(limit)
	}
	if len(top) == 0 {
		return "I don't have sales data available right now. Would you like me to show you our featured products instead?", "product"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on our sales data, here are the top %d most sold products:\n\n", limit)
	for i, p := range top {
		fmt.Fprintf(&b, "%d. %s - %d units sold ($%.2f)\n", i+1, p.Name, p.UnitsSold, p.UnitPrice)
	}
	b.WriteString("\nWould you like me to show you similar products or help you find something specific?")

	return b.String(), "product"
}

// handleOrderStatus renders a multi-line status report for an order
// id extracted from the message. An unknown id produces a "not found"
// sentence, never an error.
func (s *Service) handleOrderStatus(message string) (string, string) {
	m := orderIDPattern.FindStringSubmatch(message)
	if m == nil {
		return "I need an order ID to check the status. Could you please provide your order number?", "order"
	}

	orderID, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return "I need an order ID to check the status. Could you please provide your order number?", "order"
	}

	status, found := s.Store().OrderByID(orderID)
	if !found {
		return fmt.Sprintf("I couldn't find order #%d. Please check the order number and try again.", orderID), "order"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found your order #%d. Here's the current status:\n\n", orderID)
	fmt.Fprintf(&b, "📦 Order Status: %s\n", title(status.Status))
	fmt.Fprintf(&b, "📅 Order Date: %s\n", status.CreatedAt.Text())
	fmt.Fprintf(&b, "👤 Customer: %s\n", status.UserName)

	if !status.ShippedAt.IsNull() {
		fmt.Fprintf(&b, "🚚 Shipped: %s\n", status.ShippedAt.Text())
	}
	if !status.DeliveredAt.IsNull() {
		fmt.Fprintf(&b, "📦 Delivered: %s\n", status.DeliveredAt.Text())
	}

	b.WriteString("\nOrder Details:\n")
	for _, item := range status.Items {
		fmt.Fprintf(&b, "- %s - $%.2f (%s)\n", item.Name, item.Price, item.Status)
	}

	fmt.Fprintf(&b, "\nTotal: $%.2f\n\n", status.TotalAmount)
	b.WriteString("Would you like me to help you track this package or answer any questions about your order?")

	return b.String(), "order"
}

// inventoryVocabulary is the fixed keyword list scanned for
// inventory-by-name questions; first match wins.
var inventoryVocabulary = []string{"t-shirt", "shirt", "jeans", "dress", "shoes", "wallet"}

func (s *Service) handleInventoryInquiry(message string) (string, string) {
	keyword := ""
	for _, k := range inventoryVocabulary {
		if strings.Contains(message, k) {
			keyword = k
			break
		}
	}
	if keyword == "" {
		return "I can help you check inventory for specific products. What item would you like to check?", "product"
	}

	levels := s.Store().InventoryStatus(keyword, "")
	if len(levels) == 0 {
		return fmt.Sprintf("I don't have inventory data for %s right now. Would you like me to show you similar products?", keyword), "product"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I checked our inventory for %s. Here's what's available:\n\n", title(keyword))
	for _, level := range levels {
		fmt.Fprintf(&b, "📦 %s:\n", level.ProductName)
		fmt.Fprintf(&b, "   - Available: %d units\n", level.AvailableQuantity)
		fmt.Fprintf(&b, "   - Price: $%.2f\n", level.RetailPrice)
		if level.DistributionCenter != "" {
			fmt.Fprintf(&b, "   - Location: %s\n", level.DistributionCenter)
		}
		b.WriteString("\n")
	}
	b.WriteString("Would you like me to help you place an order or check other products?")

	return b.String(), "product"
}

// title upper-cases the first letter of a word.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
