package tabular

import (
	"sort"
	"strings"
)

// ProductSales is one ranked row of the top-sellers query.
type ProductSales struct {
	ProductID    int64   `json:"product_id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	UnitPrice    float64 `json:"unit_price"`
	UnitsSold    int     `json:"units_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

// TopProducts returns the best-selling products by order-item count,
// descending, limited to limit rows. Returned items are excluded from
// the sale counts. Ties keep the order of first appearance.
func (s *Store) TopProducts(limit int) []ProductSales {
	if s.OrderItems.Len() == 0 || s.Products.Len() == 0 {
		return nil
	}

	joined := InnerJoin(s.OrderItems, s.Products, "product_id", "id")
	sold := joined.Filter(func(r Row) bool {
		return r.Get("returned_at").IsNull()
	})

	type agg struct {
		sales ProductSales
		first int
	}
	byProduct := make(map[int64]*agg)
	order := make([]int64, 0)
	for i, row := range sold.Rows {
		pid, ok := row.Int64("product_id")
		if !ok {
			continue
		}
		a, seen := byProduct[pid]
		if !seen {
			price, _ := row.Float64("retail_price")
			a = &agg{
				sales: ProductSales{
					ProductID: pid,
					Name:      row.Text("name"),
					Brand:     row.Text("brand"),
					Category:  row.Text("category"),
					UnitPrice: price,
				},
				first: i,
			}
			byProduct[pid] = a
			order = append(order, pid)
		}
		a.sales.UnitsSold++
		if price, ok := row.Float64("retail_price"); ok {
			a.sales.TotalRevenue += price
		}
	}

	results := make([]ProductSales, 0, len(order))
	for _, pid := range order {
		results = append(results, byProduct[pid].sales)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].UnitsSold > results[j].UnitsSold
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// OrderLine is one item of an order status report.
type OrderLine struct {
	Name   string  `json:"name"`
	Price  float64 `json:"retail_price"`
	Status string  `json:"status"`
}

// OrderStatus is the joined view of one order, its items and its user.
type OrderStatus struct {
	OrderID     int64       `json:"order_id"`
	Status      string      `json:"status"`
	UserName    string      `json:"user_name"`
	CreatedAt   Value       `json:"-"`
	ShippedAt   Value       `json:"-"`
	DeliveredAt Value       `json:"-"`
	ReturnedAt  Value       `json:"-"`
	NumItems    int64       `json:"num_of_items"`
	Items       []OrderLine `json:"items"`
	TotalAmount float64     `json:"total_amount"`
}

// OrderByID looks up one order with its items and customer name.
// ok is false when no order carries the id.
func (s *Store) OrderByID(orderID int64) (*OrderStatus, bool) {
	order, found := s.Orders.First(func(r Row) bool {
		id, ok := r.Int64("order_id")
		return ok && id == orderID
	})
	if !found {
		return nil, false
	}

	items := s.OrderItems.Filter(func(r Row) bool {
		id, ok := r.Int64("order_id")
		return ok && id == orderID
	})
	withProducts := InnerJoin(items, s.Products, "product_id", "id")

	userName := "Unknown"
	if userID, ok := order.Int64("user_id"); ok {
		if user, found := s.Users.First(func(r Row) bool {
			id, ok := r.Int64("id")
			return ok && id == userID
		}); found {
			userName = user.Text("first_name") + " " + user.Text("last_name")
		}
	}

	status := &OrderStatus{
		OrderID:     orderID,
		Status:      order.Text("status"),
		UserName:    userName,
		CreatedAt:   order.Get("created_at"),
		ShippedAt:   order.Get("shipped_at"),
		DeliveredAt: order.Get("delivered_at"),
		ReturnedAt:  order.Get("returned_at"),
	}
	if n, ok := order.Int64("num_of_item"); ok {
		status.NumItems = n
	}
	for _, row := range withProducts.Rows {
		price, _ := row.Float64("retail_price")
		status.Items = append(status.Items, OrderLine{
			Name:   row.Text("name"),
			Price:  price,
			Status: row.Text("status"),
		})
		status.TotalAmount += price
	}
	return status, true
}

// StockLevel is the per-product, per-distribution-center availability.
type StockLevel struct {
	ProductName          string  `json:"product_name"`
	Category             string  `json:"product_category"`
	Brand                string  `json:"product_brand"`
	RetailPrice          float64 `json:"product_retail_price"`
	DistributionCenterID int64   `json:"distribution_center_id"`
	DistributionCenter   string  `json:"distribution_center"`
	AvailableQuantity    int     `json:"available_quantity"`
}

// InventoryStatus returns available stock grouped by product and
// distribution center. productName and category filter by
// case-insensitive substring; either may be empty.
func (s *Store) InventoryStatus(productName, category string) []StockLevel {
	if s.InventoryItems.Len() == 0 {
		return nil
	}

	nameNeedle := strings.ToLower(productName)
	catNeedle := strings.ToLower(category)
	available := s.InventoryItems.Filter(func(r Row) bool {
		if !r.Get("sold_at").IsNull() {
			return false
		}
		if nameNeedle != "" && !strings.Contains(strings.ToLower(r.Text("product_name")), nameNeedle) {
			return false
		}
		if catNeedle != "" && !strings.Contains(strings.ToLower(r.Text("product_category")), catNeedle) {
			return false
		}
		return true
	})

	dcNames := make(map[int64]string)
	for _, row := range s.DistributionCenters.Rows {
		if id, ok := row.Int64("id"); ok {
			dcNames[id] = row.Text("name")
		}
	}

	type key struct {
		name string
		dcID int64
	}
	byKey := make(map[key]*StockLevel)
	order := make([]key, 0)
	for _, row := range available.Rows {
		dcID, _ := row.Int64("product_distribution_center_id")
		k := key{name: row.Text("product_name"), dcID: dcID}
		level, seen := byKey[k]
		if !seen {
			price, _ := row.Float64("product_retail_price")
			level = &StockLevel{
				ProductName:          k.name,
				Category:             row.Text("product_category"),
				Brand:                row.Text("product_brand"),
				RetailPrice:          price,
				DistributionCenterID: dcID,
				DistributionCenter:   dcNames[dcID],
			}
			byKey[k] = level
			order = append(order, k)
		}
		level.AvailableQuantity++
	}

	results := make([]StockLevel, 0, len(order))
	for _, k := range order {
		results = append(results, *byKey[k])
	}
	return results
}

// UserOrders returns all order rows placed by a user.
func (s *Store) UserOrders(userID int64) []Row {
	return s.Orders.Filter(func(r Row) bool {
		id, ok := r.Int64("user_id")
		return ok && id == userID
	}).Rows
}

// SearchProducts returns products whose name, category or brand
// contains the query, case-insensitive.
func (s *Store) SearchProducts(query string) []Row {
	needle := strings.ToLower(query)
	return s.Products.Filter(func(r Row) bool {
		return strings.Contains(strings.ToLower(r.Text("name")), needle) ||
			strings.Contains(strings.ToLower(r.Text("category")), needle) ||
			strings.Contains(strings.ToLower(r.Text("brand")), needle)
	}).Rows
}
