package tabular

// Fixture returns the built-in synthetic dataset used when no external
// source can be loaded: 3 distribution centers, 5 products across
// 5 categories, 4 sizes x 50 inventory rows per product with every
// 3rd row sold, 3 orders, 5 order items and 3 users. The data is fixed
// so the pipeline always trains on non-empty, deterministic input.
func Fixture() *Store {
	dcs := NewTable(CollectionDistributionCenters, "id", "name", "latitude", "longitude")
	dcRows := []struct {
		id   int64
		name string
		lat  float64
		lon  float64
	}{
		{1, "New York DC", 40.7128, -74.0060},
		{2, "California DC", 34.0522, -118.2437},
		{3, "Texas DC", 31.9686, -99.9018},
	}
	for _, dc := range dcRows {
		dcs.Append(Row{
			"id":        Int(dc.id),
			"name":      String(dc.name),
			"latitude":  Float(dc.lat),
			"longitude": Float(dc.lon),
		})
	}

	type productRow struct {
		id       int64
		cost     float64
		category string
		name     string
		brand    string
		retail   float64
		dept     string
		sku      string
		dcID     int64
	}
	productRows := []productRow{
		{1, 15.00, "shirts", "Classic White T-Shirt", "FashionBrand", 29.99, "men", "TSH001", 1},
		{2, 45.00, "pants", "Slim Fit Jeans", "FashionBrand", 79.99, "men", "JEA001", 1},
		{3, 35.00, "dresses", "Summer Dress", "FashionBrand", 59.99, "women", "DRE001", 2},
		{4, 80.00, "shoes", "Running Shoes", "FashionBrand", 129.99, "unisex", "SHO001", 2},
		{5, 25.00, "accessories", "Leather Wallet", "FashionBrand", 39.99, "unisex", "WAL001", 3},
	}
	products := NewTable(CollectionProducts,
		"id", "cost", "category", "name", "brand", "retail_price", "department", "sku", "distribution_center_id")
	for _, p := range productRows {
		products.Append(Row{
			"id":                     Int(p.id),
			"cost":                   Float(p.cost),
			"category":               String(p.category),
			"name":                   String(p.name),
			"brand":                  String(p.brand),
			"retail_price":           Float(p.retail),
			"department":             String(p.dept),
			"sku":                    String(p.sku),
			"distribution_center_id": Int(p.dcID),
		})
	}

	inventory := NewTable(CollectionInventoryItems,
		"id", "product_id", "created_at", "sold_at", "cost",
		"product_category", "product_name", "product_brand", "product_retail_price",
		"product_department", "product_sku", "product_distribution_center_id")
	sizes := []string{"S", "M", "L", "XL"}
	next := 0
	for _, p := range productRows {
		for range sizes {
			for i := 0; i < 50; i++ {
				soldAt := Null()
				if next%3 == 0 {
					soldAt = String("2024-03-01 00:00:00")
				}
				next++
				inventory.Append(Row{
					"id":                             Int(int64(next)),
					"product_id":                     Int(p.id),
					"created_at":                     String("2024-01-01 00:00:00"),
					"sold_at":                        soldAt,
					"cost":                           Float(p.cost),
					"product_category":               String(p.category),
					"product_name":                   String(p.name),
					"product_brand":                  String(p.brand),
					"product_retail_price":           Float(p.retail),
					"product_department":             String(p.dept),
					"product_sku":                    String(p.sku),
					"product_distribution_center_id": Int(p.dcID),
				})
			}
		}
	}

	orders := NewTable(CollectionOrders,
		"order_id", "user_id", "status", "gender", "created_at",
		"returned_at", "shipped_at", "delivered_at", "num_of_item")
	orders.Append(Row{
		"order_id":     Int(12345),
		"user_id":      Int(1),
		"status":       String("shipped"),
		"gender":       String("M"),
		"created_at":   String("2024-03-15 10:00:00"),
		"returned_at":  Null(),
		"shipped_at":   String("2024-03-16 08:00:00"),
		"delivered_at": Null(),
		"num_of_item":  Int(2),
	})
	orders.Append(Row{
		"order_id":     Int(12346),
		"user_id":      Int(2),
		"status":       String("processing"),
		"gender":       String("F"),
		"created_at":   String("2024-03-16 14:30:00"),
		"returned_at":  Null(),
		"shipped_at":   Null(),
		"delivered_at": Null(),
		"num_of_item":  Int(1),
	})
	orders.Append(Row{
		"order_id":     Int(12347),
		"user_id":      Int(3),
		"status":       String("delivered"),
		"gender":       String("M"),
		"created_at":   String("2024-03-10 09:15:00"),
		"returned_at":  Null(),
		"shipped_at":   String("2024-03-12 10:00:00"),
		"delivered_at": String("2024-03-14 15:30:00"),
		"num_of_item":  Int(3),
	})

	orderItems := NewTable(CollectionOrderItems,
		"id", "order_id", "user_id", "product_id", "inventory_item_id",
		"status", "created_at", "shipped_at", "delivered_at", "returned_at")
	type itemRow struct {
		id          int64
		orderID     int64
		userID      int64
		productID   int64
		inventoryID int64
		status      string
		createdAt   string
		shippedAt   Value
		deliveredAt Value
	}
	itemRows := []itemRow{
		{1, 12345, 1, 1, 1, "shipped", "2024-03-15 10:00:00", String("2024-03-16 08:00:00"), Null()},
		{2, 12345, 1, 2, 51, "shipped", "2024-03-15 10:00:00", String("2024-03-16 08:00:00"), Null()},
		{3, 12346, 2, 3, 101, "processing", "2024-03-16 14:30:00", Null(), Null()},
		{4, 12347, 3, 1, 151, "delivered", "2024-03-10 09:15:00", String("2024-03-12 10:00:00"), String("2024-03-14 15:30:00")},
		{5, 12347, 3, 4, 201, "delivered", "2024-03-10 09:15:00", String("2024-03-12 10:00:00"), String("2024-03-14 15:30:00")},
	}
	for _, it := range itemRows {
		orderItems.Append(Row{
			"id":                Int(it.id),
			"order_id":          Int(it.orderID),
			"user_id":           Int(it.userID),
			"product_id":        Int(it.productID),
			"inventory_item_id": Int(it.inventoryID),
			"status":            String(it.status),
			"created_at":        String(it.createdAt),
			"shipped_at":        it.shippedAt,
			"delivered_at":      it.deliveredAt,
			"returned_at":       Null(),
		})
	}

	users := NewTable(CollectionUsers,
		"id", "first_name", "last_name", "email", "age", "gender", "state",
		"street_address", "postal_code", "city", "country", "latitude", "longitude",
		"traffic_source", "created_at")
	type userRow struct {
		id        int64
		first     string
		last      string
		email     string
		age       int64
		gender    string
		state     string
		street    string
		postal    string
		city      string
		lat       float64
		lon       float64
		traffic   string
		createdAt string
	}
	userRows := []userRow{
		{1, "John", "Doe", "john.doe@email.com", 28, "M", "NY", "123 Main St", "10001", "New York", 40.7128, -74.0060, "google", "2023-01-15 00:00:00"},
		{2, "Sarah", "Smith", "sarah.smith@email.com", 32, "F", "CA", "456 Oak Ave", "90210", "Los Angeles", 34.0522, -118.2437, "facebook", "2023-02-20 00:00:00"},
		{3, "Mike", "Johnson", "mike.johnson@email.com", 25, "M", "TX", "789 Pine Rd", "75001", "Dallas", 32.7767, -96.7970, "instagram", "2023-03-10 00:00:00"},
	}
	for _, u := range userRows {
		users.Append(Row{
			"id":             Int(u.id),
			"first_name":     String(u.first),
			"last_name":      String(u.last),
			"email":          String(u.email),
			"age":            Int(u.age),
			"gender":         String(u.gender),
			"state":          String(u.state),
			"street_address": String(u.street),
			"postal_code":    String(u.postal),
			"city":           String(u.city),
			"country":        String("US"),
			"latitude":       Float(u.lat),
			"longitude":      Float(u.lon),
			"traffic_source": String(u.traffic),
			"created_at":     String(u.createdAt),
		})
	}

	return &Store{
		DistributionCenters: dcs,
		Products:            products,
		InventoryItems:      inventory,
		Orders:              orders,
		OrderItems:          orderItems,
		Users:               users,
		Synthetic:           true,
	}
}
