package entity

import "errors"

// Status values shared by several entities.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Users are server-backed customers/administrators of the shop.
var Users = Schema{
	Name:         "users",
	Title:        "Users",
	ServerBacked: true,
	APIPath:      "/admin/users",
	CSVFile:      "users_data.csv",
	CSVHeader:    []string{"name", "email", "mobile", "role", "status"},
	Fields: []Field{
		{Name: "name", Label: "Name", Kind: Text, Required: true},
		{Name: "email", Label: "Email", Kind: Email, Required: true},
		{Name: "mobile", Label: "Mobile", Kind: Phone},
		{Name: "role", Label: "Role", Kind: Enum, Options: []string{"user", "admin", "moderator"}},
		{Name: "status", Label: "Status", Kind: Enum, Options: []string{StatusActive, StatusInactive}},
	},
}

// Products are server-backed dairy items.
var Products = Schema{
	Name:         "products",
	Title:        "Dairy Products",
	ServerBacked: true,
	APIPath:      "/api/products",
	CSVFile:      "products_data.csv",
	CSVHeader:    []string{"name", "category", "price", "stock", "unit", "description", "status"},
	Fields: []Field{
		{Name: "name", Label: "Product Name", Kind: Text, Required: true},
		{Name: "category", Label: "Category", Kind: Enum, Options: []string{"milk", "dahi", "ghee", "buttermilk", "cheese", "cream"}},
		{Name: "price", Label: "Price", Kind: Number, Required: true, Positive: true},
		{Name: "offerPrice", Label: "Offer Price", Kind: Number, Positive: true},
		{Name: "stock", Label: "Stock Quantity", Kind: Integer, Required: true, Min: minOf(0)},
		{Name: "unit", Label: "Unit", Kind: Enum, Options: []string{"liter", "kg", "gram", "ml", "box"}},
		{Name: "description", Label: "Description", Kind: LongText},
		{Name: "status", Label: "Status", Kind: Enum, Options: []string{"available", "out-of-stock", "discontinued"}},
		{Name: "images", Label: "Product Images", Kind: Images},
	},
	Check: func(fields map[string]any) error {
		offer, ok := fields["offerPrice"].(float64)
		if !ok || offer == 0 {
			return nil
		}
		if price, ok := fields["price"].(float64); ok && offer >= price {
			return errors.New("offer price must be lower than price")
		}
		return nil
	},
}

var Categories = Schema{
	Name:      "categories",
	Title:     "Categories",
	CSVFile:   "categories_data.csv",
	CSVHeader: []string{"name", "description", "products"},
	Fields: []Field{
		{Name: "name", Label: "Category Name", Kind: Text, Required: true},
		{Name: "description", Label: "Description", Kind: LongText},
		// Display-only count maintained by nothing; the dashboard derives
		// live counts from the product store instead.
		{Name: "products", Label: "Products", Kind: Integer, Immutable: true},
	},
}

var Orders = Schema{
	Name:      "orders",
	Title:     "Orders",
	CSVFile:   "orders_data.csv",
	CSVHeader: []string{"customer", "mobile", "product", "quantity", "amount", "status", "deliveryBoy", "address", "date"},
	Fields: []Field{
		{Name: "customer", Label: "Customer Name", Kind: Text, Required: true},
		{Name: "mobile", Label: "Mobile", Kind: Phone, Required: true},
		{Name: "product", Label: "Product", Kind: Text, Required: true},
		{Name: "quantity", Label: "Quantity", Kind: Integer, Required: true, Min: minOf(1)},
		{Name: "amount", Label: "Amount", Kind: Number, Required: true, Positive: true},
		{Name: "status", Label: "Status", Kind: Enum, Options: []string{"pending", "completed", "shipped", "cancelled"}},
		// Linked by display name, so renaming a delivery person orphans
		// the reference. Kept from the source data model.
		{Name: "deliveryBoy", Label: "Delivery Boy", Kind: Text},
		{Name: "address", Label: "Address", Kind: LongText},
		{Name: "date", Label: "Date", Kind: Date},
	},
}

var DeliveryBoys = Schema{
	Name:      "deliveryboys",
	Title:     "Delivery Personnel",
	CSVFile:   "delivery_boys_data.csv",
	CSVHeader: []string{"name", "phone", "city", "status", "orders"},
	Fields: []Field{
		{Name: "name", Label: "Name", Kind: Text, Required: true},
		{Name: "phone", Label: "Phone", Kind: Phone, Required: true},
		{Name: "password", Label: "Password", Kind: Secret, Required: true},
		{Name: "city", Label: "City", Kind: Text, Required: true},
		{Name: "status", Label: "Status", Kind: Enum, Options: []string{StatusActive, StatusInactive}},
		{Name: "orders", Label: "Orders Delivered", Kind: Integer, Immutable: true},
		{Name: "image", Label: "Photo", Kind: Images},
	},
}

var Stores = Schema{
	Name:      "stores",
	Title:     "Stores",
	CSVFile:   "stores_data.csv",
	CSVHeader: []string{"name", "location", "manager", "phone", "status", "revenue", "orders"},
	Fields: []Field{
		{Name: "name", Label: "Store Name", Kind: Text, Required: true},
		{Name: "location", Label: "Location", Kind: Text, Required: true},
		{Name: "manager", Label: "Manager", Kind: Text, Required: true},
		{Name: "phone", Label: "Phone", Kind: Phone},
		{Name: "status", Label: "Status", Kind: Enum, Options: []string{StatusActive, StatusInactive}},
		{Name: "revenue", Label: "Revenue", Kind: Number, Immutable: true},
		{Name: "orders", Label: "Orders", Kind: Integer, Immutable: true},
	},
}

var GiftCards = Schema{
	Name:      "giftcards",
	Title:     "Gift Cards",
	CSVFile:   "gift_cards_data.csv",
	CSVHeader: []string{"code", "amount", "status", "expiryDate", "usedBy"},
	Fields: []Field{
		{Name: "code", Label: "Code", Kind: Text, Required: true},
		{Name: "amount", Label: "Amount", Kind: Number, Required: true, Positive: true},
		{Name: "status", Label: "Status", Kind: Enum, Options: []string{StatusActive, "used", "expired"}},
		{Name: "expiryDate", Label: "Expiry Date", Kind: Date, Required: true},
		{Name: "usedBy", Label: "Used By", Kind: Text, Immutable: true},
	},
}

var Coupons = Schema{
	Name:      "coupons",
	Title:     "Coupons",
	CSVFile:   "coupons_data.csv",
	CSVHeader: []string{"code", "discount", "type", "minAmount", "status", "expiryDate", "storeId"},
	Fields: []Field{
		{Name: "code", Label: "Code", Kind: Text, Required: true},
		{Name: "discount", Label: "Discount", Kind: Number, Required: true, Positive: true},
		{Name: "type", Label: "Discount Type", Kind: Enum, Options: []string{"percentage", "fixed"}},
		{Name: "minAmount", Label: "Minimum Amount", Kind: Number, Min: minOf(0)},
		{Name: "status", Label: "Status", Kind: Enum, Options: []string{StatusActive, StatusInactive, "expired"}},
		{Name: "expiryDate", Label: "Expiry Date", Kind: Date, Required: true},
		// Empty means the coupon applies to every store.
		{Name: "storeId", Label: "Store", Kind: Text},
	},
}

// Payments is an append-only log written by the checkout flow; the panel
// only lists, exports and deletes entries.
var Payments = Schema{
	Name:       "payments",
	Title:      "Payment History",
	AppendOnly: true,
	CSVFile:    "payments_data.csv",
	CSVHeader:  []string{"customer", "subtotal", "discount", "total", "paymentMethod", "date", "time"},
	Fields: []Field{
		{Name: "customer", Label: "Customer", Kind: Text, Immutable: true},
		{Name: "items", Label: "Items", Kind: Text, Immutable: true},
		{Name: "subtotal", Label: "Subtotal", Kind: Number, Immutable: true},
		{Name: "discount", Label: "Discount", Kind: Number, Immutable: true},
		{Name: "total", Label: "Total", Kind: Number, Immutable: true},
		{Name: "paymentMethod", Label: "Payment Method", Kind: Text, Immutable: true},
		{Name: "date", Label: "Date", Kind: Date, Immutable: true},
		{Name: "time", Label: "Time", Kind: Text, Immutable: true},
	},
}

var SupportTickets = Schema{
	Name:      "tickets",
	Title:     "Support Center",
	ReadOnly:  true,
	CSVFile:   "support_tickets_data.csv",
	CSVHeader: []string{"user", "subject", "priority", "status", "date"},
	Fields: []Field{
		{Name: "user", Label: "User", Kind: Text},
		{Name: "subject", Label: "Subject", Kind: Text},
		{Name: "priority", Label: "Priority", Kind: Enum, Options: []string{"High", "Medium", "Low"}},
		{Name: "status", Label: "Status", Kind: Enum, Options: []string{"Open", "In Progress", "Closed"}},
		{Name: "date", Label: "Date", Kind: Date},
	},
}

// All returns every panel schema in sidebar order.
func All() []Schema {
	return []Schema{
		Users, Products, Categories, Orders, DeliveryBoys,
		Stores, GiftCards, Coupons, Payments, SupportTickets,
	}
}
