// Package sample carries the fixed records panels fall back to when the
// remote API is unreachable, and which the seeder writes into durable
// storage for a fresh install.
package sample

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"dairy_admin/internal/entity"
)

func rec(id string, createdAt string, fields map[string]any) entity.Record {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		t = time.Now()
	}
	return entity.Record{ID: id, CreatedAt: t, Fields: fields}
}

// Users mirrors the dummy customer list the dashboard shows when the
// admin API is down.
func Users() []entity.Record {
	return []entity.Record{
		rec("1", "2024-01-15T10:30:00Z", map[string]any{"name": "John Doe", "email": "john.doe@example.com", "mobile": "9876500001", "role": "user", "status": "active"}),
		rec("2", "2024-01-10T14:20:00Z", map[string]any{"name": "Jane Smith", "email": "jane.smith@example.com", "mobile": "9876500002", "role": "admin", "status": "active"}),
		rec("3", "2024-01-08T09:15:00Z", map[string]any{"name": "Mike Johnson", "email": "mike.johnson@example.com", "mobile": "9876500003", "role": "user", "status": "inactive"}),
		rec("4", "2024-01-05T16:45:00Z", map[string]any{"name": "Sarah Wilson", "email": "sarah.wilson@example.com", "mobile": "9876500004", "role": "user", "status": "active"}),
		rec("5", "2024-01-03T11:30:00Z", map[string]any{"name": "David Brown", "email": "david.brown@example.com", "mobile": "9876500005", "role": "moderator", "status": "active"}),
		rec("6", "2023-12-28T13:20:00Z", map[string]any{"name": "Lisa Davis", "email": "lisa.davis@example.com", "mobile": "9876500006", "role": "user", "status": "inactive"}),
		rec("7", "2023-12-25T08:10:00Z", map[string]any{"name": "Robert Miller", "email": "robert.miller@example.com", "mobile": "9876500007", "role": "user", "status": "active"}),
		rec("8", "2023-12-20T15:35:00Z", map[string]any{"name": "Emily Garcia", "email": "emily.garcia@example.com", "mobile": "9876500008", "role": "admin", "status": "active"}),
	}
}

func Products() []entity.Record {
	return []entity.Record{
		rec("1", "2024-01-02T09:00:00Z", map[string]any{"name": "Fresh Milk", "category": "milk", "price": 60.0, "offerPrice": 55.0, "stock": 50.0, "unit": "liter", "description": "Pure cow milk", "status": "available", "images": []string{}}),
		rec("2", "2024-01-02T09:05:00Z", map[string]any{"name": "Greek Yogurt", "category": "dahi", "price": 120.0, "offerPrice": 110.0, "stock": 30.0, "unit": "kg", "description": "Thick creamy yogurt", "status": "available", "images": []string{}}),
		rec("3", "2024-01-02T09:10:00Z", map[string]any{"name": "Pure Ghee", "category": "ghee", "price": 800.0, "offerPrice": 750.0, "stock": 20.0, "unit": "kg", "description": "Traditional clarified butter", "status": "available", "images": []string{}}),
	}
}

func Categories() []entity.Record {
	return []entity.Record{
		rec("1", "2024-01-01T08:00:00Z", map[string]any{"name": "Milk Products", "description": "Fresh milk and milk-based products", "products": 15.0}),
		rec("2", "2024-01-01T08:01:00Z", map[string]any{"name": "Yogurt & Dahi", "description": "Traditional and Greek yogurt varieties", "products": 12.0}),
		rec("3", "2024-01-01T08:02:00Z", map[string]any{"name": "Ghee & Butter", "description": "Pure ghee and clarified butter products", "products": 8.0}),
		rec("4", "2024-01-01T08:03:00Z", map[string]any{"name": "Buttermilk", "description": "Fresh churned buttermilk varieties", "products": 6.0}),
		rec("5", "2024-01-01T08:04:00Z", map[string]any{"name": "Cheese", "description": "Fresh and aged cheese varieties", "products": 10.0}),
		rec("6", "2024-01-01T08:05:00Z", map[string]any{"name": "Cream", "description": "Fresh cream and whipped cream", "products": 5.0}),
	}
}

func Orders() []entity.Record {
	return []entity.Record{
		rec("1", "2024-01-15T10:00:00Z", map[string]any{"customer": "John Doe", "mobile": "9876543210", "product": "Fresh Milk", "amount": 60.0, "status": "pending", "date": "2024-01-15", "quantity": 2.0, "deliveryBoy": "Raj Kumar", "address": "123 Main St"}),
		rec("2", "2024-01-14T10:00:00Z", map[string]any{"customer": "Jane Smith", "mobile": "9876543211", "product": "Greek Yogurt", "amount": 120.0, "status": "completed", "date": "2024-01-14", "quantity": 1.0, "deliveryBoy": "Amit Singh", "address": "456 Oak Ave"}),
		rec("3", "2024-01-13T10:00:00Z", map[string]any{"customer": "John Doe", "mobile": "9876543210", "product": "Pure Ghee", "amount": 800.0, "status": "shipped", "date": "2024-01-13", "quantity": 1.0, "deliveryBoy": "Suresh Yadav", "address": "123 Main St"}),
		rec("4", "2024-01-12T10:00:00Z", map[string]any{"customer": "Alice Brown", "mobile": "9876543213", "product": "Paneer", "amount": 300.0, "status": "cancelled", "date": "2024-01-12", "quantity": 1.0, "deliveryBoy": "", "address": "321 Elm St"}),
		rec("5", "2024-01-10T10:00:00Z", map[string]any{"customer": "John Doe", "mobile": "9876543210", "product": "Buttermilk", "amount": 40.0, "status": "completed", "date": "2024-01-10", "quantity": 3.0, "deliveryBoy": "Raj Kumar", "address": "123 Main St"}),
		rec("6", "2024-01-08T10:00:00Z", map[string]any{"customer": "Jane Smith", "mobile": "9876543211", "product": "Fresh Milk", "amount": 90.0, "status": "completed", "date": "2024-01-08", "quantity": 3.0, "deliveryBoy": "Amit Singh", "address": "456 Oak Ave"}),
		rec("7", "2024-01-05T10:00:00Z", map[string]any{"customer": "John Doe", "mobile": "9876543210", "product": "Greek Yogurt", "amount": 240.0, "status": "completed", "date": "2024-01-05", "quantity": 2.0, "deliveryBoy": "Raj Kumar", "address": "123 Main St"}),
		rec("8", "2024-01-03T10:00:00Z", map[string]any{"customer": "Bob Johnson", "mobile": "9876543212", "product": "Fresh Milk", "amount": 120.0, "status": "completed", "date": "2024-01-03", "quantity": 4.0, "deliveryBoy": "Suresh Yadav", "address": "789 Pine Rd"}),
		rec("9", "2024-01-01T10:00:00Z", map[string]any{"customer": "Jane Smith", "mobile": "9876543211", "product": "Paneer", "amount": 450.0, "status": "shipped", "date": "2024-01-01", "quantity": 1.0, "deliveryBoy": "Amit Singh", "address": "456 Oak Ave"}),
		rec("10", "2023-12-28T10:00:00Z", map[string]any{"customer": "John Doe", "mobile": "9876543210", "product": "Heavy Cream", "amount": 180.0, "status": "completed", "date": "2023-12-28", "quantity": 2.0, "deliveryBoy": "Raj Kumar", "address": "123 Main St"}),
	}
}

// DeliveryBoys carries bcrypt hashes, never plaintext passwords.
func DeliveryBoys() []entity.Record {
	return []entity.Record{
		rec("1", "2023-11-01T09:00:00Z", map[string]any{"name": "Raj Kumar", "phone": "9876543210", "password": hash("raj123"), "city": "Mumbai", "status": "active", "orders": 15.0, "image": []string{}}),
		rec("2", "2023-11-02T09:00:00Z", map[string]any{"name": "Amit Singh", "phone": "9876543211", "password": hash("amit123"), "city": "Delhi", "status": "active", "orders": 12.0, "image": []string{}}),
		rec("3", "2023-11-03T09:00:00Z", map[string]any{"name": "Suresh Yadav", "phone": "9876543212", "password": hash("suresh123"), "city": "Pune", "status": "inactive", "orders": 8.0, "image": []string{}}),
	}
}

func Stores() []entity.Record {
	return []entity.Record{
		rec("1", "2023-10-01T09:00:00Z", map[string]any{"name": "Main Store", "location": "Downtown", "manager": "John Smith", "phone": "9876543210", "status": "active", "revenue": 15000.0, "orders": 45.0}),
		rec("2", "2023-10-02T09:00:00Z", map[string]any{"name": "Branch Store", "location": "Mall Road", "manager": "Jane Doe", "phone": "9876543211", "status": "active", "revenue": 12500.0, "orders": 38.0}),
		rec("3", "2023-10-03T09:00:00Z", map[string]any{"name": "Express Store", "location": "Airport", "manager": "Bob Wilson", "phone": "9876543212", "status": "inactive", "revenue": 8200.0, "orders": 22.0}),
	}
}

func GiftCards() []entity.Record {
	return []entity.Record{
		rec("1", "2024-01-01T09:00:00Z", map[string]any{"code": "GIFT100", "amount": 100.0, "status": "active", "expiryDate": "2024-12-31", "usedBy": ""}),
		rec("2", "2024-01-01T09:01:00Z", map[string]any{"code": "GIFT500", "amount": 500.0, "status": "used", "expiryDate": "2024-12-31", "usedBy": "John Doe"}),
		rec("3", "2024-01-01T09:02:00Z", map[string]any{"code": "GIFT250", "amount": 250.0, "status": "active", "expiryDate": "2024-12-31", "usedBy": ""}),
	}
}

func Coupons() []entity.Record {
	return []entity.Record{
		rec("1", "2024-01-01T09:00:00Z", map[string]any{"code": "SAVE20", "discount": 20.0, "type": "percentage", "minAmount": 100.0, "status": "active", "expiryDate": "2024-12-31", "storeId": "1"}),
		rec("2", "2024-01-01T09:01:00Z", map[string]any{"code": "FLAT50", "discount": 50.0, "type": "fixed", "minAmount": 200.0, "status": "active", "expiryDate": "2024-12-31", "storeId": "2"}),
		rec("3", "2024-01-01T09:02:00Z", map[string]any{"code": "DAIRY10", "discount": 10.0, "type": "percentage", "minAmount": 50.0, "status": "expired", "expiryDate": "2024-01-15", "storeId": "1"}),
	}
}

func Payments() []entity.Record {
	return []entity.Record{
		rec("1", "2024-01-15T12:30:00Z", map[string]any{"customer": "John Doe", "items": "Fresh Milk x2, Buttermilk x1", "subtotal": 160.0, "discount": 10.0, "total": 150.0, "paymentMethod": "cash", "date": "2024-01-15", "time": "12:30"}),
		rec("2", "2024-01-14T17:10:00Z", map[string]any{"customer": "Jane Smith", "items": "Greek Yogurt x1", "subtotal": 120.0, "discount": 0.0, "total": 120.0, "paymentMethod": "upi", "date": "2024-01-14", "time": "17:10"}),
	}
}

func SupportTickets() []entity.Record {
	return []entity.Record{
		rec("1", "2024-01-15T09:00:00Z", map[string]any{"user": "John Doe", "subject": "Login Issue", "priority": "High", "status": "Open", "date": "2024-01-15"}),
		rec("2", "2024-01-14T09:00:00Z", map[string]any{"user": "Jane Smith", "subject": "Payment Problem", "priority": "Medium", "status": "In Progress", "date": "2024-01-14"}),
		rec("3", "2024-01-13T09:00:00Z", map[string]any{"user": "Bob Johnson", "subject": "Feature Request", "priority": "Low", "status": "Closed", "date": "2024-01-13"}),
	}
}

// ByEntity maps schema names to their seed sets.
func ByEntity() map[string][]entity.Record {
	return map[string][]entity.Record{
		entity.Users.Name:          Users(),
		entity.Products.Name:       Products(),
		entity.Categories.Name:     Categories(),
		entity.Orders.Name:         Orders(),
		entity.DeliveryBoys.Name:   DeliveryBoys(),
		entity.Stores.Name:         Stores(),
		entity.GiftCards.Name:      GiftCards(),
		entity.Coupons.Name:        Coupons(),
		entity.Payments.Name:       Payments(),
		entity.SupportTickets.Name: SupportTickets(),
	}
}

func hash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Warning: failed to hash sample password: %v", err)
		return ""
	}
	return string(h)
}
