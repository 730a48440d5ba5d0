package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	FullName     string    `gorm:"not null"                 json:"full_name"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false"   json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null;index"           json:"name"`
	Description string    `gorm:"not null"                 json:"description"`
	Price       float64   `gorm:"not null"                 json:"price"`
	Category    string    `gorm:"not null;index"           json:"category"`
	Inventory   uint      `gorm:"not null;default:0"       json:"inventory"`
	ImageURL    string    `json:"image_url"`
	Dimensions  string    `json:"dimensions,omitempty"`
	Weight      string    `json:"weight,omitempty"`
	Material    string    `json:"material,omitempty"`
	Capacity    string    `json:"capacity,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Cart struct {
	ID     uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint       `gorm:"uniqueIndex;not null"     json:"user_id"`
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
}

// Quantity is signed: an add may merge to a non-positive value, only an
// explicit update turns that into a deletion.
type CartItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    uint    `gorm:"not null;uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID uint     `gorm:"not null;uniqueIndex:idx_cart_product" json:"product_id"`
	Quantity  int      `gorm:"not null"                 json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}

type Order struct {
	ID              uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint        `gorm:"index;not null"           json:"user_id"`
	TotalAmount     float64     `gorm:"not null"                 json:"total_amount"`
	ShippingAddress string      `gorm:"not null"                 json:"shipping_address"`
	Status          string      `gorm:"not null"                 json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// Price is the catalog price at checkout time, frozen for the life of the
// order.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index;not null"           json:"order_id"`
	ProductID uint    `gorm:"not null"                 json:"product_id"`
	Quantity  int      `gorm:"not null"                 json:"quantity"`
	Price     float64  `gorm:"not null"                 json:"price"`
	Product   *Product `json:"product,omitempty"`
}

const OrderStatusPending = "pending"
