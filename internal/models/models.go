package models

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"  json:"id"    bson:"_id"`
	Name         string `gorm:"not null"                  json:"name"  bson:"name"`
	Email        string `gorm:"uniqueIndex;not null"      json:"email" bson:"email"`
	PasswordHash string `gorm:"not null"                  json:"-"     bson:"password_hash"`
}

type Product struct {
	ID    uint    `gorm:"primaryKey;autoIncrement"     json:"id"    bson:"_id"`
	Name  string  `gorm:"not null"                     json:"name"  bson:"name"`
	Price float64 `gorm:"not null;check:price >= 0"    json:"price" bson:"price"`
	Image string  `json:"image"                                     bson:"image"`
}

type CartItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement"     json:"id"         bson:"_id"`
	UserID    uint `gorm:"index;not null"               json:"user_id"    bson:"user_id"`
	ProductID uint `gorm:"not null"                     json:"product_id" bson:"product_id"`
	Quantity  int  `gorm:"not null;check:quantity > 0"  json:"quantity"   bson:"quantity"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// CartLine is a cart item joined with its product.
type CartLine struct {
	ID        uint    `json:"id"`
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}
