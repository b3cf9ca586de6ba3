package models

import "time"

// Product is a sellable item belonging to exactly one category.
// Price is optional; showPrice=true with a null price is tolerated and the
// price is simply not rendered by clients.
type Product struct {
	ID         string    `db:"id" json:"id"`
	CategoryID string    `db:"category_id" json:"categoryId"`
	ImageURL   string    `db:"image_url" json:"imageUrl"`
	NameAr     string    `db:"name_ar" json:"nameAr"`
	NameEn     string    `db:"name_en" json:"nameEn"`
	Price      *float64  `db:"price" json:"price,omitempty"`
	ShowPrice  bool      `db:"show_price" json:"showPrice"`
	IsActive   bool      `db:"is_active" json:"isActive"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// Name returns the locale-appropriate display name.
func (p *Product) Name(arabic bool) string {
	if arabic {
		return p.NameAr
	}
	return p.NameEn
}
