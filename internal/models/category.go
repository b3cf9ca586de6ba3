package models

import "time"

// Category groups products in the storefront. Names are stored in both
// locales; sort_order only controls display ordering and is not unique.
type Category struct {
	ID        string    `db:"id" json:"id"`
	NameAr    string    `db:"name_ar" json:"nameAr"`
	NameEn    string    `db:"name_en" json:"nameEn"`
	ImageURL  string    `db:"image_url" json:"imageUrl"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	SortOrder int       `db:"sort_order" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Name returns the locale-appropriate display name.
func (c *Category) Name(arabic bool) string {
	if arabic {
		return c.NameAr
	}
	return c.NameEn
}
