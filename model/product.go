package model

import "time"

// ProductEntity represents one catalog listing.
type ProductEntity struct {
	ID                uint64           `db:"id" json:"id"`
	Name              string           `db:"name" json:"name"`
	Description       string           `db:"description" json:"description"`
	Price             float64          `db:"price" json:"price"`
	Currency          string           `db:"currency" json:"currency"`
	ImageURL          string           `db:"image_url" json:"image"`
	AvailableQuantity int64            `db:"available_quantity" json:"availableQuantity"`
	Unit              string           `db:"unit" json:"unit"`
	Category          string           `db:"category" json:"category"`
	Origin            string           `db:"origin" json:"origin"`
	HarvestSeason     string           `db:"harvest_season" json:"harvestSeason"`
	ShelfLife         string           `db:"shelf_life" json:"shelfLife"`
	PackagingOptions  StringList       `db:"packaging_options" json:"packagingOptions,omitempty"`
	Certifications    StringList       `db:"certifications" json:"certifications,omitempty"`
	NutritionalInfo   *NutritionalInfo `db:"nutritional_info" json:"nutritionalInfo,omitempty"`
	Featured          bool             `db:"featured" json:"featured"`
	Active            bool             `db:"active" json:"active"`
	CreatedByID       *uint64          `db:"created_by" json:"-"`
	CreatedBy         *UserRef         `db:"-" json:"createdBy,omitempty"`
	CreatedAt         time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt         *time.Time       `db:"updated_at" json:"updatedAt,omitempty"`
}

// ProductFilter narrows the catalog listing. Empty fields do not filter.
// IncludeInactive is only honoured for admin callers.
type ProductFilter struct {
	Category        string
	Featured        *bool
	IncludeInactive bool
	Query           ListQuery
}

// CreateProductRequest is the admin creation payload. The image arrives as a
// multipart part and is uploaded separately; ImageURL is filled in by the
// service after upload.
type CreateProductRequest struct {
	Name              string           `json:"name" validate:"required,min=2,max=100"`
	Description       string           `json:"description" validate:"required,min=10,max=1000"`
	Price             float64          `json:"price" validate:"gte=0"`
	Currency          string           `json:"currency" validate:"omitempty,oneof=USD LKR EUR"`
	AvailableQuantity int64            `json:"availableQuantity" validate:"gte=0"`
	Unit              string           `json:"unit" validate:"required,oneof=kg tons pieces boxes"`
	Category          string           `json:"category" validate:"required,oneof=fruits vegetables coconut-products organic"`
	Origin            string           `json:"origin" validate:"omitempty,max=100"`
	HarvestSeason     string           `json:"harvestSeason" validate:"required,min=2,max=50"`
	ShelfLife         string           `json:"shelfLife" validate:"required,min=2,max=50"`
	PackagingOptions  []string         `json:"packagingOptions" validate:"omitempty,dive,max=100"`
	Certifications    []string         `json:"certifications" validate:"omitempty,dive,oneof=organic fair-trade export-quality gmp haccp"`
	NutritionalInfo   *NutritionalInfo `json:"nutritionalInfo"`
	Featured          bool             `json:"featured"`
}

// UpdateProductRequest re-validates only the supplied fields.
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=2,max=100"`
	Description       *string          `json:"description" validate:"omitempty,min=10,max=1000"`
	Price             *float64         `json:"price" validate:"omitempty,gte=0"`
	Currency          *string          `json:"currency" validate:"omitempty,oneof=USD LKR EUR"`
	AvailableQuantity *int64           `json:"availableQuantity" validate:"omitempty,gte=0"`
	Unit              *string          `json:"unit" validate:"omitempty,oneof=kg tons pieces boxes"`
	Category          *string          `json:"category" validate:"omitempty,oneof=fruits vegetables coconut-products organic"`
	Origin            *string          `json:"origin" validate:"omitempty,max=100"`
	HarvestSeason     *string          `json:"harvestSeason" validate:"omitempty,min=2,max=50"`
	ShelfLife         *string          `json:"shelfLife" validate:"omitempty,min=2,max=50"`
	PackagingOptions  []string         `json:"packagingOptions" validate:"omitempty,dive,max=100"`
	Certifications    []string         `json:"certifications" validate:"omitempty,dive,oneof=organic fair-trade export-quality gmp haccp"`
	NutritionalInfo   *NutritionalInfo `json:"nutritionalInfo"`
	Featured          *bool            `json:"featured"`
	Active            *bool            `json:"active"`
}

// ProductListResult is the repository-level page plus the filter total.
type ProductListResult struct {
	Items []ProductEntity
	Total int64
}
