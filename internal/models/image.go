package models

// Image is a finished drawing persisted by its owner. ImageData holds the
// raster as an opaque data-URI string; immutable once created.
type Image struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"index;not null" json:"userId"`
	ImageData string `gorm:"type:text;not null" json:"imageData"`
}
