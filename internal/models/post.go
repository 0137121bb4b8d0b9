// Package models contains data structures for the application's domain models.
package models

import "time"

// DefaultItemName is substituted when a review does not name the item it rates.
const DefaultItemName = "Unknown Item"

// Post represents a single review entry.
type Post struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	ItemName  string    `json:"item_name,omitempty"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayItemName returns the item name, falling back to DefaultItemName.
func (p Post) DisplayItemName() string {
	if p.ItemName == "" {
		return DefaultItemName
	}
	return p.ItemName
}

// HasImage reports whether the post carries a stored image reference.
func (p Post) HasImage() bool {
	return p.Image != ""
}
