package domain

import (
	"fmt"
	"strings"
	"time"
)

// Clothing categories as stored by the backend. CategoryAll is the
// filter sentinel meaning "no filter"; it never appears on a record.
const (
	CategoryTops        = "tops"
	CategoryBottoms     = "bottoms"
	CategoryLayers      = "layers"
	CategoryShoes       = "shoes"
	CategoryAccessories = "accessories"
	CategoryAll         = "all"
)

// Outfit slot roles. An outfit holds at most one item per slot.
const (
	SlotTop       = "top"
	SlotBottom    = "bottom"
	SlotLayer     = "layer"
	SlotShoes     = "shoes"
	SlotAccessory = "accessory"
)

// Categories lists the real clothing categories, excluding the "all" sentinel.
func Categories() []string {
	return []string{CategoryTops, CategoryBottoms, CategoryLayers, CategoryShoes, CategoryAccessories}
}

// Timestamp wraps time.Time to tolerate the backend's bare ISO-8601
// timestamps (no zone suffix) alongside RFC 3339.
type Timestamp struct {
	time.Time
}

const naiveISOLayout = "2006-01-02T15:04:05.999999999"

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.Parse(naiveISOLayout, s)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	t.Time = parsed.UTC()
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339Nano) + `"`), nil
}

// ClothingItem is a wardrobe record as returned by the backend.
// IDs are always server-assigned.
type ClothingItem struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Category       string     `json:"category"`
	PrimaryColor   string     `json:"primaryColor,omitempty"`
	SecondaryColor string     `json:"secondaryColor,omitempty"`
	Style          string     `json:"style,omitempty"`
	Season         string     `json:"season,omitempty"`
	ImagePath      string     `json:"imagePath,omitempty"`
	IsFavorite     bool       `json:"isFavorite"`
	CreatedAt      *Timestamp `json:"createdAt,omitempty"`
	LastWorn       *Timestamp `json:"lastWorn,omitempty"`
	WearCount      int        `json:"wearCount"`
}

// ItemPatch is a partial clothing item sent on create and update.
// Unset fields are omitted from the wire body, never sent as null.
type ItemPatch struct {
	Name           string `json:"name,omitempty"`
	Category       string `json:"category,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	Style          string `json:"style,omitempty"`
	Season         string `json:"season,omitempty"`
	ImagePath      string `json:"imagePath,omitempty"`
	IsFavorite     *bool  `json:"isFavorite,omitempty"`
}

// Outfit is a generated outfit combination. The recommendation
// endpoints return the slot map in Items; the feedback endpoint
// returns the flat record with per-slot item IDs instead. Both shapes
// decode into this struct.
type Outfit struct {
	ID          int                     `json:"id"`
	Name        string                  `json:"name,omitempty"`
	StyleTag    string                  `json:"styleTag,omitempty"`
	Description string                  `json:"description,omitempty"`
	Items       map[string]ClothingItem `json:"items,omitempty"`
	TopID       *int                    `json:"topId,omitempty"`
	BottomID    *int                    `json:"bottomId,omitempty"`
	LayerID     *int                    `json:"layerId,omitempty"`
	ShoesID     *int                    `json:"shoesId,omitempty"`
	AccessoryID *int                    `json:"accessoryId,omitempty"`
	CreatedAt   *Timestamp              `json:"createdAt,omitempty"`
	IsLiked     bool                    `json:"isLiked"`
	IsSaved     bool                    `json:"isSaved"`
}

// OutfitFeedback carries the liked/saved verdicts for an outfit.
// Nil fields are omitted from the request body entirely.
type OutfitFeedback struct {
	Liked *bool `json:"liked,omitempty"`
	Saved *bool `json:"saved,omitempty"`
}

// ProcessedImage is the backend's analysis of an uploaded clothing photo.
type ProcessedImage struct {
	ImagePath      string   `json:"imagePath"`
	Category       string   `json:"category"`
	PrimaryColor   string   `json:"primaryColor,omitempty"`
	SecondaryColor string   `json:"secondaryColor,omitempty"`
	Style          string   `json:"style,omitempty"`
	Season         string   `json:"season,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// ExtractResult is the outcome of extracting a product image from a shop page.
type ExtractResult struct {
	Success   bool   `json:"success"`
	ImageURL  string `json:"imageUrl"`
	SourceURL string `json:"sourceUrl"`
}

// HealthStatus is the backend liveness response.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
