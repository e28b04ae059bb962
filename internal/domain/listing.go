package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Listing statuses recognized by the site. Anything else renders with the
// neutral badge.
const (
	StatusAvailable = "available"
	StatusPending   = "pending"
	StatusSold      = "sold"
)

// FlexInt tolerates both numeric and quoted numeric JSON values, which the
// backend emits interchangeably for bedroom and floor counts.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %q: %w", s, err)
	}
	*f = FlexInt(int(v))
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}

// Admin is the listing owner contact, used only for edit pre-fill.
type Admin struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Listing is the core entity shown to end users. Instances are never mutated
// in place; each sync replaces the whole collection.
type Listing struct {
	ID              int               `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	TitleJSON       map[string]string `json:"title_json,omitempty"`
	DescriptionJSON map[string]string `json:"description_json,omitempty"`
	Price           float64           `json:"price"`
	Location        string            `json:"location,omitempty"`
	City            string            `json:"city,omitempty"`
	Type            string            `json:"type,omitempty"`
	Status          string            `json:"status,omitempty"`
	Bedrooms        *FlexInt          `json:"bedrooms,omitempty"`
	Floor           *FlexInt          `json:"floor,omitempty"`
	Image           string            `json:"image,omitempty"`
	Images          []string          `json:"images,omitempty"`
	Admin           *Admin            `json:"admin,omitempty"`
}

// NormalizedType lowercases the raw type tag and defaults it to house when
// absent.
func (l Listing) NormalizedType() string {
	t := strings.ToLower(strings.TrimSpace(l.Type))
	if t == "" {
		return TypeHouse
	}
	return t
}

// NormalizedStatus defaults an absent status to available.
func (l Listing) NormalizedStatus() string {
	s := strings.ToLower(strings.TrimSpace(l.Status))
	if s == "" {
		return StatusAvailable
	}
	return s
}

// StatusBadgeClass maps a status to its bootstrap badge class.
func StatusBadgeClass(status string) string {
	switch strings.ToLower(status) {
	case StatusAvailable:
		return "bg-success"
	case StatusPending:
		return "bg-warning text-dark"
	case StatusSold:
		return "bg-danger"
	default:
		return "bg-secondary"
	}
}

// ResolvedImages returns the image sequence the site actually shows: the
// images list when present, otherwise the legacy scalar image, otherwise a
// single placeholder. The result is never empty.
func (l Listing) ResolvedImages(placeholder string) []string {
	if len(l.Images) > 0 {
		out := make([]string, len(l.Images))
		copy(out, l.Images)
		return out
	}
	if l.Image != "" {
		return []string{l.Image}
	}
	return []string{placeholder}
}

// Localized resolves title and description for the given language with the
// fallback chain json[lang] -> json["en"] -> default field. It always returns
// usable strings, empty at worst.
func (l Listing) Localized(lang string) Listing {
	out := l
	out.Title = localizedField(l.TitleJSON, lang, l.Title)
	out.Description = localizedField(l.DescriptionJSON, lang, l.Description)
	return out
}

func localizedField(translations map[string]string, lang, fallback string) string {
	if v := translations[lang]; v != "" {
		return v
	}
	if v := translations["en"]; v != "" {
		return v
	}
	return fallback
}

// Normalize returns a copy with the type lowered and defaulted, the status
// defaulted and the image sequence resolved, so every downstream consumer
// sees one canonical shape.
func (l Listing) Normalize(placeholder string) Listing {
	out := l
	out.Type = l.NormalizedType()
	out.Status = l.NormalizedStatus()
	out.Images = l.ResolvedImages(placeholder)
	out.Image = ""
	return out
}

// NormalizeAll normalizes a whole fetched collection.
func NormalizeAll(listings []Listing, placeholder string) []Listing {
	out := make([]Listing, len(listings))
	for i, l := range listings {
		out[i] = l.Normalize(placeholder)
	}
	return out
}

// Fingerprint is a content hash over the canonical JSON encoding of a
// collection snapshot. Struct fields marshal in declaration order and map
// keys are sorted, so equal snapshots always hash equally regardless of the
// key order the backend happened to emit.
func Fingerprint(listings []Listing) string {
	data, err := json.Marshal(listings)
	if err != nil {
		// Listings contain only marshalable fields; this cannot happen with
		// a decoded collection.
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
