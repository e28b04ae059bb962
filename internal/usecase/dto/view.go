package dto

import (
	"fmt"
	"strings"

	"github.com/listing-microservice/internal/domain"
	"github.com/listing-microservice/internal/pkg/format"
)

const previewLength = 60

// ListingView is a display-ready projection of one listing: localized,
// price-formatted, with the image sequence resolved to URLs.
type ListingView struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Preview     string   `json:"preview"`
	Price       float64  `json:"price"`
	PriceLabel  string   `json:"price_label"`
	Location    string   `json:"location,omitempty"`
	City        string   `json:"city,omitempty"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	StatusBadge string   `json:"status_badge"`
	Bedrooms    *int     `json:"bedrooms,omitempty"`
	Images      []string `json:"images"`
	PhotoCount  int      `json:"photo_count"`
	Carousel    bool     `json:"carousel"`
	AdminName   string   `json:"admin_name,omitempty"`
	AdminEmail  string   `json:"admin_email,omitempty"`
	AdminPhone  string   `json:"admin_phone,omitempty"`
	PhoneHref   string   `json:"phone_href,omitempty"`
}

// BedroomsLabel renders the bedroom count for display, with N/A when the
// listing does not carry one.
func (v ListingView) BedroomsLabel() string {
	if v.Bedrooms == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v.Bedrooms)
}

// PhoneDigits returns the dialable part of the phone href. HTML templates
// keep the tel: scheme literal and interpolate only this part, since the
// scheme would otherwise be filtered as unsafe.
func (v ListingView) PhoneDigits() string {
	return strings.TrimPrefix(v.PhoneHref, "tel:")
}

// NewListingView builds the view for one normalized listing in the given
// language. The listing must already carry a non-empty image sequence.
func NewListingView(l domain.Listing, lang, uploadsPath string) ListingView {
	localized := l.Localized(lang)

	images := make([]string, len(l.Images))
	for i, img := range l.Images {
		images[i] = fmt.Sprintf("%s/%s", uploadsPath, img)
	}

	view := ListingView{
		ID:          l.ID,
		Title:       localized.Title,
		Description: localized.Description,
		Preview:     format.Truncate(localized.Description, previewLength),
		Price:       l.Price,
		PriceLabel:  format.Currency(l.Price),
		Location:    l.Location,
		City:        l.City,
		Type:        l.NormalizedType(),
		Status:      l.NormalizedStatus(),
		StatusBadge: domain.StatusBadgeClass(l.NormalizedStatus()),
		Images:      images,
		PhotoCount:  len(images),
		Carousel:    len(images) > 1,
	}

	if l.Bedrooms != nil {
		n := l.Bedrooms.Int()
		view.Bedrooms = &n
	}
	if l.Admin != nil {
		view.AdminName = l.Admin.Name
		view.AdminEmail = l.Admin.Email
		view.AdminPhone = l.Admin.Phone
		view.PhoneHref = format.TelHref(l.Admin.Phone)
	}

	return view
}

// NewListingViews builds views for a whole collection.
func NewListingViews(listings []domain.Listing, lang, uploadsPath string) []ListingView {
	views := make([]ListingView, len(listings))
	for i, l := range listings {
		views[i] = NewListingView(l, lang, uploadsPath)
	}
	return views
}

// ListingCollectionResponse is the filtered collection plus the tab counts
// computed over the full catalog.
type ListingCollectionResponse struct {
	Listings []ListingView         `json:"listings"`
	Counts   domain.CategoryCounts `json:"counts"`
}

// BrokerRequestView is the admin-panel projection of a pending submission.
type BrokerRequestView struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	PriceLabel  string  `json:"price_label"`
	Location    string  `json:"location,omitempty"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	StatusBadge string  `json:"status_badge"`
	Image       string  `json:"image,omitempty"`
	BrokerName  string  `json:"broker_name,omitempty"`
	BrokerEmail string  `json:"broker_email,omitempty"`
	BrokerPhone string  `json:"broker_phone,omitempty"`
	PhoneHref   string  `json:"phone_href,omitempty"`
	AdminNote   string  `json:"admin_note,omitempty"`
}

// PhoneDigits returns the dialable part of the broker's phone href.
func (v BrokerRequestView) PhoneDigits() string {
	return strings.TrimPrefix(v.PhoneHref, "tel:")
}

// NewBrokerRequestView builds the admin view of one submission. Unlike
// listings, requests without images show no placeholder.
func NewBrokerRequestView(r domain.BrokerRequest, uploadsPath string) BrokerRequestView {
	status := r.Status
	if status == "" {
		status = domain.RequestPending
	}
	view := BrokerRequestView{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		PriceLabel:  format.Currency(r.Price),
		Location:    r.Location,
		Type:        r.NormalizedType(),
		Status:      status,
		StatusBadge: domain.RequestBadgeClass(status),
		BrokerName:  r.BrokerName,
		BrokerEmail: r.BrokerEmail,
		BrokerPhone: r.BrokerPhone,
		PhoneHref:   format.TelHref(r.BrokerPhone),
		AdminNote:   r.AdminNote,
	}
	if len(r.Images) > 0 {
		view.Image = fmt.Sprintf("%s/%s", uploadsPath, r.Images[0])
	}
	return view
}

// NewBrokerRequestViews builds views for the whole queue.
func NewBrokerRequestViews(requests []domain.BrokerRequest, uploadsPath string) []BrokerRequestView {
	views := make([]BrokerRequestView, len(requests))
	for i, r := range requests {
		views[i] = NewBrokerRequestView(r, uploadsPath)
	}
	return views
}
