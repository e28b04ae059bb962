package dto

// ListingFilterRequest carries the free-text and structured filter criteria.
// Zero values mean the criterion is unset.
type ListingFilterRequest struct {
	Text     string  `json:"text"`
	MinPrice float64 `json:"min_price" validate:"gte=0"`
	MaxPrice float64 `json:"max_price" validate:"gte=0"`
	Bedrooms string  `json:"bedrooms"`
	Category string  `json:"category"`
	Language string  `json:"language"`
}

// ListingFormRequest is the admin create/update form. The backend validates
// again on its side; this layer rejects obviously broken submissions before
// they travel.
type ListingFormRequest struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
	Price       string `form:"price" validate:"required,numeric"`
	City        string `form:"city"`
	Location    string `form:"location"`
	Type        string `form:"type" validate:"omitempty,oneof=house apartment land car materials other property properties"`
	Status      string `form:"status" validate:"omitempty,oneof=available pending sold"`
	Bedrooms    string `form:"bedrooms" validate:"omitempty,numeric"`
	Floor       string `form:"floor" validate:"omitempty,numeric"`
	AdminName   string `form:"admin_name"`
	AdminEmail  string `form:"admin_email" validate:"omitempty,email"`
	AdminPhone  string `form:"admin_phone"`
}

// Fields flattens the form into the multipart field map the backend expects.
// Empty optional fields are omitted so the backend's own defaults apply.
func (r ListingFormRequest) Fields() map[string]string {
	fields := map[string]string{
		"title": r.Title,
		"price": r.Price,
	}
	optional := map[string]string{
		"description": r.Description,
		"city":        r.City,
		"location":    r.Location,
		"type":        r.Type,
		"status":      r.Status,
		"bedrooms":    r.Bedrooms,
		"floor":       r.Floor,
		"admin_name":  r.AdminName,
		"admin_email": r.AdminEmail,
		"admin_phone": r.AdminPhone,
	}
	for name, value := range optional {
		if value != "" {
			fields[name] = value
		}
	}
	return fields
}

// DecisionRequest is the admin verdict on a broker request. The note is
// optional and only meaningful on rejection.
type DecisionRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Note   string `json:"note"`
}

// LanguageRequest sets the visitor's active language.
type LanguageRequest struct {
	Language string `json:"language" validate:"required"`
}
