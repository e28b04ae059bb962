package renderer

import (
	"html/template"
	"strings"

	"github.com/listing-microservice/internal/usecase/dto"
)

// Renderer produces the HTML fragments served by the page endpoints. All
// inputs are display-ready views; rendering itself holds no state, so the
// same views always produce the same markup.
type Renderer interface {
	ListingGrid(views []dto.ListingView) (string, error)
	ListingDetail(view dto.ListingView) (string, error)
	BrokerRequestList(views []dto.BrokerRequestView) (string, error)
}

type htmlRenderer struct {
	grid    *template.Template
	detail  *template.Template
	brokers *template.Template
}

// NewHTMLRenderer parses the built-in templates. Parse errors are programmer
// errors, so this panics instead of returning them.
func NewHTMLRenderer() Renderer {
	funcs := template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}
	return &htmlRenderer{
		grid:    template.Must(template.New("grid").Funcs(funcs).Parse(listingGridTemplate)),
		detail:  template.Must(template.New("detail").Funcs(funcs).Parse(listingDetailTemplate)),
		brokers: template.Must(template.New("brokers").Parse(brokerRequestTemplate)),
	}
}

func (r *htmlRenderer) ListingGrid(views []dto.ListingView) (string, error) {
	return execute(r.grid, views)
}

func (r *htmlRenderer) ListingDetail(view dto.ListingView) (string, error) {
	return execute(r.detail, view)
}

func (r *htmlRenderer) BrokerRequestList(views []dto.BrokerRequestView) (string, error) {
	return execute(r.brokers, views)
}

func execute(tmpl *template.Template, data interface{}) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
