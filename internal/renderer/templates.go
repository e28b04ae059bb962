package renderer

// Image URLs inside the views are already prefixed with the uploads path, so
// the templates use them verbatim.

const listingGridTemplate = `{{if not .}}<p class="text-muted">No listings.</p>{{else}}{{range $v := .}}<div class="col-md-6 col-lg-4">
  <a class="card listing-card h-100 position-relative text-decoration-none text-reset" data-id="{{.ID}}" href="/listings/{{.ID}}">
    <button class="btn-fav" data-listing-id="{{.ID}}" title="Save to favorites">&#10084;</button>
    {{if .Carousel}}<div id="carousel-{{.ID}}" class="carousel slide" data-bs-ride="carousel">
      <div class="carousel-indicators">
        {{range $i, $img := .Images}}<button type="button" data-bs-target="#carousel-{{$v.ID}}" data-bs-slide-to="{{$i}}" {{if eq $i 0}}class="active" aria-current="true"{{end}} aria-label="Slide {{inc $i}}"></button>{{end}}
      </div>
      <div class="carousel-inner">
        {{range $i, $img := .Images}}<div class="carousel-item {{if eq $i 0}}active{{end}}">
          <img src="{{$img}}" class="d-block w-100 card-img-top" alt="Listing image {{inc $i}}" style="height:200px;object-fit:cover;">
        </div>{{end}}
      </div>
      <button class="carousel-control-prev" type="button" data-bs-target="#carousel-{{.ID}}" data-bs-slide="prev">
        <span class="carousel-control-prev-icon" aria-hidden="true"></span>
        <span class="visually-hidden">Previous</span>
      </button>
      <button class="carousel-control-next" type="button" data-bs-target="#carousel-{{.ID}}" data-bs-slide="next">
        <span class="carousel-control-next-icon" aria-hidden="true"></span>
        <span class="visually-hidden">Next</span>
      </button>
      <div class="position-absolute top-0 end-0 m-2">
        <span class="badge bg-dark bg-opacity-75">{{.PhotoCount}} photos</span>
      </div>
    </div>{{else}}<img src="{{index .Images 0}}" class="card-img-top" alt="Listing image" style="height:200px;object-fit:cover;">{{end}}
    <div class="card-body">
      <h5 class="card-title">{{.Title}}</h5>
      <p class="card-text">{{.Preview}}...</p>
      <div class="fw-bold text-primary mb-2">{{.PriceLabel}}</div>
      <div class="mb-2"><span class="badge bg-info">{{if .Location}}{{.Location}}{{else}}N/A{{end}}</span></div>
    </div>
  </a>
</div>
{{end}}{{end}}`

const listingDetailTemplate = `<div class="row g-4">
  <div class="col-lg-7">
    {{if .Carousel}}<div id="detail-carousel-{{.ID}}" class="carousel slide" data-bs-ride="carousel">
      <div class="carousel-indicators">
        {{range $i, $img := .Images}}<button type="button" data-bs-target="#detail-carousel-{{$.ID}}" data-bs-slide-to="{{$i}}" {{if eq $i 0}}class="active" aria-current="true"{{end}} aria-label="Slide {{inc $i}}"></button>{{end}}
      </div>
      <div class="carousel-inner">
        {{range $i, $img := .Images}}<div class="carousel-item {{if eq $i 0}}active{{end}}">
          <img src="{{$img}}" class="d-block w-100 rounded" alt="Listing image {{inc $i}}" style="height:300px;object-fit:cover;">
        </div>{{end}}
      </div>
      <button class="carousel-control-prev" type="button" data-bs-target="#detail-carousel-{{.ID}}" data-bs-slide="prev">
        <span class="carousel-control-prev-icon" aria-hidden="true"></span>
        <span class="visually-hidden">Previous</span>
      </button>
      <button class="carousel-control-next" type="button" data-bs-target="#detail-carousel-{{.ID}}" data-bs-slide="next">
        <span class="carousel-control-next-icon" aria-hidden="true"></span>
        <span class="visually-hidden">Next</span>
      </button>
    </div>{{else}}<img src="{{index .Images 0}}" class="img-fluid rounded mb-3" alt="Listing image" style="width:100%;max-height:320px;object-fit:cover;">{{end}}
  </div>
  <div class="col-lg-5">
    <h3 class="mb-2">{{.Title}}</h3>
    <div class="text-primary h4 mb-3">{{.PriceLabel}}</div>
    <p class="mb-2 text-muted">{{if .Location}}{{.Location}}{{else if .City}}{{.City}}{{else}}N/A{{end}}</p>
    <ul class="list-unstyled mb-3">
      <li><strong>Type:</strong> {{.Type}}</li>
      <li><strong>Bedrooms:</strong> {{.BedroomsLabel}}</li>
      <li><strong>Status:</strong> <span class="badge {{.StatusBadge}}">{{.Status}}</span></li>
    </ul>
    <h6 class="text-uppercase text-muted">Description</h6>
    <p>{{.Description}}</p>
    {{if .AdminName}}<div class="small">
      <strong>Contact:</strong> {{.AdminName}}
      {{if .AdminEmail}}<br><strong>Email:</strong> <a href="mailto:{{.AdminEmail}}">{{.AdminEmail}}</a>{{end}}
      {{if .AdminPhone}}<br><strong>Phone:</strong> <a href="tel:{{.PhoneDigits}}">{{.AdminPhone}}</a>{{end}}
    </div>{{end}}
  </div>
</div>`

const brokerRequestTemplate = `{{if not .}}<div class="col-12 text-muted">No broker requests yet.</div>{{else}}{{range .}}<div class="col-md-6">
  <div class="card h-100" data-request-id="{{.ID}}">
    <div class="card-body">
      <div class="d-flex justify-content-between align-items-center mb-1">
        <h6 class="mb-0">{{.Title}}</h6>
        <span class="badge {{.StatusBadge}}">{{.Status}}</span>
      </div>
      <div class="small text-muted mb-1">{{.Type}}{{if .Location}} &middot; {{.Location}}{{end}}</div>
      <div class="fw-bold text-primary mb-2">{{.PriceLabel}}</div>
      {{if .Image}}<img src="{{.Image}}" class="img-fluid rounded mb-2" style="max-height:160px;object-fit:cover;" alt="Listing image">{{end}}
      <p class="small mb-2">{{.Description}}</p>
      <div class="small mb-2">
        <strong>Broker:</strong> {{.BrokerName}}<br>
        <strong>Email:</strong> {{.BrokerEmail}}<br>
        <strong>Phone:</strong> {{if .BrokerPhone}}<a href="tel:{{.PhoneDigits}}">{{.BrokerPhone}}</a>{{end}}
      </div>
      {{if .AdminNote}}<div class="small text-muted mb-2">Admin: {{.AdminNote}}</div>{{end}}
      <div class="d-flex gap-2">
        <button class="btn btn-sm btn-success" data-action="approve" data-request-id="{{.ID}}">Approve &amp; Publish</button>
        <button class="btn btn-sm btn-outline-danger" data-action="reject" data-request-id="{{.ID}}">Reject</button>
      </div>
    </div>
  </div>
</div>
{{end}}{{end}}`
