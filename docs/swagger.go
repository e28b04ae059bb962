// Package docs Listing Microservice API.
//
// Presentation service for the real-estate listing site. Consumes the
// listings backend, keeps a deduplicated in-memory catalog, and serves the
// filtered, localized listing pages plus the admin mutation endpoints.
//
// Main capabilities:
// - Listing collection with free-text, price, bedroom and category filters
// - Localized titles and descriptions (en, am, ti) with English fallback
// - Admin create/update/delete proxied to the backend
// - Broker request queue with approve/reject decisions
// - Per-visitor favorites and language preference
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//	- multipart/form-data
//
//	Produces:
//	- application/json
//	- text/html
//
// swagger:meta
package docs
