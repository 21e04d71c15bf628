// Package http provides optional HTTP adapters for the studio site.
//
// Public routes mount wherever the host application chooses:
//   - GET /api/portfolio              published project summaries
//   - GET /api/portfolio/{id}         project detail with resolved sections (?locale=)
//   - GET /api/portfolio/{id}/sections  resolved section list only (?locale=)
//   - GET /api/settings               public site settings
//   - GET /projects/{slug}            server-rendered project page (?locale=)
//
// Admin routes mount under /admin/api and pass through the host's AdminGuard:
//   - POST   portfolio                    create a project
//   - PUT    portfolio/{id}               update project fields
//   - DELETE portfolio/{id}               delete a project
//   - PUT    portfolio/{id}/sections      replace the whole section list
//   - PUT    portfolio/{id}/translations  merge per-section translations
//   - POST   portfolio/migrate-sections   persist synthesized legacy sections
//   - GET    activity                     recorded admin actions
//   - GET    settings / PUT settings/{key}
package http
