package settings

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Setting is a single keyed value in the site settings table.
type Setting struct {
	bun.BaseModel `bun:"table:site_settings,alias:ss"`

	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Key       string    `bun:"key,notnull,unique" json:"key"`
	Value     string    `bun:"value,notnull" json:"value"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// Defaults returns the settings seeded for a fresh studio installation.
func Defaults() map[string]string {
	return map[string]string{
		"company_name":  "Bureau 710",
		"contact_email": "hello@buro710.example",
		"instagram_url": "",
		"phone":         "",
		"address":       "",
	}
}
