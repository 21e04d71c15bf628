package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ProjectUUID derives the identifier used for slug-seeded projects, so repeated
// markdown imports and seeds resolve to the same record.
func ProjectUUID(slug string) uuid.UUID {
	return UUID("studio-cms:project:" + strings.ToLower(strings.TrimSpace(slug)))
}

// SettingUUID identifies a site settings row by its key.
func SettingUUID(key string) uuid.UUID {
	return UUID("studio-cms:setting:" + strings.ToLower(strings.TrimSpace(key)))
}

// AuditEventUUID derives an identifier for persisted audit events.
func AuditEventUUID(entityID, action, occurredAt string) uuid.UUID {
	return UUID("studio-cms:audit:" + entityID + ":" + action + ":" + occurredAt)
}
