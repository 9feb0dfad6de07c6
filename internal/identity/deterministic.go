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

// DocumentUUID derives the stable id for a parsed document. The frontmatter
// id wins when present so re-parsing edited prose keeps identity; otherwise
// the raw source is the key.
func DocumentUUID(frontmatterID, raw string) uuid.UUID {
	if id := strings.TrimSpace(frontmatterID); id != "" {
		return UUID("go-udos:document:" + id)
	}
	return UUID("go-udos:document:raw:" + raw)
}

// AnchorUUID derives a stable id for registry bookkeeping of an anchor code.
func AnchorUUID(anchorID string) uuid.UUID {
	return UUID("go-udos:anchor:" + strings.ToUpper(strings.TrimSpace(anchorID)))
}
