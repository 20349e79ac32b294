package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a stable UUID from key with go-hashid, falling back to a
// SHA1 namespace UUID if hashing fails. Keys should carry a type prefix so
// different record kinds never collide.
func UUID(key string) uuid.UUID {
	return derive(key, true)
}

func derive(key string, normalize bool) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(normalize))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// DocumentUUID is the primary key for the content document stored under key.
// Document keys are case sensitive ("imageGrid"), so normalization is off.
func DocumentUUID(key string) uuid.UUID {
	return derive("sitecms:document:"+strings.TrimSpace(key), false)
}
