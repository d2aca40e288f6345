package models

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// GeneratePostID creates the ID for a newly generated post: the first 12 hex
// characters of an MD5 over category, slug, and creation time. Existing rows
// keep whatever ID they were written with.
func GeneratePostID(category, slug string, createdAt time.Time) string {
	input := fmt.Sprintf("%s-%s-%s", category, slug, FormatISO8601(createdAt))
	hash := md5.Sum([]byte(input))
	return hex.EncodeToString(hash[:])[:12]
}

// GenerateRunID creates a unique ID for one generation run.
func GenerateRunID(timestamp time.Time) string {
	input := fmt.Sprintf("run|%d", timestamp.Unix())
	hash := sha256.Sum256([]byte(input))
	return "run_" + hex.EncodeToString(hash[:])[:8]
}

// Slugify converts a topic string into a URL-friendly slug. Used only when
// the content generator's response lacks a slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

// IsValidURL performs basic URL validation.
func IsValidURL(url string) bool {
	if url == "" {
		return false
	}
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
