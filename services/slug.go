package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// wordsPerMinute is the assumed reading speed for the read time estimate.
const wordsPerMinute = 275

// NewSlug derives a URL-safe, globally unique slug from an article title.
// The random suffix keeps identical titles distinct; the slug never changes
// once assigned.
func NewSlug(title string) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	base := slug.Make(title)
	if base == "" {
		base = "article"
	}
	return fmt.Sprintf("%s-%s", base, suffix)
}

// ReadTime estimates reading time in whole minutes from the body's word
// count, rounding up. Anything shorter than a minute reports as 1.
func ReadTime(body string) int {
	words := len(strings.Fields(body))
	if words == 0 {
		return 1
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
