package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"regexp"
	"strconv"
	"strings"

	"github.com/sbilibin2017/nailstudio-booking/internal/logger"
)

const maxFormMemory = 32 << 20

var markupPattern = regexp.MustCompile(`<[^>]*>`)

// parseForm accepts both url-encoded and multipart bodies.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}
	return nil
}

// formText returns the trimmed value of key with markup removed.
func formText(r *http.Request, key string) string {
	return sanitize(r.PostForm.Get(key))
}

func sanitize(s string) string {
	return strings.TrimSpace(markupPattern.ReplaceAllString(s, ""))
}

// formCheckbox reports whether any of keys was submitted, whatever its value.
func formCheckbox(r *http.Request, keys ...string) bool {
	for _, k := range keys {
		if _, ok := r.PostForm[k]; ok {
			return true
		}
	}
	return false
}

// formEmail returns nil unless key holds a single bare address.
func formEmail(ctx context.Context, r *http.Request, key string) *string {
	raw := strings.TrimSpace(r.PostForm.Get(key))
	if raw == "" {
		return nil
	}
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		logger.FromContext(ctx).Infow("dropping invalid email", "email", raw)
		return nil
	}
	return &addr.Address
}

// formInt returns nil when key is absent or not an integer that fits an
// INTEGER column.
func formInt(ctx context.Context, r *http.Request, key string) *int {
	raw := strings.TrimSpace(r.PostForm.Get(key))
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		logger.FromContext(ctx).Infow("dropping invalid integer", "field", key, "value", raw)
		return nil
	}
	v := int(n)
	return &v
}
