package httpx

import (
	"encoding/base64"
	"net/http"
	"strings"
)

const flashCookieName = "flash"

// Flash kinds map to styling classes in the layout template.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Flash is a one-shot notice carried across a redirect in a cookie.
// The cookie is written before the redirect and cleared when the next page
// reads it, so the notice renders exactly once.
type Flash struct {
	Kind    string
	Message string
}

// SetFlash stores a one-shot notice in the flash cookie. Call it before
// writing the redirect; headers cannot be changed afterwards.
func SetFlash(w http.ResponseWriter, kind, message string) {
	payload := base64.URLEncoding.EncodeToString([]byte(kind + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    payload,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   300, // safety net; normally consumed on the next request
	})
}

// PopFlash reads and clears the flash cookie. Returns nil when no flash is
// pending or the payload cannot be decoded.
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	// Clear regardless of whether the payload decodes; a broken flash
	// should not stick around.
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	kind, message, ok := strings.Cut(string(decoded), "|")
	if !ok || message == "" {
		return nil
	}
	if kind != FlashSuccess && kind != FlashError && kind != FlashInfo {
		kind = FlashInfo
	}

	return &Flash{Kind: kind, Message: message}
}
