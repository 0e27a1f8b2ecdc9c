package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/arenahq/arena/internal/api/response"
)

const (
	flashCookieName = "arena_flash"
	flashContextKey contextKey = "flash"

	// FlashError and FlashSuccess are the notice types screens render.
	FlashError   = "error"
	FlashSuccess = "success"
)

// GetFlash retrieves the flash notice from the request context
// Returns nil if no notice is set
func GetFlash(ctx context.Context) *response.Notice {
	notice, _ := ctx.Value(flashContextKey).(*response.Notice)
	return notice
}

// SetFlash sets a flash notice to be surfaced on the next request
func SetFlash(w http.ResponseWriter, noticeType, message string) {
	// Encode as type:message
	value := noticeType + ":" + message
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60, // 1 minute expiry
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flash returns middleware that reads and clears flash notices
func Flash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var notice *response.Notice

			cookie, err := r.Cookie(flashCookieName)
			if err == nil && cookie.Value != "" {
				notice = parseFlash(cookie.Value)

				// Clear the cookie
				http.SetCookie(w, &http.Cookie{
					Name:     flashCookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					Expires:  time.Unix(0, 0),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), flashContextKey, notice)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseFlash(value string) *response.Notice {
	for i := 0; i < len(value); i++ {
		if value[i] == ':' {
			return &response.Notice{
				Type:    value[:i],
				Message: value[i+1:],
			}
		}
	}
	// If no colon, treat entire value as message with default type
	return &response.Notice{
		Type:    "info",
		Message: value,
	}
}
