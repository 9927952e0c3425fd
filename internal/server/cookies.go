package server

import (
	"net/http"
	"time"
)

const (
	// CookieName identifies the chat session cookie.
	CookieName = "eshop_session"
	// CookieMaxAge bounds how long an idle browser keeps its session id.
	// Session state itself lives until the process exits.
	CookieMaxAge = 30 * time.Minute
)

// SetSessionCookie attaches the session id to the response so follow-up
// turns from the same browser land in the same conversation.
func SetSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(CookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   false, // set true behind HTTPS
	})
}

// GetSessionCookie reads the session id from the request cookie.
func GetSessionCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}
