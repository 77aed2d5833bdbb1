package providers

import (
	"github.com/gorilla/sessions"

	"shiftlog/internal/structures"
)

const FlashSessionName = "shiftlog-session"

// NewSessionProvider builds the signed-cookie store used for flash messages.
// Cookies are signed with the configured secret; Secure is left to the
// reverse proxy since shiftlog itself speaks plain HTTP.
func NewSessionProvider(conf *structures.Config) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(conf.Session.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
	}
	return store
}
