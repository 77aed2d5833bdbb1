package controllers

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"

	"shiftlog/internal/providers"
	"shiftlog/internal/views"
)

func init() {
	gob.Register(views.Flash{})
}

// addFlash queues a one-shot notice for the next rendered page.
func addFlash(store sessions.Store, w http.ResponseWriter, r *http.Request, category, message string) {
	session, _ := store.Get(r, providers.FlashSessionName)
	session.AddFlash(views.Flash{Category: category, Message: message})
	_ = session.Save(r, w)
}

// popFlashes drains all queued notices and clears them from the cookie.
func popFlashes(store sessions.Store, w http.ResponseWriter, r *http.Request) []views.Flash {
	session, _ := store.Get(r, providers.FlashSessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		_ = session.Save(r, w)
	}
	flashes := make([]views.Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(views.Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}
