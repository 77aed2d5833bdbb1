package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftlog/internal/structures"
)

func TestNewSessionProvider_FlashRoundtrip(t *testing.T) {
	conf := &structures.Config{
		Session: structures.SessionConfig{Secret: "test-secret"},
	}
	store := NewSessionProvider(conf)

	// First request: add a flash and write the cookie.
	req := httptest.NewRequest(http.MethodPost, "/add", nil)
	rr := httptest.NewRecorder()

	session, err := store.Get(req, FlashSessionName)
	require.NoError(t, err)
	session.AddFlash("Added record for Alice.", "success")
	require.NoError(t, session.Save(req, rr))

	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)

	// Second request: carry the cookie back and read the flash.
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req2.AddCookie(c)
	}

	session2, err := store.Get(req2, FlashSessionName)
	require.NoError(t, err)
	flashes := session2.Flashes("success")
	require.Len(t, flashes, 1)
	assert.Equal(t, "Added record for Alice.", flashes[0])
}

func TestNewSessionProvider_TamperedCookieRejected(t *testing.T) {
	store := NewSessionProvider(&structures.Config{
		Session: structures.SessionConfig{Secret: "test-secret"},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: FlashSessionName, Value: "forged-payload"})

	session, err := store.Get(req, FlashSessionName)
	// gorilla returns a fresh session along with the decode error.
	assert.Error(t, err)
	assert.True(t, session.IsNew)
}
