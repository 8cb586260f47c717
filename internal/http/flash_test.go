package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flashCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookieName {
			return c
		}
	}
	return nil
}

func TestFlash_RoundTrip(t *testing.T) {
	setRec := httptest.NewRecorder()
	SetFlash(setRec, FlashSuccess, "You have logged out")

	cookie := flashCookieFrom(t, setRec)
	require.NotNil(t, cookie)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookie)
	popRec := httptest.NewRecorder()

	flash := PopFlash(popRec, r)
	require.NotNil(t, flash)
	assert.Equal(t, FlashSuccess, flash.Kind)
	assert.Equal(t, "You have logged out", flash.Message)

	// Popping clears the cookie on the response.
	cleared := flashCookieFrom(t, popRec)
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)
}

func TestFlash_MessageWithSeparator(t *testing.T) {
	setRec := httptest.NewRecorder()
	SetFlash(setRec, FlashError, "a | b | c")

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(flashCookieFrom(t, setRec))

	flash := PopFlash(httptest.NewRecorder(), r)
	require.NotNil(t, flash)
	assert.Equal(t, "a | b | c", flash.Message)
}

func TestFlash_UnknownKindFallsBackToInfo(t *testing.T) {
	setRec := httptest.NewRecorder()
	SetFlash(setRec, "shout", "hello")

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(flashCookieFrom(t, setRec))

	flash := PopFlash(httptest.NewRecorder(), r)
	require.NotNil(t, flash)
	assert.Equal(t, FlashInfo, flash.Kind)
}

func TestPopFlash_NoCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, PopFlash(httptest.NewRecorder(), r))
}

func TestPopFlash_GarbagePayloadClearsAndReturnsNil(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: flashCookieName, Value: "%%%not-base64%%%"})

	rec := httptest.NewRecorder()
	assert.Nil(t, PopFlash(rec, r))

	cleared := flashCookieFrom(t, rec)
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)
}
