package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// NewHTTPServer starts an httptest server for download tests, skipping the
// test when the sandbox forbids local listeners.
func NewHTTPServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("skipping HTTP test: local listener unavailable (%v)", r)
			}
		}()
		srv = httptest.NewServer(handler)
	}()
	t.Cleanup(srv.Close)
	return srv
}
