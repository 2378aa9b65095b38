package contact

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/server/internal/mailer"
)

type fakeSender struct {
	id    string
	err   error
	calls int
}

func (f *fakeSender) SendContact(_ context.Context, _ mailer.ContactMessage) (string, error) {
	f.calls++

	return f.id, f.err
}

func newTestRouter(sender Sender) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/contact", Handler(sender))

	return router
}

func postContact(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func TestContactHappyPath(t *testing.T) {
	sender := &fakeSender{id: "msg-123"}
	router := newTestRouter(sender)

	w := postContact(router, `{"name":"John Doe","email":"john@example.com","message":"hello","inquiryType":"hiring"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "msg-123")
	assert.Equal(t, 1, sender.calls)
}

func TestContactInvalidEmailRejectedBeforeProviderCall(t *testing.T) {
	sender := &fakeSender{id: "msg-123"}
	router := newTestRouter(sender)

	w := postContact(router, `{"name":"John Doe","email":"invalid-email","message":"hello"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email format")
	assert.Equal(t, 0, sender.calls, "validation must run before the provider call")
}

func TestContactMissingFieldsRejected(t *testing.T) {
	sender := &fakeSender{}
	router := newTestRouter(sender)

	cases := []string{
		`{"email":"a@b.dev","message":"hi"}`,
		`{"name":"John","message":"hi"}`,
		`{"name":"John","email":"a@b.dev"}`,
	}

	for _, body := range cases {
		w := postContact(router, body)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s should be rejected", body)
	}

	assert.Equal(t, 0, sender.calls)
}

func TestContactProviderErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"misconfiguration", mailer.ErrMissingConfig, http.StatusInternalServerError},
		{"invalid sender domain", fmt.Errorf("%w: domain not verified", mailer.ErrInvalidSender), http.StatusUnprocessableEntity},
		{"auth failure", fmt.Errorf("%w: bad key", mailer.ErrAuth), http.StatusUnauthorized},
		{"provider outage", fmt.Errorf("%w: status 500", mailer.ErrProvider), http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&fakeSender{err: tc.err})

			w := postContact(router, `{"name":"John Doe","email":"john@example.com","message":"hello"}`)

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}
