package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() Message {
	return Message{
		From:     Address{Email: "info@kamenpro.net", Name: "KamenPro Website"},
		To:       []Address{{Email: "info@kamenpro.net", Name: "KamenPro Team"}},
		ReplyTo:  &Address{Email: "kupac@example.com", Name: "Kupac"},
		Subject:  "Upit za proizvod: Travertin Classic (TRV-001)",
		HTMLBody: "<p>Poruka</p>",
		TextBody: "Poruka",
	}
}

func TestBrevoClient_Send_Success(t *testing.T) {
	var received brevoPayload
	var apiKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("api-key")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<202506.12345@smtp-relay>"}`))
	}))
	defer srv.Close()

	client := NewBrevoClient("test-key", srv.URL)
	id, err := client.Send(context.Background(), testMessage())

	require.NoError(t, err)
	assert.Equal(t, "<202506.12345@smtp-relay>", id)
	assert.Equal(t, "test-key", apiKey)
	assert.Equal(t, "info@kamenpro.net", received.Sender.Email)
	require.Len(t, received.To, 1)
	assert.Equal(t, "KamenPro Team", received.To[0].Name)
	require.NotNil(t, received.ReplyTo)
	assert.Equal(t, "kupac@example.com", received.ReplyTo.Email)
	assert.Equal(t, "<p>Poruka</p>", received.HTMLContent)
}

func TestBrevoClient_Send_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"unauthorized","message":"Key not found"}`))
	}))
	defer srv.Close()

	client := NewBrevoClient("bad-key", srv.URL)
	_, err := client.Send(context.Background(), testMessage())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestBrevoClient_Send_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewBrevoClient("test-key", srv.URL)
	_, err := client.Send(ctx, testMessage())
	require.Error(t, err)
}

func TestBuildInquiryHTML_ContainsAllFields(t *testing.T) {
	html := BuildInquiryHTML(InquiryEmailData{
		ProductName: "Travertin Classic",
		ProductCode: "TRV-001",
		Quantity:    "12",
		Name:        "Marko Marković",
		Email:       "marko@example.com",
		Phone:       "+387 65 123 456",
		Message:     "Zanima me cena sa montažom.",
	})

	assert.Contains(t, html, "Novi upit za proizvod")
	assert.Contains(t, html, "Travertin Classic (TRV-001)")
	assert.Contains(t, html, "12 m²")
	assert.Contains(t, html, "Marko Marković")
	assert.Contains(t, html, "Zanima me cena sa montažom.")
}

func TestBuildMIME_HeadersAndBody(t *testing.T) {
	msg := testMessage()
	raw := string(buildMIME(msg, []string{"info@kamenpro.net"}))

	assert.Contains(t, raw, "From: \"KamenPro Website\" <info@kamenpro.net>\r\n")
	assert.Contains(t, raw, "To: info@kamenpro.net\r\n")
	assert.Contains(t, raw, "Reply-To: kupac@example.com\r\n")
	assert.Contains(t, raw, "Content-Type: text/html; charset=\"UTF-8\"\r\n")
	assert.Contains(t, raw, "\r\n\r\n<p>Poruka</p>")
}
