package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kamenpro/kamenpro-backend/internal/logger"
)

// DefaultBrevoURL je produkcioni endpoint Brevo transakcionog API-ja.
const DefaultBrevoURL = "https://api.brevo.com/v3/smtp/email"

// BrevoClient šalje poruke preko Brevo HTTP API-ja.
type BrevoClient struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewBrevoClient pravi klijenta za zadati ključ. Prazan apiURL koristi
// produkcioni endpoint.
func NewBrevoClient(apiKey, apiURL string) *BrevoClient {
	if apiURL == "" {
		apiURL = DefaultBrevoURL
	}
	return &BrevoClient{
		apiKey: apiKey,
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type brevoPayload struct {
	Sender      Address   `json:"sender"`
	To          []Address `json:"to"`
	ReplyTo     *Address  `json:"replyTo,omitempty"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"htmlContent"`
	TextContent string    `json:"textContent,omitempty"`
}

type brevoResponse struct {
	MessageID string `json:"messageId"`
}

// Send šalje poruku i vraća messageId iz odgovora.
func (c *BrevoClient) Send(ctx context.Context, msg Message) (string, error) {
	payload := brevoPayload{
		Sender:      msg.From,
		To:          msg.To,
		ReplyTo:     msg.ReplyTo,
		Subject:     msg.Subject,
		HTMLContent: msg.HTMLBody,
		TextContent: msg.TextBody,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("brevo: serijalizacija poruke nije uspela: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("brevo: kreiranje zahteva nije uspelo: %w", err)
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("brevo: slanje zahteva nije uspelo: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("brevo: čitanje odgovora nije uspelo: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.WithField("status", resp.StatusCode).
			WithField("body", string(respBody)).
			Error("Brevo API je vratio grešku")
		return "", fmt.Errorf("brevo: API greška, status %d", resp.StatusCode)
	}

	var parsed brevoResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		// Poruka je poslata; ID je samo informativan.
		return "", nil
	}
	return parsed.MessageID, nil
}
