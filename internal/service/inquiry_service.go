package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/kamenpro/kamenpro-backend/internal/logger"
	"github.com/kamenpro/kamenpro-backend/internal/mailer"
	"github.com/kamenpro/kamenpro-backend/internal/validation"
)

// ErrSendFailed znači da ni primarno ni rezervno slanje nije prošlo.
var ErrSendFailed = errors.New("Greška pri slanju poruke. Pokušajte ponovo ili nas kontaktirajte direktno.")

// ProductInquiry je upit kupca za konkretan proizvod.
type ProductInquiry struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	ProductCode string `json:"productCode"`
	// Frontend šalje količinu i kao broj i kao string.
	Quantity json.Number `json:"quantity"`
}

// ContactMessage je opšta poruka sa kontakt forme.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Subject string `json:"subject"`
}

// InquiryConfig su adrese koje služba koristi pri slanju.
type InquiryConfig struct {
	From       mailer.Address
	To         mailer.Address
	FallbackTo string
}

// InquiryService prosleđuje upite i kontakt poruke na email. Jedna
// implementacija pokriva obe forme; razlikuju se samo obavezna polja
// i šablon poruke.
type InquiryService struct {
	sender mailer.Sender
	cfg    InquiryConfig
}

func NewInquiryService(sender mailer.Sender, cfg InquiryConfig) *InquiryService {
	return &InquiryService{sender: sender, cfg: cfg}
}

// SendProductInquiry validira i šalje upit za proizvod. Vraća ID poruke
// ako ga transport daje.
func (s *InquiryService) SendProductInquiry(ctx context.Context, inq ProductInquiry) (string, error) {
	if err := validation.RequireFields(inq.Name, inq.Email, inq.Phone, inq.Message, inq.ProductName, inq.ProductCode); err != nil {
		return "", err
	}
	if err := validation.ValidateEmail(inq.Email); err != nil {
		return "", err
	}

	data := mailer.InquiryEmailData{
		ProductName: validation.Sanitize(inq.ProductName, "Unknown"),
		ProductCode: validation.Sanitize(inq.ProductCode, "Unknown"),
		Quantity:    validation.Sanitize(inq.Quantity.String(), "1"),
		Name:        validation.Sanitize(inq.Name, "Unknown"),
		Email:       validation.Sanitize(inq.Email, "Unknown"),
		Phone:       validation.Sanitize(inq.Phone, "Unknown"),
		Message:     validation.SanitizeMultiline(inq.Message, "No message"),
	}

	msg := mailer.Message{
		From:     s.cfg.From,
		To:       []mailer.Address{s.cfg.To},
		ReplyTo:  &mailer.Address{Email: data.Email, Name: data.Name},
		Subject:  "Upit za proizvod: " + data.ProductName + " (" + data.ProductCode + ")",
		HTMLBody: mailer.BuildInquiryHTML(data),
		TextBody: mailer.BuildInquiryText(data),
	}

	return s.deliver(ctx, msg)
}

// SendContactMessage validira i šalje opštu kontakt poruku.
func (s *InquiryService) SendContactMessage(ctx context.Context, cm ContactMessage) (string, error) {
	if err := validation.RequireFields(cm.Name, cm.Email, cm.Message); err != nil {
		return "", err
	}
	if err := validation.ValidateEmail(cm.Email); err != nil {
		return "", err
	}

	data := mailer.ContactEmailData{
		Subject: validation.Sanitize(cm.Subject, "General inquiry"),
		Name:    validation.Sanitize(cm.Name, "Unknown"),
		Email:   validation.Sanitize(cm.Email, "Unknown"),
		Phone:   validation.Sanitize(cm.Phone, "Unknown"),
		Message: validation.SanitizeMultiline(cm.Message, "No message"),
	}

	msg := mailer.Message{
		From:     s.cfg.From,
		To:       []mailer.Address{s.cfg.To},
		ReplyTo:  &mailer.Address{Email: data.Email, Name: data.Name},
		Subject:  "Kontakt poruka: " + data.Subject,
		HTMLBody: mailer.BuildContactHTML(data),
		TextBody: mailer.BuildContactText(data),
	}

	return s.deliver(ctx, msg)
}

// deliver šalje poruku primarnom primaocu, a pri neuspehu pokušava još
// tačno jednom na rezervnu adresu. Rezervno slanje je best-effort.
func (s *InquiryService) deliver(ctx context.Context, msg mailer.Message) (string, error) {
	id, err := s.sender.Send(ctx, msg)
	if err == nil {
		return id, nil
	}

	logger.Log.WithError(err).Error("slanje email poruke nije uspelo")

	if s.cfg.FallbackTo == "" {
		return "", ErrSendFailed
	}

	msg.To = []mailer.Address{{Email: s.cfg.FallbackTo}}
	id, fbErr := s.sender.Send(ctx, msg)
	if fbErr != nil {
		logger.Log.WithError(fbErr).Error("rezervno slanje email poruke nije uspelo")
		return "", ErrSendFailed
	}

	logger.Log.WithField("to", s.cfg.FallbackTo).Warn("poruka isporučena na rezervnu adresu")
	return id, nil
}
