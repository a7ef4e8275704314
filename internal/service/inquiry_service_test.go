package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kamenpro/kamenpro-backend/internal/mailer"
	"github.com/kamenpro/kamenpro-backend/internal/validation"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, msg mailer.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func testInquiryConfig() InquiryConfig {
	return InquiryConfig{
		From:       mailer.Address{Email: "info@kamenpro.net", Name: "KamenPro Website"},
		To:         mailer.Address{Email: "info@kamenpro.net", Name: "KamenPro Team"},
		FallbackTo: "rezerva@kamenpro.net",
	}
}

func validInquiry() ProductInquiry {
	return ProductInquiry{
		Name:        "Marko Marković",
		Email:       "marko@example.com",
		Phone:       "+387 65 123 456",
		Message:     "Zanima me cena sa montažom.",
		ProductName: "Travertin Classic",
		ProductCode: "TRV-001",
		Quantity:    "12",
	}
}

func TestInquiryService_SendProductInquiry_Success(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.Subject == "Upit za proizvod: Travertin Classic (TRV-001)" &&
			msg.To[0].Email == "info@kamenpro.net" &&
			msg.ReplyTo.Email == "marko@example.com"
	})).Return("msg-1", nil).Once()

	svc := NewInquiryService(sender, testInquiryConfig())
	id, err := svc.SendProductInquiry(context.Background(), validInquiry())

	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)
	sender.AssertExpectations(t)
}

func TestInquiryService_SendProductInquiry_MissingFields(t *testing.T) {
	sender := new(mockSender)
	svc := NewInquiryService(sender, testInquiryConfig())

	inq := validInquiry()
	inq.ProductCode = ""

	_, err := svc.SendProductInquiry(context.Background(), inq)
	assert.ErrorIs(t, err, validation.ErrMissingFields)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestInquiryService_SendProductInquiry_InvalidEmail(t *testing.T) {
	sender := new(mockSender)
	svc := NewInquiryService(sender, testInquiryConfig())

	inq := validInquiry()
	inq.Email = "marko-example"

	_, err := svc.SendProductInquiry(context.Background(), inq)
	assert.ErrorIs(t, err, validation.ErrInvalidEmail)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestInquiryService_SendProductInquiry_SanitizesHTML(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return !strings.Contains(msg.HTMLBody, "<script>") && strings.Contains(msg.HTMLBody, "scriptalert(1)/script")
	})).Return("", nil).Once()

	svc := NewInquiryService(sender, testInquiryConfig())

	inq := validInquiry()
	inq.Name = "<script>alert(1)</script>"

	_, err := svc.SendProductInquiry(context.Background(), inq)
	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestInquiryService_SendProductInquiry_QuantityDefaultsToOne(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return strings.Contains(msg.HTMLBody, "1 m²")
	})).Return("", nil).Once()

	svc := NewInquiryService(sender, testInquiryConfig())

	inq := validInquiry()
	inq.Quantity = ""

	_, err := svc.SendProductInquiry(context.Background(), inq)
	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestInquiryService_Deliver_FallbackOnPrimaryFailure(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To[0].Email == "info@kamenpro.net"
	})).Return("", assert.AnError).Once()
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To[0].Email == "rezerva@kamenpro.net"
	})).Return("msg-fb", nil).Once()

	svc := NewInquiryService(sender, testInquiryConfig())
	id, err := svc.SendProductInquiry(context.Background(), validInquiry())

	require.NoError(t, err)
	assert.Equal(t, "msg-fb", id)
	sender.AssertExpectations(t)
}

func TestInquiryService_Deliver_BothFail(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return("", assert.AnError).Twice()

	svc := NewInquiryService(sender, testInquiryConfig())
	_, err := svc.SendProductInquiry(context.Background(), validInquiry())

	assert.ErrorIs(t, err, ErrSendFailed)
	sender.AssertExpectations(t)
}

func TestInquiryService_Deliver_NoFallbackConfigured(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return("", assert.AnError).Once()

	cfg := testInquiryConfig()
	cfg.FallbackTo = ""

	svc := NewInquiryService(sender, cfg)
	_, err := svc.SendProductInquiry(context.Background(), validInquiry())

	assert.ErrorIs(t, err, ErrSendFailed)
	sender.AssertExpectations(t)
}

func TestInquiryService_SendContactMessage_Success(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.Subject == "Kontakt poruka: Pitanje o dostavi"
	})).Return("msg-2", nil).Once()

	svc := NewInquiryService(sender, testInquiryConfig())
	id, err := svc.SendContactMessage(context.Background(), ContactMessage{
		Name:    "Ana Anić",
		Email:   "ana@example.com",
		Message: "Da li dostavljate u Brčko?",
		Subject: "Pitanje o dostavi",
	})

	require.NoError(t, err)
	assert.Equal(t, "msg-2", id)
	sender.AssertExpectations(t)
}

func TestInquiryService_SendContactMessage_SubjectDefault(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.Subject == "Kontakt poruka: General inquiry"
	})).Return("", nil).Once()

	svc := NewInquiryService(sender, testInquiryConfig())
	_, err := svc.SendContactMessage(context.Background(), ContactMessage{
		Name:    "Ana Anić",
		Email:   "ana@example.com",
		Message: "Poruka bez teme",
	})

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestInquiryService_SendContactMessage_PhoneOptional(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return strings.Contains(msg.HTMLBody, "Unknown")
	})).Return("", nil).Once()

	svc := NewInquiryService(sender, testInquiryConfig())
	_, err := svc.SendContactMessage(context.Background(), ContactMessage{
		Name:    "Ana Anić",
		Email:   "ana@example.com",
		Message: "Bez telefona",
	})

	require.NoError(t, err)
	sender.AssertExpectations(t)
}
