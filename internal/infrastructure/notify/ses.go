// Package notify emails applicants when their review status changes.
package notify

import (
	"context"
	"fmt"
	"strings"

	"hr-portal/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"
)

type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type Message struct {
	To      string
	Subject string
	Body    string
}

type SES struct {
	client SESService
	from   string
	logger *zap.Logger
}

func NewSES(ctx context.Context, cfg config.MailConfig, logger *zap.Logger) (*SES, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, err
	}
	return NewSESWithClient(ses.NewFromConfig(awsCfg), cfg.From, logger), nil
}

func NewSESWithClient(client SESService, from string, logger *zap.Logger) *SES {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SES{client: client, from: from, logger: logger}
}

func (s *SES) Send(ctx context.Context, m Message) error {
	to := strings.TrimSpace(m.To)
	if to == "" {
		return fmt.Errorf("notify: empty recipient")
	}
	_, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(m.Subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(m.Body)},
			},
		},
		Source: aws.String(s.from),
	})
	if err != nil {
		s.logger.Warn("send email failed", zap.String("to", to), zap.Error(err))
		return err
	}
	s.logger.Debug("email sent", zap.String("to", to), zap.String("subject", m.Subject))
	return nil
}

// Nop drops every message. It stands in when mail is disabled.
type Nop struct{}

func (Nop) Send(context.Context, Message) error { return nil }
