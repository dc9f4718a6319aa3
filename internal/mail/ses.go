// Package mail dispatches rendered reports through Amazon SES.
package mail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SendEmailAPI is the subset of the SES v2 client used by the sender.
type SendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Sender sends HTML email from a fixed sender identity to a fixed
// recipient list.
type Sender struct {
	client SendEmailAPI
	from   string
	to     []string
}

// NewSender builds a Sender. Sender address and recipients come from
// deployment configuration and do not change at runtime.
func NewSender(client SendEmailAPI, from string, to []string) (*Sender, error) {
	if from == "" {
		return nil, fmt.Errorf("sender address is required")
	}
	if len(to) == 0 {
		return nil, fmt.Errorf("at least one recipient is required")
	}
	return &Sender{client: client, from: from, to: to}, nil
}

// Send dispatches one HTML message. Transport errors are returned to the
// caller, which decides whether to abort the remaining sends.
func (s *Sender) Send(ctx context.Context, subject, htmlBody string) error {
	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination: &sestypes.Destination{
			ToAddresses: s.to,
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body: &sestypes.Body{
					Html: &sestypes.Content{Data: aws.String(htmlBody)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send email: %w", err)
	}
	return nil
}
