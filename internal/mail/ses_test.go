package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

type fakeSES struct {
	inputs []*sesv2.SendEmailInput
	err    error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	_ = ctx
	_ = optFns
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, params)
	return &sesv2.SendEmailOutput{}, nil
}

func TestSenderSendsHTMLMessage(t *testing.T) {
	client := &fakeSES{}
	sender, err := NewSender(client, "reports@example.com", []string{"ops@example.com", "dba@example.com"})
	if err != nil {
		t.Fatalf("new sender: %v", err)
	}

	if err := sender.Send(context.Background(), "subject line", "<html>body</html>"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if len(client.inputs) != 1 {
		t.Fatalf("expected 1 send, got %d", len(client.inputs))
	}
	input := client.inputs[0]
	if got := aws.ToString(input.FromEmailAddress); got != "reports@example.com" {
		t.Errorf("from = %q", got)
	}
	if got := len(input.Destination.ToAddresses); got != 2 {
		t.Errorf("recipients = %d, want 2", got)
	}
	if got := aws.ToString(input.Content.Simple.Subject.Data); got != "subject line" {
		t.Errorf("subject = %q", got)
	}
	if got := aws.ToString(input.Content.Simple.Body.Html.Data); got != "<html>body</html>" {
		t.Errorf("html body = %q", got)
	}
}

func TestSenderPropagatesTransportError(t *testing.T) {
	client := &fakeSES{err: errors.New("rate exceeded")}
	sender, err := NewSender(client, "reports@example.com", []string{"ops@example.com"})
	if err != nil {
		t.Fatalf("new sender: %v", err)
	}

	if err := sender.Send(context.Background(), "s", "b"); err == nil {
		t.Fatal("expected error from transport")
	}
}

func TestNewSenderValidation(t *testing.T) {
	if _, err := NewSender(&fakeSES{}, "", []string{"ops@example.com"}); err == nil {
		t.Error("expected error for missing sender")
	}
	if _, err := NewSender(&fakeSES{}, "reports@example.com", nil); err == nil {
		t.Error("expected error for missing recipients")
	}
}
