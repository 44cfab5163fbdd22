package notify

import (
	"context"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"jobapply-server/internal/common/logger"
)

// SESDispatcher delivers messages through Amazon SES. Raw sending is used
// because the admin message carries attachments.
type SESDispatcher struct {
	client *ses.Client
	logger logger.Logger
}

func NewSESDispatcher(ctx context.Context, region string, log logger.Logger) (*SESDispatcher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SESDispatcher{client: ses.NewFromConfig(cfg), logger: log}, nil
}

func (d *SESDispatcher) Send(ctx context.Context, msg *Message) (*Receipt, error) {
	_, raw := BuildMIME(msg, "ses.amazonaws.com")

	out, err := d.client.SendRawEmail(ctx, &ses.SendRawEmailInput{
		RawMessage:   &types.RawMessage{Data: raw},
		Source:       &msg.From,
		Destinations: []string{msg.To},
	})
	if err != nil {
		return nil, err
	}

	messageID := ""
	if out.MessageId != nil {
		messageID = *out.MessageId
	}
	return &Receipt{
		MessageID: messageID,
		Provider:  "ses",
		SentAt:    time.Now(),
	}, nil
}
