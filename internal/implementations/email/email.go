package email

import (
	"context"
	c "edumentor/internal/core/domain/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

type SesNotificationGateway struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender string
}

func NewSesNotificationGateway(awsConfig aws.Config, sender string) *SesNotificationGateway {
	return &SesNotificationGateway{
		ses:    ses.NewFromConfig(awsConfig),
		sender: sender,
	}
}

func (g *SesNotificationGateway) SendEmail(
	ctx context.Context,
	to c.Email,
	subject string,
	body string,
) error {
	_, err := g.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &g.sender,
			Destination: &types.Destination{
				ToAddresses: []string{string(to)},
			},
			Message: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String(charset),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(body),
						Charset: aws.String(charset),
					},
				},
			},
		},
	)
	return err
}
