package cloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSPublisher sends notifications to one SNS topic. Email or SMS endpoints
// subscribed to the topic receive booking updates.
type SNSPublisher struct {
	client   *sns.Client
	topicARN string
}

func (client *Client) NewSNSPublisher(topicARN string) *SNSPublisher {
	return &SNSPublisher{client: client.sns, topicARN: topicARN}
}

func (publisher *SNSPublisher) Publish(ctx context.Context, subject string, message string) error {
	_, err := publisher.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(publisher.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", publisher.topicARN, err)
	}
	return nil
}
