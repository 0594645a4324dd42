package cloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// InstanceHealth summarizes one running application instance for the admin
// dashboard.
type InstanceHealth struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	LaunchTime string `json:"launch_time"`
	PublicIP   string `json:"public_ip"`
}

// HealthScanner lists the running EC2 instances carrying the application tag.
type HealthScanner struct {
	client   *ec2.Client
	tagKey   string
	tagValue string
}

func (client *Client) NewHealthScanner(tagKey string, tagValue string) *HealthScanner {
	return &HealthScanner{client: client.ec2, tagKey: tagKey, tagValue: tagValue}
}

func (scanner *HealthScanner) RunningInstances(ctx context.Context) ([]InstanceHealth, error) {
	output, err := scanner.client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			{
				Name:   aws.String("tag:" + scanner.tagKey),
				Values: []string{scanner.tagValue},
			},
			{
				Name:   aws.String("instance-state-name"),
				Values: []string{"running"},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("describe instances: %w", err)
	}

	instances := make([]InstanceHealth, 0)
	for _, reservation := range output.Reservations {
		for _, instance := range reservation.Instances {
			health := InstanceHealth{
				ID:       aws.ToString(instance.InstanceId),
				Type:     string(instance.InstanceType),
				PublicIP: aws.ToString(instance.PublicIpAddress),
			}
			if instance.LaunchTime != nil {
				health.LaunchTime = instance.LaunchTime.Format("2006-01-02T15:04:05Z07:00")
			}
			if health.PublicIP == "" {
				health.PublicIP = "N/A"
			}
			instances = append(instances, health)
		}
	}
	return instances, nil
}
