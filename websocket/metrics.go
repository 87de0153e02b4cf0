// Package websocket - websocket/metrics.go
// file: websocket/metrics.go

package websocket

import (
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"

	"go-meet-scoring/logger"
)

// Namespace for all meet-scoring metrics
var metricsNamespace = "MeetScoring"

// Reuse a single CloudWatch client for all metrics calls
var cwClient = cloudwatch.New(session.Must(session.NewSession()))

// metricsEnabled gates publishing so local meets without AWS
// credentials run silent
var metricsEnabled = os.Getenv("METRICS_ENABLED") == "true"

// PublishScoreboardConnections pushes current WebSocket connection count
func PublishScoreboardConnections(count int, contestID string) {
	putMetric("ScoreboardConnections", float64(count), "Count", contestID)
}

// PublishDecisionCount pushes one judging decision event
func PublishDecisionCount(contestID string) {
	putMetric("DecisionCount", 1, "Count", contestID)
}

// PublishRecalcDuration pushes how long a full contest re-rank took (in ms)
func PublishRecalcDuration(durationMs float64, contestID string) {
	putMetric("RecalcDurationMs", durationMs, "Milliseconds", contestID)
}

// PublishQueueDepth pushes a gauge for the pending-attempt queue depth
func PublishQueueDepth(depth int, contestID string) {
	putMetric("QueueDepth", float64(depth), "Count", contestID)
}

// -----------------------------------------------------------
// internal helper function to package up CloudWatch calls
// -----------------------------------------------------------
func putMetric(metricName string, value float64, unit string, contestID string) {
	if !metricsEnabled {
		return
	}
	_, err := cwClient.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(metricsNamespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Dimensions: []*cloudwatch.Dimension{
					{
						Name:  aws.String("ContestId"),
						Value: aws.String(contestID),
					},
				},
				Timestamp: aws.Time(time.Now()),
				Value:     aws.Float64(value),
				Unit:      aws.String(unit),
			},
		},
	})

	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", metricName, err)
	}
}
