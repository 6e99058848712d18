package communication

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/report"
)

const (
	contentTypeJson = "application/json"
	publishTimeout  = 5 * time.Second
)

// messagePublisher is the subset of RabbitMQ used by ReportPublisher
type messagePublisher interface {
	PublishMessageInQueue(ctx context.Context, queueName string, message []byte, contentType string) error
}

// ReportPublisher sends finished reports to a RabbitMQ queue as JSON
type ReportPublisher struct {
	rabbitMQ messagePublisher
	queue    QueueDeclarationConfig
}

func NewReportPublisher(rabbitMQ messagePublisher, queue QueueDeclarationConfig) *ReportPublisher {
	return &ReportPublisher{
		rabbitMQ: rabbitMQ,
		queue:    queue,
	}
}

// Publish marshals the report and publishes it in the configured queue
func (rp *ReportPublisher) Publish(ctx context.Context, analysisReport *report.Report) error {
	reportBytes, err := analysisReport.Marshal()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = rp.rabbitMQ.PublishMessageInQueue(ctx, rp.queue.Name, reportBytes, contentTypeJson)
	if err != nil {
		return fmt.Errorf("error publishing report %s in queue %s: %w", analysisReport.GetMetadata().GetRunID(), rp.queue.Name, err)
	}

	log.Debugf("[publisher: report][runID: %s][status: OK] report published in %s", analysisReport.GetMetadata().GetRunID(), rp.queue.Name)
	return nil
}
