package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// PlanCommittedEvent tells the rest of the backend that a project's shooting
// plan was replaced. The notification service fans it out to the crew.
type PlanCommittedEvent struct {
	ProjectID   uuid.UUID `json:"project_id"`
	DayCount    int       `json:"day_count"`
	FirstDay    string    `json:"first_day,omitempty"` // YYYY-MM-DD
	LastDay     string    `json:"last_day,omitempty"`  // YYYY-MM-DD
	CommittedAt time.Time `json:"committed_at"`
}

// PlanEventPublisher publishes plan lifecycle events.
type PlanEventPublisher interface {
	PublishPlanCommitted(ctx context.Context, event PlanCommittedEvent) error
}

var _ PlanEventPublisher = (*rabbitMQPlanEventPublisher)(nil)

type rabbitMQPlanEventPublisher struct {
	channel   *amqp.Channel
	queueName string
}

// NewRabbitMQPlanEventPublisher opens a channel on the given connection and
// declares the events queue. Declaring here keeps the service independent of
// consumer startup order; the queue parameters must match the consumer's.
func NewRabbitMQPlanEventPublisher(conn *amqp.Connection, queueName string) (PlanEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("plan event publisher: failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("plan event publisher: failed to declare queue %s: %w", queueName, err)
	}

	return &rabbitMQPlanEventPublisher{channel: ch, queueName: queueName}, nil
}

func (p *rabbitMQPlanEventPublisher) PublishPlanCommitted(ctx context.Context, event PlanCommittedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal plan committed event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",          // default exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish plan committed event: %w", err)
	}
	return nil
}
