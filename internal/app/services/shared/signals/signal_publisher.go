package signals

import (
	"context"
	"medicare-portal/internal/app/contracts"
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/exceptions"
	"medicare-portal/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publisher fans session signals out to every queue bound to the exchange.
type publisher struct {
	ch       *amqp.Channel
	exchange string
	log      *zap.Logger
	mu       sync.Mutex
}

// NewSignalPublisher declares the fanout exchange on conn. A nil connection
// yields a publisher that only logs.
func NewSignalPublisher(conn *amqp.Connection, exchange string, log *zap.Logger) (contracts.SignalPublisher, error) {
	if conn == nil {
		return &logOnlyPublisher{log: log}, nil
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeFanout,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &publisher{
		ch:       ch,
		exchange: exchange,
		log:      log,
	}, nil
}

func (p *publisher) Publish(ctx context.Context, signal models.SessionSignal) error {
	requestID := utils.GetRequestID(ctx)
	p.log.Debug("signals.publisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSignalKey, signal.Signal),
		zap.String(constvars.LoggingExchangeKey, p.exchange),
	)

	body, err := json.Marshal(signal)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		MessageId:    uuid.NewString(),
		Timestamp:    time.UnixMilli(signal.Timestamp),
		Type:         signal.Signal,
		Body:         body,
		DeliveryMode: amqp.Transient,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, p.exchange, "", false, false, msg); err != nil {
		p.log.Error("signals.publisher.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingExchangeKey, p.exchange),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.exchange)
	}

	p.log.Debug("signals.publisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSignalKey, signal.Signal),
	)
	return nil
}

type logOnlyPublisher struct {
	log *zap.Logger
}

func (p *logOnlyPublisher) Publish(ctx context.Context, signal models.SessionSignal) error {
	p.log.Debug("signals.logOnlyPublisher.Publish skipped, no broker configured",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSignalKey, signal.Signal),
		zap.String(constvars.LoggingVisitorIDKey, signal.VisitorID),
	)
	return nil
}
