package notifications

import (
	"context"
	"sync"
	"time"

	"mosefak-service/internal/app/contracts"
	"mosefak-service/internal/app/models"
	"mosefak-service/internal/pkg/constvars"
	"mosefak-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	notificationServiceInstance contracts.NotificationService
	onceNotificationService     sync.Once
)

type notificationService struct {
	Channel          *amqp091.Channel
	Queue            string
	NotificationRepo contracts.NotificationRepository
	Log              *zap.Logger
}

func NewNotificationService(
	rabbitMQConnection *amqp091.Connection,
	notificationRepo contracts.NotificationRepository,
	logger *zap.Logger,
) (contracts.NotificationService, error) {
	var initErr error
	onceNotificationService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			initErr = err
			return
		}

		// Declare the push queue (durable) so publishes land even on a fresh broker.
		_, err = channel.QueueDeclare(
			constvars.NotificationPushQueue, // name
			true,                            // durable
			false,                           // autoDelete
			false,                           // exclusive
			false,                           // noWait
			nil,                             // args
		)
		if err != nil {
			initErr = err
			return
		}

		instance := &notificationService{
			Channel:          channel,
			Queue:            constvars.NotificationPushQueue,
			NotificationRepo: notificationRepo,
			Log:              logger,
		}
		notificationServiceInstance = instance
	})
	return notificationServiceInstance, initErr
}

func (s *notificationService) SendAndSave(ctx context.Context, recipientUserID int64, title, message string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("notificationService.SendAndSave called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecipientKey, recipientUserID),
		zap.String("title", title),
	)

	notification := &models.Notification{
		RecipientUserID: recipientUserID,
		Title:           title,
		Message:         message,
		CreatedAt:       time.Now().UTC(),
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	publishing := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, publishing)
	if err != nil {
		s.Log.Error("notificationService.SendAndSave error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	notificationID, err := s.NotificationRepo.CreateNotification(ctx, notification)
	if err != nil {
		s.Log.Error("notificationService.SendAndSave error saving notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	s.Log.Info("notificationService.SendAndSave succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("notification_id", notificationID),
	)
	return nil
}
