package controllers

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"mosefak-service/internal/app/contracts"
	"mosefak-service/internal/pkg/constvars"
	"mosefak-service/internal/pkg/dto/requests"
	"mosefak-service/internal/pkg/exceptions"
	"mosefak-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type WebhookController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
	GatewayService contracts.PaymentGatewayService
}

var (
	webhookControllerInstance *WebhookController
	onceWebhookController     sync.Once
)

func NewWebhookController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase, gatewayService contracts.PaymentGatewayService) *WebhookController {
	onceWebhookController.Do(func() {
		instance := &WebhookController{
			Log:            logger,
			PaymentUsecase: paymentUsecase,
			GatewayService: gatewayService,
		}
		webhookControllerInstance = instance
	})
	return webhookControllerInstance
}

// HandleGatewayEvent processes POST /webhooks/payment-gateway. The gateway
// retries delivery until it sees a 2xx, so events the service cannot act on
// (unknown types, intents it has no record of) are acknowledged with a log
// instead of an error.
func (ctrl *WebhookController) HandleGatewayEvent(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	rawBody, err := io.ReadAll(r.Body)
	if err != nil {
		ctrl.Log.Error("Failed to read webhook body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}
	defer r.Body.Close()

	signature := r.Header.Get(constvars.HeaderGatewaySignature)
	if err := ctrl.GatewayService.VerifySignature(rawBody, signature); err != nil {
		ctrl.Log.Error("Webhook signature verification failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	event := new(requests.GatewayEvent)
	if err := json.Unmarshal(rawBody, event); err != nil {
		ctrl.Log.Error("Failed to parse webhook event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctrl.Log.Info("Webhook event received",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingPaymentIntentIDKey, event.Data.PaymentIntentID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	switch event.Type {
	case constvars.GatewayEventPaymentSucceeded:
		err = ctrl.PaymentUsecase.HandlePaymentSucceeded(ctx, event.Data.PaymentIntentID)
	case constvars.GatewayEventPaymentFailed:
		err = ctrl.PaymentUsecase.HandlePaymentFailed(ctx, event.Data.PaymentIntentID)
	case constvars.GatewayEventRefundUpdated:
		refundSucceeded := event.Data.RefundStatus == constvars.GatewayRefundStatusSucceeded
		err = ctrl.PaymentUsecase.HandleRefundUpdated(ctx, event.Data.PaymentIntentID, refundSucceeded)
	default:
		ctrl.Log.Warn("Ignoring unknown webhook event type",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
		)
		utils.BuildSuccessResponse(w, constvars.StatusOK, "Event acknowledged", nil)
		return
	}

	if err != nil {
		if exceptions.IsKind(err, exceptions.KindNotFound) {
			ctrl.Log.Warn("Webhook event references an unknown payment intent",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEventTypeKey, event.Type),
				zap.String(constvars.LoggingPaymentIntentIDKey, event.Data.PaymentIntentID),
			)
			utils.BuildSuccessResponse(w, constvars.StatusOK, "Event acknowledged", nil)
			return
		}
		ctrl.Log.Error("Failed to process webhook event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Webhook event processed successfully",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, "Event processed", nil)
}
