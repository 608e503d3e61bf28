package payment_gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"mosefak-service/internal/app/config"
	"mosefak-service/internal/app/contracts"
	"mosefak-service/internal/pkg/constvars"
	"mosefak-service/internal/pkg/dto/requests"
	"mosefak-service/internal/pkg/dto/responses"
	"mosefak-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	gatewayServiceInstance contracts.PaymentGatewayService
	onceGatewayService     sync.Once
)

type gatewayService struct {
	BaseUrl       string
	SecretKey     string
	WebhookSecret string
	Client        *http.Client
	Limiter       *rate.Limiter
	Log           *zap.Logger
}

func NewGatewayService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	onceGatewayService.Do(func() {
		instance := &gatewayService{
			BaseUrl:       internalConfig.PaymentGateway.BaseUrl,
			SecretKey:     internalConfig.PaymentGateway.SecretKey,
			WebhookSecret: internalConfig.PaymentGateway.WebhookSecret,
			Client: &http.Client{
				Timeout: time.Duration(internalConfig.PaymentGateway.TimeoutInSeconds) * time.Second,
			},
			Limiter: rate.NewLimiter(
				rate.Limit(internalConfig.PaymentGateway.MaxRequestsPerSecond),
				internalConfig.PaymentGateway.MaxRequestsPerSecond,
			),
			Log: logger,
		}
		gatewayServiceInstance = instance
	})
	return gatewayServiceInstance
}

func (s *gatewayService) CreateIntent(ctx context.Context, request *requests.CreateIntentRequest) (*responses.PaymentIntent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("gatewayService.CreateIntent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("amount", request.Amount),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	body, err := s.send(ctx, constvars.MethodPost, "/v1/payment_intents", requestJSON)
	if err != nil {
		return nil, exceptions.ErrGatewayCreateIntent(err)
	}

	intent := new(responses.PaymentIntent)
	if err := json.Unmarshal(body, intent); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if intent.IntentID == "" {
		return nil, exceptions.ErrGatewayEmptyIntentID(fmt.Errorf("gateway returned intent without an id"))
	}

	s.Log.Info("gatewayService.CreateIntent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIntentIDKey, intent.IntentID),
	)
	return intent, nil
}

func (s *gatewayService) VerifyStatus(ctx context.Context, paymentIntentID string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("gatewayService.VerifyStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIntentIDKey, paymentIntentID),
	)

	body, err := s.send(ctx, constvars.MethodGet, "/v1/payment_intents/"+paymentIntentID, nil)
	if err != nil {
		return "", exceptions.ErrGatewayVerifyStatus(err)
	}

	intent := new(responses.PaymentIntent)
	if err := json.Unmarshal(body, intent); err != nil {
		return "", exceptions.ErrCannotParseJSON(err)
	}
	return intent.Status, nil
}

func (s *gatewayService) Refund(ctx context.Context, paymentIntentID string) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("gatewayService.Refund called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIntentIDKey, paymentIntentID),
	)

	requestJSON, err := json.Marshal(map[string]string{"payment_intent": paymentIntentID})
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	body, err := s.send(ctx, constvars.MethodPost, "/v1/refunds", requestJSON)
	if err != nil {
		return false, exceptions.ErrGatewayRefund(err)
	}

	refund := struct {
		Status string `json:"status"`
	}{}
	if err := json.Unmarshal(body, &refund); err != nil {
		return false, exceptions.ErrCannotParseJSON(err)
	}
	return refund.Status == constvars.GatewayRefundStatusSucceeded, nil
}

// VerifySignature checks the HMAC-SHA256 signature the gateway attaches to
// webhook deliveries. Comparison is constant time.
func (s *gatewayService) VerifySignature(payload []byte, signature string) error {
	mac := hmac.New(sha256.New, []byte(s.WebhookSecret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return exceptions.ErrWebhookBadSignature(fmt.Errorf("webhook signature mismatch"))
	}
	return nil
}

// send performs one rate limited request against the gateway. No retries: a
// duplicated intent or refund is worse than a failed call.
func (s *gatewayService) send(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.BaseUrl+path, reader)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.SecretKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, fmt.Errorf("gateway responded %d: %s", resp.StatusCode, string(responseBody))
	}
	return responseBody, nil
}
