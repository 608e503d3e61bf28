package payment_gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mosefak-service/internal/pkg/dto/requests"
	"mosefak-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func newTestGatewayService(baseUrl string) *gatewayService {
	return &gatewayService{
		BaseUrl:       baseUrl,
		SecretKey:     "sk_test_123",
		WebhookSecret: "whsec_test",
		Client:        &http.Client{Timeout: 5 * time.Second},
		Limiter:       rate.NewLimiter(rate.Inf, 1),
		Log:           zap.NewNop(),
	}
}

func TestGatewayServiceCreateIntent(t *testing.T) {
	t.Run("returns intent with id and client secret", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/payment_intents", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret","status":"pending"}`))
		}))
		defer server.Close()

		service := newTestGatewayService(server.URL)
		intent, err := service.CreateIntent(context.Background(), &requests.CreateIntentRequest{
			Amount:     15000,
			Currency:   "usd",
			PayerRef:   "patient-7",
			SubjectRef: "appointment-42",
		})

		assert.NoError(t, err)
		assert.Equal(t, "pi_123", intent.IntentID)
		assert.Equal(t, "pi_123_secret", intent.ClientSecret)
	})

	t.Run("rejects intent without an id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"client_secret":"orphan_secret"}`))
		}))
		defer server.Close()

		service := newTestGatewayService(server.URL)
		intent, err := service.CreateIntent(context.Background(), &requests.CreateIntentRequest{
			Amount:     15000,
			Currency:   "usd",
			PayerRef:   "patient-7",
			SubjectRef: "appointment-42",
		})

		assert.Error(t, err)
		assert.Nil(t, intent)
		assert.Equal(t, exceptions.KindGatewayFailure, exceptions.KindOf(err))
	})

	t.Run("gateway error status is a gateway failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"error":"upstream down"}`))
		}))
		defer server.Close()

		service := newTestGatewayService(server.URL)
		_, err := service.CreateIntent(context.Background(), &requests.CreateIntentRequest{
			Amount:     15000,
			Currency:   "usd",
			PayerRef:   "patient-7",
			SubjectRef: "appointment-42",
		})

		assert.Error(t, err)
		assert.Equal(t, exceptions.KindGatewayFailure, exceptions.KindOf(err))
	})
}

func TestGatewayServiceVerifyStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"pi_123","status":"succeeded"}`))
	}))
	defer server.Close()

	service := newTestGatewayService(server.URL)
	status, err := service.VerifyStatus(context.Background(), "pi_123")

	assert.NoError(t, err)
	assert.Equal(t, "succeeded", status)
}

func TestGatewayServiceRefund(t *testing.T) {
	t.Run("succeeded refund returns true", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/refunds", r.URL.Path)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id":"re_1","status":"succeeded"}`))
		}))
		defer server.Close()

		service := newTestGatewayService(server.URL)
		ok, err := service.Refund(context.Background(), "pi_123")

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("pending refund returns false", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id":"re_1","status":"pending"}`))
		}))
		defer server.Close()

		service := newTestGatewayService(server.URL)
		ok, err := service.Refund(context.Background(), "pi_123")

		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestGatewayServiceVerifySignature(t *testing.T) {
	service := newTestGatewayService("http://unused")
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)

	mac := hmac.New(sha256.New, []byte("whsec_test"))
	mac.Write(payload)
	validSignature := hex.EncodeToString(mac.Sum(nil))

	t.Run("valid signature passes", func(t *testing.T) {
		assert.NoError(t, service.VerifySignature(payload, validSignature))
	})

	t.Run("tampered payload fails", func(t *testing.T) {
		err := service.VerifySignature([]byte(`{"id":"evt_1","type":"payment_intent.payment_failed"}`), validSignature)
		assert.Error(t, err)
	})

	t.Run("garbage signature fails", func(t *testing.T) {
		err := service.VerifySignature(payload, "deadbeef")
		assert.Error(t, err)
	})
}
