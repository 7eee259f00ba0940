package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"service/internal/entities"
	"service/internal/gateway/metrics"
)

const (
	providerName = "checkout"

	requestTimeout = 10 * time.Second
)

// Gateway — HTTP-клиент hosted checkout провайдера. Вызовы ограничены
// таймаутом и не ретраятся: клиент переигрывает сверку сам, она
// идемпотентна.
type Gateway struct {
	baseURL    *url.URL
	secretKey  string
	successURL string
	cancelURL  string
	currency   string
	httpClient *http.Client
}

func New(baseURL, secretKey, successURL, cancelURL, currency string) (*Gateway, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse checkout provider url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("checkout provider url must be absolute")
	}

	return &Gateway{
		baseURL:    parsed,
		secretKey:  secretKey,
		successURL: successURL,
		cancelURL:  cancelURL,
		currency:   currency,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

// CreateSession открывает сессию оплаты. Идентификатор и имя посылки
// уезжают в метаданные сессии и возвращаются провайдером при сверке.
func (g *Gateway) CreateSession(ctx context.Context, item entities.CheckoutItem) (*entities.CheckoutSession, error) {
	body := createSessionRequest{
		AmountMinor:   item.AmountMinor,
		Currency:      g.currency,
		CustomerEmail: item.SenderEmail,
		SuccessURL:    g.successURL,
		CancelURL:     g.cancelURL,
		Metadata: map[string]string{
			metadataParcelID:   strconv.FormatInt(item.ParcelID, 10),
			metadataParcelName: item.ParcelName,
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode session request: %w", err)
	}

	var sessionModel sessionResponse
	err = g.execute(ctx, "CreateSession", http.MethodPost, "/v1/checkout/sessions", bytes.NewReader(payload), &sessionModel)
	if err != nil {
		return nil, err
	}

	return toDomain(&sessionModel)
}

// GetSession возвращает авторитетное состояние сессии у провайдера.
func (g *Gateway) GetSession(ctx context.Context, sessionID string) (*entities.CheckoutSession, error) {
	var sessionModel sessionResponse
	err := g.execute(ctx, "GetSession", http.MethodGet, "/v1/checkout/sessions/"+url.PathEscape(sessionID), nil, &sessionModel)
	if err != nil {
		return nil, err
	}

	return toDomain(&sessionModel)
}

func (g *Gateway) execute(ctx context.Context, method, httpMethod, endpointPath string, body *bytes.Reader, out *sessionResponse) error {
	endpoint := *g.baseURL
	endpoint.Path = path.Join(endpoint.Path, endpointPath)

	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, httpMethod, endpoint.String(), body)
	} else {
		req, err = http.NewRequestWithContext(ctx, httpMethod, endpoint.String(), nil)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProvider, err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		metrics.GatewayRequestDuration.WithLabelValues(providerName, method, "transport_error").Observe(time.Since(start).Seconds())
		metrics.GatewayErrorsTotal.WithLabelValues(providerName, method, "transport_error").Inc()
		return fmt.Errorf("%w: %w", ErrProvider, err)
	}
	defer resp.Body.Close()

	statusLabel := strconv.Itoa(resp.StatusCode)
	metrics.GatewayRequestDuration.WithLabelValues(providerName, method, statusLabel).Observe(time.Since(start).Seconds())

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		err := json.NewDecoder(resp.Body).Decode(out)
		if err != nil {
			metrics.GatewayErrorsTotal.WithLabelValues(providerName, method, "bad_payload").Inc()
			return fmt.Errorf("%w: decode response: %w", ErrProvider, err)
		}
		return nil
	case http.StatusNotFound:
		return ErrSessionNotFound
	default:
		metrics.GatewayErrorsTotal.WithLabelValues(providerName, method, statusLabel).Inc()
		return fmt.Errorf("%w: unexpected status %s", ErrProvider, resp.Status)
	}
}

func toDomain(s *sessionResponse) (*entities.CheckoutSession, error) {
	session := &entities.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: s.PaymentStatus,
		TransactionID: s.PaymentIntent,
		AmountMinor:   s.AmountTotal,
		Currency:      s.Currency,
		CustomerEmail: s.CustomerEmail,
		ParcelName:    s.Metadata[metadataParcelName],
	}

	if raw, ok := s.Metadata[metadataParcelID]; ok {
		parcelID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed parcel id in session metadata", ErrProvider)
		}
		session.ParcelID = parcelID
	}

	return session, nil
}
