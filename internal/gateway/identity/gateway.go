package identity

import (
	"context"
	"encoding/json"
	"errors"
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
	providerName = "identity"

	requestTimeout = 5 * time.Second
)

var (
	// ErrTokenRejected — провайдер отказал токену (истек, битая подпись).
	ErrTokenRejected = errors.New("token rejected by identity provider")
	ErrProvider      = errors.New("identity provider unavailable")
)

// verifyResponse повторяет JSON провайдера идентичности.
type verifyResponse struct {
	Email  string         `json:"email"`
	Claims map[string]any `json:"claims"`
}

// Gateway — HTTP-клиент внешнего провайдера проверки токенов.
type Gateway struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func New(baseURL string) (*Gateway, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse identity provider url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("identity provider url must be absolute")
	}

	return &Gateway{
		baseURL: parsed,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

// VerifyToken отдает токен провайдеру и возвращает подтвержденный email
// с claims.
func (g *Gateway) VerifyToken(ctx context.Context, token string) (*entities.Identity, error) {
	endpoint := *g.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1/tokens/verify")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProvider, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		metrics.GatewayRequestDuration.WithLabelValues(providerName, "VerifyToken", "transport_error").Observe(time.Since(start).Seconds())
		metrics.GatewayErrorsTotal.WithLabelValues(providerName, "VerifyToken", "transport_error").Inc()
		return nil, fmt.Errorf("%w: %w", ErrProvider, err)
	}
	defer resp.Body.Close()

	statusLabel := strconv.Itoa(resp.StatusCode)
	metrics.GatewayRequestDuration.WithLabelValues(providerName, "VerifyToken", statusLabel).Observe(time.Since(start).Seconds())

	switch resp.StatusCode {
	case http.StatusOK:
		var verifyModel verifyResponse
		err := json.NewDecoder(resp.Body).Decode(&verifyModel)
		if err != nil {
			metrics.GatewayErrorsTotal.WithLabelValues(providerName, "VerifyToken", "bad_payload").Inc()
			return nil, fmt.Errorf("%w: decode response: %w", ErrProvider, err)
		}
		if verifyModel.Email == "" {
			return nil, ErrTokenRejected
		}
		return &entities.Identity{
			Email:  verifyModel.Email,
			Claims: verifyModel.Claims,
		}, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrTokenRejected
	default:
		metrics.GatewayErrorsTotal.WithLabelValues(providerName, "VerifyToken", statusLabel).Inc()
		return nil, fmt.Errorf("%w: unexpected status %s", ErrProvider, resp.Status)
	}
}
