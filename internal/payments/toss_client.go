package payments

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// defaultTossOrderStatusURL is the partner endpoint answering in-app
// purchase order lookups.
const defaultTossOrderStatusURL = "https://api-partner.toss.im/api-partner/v1/apps-in-toss/order/get-order-status"

const defaultTossTimeout = 10 * time.Second

// TossClientConfig configures the TossClient. Certificate material may be
// supplied inline as PEM text or as a filesystem path. UserKey is the
// fallback applied when a lookup does not carry its own key.
type TossClientConfig struct {
	Endpoint           string
	UserKey            string
	Timeout            time.Duration
	HTTPClient         *http.Client
	ClientCert         string
	ClientKey          string
	CACert             string
	InsecureSkipVerify bool
}

// TossClient calls the Toss partner API to look up in-app purchase order
// status. It never interprets the payload; classification is left to the
// caller.
type TossClient struct {
	endpoint string
	userKey  string
	http     *http.Client
}

// OrderStatusResponse is the raw outcome of an order-status lookup. A
// response is returned for any HTTP status; only transport failures
// surface as errors.
type OrderStatusResponse struct {
	StatusCode int
	Payload    any
	Raw        string
}

// NewTossClient constructs a TossClient from the given configuration.
func NewTossClient(cfg TossClientConfig) (*TossClient, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = defaultTossOrderStatusURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTossTimeout
		}
		tlsConfig, err := buildTossTLSConfig(cfg)
		if err != nil {
			return nil, err
		}
		transport := http.DefaultTransport
		if tlsConfig != nil {
			transport = &http.Transport{TLSClientConfig: tlsConfig}
		}
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: transport,
		}
	}

	return &TossClient{
		endpoint: endpoint,
		userKey:  strings.TrimSpace(cfg.UserKey),
		http:     httpClient,
	}, nil
}

// OrderStatus looks up the given order on behalf of the user identified by
// userKey. The payload is parsed leniently; a non-JSON body is wrapped as
// {"message": raw}.
func (c *TossClient) OrderStatus(ctx context.Context, orderID string, userKey string) (OrderStatusResponse, error) {
	if c == nil {
		return OrderStatusResponse{}, errors.New("toss: client is nil")
	}
	key := strings.TrimSpace(userKey)
	if key == "" {
		key = c.userKey
	}
	if key == "" {
		return OrderStatusResponse{}, errors.New("toss: user key is required")
	}

	body, err := json.Marshal(map[string]string{"orderId": orderID})
	if err != nil {
		return OrderStatusResponse{}, fmt.Errorf("toss: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return OrderStatusResponse{}, fmt.Errorf("toss: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-toss-user-key", key)

	resp, err := c.http.Do(req)
	if err != nil {
		return OrderStatusResponse{}, fmt.Errorf("toss: order status request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return OrderStatusResponse{}, fmt.Errorf("toss: read response: %w", err)
	}

	return OrderStatusResponse{
		StatusCode: resp.StatusCode,
		Payload:    parseMaybeJSON(string(raw)),
		Raw:        string(raw),
	}, nil
}

func parseMaybeJSON(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return map[string]any{}
	}
	var value any
	if err := json.Unmarshal([]byte(trimmed), &value); err != nil {
		return map[string]any{"message": raw}
	}
	return value
}

func buildTossTLSConfig(cfg TossClientConfig) (*tls.Config, error) {
	hasCert := strings.TrimSpace(cfg.ClientCert) != "" && strings.TrimSpace(cfg.ClientKey) != ""
	hasCA := strings.TrimSpace(cfg.CACert) != ""
	if !hasCert && !hasCA && !cfg.InsecureSkipVerify {
		return nil, nil
	}

	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}

	if hasCert {
		certPEM, err := loadPEM(cfg.ClientCert)
		if err != nil {
			return nil, fmt.Errorf("toss: load client cert: %w", err)
		}
		keyPEM, err := loadPEM(cfg.ClientKey)
		if err != nil {
			return nil, fmt.Errorf("toss: load client key: %w", err)
		}
		cert, err := tls.X509KeyPair(certPEM, keyPEM)
		if err != nil {
			return nil, fmt.Errorf("toss: parse client key pair: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	if hasCA {
		caPEM, err := loadPEM(cfg.CACert)
		if err != nil {
			return nil, fmt.Errorf("toss: load ca cert: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caPEM) {
			return nil, errors.New("toss: ca cert contains no certificates")
		}
		tlsConfig.RootCAs = pool
	}

	return tlsConfig, nil
}

// loadPEM accepts either inline PEM text or a path to a PEM file.
func loadPEM(value string) ([]byte, error) {
	trimmed := strings.TrimSpace(value)
	if strings.Contains(trimmed, "-----BEGIN") {
		return []byte(strings.ReplaceAll(trimmed, `\n`, "\n")), nil
	}
	return os.ReadFile(trimmed)
}
