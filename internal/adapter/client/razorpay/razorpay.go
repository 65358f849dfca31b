package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MikeRez0/shopx/internal/adapter/config"
	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/MikeRez0/shopx/internal/core/port"
	"go.uber.org/zap"
)

// Client creates orders on the Razorpay Orders API.
type Client struct {
	logger  *zap.Logger
	http    *http.Client
	baseURL string
	keyID   string
	secret  string
}

var _ port.PaymentGateway = (*Client)(nil)

func NewClient(cfg *config.Payment, log *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("razorpay base url is empty")
	}
	return &Client{
		logger:  log,
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		keyID:   cfg.KeyID,
		secret:  cfg.KeySecret,
	}, nil
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func (c *Client) KeyID() string {
	return c.keyID
}

func (c *Client) CreateOrder(ctx context.Context, order domain.GatewayOrderRequest) (*domain.GatewayOrder, error) {
	body, err := json.Marshal(orderRequest{Amount: order.Amount, Currency: order.Currency, Receipt: order.Receipt})
	if err != nil {
		return nil, fmt.Errorf("%w: encode order: %w", domain.ErrGateway, err)
	}

	requestStr := c.baseURL + "/v1/orders"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: error on %s: %w", domain.ErrGateway, requestStr, err)
	}
	req.SetBasicAuth(c.keyID, c.secret)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Fire request for gateway order",
		zap.String("receipt", order.Receipt), zap.Int64("amount", order.Amount))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request error %s: %w", domain.ErrGateway, requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(raw, &e)
		c.logger.Error("unexpected status for gateway order",
			zap.String("receipt", order.Receipt),
			zap.Int("status", resp.StatusCode),
			zap.String("code", e.Error.Code),
			zap.String("description", e.Error.Description))
		return nil, fmt.Errorf("%w: bad response %d: %s", domain.ErrGateway, resp.StatusCode, e.Error.Description)
	}

	var result orderResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("%w: error on response decode: %w", domain.ErrGateway, err)
	}
	if result.ID == "" {
		return nil, fmt.Errorf("%w: response without order id", domain.ErrGateway)
	}

	return &domain.GatewayOrder{
		ID:       result.ID,
		Amount:   result.Amount,
		Currency: result.Currency,
		Receipt:  result.Receipt,
	}, nil
}
