package depositservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// Client клиент для работы с DepositService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента DepositService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetDepositRules получает правила депозита площадки
// 404 означает, что у площадки нет правил: возвращается пустой список.
func (c *Client) GetDepositRules(ctx context.Context, venueID int64) ([]domain.DepositRule, error) {
	url := fmt.Sprintf("%s/internal/venues/%d/deposit-rules", c.baseURL, venueID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return []domain.DepositRule{}, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload RulesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return toDomain(payload.Rules), nil
}

// GetDepositRulesWithGracefulDegradation получает правила с graceful degradation
// Любая ошибка источника превращается в ErrServiceDegraded: вызывающий применяет депозит по умолчанию.
func (c *Client) GetDepositRulesWithGracefulDegradation(ctx context.Context, venueID int64) ([]domain.DepositRule, error) {
	rules, err := c.GetDepositRules(ctx, venueID)
	if err != nil {
		c.log.Error("DepositService unavailable, applying graceful degradation for venue_id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: venue_id=%d, error=%v", ErrServiceDegraded, venueID, err)
	}

	c.log.Info("Fetched %d deposit rules for venue_id=%d", len(rules), venueID)
	return rules, nil
}
