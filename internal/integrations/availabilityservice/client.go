package availabilityservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

const serviceName = "availabilityservice"

// Client клиент сервиса свободного времени специалистов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента
// metrics может быть nil
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics MetricsRecorder) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// GetAvailableTimes получает свободное время специалиста для услуги на дату
func (c *Client) GetAvailableTimes(ctx context.Context, date time.Time, professionalID, serviceID int64) (*domain.AvailabilityResult, error) {
	query := url.Values{}
	query.Set("date", date.Format(domain.DateFormat))
	query.Set("serviceId", strconv.FormatInt(serviceID, 10))

	endpoint := fmt.Sprintf("%s/internal/professionals/%d/available-times?%s", c.baseURL, professionalID, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(0, start)
		c.log.Error("AvailabilityService request failed for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()
	c.observe(resp.StatusCode, start)

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrProfessionalNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var result AvailableTimesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Fetched %d available times for professional=%d, service=%d, date=%s",
		len(result.AvailableTimes), professionalID, serviceID, query.Get("date"))
	return result.ToDomain(), nil
}

func (c *Client) observe(status int, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveIntegration(serviceName, status, time.Since(start))
}
