package bookingapi

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

const serviceName = "bookingapi"

// Client клиент для чтения бронирований из сервиса бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента сервиса бронирований
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

// GetBookings получает бронирования компании за период [From, To] (даты включительно)
func (c *Client) GetBookings(ctx context.Context, filter domain.BookingsFilter) ([]domain.Booking, error) {
	query := url.Values{}
	query.Set("from", filter.From.Format(domain.DateFormat))
	query.Set("to", filter.To.Format(domain.DateFormat))
	if filter.BranchID != nil {
		query.Set("branchId", strconv.FormatInt(*filter.BranchID, 10))
	}
	if filter.ProfessionalID != nil {
		query.Set("professionalId", strconv.FormatInt(*filter.ProfessionalID, 10))
	}

	endpoint := fmt.Sprintf("%s/internal/companies/%d/bookings?%s", c.baseURL, filter.CompanyID, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(0, start)
		c.log.Error("BookingAPI request failed for company=%d: %v", filter.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()
	c.observe(resp.StatusCode, start)

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrCompanyNotFound
	case http.StatusBadRequest:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return nil, fmt.Errorf("%w: bad request: %s", ErrInvalidResponse, errResp.Message)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var list BookingListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	bookings := make([]domain.Booking, 0, len(list.Bookings))
	for i := range list.Bookings {
		bookings = append(bookings, list.Bookings[i].ToDomain())
	}

	c.log.Info("Fetched %d bookings for company=%d (%s..%s)",
		len(bookings), filter.CompanyID, query.Get("from"), query.Get("to"))
	return bookings, nil
}

func (c *Client) observe(status int, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveIntegration(serviceName, status, time.Since(start))
}
