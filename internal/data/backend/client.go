// Package backend talks to the REST backend that owns user packages.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cowork-booking/internal/data/entity"
	"cowork-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrApplyPackage is returned when the backend did not record a package
// application. The discount must then not be treated as persisted.
var ErrApplyPackage = errors.New("apply package failed")

// ErrFetchPackages is returned when the user's packages could not be loaded.
var ErrFetchPackages = errors.New("fetch packages failed")

const maxBodyBytes = 1 << 20

type PackageClient interface {
	FetchUserPackages(ctx context.Context, userID string, role entity.MemberRole) ([]entity.UserPackage, error)
	ApplyPackage(ctx context.Context, req ApplyPackageRequest) error
}

type ApplyPackageRequest struct {
	BookingID    string  `json:"bookingId"`
	PackageID    string  `json:"packageId"`
	AppliedHours float64 `json:"appliedHours"`
}

type userPackagesResponse struct {
	Success  bool                 `json:"success"`
	Packages []entity.UserPackage `json:"packages"`
	Message  string               `json:"message,omitempty"`
}

type applyPackageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type packageClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewPackageClient(config utils.BackendConfig, log *zap.Logger) PackageClient {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	limit := rate.Inf
	if config.RatePerSec > 0 {
		limit = rate.Limit(config.RatePerSec)
	}
	burst := config.Burst
	if burst <= 0 {
		burst = 1
	}

	return &packageClient{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		apiKey:  config.APIKey,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, burst),
		log:     log.With(zap.String("client", "backend")),
	}
}

func (c *packageClient) FetchUserPackages(ctx context.Context, userID string, role entity.MemberRole) ([]entity.UserPackage, error) {
	path := fmt.Sprintf("/booking/user-packages/%s/%s", url.PathEscape(userID), url.PathEscape(string(role)))

	var body userPackagesResponse
	status, err := c.do(ctx, http.MethodGet, path, nil, &body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchPackages, err)
	}

	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: backend returned status %d", ErrFetchPackages, status)
	}
	if !body.Success {
		return nil, fmt.Errorf("%w: %s", ErrFetchPackages, messageOr(body.Message, "backend reported failure"))
	}

	c.log.Debug("User packages fetched",
		zap.String("user_id", userID),
		zap.String("role", string(role)),
		zap.Int("count", len(body.Packages)),
	)

	return body.Packages, nil
}

func (c *packageClient) ApplyPackage(ctx context.Context, req ApplyPackageRequest) error {
	var body applyPackageResponse
	status, err := c.do(ctx, http.MethodPost, "/booking/apply-package", req, &body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrApplyPackage, err)
	}

	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: backend returned status %d", ErrApplyPackage, status)
	}
	if !body.Success {
		return fmt.Errorf("%w: %s", ErrApplyPackage, messageOr(body.Message, "backend reported failure"))
	}

	c.log.Info("Package applied",
		zap.String("booking_id", req.BookingID),
		zap.String("package_id", req.PackageID),
		zap.Float64("applied_hours", req.AppliedHours),
	)

	return nil
}

// do sends a JSON request and decodes the JSON reply into out. A reply that
// is not JSON is only an error for 2xx statuses.
func (c *packageClient) do(ctx context.Context, method, path string, in, out any) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limit wait: %w", err)
	}

	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("Backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return 0, err
	}
	defer resp.Body.Close()

	c.log.Debug("Backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out)
	if decodeErr != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.StatusCode, fmt.Errorf("decode response: %w", decodeErr)
	}

	return resp.StatusCode, nil
}

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
