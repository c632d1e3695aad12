package adapters

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/FlyingGorillaz/Sons-Of-Anton/application/ports/outbound"
)

type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, error)
	Do(req *http.Request) (*http.Response, error)
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

// NewContentFetcher builds the shared HTTP fetcher used by every
// external collaborator adapter. The timeout bounds each call; expiry
// surfaces as that call's own failure.
func NewContentFetcher(logger outbound.LoggerPort, timeout time.Duration) ContentFetcher {
	return &contentFetcher{
		logger: logger,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *contentFetcher) Do(req *http.Request) (*http.Response, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}
	return res, nil
}

func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	res, err := c.Do(req)
	if err != nil {
		return nil, err
	}

	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.logger.ErrorWithFields(err, "Failed to close the response body", map[string]interface{}{
				"method": req.Method,
				"URL":    req.URL.String(),
			})
		}
	}(res.Body)

	if res.StatusCode != http.StatusOK {
		bodyPayload, _ := io.ReadAll(res.Body)
		c.logger.ErrorWithFields(nil, "HTTP request returned non-OK status code", map[string]interface{}{
			"method":  req.Method,
			"URL":     req.URL.String(),
			"status":  res.StatusCode,
			"message": string(bodyPayload),
		})
		return nil, fmt.Errorf("HTTP request returned non-OK status code: %d", res.StatusCode)
	}

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read the response body", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	return payload, nil
}
