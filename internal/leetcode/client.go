package leetcode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ryanmello/devboard/internal/domain"
	"github.com/ryanmello/devboard/internal/logger"
)

// Client fetches solve statistics from the LeetCode stats API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new LeetCode stats client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// StatsPayload is the raw stats document as the feed reports it.
// SubmissionCalendar keys are unix timestamps in seconds, as strings.
type StatsPayload struct {
	Status             string         `json:"status"`
	Message            string         `json:"message"`
	TotalSolved        int            `json:"totalSolved"`
	TotalQuestions     int            `json:"totalQuestions"`
	EasySolved         int            `json:"easySolved"`
	TotalEasy          int            `json:"totalEasy"`
	MediumSolved       int            `json:"mediumSolved"`
	TotalMedium        int            `json:"totalMedium"`
	HardSolved         int            `json:"hardSolved"`
	TotalHard          int            `json:"totalHard"`
	AcceptanceRate     float64        `json:"acceptanceRate"`
	Ranking            int            `json:"ranking"`
	SubmissionCalendar map[string]int `json:"submissionCalendar"`
}

// FetchStats retrieves the raw solve statistics for a LeetCode username.
// Any transport or upstream failure maps to ErrFeedUnavailable.
func (c *Client) FetchStats(ctx context.Context, username string) (*StatsPayload, error) {
	log := logger.FromContext(ctx)

	endpoint := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("Stats feed request failed", "username", username, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn("Stats feed returned non-OK status", "username", username, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", domain.ErrFeedUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFeedUnavailable, err)
	}

	var stats StatsPayload
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("%w: malformed response", domain.ErrFeedUnavailable)
	}

	// The feed reports failures in-band with a 200 status
	if stats.Status != StatusSuccess {
		log.Warn("Stats feed reported failure", "username", username, "message", stats.Message)
		return nil, fmt.Errorf("%w: %s", domain.ErrFeedUnavailable, stats.Message)
	}

	return &stats, nil
}
