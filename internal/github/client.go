package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ryanmello/devboard/internal/domain"
	"github.com/ryanmello/devboard/internal/logger"
)

// Client fetches contribution calendars from the GitHub GraphQL API
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewClient creates a new GitHub client. An empty token still produces a
// working client, but every fetch will fail with ErrFeedUnavailable since
// the GraphQL API rejects unauthenticated calls.
func NewClient(endpoint, token string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		token:    token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

const contributionsQuery = `
query($username: String!) {
  user(login: $username) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            contributionCount
            date
          }
        }
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLResponse struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar CalendarPayload `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// CalendarPayload is the raw calendar as the feed reports it
type CalendarPayload struct {
	TotalContributions int           `json:"totalContributions"`
	Weeks              []WeekPayload `json:"weeks"`
}

// WeekPayload is one raw upstream week, possibly partial at window edges
type WeekPayload struct {
	ContributionDays []DayPayload `json:"contributionDays"`
}

// DayPayload is a single raw calendar day
type DayPayload struct {
	ContributionCount int    `json:"contributionCount"`
	Date              string `json:"date"`
}

// FetchContributions retrieves the raw contribution calendar for a GitHub
// username. Transport failures, non-200 responses and GraphQL errors all
// map to ErrFeedUnavailable so callers degrade uniformly.
func (c *Client) FetchContributions(ctx context.Context, username string) (*CalendarPayload, error) {
	log := logger.FromContext(ctx)

	body, err := json.Marshal(graphQLRequest{
		Query:     contributionsQuery,
		Variables: map[string]any{"username": username},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contributions query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create contributions request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("Contribution feed request failed", "username", username, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn("Contribution feed returned non-OK status", "username", username, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", domain.ErrFeedUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFeedUnavailable, err)
	}

	var parsed graphQLResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed response", domain.ErrFeedUnavailable)
	}

	if len(parsed.Errors) > 0 {
		log.Warn("Contribution feed returned errors", "username", username, "message", parsed.Errors[0].Message)
		return nil, fmt.Errorf("%w: %s", domain.ErrFeedUnavailable, parsed.Errors[0].Message)
	}
	if parsed.Data.User == nil {
		return nil, fmt.Errorf("%w: unknown account", domain.ErrFeedUnavailable)
	}

	calendar := parsed.Data.User.ContributionsCollection.ContributionCalendar
	return &calendar, nil
}
