package contrib

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jamesrmoro/commits-invaders/internal/calendar"
)

// GitHubEndpoint is the GitHub GraphQL API.
const GitHubEndpoint = "https://api.github.com/graphql"

// ErrNoToken is returned when the GitHub source has no API token.
var ErrNoToken = errors.New("contrib: no GitHub token (set GITHUB_TOKEN or --token)")

const contributionsQuery = `query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
            color
          }
        }
      }
    }
  }
}`

// GitHubClient fetches calendars from the GitHub GraphQL API.
type GitHubClient struct {
	Endpoint   string
	Token      string
	HTTPClient *http.Client
	Logger     *log.Logger
}

// NewGitHubClient returns a client for the public GitHub API.
func NewGitHubClient(token string, logger *log.Logger) *GitHubClient {
	if logger == nil {
		logger = discardLogger()
	}
	return &GitHubClient{
		Endpoint:   GitHubEndpoint,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Logger:     logger,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLResponse struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					TotalContributions int             `json:"totalContributions"`
					Weeks              json.RawMessage `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Contributions implements Source.
func (c *GitHubClient) Contributions(ctx context.Context, user string) ([]calendar.Week, error) {
	if c.Token == "" {
		return nil, &FetchError{User: user, Err: ErrNoToken}
	}

	body, err := json.Marshal(graphQLRequest{
		Query:     contributionsQuery,
		Variables: map[string]any{"login": user},
	})
	if err != nil {
		return nil, &FetchError{User: user, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &FetchError{User: user, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	start := time.Now()
	resp, err := c.client().Do(req)
	if err != nil {
		return nil, &FetchError{User: user, Err: err}
	}
	defer resp.Body.Close()

	c.logger().Debug("github request", "user", user, "status", resp.StatusCode, "took", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &FetchError{User: user, Status: resp.StatusCode, Err: fmt.Errorf("%s", strings.TrimSpace(string(msg)))}
	}

	var out graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &FetchError{User: user, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(out.Errors) > 0 {
		msgs := make([]string, len(out.Errors))
		for i, e := range out.Errors {
			msgs[i] = e.Message
		}
		return nil, &FetchError{User: user, Status: resp.StatusCode, Err: errors.New(strings.Join(msgs, "; "))}
	}
	if out.Data.User == nil {
		return nil, &FetchError{User: user, Status: resp.StatusCode, Err: errors.New("user not found")}
	}

	cal := out.Data.User.ContributionsCollection.ContributionCalendar
	if len(cal.Weeks) == 0 || string(cal.Weeks) == "null" {
		return nil, &FetchError{User: user, Status: resp.StatusCode, Err: errors.New("response has no weeks")}
	}

	weeks, err := calendar.DecodeJSON(cal.Weeks)
	if err != nil {
		return nil, err
	}
	c.logger().Info("calendar fetched", "user", user, "weeks", len(weeks), "total", cal.TotalContributions)
	return weeks, nil
}

func (c *GitHubClient) client() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *GitHubClient) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return discardLogger()
}
