package contrib

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jamesrmoro/commits-invaders/internal/calendar"
)

// EndpointSource reads calendars from a contributions proxy: an HTTP
// endpoint answering GET <URL>?user=<login> with the bare weeks array.
type EndpointSource struct {
	URL        string
	HTTPClient *http.Client
}

// Contributions implements Source.
func (e *EndpointSource) Contributions(ctx context.Context, user string) ([]calendar.Week, error) {
	u, err := url.Parse(e.URL)
	if err != nil {
		return nil, &FetchError{User: user, Err: fmt.Errorf("bad endpoint: %w", err)}
	}
	q := u.Query()
	q.Set("user", user)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &FetchError{User: user, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	client := e.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{User: user, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &FetchError{User: user, Status: resp.StatusCode, Err: fmt.Errorf("%s", strings.TrimSpace(string(msg)))}
	}

	return calendar.Decode(resp.Body)
}
