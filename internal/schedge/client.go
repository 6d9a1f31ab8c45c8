package schedge

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"schedge-fetch/internal/httpx"
)

// DefaultBaseURL is the public Schedge deployment for NYU data.
// Endpoints occasionally move between versions; if /v3 starts to 404,
// check https://nyu.a1liu.com/api/ and adjust.
const DefaultBaseURL = "https://nyu.a1liu.com/api"

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout: 30 * time.Second, // per-request
		},
	}
}

// Terms fetches the list of available terms. The response shape is not
// part of our contract; callers only use it as a connectivity check and
// log a snippet of whatever came back.
func (c *Client) Terms(ctx context.Context) (any, error) {
	var out any
	if err := httpx.GetJSON(ctx, c.HTTP, c.BaseURL+"/v3/terms", nil, &out); err != nil {
		return nil, fmt.Errorf("schedge: fetch terms: %w", err)
	}
	return out, nil
}

// Courses fetches all course records for one year/term/school/subject
// slice. Any failure (network, non-2xx, malformed JSON) is returned to
// the caller; there are no retries.
func (c *Client) Courses(ctx context.Context, year int, term, school, subject string) ([]RawCourse, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("term", term)
	q.Set("school", school)
	q.Set("subject", subject)

	var out []RawCourse
	if err := httpx.GetJSON(ctx, c.HTTP, c.BaseURL+"/v3/courses", q, &out); err != nil {
		return nil, fmt.Errorf("schedge: fetch courses year=%d term=%s school=%s subject=%s: %w",
			year, term, school, subject, err)
	}
	return out, nil
}
