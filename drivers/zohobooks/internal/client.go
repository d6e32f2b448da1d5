package driver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const defaultAPIBase = "https://www.zohoapis.com/books/v3"

// apiHosts maps the accounts-server domain suffix to the data-center API
// host; tokens are only valid against the data center that issued them.
var apiHosts = map[string]string{
	".com":    "https://www.zohoapis.com/books/v3",
	".eu":     "https://www.zohoapis.eu/books/v3",
	".in":     "https://www.zohoapis.in/books/v3",
	".com.au": "https://www.zohoapis.com.au/books/v3",
	".jp":     "https://www.zohoapis.jp/books/v3",
	".ca":     "https://www.zohoapis.ca/books/v3",
	".com.cn": "https://www.zohoapis.com.cn/books/v3",
	".sa":     "https://www.zohoapis.sa/books/v3",
}

// resolveAPIBase picks the API host matching the accounts server the refresh
// token was issued by. Longer suffixes win so ".com.au" is not shadowed by
// ".com".
func resolveAPIBase(accountsServer string) string {
	host := strings.TrimSuffix(strings.TrimSpace(accountsServer), "/")
	if host == "" {
		return defaultAPIBase
	}
	base, match := defaultAPIBase, ""
	for suffix, api := range apiHosts {
		if strings.HasSuffix(host, suffix) && len(suffix) > len(match) {
			base, match = api, suffix
		}
	}
	return base
}

// Response is the raw outcome of one API call, classification happens later.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client issues authenticated GETs against one data center. Token refresh is
// delegated entirely to the oauth2 transport.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

func NewClient(ctx context.Context, config *Config) *Client {
	accounts := strings.TrimSuffix(config.AccountsServer, "/")
	if accounts == "" {
		accounts = "https://accounts.zoho.com"
	}
	oauthConfig := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  accounts + "/oauth/v2/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	source := oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: config.RefreshToken})
	httpClient := oauth2.NewClient(ctx, source)
	httpClient.Timeout = 5 * time.Minute

	return &Client{
		baseURL:   resolveAPIBase(config.AccountsServer),
		userAgent: config.UserAgent,
		http:      httpClient,
	}
}

// newTestClient bypasses oauth, used by tests against a local server.
func newTestClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/"), userAgent: "booksync-test", http: httpClient}
}

// Get performs a single GET without retries; callers wrap it in request().
func (c *Client) Get(ctx context.Context, path string, params url.Values) (*Response, error) {
	endpoint := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %s", path, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %s", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %s", path, err)
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}
