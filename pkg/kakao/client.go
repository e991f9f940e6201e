package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client is the Kakao REST API client used for administrator-initiated
// direct messages, outside the normal webhook request/response cycle.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new Kakao API client.
func NewClient(apiKey, apiURL string) *Client {
	if apiURL == "" {
		apiURL = "https://kapi.kakao.com"
	}
	return &Client{
		apiKey:     apiKey,
		apiURL:     apiURL,
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the Kakao API URL for testing purposes.
func (c *Client) SetAPIURL(u string) {
	c.apiURL = u
}

// SendToUser sends a plain text memo message to a single user.
func (c *Client) SendToUser(ctx context.Context, userID, message string) error {
	endpoint := fmt.Sprintf("%s/v2/api/talk/memo/default/send", c.apiURL)

	receivers, err := json.Marshal([]string{userID})
	if err != nil {
		return fmt.Errorf("failed to marshal receiver list: %w", err)
	}

	templateObject, err := json.Marshal(map[string]any{
		"object_type": "text",
		"text":        message,
		"link": map[string]string{
			"web_url":        "https://your-domain.com",
			"mobile_web_url": "https://your-domain.com",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal template object: %w", err)
	}

	form := url.Values{}
	form.Set("receiver_uuids", string(receivers))
	form.Set("template_object", string(templateObject))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build send request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("KakaoAK %s", c.apiKey))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call kakao send API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("kakao send API error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}
