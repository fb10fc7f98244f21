package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// GraphFacebookPublisher posts to a Facebook page feed through the Graph API.
// Used in live mode only.
type GraphFacebookPublisher struct {
	pageID string
	token  string
	client *http.Client
	logger *zap.Logger
}

func NewGraphFacebookPublisher(pageID, token string, logger *zap.Logger) *GraphFacebookPublisher {
	return &GraphFacebookPublisher{
		pageID: pageID,
		token:  token,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

func (p *GraphFacebookPublisher) Name() string {
	return FamilyFacebook
}

func (p *GraphFacebookPublisher) Publish(ctx context.Context, caption string) (string, error) {
	endpoint := fmt.Sprintf("https://graph.facebook.com/%s/feed", p.pageID)

	form := url.Values{}
	form.Set("message", caption)
	form.Set("access_token", p.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build facebook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("facebook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("facebook post failed with status %d", resp.StatusCode)
	}

	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode facebook response: %w", err)
	}
	if body.ID == "" {
		return "", fmt.Errorf("facebook response carried no post id")
	}

	// Graph returns "<page>_<post>"; the public URL wants the post part.
	parts := strings.Split(body.ID, "_")
	postURL := fmt.Sprintf("https://www.facebook.com/%s/posts/%s", p.pageID, parts[len(parts)-1])

	p.logger.Info("Published to Facebook page",
		zap.String("page_id", p.pageID),
		zap.String("post_url", postURL))
	return postURL, nil
}
