// Package content reads published blog articles from the secondary content
// backend. Queries are read-only and always filtered on publication status.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"atelier-storefront/internal/model"
	"atelier-storefront/pkg/apierror"
)

const statusPublished = "PUBLISHED"

type Client struct {
	endpoint string
	token    string
	httpc    *http.Client
}

func NewClient(endpoint string, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		endpoint: endpoint,
		token:    token,
		httpc:    &http.Client{Timeout: timeout},
	}
}

const queryArticles = `
query Articles($status: Status!) {
	articles(where: { status: $status }, orderBy: publishedAt_DESC) {
		id
		slug
		title
		excerpt
		publishedAt
	}
}`

const queryArticleBySlug = `
query ArticleBySlug($slug: String!, $status: Status!) {
	article(where: { slug: $slug, status: $status }) {
		id
		slug
		title
		excerpt
		body { html }
		publishedAt
	}
}`

type wireArticle struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	PublishedAt time.Time `json:"publishedAt"`
	Body        *struct {
		HTML string `json:"html"`
	} `json:"body"`
}

func (a *wireArticle) toModel() model.Article {
	out := model.Article{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Excerpt:     a.Excerpt,
		PublishedAt: a.PublishedAt,
	}
	if a.Body != nil {
		out.BodyHTML = a.Body.HTML
	}

	return out
}

// Articles lists published articles, newest first.
func (c *Client) Articles(ctx context.Context) ([]model.Article, error) {
	var data struct {
		Articles []wireArticle `json:"articles"`
	}

	if err := c.do(ctx, queryArticles, map[string]any{"status": statusPublished}, &data); err != nil {
		return nil, err
	}

	out := make([]model.Article, 0, len(data.Articles))
	for _, a := range data.Articles {
		out = append(out, a.toModel())
	}

	return out, nil
}

// ArticleBySlug fetches one published article, or model.ErrArticleNotFound.
func (c *Client) ArticleBySlug(ctx context.Context, slug string) (*model.Article, error) {
	var data struct {
		Article *wireArticle `json:"article"`
	}

	vars := map[string]any{"slug": slug, "status": statusPublished}
	if err := c.do(ctx, queryArticleBySlug, vars, &data); err != nil {
		return nil, err
	}

	if data.Article == nil {
		return nil, model.ErrArticleNotFound
	}

	article := data.Article.toModel()
	return &article, nil
}

func (c *Client) do(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{"query": query, "variables": vars})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return apierror.New(apierror.CodeNetwork, "content backend unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apierror.New(apierror.CodeNetwork, fmt.Sprintf("content backend returned status %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierror.New(apierror.CodeNetwork, "reading content response failed")
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return apierror.New(apierror.CodeNetwork, "malformed content response")
	}

	if len(envelope.Errors) > 0 {
		return apierror.New(apierror.CodeNetwork, envelope.Errors[0].Message)
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return apierror.New(apierror.CodeNetwork, "malformed content response")
		}
	}

	return nil
}
