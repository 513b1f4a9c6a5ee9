// Package gemini はメニュー説明と売上分析のテキスト生成を行う薄いクライアント。
// どちらも注文フローを止めてはいけないので、失敗は固定文言へのフォールバックで吸収する。
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"

	// フォールバック文言（元アプリと同じ）
	descriptionMissingKey = "وصف تلقائي غير متاح (Missing API Key)"
	descriptionFallback   = "وصف شهي ولذيذ."
	analysisMissingKey    = "التحليل غير متاح."
	analysisFallback      = "لا توجد بيانات كافية للتحليل."
)

type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type ClientOption func(*Client)

// テスト用にエンドポイントを差し替える
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient は生成AIクライアントを作る。apiKeyが空でも動く（固定文言のみ返す）。
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DescribeDish は料理名からメニュー向けの短い説明文（アラビア語・20語以内）を作る。
// キー未設定・呼び出し失敗は固定文言を返し、エラーは外に出さない。
func (c *Client) DescribeDish(ctx context.Context, dishName string) string {
	if c.apiKey == "" {
		return descriptionMissingKey
	}

	prompt := fmt.Sprintf(
		`Write a short, appetizing description (max 20 words) in Arabic for a restaurant menu item named: %q. Make it sound delicious.`,
		dishName,
	)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("describe dish failed", "dish", dishName, "error", err)
		return descriptionFallback
	}
	return text
}

// AnalyzeSales は売上サマリ文字列からマネージャー向けの短い助言を作る。
func (c *Client) AnalyzeSales(ctx context.Context, summary string) string {
	if c.apiKey == "" {
		return analysisMissingKey
	}

	prompt := fmt.Sprintf(
		`Analyze this sales data summary in Arabic and give 2 brief strategic tips for the restaurant manager: %s`,
		summary,
	)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("analyze sales failed", "error", err)
		return analysisFallback
	}
	return text
}

// generateContent のリクエスト/レスポンス（必要な部分だけ）
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		return "", fmt.Errorf("gemini: status %d: %s", resp.StatusCode, string(data))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}

	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("gemini: empty text")
	}
	return text, nil
}
