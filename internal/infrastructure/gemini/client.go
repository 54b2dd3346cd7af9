package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/marketscope-service/internal/config"
	"github.com/marketscope-service/internal/domain"
	"github.com/marketscope-service/internal/domain/repository"
	"go.uber.org/zap"
)

// Фиксированные fallback-тексты: клиент никогда не возвращает ошибку наружу
const (
	marketFallback = "The market analysis is temporarily unavailable. Please check that your API key is configured correctly."
	entryFallback  = "Analysis for this entry could not be generated right now."
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     *zap.Logger
}

// NewClient создает новый клиент для Gemini generateContent API
func NewClient(cfg *config.GeminiConfig, logger *zap.Logger) repository.NarrativeRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		logger:  logger,
	}
}

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
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// parkContext - срез данных по одному парку, попадающий в промпт
type parkContext struct {
	Name            string      `json:"name"`
	IsMyProject     bool        `json:"is_my_project"`
	LatestOccupancy interface{} `json:"latest_occupancy"`
	LatestPrice     interface{} `json:"latest_price"`
	Commission      string      `json:"commission"`
	Events          string      `json:"events"`
	LastUpdated     string      `json:"last_updated"`
}

// SummarizeMarket генерирует обзор рынка по последним записям всех парков
func (c *client) SummarizeMarket(ctx context.Context, parks []domain.Park, surveys []domain.SurveyRecord) string {
	now := time.Now()

	var ownParkName string
	dataContext := make([]parkContext, 0, len(parks))
	for _, p := range parks {
		if p.IsOwnPark && ownParkName == "" {
			ownParkName = p.Name
		}

		pc := parkContext{
			Name:            p.Name,
			IsMyProject:     p.IsOwnPark,
			LatestOccupancy: "N/A",
			LatestPrice:     "N/A",
			Commission:      "N/A",
			LastUpdated:     "N/A",
		}
		if latest := domain.LatestAsOf(surveys, p.ID, now); latest != nil {
			pc.LatestOccupancy = latest.OccupancyRate
			if latest.RentPrice != nil {
				pc.LatestPrice = *latest.RentPrice
			}
			pc.Commission = latest.Commission
			pc.Events = latest.SignificantEvents
			pc.LastUpdated = latest.Date
		}
		dataContext = append(dataContext, pc)
	}

	contextJSON, err := json.MarshalIndent(dataContext, "", "  ")
	if err != nil {
		c.logger.Error("Failed to marshal market context", zap.Error(err))
		return marketFallback
	}

	prompt := fmt.Sprintf(`As a senior commercial real estate leasing strategist, analyze the following survey data on competing office parks:
%s
`, contextJSON)
	if ownParkName != "" {
		prompt += fmt.Sprintf("\nPay particular attention to how our own project %q compares against the market.\n", ownParkName)
	}
	prompt += `
Please provide:
1. Market summary: a concise overview of current conditions (about 100 words).
2. Competitive comparison: strengths and weaknesses of our project on rent, occupancy and incentive policy.
3. Leasing strategy: three concrete recommendations based on current market trends (e.g. adjust commission, improve delivery standard, target specific industries).

Answer in a professional, objective tone.`

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Error("Gemini market summary failed", zap.Error(err))
		return marketFallback
	}
	return text
}

// AnalyzeEntry генерирует краткий анализ одной записи в сравнении с предыдущей
func (c *client) AnalyzeEntry(ctx context.Context, parkName string, record domain.SurveyRecord, previous *domain.SurveyRecord) string {
	price := "N/A"
	if record.RentPrice != nil {
		price = fmt.Sprintf("%.1f", *record.RentPrice)
	}
	events := record.SignificantEvents
	if events == "" {
		events = "none"
	}

	prompt := fmt.Sprintf(`Analyze the latest survey data for the office park %q.

Current data:
Occupancy: %.0f%%
Rent quote: %s per sqm per day
Commission policy: %s
Significant events: %s
Delivery standard: %s
`, parkName, record.OccupancyRate, price, record.Commission, events, record.DeliveryStandard)

	if previous != nil {
		prevPrice := "N/A"
		if previous.RentPrice != nil {
			prevPrice = fmt.Sprintf("%.1f", *previous.RentPrice)
		}
		prompt += fmt.Sprintf(`
Previous data (%s):
Occupancy: %.0f%%
Rent quote: %s per sqm per day
Commission policy: %s
`, previous.Date, previous.OccupancyRate, prevPrice, previous.Commission)
	} else {
		prompt += "\nNo previous data available.\n"
	}

	prompt += `
Give two short sentences of insight on competitiveness, pricing strategy and trend.
Is this park's performance improving or declining?`

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Error("Gemini entry analysis failed", zap.Error(err))
		return entryFallback
	}
	return text
}

// generate выполняет один синхронный вызов generateContent.
// Без ретраев и бэкоффа: единственный исходящий запрос на триггер.
func (c *client) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Calling Gemini generateContent",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(prompt)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini API returned no candidates")
	}

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}
