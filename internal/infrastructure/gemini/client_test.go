package gemini

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marketscope-service/internal/config"
	"github.com/marketscope-service/internal/domain"
)

func newTestClient(baseURL string) *client {
	cfg := &config.GeminiConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Model:          "gemini-2.5-flash",
		RequestTimeout: 5,
	}
	return NewClient(cfg, zap.NewNop()).(*client)
}

func geminiResponse(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":"` + text + `"}]}}]}`
}

func TestClient_SummarizeMarket(t *testing.T) {
	t.Run("returns generated text", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(geminiResponse("Market looks healthy.")))
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		parks := []domain.Park{{ID: "p1", Name: "Own Park", IsOwnPark: true}}

		text := c.SummarizeMarket(context.Background(), parks, nil)

		assert.Equal(t, "Market looks healthy.", text)
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	})

	t.Run("falls back on API error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		text := c.SummarizeMarket(context.Background(), nil, nil)

		assert.Equal(t, marketFallback, text)
	})

	t.Run("falls back when no candidates returned", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		c := newTestClient(server.URL)

		text := c.SummarizeMarket(context.Background(), nil, nil)

		assert.Equal(t, marketFallback, text)
	})

	t.Run("falls back when server is unreachable", func(t *testing.T) {
		c := newTestClient("http://127.0.0.1:1")

		text := c.SummarizeMarket(context.Background(), nil, nil)

		assert.Equal(t, marketFallback, text)
	})
}

func TestClient_AnalyzeEntry(t *testing.T) {
	price := 4.5

	t.Run("prompt includes previous record", func(t *testing.T) {
		var gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.Write([]byte(geminiResponse("Performance improving.")))
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		record := domain.SurveyRecord{
			ParkID: "p1", Date: "2024-06-10", OccupancyRate: 90, RentPrice: &price,
		}
		previous := domain.SurveyRecord{
			ParkID: "p1", Date: "2024-05-01", OccupancyRate: 85,
		}

		text := c.AnalyzeEntry(context.Background(), "Own Park", record, &previous)

		assert.Equal(t, "Performance improving.", text)
		assert.True(t, strings.Contains(gotBody, "Previous data (2024-05-01)"))
		assert.True(t, strings.Contains(gotBody, "Own Park"))
	})

	t.Run("prompt notes missing previous record", func(t *testing.T) {
		var gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.Write([]byte(geminiResponse("First snapshot.")))
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		record := domain.SurveyRecord{ParkID: "p1", Date: "2024-06-10", OccupancyRate: 90}

		text := c.AnalyzeEntry(context.Background(), "Own Park", record, nil)

		require.Equal(t, "First snapshot.", text)
		assert.True(t, strings.Contains(gotBody, "No previous data available"))
	})

	t.Run("falls back on API error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c := newTestClient(server.URL)
		record := domain.SurveyRecord{ParkID: "p1", Date: "2024-06-10"}

		text := c.AnalyzeEntry(context.Background(), "Own Park", record, nil)

		assert.Equal(t, entryFallback, text)
	})
}
