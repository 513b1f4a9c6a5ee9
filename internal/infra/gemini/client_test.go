package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"app/internal/infra/gemini"
)

func generateResponse(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
}

func TestClient_DescribeDish_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash:generateContent")
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		json.NewEncoder(w).Encode(generateResponse("  وصف مُغري للبرجر  "))
	}))
	defer srv.Close()

	c := gemini.NewClient("test-key", gemini.WithBaseURL(srv.URL))
	out := c.DescribeDish(context.Background(), "Burger")

	//前後の空白は落とす
	assert.Equal(t, "وصف مُغري للبرجر", out)
}

// キー未設定は呼び出しすら行わず固定文言
func TestClient_DescribeDish_MissingKey(t *testing.T) {
	c := gemini.NewClient("")
	out := c.DescribeDish(context.Background(), "Burger")
	assert.Equal(t, "وصف تلقائي غير متاح (Missing API Key)", out)
}

// 到達できない/エラー応答は固定文言（例外にも空文字にもしない）
func TestClient_DescribeDish_Failure(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := gemini.NewClient("test-key", gemini.WithBaseURL(srv.URL))
		assert.Equal(t, "وصف شهي ولذيذ.", c.DescribeDish(context.Background(), "Burger"))
	})

	t.Run("unreachable", func(t *testing.T) {
		c := gemini.NewClient("test-key", gemini.WithBaseURL("http://127.0.0.1:1"))
		assert.Equal(t, "وصف شهي ولذيذ.", c.DescribeDish(context.Background(), "Burger"))
	})

	t.Run("empty candidates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
		}))
		defer srv.Close()

		c := gemini.NewClient("test-key", gemini.WithBaseURL(srv.URL))
		assert.Equal(t, "وصف شهي ولذيذ.", c.DescribeDish(context.Background(), "Burger"))
	})
}

func TestClient_AnalyzeSales(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		c := gemini.NewClient("")
		assert.Equal(t, "التحليل غير متاح.", c.AnalyzeSales(context.Background(), "Total Orders: 3"))
	})

	t.Run("failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := gemini.NewClient("test-key", gemini.WithBaseURL(srv.URL))
		assert.Equal(t, "لا توجد بيانات كافية للتحليل.", c.AnalyzeSales(context.Background(), "Total Orders: 3"))
	})

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(generateResponse("ركز على البرجر"))
		}))
		defer srv.Close()

		c := gemini.NewClient("test-key", gemini.WithBaseURL(srv.URL))
		assert.Equal(t, "ركز على البرجر", c.AnalyzeSales(context.Background(), "Total Orders: 3"))
	})
}
