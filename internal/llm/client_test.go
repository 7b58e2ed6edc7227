package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func testConfig(endpoint string) LLMConfig {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	return cfg
}

func slowHandler(d time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(d):
			w.WriteHeader(http.StatusOK)
		case <-r.Context().Done():
		}
	}
}

func TestOllamaClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.2", req.Model)
		assert.False(t, req.Stream)
		assert.Equal(t, "system prompt", req.System)
		assert.Equal(t, "user prompt", req.Prompt)
		assert.Equal(t, 2048, req.Options.NumPredict)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: "[STRENGTHS]\ncurious"})
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskAnalyze,
		SystemPrompt: "system prompt",
		UserPrompt:   "user prompt",
	})

	require.NoError(t, err)
	assert.Equal(t, "[STRENGTHS]\ncurious", resp.Text)
	assert.Equal(t, "llama3.2", resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestOllamaClient_Generate_TrailingSlashEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: "ok"})
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL+"/"), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAnalyze, UserPrompt: "x"})
	require.NoError(t, err)
}

func TestOllamaClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(slowHandler(2 * time.Second))
	defer srv.Close()

	cfg := testConfig(srv.URL).WithTaskTimeout(TaskAnalyze, 50)
	client := NewOllamaClient(cfg, NoopObserver{})

	start := time.Now()
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAnalyze, UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), time.Second)
}

func TestOllamaClient_Generate_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1").WithTaskTimeout(TaskAnalyze, 1000)

	client := NewOllamaClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAnalyze, UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrOllamaUnavailable)
}

func TestOllamaClient_Generate_SingleAttempt(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal error"))
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAnalyze, UserPrompt: "test"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Equal(t, int32(1), attempts.Load(), "analysis calls are never retried")
}

func TestOllamaClient_Generate_ErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaResponse{Error: "model not found"})
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAnalyze, UserPrompt: "test"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
}

func TestOllamaClient_Generate_EmptyResponseIsInvalidOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: "   "})
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAnalyze, UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestOllamaClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.True(t, NewOllamaClient(testConfig(srv.URL), NoopObserver{}).Available(context.Background()))
	assert.False(t, NewOllamaClient(testConfig("http://127.0.0.1:1"), NoopObserver{}).Available(context.Background()))
}

func TestOllamaClient_ObserverTimeoutErrorCode(t *testing.T) {
	srv := httptest.NewServer(slowHandler(time.Second))
	defer srv.Close()

	var captured LLMCallEvent
	obs := &captureObserver{fn: func(e LLMCallEvent) { captured = e }}
	client := NewOllamaClient(testConfig(srv.URL).WithTaskTimeout(TaskAnalyze, 50), obs)

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskAnalyze, UserPrompt: "test"})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.False(t, captured.Success)
	assert.Equal(t, "TIMEOUT", captured.ErrorCode)
	assert.Equal(t, TaskAnalyze, captured.Task)
}

func TestLogObserver_WritesStructuredFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	obs := NewLogObserver(zap.New(core))

	obs.OnCallComplete(LLMCallEvent{Task: TaskAnalyze, Model: "m", LatencyMs: 12, Success: true})
	obs.OnCallComplete(LLMCallEvent{Task: TaskAnalyze, Model: "m", LatencyMs: 40, ErrorCode: "TIMEOUT"})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "llm_call", entries[0].Message)
	assert.Equal(t, "ok", entries[0].ContextMap()["status"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "err:TIMEOUT", entries[1].ContextMap()["status"])
}

func TestWithTaskTimeout_DoesNotMutateOriginal(t *testing.T) {
	base := DefaultConfig()
	changed := base.WithTaskTimeout(TaskAnalyze, 10)

	assert.Equal(t, 10, changed.TaskTimeout(TaskAnalyze))
	assert.Equal(t, 60000, base.TaskTimeout(TaskAnalyze))
	assert.Equal(t, base, base.WithTaskTimeout(TaskAnalyze, 0))
}

type captureObserver struct {
	fn func(LLMCallEvent)
}

func (o *captureObserver) OnCallComplete(e LLMCallEvent) { o.fn(e) }
