package hfapi

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/resume-skills/internal/classifier"
)

func TestClassifyPostsExpectedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/facebook/bart-large-mnli", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var got request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "I write Go", got.Inputs)
		assert.Equal(t, []string{"python", "go"}, got.Parameters.CandidateLabels)
		assert.True(t, got.Parameters.MultiLabel)

		_ = json.NewEncoder(w).Encode(response{
			Sequence: got.Inputs,
			Labels:   []string{"python", "go"},
			Scores:   []float64{0.1, 0.97},
		})
	}))
	defer srv.Close()

	c := New(nil, "secret", "facebook/bart-large-mnli", nil)
	c.BaseURL = srv.URL + "/models"

	res, err := c.Classify(context.Background(), "I write Go", []string{"python", "go"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "python"}, res.Labels)
	assert.Equal(t, []float64{0.97, 0.1}, res.Scores)
}

func TestClassifyDecodesGzip(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_ = json.NewEncoder(gz).Encode(response{Labels: []string{"a"}, Scores: []float64{0.5}})
		_ = gz.Close()
	}))
	defer srv.Close()

	c := New(nil, "", "m", nil)
	c.BaseURL = srv.URL

	res, err := c.Classify(context.Background(), "text", []string{"a"}, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, res.Scores)
}

func TestClassifyWaitsWhileModelLoads(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"Model is currently loading","estimated_time":0.01}`))
			return
		}
		_ = json.NewEncoder(w).Encode(response{Labels: []string{"a"}, Scores: []float64{0.9}})
	}))
	defer srv.Close()

	c := New(nil, "", "m", nil)
	c.BaseURL = srv.URL

	res, err := c.Classify(context.Background(), "text", []string{"a"}, true)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, []string{"a"}, res.Labels)
}

func TestClassifyMissingModelIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Model not found"}`))
	}))
	defer srv.Close()

	c := New(nil, "", "missing", nil)
	c.BaseURL = srv.URL

	_, err := c.Classify(context.Background(), "text", []string{"a"}, true)
	require.Error(t, err)
	assert.True(t, classifier.IsModelUnavailable(err))
}

func TestClassifyServerErrorIsPlain(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(nil, "", "m", nil)
	c.BaseURL = srv.URL

	_, err := c.Classify(context.Background(), "text", []string{"a"}, true)
	require.Error(t, err)
	assert.False(t, classifier.IsModelUnavailable(err))
}
