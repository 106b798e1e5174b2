// Package hfapi classifies text through a Hugging Face style zero-shot inference endpoint.
package hfapi

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/spigell/resume-skills/internal/classifier"
	"github.com/spigell/resume-skills/internal/utils"
)

const (
	DefaultBaseURL = "https://api-inference.huggingface.co/models"
	providerName   = "huggingface"
	userAgent      = "spigell/resume-skills"
	contentType    = "application/json"

	defaultLoadWaits = 3
	maxLoadWait      = time.Minute
)

type Client struct {
	token     string
	model     string
	logger    *zap.Logger
	limiter   *rate.Limiter
	loadWaits int

	HTTPClient *http.Client
	UserAgent  string
	BaseURL    string
}

// New creates a client for model. A nil limiter disables rate limiting.
func New(logger *zap.Logger, token, model string, limiter *rate.Limiter) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		token:     token,
		model:     model,
		logger:    logger,
		limiter:   limiter,
		loadWaits: defaultLoadWaits,
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		UserAgent: userAgent,
		BaseURL:   DefaultBaseURL,
	}
}

func (c *Client) Provider() string { return providerName }

func (c *Client) Model() string { return c.model }

type request struct {
	Inputs     string     `json:"inputs"`
	Parameters parameters `json:"parameters"`
}

type parameters struct {
	CandidateLabels []string `json:"candidate_labels"`
	MultiLabel      bool     `json:"multi_label"`
}

type response struct {
	Sequence string    `json:"sequence"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
}

type errorResponse struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

// loadingError is returned while the endpoint is still loading the model.
type loadingError struct {
	wait time.Duration
	msg  string
}

func (e *loadingError) Error() string { return "model is loading: " + e.msg }

func (c *Client) Classify(ctx context.Context, text string, labels []string, multiLabel bool) (*classifier.Result, error) {
	if len(labels) == 0 {
		return nil, errors.New("at least one label is required")
	}

	body, err := json.Marshal(request{
		Inputs:     text,
		Parameters: parameters{CandidateLabels: labels, MultiLabel: multiLabel},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	for attempt := 0; ; attempt++ {
		res, err := c.post(ctx, body)
		var loading *loadingError
		if !errors.As(err, &loading) || attempt >= c.loadWaits {
			if err != nil {
				return nil, err
			}
			return classifier.NewResult(text, res.Labels, res.Scores)
		}

		c.logger.Info("inference endpoint is loading the model",
			zap.String("model", c.model),
			zap.Duration("wait", loading.wait),
		)
		if err := utils.WaitFor(ctx, loading.wait); err != nil {
			return nil, err
		}
	}
}

func (c *Client) post(ctx context.Context, body []byte) (*response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for rate limiter: %w", err)
		}
	}

	url := strings.TrimRight(c.BaseURL, "/") + "/" + c.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	reader, err := decodeBody(resp)
	if err != nil {
		return nil, err
	}

	payload, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("got response from inference endpoint",
		zap.Int("status", resp.StatusCode),
		zap.String("body", utils.TruncateForLog(string(payload), 200)),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp, payload)
	}

	var out response
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

func (c *Client) statusError(resp *http.Response, payload []byte) error {
	var e errorResponse
	_ = json.Unmarshal(payload, &e)
	msg := strings.TrimSpace(e.Error)
	if msg == "" {
		msg = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusServiceUnavailable:
		if e.EstimatedTime > 0 {
			wait := min(time.Duration(e.EstimatedTime*float64(time.Second)), maxLoadWait)
			return &loadingError{wait: wait, msg: msg}
		}
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return &classifier.ModelUnavailableError{Model: c.model, Err: fmt.Errorf("bad status: %s", msg)}
	}

	return fmt.Errorf("bad status %d: %s", resp.StatusCode, msg)
}

func (c *Client) setHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("User-Agent", c.UserAgent)
}

func decodeBody(resp *http.Response) (io.Reader, error) {
	if resp.Header.Get("Content-Encoding") != "gzip" {
		return resp.Body, nil
	}
	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("open gzip body: %w", err)
	}
	return gz, nil
}
