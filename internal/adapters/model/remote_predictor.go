package model

import (
	"bytes"
	"context"
	"delivery-time-service/internal/domain"
	"delivery-time-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

type predictRequest struct {
	Columns []string  `json:"columns"`
	Values  []float64 `json:"values"`
}

type predictResponse struct {
	Prediction *float64 `json:"prediction"`
}

// RemotePredictor calls a model server over HTTP.
//
// The server receives the row in schema order and answers with a single
// number. Each prediction is one attempt: the model is deterministic, so a
// retry would not change the outcome.
type RemotePredictor struct {
	session *http.Client
	url     string
}

func NewRemotePredictor(url string, timeout time.Duration) (*RemotePredictor, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("remote predictor url is empty")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &RemotePredictor{
		session: &http.Client{Timeout: timeout},
		url:     url,
	}, nil
}

func (p *RemotePredictor) Predict(ctx context.Context, vector domain.FeatureVector) (_ float64, err error) {
	defer obs.Time(ctx, "remote.Predict")(&err)

	body, err := json.Marshal(predictRequest{Columns: vector.Columns(), Values: vector.Values()})
	if err != nil {
		return 0, fmt.Errorf("remote predict: encode request: %w: %w", domain.ErrPredictionUnavailable, err)
	}

	req, err := p.newRequest(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("remote predict: %w: %w", domain.ErrPredictionUnavailable, err)
	}

	resp, err := p.do(req)
	if err != nil {
		return 0, fmt.Errorf("remote predict: execute request: %w: %w", domain.ErrPredictionUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("remote predict: decode response: %w: %w", domain.ErrPredictionUnavailable, err)
	}
	if decoded.Prediction == nil {
		return 0, fmt.Errorf("remote predict: response has no prediction: %w", domain.ErrPredictionUnavailable)
	}

	v := *decoded.Prediction
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("remote predict: non-finite prediction: %w", domain.ErrPredictionUnavailable)
	}

	return v, nil
}

func (p *RemotePredictor) newRequest(
	ctx context.Context,
	method string,
	url string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if reqID := obs.RequestID(ctx); reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}

	return req, nil
}

func (p *RemotePredictor) do(req *http.Request) (*http.Response, error) {
	resp, err := p.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}
