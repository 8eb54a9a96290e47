package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lflopes1997/Projeto-ControleEstoque/internal/models"
)

// ProductPayload is the body sent on create and update.
type ProductPayload struct {
	Name     string  `json:"nome"`
	Quantity int     `json:"quantidade"`
	Price    float64 `json:"preco"`
}

// APIError is a non-2xx response, carrying the body as detail.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Status, e.Detail)
}

// APIClient talks to the produtos API.
type APIClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

func (c *APIClient) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/produtos", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *APIClient) Get(ctx context.Context, id int) (models.Product, error) {
	var p models.Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/produtos/%d", id), nil, &p)
	return p, err
}

func (c *APIClient) Create(ctx context.Context, payload ProductPayload) (models.Product, error) {
	var p models.Product
	err := c.do(ctx, http.MethodPost, "/produtos", &payload, &p)
	return p, err
}

func (c *APIClient) Update(ctx context.Context, id int, payload ProductPayload) (models.Product, error) {
	var p models.Product
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/produtos/%d", id), &payload, &p)
	return p, err
}

func (c *APIClient) Delete(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/produtos/%d", id), nil, nil)
}

func (c *APIClient) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		detail, _ := io.ReadAll(res.Body)
		return &APIError{Status: res.StatusCode, Detail: strings.TrimSpace(string(detail))}
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
