package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

// BASE_URLの実サーバーに向けたクライアントを作る。
// BASE_URL未設定ならこのスイートはスキップする。
func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		t.Skip("BASE_URL not set; skipping e2e")
	}

	return &TestClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CustomerDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProductDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Details string `json:"details"`
	Price   int64  `json:"price"`
}

type OrderDTO struct {
	ID         int64 `json:"id"`
	ProductID  int64 `json:"product_id"`
	CustomerID int64 `json:"customer_id"`
}

type CustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProductRequest struct {
	Name    string `json:"name"`
	Details string `json:"details"`
	Price   int64  `json:"price"`
}

func (c *TestClient) doJSON(
	ctx context.Context,
	t *testing.T,
	method string,
	path string,
	bodyBytes []byte,
) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}

	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("HTTP.Do failed: %v", err)
	}

	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	return resp, data
}

func requireStatus(t *testing.T, resp *http.Response, want int, body []byte) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status=%d want=%d body=%s", resp.StatusCode, want, string(body))
	}
}

func mustDecodeMessage(t *testing.T, body []byte) MessageResponse {
	t.Helper()
	var v MessageResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(MessageResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeCustomers(t *testing.T, body []byte) []CustomerDTO {
	t.Helper()
	var v []CustomerDTO
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal([]CustomerDTO) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeProducts(t *testing.T, body []byte) []ProductDTO {
	t.Helper()
	var v []ProductDTO
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal([]ProductDTO) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeOrders(t *testing.T, body []byte) []OrderDTO {
	t.Helper()
	var v []OrderDTO
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal([]OrderDTO) failed: %v body=%s", err, string(body))
	}
	return v
}

func toStr(v int64) string {
	return strconv.FormatInt(v, 10)
}

// 毎回ユニークなemailを作る（再実行しても衝突しない）
func uniqueEmail() string {
	return "e2e-" + uuid.NewString() + "@example.com"
}
