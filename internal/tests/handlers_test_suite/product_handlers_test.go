package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	handler "github.com/lflopes1997/Projeto-ControleEstoque/internal/http/handlers"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Caderno", Quantity: 3, Price: 12.9})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.ID == 0 {
		t.Errorf("expected a store-assigned id, got %d", resp.ID)
	}
	if resp.Name != "Caderno" {
		t.Errorf("expected name 'Caderno', got %v", resp.Name)
	}
	if resp.Quantity != 3 {
		t.Errorf("expected quantity 3, got %v", resp.Quantity)
	}
	if resp.Price != 12.9 {
		t.Errorf("expected price 12.9, got %v", resp.Price)
	}
}

func TestCreateProductHandler_AssignsUniqueIDs(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		w := createProduct(r, handler.ProductRequest{Name: fmt.Sprintf("Item %d", i), Quantity: 1, Price: 1})
		var resp handler.ProductResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if seen[resp.ID] {
			t.Fatalf("id %d assigned twice", resp.ID)
		}
		seen[resp.ID] = true
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	badJSON := `{nome: "Invalid" preco: 100 "}` // missing comma
	req := httptest.NewRequest(http.MethodPost, "/produtos", bytes.NewBufferString(badJSON))
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
	if decodeError(w).Error == "" {
		t.Error("expected a JSON error body")
	}
}

func TestGetProductsHandler_EmptyList(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := doRequest(r, http.MethodGet, "/produtos", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestGetProductByIDHandler_RoundTrip(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Borracha", Quantity: 7, Price: 1.5})
	var created handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/produtos/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var fetched handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&fetched); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if fetched != created {
		t.Errorf("expected %+v, got %+v", created, fetched)
	}
}

func TestGetProductByIDHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := doRequest(r, http.MethodGet, "/produtos/999", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}
	if resp := decodeError(w); resp.Error != "Não encontrado" {
		t.Errorf("expected error 'Não encontrado', got %q", resp.Error)
	}
}

func TestGetProductByIDHandler_NonNumericID(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := doRequest(r, http.MethodGet, "/produtos/abc", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found for non-numeric id, got %d", w.Code)
	}
	if resp := decodeError(w); resp.Error != "Não encontrado" {
		t.Errorf("expected error 'Não encontrado', got %q", resp.Error)
	}
}

func TestUpdateProductHandler_FullReplacement(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Lápis", Quantity: 10, Price: 0.9})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doRequest(r, http.MethodPut, fmt.Sprintf("/produtos/%d", created.ID),
		handler.ProductRequest{Name: "Lápis HB", Quantity: 4, Price: 1.2})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var updated handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	want := handler.ProductResponse{ID: created.ID, Name: "Lápis HB", Quantity: 4, Price: 1.2}
	if updated != want {
		t.Errorf("expected %+v, got %+v", want, updated)
	}
}

func TestUpdateProductHandler_MissingID(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := doRequest(r, http.MethodPut, "/produtos/999",
		handler.ProductRequest{Name: "Fantasma", Quantity: 1, Price: 1})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on update of missing id, got %d", w.Code)
	}
	if decodeError(w).Error == "" {
		t.Error("expected a JSON error body")
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Régua", Quantity: 2, Price: 3.5})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doRequest(r, http.MethodDelete, fmt.Sprintf("/produtos/%d", created.ID), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", w.Body.String())
	}

	// A second delete of the same id must not succeed.
	w = doRequest(r, http.MethodDelete, fmt.Sprintf("/produtos/%d", created.ID), nil)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on repeated delete, got %d", w.Code)
	}
}

func TestEndToEndScenario(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	// Empty list to start with.
	w := doRequest(r, http.MethodGet, "/produtos", nil)
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Fatalf("expected empty list, got %q", body)
	}

	// Create.
	w = createProduct(r, handler.ProductRequest{Name: "Caneta", Quantity: 10, Price: 2.5})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)
	if created.ID != 1 {
		t.Fatalf("expected first assigned id 1, got %d", created.ID)
	}

	// List has exactly one item.
	w = doRequest(r, http.MethodGet, "/produtos", nil)
	var list []handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&list)
	if len(list) != 1 {
		t.Fatalf("expected one product, got %d", len(list))
	}

	// Full-replacement update keeps the price because it is resent.
	w = doRequest(r, http.MethodPut, "/produtos/1",
		handler.ProductRequest{Name: "Caneta", Quantity: 5, Price: 2.5})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/produtos/1", nil)
	var fetched handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&fetched)
	if fetched.Quantity != 5 || fetched.Price != 2.5 {
		t.Errorf("expected quantity 5 and price 2.5, got %+v", fetched)
	}

	// Delete, then the id is gone.
	w = doRequest(r, http.MethodDelete, "/produtos/1", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}
	w = doRequest(r, http.MethodGet, "/produtos/1", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	r := newRouter()

	w := doRequest(r, http.MethodGet, "/health", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if !resp.OK {
		t.Error("expected ok true")
	}
}

func TestRootHandler(t *testing.T) {
	r := newRouter()

	w := doRequest(r, http.MethodGet, "/", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Controle de Estoque") {
		t.Errorf("unexpected banner: %q", w.Body.String())
	}
}
