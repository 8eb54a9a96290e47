package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	api "github.com/lflopes1997/Projeto-ControleEstoque/internal/http"
	handler "github.com/lflopes1997/Projeto-ControleEstoque/internal/http/handlers"
	"github.com/lflopes1997/Projeto-ControleEstoque/internal/repo"
)

var productRepo *repo.InMemoryProductRepository

func init() {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)
}

func clearAllProducts() {
	productRepo.Clear()
}

func newRouter() http.Handler {
	return api.NewRouter(api.RouterConfig{})
}

func doRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/produtos", p)
}

func decodeError(w *httptest.ResponseRecorder) handler.ErrorResponse {
	var resp handler.ErrorResponse
	json.NewDecoder(w.Body).Decode(&resp)
	return resp
}
