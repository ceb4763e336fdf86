package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multimedia-api/internal/config"
	"multimedia-api/pkg/container"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type envelope struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Stack   string          `json:"stack"`
}

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func newTestClient(t *testing.T, env string) *apiClient {
	t.Helper()

	cfg := &config.Config{
		App:   config.AppConfig{Name: "API de Multimídia", Environment: env, Port: "0", Version: "1.0.0"},
		Store: config.StoreConfig{Driver: config.StoreDriverMemory},
		Redis: config.RedisConfig{Enabled: false},
		Auth:  config.AuthConfig{Username: "admin", Password: "password"},
		Cache: config.CacheConfig{TTL: time.Minute},
	}
	c, err := container.NewContainerWithConfig(cfg)
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	return &apiClient{t: t, router: SetupRouter(c)}
}

func (a *apiClient) do(method, path string, body interface{}, authed bool) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.SetBasicAuth("admin", "password")
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func (a *apiClient) createAuthor(nome string, extra map[string]interface{}) string {
	a.t.Helper()
	body := map[string]interface{}{"nome": nome}
	for k, v := range extra {
		body[k] = v
	}
	w, env := a.do(http.MethodPost, "/authors", body, true)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	var out map[string]interface{}
	require.NoError(a.t, json.Unmarshal(env.Data, &out))
	return out["_id"].(string)
}

func decodeObject(t *testing.T, raw json.RawMessage) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func decodeList(t *testing.T, raw json.RawMessage) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestAuthors_ListSortedByNome(t *testing.T) {
	api := newTestClient(t, "test")
	api.createAuthor("Zeca", nil)
	api.createAuthor("Ana", nil)

	w, env := api.do(http.MethodGet, "/authors", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)

	authors := decodeList(t, env.Data)
	assert.Equal(t, "Ana", authors[0]["nome"])
	assert.Equal(t, "Zeca", authors[1]["nome"])
}

func TestAccessGate(t *testing.T) {
	api := newTestClient(t, "test")

	t.Run("Write without credentials", func(t *testing.T) {
		w, env := api.do(http.MethodPost, "/authors", map[string]string{"nome": "X"}, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "credentials required", env.Error)
		assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))

		_, list := api.do(http.MethodGet, "/authors", nil, false)
		assert.Equal(t, 0, *list.Count, "nothing was created")
	})

	t.Run("Wrong password", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/books/"+uuid.NewString(), nil)
		req.SetBasicAuth("admin", "nope")
		w := httptest.NewRecorder()
		api.router.ServeHTTP(w, req)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid credentials", env.Error)
	})

	t.Run("Malformed header is invalid credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/cds/"+uuid.NewString(), nil)
		req.Header.Set("Authorization", "Basic !!!not-base64")
		w := httptest.NewRecorder()
		api.router.ServeHTTP(w, req)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid credentials", env.Error)
	})

	t.Run("Reads are public", func(t *testing.T) {
		for _, path := range []string{"/authors", "/books", "/cds", "/dvds"} {
			w, env := api.do(http.MethodGet, path, nil, false)
			assert.Equal(t, http.StatusOK, w.Code, path)
			assert.True(t, env.Success, path)
		}
	})
}

func TestBooks_RoundTripWithAuthor(t *testing.T) {
	api := newTestClient(t, "test")
	authorID := api.createAuthor("Machado de Assis", map[string]interface{}{
		"bio":           "Fundador da ABL",
		"nacionalidade": "Brasileira",
	})

	w, env := api.do(http.MethodPost, "/books", map[string]interface{}{
		"titulo":    "Dom Casmurro",
		"categoria": "Romance",
		"descricao": "Bentinho e Capitu",
		"preco":     29.9,
		"autor":     authorID,
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decodeObject(t, env.Data)
	autor := created["autor"].(map[string]interface{})
	assert.Equal(t, "Machado de Assis", autor["nome"])
	assert.Equal(t, "Brasileira", autor["nacionalidade"])
	assert.NotContains(t, autor, "bio", "create uses the summary projection")
	assert.Equal(t, 29.9, created["preco"])

	bookID := created["_id"].(string)
	w, env = api.do(http.MethodGet, "/books/"+bookID, nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	fetched := decodeObject(t, env.Data)
	autor = fetched["autor"].(map[string]interface{})
	assert.Equal(t, "Fundador da ABL", autor["bio"], "get uses the detail projection")
	assert.Equal(t, "Bentinho e Capitu", fetched["descricao"])

	// list: summary projection
	_, env = api.do(http.MethodGet, "/books", nil, false)
	books := decodeList(t, env.Data)
	require.Len(t, books, 1)
	assert.NotContains(t, books[0]["autor"].(map[string]interface{}), "bio")
}

func TestBooks_PartialUpdate(t *testing.T) {
	api := newTestClient(t, "test")
	authorID := api.createAuthor("Jorge Amado", nil)

	_, env := api.do(http.MethodPost, "/books", map[string]interface{}{
		"titulo": "Capitães da Areia", "categoria": "Romance", "preco": 35, "autor": authorID,
	}, true)
	bookID := decodeObject(t, env.Data)["_id"].(string)

	w, env := api.do(http.MethodPatch, "/books/"+bookID, map[string]interface{}{"preco": 40}, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated := decodeObject(t, env.Data)
	assert.Equal(t, "Capitães da Areia", updated["titulo"])
	assert.Equal(t, "Romance", updated["categoria"])
	assert.Equal(t, float64(40), updated["preco"])
	assert.Equal(t, "Jorge Amado", updated["autor"].(map[string]interface{})["nome"])

	w, env = api.do(http.MethodPut, "/books/"+bookID, map[string]interface{}{"titulo": "  "}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error updating book", env.Error)
	assert.Contains(t, env.Message, "Título do livro é obrigatório")
}

func TestCDs_NegativePriceRejected(t *testing.T) {
	api := newTestClient(t, "test")
	authorID := api.createAuthor("Caetano Veloso", nil)

	w, env := api.do(http.MethodPost, "/cds", map[string]interface{}{
		"titulo": "Transa", "genero": "MPB", "preco": -1, "autor": authorID,
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "error creating cd", env.Error)
	assert.Contains(t, env.Message, "Preço não pode ser negativo")

	_, list := api.do(http.MethodGet, "/cds", nil, false)
	assert.Equal(t, 0, *list.Count)
}

func TestCDs_ExposeGenero(t *testing.T) {
	api := newTestClient(t, "test")
	authorID := api.createAuthor("Gal Costa", nil)

	w, env := api.do(http.MethodPost, "/cds", map[string]interface{}{
		"titulo": "Fa-Tal", "genero": "MPB", "descricao": "ignored", "autor": authorID,
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	cd := decodeObject(t, env.Data)
	assert.Equal(t, "MPB", cd["genero"])
	assert.NotContains(t, cd, "categoria")
	assert.NotContains(t, cd, "descricao")
}

func TestDVDs_DeleteThenGet(t *testing.T) {
	api := newTestClient(t, "test")
	authorID := api.createAuthor("Walter Salles", nil)

	_, env := api.do(http.MethodPost, "/dvds", map[string]interface{}{
		"titulo": "Central do Brasil", "categoria": "Drama", "autor": authorID,
	}, true)
	dvdID := decodeObject(t, env.Data)["_id"].(string)

	w, env := api.do(http.MethodDelete, "/dvds/"+dvdID, nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Message)
	assert.JSONEq(t, `{}`, string(env.Data))

	w, env = api.do(http.MethodGet, "/dvds/"+dvdID, nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "dvd not found", env.Error)

	w, env = api.do(http.MethodDelete, "/dvds/"+dvdID, nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "dvd not found", env.Error)
}

func TestDanglingAuthorReference(t *testing.T) {
	api := newTestClient(t, "test")

	w, env := api.do(http.MethodPost, "/books", map[string]interface{}{
		"titulo": "Órfão", "autor": uuid.NewString(),
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	bookID := decodeObject(t, env.Data)["_id"].(string)
	w, env = api.do(http.MethodGet, "/books/"+bookID, nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	book := decodeObject(t, env.Data)
	v, ok := book["autor"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestDeletingAuthorLeavesMediaIntact(t *testing.T) {
	api := newTestClient(t, "test")
	authorID := api.createAuthor("Chico Buarque", nil)

	_, env := api.do(http.MethodPost, "/cds", map[string]interface{}{"titulo": "Construção", "autor": authorID}, true)
	cdID := decodeObject(t, env.Data)["_id"].(string)

	w, _ := api.do(http.MethodDelete, "/authors/"+authorID, nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = api.do(http.MethodGet, "/cds/"+cdID, nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeObject(t, env.Data)["autor"])
}

func TestMalformedIDIsNotFound(t *testing.T) {
	api := newTestClient(t, "test")

	for _, path := range []string{"/authors/abc", "/books/abc", "/cds/123", "/dvds/not-an-id"} {
		w, env := api.do(http.MethodGet, path, nil, false)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.False(t, env.Success, path)
		assert.NotEqual(t, "route not found", env.Error, path)
	}
}

func TestRouteNotFound(t *testing.T) {
	api := newTestClient(t, "test")

	w, env := api.do(http.MethodGet, "/magazines", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "route not found", env.Error)
	assert.Contains(t, env.Message, "/magazines")
}

func TestDiscoveryAndHealth(t *testing.T) {
	api := newTestClient(t, "test")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	endpoints := doc["endpoints"].(map[string]interface{})
	assert.Equal(t, "/dvds", endpoints["dvds"])
	auth := doc["authentication"].(map[string]interface{})
	assert.Equal(t, "Basic Authentication", auth["type"])

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPanicBecomesEnvelope(t *testing.T) {
	for _, tc := range []struct {
		env       string
		wantStack bool
	}{
		{env: "development", wantStack: true},
		{env: "production", wantStack: false},
	} {
		t.Run(tc.env, func(t *testing.T) {
			api := newTestClient(t, tc.env)
			api.router.GET("/boom", func(*gin.Context) { panic("kaboom") })

			w, env := api.do(http.MethodGet, "/boom", nil, false)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.False(t, env.Success)
			assert.Equal(t, "kaboom", env.Message)
			assert.Equal(t, tc.wantStack, env.Stack != "")
		})
	}
}

func TestBooks_UppercaseAuthorID(t *testing.T) {
	api := newTestClient(t, "test")
	authorID := api.createAuthor("Graciliano Ramos", nil)

	w, env := api.do(http.MethodPost, "/books", map[string]interface{}{
		"titulo": "Vidas Secas", "autor": strings.ToUpper(authorID),
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	autor := decodeObject(t, env.Data)["autor"].(map[string]interface{})
	assert.Equal(t, authorID, autor["_id"])
	assert.Equal(t, "Graciliano Ramos", autor["nome"])
}

func TestBooks_UpdateWithNilAuthorRejected(t *testing.T) {
	api := newTestClient(t, "test")
	authorID := api.createAuthor("Rachel de Queiroz", nil)

	_, env := api.do(http.MethodPost, "/books", map[string]interface{}{
		"titulo": "O Quinze", "autor": authorID,
	}, true)
	bookID := decodeObject(t, env.Data)["_id"].(string)

	w, env := api.do(http.MethodPut, "/books/"+bookID, map[string]interface{}{"autor": uuid.Nil.String()}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error updating book", env.Error)
	assert.Contains(t, env.Message, "Autor é obrigatório")

	_, env = api.do(http.MethodGet, "/books/"+bookID, nil, false)
	assert.Equal(t, authorID, decodeObject(t, env.Data)["autor"].(map[string]interface{})["_id"])
}

func TestHeadAndPatchRoutes(t *testing.T) {
	api := newTestClient(t, "test")
	authorID := api.createAuthor("Lygia Fagundes Telles", nil)

	for _, path := range []string{"/authors", "/authors/" + authorID, "/books", "/cds", "/dvds"} {
		req := httptest.NewRequest(http.MethodHead, path, nil)
		w := httptest.NewRecorder()
		api.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w, env := api.do(http.MethodPatch, "/authors/"+authorID, map[string]string{"bio": "Paulistana"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "credentials required", env.Error)

	w, env = api.do(http.MethodPatch, "/authors/"+authorID, map[string]string{"bio": "Paulistana"}, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeObject(t, env.Data)
	assert.Equal(t, "Paulistana", updated["bio"])
	assert.Equal(t, "Lygia Fagundes Telles", updated["nome"])
}

func TestTrailingSlashIsSameRoute(t *testing.T) {
	api := newTestClient(t, "test")
	authorID := api.createAuthor("Érico Veríssimo", nil)

	w, env := api.do(http.MethodPost, "/books/", map[string]interface{}{
		"titulo": "O Tempo e o Vento", "autor": authorID,
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bookID := decodeObject(t, env.Data)["_id"].(string)

	w, env = api.do(http.MethodGet, "/books/"+bookID+"/", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "O Tempo e o Vento", decodeObject(t, env.Data)["titulo"])

	w, env = api.do(http.MethodGet, "/authors/", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, *env.Count)

	w, env = api.do(http.MethodPost, "/cds/", map[string]interface{}{"titulo": "X", "autor": authorID}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "gate still applies")
	assert.Equal(t, "credentials required", env.Error)

	_, env = api.do(http.MethodGet, "/books", nil, false)
	assert.Equal(t, 1, *env.Count, "the create ran once")

	w, env = api.do(http.MethodGet, "/magazines/", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "route not found", env.Error)
}
