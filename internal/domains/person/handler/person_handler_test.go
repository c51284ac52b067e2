package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/person"
	"catalog-backend/internal/domains/person/repository"
	"catalog-backend/internal/domains/person/service"
	"catalog-backend/internal/infrastructure/docstore"
	"catalog-backend/internal/infrastructure/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := docstore.NewMemoryStore()
	require.NoError(t, store.EnsureCollection(context.Background(), "people"))

	blob, err := storage.NewDiskStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	svc := service.NewPersonService(repository.NewDocstoreRepository(store, nil), blob)
	h := NewPersonHandler(svc, 10)

	router := gin.New()
	actors := router.Group("/api/people")
	{
		actors.POST("", h.Create)
		actors.GET("", h.List)
		actors.GET("/:id", h.GetByID)
		actors.PUT("/:id", h.Update)
		actors.DELETE("/:id", h.Delete)
		actors.POST("/:id/photo", h.UploadPhoto)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createActor(t *testing.T, router *gin.Engine, body string) person.Person {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/people", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var p person.Person
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	return p
}

func TestPersonHandler_Create(t *testing.T) {
	router := newTestRouter(t)

	p := createActor(t, router, `{"name":"Jean Reno","age":76,"nationality":"French"}`)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Jean Reno", p.Name)
	require.NotNil(t, p.Age)
	assert.Equal(t, 76, *p.Age)
	assert.Equal(t, []string{}, p.WorkIDs)
}

func TestPersonHandler_Create_MissingName(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/people", `{"age":30}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NAME_REQUIRED", body.Error.Code)
}

func TestPersonHandler_Create_MalformedJSON(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/people", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPersonHandler_GetByID_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/people/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PERSON_NOT_FOUND")
}

func TestPersonHandler_List_Filters(t *testing.T) {
	router := newTestRouter(t)

	createActor(t, router, `{"name":"Marion Cotillard","age":48,"nationality":"French"}`)
	createActor(t, router, `{"name":"Tom Hanks","age":67,"nationality":"American"}`)

	rec := doJSON(t, router, http.MethodGet, "/api/people?nationality=french", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var people []person.Person
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &people))
	require.Len(t, people, 1)
	assert.Equal(t, "Marion Cotillard", people[0].Name)

	rec = doJSON(t, router, http.MethodGet, "/api/people?age_min=50&age_max=70", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &people))
	require.Len(t, people, 1)
	assert.Equal(t, "Tom Hanks", people[0].Name)
}

func TestPersonHandler_List_EmptyIsJSONArray(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/people", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestPersonHandler_Update(t *testing.T) {
	router := newTestRouter(t)

	created := createActor(t, router, `{"name":"Jean Reno","age":76}`)

	rec := doJSON(t, router, http.MethodPut, "/api/people/"+created.ID, `{"age":77}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated person.Person
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.NotNil(t, updated.Age)
	assert.Equal(t, 77, *updated.Age)
	assert.Equal(t, "Jean Reno", updated.Name)
}

func TestPersonHandler_Update_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/people/nope", `{"age":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPersonHandler_Delete(t *testing.T) {
	router := newTestRouter(t)

	created := createActor(t, router, `{"name":"Jean Reno"}`)

	rec := doJSON(t, router, http.MethodDelete, "/api/people/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Person deleted successfully"}`, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/people/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func uploadPhoto(t *testing.T, router *gin.Engine, id, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/people/"+id+"/photo", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPersonHandler_UploadPhoto(t *testing.T) {
	router := newTestRouter(t)

	created := createActor(t, router, `{"name":"Jean Reno"}`)

	rec := uploadPhoto(t, router, created.ID, "photo.png", "image/png", []byte("png-bytes"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		PhotoURL string `json:"photo_url"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, strings.HasPrefix(body.PhotoURL, "/uploads/person_"+created.ID), body.PhotoURL)

	// The record now carries the URL
	getRec := doJSON(t, router, http.MethodGet, "/api/people/"+created.ID, "")
	require.Equal(t, http.StatusOK, getRec.Code)
	var p person.Person
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &p))
	require.NotNil(t, p.PhotoURL)
	assert.Equal(t, body.PhotoURL, *p.PhotoURL)
}

func TestPersonHandler_UploadPhoto_RejectsNonImage(t *testing.T) {
	router := newTestRouter(t)

	created := createActor(t, router, `{"name":"Jean Reno"}`)

	rec := uploadPhoto(t, router, created.ID, "notes.txt", "text/plain", []byte("text"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNSUPPORTED_MEDIA_TYPE")
}

func TestPersonHandler_UploadPhoto_UnknownActor(t *testing.T) {
	router := newTestRouter(t)

	rec := uploadPhoto(t, router, "nope", "photo.png", "image/png", []byte("png"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPersonHandler_UploadPhoto_MissingFile(t *testing.T) {
	router := newTestRouter(t)

	created := createActor(t, router, `{"name":"Jean Reno"}`)

	req := httptest.NewRequest(http.MethodPost, "/api/people/"+created.ID+"/photo", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
