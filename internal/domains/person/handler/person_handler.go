package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/person"
	"catalog-backend/internal/shared/response"
	"catalog-backend/pkg/logger"
)

type PersonHandler struct {
	service       person.Service
	maxUploadSize int64
}

func NewPersonHandler(svc person.Service, maxUploadSizeMB int64) *PersonHandler {
	return &PersonHandler{
		service:       svc,
		maxUploadSize: maxUploadSizeMB << 20,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/people
// ════════════════════════════════════════════════════════════════

func (h *PersonHandler) Create(c *gin.Context) {
	var req person.Payload

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, p)
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /api/people
// ════════════════════════════════════════════════════════════════

func (h *PersonHandler) List(c *gin.Context) {
	filter := person.Filter{
		Search:      c.Query("search"),
		Name:        c.Query("name"),
		Nationality: c.Query("nationality"),
		AgeMin:      queryInt(c, "age_min"),
		AgeMax:      queryInt(c, "age_max"),
	}
	if limit := queryInt(c, "limit"); limit != nil {
		filter.Limit = *limit
	}

	people, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, people)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /api/people/:id
// ════════════════════════════════════════════════════════════════

func (h *PersonHandler) GetByID(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, p)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/people/:id
// ════════════════════════════════════════════════════════════════

func (h *PersonHandler) Update(c *gin.Context) {
	var req person.Payload

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, p)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/people/:id
// ════════════════════════════════════════════════════════════════

func (h *PersonHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	response.Message(c, "Person deleted successfully")
}

// ════════════════════════════════════════════════════════════════
// UPLOAD: POST /api/people/:id/photo
// ════════════════════════════════════════════════════════════════

func (h *PersonHandler) UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file in form data")
		return
	}
	if fileHeader.Size > h.maxUploadSize {
		response.BadRequest(c, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Unable to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, "Unable to read uploaded file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.service.AttachPhoto(c.Request.Context(), c.Param("id"), data, contentType, fileHeader.Filename)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, gin.H{"photo_url": url})
}

func (h *PersonHandler) respondError(c *gin.Context, err error) {
	status := person.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("person request failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.ErrorResponse(c, status, person.ToErrorCode(err), err.Error())
}

// queryInt parses an optional integer query parameter.
// Unparseable values are treated as absent, matching lenient query handling.
func queryInt(c *gin.Context, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
