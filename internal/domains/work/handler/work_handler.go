package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/work"
	"catalog-backend/internal/shared/response"
	"catalog-backend/pkg/logger"
)

type WorkHandler struct {
	service       work.Service
	maxUploadSize int64
}

func NewWorkHandler(svc work.Service, maxUploadSizeMB int64) *WorkHandler {
	return &WorkHandler{
		service:       svc,
		maxUploadSize: maxUploadSizeMB << 20,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/works
// ════════════════════════════════════════════════════════════════

func (h *WorkHandler) Create(c *gin.Context) {
	var req work.Payload

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}

	w, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, w)
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /api/works
// ════════════════════════════════════════════════════════════════

func (h *WorkHandler) List(c *gin.Context) {
	filter := work.Filter{
		Search: c.Query("search"),
		Name:   c.Query("name"),
		Genre:  c.Query("genre"),
		Year:   queryInt(c, "year"),
	}
	if limit := queryInt(c, "limit"); limit != nil {
		filter.Limit = *limit
	}

	works, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, works)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /api/works/:id
// ════════════════════════════════════════════════════════════════

func (h *WorkHandler) GetByID(c *gin.Context) {
	w, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, w)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/works/:id
// ════════════════════════════════════════════════════════════════

func (h *WorkHandler) Update(c *gin.Context) {
	var req work.Payload

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}

	w, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, w)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/works/:id
// ════════════════════════════════════════════════════════════════

func (h *WorkHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	response.Message(c, "Work deleted successfully")
}

// ════════════════════════════════════════════════════════════════
// UPLOAD: POST /api/works/:id/photo
// ════════════════════════════════════════════════════════════════

func (h *WorkHandler) UploadCover(c *gin.Context) {
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

	url, err := h.service.AttachCover(c.Request.Context(), c.Param("id"), data, contentType, fileHeader.Filename)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, gin.H{"cover_url": url})
}

func (h *WorkHandler) respondError(c *gin.Context, err error) {
	status := work.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("work request failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.ErrorResponse(c, status, work.ToErrorCode(err), err.Error())
}

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
