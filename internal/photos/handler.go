package photos

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"photo-backend/internal/shared/server/middleware"
	"photo-backend/internal/shared/server/respond"
	"photo-backend/internal/shared/telemetry"
)

const maxUploadSize = 10 << 20 // 10MB of JSON, bounds the base64 payload

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches photo routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/photos", h.ingest)
	rg.GET("/photos/:photoId", h.get)
}

type ingestRequest struct {
	FileName    string `json:"fileName"`
	FileContent string `json:"fileContent"`
	// Image is the deprecated legacy name for FileContent; accepted but logged.
	Image string `json:"image"`
}

func (h *Handler) ingest(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	payload := req.FileContent
	if strings.TrimSpace(payload) == "" && strings.TrimSpace(req.Image) != "" {
		payload = req.Image
		telemetry.Warn("photos.deprecated_field", map[string]any{
			"field":      "image",
			"request_id": middleware.RequestIDFromContext(c),
		})
	}

	record, err := h.Svc.Ingest(c.Request.Context(), req.FileName, payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			respond.Error(c, http.StatusBadRequest, validationMessage(err))
		default:
			respond.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.Set("photoId", record.ID)
	respond.Created(c, toIngestResponse(record))
}

func (h *Handler) get(c *gin.Context) {
	photoID := c.Param("photoId")
	c.Set("photoId", photoID)

	record, downloadURL, err := h.Svc.Resolve(c.Request.Context(), photoID)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			respond.Error(c, http.StatusBadRequest, validationMessage(err))
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Photo not found")
		case errors.Is(err, ErrSigning):
			respond.Error(c, http.StatusInternalServerError, "Failed to generate download URL")
		default:
			respond.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond.OK(c, toResolveResponse(record, downloadURL))
}

// validationMessage strips the sentinel prefix so the client sees only the
// stable descriptive part ("fileContent is required").
func validationMessage(err error) string {
	msg := err.Error()
	if trimmed, ok := strings.CutPrefix(msg, ErrValidation.Error()+": "); ok {
		return trimmed
	}
	return msg
}
