package gallery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/api"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/logger"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/media"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store   Store
	storage media.Storage
}

func NewHandler(store Store, storage media.Storage) *Handler {
	return &Handler{store: store, storage: storage}
}

// Upload godoc
// @Summary      Upload gallery photo
// @Tags         gallery
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        photo  formData  file  true  "Photo"
// @Success      201  {object}  api.Response
// @Failure      400  {object}  api.Response
// @Failure      500  {object}  api.Response
// @Router       /api/gallery [post]
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "No photo uploaded")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "Failed to read photo")
		return
	}
	defer file.Close()

	ctx := c.Request.Context()

	asset, err := h.storage.Upload(ctx, file, media.FolderGallery)
	if err != nil {
		logger.Errorf("Gallery upload failed: %v", err)
		api.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	p := &Photo{
		PhotoURL: asset.URL,
		PublicID: asset.PublicID,
	}

	if err := h.store.Insert(ctx, p); err != nil {
		logger.Errorf("Failed to save gallery photo: %v", err)
		if derr := h.storage.Destroy(ctx, asset.PublicID); derr != nil {
			logger.Errorf("Failed to remove orphaned gallery asset %s: %v", asset.PublicID, derr)
		}
		api.Fail(c, http.StatusInternalServerError, "Failed to save photo")
		return
	}

	metrics.RecordGalleryPhoto("uploaded")
	api.OK(c, http.StatusCreated, p)
}

// List godoc
// @Summary      List gallery photos
// @Description  Newest first. The landing page passes ?limit=N for its preview.
// @Tags         gallery
// @Produce      json
// @Param        limit  query  int  false  "Max photos to return"
// @Success      200  {object}  api.Response
// @Failure      500  {object}  api.Response
// @Router       /api/gallery [get]
func (h *Handler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			api.Fail(c, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	photos, err := h.store.FindRecent(c.Request.Context(), limit)
	if err != nil {
		logger.Errorf("Failed to list gallery: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to load gallery")
		return
	}

	api.OK(c, http.StatusOK, photos)
}

// Delete godoc
// @Summary      Delete gallery photo
// @Description  Destroys the hosted asset first, then removes the record.
// @Tags         gallery
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Photo ID"
// @Success      200  {object}  api.Response
// @Failure      404  {object}  api.Response
// @Failure      500  {object}  api.Response
// @Router       /api/gallery/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	p, err := h.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.Fail(c, http.StatusNotFound, "Photo not found")
			return
		}
		logger.Errorf("Failed to load photo %s: %v", id, err)
		api.Fail(c, http.StatusInternalServerError, "Failed to load photo")
		return
	}

	// Upstream first: if the asset delete fails we keep the record so
	// the asset can be found and retried instead of orphaned.
	if err := h.storage.Destroy(ctx, p.PublicID); err != nil && !errors.Is(err, media.ErrAssetNotFound) {
		logger.Errorf("Failed to destroy asset %s: %v", p.PublicID, err)
		api.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.store.Delete(ctx, id); err != nil {
		logger.Errorf("Failed to delete photo record %s: %v", id, err)
		api.Fail(c, http.StatusInternalServerError, "Failed to delete photo")
		return
	}

	metrics.RecordGalleryPhoto("deleted")
	api.Message(c, http.StatusOK, "Photo deleted")
}
