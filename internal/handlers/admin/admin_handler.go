// internal/handlers/admin/admin_handler.go
package admin

import (
	"errors"
	"io"
	"net/http"

	"rainerio-service/internal/domain/seller"
	"rainerio-service/internal/domain/vehicle"
	"rainerio-service/internal/middleware"
	xerrors "rainerio-service/internal/pkg/errors"
	"rainerio-service/internal/pkg/response"
	service "rainerio-service/internal/service/admin"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *service.Service
}

func NewAdminHandler(adminService *service.Service) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// SaveVehicle creates or updates one vehicle and syncs the full collection.
func (h *AdminHandler) SaveVehicle(c *gin.Context) {
	var form vehicle.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid vehicle form", err)
		return
	}

	saved, err := h.adminService.SaveVehicle(c.Request.Context(), form, middleware.GetSellerName(c))
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "vehicle not found")
			return
		}
		response.Error(c, http.StatusBadGateway, "failed to sync vehicle collection", err)
		return
	}

	status := http.StatusOK
	if form.ID == "" {
		status = http.StatusCreated
	}
	response.Success(c, status, "vehicle saved", saved)
}

// DeleteVehicle removes one vehicle and syncs the remaining collection.
func (h *AdminHandler) DeleteVehicle(c *gin.Context) {
	id := c.Param("id")

	if err := h.adminService.RemoveVehicle(c.Request.Context(), id); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "vehicle not found")
			return
		}
		response.Error(c, http.StatusBadGateway, "failed to sync vehicle collection", err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle removed", nil)
}

// RegisterType adds a new category label to the open set.
func (h *AdminHandler) RegisterType(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	label, err := h.adminService.RegisterType(req.Name)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid category label", err)
		return
	}

	response.Success(c, http.StatusCreated, "category registered", gin.H{"type": label, "types": h.adminService.KnownTypes()})
}

// ListTypes returns every known category label.
func (h *AdminHandler) ListTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, "categories retrieved", h.adminService.KnownTypes())
}

// SaveSeller upserts one seller by id.
func (h *AdminHandler) SaveSeller(c *gin.Context) {
	var form seller.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid seller form", err)
		return
	}

	saved, err := h.adminService.SaveSeller(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, xerrors.ErrMissingPassword) {
			response.Error(c, http.StatusBadRequest, "a new seller needs a password", err)
			return
		}
		response.Error(c, http.StatusBadGateway, "failed to save seller", err)
		return
	}

	response.Success(c, http.StatusOK, "seller saved", saved)
}

// DeleteSeller removes one seller by id.
func (h *AdminHandler) DeleteSeller(c *gin.Context) {
	id := c.Param("id")

	if err := h.adminService.DeleteSeller(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusBadGateway, "failed to delete seller", err)
		return
	}

	response.Success(c, http.StatusOK, "seller removed", nil)
}

// UploadImages stores the submitted files sequentially and returns their
// public URLs. With a partial failure the successful URLs still come back
// so the admin form keeps them.
func (h *AdminHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid multipart form", err)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		response.Error(c, http.StatusBadRequest, "no images supplied", nil)
		return
	}

	images := make([]service.Image, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			response.Error(c, http.StatusBadRequest, "failed to read upload", err)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			response.Error(c, http.StatusBadRequest, "failed to read upload", err)
			return
		}
		images = append(images, service.Image{Filename: fh.Filename, Data: data})
	}

	urls, err := h.adminService.UploadImages(c.Request.Context(), images)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"message": "image upload failed partway",
			"error":   err.Error(),
			"data":    gin.H{"urls": urls},
		})
		return
	}

	response.Success(c, http.StatusCreated, "images uploaded", gin.H{"urls": urls})
}
