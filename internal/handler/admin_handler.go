package handler

import (
	"context"
	"net/http"

	"iot-fleet-inventory/internal/logger"
	"iot-fleet-inventory/internal/model"
	apperrors "iot-fleet-inventory/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminStore is the storage contract the admin routes depend on.
type AdminStore interface {
	Create(ctx context.Context, admin *model.Admin) error
	List(ctx context.Context) ([]model.Admin, error)
	GetByID(ctx context.Context, id uint) (*model.Admin, error)
	Update(ctx context.Context, id uint, admin *model.Admin) error
	Delete(ctx context.Context, id uint) error
}

type AdminHandler struct {
	store AdminStore
}

func NewAdminHandler(store AdminStore) *AdminHandler {
	return &AdminHandler{store: store}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admins := router.Group("/admins")
	{
		admins.POST("", h.Create)
		admins.GET("", h.List)
		admins.GET("/:id", h.Get)
		admins.PUT("/:id", h.Update)
		admins.DELETE("/:id", h.Delete)
	}
}

type adminRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Mail    string `json:"mail"`
	Role    string `json:"role"`
}

// Create godoc
//
//	@Summary	Create a new admin
//	@Tags		admins
//	@Accept		json
//	@Produce	json
//	@Param		admin	body		adminRequest	true	"Admin fields"
//	@Success	201		{object}	model.Admin
//	@Failure	500		{object}	map[string]string
//	@Router		/admins [post]
func (h *AdminHandler) Create(c *gin.Context) {
	var req adminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin := &model.Admin{
		Name:    req.Name,
		Surname: req.Surname,
		Mail:    req.Mail,
		Role:    req.Role,
	}
	if err := h.store.Create(c.Request.Context(), admin); err != nil {
		logger.Error("Failed to create admin", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to create admin")
		return
	}

	c.JSON(http.StatusCreated, admin)
}

// List godoc
//
//	@Summary	Get all admins
//	@Tags		admins
//	@Produce	json
//	@Success	200	{array}	model.Admin
//	@Router		/admins [get]
func (h *AdminHandler) List(c *gin.Context) {
	admins, err := h.store.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list admins", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch admins")
		return
	}

	c.JSON(http.StatusOK, admins)
}

// Get godoc
//
//	@Summary	Get an admin by ID
//	@Tags		admins
//	@Produce	json
//	@Param		id	path		int	true	"Admin ID"
//	@Success	200	{object}	model.Admin
//	@Failure	404	{object}	map[string]string
//	@Router		/admins/{id} [get]
func (h *AdminHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	admin, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Admin not found")
			return
		}
		logger.Error("Failed to get admin", zap.Uint("idadmin", id), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch admin")
		return
	}

	c.JSON(http.StatusOK, admin)
}

// Update godoc
//
//	@Summary	Update an admin
//	@Tags		admins
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Admin ID"
//	@Param		admin	body		adminRequest	true	"Admin fields"
//	@Success	200		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/admins/{id} [put]
func (h *AdminHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req adminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin := &model.Admin{
		Name:    req.Name,
		Surname: req.Surname,
		Mail:    req.Mail,
		Role:    req.Role,
	}
	if err := h.store.Update(c.Request.Context(), id, admin); err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Admin not found")
			return
		}
		logger.Error("Failed to update admin", zap.Uint("idadmin", id), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to update admin")
		return
	}

	messageResponse(c, "Admin updated successfully")
}

// Delete godoc
//
//	@Summary	Delete an admin
//	@Tags		admins
//	@Param		id	path	int	true	"Admin ID"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Router		/admins/{id} [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Admin not found")
			return
		}
		logger.Error("Failed to delete admin", zap.Uint("idadmin", id), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to delete admin")
		return
	}

	c.Status(http.StatusNoContent)
}
