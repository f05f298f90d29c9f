package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopkeep/storefront/internal/core/ports"
)

// SiteHandler serves the maintenance flag, the announcement and the
// operation log.
type SiteHandler struct {
	site  ports.SiteService
	audit ports.AuditLog
}

func NewSiteHandler(site ports.SiteService, audit ports.AuditLog) *SiteHandler {
	return &SiteHandler{site: site, audit: audit}
}

// GetMaintenance handles GET /api/maintenance. It never fails.
//
// @Summary      Maintenance flag
// @Tags         site
// @Produce      json
// @Success      200  {object}  maintenanceResponse
// @Router       /api/maintenance [get]
func (h *SiteHandler) GetMaintenance(c echo.Context) error {
	return c.JSON(http.StatusOK, maintenanceResponse{Maintenance: h.site.Maintenance(c.Request().Context())})
}

// SetMaintenance handles POST /api/maintenance.
//
// @Summary      Toggle maintenance mode
// @Tags         site
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      maintenanceRequest  true  "New flag"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/maintenance [post]
func (h *SiteHandler) SetMaintenance(c echo.Context) error {
	var req maintenanceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	if err := h.site.SetMaintenance(c.Request().Context(), req.Maintenance); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "無法更新維護模式"})
	}

	state := "關閉"
	if req.Maintenance {
		state = "開啟"
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "維護模式已 " + state})
}

// GetAnnouncement handles GET /api/announcement. It never fails.
//
// @Summary      Announcement banner
// @Tags         site
// @Produce      json
// @Success      200  {object}  announcementResponse
// @Router       /api/announcement [get]
func (h *SiteHandler) GetAnnouncement(c echo.Context) error {
	return c.JSON(http.StatusOK, announcementResponse{Text: h.site.Announcement(c.Request().Context())})
}

// SetAnnouncement handles POST /api/announcement.
//
// @Summary      Replace the announcement
// @Tags         site
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      announcementRequest  true  "Banner text"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/announcement [post]
func (h *SiteHandler) SetAnnouncement(c echo.Context) error {
	var req announcementRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	if err := h.site.SetAnnouncement(c.Request().Context(), req.Text); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "無法更新公告"})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "公告已更新"})
}

// Logs handles GET /api/logs: the operation log, newest first.
//
// @Summary      Operation log
// @Tags         site
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/logs [get]
func (h *SiteHandler) Logs(c echo.Context) error {
	entries := h.audit.List()
	if entries == nil {
		entries = []string{}
	}
	return c.JSON(http.StatusOK, entries)
}
