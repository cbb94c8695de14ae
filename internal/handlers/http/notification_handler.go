package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/domain/ports"
	"github.com/rafabene/academia-backend/internal/handlers/dto"
	"github.com/rafabene/academia-backend/internal/handlers/middleware"
	"github.com/rafabene/academia-backend/internal/services"
)

// NotificationStreamer mantém a conexão websocket de um usuário
type NotificationStreamer interface {
	Serve(w http.ResponseWriter, r *http.Request, userID uint64) error
}

// NotificationHandler lida com a caixa de notificações do usuário autenticado
type NotificationHandler struct {
	notificationService *services.NotificationService
	streamer            NotificationStreamer
	logger              ports.Logger
}

// NewNotificationHandler cria um novo NotificationHandler
func NewNotificationHandler(
	notificationService *services.NotificationService,
	streamer NotificationStreamer,
	logger ports.Logger,
) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		streamer:            streamer,
		logger:              logger,
	}
}

// ListNotifications lista as notificações do usuário autenticado
// @Summary Minhas notificações
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Somente não lidas"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.NotificationListResponse
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var query dto.NotificationListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(err)
		return
	}

	page := query.Pagination()
	items, err := h.notificationService.ListForUser(c.Request.Context(), user.ID, query.Unread, page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	unread, err := h.notificationService.CountUnread(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	limit, offset := page.LimitOffset()
	c.JSON(http.StatusOK, dto.NotificationListResponse{
		ListResponse: dto.NewListResponse(dto.ToNotificationResponses(items), limit, offset),
		Unread:       unread,
	})
}

// CreateNotification envia uma notificação para um usuário
// @Summary Enviar notificação
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNotificationRequest true "Notificação"
// @Success 201 {object} dto.NotificationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /notifications [post]
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}

	n, err := h.notificationService.CreateNotification(c.Request.Context(), services.CreateNotificationInput{
		UserID: req.UserID,
		Type:   entities.NotificationType(req.Type),
		Title:  req.Title,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToNotificationResponse(n))
}

// MarkAsRead marca uma notificação como lida
// @Summary Marcar como lida
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da notificação"
// @Success 200 {object} dto.NotificationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	user, _ := middleware.CurrentUser(c)

	n, err := h.notificationService.MarkAsRead(c.Request.Context(), id, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationResponse(n))
}

// DeleteNotification remove uma notificação
// @Summary Remover notificação
// @Tags notifications
// @Security BearerAuth
// @Param id path int true "ID da notificação"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	user, _ := middleware.CurrentUser(c)

	if err := h.notificationService.DeleteNotification(c.Request.Context(), id, user); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Stream abre o websocket que recebe as novas notificações do usuário.
// Navegadores não enviam headers no handshake, então o token pode vir em ?token=.
// @Summary Stream de notificações (websocket)
// @Tags notifications
// @Security BearerAuth
// @Param token query string false "Token de acesso"
// @Success 101
// @Failure 401 {object} dto.ErrorResponse
// @Router /notifications/stream [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if err := h.streamer.Serve(c.Writer, c.Request, user.ID); err != nil {
		// o upgrader já respondeu ao cliente
		h.logger.Warn("websocket upgrade failed", "user_id", user.ID, "error", err)
	}
}
