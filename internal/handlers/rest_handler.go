package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"socketBoard/internal/errs"
	"socketBoard/internal/logger"
	"socketBoard/internal/models"
	"socketBoard/internal/msgs"
	"socketBoard/internal/services"

	"github.com/gin-gonic/gin"
)

type RestHandler struct {
	authService        *services.AuthenticationService
	drawingService     *services.DrawingService
	fileManagerService *services.FileManagerService
	log                *logger.Logger
}

func NewRestHandler(
	authService *services.AuthenticationService,
	drawingService *services.DrawingService,
	fileManagerService *services.FileManagerService,
	log *logger.Logger,
) *RestHandler {
	return &RestHandler{
		authService:        authService,
		drawingService:     drawingService,
		fileManagerService: fileManagerService,
		log:                log,
	}
}

type credentialsRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createDrawingRequestBody struct {
	Drawing string `json:"drawing"`
}

// statusFromError maps domain error kinds to HTTP statuses. Anything
// unrecognized is a storage failure and surfaces as an opaque 500.
func (rh *RestHandler) statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrUsernameTaken),
		errors.Is(err, errs.ErrInvalidCredentials),
		errors.Is(err, errs.ErrMissingDrawingData),
		errors.Is(err, errs.ErrInvalidImageData),
		errors.Is(err, errs.ErrInvalidRequestBody),
		errors.Is(err, errs.ErrInvalidUsername),
		errors.Is(err, errs.ErrInvalidPassword),
		errors.Is(err, errs.ErrInvalidParams):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, errs.ErrDrawingNotFound), errors.Is(err, errs.ErrUserNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrExportNotConfigured):
		return http.StatusServiceUnavailable, err.Error()
	default:
		rh.log.Errorw("storage failure", "err", err)
		return http.StatusInternalServerError, "internal server error"
	}
}

func (rh *RestHandler) abortWithError(ctx *gin.Context, err error) {
	status, message := rh.statusFromError(err)
	ctx.AbortWithStatusJSON(status, gin.H{"error": message})
}

func (rh *RestHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /api/register [post]
func (rh *RestHandler) Register(ctx *gin.Context) {
	var body credentialsRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Username and password are required."})
		return
	}

	user := models.User{Username: body.Username, Password: body.Password}
	if _, registerErrs := rh.authService.Register(&user); len(registerErrs) > 0 {
		rh.abortWithError(ctx, registerErrs[0])
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": msgs.MsgUserRegistered})
}

// Login godoc
// @Summary      Login and receive a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /api/login [post]
func (rh *RestHandler) Login(ctx *gin.Context) {
	var body credentialsRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Username and password are required."})
		return
	}

	token, _, err := rh.authService.Login(body.Username, body.Password)
	if err != nil {
		rh.abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token":   token,
		"message": msgs.MsgLoginSuccessful,
	})
}

// GetAllDrawings godoc
// @Summary      List all drawings
// @Tags         drawings
// @Produce      json
// @Success      200  {array}  models.Image
// @Router       /api/drawings [get]
func (rh *RestHandler) GetAllDrawings(ctx *gin.Context) {
	images, err := rh.drawingService.GetAll()
	if err != nil {
		rh.abortWithError(ctx, err)
		return
	}
	if images == nil {
		images = []models.Image{}
	}
	ctx.JSON(http.StatusOK, images)
}

// GetDrawing godoc
// @Summary      Get one drawing by id
// @Tags         drawings
// @Produce      json
// @Success      200  {object}  models.Image
// @Failure      404  {object}  map[string]string
// @Router       /api/drawings/{id} [get]
func (rh *RestHandler) GetDrawing(ctx *gin.Context) {
	id, err := rh.uintParam(ctx, "id")
	if err != nil {
		rh.abortWithError(ctx, err)
		return
	}

	image, err := rh.drawingService.GetByID(id)
	if err != nil {
		rh.abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, image)
}

// GetUserDrawings lists drawings owned by the user in the path; an unknown or
// drawing-less user yields an empty list.
func (rh *RestHandler) GetUserDrawings(ctx *gin.Context) {
	userID, err := rh.uintParam(ctx, "userId")
	if err != nil {
		rh.abortWithError(ctx, err)
		return
	}

	images, err := rh.drawingService.GetByOwner(userID)
	if err != nil {
		rh.abortWithError(ctx, err)
		return
	}
	if images == nil {
		images = []models.Image{}
	}
	ctx.JSON(http.StatusOK, images)
}

// CreateDrawing godoc
// @Summary      Persist a finished drawing for the caller
// @Tags         drawings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  models.Image
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/drawings [post]
func (rh *RestHandler) CreateDrawing(ctx *gin.Context) {
	var body createDrawingRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil || body.Drawing == "" {
		rh.abortWithError(ctx, errs.ErrMissingDrawingData)
		return
	}

	image, err := rh.drawingService.Create(ctx.GetUint("user_id"), body.Drawing)
	if err != nil {
		rh.abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, image)
}

// DeleteDrawing godoc
// @Summary      Delete one drawing (owner only)
// @Tags         drawings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/drawings/{id} [delete]
func (rh *RestHandler) DeleteDrawing(ctx *gin.Context) {
	id, err := rh.uintParam(ctx, "id")
	if err != nil {
		rh.abortWithError(ctx, err)
		return
	}

	if err := rh.drawingService.Delete(id, ctx.GetUint("user_id")); err != nil {
		rh.abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": msgs.MsgDrawingDeleted})
}

// DeleteUserDrawings bulk-deletes the caller's drawings. Succeeds even when
// the caller owns nothing.
func (rh *RestHandler) DeleteUserDrawings(ctx *gin.Context) {
	userID, err := rh.uintParam(ctx, "userId")
	if err != nil {
		rh.abortWithError(ctx, err)
		return
	}

	if err := rh.drawingService.DeleteAllByOwner(userID, ctx.GetUint("user_id")); err != nil {
		rh.abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": msgs.MsgAllDrawingsDeleted})
}

// ExportDrawing uploads the drawing's raster to object storage and returns a
// public URL. Owner only; 503 when no object storage is configured.
func (rh *RestHandler) ExportDrawing(ctx *gin.Context) {
	if rh.fileManagerService == nil {
		rh.abortWithError(ctx, errs.ErrExportNotConfigured)
		return
	}

	id, err := rh.uintParam(ctx, "id")
	if err != nil {
		rh.abortWithError(ctx, err)
		return
	}

	image, err := rh.drawingService.GetByID(id)
	if err != nil {
		rh.abortWithError(ctx, err)
		return
	}
	if image.UserID != ctx.GetUint("user_id") {
		rh.abortWithError(ctx, errs.ErrForbidden)
		return
	}

	url, err := rh.fileManagerService.ExportDrawing(image)
	if err != nil {
		rh.abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"url": url})
}

func (rh *RestHandler) uintParam(ctx *gin.Context, name string) (uint, error) {
	value, err := strconv.Atoi(ctx.Param(name))
	if err != nil || value < 1 {
		return 0, errs.ErrInvalidParams
	}
	return uint(value), nil
}
