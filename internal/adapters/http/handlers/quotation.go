package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotation-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotation-service/internal/app"
	"github.com/jsamuelsen/quotation-service/internal/domain"
)

// DeletedMessage is returned after a successful delete.
const DeletedMessage = "Quotation deleted successfully"

// QuotationHandler handles the /quotations endpoints.
type QuotationHandler struct {
	service *app.QuotationService
}

// NewQuotationHandler creates a new quotation handler.
func NewQuotationHandler(service *app.QuotationService) *QuotationHandler {
	return &QuotationHandler{
		service: service,
	}
}

// List handles GET /quotations.
//
// @Summary List quotation requests
// @Description Returns every quotation request ordered by id
// @Tags quotations
// @Produce json
// @Success 200 {array} dto.QuotationResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quotations [get]
func (h *QuotationHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuotationListResponse(list))
}

// Get handles GET /quotations/:id.
//
// @Summary Get a quotation request
// @Tags quotations
// @Produce json
// @Param id path int true "Quotation ID"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotations/{id} [get]
func (h *QuotationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rec, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuotationResponse(rec))
}

// Create handles POST /quotations.
//
// @Summary Create a quotation request
// @Description All fields are required. The server assigns the id.
// @Tags quotations
// @Accept json
// @Produce json
// @Param body body dto.QuotationBody true "Quotation fields"
// @Success 201 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quotations [post]
func (h *QuotationHandler) Create(c *gin.Context) {
	var body dto.QuotationBody
	if !bindBody(c, &body) {
		return
	}

	rec, err := h.service.Create(c.Request.Context(), body.Fields())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuotationResponse(rec))
}

// Update handles PUT /quotations/:id.
//
// @Summary Replace a quotation request
// @Description Replaces every field of an existing record; the id is preserved.
// @Tags quotations
// @Accept json
// @Produce json
// @Param id path int true "Quotation ID"
// @Param body body dto.QuotationBody true "Quotation fields"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotations/{id} [put]
func (h *QuotationHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var body dto.QuotationBody
	if !bindBody(c, &body) {
		return
	}

	rec, err := h.service.Update(c.Request.Context(), id, body.Fields())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuotationResponse(rec))
}

// Delete handles DELETE /quotations/:id.
//
// @Summary Delete a quotation request
// @Tags quotations
// @Produce json
// @Param id path int true "Quotation ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotations/{id} [delete]
func (h *QuotationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: DeletedMessage})
}

// RegisterQuotationRoutes registers quotation routes on the given router group.
func (h *QuotationHandler) RegisterQuotationRoutes(rg *gin.RouterGroup) {
	quotations := rg.Group("/quotations")
	quotations.GET("", h.List)
	quotations.POST("", h.Create)
	quotations.GET("/:id", h.Get)
	quotations.PUT("/:id", h.Update)
	quotations.DELETE("/:id", h.Delete)
}

// pathID parses the :id parameter, writing a 400 response when it is invalid.
func pathID(c *gin.Context) (int64, bool) {
	id, err := domain.ParseQuotationID(c.Param("id"))
	if err != nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "invalid quotation id")
		return 0, false
	}

	return id, true
}

// bindBody decodes and validates the JSON body, writing a 400 response on failure.
func bindBody(c *gin.Context, body *dto.QuotationBody) bool {
	err := dto.BindAndValidate(c, body)
	if err == nil {
		return true
	}

	if errors.Is(err, dto.ErrBinding) {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "malformed request body")
		return false
	}

	dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))

	return false
}
