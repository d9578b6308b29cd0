package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gateapp-http-service/internal/app/middleware"
	"gateapp-http-service/internal/domain/services"
	"gateapp-http-service/internal/domain/services/container"
	"gateapp-http-service/internal/error/code"
	"gateapp-http-service/internal/error/response"
)

// DecisionRequest is the approve/reject request body
type DecisionRequest struct {
	Action string `json:"action" binding:"required"` // approve or reject
}

// InterfaceVisitorController handles the aggregated visitor endpoints
type InterfaceVisitorController interface {
	ListRequests()
	Summary()
	Decide()
}

// VisitorController implements InterfaceVisitorController
type VisitorController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewVisitorController creates a VisitorController
func NewVisitorController(ctx *gin.Context, container *container.ServiceContainer) *VisitorController {
	return &VisitorController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleVisitorFunc dispatches visitor endpoints
func HandleVisitorFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewVisitorController(ctx, container)
		switch method {
		case "listRequests":
			controller.ListRequests()
		case "summary":
			controller.Summary()
		case "decide":
			controller.Decide()
		default:
			response.NotFound(ctx, "method not found")
		}
	}
}

func (c *VisitorController) viewService() services.InterfaceVisitorViewService {
	return c.Container.GetService("visitor_view").(services.InterfaceVisitorViewService)
}

// ListRequests godoc
// @Summary      List visit requests
// @Description  Aggregates the staff, vendor and family sources for one status tab and applies the view filters
// @Tags         visitors
// @Produce      json
// @Param        status       query     string  false  "pending or approved"  default(pending)
// @Param        search       query     string  false  "substring match on name, company, host or purpose"
// @Param        category     query     string  false  "visitor category, or all"
// @Param        view_status  query     string  false  "display status, or all"
// @Param        subcategory  query     string  false  "subcategory, or all"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Security     BearerAuth
// @Router       /visitors/requests [get]
func (c *VisitorController) ListRequests() {
	status := c.Ctx.DefaultQuery("status", "pending")
	if status != "pending" && status != "approved" {
		response.ParamError(c.Ctx, "status must be pending or approved")
		return
	}

	filter := services.VisitorFilter{
		Search:      c.Ctx.Query("search"),
		Category:    c.Ctx.Query("category"),
		Status:      c.Ctx.Query("view_status"),
		Subcategory: c.Ctx.Query("subcategory"),
	}

	visitors, err := c.viewService().ListVisitors(c.Ctx.Request.Context(), status, filter)
	if err != nil {
		response.Fail(c.Ctx, code.ErrSourceUnavailable, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"status":   status,
		"count":    len(visitors),
		"visitors": visitors,
	})
}

// Summary godoc
// @Summary      Visit request counts
// @Description  Returns pending, approved and total request counts across all sources
// @Tags         visitors
// @Produce      json
// @Success      200  {object}  response.Response
// @Security     BearerAuth
// @Router       /visitors/summary [get]
func (c *VisitorController) Summary() {
	aggregation := c.Container.GetService("aggregation").(services.InterfaceAggregationService)

	summary, err := aggregation.Summary(c.Ctx.Request.Context())
	if err != nil {
		response.Fail(c.Ctx, code.ErrSourceUnavailable, nil)
		return
	}
	response.Success(c.Ctx, summary)
}

// Decide godoc
// @Summary      Approve or reject a visit request
// @Description  Writes the decision to the request's source API and returns the reloaded pending list
// @Tags         visitors
// @Accept       json
// @Produce      json
// @Param        id       path      string           true  "canonical visitor id"
// @Param        request  body      DecisionRequest  true  "decision"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Security     BearerAuth
// @Router       /visitors/requests/{id} [patch]
func (c *VisitorController) Decide() {
	visitorID := c.Ctx.Param("id")

	var req DecisionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	var action services.DecisionAction
	switch req.Action {
	case "approve":
		action = services.ActionApprove
	case "reject":
		action = services.ActionReject
	default:
		response.ParamError(c.Ctx, "action must be approve or reject")
		return
	}

	operator := c.Ctx.GetString(middleware.ContextUsername)
	operatorID := c.Ctx.GetUint(middleware.ContextUserID)

	visitors, err := c.viewService().Decide(c.Ctx.Request.Context(), visitorID, action, operator, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVisitorNotFound):
			response.Fail(c.Ctx, code.ErrVisitorNotFound, nil)
		case errors.Is(err, services.ErrDecisionTarget):
			response.Fail(c.Ctx, code.ErrDecisionTarget, nil)
		case errors.Is(err, services.ErrUnsupportedAction):
			response.ParamError(c.Ctx, "unsupported decision action")
		default:
			response.FailWithMessage(c.Ctx, code.ErrSourceWrite, err.Error(), nil)
		}
		return
	}

	response.Success(c.Ctx, gin.H{
		"count":    len(visitors),
		"visitors": visitors,
	})
}
