package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"gateapp-http-service/internal/domain/services"
	"gateapp-http-service/internal/domain/services/container"
	"gateapp-http-service/internal/error/code"
	"gateapp-http-service/internal/error/response"
)

// InterfaceDayLogController handles the security desk's day log and gate
// pass endpoints
type InterfaceDayLogController interface {
	List()
	Checkout()
	IssuePass()
	ResolvePass()
}

// DayLogController implements InterfaceDayLogController
type DayLogController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDayLogController creates a DayLogController
func NewDayLogController(ctx *gin.Context, container *container.ServiceContainer) *DayLogController {
	return &DayLogController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleDayLogFunc dispatches day-log endpoints
func HandleDayLogFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDayLogController(ctx, container)
		switch method {
		case "list":
			controller.List()
		case "checkout":
			controller.Checkout()
		case "issuePass":
			controller.IssuePass()
		case "resolvePass":
			controller.ResolvePass()
		default:
			response.NotFound(ctx, "method not found")
		}
	}
}

func (c *DayLogController) viewService() services.InterfaceVisitorViewService {
	return c.Container.GetService("visitor_view").(services.InterfaceVisitorViewService)
}

// date returns the requested log date, defaulting to today
func (c *DayLogController) date() string {
	if d := c.Ctx.Query("date"); d != "" {
		return d
	}
	return time.Now().UTC().Format("2006-01-02")
}

// List godoc
// @Summary      Day log for a date
// @Description  Returns the security desk's walk-in visitor log for a calendar date
// @Tags         daylog
// @Produce      json
// @Param        date      query     string  false  "log date (YYYY-MM-DD), defaults to today"
// @Param        search    query     string  false  "substring match on name, company, host or purpose"
// @Param        category  query     string  false  "visitor category, or all"
// @Param        status    query     string  false  "display status, or all"
// @Success      200   {object}  response.Response
// @Security     BearerAuth
// @Router       /daylog [get]
func (c *DayLogController) List() {
	date := c.date()

	filter := services.VisitorFilter{
		Search:      c.Ctx.Query("search"),
		Category:    c.Ctx.Query("category"),
		Status:      c.Ctx.Query("status"),
		Subcategory: c.Ctx.Query("subcategory"),
	}
	visitors := services.FilterVisitors(c.viewService().DayLog(date), filter)

	response.Success(c.Ctx, gin.H{
		"date":     date,
		"count":    len(visitors),
		"visitors": visitors,
	})
}

// Checkout godoc
// @Summary      Check a visitor out
// @Description  Marks a day-log visitor as checked out and stamps the checkout time
// @Tags         daylog
// @Produce      json
// @Param        id    path      string  true   "day-log visitor id"
// @Param        date  query     string  false  "log date (YYYY-MM-DD), defaults to today"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Security     BearerAuth
// @Router       /daylog/{id}/checkout [post]
func (c *DayLogController) Checkout() {
	visitor, err := c.viewService().Checkout(c.date(), c.Ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVisitorNotFound):
			response.Fail(c.Ctx, code.ErrVisitorNotFound, nil)
		case errors.Is(err, services.ErrAlreadyCheckedOut):
			response.Fail(c.Ctx, code.ErrVisitorAlreadyCheckedOut, nil)
		default:
			response.ServerError(c.Ctx)
		}
		return
	}
	response.Success(c.Ctx, visitor)
}

// IssuePass godoc
// @Summary      Issue a gate pass
// @Description  Issues a short-lived gate pass token for a day-log visitor
// @Tags         daylog
// @Produce      json
// @Param        id    path      string  true   "day-log visitor id"
// @Param        date  query     string  false  "log date (YYYY-MM-DD), defaults to today"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /daylog/{id}/pass [post]
func (c *DayLogController) IssuePass() {
	visitorID := c.Ctx.Param("id")

	for _, v := range c.viewService().DayLog(c.date()) {
		if v.ID != visitorID {
			continue
		}
		passService := c.Container.GetService("pass").(services.InterfacePassService)
		pass, err := passService.IssuePass(c.Ctx.Request.Context(), v)
		if err != nil {
			response.Fail(c.Ctx, code.ErrPassStore, nil)
			return
		}
		if events, ok := c.Container.GetService("gate_events").(services.InterfaceGateEventService); ok {
			events.PublishPassIssued(v.ID, pass.Token)
		}
		response.Success(c.Ctx, pass)
		return
	}

	response.Fail(c.Ctx, code.ErrVisitorNotFound, nil)
}

// ResolvePass godoc
// @Summary      Resolve a gate pass
// @Description  Looks up a gate pass by token for verification at the gate
// @Tags         daylog
// @Produce      json
// @Param        token  path      string  true  "gate pass token"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Security     BearerAuth
// @Router       /daylog/pass/{token} [get]
func (c *DayLogController) ResolvePass() {
	passService := c.Container.GetService("pass").(services.InterfacePassService)

	pass, err := passService.ResolvePass(c.Ctx.Request.Context(), c.Ctx.Param("token"))
	if err != nil {
		if errors.Is(err, services.ErrPassNotFound) {
			response.Fail(c.Ctx, code.ErrPassNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrPassStore, nil)
		return
	}
	response.Success(c.Ctx, pass)
}
