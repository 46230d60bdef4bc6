// Package http is the inbound HTTP adapter. It binds and validates request
// bodies, translates them into commands and queries, and maps domain errors
// onto status codes. No business rules live here.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/application/usecases/commands"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/application/usecases/queries"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/order"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler    commands.CreateOrderCommandHandler
	assignPartnerHandler  commands.AssignPartnerCommandHandler
	advanceHandler        commands.AdvanceDeliveryCommandHandler
	reportLocationHandler commands.ReportLocationCommandHandler

	getOrderHandler           queries.GetOrderQueryHandler
	listCustomerOrdersHandler queries.ListCustomerOrdersQueryHandler
	listPartnerOrdersHandler  queries.ListPartnerOrdersQueryHandler

	validate *validator.Validate
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignPartnerHandler commands.AssignPartnerCommandHandler,
	advanceHandler commands.AdvanceDeliveryCommandHandler,
	reportLocationHandler commands.ReportLocationCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listCustomerOrdersHandler queries.ListCustomerOrdersQueryHandler,
	listPartnerOrdersHandler queries.ListPartnerOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		assignPartnerHandler:      assignPartnerHandler,
		advanceHandler:            advanceHandler,
		reportLocationHandler:     reportLocationHandler,
		getOrderHandler:           getOrderHandler,
		listCustomerOrdersHandler: listCustomerOrdersHandler,
		listPartnerOrdersHandler:  listPartnerOrdersHandler,
		validate:                  validator.New(),
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrder)
	v1.POST("/orders/:id/partner", s.AssignPartner)
	v1.POST("/orders/:id/status", s.AdvanceStatus)
	v1.POST("/orders/:id/location", s.ReportLocation)
	v1.GET("/customers/:id/orders", s.ListCustomerOrders)
	v1.GET("/partners/:id/orders", s.ListPartnerOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	var pharmacyID *kernel.UUID
	if req.PharmacyID != nil {
		parsed, idErr := kernel.UUIDFromString(*req.PharmacyID)
		if idErr != nil {
			return badRequest(ctx, "Invalid pharmacy id")
		}
		pharmacyID = &parsed
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, line := range req.Items {
		unitPrice, priceErr := kernel.NewMoneyFromString(line.UnitPrice)
		if priceErr != nil {
			return badRequest(ctx, "Invalid unit price: "+line.UnitPrice)
		}
		item, itemErr := order.NewItem(line.Name, line.Quantity, unitPrice)
		if itemErr != nil {
			return mapDomainError(ctx, itemErr)
		}
		items = append(items, item)
	}

	destination, err := kernel.NewGeoPoint(req.Lat, req.Lng)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		customerID, pharmacyID, req.PharmacyName, items, req.Address, destination, req.PaymentMethod,
	)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": created.ID().String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(resp))
}

// AssignPartner handles POST /api/v1/orders/:id/partner.
func (s *Server) AssignPartner(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AssignPartnerRequest
	if err = s.bind(ctx, &req); err != nil {
		return err
	}

	partnerID, err := kernel.UUIDFromString(req.PartnerID)
	if err != nil {
		return badRequest(ctx, "Invalid partner id")
	}

	cmd, err := commands.NewAssignPartnerCommand(orderID, partnerID, req.PartnerName, req.PartnerPhone)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	assigned, err := s.assignPartnerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"id":     assigned.ID().String(),
		"status": assigned.Status().String(),
	})
}

// AdvanceStatus handles POST /api/v1/orders/:id/status.
func (s *Server) AdvanceStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AdvanceStatusRequest
	if err = s.bind(ctx, &req); err != nil {
		return err
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+req.Status)
	}

	actor, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewAdvanceDeliveryCommand(orderID, target, actor, req.OccurredAt)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	advanced, err := s.advanceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"id":     advanced.ID().String(),
		"status": advanced.Status().String(),
	})
}

// ReportLocation handles POST /api/v1/orders/:id/location.
func (s *Server) ReportLocation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ReportLocationRequest
	if err = s.bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewReportLocationCommand(orderID, req.Lat, req.Lng, req.OccurredAt)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	updated, err := s.reportLocationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	resp := map[string]any{"id": updated.ID().String()}
	if at := updated.Tracking().LastUpdatedAt(); at != nil {
		resp["last_updated_at"] = at.Format(time.RFC3339Nano)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// ListCustomerOrders handles GET /api/v1/customers/:id/orders.
func (s *Server) ListCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewListCustomerOrdersQuery(customerID)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	feed, err := s.listCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(feed))
}

// ListPartnerOrders handles GET /api/v1/partners/:id/orders.
func (s *Server) ListPartnerOrders(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid partner id")
	}

	query, err := queries.NewListPartnerOrdersQuery(partnerID)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	feed, err := s.listPartnerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(feed))
}

// bind decodes and validates a request body.
func (s *Server) bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return badRequest(ctx, "Invalid request body: "+err.Error())
	}
	return nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapDomainError translates domain and infrastructure errors onto HTTP codes:
// validation errors 400, authorization 403, missing records 404, state and
// concurrency conflicts 409.
func mapDomainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, order.ErrUnauthorizedActor):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrTerminalState),
		errors.Is(err, order.ErrPartnerAlreadyAssigned),
		errors.Is(err, errs.ErrObjectModified):
		code = http.StatusConflict
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
