// Package http exposes the lifecycle contract over REST with echo. Handlers turn
// Result failures into ErrorResponse bodies through StatusCodeFor.
package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"orderlifecycle/internal/core/application/usecases/commands"
	"orderlifecycle/internal/core/application/usecases/queries"
	"orderlifecycle/internal/core/domain/model/lifecycle"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/core/domain/model/routing"
	"orderlifecycle/internal/pkg/result"

	"github.com/labstack/echo/v4"
)

const (
	defaultParkedLimit = 100
	maxEventBodyBytes  = 1 << 20
)

// Server holds the use case handlers behind the REST routes.
type Server struct {
	// Command handlers
	publishHandler commands.PublishLifecycleEventCommandHandler

	// Query handlers
	listStatusesHandler     queries.ListStatusesQueryHandler
	resolveRouteHandler     queries.ResolveRouteQueryHandler
	listParkedEventsHandler queries.ListParkedEventsQueryHandler
}

func NewServer(
	publishHandler commands.PublishLifecycleEventCommandHandler,
	listStatusesHandler queries.ListStatusesQueryHandler,
	resolveRouteHandler queries.ResolveRouteQueryHandler,
	listParkedEventsHandler queries.ListParkedEventsQueryHandler,
) *Server {
	return &Server{
		publishHandler:          publishHandler,
		listStatusesHandler:     listStatusesHandler,
		resolveRouteHandler:     resolveRouteHandler,
		listParkedEventsHandler: listParkedEventsHandler,
	}
}

// RegisterRoutes mounts every route on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/statuses", s.ListStatuses)
	api.POST("/statuses/transitions", s.CheckTransition)
	api.GET("/routes/:key", s.ResolveRoute)
	api.POST("/events/:kind", s.PublishEvent)
	api.GET("/redeliveries", s.ListParkedEvents)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// ListStatuses handles GET /api/v1/statuses.
func (s *Server) ListStatuses(c echo.Context) error {
	statuses, err := s.listStatusesHandler.Handle(c.Request().Context(), queries.NewListStatusesQuery())
	return respond(c, result.From(statuses, err, result.CodeInternalError))
}

// TransitionRequest is the body of POST /api/v1/statuses/transitions.
type TransitionRequest struct {
	Current string `json:"current"`
	Next    string `json:"next"`
}

// CheckTransition handles POST /api/v1/statuses/transitions. An allowed transition
// answers 204; a refused one answers with the transition failure.
func (s *Server) CheckTransition(c echo.Context) error {
	var req TransitionRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, "invalid request body", result.CodeValidationError)
	}

	checked := result.Bind(order.ParseStatusResult(req.Current), func(current order.Status) result.Result[result.Unit] {
		return result.Bind(order.ParseStatusResult(req.Next), func(next order.Status) result.Result[result.Unit] {
			return result.Map(current.TransitionTo(next), func(order.Status) result.Unit {
				return result.Unit{}
			})
		})
	})

	return respondNoContent(c, checked)
}

// ResolveRoute handles GET /api/v1/routes/:key.
func (s *Server) ResolveRoute(c echo.Context) error {
	query, err := queries.NewResolveRouteQuery(c.Param("key"))
	if err != nil {
		return respondError(c, err.Error(), result.CodeValidationError)
	}

	return respond(c, s.resolveRouteHandler.Handle(c.Request().Context(), query))
}

// PublishEvent handles POST /api/v1/events/:kind?current=<status>. The body is the
// flat JSON wire form of the message; current is required for status kinds that
// move the order forward.
func (s *Server) PublishEvent(c echo.Context) error {
	kind, ok := lifecycle.ParseKind(c.Param("kind"))
	if !ok {
		return respondError(c, fmt.Sprintf("unknown message kind '%s'", c.Param("kind")), result.CodeValidationError)
	}

	current := order.Unknown
	if raw := c.QueryParam("current"); raw != "" {
		parsed := order.ParseStatusResult(raw)
		if parsed.IsFailure() {
			return respondError(c, parsed.Message(), parsed.Code())
		}
		current = parsed.ValueOrDefault(order.Unknown)
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxEventBodyBytes))
	if err != nil {
		return respondError(c, "failed to read request body", result.CodeValidationError)
	}

	published := result.Bind(lifecycle.Decode(kind, body), func(msg lifecycle.Message) result.Result[routing.Destination] {
		cmd, cmdErr := commands.NewPublishLifecycleEventCommand(current, msg)
		if cmdErr != nil {
			return result.Err[routing.Destination](cmdErr.Error(), result.CodeValidationError)
		}
		return s.publishHandler.Handle(c.Request().Context(), cmd)
	})

	return respondCreated(c, published)
}

// ListParkedEvents handles GET /api/v1/redeliveries?limit=<n>.
func (s *Server) ListParkedEvents(c echo.Context) error {
	limit := defaultParkedLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return respondError(c, fmt.Sprintf("limit '%s' is not a number", raw), result.CodeValidationError)
		}
		limit = parsed
	}

	query, err := queries.NewListParkedEventsQuery(limit)
	if err != nil {
		return respondError(c, err.Error(), result.CodeValidationError)
	}

	parked, err := s.listParkedEventsHandler.Handle(c.Request().Context(), query)
	return respond(c, result.From(parked, err, result.CodeInternalError))
}
