package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/rider"
	"logistics/internal/core/domain/services"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler commands.CreateDeliveryCommandHandler
	advanceStatusHandler  commands.AdvanceDeliveryStatusCommandHandler
	matchRiderHandler     commands.MatchRiderCommandHandler
	createRiderHandler    commands.CreateRiderCommandHandler
	verifyRiderHandler    commands.VerifyRiderCommandHandler
	submitRatingHandler   commands.SubmitRatingCommandHandler

	// Query handlers
	getQuoteHandler            queries.GetQuoteQueryHandler
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
	getRiderLedgerHandler      queries.GetRiderLedgerQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	advanceStatusHandler commands.AdvanceDeliveryStatusCommandHandler,
	matchRiderHandler commands.MatchRiderCommandHandler,
	createRiderHandler commands.CreateRiderCommandHandler,
	verifyRiderHandler commands.VerifyRiderCommandHandler,
	submitRatingHandler commands.SubmitRatingCommandHandler,
	getQuoteHandler queries.GetQuoteQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
	getRiderLedgerHandler queries.GetRiderLedgerQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:      createDeliveryHandler,
		advanceStatusHandler:       advanceStatusHandler,
		matchRiderHandler:          matchRiderHandler,
		createRiderHandler:         createRiderHandler,
		verifyRiderHandler:         verifyRiderHandler,
		submitRatingHandler:        submitRatingHandler,
		getQuoteHandler:            getQuoteHandler,
		getActiveDeliveriesHandler: getActiveDeliveriesHandler,
		getRiderLedgerHandler:      getRiderLedgerHandler,
	}
}

// CreateQuote handles POST /api/v1/quotes - prices a hypothetical delivery.
func (s *Server) CreateQuote(ctx echo.Context) error {
	var request servers.QuoteRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	productType, err := delivery.ProductTypeFromString(string(request.ProductType))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid product type: "+err.Error())
	}

	query, err := queries.NewGetQuoteQuery(productType, request.WeightKg,
		request.PickupDistrict, request.DeliveryDistrict)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid quote request: "+err.Error())
	}

	quote, err := s.getQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorFromUseCase(ctx, err, "Failed to compute quote")
	}

	return ctx.JSON(http.StatusOK, servers.Quote{
		WithinCity: quote.WithinCity,
		Charge:     quote.Charge,
		Commission: quote.Commission,
	})
}

// CreateDelivery handles POST /api/v1/deliveries - books a new delivery.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var newDelivery servers.NewDelivery
	if err := ctx.Bind(&newDelivery); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	pickup, err := bindAddress(newDelivery.Pickup)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid pickup address: "+err.Error())
	}
	dropoff, err := bindAddress(newDelivery.Dropoff)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid dropoff address: "+err.Error())
	}

	productType, err := delivery.ProductTypeFromString(string(newDelivery.Product.Type))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid product type: "+err.Error())
	}
	product, err := delivery.NewProduct(productType, newDelivery.Product.WeightKg)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid product: "+err.Error())
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, pickup, dropoff, product)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorFromUseCase(ctx, handleErr, "Failed to create delivery")
	}

	return ctx.JSON(http.StatusCreated, servers.DeliveryCreated{Id: deliveryID.Bytes()})
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active - lists in-flight deliveries.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	query := queries.NewGetActiveDeliveriesQuery()

	deliveries, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve deliveries")
	}

	response := make([]servers.Delivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = servers.Delivery{
			Id:              d.ID.Bytes(),
			Status:          d.Status,
			WithinCity:      d.WithinCity,
			PickupDistrict:  d.PickupDistrict,
			DropoffDistrict: d.DropoffDistrict,
			Charge:          d.Charge,
			DueAt:           d.DueAt,
		}
		if d.RiderID != nil {
			riderID := d.RiderID.Bytes()
			response[i].RiderId = &riderID
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateDeliveryStatus handles POST /api/v1/deliveries/{deliveryId}/status -
// advances the delivery along its status path.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context, deliveryId openapi_types.UUID) error {
	var update servers.StatusUpdate
	if err := ctx.Bind(&update); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := delivery.StatusFromString(update.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
	}

	deliveryID, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid delivery ID")
	}

	cmd, err := commands.NewAdvanceDeliveryStatusCommand(deliveryID, target)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status update: "+err.Error())
	}

	if handleErr := s.advanceStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorFromUseCase(ctx, handleErr, "Failed to update delivery status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MatchDeliveryRider handles POST /api/v1/deliveries/{deliveryId}/match -
// assigns the best available rider to the delivery.
func (s *Server) MatchDeliveryRider(ctx echo.Context, deliveryId openapi_types.UUID) error {
	deliveryID, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid delivery ID")
	}

	cmd, err := commands.NewMatchRiderCommand(deliveryID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid match request: "+err.Error())
	}

	riderID, err := s.matchRiderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorFromUseCase(ctx, err, "Failed to match rider")
	}

	return ctx.JSON(http.StatusOK, servers.MatchResult{RiderId: riderID.Bytes()})
}

// CreateDeliveryRating handles POST /api/v1/deliveries/{deliveryId}/ratings -
// records a customer rating for the delivery's rider.
func (s *Server) CreateDeliveryRating(ctx echo.Context, deliveryId openapi_types.UUID) error {
	var newRating servers.NewRating
	if err := ctx.Bind(&newRating); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	deliveryID, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid delivery ID")
	}

	comment := ""
	if newRating.Comment != nil {
		comment = *newRating.Comment
	}

	cmd, err := commands.NewSubmitRatingCommand(deliveryID, newRating.CustomerId, newRating.Score, comment)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid rating: "+err.Error())
	}

	if handleErr := s.submitRatingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorFromUseCase(ctx, handleErr, "Failed to record rating")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateRider handles POST /api/v1/riders - registers a new rider.
func (s *Server) CreateRider(ctx echo.Context) error {
	var newRider servers.NewRider
	if err := ctx.Bind(&newRider); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	credentials, err := rider.NewCredentials(
		newRider.Credentials.NationalId,
		newRider.Credentials.LicenseNumber,
		newRider.Credentials.VehicleType,
		newRider.Credentials.VehicleNumber,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid credentials: "+err.Error())
	}

	address, err := bindAddress(newRider.Address)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid address: "+err.Error())
	}

	email := ""
	if newRider.Email != nil {
		email = *newRider.Email
	}
	phone := ""
	if newRider.Phone != nil {
		phone = *newRider.Phone
	}

	riderID := kernel.NewUUID()
	cmd, err := commands.NewCreateRiderCommand(riderID, newRider.UserId, newRider.Name,
		email, phone, credentials, address)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid rider data: "+err.Error())
	}

	if handleErr := s.createRiderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorFromUseCase(ctx, handleErr, "Failed to create rider")
	}

	return ctx.JSON(http.StatusCreated, servers.RiderCreated{Id: riderID.Bytes()})
}

// VerifyRider handles POST /api/v1/riders/{riderId}/verify - marks the
// rider's credentials as verified. Verifying twice is a no-op.
func (s *Server) VerifyRider(ctx echo.Context, riderId openapi_types.UUID) error {
	riderID, err := kernel.UUIDFromBytes(riderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid rider ID")
	}

	cmd, err := commands.NewVerifyRiderCommand(riderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid verify request: "+err.Error())
	}

	if handleErr := s.verifyRiderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorFromUseCase(ctx, handleErr, "Failed to verify rider")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRiderLedger handles GET /api/v1/riders/{riderId}/ledger - retrieves the
// rider's earnings and rating history.
func (s *Server) GetRiderLedger(ctx echo.Context, riderId openapi_types.UUID) error {
	riderID, err := kernel.UUIDFromBytes(riderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid rider ID")
	}

	query, err := queries.NewGetRiderLedgerQuery(riderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid ledger request: "+err.Error())
	}

	ledger, err := s.getRiderLedgerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorFromUseCase(ctx, err, "Failed to retrieve rider ledger")
	}

	earnings := make([]servers.EarningEntry, len(ledger.Earnings))
	for i, e := range ledger.Earnings {
		earnings[i] = servers.EarningEntry{
			DeliveryId: e.DeliveryID.Bytes(),
			Amount:     e.Amount,
			Status:     e.Status,
			OccurredAt: e.OccurredAt,
		}
	}

	ratings := make([]servers.RatingEntry, len(ledger.Ratings))
	for i, r := range ledger.Ratings {
		ratings[i] = servers.RatingEntry{
			DeliveryId: r.DeliveryID.Bytes(),
			CustomerId: r.CustomerID,
			Score:      r.Score,
			OccurredAt: r.OccurredAt,
		}
		if r.Comment != "" {
			comment := r.Comment
			ratings[i].Comment = &comment
		}
	}

	return ctx.JSON(http.StatusOK, servers.RiderLedger{
		RiderId:             ledger.RiderID.Bytes(),
		Name:                ledger.Name,
		Rating:              ledger.Rating,
		RatingCount:         ledger.RatingCount,
		CompletedDeliveries: ledger.CompletedDeliveries,
		OnTimeDeliveries:    ledger.OnTimeDeliveries,
		LateDeliveries:      ledger.LateDeliveries,
		CancelledDeliveries: ledger.CancelledDeliveries,
		TotalEarnings:       ledger.TotalEarnings,
		Earnings:            earnings,
		Ratings:             ratings,
	})
}

// bindAddress converts the wire address into the domain value object.
func bindAddress(a servers.Address) (kernel.Address, error) {
	area := ""
	if a.Area != nil {
		area = *a.Area
	}
	street := ""
	if a.Street != nil {
		street = *a.Street
	}
	return kernel.NewAddress(a.Division, a.District, area, street)
}

// errorFromUseCase maps use case failures onto HTTP statuses: invalid input
// to 400, missing aggregates to 404, expected contention (transition refused,
// rider taken, nobody available) to 409, everything else to 500.
func errorFromUseCase(ctx echo.Context, err error, fallback string) error {
	var notFoundErr *errs.ObjectNotFoundError

	switch {
	case errors.As(err, &notFoundErr):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, delivery.ErrInvalidTransition),
		errors.Is(err, rider.ErrRiderUnavailable),
		errors.Is(err, services.ErrNoCandidateAvailable),
		errors.Is(err, commands.ErrDeliveryNotAssignable),
		errors.Is(err, commands.ErrDeliveryNotRatable),
		errors.Is(err, commands.ErrDeliveryHasNoRider):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrIncompleteAddress),
		errors.Is(err, services.ErrInvalidPricingInput),
		errors.Is(err, rider.ErrInvalidRating):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, fallback)
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}
