package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"orgtrack/internal/core/application/usecases/queries"
	"orgtrack/internal/pkg/errs"
)

type errorResponse struct {
	Message string `json:"message"`
}

type idResponse struct {
	ID string `json:"id"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    string    `json:"userId"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
}

type pointResponse struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type routeResponse struct {
	Geometry        [][]float64 `json:"geometry"`
	DistanceMeters  float64     `json:"distanceMeters"`
	DurationSeconds float64     `json:"durationSeconds"`
}

type locationResponse struct {
	OriginName      string        `json:"originName"`
	Origin          pointResponse `json:"origin"`
	DestinationName string        `json:"destinationName"`
	Destination     pointResponse `json:"destination"`
	Route           routeResponse `json:"route"`
}

type cargoResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Variety   string          `json:"variety"`
	Quantity  int             `json:"quantity"`
	Packaging string          `json:"packaging"`
	Weight    decimal.Decimal `json:"weight"`
}

type assignmentResponse struct {
	ID          string          `json:"id"`
	CarrierID   string          `json:"carrierId"`
	VehicleID   string          `json:"vehicleId"`
	Status      string          `json:"status"`
	AssignedAt  time.Time       `json:"assignedAt"`
	StartedAt   *time.Time      `json:"startedAt,omitempty"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
	Cargo       []cargoResponse `json:"cargo"`
}

type shipmentResponse struct {
	ID                   string               `json:"id"`
	ClientID             string               `json:"clientId"`
	TransportTypeID      string               `json:"transportTypeId"`
	Status               string               `json:"status"`
	PickupAt             time.Time            `json:"pickupAt"`
	DeliverBy            time.Time            `json:"deliverBy"`
	PickupInstructions   string               `json:"pickupInstructions"`
	DeliveryInstructions string               `json:"deliveryInstructions"`
	CreatedAt            time.Time            `json:"createdAt"`
	Location             locationResponse     `json:"location"`
	Assignments          []assignmentResponse `json:"assignments"`
}

type shipmentSummaryResponse struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"clientId"`
	Status          string    `json:"status"`
	OriginName      string    `json:"originName"`
	DestinationName string    `json:"destinationName"`
	PickupAt        time.Time `json:"pickupAt"`
	DeliverBy       time.Time `json:"deliverBy"`
	CreatedAt       time.Time `json:"createdAt"`
	AssignmentCount int       `json:"assignmentCount"`
}

type carrierAssignmentResponse struct {
	ID          string     `json:"id"`
	ShipmentID  string     `json:"shipmentId"`
	VehicleID   string     `json:"vehicleId"`
	Status      string     `json:"status"`
	AssignedAt  time.Time  `json:"assignedAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	PickupAt    time.Time  `json:"pickupAt"`
	DeliverBy   time.Time  `json:"deliverBy"`
}

type carrierResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DocumentID   string `json:"documentId"`
	Phone        string `json:"phone"`
	Availability string `json:"availability"`
}

type vehicleResponse struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	Plate        string          `json:"plate"`
	Capacity     decimal.Decimal `json:"capacity"`
	Availability string          `json:"availability"`
}

type transportTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type clientResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type qrCredentialResponse struct {
	AssignmentID string    `json:"assignmentId"`
	ImageBase64  string    `json:"imageBase64"`
	IssuedAt     time.Time `json:"issuedAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
	Consumed     bool      `json:"consumed"`
}

type signatureResponse struct {
	ID          string    `json:"id"`
	ImageBase64 string    `json:"imageBase64"`
	SignedAt    time.Time `json:"signedAt"`
}

type signaturesResponse struct {
	AssignmentID string             `json:"assignmentId"`
	Carrier      *signatureResponse `json:"carrier"`
	Recipient    *signatureResponse `json:"recipient"`
}

func toSignaturesResponse(r queries.GetAssignmentSignaturesQueryResponse) signaturesResponse {
	return signaturesResponse{
		AssignmentID: r.AssignmentID.String(),
		Carrier:      toSignatureResponse(r.Carrier),
		Recipient:    toSignatureResponse(r.Recipient),
	}
}

func toSignatureResponse(signature *queries.SignatureResponse) *signatureResponse {
	if signature == nil {
		return nil
	}
	return &signatureResponse{
		ID:          signature.ID.String(),
		ImageBase64: signature.ImageBase64,
		SignedAt:    signature.SignedAt,
	}
}

func toShipmentResponse(r queries.GetShipmentQueryResponse) shipmentResponse {
	assignments := make([]assignmentResponse, 0, len(r.Assignments))
	for _, assignment := range r.Assignments {
		cargo := make([]cargoResponse, 0, len(assignment.Cargo))
		for _, item := range assignment.Cargo {
			cargo = append(cargo, cargoResponse{
				ID:        item.ID.String(),
				Kind:      item.Kind,
				Variety:   item.Variety,
				Quantity:  item.Quantity,
				Packaging: item.Packaging,
				Weight:    item.Weight,
			})
		}

		assignments = append(assignments, assignmentResponse{
			ID:          assignment.ID.String(),
			CarrierID:   assignment.CarrierID.String(),
			VehicleID:   assignment.VehicleID.String(),
			Status:      assignment.Status.String(),
			AssignedAt:  assignment.AssignedAt,
			StartedAt:   assignment.StartedAt,
			CompletedAt: assignment.CompletedAt,
			Cargo:       cargo,
		})
	}

	return shipmentResponse{
		ID:                   r.ID.String(),
		ClientID:             r.ClientID.String(),
		TransportTypeID:      r.TransportTypeID.String(),
		Status:               r.Status.String(),
		PickupAt:             r.Schedule.PickupAt(),
		DeliverBy:            r.Schedule.DeliverBy(),
		PickupInstructions:   r.Schedule.PickupInstructions(),
		DeliveryInstructions: r.Schedule.DeliveryInstructions(),
		CreatedAt:            r.CreatedAt,
		Location: locationResponse{
			OriginName: r.Location.OriginName,
			Origin: pointResponse{
				Longitude: r.Location.Origin.Longitude(),
				Latitude:  r.Location.Origin.Latitude(),
			},
			DestinationName: r.Location.DestinationName,
			Destination: pointResponse{
				Longitude: r.Location.Destination.Longitude(),
				Latitude:  r.Location.Destination.Latitude(),
			},
			Route: routeResponse{
				Geometry:        r.Location.Route.Geometry,
				DistanceMeters:  r.Location.Route.DistanceMeters,
				DurationSeconds: r.Location.Route.DurationSeconds,
			},
		},
		Assignments: assignments,
	}
}

func toShipmentSummaries(summaries []queries.ShipmentSummaryResponse) []shipmentSummaryResponse {
	out := make([]shipmentSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		out = append(out, shipmentSummaryResponse{
			ID:              summary.ID.String(),
			ClientID:        summary.ClientID.String(),
			Status:          summary.Status.String(),
			OriginName:      summary.OriginName,
			DestinationName: summary.DestinationName,
			PickupAt:        summary.PickupAt,
			DeliverBy:       summary.DeliverBy,
			CreatedAt:       summary.CreatedAt,
			AssignmentCount: summary.AssignmentCount,
		})
	}
	return out
}

// respondError maps handler failures onto the error taxonomy. Anything
// unrecognized is a backing-store failure: logged in detail by echo, surfaced
// generically.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, queries.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, errorResponse{Message: "invalid credentials"})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrPreconditionNotMet):
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrResourceUnavailable),
		errors.Is(err, errs.ErrAlreadyExists),
		errors.Is(err, errs.ErrInvalidState):
		return c.JSON(http.StatusConflict, errorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}

func respondBadRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
}
