package http

import (
	"time"

	"github.com/shopspring/decimal"

	"orgtrack/internal/core/application/usecases/commands"
	"orgtrack/internal/core/domain/model/geo"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
)

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createCarrierRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	DocumentID string `json:"documentId"`
	Phone      string `json:"phone"`
}

type createVehicleRequest struct {
	Kind     string          `json:"kind"`
	Plate    string          `json:"plate"`
	Capacity decimal.Decimal `json:"capacity"`
}

type createTransportTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type pointRequest struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

func (p pointRequest) toPoint() (geo.Point, error) {
	return geo.NewPoint(p.Longitude, p.Latitude)
}

type cargoRequest struct {
	Kind      string          `json:"kind"`
	Variety   string          `json:"variety"`
	Quantity  int             `json:"quantity"`
	Packaging string          `json:"packaging"`
	Weight    decimal.Decimal `json:"weight"`
}

type partitionRequest struct {
	CarrierID string         `json:"carrierId"`
	VehicleID string         `json:"vehicleId"`
	Cargo     []cargoRequest `json:"cargo"`
}

func (p partitionRequest) toInput() (commands.PartitionInput, error) {
	carrierID, err := kernel.UUIDFromString(p.CarrierID)
	if err != nil {
		return commands.PartitionInput{}, err
	}
	vehicleID, err := kernel.UUIDFromString(p.VehicleID)
	if err != nil {
		return commands.PartitionInput{}, err
	}

	cargo := make([]commands.CargoInput, 0, len(p.Cargo))
	for _, item := range p.Cargo {
		cargo = append(cargo, commands.CargoInput{
			Kind:      item.Kind,
			Variety:   item.Variety,
			Quantity:  item.Quantity,
			Packaging: item.Packaging,
			Weight:    item.Weight,
		})
	}

	return commands.PartitionInput{
		CarrierID: carrierID,
		VehicleID: vehicleID,
		Cargo:     cargo,
	}, nil
}

type createShipmentRequest struct {
	// ClientID is who the shipment is for. Required for admins creating on a
	// client's behalf; ignored for clients, who always create for themselves.
	ClientID             string             `json:"clientId"`
	OriginName           string             `json:"originName"`
	Origin               pointRequest       `json:"origin"`
	DestinationName      string             `json:"destinationName"`
	Destination          pointRequest       `json:"destination"`
	TransportTypeID      string             `json:"transportTypeId"`
	PickupAt             time.Time          `json:"pickupAt"`
	DeliverBy            time.Time          `json:"deliverBy"`
	PickupInstructions   string             `json:"pickupInstructions"`
	DeliveryInstructions string             `json:"deliveryInstructions"`
	Partitions           []partitionRequest `json:"partitions"`
}

type assignPartitionRequest = partitionRequest

type preTripChecklistRequest struct {
	Lights       bool   `json:"lights"`
	Brakes       bool   `json:"brakes"`
	Tires        bool   `json:"tires"`
	Mirrors      bool   `json:"mirrors"`
	FluidLevels  bool   `json:"fluidLevels"`
	Horn         bool   `json:"horn"`
	Seatbelts    bool   `json:"seatbelts"`
	Documents    bool   `json:"documents"`
	CargoSecured bool   `json:"cargoSecured"`
	EmergencyKit bool   `json:"emergencyKit"`
	Notes        string `json:"notes"`
}

func (r preTripChecklistRequest) conditions() shipment.PreTripConditions {
	return shipment.PreTripConditions{
		Lights:       r.Lights,
		Brakes:       r.Brakes,
		Tires:        r.Tires,
		Mirrors:      r.Mirrors,
		FluidLevels:  r.FluidLevels,
		Horn:         r.Horn,
		Seatbelts:    r.Seatbelts,
		Documents:    r.Documents,
		CargoSecured: r.CargoSecured,
		EmergencyKit: r.EmergencyKit,
	}
}

type postTripChecklistRequest struct {
	Delays              bool   `json:"delays"`
	CargoDamage         bool   `json:"cargoDamage"`
	VehicleDamage       bool   `json:"vehicleDamage"`
	RouteDeviation      bool   `json:"routeDeviation"`
	Accident            bool   `json:"accident"`
	WeatherIssues       bool   `json:"weatherIssues"`
	MechanicalFailure   bool   `json:"mechanicalFailure"`
	DocumentationIssues bool   `json:"documentationIssues"`
	ClientComplaint     bool   `json:"clientComplaint"`
	Other               bool   `json:"other"`
	Description         string `json:"description"`
}

func (r postTripChecklistRequest) incidents() shipment.PostTripIncidents {
	return shipment.PostTripIncidents{
		Delays:              r.Delays,
		CargoDamage:         r.CargoDamage,
		VehicleDamage:       r.VehicleDamage,
		RouteDeviation:      r.RouteDeviation,
		Accident:            r.Accident,
		WeatherIssues:       r.WeatherIssues,
		MechanicalFailure:   r.MechanicalFailure,
		DocumentationIssues: r.DocumentationIssues,
		ClientComplaint:     r.ClientComplaint,
		Other:               r.Other,
	}
}

type signatureRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

type consumeQRRequest struct {
	Token string `json:"token"`
}

type routePreviewRequest struct {
	Origin      pointRequest `json:"origin"`
	Destination pointRequest `json:"destination"`
}
