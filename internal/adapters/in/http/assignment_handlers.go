package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"orgtrack/internal/core/application/usecases/commands"
	"orgtrack/internal/core/application/usecases/queries"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
)

// StartAssignment handles PUT /api/v1/shipments/assignment/:id/start.
func (s *Server) StartAssignment(c echo.Context) error {
	assignmentID, carrierID, err := s.assignmentScope(c)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewStartAssignmentCommand(assignmentID, carrierID)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := s.startAssignmentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// FinalizeAssignment handles PUT /api/v1/shipments/assignment/:id/finalize.
func (s *Server) FinalizeAssignment(c echo.Context) error {
	assignmentID, carrierID, err := s.assignmentScope(c)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewFinalizeAssignmentCommand(assignmentID, carrierID)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := s.finalizeAssignmentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SubmitPreTripChecklist handles
// POST /api/v1/shipments/assignment/:id/checklist-pretrip.
func (s *Server) SubmitPreTripChecklist(c echo.Context) error {
	assignmentID, carrierID, err := s.assignmentScope(c)
	if err != nil {
		return respondError(c, err)
	}

	var req preTripChecklistRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	cmd, err := commands.NewSubmitPreTripChecklistCommand(
		assignmentID, carrierID, req.conditions(), req.Notes,
	)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := s.submitPreTripHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// SubmitPostTripChecklist handles
// POST /api/v1/shipments/assignment/:id/checklist-posttrip.
func (s *Server) SubmitPostTripChecklist(c echo.Context) error {
	assignmentID, carrierID, err := s.assignmentScope(c)
	if err != nil {
		return respondError(c, err)
	}

	var req postTripChecklistRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	cmd, err := commands.NewSubmitPostTripChecklistCommand(
		assignmentID, carrierID, req.incidents(), req.Description,
	)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := s.submitPostTripHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// SubmitSignature handles POST /api/v1/shipments/assignment/:id/signature.
func (s *Server) SubmitSignature(c echo.Context) error {
	return s.submitSignature(c, shipment.SignatureRecipient)
}

// SubmitCarrierSignature handles
// POST /api/v1/shipments/assignment/:id/carrier-signature.
func (s *Server) SubmitCarrierSignature(c echo.Context) error {
	return s.submitSignature(c, shipment.SignatureCarrier)
}

func (s *Server) submitSignature(c echo.Context, kind shipment.SignatureKind) error {
	assignmentID, carrierID, err := s.assignmentScope(c)
	if err != nil {
		return respondError(c, err)
	}

	var req signatureRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	cmd, err := commands.NewSubmitSignatureCommand(assignmentID, carrierID, kind, req.ImageBase64)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := s.submitSignatureHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// GetAssignmentSignatures handles GET /api/v1/assignments/:id/signatures.
func (s *Server) GetAssignmentSignatures(c echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondBadRequest(c, err)
	}

	requesterID, requesterRole, err := s.requesterScope(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetAssignmentSignaturesQuery(assignmentID, requesterID, requesterRole)
	if err != nil {
		return respondBadRequest(c, err)
	}

	result, err := s.getAssignmentSignaturesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toSignaturesResponse(result))
}

// GetMyAssignments handles GET /api/v1/assignments/mine.
func (s *Server) GetMyAssignments(c echo.Context) error {
	carrierID, err := s.carrierProfileID(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetCarrierAssignmentsQuery(carrierID)
	if err != nil {
		return respondBadRequest(c, err)
	}

	assignments, err := s.getCarrierAssignmentsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]carrierAssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		response = append(response, carrierAssignmentResponse{
			ID:          assignment.ID.String(),
			ShipmentID:  assignment.ShipmentID.String(),
			VehicleID:   assignment.VehicleID.String(),
			Status:      assignment.Status.String(),
			AssignedAt:  assignment.AssignedAt,
			StartedAt:   assignment.StartedAt,
			CompletedAt: assignment.CompletedAt,
			PickupAt:    assignment.PickupAt,
			DeliverBy:   assignment.DeliverBy,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// GetAssignmentQR handles GET /api/v1/assignments/:id/qr.
func (s *Server) GetAssignmentQR(c echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondBadRequest(c, err)
	}

	requesterID, role, err := s.requesterScope(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetAssignmentQRQuery(assignmentID, requesterID, role)
	if err != nil {
		return respondBadRequest(c, err)
	}

	credential, err := s.getAssignmentQRHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, qrCredentialResponse{
		AssignmentID: credential.AssignmentID.String(),
		ImageBase64:  credential.ImageBase64,
		IssuedAt:     credential.IssuedAt,
		ExpiresAt:    credential.ExpiresAt,
		Consumed:     credential.Consumed,
	})
}

// ConsumeQR handles PUT /api/v1/assignments/:id/qr/consume. The token in
// the body must resolve to the assignment in the path; a token scanned off
// another assignment's code is rejected.
func (s *Server) ConsumeQR(c echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondBadRequest(c, err)
	}

	var req consumeQRRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, err)
	}

	cmd, err := commands.NewConsumeQRCommand(assignmentID, req.Token)
	if err != nil {
		return respondBadRequest(c, err)
	}

	if err := s.consumeQRHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, idResponse{ID: assignmentID.String()})
}

// assignmentScope parses the assignment id from the path and resolves the
// acting carrier's profile id.
func (s *Server) assignmentScope(c echo.Context) (kernel.UUID, kernel.UUID, error) {
	assignmentID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	carrierID, err := s.carrierProfileID(c)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return assignmentID, carrierID, nil
}
