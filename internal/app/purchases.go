package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/domain"
)

func (app *Application) PurchaseTicketsHandler(w http.ResponseWriter, r *http.Request) {
	var input api.PurchaseRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	requests := toTicketTypeRequests(input.TicketTypeRequests)

	err = app.ticketService.PurchaseTickets(r.Context(), input.AccountId, requests...)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPurchase):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.PurchaseResponse{
		AccountId:   input.AccountId,
		TotalAmount: domain.TotalAmount(requests),
		TotalSeats:  domain.TotalSeats(requests),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSeatReservationsHandler(w http.ResponseWriter, r *http.Request, accountId int64) {
	if accountId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("account ID must be greater than zero"))
		return
	}

	reservations, err := app.seatReservationRepo.GetByAccountId(r.Context(), accountId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.SeatReservationsResponse{
		AccountId:    accountId,
		Reservations: toApiSeatReservations(reservations),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// toTicketTypeRequests expects input that already passed validation, an
// unparsable type is left as the zero TicketType and rejected by the service.
func toTicketTypeRequests(input []api.TicketTypeRequest) []domain.TicketTypeRequest {
	requests := make([]domain.TicketTypeRequest, len(input))

	for i, v := range input {
		ticketType, _ := domain.ParseTicketType(string(v.Type))
		requests[i] = domain.NewTicketTypeRequest(ticketType, v.NoOfTickets)
	}

	return requests
}

func toApiSeatReservations(reservations []domain.SeatReservation) []api.SeatReservation {
	apiReservations := make([]api.SeatReservation, len(reservations))

	for i, v := range reservations {
		apiReservations[i] = api.SeatReservation{
			Id:        v.ID,
			SeatCount: v.SeatCount,
			CreatedAt: v.CreatedAt,
		}
	}

	return apiReservations
}
