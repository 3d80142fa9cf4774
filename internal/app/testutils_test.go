package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/mocks"
	"github.com/metinatakli/cinema-tickets/internal/service"
	"github.com/metinatakli/cinema-tickets/internal/validator"
)

type testDeps struct {
	paymentService      *mocks.MockPaymentService
	seatReservationRepo *mocks.MockSeatReservationRepo
}

func newTestApplication(t *testing.T, opts ...func(*Application)) (*Application, *testDeps) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := &testDeps{
		paymentService:      new(mocks.MockPaymentService),
		seatReservationRepo: new(mocks.MockSeatReservationRepo),
	}

	ticketService, err := service.NewTicketService(logger, deps.paymentService, deps.seatReservationRepo)
	if err != nil {
		t.Fatal(err)
	}

	app := NewApp(Config{Env: "test"}, logger, validator.NewValidator(), ticketService, deps.seatReservationRepo)

	for _, opt := range opts {
		opt(app)
	}

	return app, deps
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader

	switch v := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}
