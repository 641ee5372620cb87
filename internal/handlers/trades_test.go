package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
	"github.com/sbilibin2017/tcg-trading-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestTradeHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pending := &models.Trade{
		ID: 3, OfferingUserID: 1, ReceivingUserID: 2, OfferingCardID: 1, ReceivingCardID: 2,
		OfferingQuantity: 1, ReceivingQuantity: 1, StatusID: 1, Status: "Pending",
	}

	tests := []struct {
		name         string
		method       string
		target       string
		body         string
		mockSetup    func(m *MockTradeManager)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "create with defaults",
			method: http.MethodPost,
			target: "/trades/",
			body:   `{"offering_user_id":1,"receiving_user_id":2,"offering_card_id":1,"receiving_card_id":2}`,
			mockSetup: func(m *MockTradeManager) {
				m.EXPECT().Create(gomock.Any(), models.TradeCreateRequest{
					OfferingUserID: 1, ReceivingUserID: 2, OfferingCardID: 1, ReceivingCardID: 2,
				}).Return(pending, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"Trade added successfully","trade":{"id":3,"offering_user_id":1,"receiving_user_id":2,"offering_card_id":1,"receiving_card_id":2,"offering_quantity":1,"receiving_quantity":1,"status_id":1,"status":"Pending"}}`,
		},
		{
			name:         "create with one user on both sides",
			method:       http.MethodPost,
			target:       "/trades/",
			body:         `{"offering_user_id":1,"receiving_user_id":1,"offering_card_id":1,"receiving_card_id":2}`,
			mockSetup:    func(m *MockTradeManager) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Validation failed","errors":[{"field":"receiving_user_id","error":"must differ from OfferingUserID"}]}`,
		},
		{
			name:   "statuses not seeded",
			method: http.MethodPost,
			target: "/trades/",
			body:   `{"offering_user_id":1,"receiving_user_id":2,"offering_card_id":1,"receiving_card_id":2}`,
			mockSetup: func(m *MockTradeManager) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, services.ErrStatusNotSeeded)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
		{
			name:   "status change",
			method: http.MethodPut,
			target: "/trades/3",
			body:   `{"status_id":2}`,
			mockSetup: func(m *MockTradeManager) {
				accepted := *pending
				accepted.StatusID, accepted.Status = 2, "Accepted"
				m.EXPECT().Update(gomock.Any(), int64(3), gomock.Any()).Return(&accepted, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Trade updated successfully","trade":{"id":3,"offering_user_id":1,"receiving_user_id":2,"offering_card_id":1,"receiving_card_id":2,"offering_quantity":1,"receiving_quantity":1,"status_id":2,"status":"Accepted"}}`,
		},
		{
			name:         "zero quantity on update",
			method:       http.MethodPatch,
			target:       "/trades/3",
			body:         `{"offering_quantity":0}`,
			mockSetup:    func(m *MockTradeManager) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Validation failed","errors":[{"field":"offering_quantity","error":"must be greater than 0"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockTradeManager(ctrl)
			tt.mockSetup(svc)

			r := chi.NewRouter()
			r.Post("/trades/", NewCreateTradeHandler(svc))
			r.Put("/trades/{id}", NewUpdateTradeHandler(svc))
			r.Patch("/trades/{id}", NewUpdateTradeHandler(svc))

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
