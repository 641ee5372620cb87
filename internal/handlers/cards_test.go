package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
	"github.com/sbilibin2017/tcg-trading-api/internal/services"
	"github.com/sbilibin2017/tcg-trading-api/internal/sqlerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCardRouter(svc CardManager) http.Handler {
	r := chi.NewRouter()
	r.Get("/cards/", NewListCardsHandler(svc))
	r.Post("/cards/", NewCreateCardHandler(svc))
	r.Get("/cards/{id}", NewGetCardHandler(svc))
	r.Put("/cards/{id}", NewUpdateCardHandler(svc))
	r.Patch("/cards/{id}", NewUpdateCardHandler(svc))
	r.Delete("/cards/{id}", NewDeleteCardHandler(svc))
	return r
}

func TestCardHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	charizard := &models.Card{
		ID: 1, Name: "Charizard", CardType: "Fire", RarityID: 4, SetID: 1,
		RarityName: "Rare Holo", SetName: "Base Set",
	}
	fkErr := sqlerr.Convert(&pgconn.PgError{
		Code:   "23503",
		Detail: `Key (rarity_id)=(99) is not present in table "rarities".`,
	})

	tests := []struct {
		name         string
		method       string
		target       string
		body         string
		mockSetup    func(m *MockCardManager)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "list",
			method: http.MethodGet,
			target: "/cards/",
			mockSetup: func(m *MockCardManager) {
				m.EXPECT().List(gomock.Any()).Return([]models.Card{*charizard}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":1,"name":"Charizard","card_type":"Fire","rarity_id":4,"set_id":1,"rarity_name":"Rare Holo","set_name":"Base Set"}]`,
		},
		{
			name:   "list empty",
			method: http.MethodGet,
			target: "/cards/",
			mockSetup: func(m *MockCardManager) {
				m.EXPECT().List(gomock.Any()).Return([]models.Card{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:   "get",
			method: http.MethodGet,
			target: "/cards/1",
			mockSetup: func(m *MockCardManager) {
				m.EXPECT().Get(gomock.Any(), int64(1)).Return(charizard, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"name":"Charizard","card_type":"Fire","rarity_id":4,"set_id":1,"rarity_name":"Rare Holo","set_name":"Base Set"}`,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			target: "/cards/42",
			mockSetup: func(m *MockCardManager) {
				m.EXPECT().Get(gomock.Any(), int64(42)).Return(nil, &services.NotFoundError{Resource: "Card", ID: 42})
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Card with ID 42 does not exist"}`,
		},
		{
			name:         "get non integer id",
			method:       http.MethodGet,
			target:       "/cards/abc",
			mockSetup:    func(m *MockCardManager) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid id \"abc\""}`,
		},
		{
			name:   "create",
			method: http.MethodPost,
			target: "/cards/",
			body:   `{"name":"Charizard","card_type":"Fire","rarity_id":4,"set_id":1}`,
			mockSetup: func(m *MockCardManager) {
				m.EXPECT().
					Create(gomock.Any(), models.CardCreateRequest{Name: "Charizard", CardType: "Fire", RarityID: 4, SetID: 1}).
					Return(charizard, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"Card added successfully","card":{"id":1,"name":"Charizard","card_type":"Fire","rarity_id":4,"set_id":1,"rarity_name":"Rare Holo","set_name":"Base Set"}}`,
		},
		{
			name:         "create missing fields",
			method:       http.MethodPost,
			target:       "/cards/",
			body:         `{"name":"Charizard"}`,
			mockSetup:    func(m *MockCardManager) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Validation failed","errors":[{"field":"card_type","error":"is required"},{"field":"rarity_id","error":"is required"},{"field":"set_id","error":"is required"}]}`,
		},
		{
			name:   "create unknown rarity",
			method: http.MethodPost,
			target: "/cards/",
			body:   `{"name":"Charizard","card_type":"Fire","rarity_id":99,"set_id":1}`,
			mockSetup: func(m *MockCardManager) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, fkErr)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"referenced record does not exist: Key (rarity_id)=(99) is not present in table \"rarities\""}`,
		},
		{
			name:   "partial update",
			method: http.MethodPatch,
			target: "/cards/1",
			body:   `{"card_type":"Fire/Flying"}`,
			mockSetup: func(m *MockCardManager) {
				m.EXPECT().
					Update(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(_ any, _ int64, req models.CardUpdateRequest) (*models.Card, error) {
						assert.Nil(t, req.Name)
						require.NotNil(t, req.CardType)
						assert.Equal(t, "Fire/Flying", *req.CardType)
						updated := *charizard
						updated.CardType = *req.CardType
						return &updated, nil
					})
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Card 'Charizard' updated successfully","card":{"id":1,"name":"Charizard","card_type":"Fire/Flying","rarity_id":4,"set_id":1,"rarity_name":"Rare Holo","set_name":"Base Set"}}`,
		},
		{
			name:         "update with unknown field",
			method:       http.MethodPatch,
			target:       "/cards/1",
			body:         `{"type":"Fire/Flying"}`,
			mockSetup:    func(m *MockCardManager) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
		{
			name:   "update missing",
			method: http.MethodPut,
			target: "/cards/9",
			body:   `{"name":"Mew"}`,
			mockSetup: func(m *MockCardManager) {
				m.EXPECT().Update(gomock.Any(), int64(9), gomock.Any()).Return(nil, &services.NotFoundError{Resource: "Card", ID: 9})
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Card with ID 9 does not exist"}`,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/cards/1",
			mockSetup: func(m *MockCardManager) {
				m.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Card deleted successfully"}`,
		},
		{
			name:   "delete internal error",
			method: http.MethodDelete,
			target: "/cards/1",
			mockSetup: func(m *MockCardManager) {
				m.EXPECT().Delete(gomock.Any(), int64(1)).Return(errors.New("connection reset"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockCardManager(ctrl)
			tt.mockSetup(svc)

			var body *bytes.Buffer
			if tt.body != "" {
				body = bytes.NewBufferString(tt.body)
			} else {
				body = &bytes.Buffer{}
			}
			req := httptest.NewRequest(tt.method, tt.target, body)
			rr := httptest.NewRecorder()

			newCardRouter(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestCardHandlers_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/cards/1", bytes.NewBufferString("{"))
	newCardRouter(NewMockCardManager(ctrl)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid request body", resp.Error)
}
