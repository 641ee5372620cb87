package handlers

import (
	"bytes"
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
)

func TestGetUserHandler_NestedRelations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockUserManager(ctrl)
	svc.EXPECT().Get(gomock.Any(), int64(1)).Return(&models.UserDetail{
		User:           models.User{ID: 1, Username: "AshKetchum", Email: "ash@pallet.town", PasswordHash: "$2a$10$secret", IsAdmin: true},
		UserCards:      []models.UserCard{},
		TradesOffered:  []models.Trade{},
		TradesReceived: []models.Trade{},
		Wishlists:      []models.Wishlist{},
	}, nil)

	r := chi.NewRouter()
	r.Get("/users/{id}", NewGetUserHandler(svc))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/1", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret")
	assert.JSONEq(t, `{
		"id":1,"username":"AshKetchum","email":"ash@pallet.town","is_admin":true,
		"user_cards":[],"trades_offered":[],"trades_received":[],"wishlists":[]
	}`, rr.Body.String())
}

func TestUserHandlers_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		method       string
		target       string
		body         string
		mockSetup    func(m *MockUserManager)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "create duplicate",
			method: http.MethodPost,
			target: "/users/",
			body:   `{"username":"MistyWater","email":"misty@cerulean.gym","password":"starmie"}`,
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"Username or email already exists"}`,
		},
		{
			name:   "update to taken email",
			method: http.MethodPatch,
			target: "/users/2",
			body:   `{"email":"ash@pallet.town"}`,
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().Update(gomock.Any(), int64(2), gomock.Any()).Return(nil, sqlerr.Convert(&pgconn.PgError{
					Code:   "23505",
					Detail: "Key (email)=(ash@pallet.town) already exists.",
				}))
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"record already exists: Key (email)=(ash@pallet.town) already exists"}`,
		},
		{
			name:   "delete missing",
			method: http.MethodDelete,
			target: "/users/5",
			mockSetup: func(m *MockUserManager) {
				m.EXPECT().Delete(gomock.Any(), int64(5)).Return(&services.NotFoundError{Resource: "User", ID: 5})
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"User with ID 5 does not exist"}`,
		},
		{
			name:         "delete zero id",
			method:       http.MethodDelete,
			target:       "/users/0",
			mockSetup:    func(m *MockUserManager) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid id \"0\""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockUserManager(ctrl)
			tt.mockSetup(svc)

			r := chi.NewRouter()
			r.Post("/users/", NewCreateUserHandler(svc))
			r.Patch("/users/{id}", NewUpdateUserHandler(svc))
			r.Delete("/users/{id}", NewDeleteUserHandler(svc))

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
