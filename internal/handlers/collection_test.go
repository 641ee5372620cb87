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

func TestUserCardHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockUserCardManager(ctrl)
	svc.EXPECT().
		Create(gomock.Any(), models.UserCardCreateRequest{UserID: 1, CardID: 2, ConditionID: 3}).
		Return(&models.UserCard{ID: 4, UserID: 1, CardID: 2, ConditionID: 3, Username: "AshKetchum", CardName: "Pikachu", ConditionName: "Good"}, nil)
	svc.EXPECT().
		Update(gomock.Any(), int64(4), gomock.Any()).
		Return(&models.UserCard{ID: 4, UserID: 1, CardID: 2, ConditionID: 1, Username: "AshKetchum", CardName: "Pikachu", ConditionName: "Mint"}, nil)

	r := chi.NewRouter()
	r.Post("/user-cards/", NewCreateUserCardHandler(svc))
	r.Put("/user-cards/{id}", NewUpdateUserCardHandler(svc))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/user-cards/", bytes.NewBufferString(`{"user_id":1,"card_id":2,"condition_id":3}`)))
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"message":"User card added successfully","user_card":{"id":4,"user_id":1,"card_id":2,"condition_id":3,"username":"AshKetchum","card_name":"Pikachu","condition_name":"Good"}}`, rr.Body.String())

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/user-cards/4", bytes.NewBufferString(`{"condition_id":1}`)))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"User card updated successfully","user_card":{"id":4,"user_id":1,"card_id":2,"condition_id":1,"username":"AshKetchum","card_name":"Pikachu","condition_name":"Mint"}}`, rr.Body.String())
}

func TestWishlistHandlers_DeleteMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockWishlistManager(ctrl)
	svc.EXPECT().Delete(gomock.Any(), int64(8)).Return(&services.NotFoundError{Resource: "Wishlist", ID: 8})

	r := chi.NewRouter()
	r.Delete("/wishlists/{id}", NewDeleteWishlistHandler(svc))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/wishlists/8", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Wishlist with ID 8 does not exist"}`, rr.Body.String())
}
