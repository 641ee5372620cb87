package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/tcg-trading-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSetHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jungle := &models.Set{ID: 2, SetName: "Jungle", ReleaseDate: models.NewDate(1999, time.June, 16)}

	tests := []struct {
		name         string
		method       string
		target       string
		body         string
		mockSetup    func(m *MockSetManager)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "create",
			method: http.MethodPost,
			target: "/sets/",
			body:   `{"set_name":"Jungle","release_date":"1999-06-16"}`,
			mockSetup: func(m *MockSetManager) {
				m.EXPECT().
					Create(gomock.Any(), models.SetCreateRequest{SetName: "Jungle", ReleaseDate: "1999-06-16"}).
					Return(jungle, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"Set added successfully","set":{"id":2,"set_name":"Jungle","release_date":"1999-06-16"}}`,
		},
		{
			name:         "create with bad date",
			method:       http.MethodPost,
			target:       "/sets/",
			body:         `{"set_name":"Jungle","release_date":"16/06/1999"}`,
			mockSetup:    func(m *MockSetManager) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Validation failed","errors":[{"field":"release_date","error":"must be a date in 2006-01-02 format"}]}`,
		},
		{
			name:   "rename",
			method: http.MethodPatch,
			target: "/sets/2",
			body:   `{"set_name":"Jungle (Unlimited)"}`,
			mockSetup: func(m *MockSetManager) {
				renamed := *jungle
				renamed.SetName = "Jungle (Unlimited)"
				m.EXPECT().Update(gomock.Any(), int64(2), gomock.Any()).Return(&renamed, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Set 'Jungle (Unlimited)' updated successfully","set":{"id":2,"set_name":"Jungle (Unlimited)","release_date":"1999-06-16"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockSetManager(ctrl)
			tt.mockSetup(svc)

			r := chi.NewRouter()
			r.Post("/sets/", NewCreateSetHandler(svc))
			r.Patch("/sets/{id}", NewUpdateSetHandler(svc))

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
