package list

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/store-api/internal/http/handlers"
	"github.com/magabrotheeeer/store-api/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		accept         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
		contentType    string
	}{
		{
			name: "список товаров",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return([]*models.Product{
					{ID: 1, Name: "Pen", Description: "Blue", Price: 1.5},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"list_count":1,"products":[{"id":1,"name":"Pen","description":"Blue","price":1.5}]}}`,
			contentType:    "application/json",
		},
		{
			name: "пустой список",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"list_count":0,"products":[]}}`,
			contentType:    "application/json",
		},
		{
			name:   "html таблица",
			accept: "text/html",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return([]*models.Product{
					{ID: 1, Name: "Pen", Description: "Blue", Price: 1.5},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "<td>Pen</td>",
			contentType:    "text/html",
		},
		{
			name: "ошибка сервиса",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not list products"}`,
			contentType:    "application/json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New[models.Product](logger, mockService, handlers.Product)

			req := httptest.NewRequest(http.MethodGet, "/products", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), tt.contentType)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
