package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scoutportal/internal/model"
	"scoutportal/internal/service"
	serviceMocks "scoutportal/internal/service/mocks"
)

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCampHandlers(t *testing.T) {
	t.Run("public listing shows approved camps", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockCampService)
		app := fiber.New()
		app.Get("/camps", ListCamps(mockSvc))

		camps := []model.Camp{{ID: uuid.New().String(), Status: model.CampStatusApproved}}
		mockSvc.On("ListApproved", mock.Anything).Return(camps, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/camps", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("create returns 201 with pending camp", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockCampService)
		app := fiber.New()
		app.Post("/camps", CreateCamp(mockSvc))

		created := &model.Camp{ID: uuid.New().String(), Status: model.CampStatusPending}
		mockSvc.On("Create", mock.Anything, mock.AnythingOfType("service.CampInput"), "").
			Return(created, nil).Once()

		req := jsonRequest(t, http.MethodPost, "/camps", service.CampInput{Name: "Campo Le Querce"})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var got model.Camp
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, model.CampStatusPending, got.Status)
	})

	t.Run("invalid input", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockCampService)
		app := fiber.New()
		app.Post("/camps", CreateCamp(mockSvc))

		mockSvc.On("Create", mock.Anything, mock.Anything, "").
			Return(nil, service.ErrInvalidInput).Once()

		req := jsonRequest(t, http.MethodPost, "/camps", service.CampInput{})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var payload errorPayload
		json.NewDecoder(resp.Body).Decode(&payload)
		assert.Equal(t, "INVALID_INPUT", payload.Error.Code)
	})

	t.Run("approve", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockCampService)
		app := fiber.New()
		app.Put("/camps/:id/approve", ApproveCamp(mockSvc))

		id := uuid.New().String()
		mockSvc.On("Approve", mock.Anything, id).
			Return(&model.Camp{ID: id, Status: model.CampStatusApproved}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPut, "/camps/"+id+"/approve", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got model.Camp
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, model.CampStatusApproved, got.Status)
	})

	t.Run("approve unknown camp", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockCampService)
		app := fiber.New()
		app.Put("/camps/:id/approve", ApproveCamp(mockSvc))

		id := uuid.New().String()
		mockSvc.On("Approve", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPut, "/camps/"+id+"/approve", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestNewsHandlers(t *testing.T) {
	t.Run("get by id", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockNewsService)
		app := fiber.New()
		app.Get("/news/:id", GetNews(mockSvc))

		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).
			Return(&model.NewsArticle{ID: id, Title: "Winter Camp"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/news/"+id, nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockNewsService)
		app := fiber.New()
		app.Get("/news/:id", GetNews(mockSvc))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/news/123", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("create", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockNewsService)
		app := fiber.New()
		app.Post("/news", CreateNews(mockSvc))

		created := &model.NewsArticle{ID: uuid.New().String(), Title: "Winter Camp"}
		mockSvc.On("Create", mock.Anything, mock.AnythingOfType("service.NewsInput")).
			Return(created, nil).Once()

		req := jsonRequest(t, http.MethodPost, "/news", service.NewsInput{Title: "Winter Camp"})
		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})
}

func TestIssueHandlers(t *testing.T) {
	t.Run("create from multipart form", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockMagazineService)
		app := fiber.New()
		app.Post("/issues", CreateIssue(mockSvc))

		body := new(bytes.Buffer)
		w := multipart.NewWriter(body)
		part, err := w.CreateFormFile("issueFile", "issue-42.pdf")
		require.NoError(t, err)
		part.Write([]byte("%PDF-1.4"))
		w.WriteField("number", "42")
		w.WriteField("title", "Spring Issue")
		require.NoError(t, w.Close())

		created := &model.MagazineIssue{ID: uuid.New().String(), Number: "42", Title: "Spring Issue"}
		mockSvc.On("Create", mock.Anything, mock.Anything,
			mock.MatchedBy(func(in service.IssueInput) bool {
				return in.Number == "42" && in.Title == "Spring Issue"
			}), "issue-42.pdf", mock.AnythingOfType("string"), mock.AnythingOfType("int64")).
			Return(created, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/issues", body)
		req.Header.Set("Content-Type", w.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing file", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockMagazineService)
		app := fiber.New()
		app.Post("/issues", CreateIssue(mockSvc))

		body := new(bytes.Buffer)
		w := multipart.NewWriter(body)
		w.WriteField("number", "42")
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/issues", body)
		req.Header.Set("Content-Type", w.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var payload errorPayload
		json.NewDecoder(resp.Body).Decode(&payload)
		assert.Equal(t, "FILE_REQUIRED", payload.Error.Code)
	})
}

func TestAuthHandlers(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockAuthService)
		app := fiber.New()
		app.Post("/register", Register(mockSvc))

		res := &service.AuthResult{Token: "signed", User: &model.User{ID: "u1", Email: "scout@example.org"}}
		mockSvc.On("Register", mock.Anything, "scout@example.org", "s3cret", "").
			Return(res, nil).Once()

		req := jsonRequest(t, http.MethodPost, "/register", map[string]string{
			"email": "scout@example.org", "password": "s3cret",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var got service.AuthResult
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, "signed", got.Token)
	})

	t.Run("register duplicate email", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockAuthService)
		app := fiber.New()
		app.Post("/register", Register(mockSvc))

		mockSvc.On("Register", mock.Anything, "scout@example.org", "s3cret", "").
			Return(nil, service.ErrEmailTaken).Once()

		req := jsonRequest(t, http.MethodPost, "/register", map[string]string{
			"email": "scout@example.org", "password": "s3cret",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		var payload errorPayload
		json.NewDecoder(resp.Body).Decode(&payload)
		assert.Equal(t, "EMAIL_TAKEN", payload.Error.Code)
	})

	t.Run("login rejects bad credentials", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockAuthService)
		app := fiber.New()
		app.Post("/login", Login(mockSvc))

		mockSvc.On("Login", mock.Anything, "scout@example.org", "wrong").
			Return(nil, service.ErrInvalidCredentials).Once()

		req := jsonRequest(t, http.MethodPost, "/login", map[string]string{
			"email": "scout@example.org", "password": "wrong",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
