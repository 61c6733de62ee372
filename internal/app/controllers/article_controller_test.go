package controllers

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
)

// stubArticleService records the last SetPublished call
type stubArticleService struct {
	publishedID    string
	publishedValue bool
}

func (s *stubArticleService) CreateArticle(ctx context.Context, authorID string, contentType models.ContentType, req *dto.CreateArticleRequest, image *multipart.FileHeader) (*models.Article, error) {
	return nil, nil
}

func (s *stubArticleService) GetArticles(ctx context.Context, contentType models.ContentType, includeDrafts bool, page, pageSize int) ([]models.Article, int64, error) {
	return nil, 0, nil
}

func (s *stubArticleService) GetArticleBySlug(ctx context.Context, contentType models.ContentType, slug string) (*models.Article, error) {
	return nil, nil
}

func (s *stubArticleService) UpdateArticle(ctx context.Context, id string, req *dto.UpdateArticleRequest) (*models.Article, error) {
	return nil, nil
}

func (s *stubArticleService) SetPublished(ctx context.Context, id string, published bool) (*models.Article, error) {
	s.publishedID = id
	s.publishedValue = published
	return &models.Article{ID: id, IsPublished: published}, nil
}

func (s *stubArticleService) DeleteArticle(ctx context.Context, id string) error {
	return nil
}

func newArticleTestRouter() (*gin.Engine, *stubArticleService) {
	gin.SetMode(gin.TestMode)
	stub := &stubArticleService{}
	controller := NewArticleController(stub)

	router := gin.New()
	router.PATCH("/api/articles/:slug/publish", controller.SetPublished)
	return router, stub
}

func TestSetPublished(t *testing.T) {
	patch := func(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPatch, "/api/articles/article-1/publish", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("no body publishes", func(t *testing.T) {
		router, stub := newArticleTestRouter()
		w := patch(t, router, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
		}
		if stub.publishedID != "article-1" || !stub.publishedValue {
			t.Errorf("service called with (%q, %v), want (article-1, true)", stub.publishedID, stub.publishedValue)
		}
	})

	t.Run("explicit unpublish", func(t *testing.T) {
		router, stub := newArticleTestRouter()
		w := patch(t, router, `{"isPublished": false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if stub.publishedValue {
			t.Error("service called with publish=true, want false")
		}
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		router, stub := newArticleTestRouter()
		w := patch(t, router, `{"isPublished": "yes"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if stub.publishedID != "" {
			t.Error("service reached with a malformed body")
		}
	})
}
