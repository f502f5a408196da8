package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abovebytes/coursehub/internal/application"
	"github.com/abovebytes/coursehub/internal/domain/entity"
	"github.com/abovebytes/coursehub/internal/domain/repository"
	"github.com/abovebytes/coursehub/internal/generator"
	"github.com/abovebytes/coursehub/pkg/validation"
)

// memCourseRepo is a slice-backed CourseRepository for handler tests.
type memCourseRepo struct {
	mu      sync.Mutex
	nextID  int64
	courses []*entity.Course
}

func (r *memCourseRepo) FindAll(ctx context.Context) ([]*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Course, len(r.courses))
	copy(out, r.courses)
	return out, nil
}

func (r *memCourseRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.courses)), nil
}

func (r *memCourseRepo) FindByID(ctx context.Context, id int64) (*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memCourseRepo) FindByName(ctx context.Context, name string) (*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.courses {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memCourseRepo) FindAllByName(ctx context.Context, name string) ([]*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Course
	for _, c := range r.courses {
		if strings.EqualFold(c.Name, name) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCourseRepo) FindFirstByDescriptionContains(ctx context.Context, text string) (*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.courses {
		if strings.Contains(strings.ToLower(c.Description), strings.ToLower(text)) {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memCourseRepo) FindByNameProviderLevel(ctx context.Context, name string, provider entity.Provider, level entity.Level) (*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.courses {
		if strings.EqualFold(c.Name, name) && c.Provider == provider && c.Level == level {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memCourseRepo) Create(ctx context.Context, c *entity.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	c.ID = r.nextID
	r.courses = append(r.courses, c)
	return nil
}

func (r *memCourseRepo) Update(ctx context.Context, c *entity.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.courses {
		if existing.ID == c.ID {
			r.courses[i] = c
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memCourseRepo) DeleteAll(ctx context.Context, courses []*entity.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	drop := make(map[int64]bool, len(courses))
	for _, c := range courses {
		drop[c.ID] = true
	}
	kept := r.courses[:0]
	for _, c := range r.courses {
		if !drop[c.ID] {
			kept = append(kept, c)
		}
	}
	r.courses = kept
	return nil
}

var _ repository.CourseRepository = (*memCourseRepo)(nil)

func newCourseTestRouter() (*gin.Engine, *memCourseRepo) {
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := &memCourseRepo{}
	svc := application.NewCourseService(repo, generator.NewWithSeed("courses.abovebytes.com", 11), logger, nil, nil, "")
	h := NewCourseHandler(svc, logger)

	r := gin.New()
	r.GET("/api/courses", h.List)
	r.GET("/api/courses/count", h.Count)
	r.GET("/api/courses/health", h.Health)
	r.GET("/api/courses/by-id/:id", h.GetByID)
	r.GET("/api/courses/by-title/:title", h.GetByTitle)
	r.GET("/api/courses/search-description", h.SearchByDescription)
	r.POST("/api/courses", h.Add)
	r.DELETE("/api/courses/by-title/:title", h.DeleteByTitle)
	r.PATCH("/api/courses/url", h.UpdateURL)
	r.PATCH("/api/courses/title", h.UpdateTitle)
	return r, repo
}

type envelope struct {
	Status  int            `json:"status"`
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
	Error   map[string]any `json:"error"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	}
	return w, env
}

func TestCourseHandlerAdd(t *testing.T) {
	r, _ := newCourseTestRouter()

	w, env := doJSON(t, r, http.MethodPost, "/api/courses", gin.H{
		"title":       "Intro to Go",
		"description": "Learn the basics",
		"provider":    "UDEMY",
		"level":       "BEGINNER",
		"language":    "en",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	assert.True(t, env.Success)
	assert.Equal(t, "Intro to Go", env.Data["name"])
	assert.Equal(t, "UDEMY", env.Data["provider"])
	assert.NotEmpty(t, env.Data["url"])
}

func TestCourseHandlerAddRejectsUnknownEnum(t *testing.T) {
	r, _ := newCourseTestRouter()

	w, env := doJSON(t, r, http.MethodPost, "/api/courses", gin.H{
		"title":    "Intro to Go",
		"provider": "SKILLSHARE",
		"level":    "BEGINNER",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "provider")
}

func TestCourseHandlerAddDuplicateConflict(t *testing.T) {
	r, _ := newCourseTestRouter()

	payload := gin.H{"title": "Intro to Go", "provider": "UDEMY", "level": "BEGINNER"}
	w, _ := doJSON(t, r, http.MethodPost, "/api/courses", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, r, http.MethodPost, "/api/courses", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, env.Message, "already exists")
}

func TestCourseHandlerGetByTitle(t *testing.T) {
	r, _ := newCourseTestRouter()

	doJSON(t, r, http.MethodPost, "/api/courses", gin.H{"title": "Intro to Go", "provider": "UDEMY", "level": "BEGINNER"})

	w, env := doJSON(t, r, http.MethodGet, "/api/courses/by-title/intro%20to%20go", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Intro to Go", env.Data["name"])

	w, _ = doJSON(t, r, http.MethodGet, "/api/courses/by-title/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCourseHandlerCountAndHealth(t *testing.T) {
	r, _ := newCourseTestRouter()

	doJSON(t, r, http.MethodPost, "/api/courses", gin.H{"title": "A", "provider": "UDEMY", "level": "BEGINNER"})

	w, env := doJSON(t, r, http.MethodGet, "/api/courses/count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, env.Data["count"])

	w, env = doJSON(t, r, http.MethodGet, "/api/courses/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK - course catalog service is running. Total courses: 1", env.Message)
}

func TestCourseHandlerDeleteByTitle(t *testing.T) {
	r, repo := newCourseTestRouter()

	doJSON(t, r, http.MethodPost, "/api/courses", gin.H{"title": "Doomed", "provider": "UDEMY", "level": "BEGINNER"})

	w, env := doJSON(t, r, http.MethodDelete, "/api/courses/by-title/Doomed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Course(s) with title 'Doomed' successfully deleted", env.Message)

	n, _ := repo.Count(context.Background())
	assert.Zero(t, n)

	w, env = doJSON(t, r, http.MethodDelete, "/api/courses/by-title/Doomed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "No course found with title 'Doomed'", env.Message)
}

func TestCourseHandlerUpdateURLMissingCourse(t *testing.T) {
	r, _ := newCourseTestRouter()

	w, env := doJSON(t, r, http.MethodPatch, "/api/courses/url", gin.H{
		"title":   "Nope",
		"new_url": "https://example.com/x",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "no course found with title 'Nope'", env.Message)
}

func TestCourseHandlerUpdateTitle(t *testing.T) {
	r, _ := newCourseTestRouter()

	doJSON(t, r, http.MethodPost, "/api/courses", gin.H{"title": "Old Name", "provider": "UDEMY", "level": "BEGINNER"})

	w, env := doJSON(t, r, http.MethodPatch, "/api/courses/title", gin.H{
		"title":     "Old Name",
		"new_title": "New Name",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "New Name", env.Data["name"])
}

func TestCourseHandlerSearchByDescriptionRequiresText(t *testing.T) {
	r, _ := newCourseTestRouter()

	w, env := doJSON(t, r, http.MethodGet, "/api/courses/search-description", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "text query parameter is required", env.Message)
}
