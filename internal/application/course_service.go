package application

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/abovebytes/coursehub/internal/domain/entity"
	repo "github.com/abovebytes/coursehub/internal/domain/repository"
	"github.com/abovebytes/coursehub/internal/events"
)

// CourseGenerator supplies the synthetic attributes used when a course
// is added. Implemented by internal/generator; tests inject a seeded one.
type CourseGenerator interface {
	URL(provider string) string
	DurationMinutes() int
	Rating() float64
}

// EventPublisher pushes catalog events onto the message queue.
// Implemented by helpers.RabbitPublisher.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// CourseService manages the course catalog.
// It holds no entity state between calls; every operation goes through
// the repository. Indexing and event publishing are best-effort.
type CourseService struct {
	Repo    repo.CourseRepository
	Gen     CourseGenerator
	Logger  *logrus.Logger
	Pub     EventPublisher
	ES      *elasticsearch.Client
	ESIndex string
}

func NewCourseService(r repo.CourseRepository, gen CourseGenerator, logger *logrus.Logger, pub EventPublisher, es *elasticsearch.Client, esIndex string) *CourseService {
	return &CourseService{Repo: r, Gen: gen, Logger: logger, Pub: pub, ES: es, ESIndex: esIndex}
}

func (s *CourseService) List(ctx context.Context) ([]*entity.Course, error) {
	return s.Repo.FindAll(ctx)
}

func (s *CourseService) Count(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx)
}

func (s *CourseService) GetByID(ctx context.Context, id int64) (*entity.Course, error) {
	c, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrCourseNotFound
	}
	return c, err
}

// GetByTitle does a case-insensitive exact match on the course name.
// At most one course can match while the uniqueness invariant holds.
func (s *CourseService) GetByTitle(ctx context.Context, title string) (*entity.Course, error) {
	c, err := s.Repo.FindByName(ctx, title)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrCourseNotFound
	}
	return c, err
}

// SearchByDescription returns the first course whose description
// contains text as a case-insensitive substring. Returning a single
// course, not the full matching set, is the contract.
func (s *CourseService) SearchByDescription(ctx context.Context, text string) (*entity.Course, error) {
	c, err := s.Repo.FindFirstByDescriptionContains(ctx, text)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrCourseNotFound
	}
	return c, err
}

type AddCourseInput struct {
	Title       string
	Description string
	Provider    entity.Provider
	Level       entity.Level
	Language    string
}

// Add creates a new catalog entry with a generated URL, duration and
// rating. The pre-check on (title, provider, level) produces the
// friendly duplicate error; the unique index in Postgres closes the
// race between concurrent adds, and a conflict from the repository is
// translated into the same error.
func (s *CourseService) Add(ctx context.Context, in AddCourseInput) (*entity.Course, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if !in.Provider.Valid() {
		return nil, ErrInvalidProvider
	}
	if !in.Level.Valid() {
		return nil, ErrInvalidLevel
	}

	url := s.Gen.URL(in.Provider.String())
	s.Logger.WithFields(logrus.Fields{"title": title, "url": url}).Info("courses_add called")

	existing, err := s.Repo.FindByNameProviderLevel(ctx, title, in.Provider, in.Level)
	if err == nil {
		return nil, &DuplicateCourseError{ID: existing.ID, Title: existing.Name, Provider: existing.Provider, Level: existing.Level}
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	c := &entity.Course{
		Name:            title,
		URL:             url,
		Description:     in.Description,
		Provider:        in.Provider,
		Language:        in.Language,
		Level:           in.Level,
		DurationMinutes: s.Gen.DurationMinutes(),
		Rating:          s.Gen.Rating(),
		Active:          true,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, s.duplicateOf(ctx, title, in.Provider, in.Level)
		}
		return nil, err
	}

	s.indexCourse(ctx, c)
	s.publish(ctx, events.TypeCourseAdded, map[string]any{"id": c.ID, "title": c.Name})
	return c, nil
}

// duplicateOf re-reads the winner of a lost uniqueness race so the
// error can still name the existing record.
func (s *CourseService) duplicateOf(ctx context.Context, title string, provider entity.Provider, level entity.Level) error {
	dup := &DuplicateCourseError{Title: title, Provider: provider, Level: level}
	if winner, err := s.Repo.FindByNameProviderLevel(ctx, title, provider, level); err == nil {
		dup.ID = winner.ID
		dup.Title = winner.Name
	}
	return dup
}

// DeleteByTitle removes every course whose name matches title
// case-insensitively. Deletion is physical. Absence is reported with a
// message, not an error.
func (s *CourseService) DeleteByTitle(ctx context.Context, title string) (string, error) {
	s.Logger.WithField("title", title).Info("courses_delete_by_title called")

	matches, err := s.Repo.FindAllByName(ctx, title)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "No course found with title '" + title + "'", nil
	}
	if err := s.Repo.DeleteAll(ctx, matches); err != nil {
		return "", err
	}
	for _, c := range matches {
		s.deindexCourse(ctx, c.ID)
	}
	s.publish(ctx, events.TypeCourseDeleted, map[string]any{"title": title, "count": len(matches)})
	return "Course(s) with title '" + title + "' successfully deleted", nil
}

// UpdateURL sets a new URL on the course with the given title.
// A missing title yields a nil course and no error.
func (s *CourseService) UpdateURL(ctx context.Context, title, newURL string) (*entity.Course, error) {
	s.Logger.WithFields(logrus.Fields{"title": title, "new_url": newURL}).Info("courses_update_url called")

	c, err := s.Repo.FindByName(ctx, title)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.URL = newURL
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.indexCourse(ctx, c)
	s.publish(ctx, events.TypeCourseUpdated, map[string]any{"id": c.ID, "title": c.Name})
	return c, nil
}

// UpdateTitle renames the course with the given title. A missing title
// yields a nil course and no error. The (title, provider, level)
// uniqueness check is re-run against the new title; renaming onto an
// existing triple fails with the same duplicate error as Add.
func (s *CourseService) UpdateTitle(ctx context.Context, title, newTitle string) (*entity.Course, error) {
	s.Logger.WithFields(logrus.Fields{"title": title, "new_title": newTitle}).Info("courses_update_title called")

	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return nil, ErrTitleRequired
	}

	c, err := s.Repo.FindByName(ctx, title)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindByNameProviderLevel(ctx, newTitle, c.Provider, c.Level)
	if err == nil && existing.ID != c.ID {
		return nil, &DuplicateCourseError{ID: existing.ID, Title: existing.Name, Provider: existing.Provider, Level: existing.Level}
	}
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	c.Name = newTitle
	if err := s.Repo.Update(ctx, c); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, s.duplicateOf(ctx, newTitle, c.Provider, c.Level)
		}
		return nil, err
	}
	s.indexCourse(ctx, c)
	s.publish(ctx, events.TypeCourseUpdated, map[string]any{"id": c.ID, "title": c.Name})
	return c, nil
}

// Health reports a status string for tool-style callers.
func (s *CourseService) Health(ctx context.Context) (string, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return "", err
	}
	return "OK - course catalog service is running. Total courses: " + strconv.FormatInt(n, 10), nil
}

// Search performs a full-text multi_match over name and description in
// Elasticsearch. Returns raw hits; an unconfigured client yields an
// empty result.
func (s *CourseService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *CourseService) indexCourse(ctx context.Context, c *entity.Course) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"url":         c.URL,
		"description": c.Description,
		"provider":    c.Provider,
		"level":       c.Level,
		"rating":      c.Rating,
		"updated_at":  c.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: strconv.FormatInt(c.ID, 10), Body: strings.NewReader(string(b)), Refresh: "false"}
	tctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(tctx, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("course_id", c.ID).Warn("es index failed")
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("course_id", c.ID).Warn("es index response error")
	}
}

func (s *CourseService) deindexCourse(ctx context.Context, id int64) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: strconv.FormatInt(id, 10)}
	tctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(tctx, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("course_id", id).Warn("es delete failed")
		return
	}
	_ = res.Body.Close()
}

func (s *CourseService) publish(ctx context.Context, typ string, data map[string]any) {
	if s.Pub == nil {
		return
	}
	if err := s.Pub.PublishJSON(ctx, events.New(typ, data)); err != nil {
		s.Logger.WithError(err).WithField("event", typ).Warn("event publish failed")
	}
}
