package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/api"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/config"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-courses-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-courses-api/internal/shared/logger"
	apimodels "github.com/IvanChernomyrdin/go-courses-api/internal/shared/models"
)

// memStore — хранилище в памяти с теми же гарантиями, что и PostgreSQL:
// уникальный email, владелец курса обязан существовать, запись только по id и user_id.
type memStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]models.User
	courses map[uuid.UUID]models.Course
	down    bool
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[uuid.UUID]models.User{},
		courses: map[uuid.UUID]models.Course{},
	}
}

func (s *memStore) setDown(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.down = down
}

func (s *memStore) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.down {
		return errors.New("connection refused")
	}
	return nil
}

func (s *memStore) Create(_ context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.EmailAddress == u.EmailAddress {
			return models.User{}, serr.ErrAlreadyExists
		}
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	s.users[u.ID] = u
	return u, nil
}

func (s *memStore) GetByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.EmailAddress == email {
			return u, nil
		}
	}
	return models.User{}, serr.ErrNotFound
}

type memCourses struct{ *memStore }

func (s memCourses) withOwner(c models.Course) models.CourseWithOwner {
	return models.CourseWithOwner{Course: c, Owner: s.users[c.UserID].Identity()}
}

func (s memCourses) List(context.Context) ([]models.CourseWithOwner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CourseWithOwner, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, s.withOwner(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s memCourses) GetByID(_ context.Context, id uuid.UUID) (models.CourseWithOwner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courses[id]
	if !ok {
		return models.CourseWithOwner{}, serr.ErrNotFound
	}
	return s.withOwner(c), nil
}

func (s memCourses) Create(_ context.Context, userID uuid.UUID, f models.CourseFields) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		return models.Course{}, serr.ErrConstraint
	}
	now := time.Now()
	c := models.Course{
		ID: uuid.New(), Title: f.Title, Description: f.Description,
		EstimatedTime: f.EstimatedTime, MaterialsNeeded: f.MaterialsNeeded,
		UserID: userID, CreatedAt: now, UpdatedAt: now,
	}
	s.courses[c.ID] = c
	return c, nil
}

func (s memCourses) Update(_ context.Context, course models.Course, f models.CourseFields) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courses[course.ID]
	if !ok || c.UserID != course.UserID {
		return models.Course{}, serr.ErrNotFound
	}
	c.Title, c.Description = f.Title, f.Description
	c.EstimatedTime, c.MaterialsNeeded = f.EstimatedTime, f.MaterialsNeeded
	c.UpdatedAt = time.Now()
	s.courses[c.ID] = c
	return c, nil
}

func (s memCourses) Delete(_ context.Context, course models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courses[course.ID]
	if !ok || c.UserID != course.UserID {
		return serr.ErrNotFound
	}
	delete(s.courses, course.ID)
	return nil
}

func newTestServer(t *testing.T) (*httptest.Server, *memStore) {
	t.Helper()

	store := newMemStore()
	hasher := crypto.BcryptHasher{Cost: bcrypt.MinCost}
	svc := &service.Services{
		Auth:    service.NewAuthService(store, hasher),
		Users:   service.NewUsersService(store, hasher),
		Courses: service.NewCoursesService(memCourses{store}),
		Health:  store,
	}
	h := api.NewHandler(svc, logger.Nop(), 1<<20)

	srv := httptest.NewServer(NewRouter(h, config.CORSConfig{}))
	t.Cleanup(srv.Close)
	return srv, store
}

type creds struct{ email, password string }

func do(t *testing.T, srv *httptest.Server, method, path string, c *creds, body string) (*http.Response, string) {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, rd)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if c != nil {
		req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.email+":"+c.password)))
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func signup(t *testing.T, srv *httptest.Server, first, email, password string) creds {
	t.Helper()
	resp, _ := do(t, srv, http.MethodPost, "/api/users", nil,
		`{"firstName":"`+first+`","lastName":"Smith","emailAddress":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
	return creds{email: email, password: password}
}

func me(t *testing.T, srv *httptest.Server, c creds) apimodels.User {
	t.Helper()
	resp, body := do(t, srv, http.MethodGet, "/api/users", &c, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var u apimodels.User
	require.NoError(t, json.Unmarshal([]byte(body), &u))
	return u
}

func TestRouter_CourseLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	u1 := signup(t, srv, "Joe", "joe@smith.com", "joepassword")
	u2 := signup(t, srv, "Sally", "sally@jones.com", "sallypassword")
	u1ID := me(t, srv, u1).ID

	// U1 создаёт курс
	resp, _ := do(t, srv, http.MethodPost, "/api/courses", &u1, `{"title":"A","description":"B"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	location := resp.Header.Get("Location")
	require.True(t, strings.HasPrefix(location, "/api/courses/"))

	// читает кто угодно, владелец — U1
	resp, body := do(t, srv, http.MethodGet, location, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var course apimodels.Course
	require.NoError(t, json.Unmarshal([]byte(body), &course))
	require.Equal(t, u1ID, course.UserID)
	require.NotNil(t, course.User)
	require.Equal(t, "joe@smith.com", course.User.EmailAddress)
	require.NotContains(t, strings.ToLower(body), "password")

	// U2 не владелец
	resp, body = do(t, srv, http.MethodPut, location, &u2, `{"title":"Hijacked","description":"B"}`)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.JSONEq(t, `{"message":"Forbidden"}`, body)

	_, body = do(t, srv, http.MethodGet, location, nil, "")
	require.Contains(t, body, `"title":"A"`)

	resp, _ = do(t, srv, http.MethodDelete, location, &u2, "")
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// U1 удаляет
	resp, body = do(t, srv, http.MethodDelete, location, &u1, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Empty(t, body)

	resp, _ = do(t, srv, http.MethodGet, location, nil, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_UpdateByOwner(t *testing.T) {
	srv, _ := newTestServer(t)
	u1 := signup(t, srv, "Joe", "joe@smith.com", "joepassword")

	resp, _ := do(t, srv, http.MethodPost, "/api/courses", &u1, `{"title":"A","description":"B","estimatedTime":"2 hours"}`)
	location := resp.Header.Get("Location")

	resp, body := do(t, srv, http.MethodPut, location, &u1, `{"title":"A2","description":"B2","materialsNeeded":"* Glue"}`)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Empty(t, body)

	_, body = do(t, srv, http.MethodGet, location, nil, "")
	var course apimodels.Course
	require.NoError(t, json.Unmarshal([]byte(body), &course))
	require.Equal(t, "A2", course.Title)
	require.Nil(t, course.EstimatedTime)
	require.NotNil(t, course.MaterialsNeeded)
	require.Equal(t, "* Glue", *course.MaterialsNeeded)

	resp, body = do(t, srv, http.MethodGet, "/api/courses", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []apimodels.Course
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list, 1)
}

func TestRouter_CheckOrder(t *testing.T) {
	srv, _ := newTestServer(t)
	u1 := signup(t, srv, "Joe", "joe@smith.com", "joepassword")
	u2 := signup(t, srv, "Sally", "sally@jones.com", "sallypassword")

	resp, _ := do(t, srv, http.MethodPost, "/api/courses", &u1, `{"title":"A","description":"B"}`)
	location := resp.Header.Get("Location")

	// 400 раньше 401
	resp, body := do(t, srv, http.MethodPut, location, nil, `{"title":" ","description":""}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.JSONEq(t, `{"errors":["Please provide a value for \"title\"","Please provide a value for \"description\""]}`, body)

	resp, body = do(t, srv, http.MethodPost, "/api/courses", nil, `{}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.JSONEq(t, `{"errors":["Please provide a value for \"title\"","Please provide a value for \"description\""]}`, body)
	require.Empty(t, resp.Header.Get("WWW-Authenticate"))

	// ни один ответ не содержит хэш пароля
	_, body = do(t, srv, http.MethodGet, "/api/users", &u1, "")
	require.NotContains(t, strings.ToLower(body), "password")
	require.NotContains(t, body, "$2")
	resp, body = do(t, srv, http.MethodGet, "/api/courses", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "joe@smith.com")
	require.NotContains(t, strings.ToLower(body), "password")
	require.NotContains(t, body, "$2")

	// 401 без учётных данных
	resp, body = do(t, srv, http.MethodPut, location, nil, `{"title":"A","description":"B"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.JSONEq(t, `{"message":"Access Denied"}`, body)
	require.Equal(t, api.WWWAuthenticate, resp.Header.Get("WWW-Authenticate"))

	resp, _ = do(t, srv, http.MethodDelete, location, nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// 404 раньше 403
	missing := "/api/courses/" + uuid.NewString()
	resp, _ = do(t, srv, http.MethodPut, missing, &u2, `{"title":"A","description":"B"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = do(t, srv, http.MethodDelete, missing, &u2, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = do(t, srv, http.MethodDelete, "/api/courses/not-a-uuid", &u2, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_Users(t *testing.T) {
	srv, _ := newTestServer(t)
	u1 := signup(t, srv, "Joe", "joe@smith.com", "joepassword")

	// повторный email
	resp, body := do(t, srv, http.MethodPost, "/api/users", nil,
		`{"firstName":"Joe","lastName":"Smith","emailAddress":"joe@smith.com","password":"other"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.JSONEq(t, `{"errors":["The email address you entered already exists"]}`, body)

	// пустое тело: все поля перечислены
	resp, body = do(t, srv, http.MethodPost, "/api/users", nil, `{}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errs apimodels.ErrorsResponse
	require.NoError(t, json.Unmarshal([]byte(body), &errs))
	require.Len(t, errs.Errors, 4)

	_, body = do(t, srv, http.MethodGet, "/api/users", &u1, "")
	require.NotContains(t, strings.ToLower(body), "password")
	require.NotContains(t, body, "$2")

	// неверный пароль и неизвестный email неотличимы снаружи
	wrong := creds{email: u1.email, password: "nope"}
	resp1, body1 := do(t, srv, http.MethodGet, "/api/users", &wrong, "")
	ghost := creds{email: "ghost@mail.com", password: "nope"}
	resp2, body2 := do(t, srv, http.MethodGet, "/api/users", &ghost, "")
	require.Equal(t, http.StatusUnauthorized, resp1.StatusCode)
	require.Equal(t, resp1.StatusCode, resp2.StatusCode)
	require.Equal(t, body1, body2)

	resp, _ = do(t, srv, http.MethodGet, "/api/users", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_System(t *testing.T) {
	srv, store := newTestServer(t)

	resp, body := do(t, srv, http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"message":"Welcome to the course REST API!"}`, body)

	resp, body = do(t, srv, http.MethodGet, "/api/health", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"status":"ok"}`, body)

	store.setDown(true)
	resp, _ = do(t, srv, http.MethodGet, "/api/health", nil, "")
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, body = do(t, srv, http.MethodGet, "/nope", nil, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.JSONEq(t, `{"message":"Route Not Found"}`, body)

	resp, body = do(t, srv, http.MethodPatch, "/api/courses", nil, "")
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	require.JSONEq(t, `{"message":"Method Not Allowed"}`, body)

	resp, body = do(t, srv, http.MethodGet, "/api/courses", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `[]`, body)
}
