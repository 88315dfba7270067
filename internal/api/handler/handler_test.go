package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/todokata/todokata/internal/api"
	"github.com/todokata/todokata/internal/api/response"
	"github.com/todokata/todokata/internal/service"
	"github.com/todokata/todokata/internal/store"
	"github.com/todokata/todokata/internal/store/sqlite"
	"github.com/todokata/todokata/pkg/todo"
)

// testSetup provides common test infrastructure
type testSetup struct {
	store  *store.Store
	svc    *service.TodoService
	router *chi.Mux
}

func newTestSetup(t *testing.T) *testSetup {
	t.Helper()

	s, err := store.Open(store.MemoryPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	svc := service.NewTodoService(sqlite.NewTodoRepository(s.DB()))
	router := api.NewRouter(svc, log.New(io.Discard, "", 0))

	return &testSetup{
		store:  s,
		svc:    svc,
		router: router,
	}
}

func (s *testSetup) doRequest(method, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decodeTask(t *testing.T, rr *httptest.ResponseRecorder) todo.Task {
	t.Helper()
	task, err := todo.DecodeTask(rr.Body.Bytes())
	if err != nil {
		t.Fatalf("response is not a valid task: %v (%s)", err, rr.Body.String())
	}
	return task
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var resp response.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp
}

// ========================
// System Tests
// ========================

func TestHealth_ReturnsOK(t *testing.T) {
	setup := newTestSetup(t)

	rr := setup.doRequest("GET", "/health", "")

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", resp["status"])
	}
}

// ========================
// Todo Tests
// ========================

func TestCreateTodo_Success(t *testing.T) {
	setup := newTestSetup(t)

	rr := setup.doRequest("POST", "/todos", `{"userId":"1","title":"Finish this kata","completed":false}`)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}

	task := decodeTask(t, rr)
	want := todo.Task{UserID: "1", ID: "1", Title: "Finish this kata", Completed: false}
	if task != want {
		t.Errorf("expected %+v, got %+v", want, task)
	}
}

func TestCreateTodo_CompletedDefaultsToFalse(t *testing.T) {
	setup := newTestSetup(t)

	rr := setup.doRequest("POST", "/todos", `{"userId":"1","title":"t"}`)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rr.Code)
	}
	if decodeTask(t, rr).Completed {
		t.Error("expected completed false")
	}
}

func TestCreateTodo_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"userId":`},
		{"wrong type", `{"userId":1,"title":"t"}`},
		{"missing title", `{"userId":"1"}`},
		{"client supplied id", `{"userId":"1","id":"9","title":"t"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := newTestSetup(t)

			rr := setup.doRequest("POST", "/todos", tt.body)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", rr.Code)
			}
			if resp := decodeError(t, rr); resp.Error.Code != "VALIDATION_FAILED" {
				t.Errorf("expected code VALIDATION_FAILED, got %s", resp.Error.Code)
			}
		})
	}
}

func TestCreateTodo_RequiresJSON(t *testing.T) {
	setup := newTestSetup(t)

	req := httptest.NewRequest("POST", "/todos", bytes.NewBufferString(`{"userId":"1","title":"t"}`))
	req.Header.Set("Content-Type", "text/plain")
	rr := httptest.NewRecorder()
	setup.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected status 415, got %d", rr.Code)
	}
}

func TestListTodos(t *testing.T) {
	setup := newTestSetup(t)

	rr := setup.doRequest("GET", "/todos", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if body := strings.TrimSpace(rr.Body.String()); body != "[]" {
		t.Errorf("expected empty array, got %s", body)
	}

	setup.doRequest("POST", "/todos", `{"userId":"1","title":"a"}`)
	setup.doRequest("POST", "/todos", `{"userId":"2","title":"b","completed":true}`)

	rr = setup.doRequest("GET", "/todos", "")
	tasks, err := todo.DecodeTasks(rr.Body.Bytes())
	if err != nil {
		t.Fatalf("response is not a valid task list: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(tasks))
	}
	if tasks[0].Title != "a" || tasks[1].Title != "b" {
		t.Errorf("unexpected order %+v", tasks)
	}
}

func TestGetTodo(t *testing.T) {
	setup := newTestSetup(t)
	setup.doRequest("POST", "/todos", `{"userId":"1","title":"delectus aut autem"}`)

	rr := setup.doRequest("GET", "/todos/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if task := decodeTask(t, rr); task.Title != "delectus aut autem" {
		t.Errorf("unexpected task %+v", task)
	}

	rr = setup.doRequest("GET", "/todos/2", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
	if resp := decodeError(t, rr); resp.Error.Code != "TODO_NOT_FOUND" {
		t.Errorf("expected code TODO_NOT_FOUND, got %s", resp.Error.Code)
	}
}

func TestReplaceTodo(t *testing.T) {
	setup := newTestSetup(t)
	setup.doRequest("POST", "/todos", `{"userId":"1","title":"before"}`)

	rr := setup.doRequest("PUT", "/todos/1", `{"userId":"1","id":"1","title":"after","completed":true}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	want := todo.Task{UserID: "1", ID: "1", Title: "after", Completed: true}
	if task := decodeTask(t, rr); task != want {
		t.Errorf("expected %+v, got %+v", want, task)
	}

	rr = setup.doRequest("PUT", "/todos/1", `{"userId":"1","id":"5","title":"x"}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for mismatched id, got %d", rr.Code)
	}

	rr = setup.doRequest("PUT", "/todos/99", `{"userId":"1","title":"x"}`)
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}

func TestDeleteTodo(t *testing.T) {
	setup := newTestSetup(t)
	setup.doRequest("POST", "/todos", `{"userId":"1","title":"doomed"}`)

	rr := setup.doRequest("DELETE", "/todos/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if body := strings.TrimSpace(rr.Body.String()); body != "{}" {
		t.Errorf("expected empty object, got %s", body)
	}

	rr = setup.doRequest("DELETE", "/todos/1", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}
