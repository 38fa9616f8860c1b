package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"apjatelpmo/internal/cache"
	"apjatelpmo/internal/handler"
	"apjatelpmo/internal/model"
	"apjatelpmo/internal/repository"
	"apjatelpmo/internal/service"
	"apjatelpmo/internal/sheet"
	"apjatelpmo/pkg/util"
)

const testSecret = "router-test-secret"

// testRouter wires the full HTTP surface against a fake sheet backend.
func testRouter(t *testing.T, backend http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	log := zap.NewNop()
	client := sheet.NewClient(srv.URL, 2*time.Second, log)
	store := cache.NewStore(nil, log)

	authService := service.NewAuthService(client, testSecret, "admin", false, log)
	projectService := service.NewProjectService(client, store, nil, "admin", false, log)
	reportService := service.NewReportService()
	exportService := service.NewExportService()

	r := NewRouter(
		handler.NewAuthHandler(authService),
		handler.NewProjectHandler(projectService),
		handler.NewDashboardHandler(projectService, reportService),
		handler.NewScheduleHandler(projectService),
		handler.NewExportHandler(projectService, reportService, exportService),
		handler.NewHistoryHandler(projectService, repository.NewHistoryRepository(nil, log)),
		testSecret,
		nil,
		log,
	)
	return r.Engine
}

func fakeSheetBackend(t *testing.T, projects []model.Project) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("action") {
		case "read":
			json.NewEncoder(w).Encode(projects)
		case "getUsers":
			json.NewEncoder(w).Encode([]model.Vendor{
				{ID: "v-telaga", Name: "PT Telaga Jaringan"},
			})
		case "login":
			io.WriteString(w, `{"success":true,"user":{"id":"v-telaga","name":"PT Telaga Jaringan"}}`)
		default:
			http.NotFound(w, r)
		}
	}
}

func routerProjects() []model.Project {
	return []model.Project{
		{ID: "prj-001", Name: "Relokasi Tol Jakarta", Location: "Jakarta", VendorID: "v-telaga", ScheduleItems: []model.ScheduleItem{
			{ID: "A", StartWeek: 1, DurationWeeks: 3},
			{ID: "B", StartWeek: 3, DurationWeeks: 2, Predecessors: []string{"A"}},
		}},
		{ID: "prj-002", Name: "Relokasi Tol Bandung", Location: "Bandung", VendorID: "v-nusantara"},
	}
}

func doRequest(engine *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	engine := testRouter(t, fakeSheetBackend(t, nil))
	w := doRequest(engine, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	engine := testRouter(t, fakeSheetBackend(t, nil))
	w := doRequest(engine, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	engine := testRouter(t, fakeSheetBackend(t, routerProjects()))

	w := doRequest(engine, http.MethodGet, "/projects", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(engine, http.MethodGet, "/projects", "garbage-token", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginThenListProjects(t *testing.T) {
	engine := testRouter(t, fakeSheetBackend(t, routerProjects()))

	w := doRequest(engine, http.MethodPost, "/login", "", `{"id":"v-telaga","password":"secret"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var loginResp struct {
		Token string       `json:"token"`
		User  model.Vendor `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Token)
	assert.Equal(t, "v-telaga", loginResp.User.ID)

	w = doRequest(engine, http.MethodGet, "/projects", loginResp.Token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Projects []model.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Projects, 1)
	assert.Equal(t, "prj-001", listResp.Projects[0].ID)
}

func TestVendorCannotReadOthersProject(t *testing.T) {
	engine := testRouter(t, fakeSheetBackend(t, routerProjects()))
	token, err := util.GenerateJWT("v-telaga", "PT Telaga Jaringan", false, testSecret)
	require.NoError(t, err)

	w := doRequest(engine, http.MethodGet, "/projects/prj-002", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminSeesAllProjects(t *testing.T) {
	engine := testRouter(t, fakeSheetBackend(t, routerProjects()))
	token, err := util.GenerateJWT("admin", "APJATEL PMO", true, testSecret)
	require.NoError(t, err)

	w := doRequest(engine, http.MethodGet, "/projects", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Projects []model.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Projects, 2)
}

func TestScheduleConflictEndpoint(t *testing.T) {
	engine := testRouter(t, fakeSheetBackend(t, routerProjects()))
	token, err := util.GenerateJWT("v-telaga", "PT Telaga Jaringan", false, testSecret)
	require.NoError(t, err)

	w := doRequest(engine, http.MethodGet, "/projects/prj-001/schedule/conflicts", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []struct {
			ItemID     string `json:"itemId"`
			Conflicted bool   `json:"conflicted"`
		} `json:"items"`
		TimelineWeeks int `json:"timelineWeeks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.False(t, resp.Items[0].Conflicted)
	assert.True(t, resp.Items[1].Conflicted)
	assert.Equal(t, 12, resp.TimelineWeeks)
}

func TestScheduleCheckEndpoint(t *testing.T) {
	engine := testRouter(t, fakeSheetBackend(t, nil))
	token, err := util.GenerateJWT("v-telaga", "PT Telaga Jaringan", false, testSecret)
	require.NoError(t, err)

	body := `{"items":[{"id":"A","startWeek":1,"durationWeeks":4},{"id":"B","startWeek":2,"durationWeeks":1,"predecessors":["A"]}]}`
	w := doRequest(engine, http.MethodPost, "/schedule/check", token, body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"conflicted":true`)
}

func TestDashboardSummaryEndpoint(t *testing.T) {
	engine := testRouter(t, fakeSheetBackend(t, routerProjects()))
	token, err := util.GenerateJWT("admin", "APJATEL PMO", true, testSecret)
	require.NoError(t, err)

	w := doRequest(engine, http.MethodGet, "/dashboard/summary?location=Jakarta", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp service.DashboardSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// Only prj-001 matches the location filter.
	assert.Equal(t, 1, resp.KPIs.TotalProjects)
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, "prj-001", resp.Projects[0].ID)
	// The status chart keeps covering the whole scoped population.
	statusTotal := 0
	for _, b := range resp.StatusData {
		statusTotal += b.Value
	}
	assert.Equal(t, 2, statusTotal)
}

func TestExportProjectsCSVEndpoint(t *testing.T) {
	engine := testRouter(t, fakeSheetBackend(t, routerProjects()))
	token, err := util.GenerateJWT("admin", "APJATEL PMO", true, testSecret)
	require.NoError(t, err)

	w := doRequest(engine, http.MethodGet, "/export/projects.csv", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), `"Relokasi Tol Jakarta"`)
}
