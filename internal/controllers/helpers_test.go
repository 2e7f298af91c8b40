package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"skillbot/internal/models"
	"skillbot/internal/services"
	"skillbot/internal/storage"
	"skillbot/internal/structures"
	"skillbot/internal/testutil"
)

const adminID = "42"

type testEnv struct {
	conf   *structures.Config
	store  *testutil.MockUserStore
	cache  *testutil.MockCache
	sender *testutil.MockSender
	logger *testutil.MockLogger
	api    *ApiController
	admin  *AdminController
}

func newTestEnv(t *testing.T) *testEnv {
	conf := &structures.Config{
		Storage: structures.StorageConfig{Timezone: "UTC", ExportDir: t.TempDir()},
		Admin:   structures.AdminConfig{IDs: []string{adminID}},
		Limits: structures.LimitsConfig{
			SessionMinMinutes: 1,
			SessionMaxMinutes: 600,
			GoalMinMinutes:    1,
			GoalMaxMinutes:    10000,
			SkillNameMin:      2,
			SkillNameMax:      50,
			TopUsers:          10,
		},
		Catalog: models.DefaultCatalog().WithDefaults(),
	}
	env := &testEnv{
		conf:   conf,
		store:  testutil.NewMockUserStore(),
		cache:  testutil.NewMockCache(),
		sender: &testutil.MockSender{},
		logger: &testutil.MockLogger{},
	}
	metrics := &testutil.MockMetrics{}
	locks := services.NewUserLocks()

	skills := services.NewSkillService(conf, env.store, locks, env.logger, metrics)
	achievements := services.NewAchievementService(conf, env.store, locks, env.logger, metrics)
	engagement := services.NewEngagementService(conf, env.store, locks, achievements, env.logger)
	stats := services.NewStatisticService(conf, env.store)
	exporter := storage.NewExporter(conf, &testutil.MockCompressor{}, env.logger)
	admin := services.NewAdminService(conf, env.store, exporter, stats, env.sender, env.logger, metrics)

	env.api = NewApiController(conf, env.logger, skills, achievements, engagement, stats, env.cache)
	env.admin = NewAdminController(conf, env.logger, admin)
	return env
}

// call runs handler with the caller identity set. An empty userID sends no
// identity header.
func call(handler http.HandlerFunc, method, target, userID, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if userID != "" {
		req.Header.Set(UserIDHeader, userID)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func (e *testEnv) addSkill(t *testing.T, userID, name string) {
	t.Helper()
	rr := call(e.api.AddSkill, http.MethodPost, "/skills", userID, `{"name":"`+name+`","category":"Music"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}
