package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auditplay/internal/auth"
	"auditplay/internal/config"
	"auditplay/internal/handlers"
	"auditplay/internal/middleware"
	"auditplay/internal/models"
	"auditplay/internal/repository"
	"auditplay/internal/service"
	"auditplay/internal/testutil"
)

// newAPI wires repositories, services, and handlers onto a mux the same
// way the server does
func newAPI(tc *testutil.TestContainers) http.Handler {
	db := tc.DB

	userRepo := repository.NewUserRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	userResponseRepo := repository.NewUserResponseRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)

	authService := auth.NewService(&config.JWTConfig{
		Secret:     "test-secret-key-for-testing-only",
		Expiration: time.Hour,
	})
	authSvc := service.NewAuthService(userRepo, authService)
	auditSvc := service.NewAuditService(db, responseRepo, userResponseRepo, categoryRepo)
	evaluationSvc := service.NewEvaluationService(evaluationRepo)

	authHandler := handlers.NewAuthHandler(authSvc)
	categoryHandler := handlers.NewCategoryHandler(auditSvc)
	auditHandler := handlers.NewAuditHandler(auditSvc)
	userAuditHandler := handlers.NewUserAuditHandler(auditSvc, evaluationSvc)
	evaluationHandler := handlers.NewEvaluationHandler(evaluationSvc)

	authMw := middleware.NewAuthMiddleware(authService)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("GET /api/auth/me", authMw.Authenticate(http.HandlerFunc(authHandler.Me)))
	mux.HandleFunc("GET /api/categories", categoryHandler.GetCategories)
	mux.HandleFunc("POST /api/categories/resetAll", categoryHandler.ResetAll)
	mux.HandleFunc("POST /api/categories/{category}/reset", categoryHandler.ResetCategory)
	mux.HandleFunc("GET /api/audits/{category}", auditHandler.GetResponses)
	mux.HandleFunc("POST /api/audits/{category}", auditHandler.SaveResponses)
	mux.HandleFunc("GET /api/userAudits/pendingForAuditor/{auditorId}/{category}", userAuditHandler.PendingForAuditor)
	mux.HandleFunc("GET /api/userAudits/{category}/list", userAuditHandler.ListRespondents)
	mux.HandleFunc("GET /api/userAudits/{category}/{userId}", userAuditHandler.GetUserResponses)
	mux.HandleFunc("POST /api/userAudits/{category}", userAuditHandler.SaveUserResponses)
	mux.HandleFunc("POST /api/evaluations", evaluationHandler.Record)
	mux.HandleFunc("GET /api/evaluations/user/{userId}/{category}", evaluationHandler.ListForUser)

	return mux
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestAPI(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	containers := testutil.SetupPostgres(t)
	defer containers.Cleanup(t)

	api := newAPI(containers)

	t.Run("signup and login", func(t *testing.T) {
		containers.Reset(t)

		rec, body := doJSON(t, api, "POST", "/api/auth/signup", map[string]any{
			"name":     "Alice",
			"email":    "alice@test.com",
			"company":  "ACME",
			"role":     "Analyst",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["ok"])
		assert.NotEmpty(t, body["token"])

		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Alice", user["name"])
		assert.Equal(t, "alice@test.com", user["email"])
		assert.Equal(t, models.ProfileAudited, user["profile"])
		assert.NotContains(t, user, "password_hash")

		// Duplicate email
		rec, body = doJSON(t, api, "POST", "/api/auth/signup", map[string]any{
			"name":     "Alice Again",
			"email":    "alice@test.com",
			"password": "secret123",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.NotEmpty(t, body["error"])

		// Missing fields
		rec, _ = doJSON(t, api, "POST", "/api/auth/signup", map[string]any{
			"email": "x@test.com",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		// Login
		rec, body = doJSON(t, api, "POST", "/api/auth/login", map[string]any{
			"email":    "alice@test.com",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["ok"])
		assert.NotEmpty(t, body["token"])

		// Wrong password and unknown email produce the same error
		rec, body = doJSON(t, api, "POST", "/api/auth/login", map[string]any{
			"email":    "alice@test.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		wrongPasswordErr := body["error"]

		rec, body = doJSON(t, api, "POST", "/api/auth/login", map[string]any{
			"email":    "nobody@test.com",
			"password": "secret123",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, wrongPasswordErr, body["error"])
	})

	t.Run("current user endpoint", func(t *testing.T) {
		containers.Reset(t)
		fixtures := testutil.SetupFixtures(t, containers.DB)
		authHelper := testutil.NewAuthHelper()

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		rec := httptest.NewRecorder()
		api.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		req = httptest.NewRequest("GET", "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec = httptest.NewRecorder()
		api.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		req = httptest.NewRequest("GET", "/api/auth/me", nil)
		authHelper.AddAuthHeader(t, req, fixtures.AuditedUser)
		rec = httptest.NewRecorder()
		api.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["ok"])
		user := body["user"].(map[string]any)
		assert.Equal(t, float64(fixtures.AuditedUser.ID), user["id"])
		assert.Equal(t, fixtures.AuditedUser.Email, user["email"])
	})

	t.Run("shared audits flip category status", func(t *testing.T) {
		containers.Reset(t)

		rec, body := doJSON(t, api, "POST", "/api/audits/pessoas", map[string]any{
			"data": map[string]any{
				"q1": map[string]any{"answer": "yes", "justification": "policy exists"},
				"q2": map[string]any{"answer": "no"},
			},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, float64(2), body["saved"])

		rec, body = doJSON(t, api, "GET", "/api/audits/pessoas", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pessoas", body["category"])
		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		require.Contains(t, data, "q1")
		q1 := data["q1"].(map[string]any)
		assert.Equal(t, "yes", q1["answer"])

		rec, body = doJSON(t, api, "GET", "/api/categories", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		statuses := body["data"].(map[string]any)
		assert.Len(t, statuses, len(models.DefaultCategories))
		assert.Equal(t, models.StatusAnswered, statuses["pessoas"].(map[string]any)["status"])
		assert.Equal(t, models.StatusPending, statuses["fisicos"].(map[string]any)["status"])
		// The category is the map key, not repeated inside the value
		assert.NotContains(t, statuses["pessoas"].(map[string]any), "category")
	})

	t.Run("partial save keeps keys absent from the payload", func(t *testing.T) {
		containers.Reset(t)
		fixtures := testutil.SetupFixtures(t, containers.DB)
		userID := float64(fixtures.AuditedUser.ID)

		doJSON(t, api, "POST", "/api/audits/pessoas", map[string]any{
			"data": map[string]any{
				"q1": map[string]any{"answer": "yes"},
				"q2": map[string]any{"answer": "no", "justification": "gap"},
			},
		})

		// A later save naming only q1 is an upsert, not a replacement
		rec, body := doJSON(t, api, "POST", "/api/audits/pessoas", map[string]any{
			"data": map[string]any{
				"q1": map[string]any{"answer": "partial"},
			},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), body["saved"])

		_, body = doJSON(t, api, "GET", "/api/audits/pessoas", nil)
		data := body["data"].(map[string]any)
		require.Contains(t, data, "q2")
		assert.Equal(t, "partial", data["q1"].(map[string]any)["answer"])
		assert.Equal(t, "no", data["q2"].(map[string]any)["answer"])
		assert.Equal(t, "gap", data["q2"].(map[string]any)["justification"])

		// Same for per-user saves
		doJSON(t, api, "POST", "/api/userAudits/fisicos", map[string]any{
			"userId": userID,
			"data": map[string]any{
				"q1": map[string]any{"answer": "yes"},
				"q2": map[string]any{"answer": "no"},
			},
		})
		doJSON(t, api, "POST", "/api/userAudits/fisicos", map[string]any{
			"userId": userID,
			"data":   map[string]any{"q1": map[string]any{"answer": "partial"}},
		})

		_, body = doJSON(t, api, "GET", "/api/userAudits/fisicos/"+itoa(fixtures.AuditedUser.ID), nil)
		responses := body["data"].([]any)
		require.Len(t, responses, 2)
		answers := map[string]string{}
		for _, entry := range responses {
			resp := entry.(map[string]any)
			answers[resp["key"].(string)] = resp["answer"].(string)
		}
		assert.Equal(t, "partial", answers["q1"])
		assert.Equal(t, "no", answers["q2"])
	})

	t.Run("reset is non destructive", func(t *testing.T) {
		containers.Reset(t)

		doJSON(t, api, "POST", "/api/audits/pessoas", map[string]any{
			"data": map[string]any{"q1": map[string]any{"answer": "yes"}},
		})

		rec, body := doJSON(t, api, "POST", "/api/categories/pessoas/reset", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, "pessoas", body["category"])

		_, body = doJSON(t, api, "GET", "/api/categories", nil)
		statuses := body["data"].(map[string]any)
		assert.Equal(t, models.StatusPending, statuses["pessoas"].(map[string]any)["status"])

		// Answers survive the reset
		_, body = doJSON(t, api, "GET", "/api/audits/pessoas", nil)
		data := body["data"].(map[string]any)
		assert.Contains(t, data, "q1")

		// resetAll
		doJSON(t, api, "POST", "/api/audits/fisicos", map[string]any{
			"data": map[string]any{"q1": map[string]any{"answer": "yes"}},
		})
		rec, body = doJSON(t, api, "POST", "/api/categories/resetAll", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["ok"])

		_, body = doJSON(t, api, "GET", "/api/categories", nil)
		statuses = body["data"].(map[string]any)
		for _, category := range models.DefaultCategories {
			assert.Equal(t, models.StatusPending, statuses[category].(map[string]any)["status"])
		}
	})

	t.Run("user audits and per user statuses", func(t *testing.T) {
		containers.Reset(t)
		fixtures := testutil.SetupFixtures(t, containers.DB)
		userID := float64(fixtures.AuditedUser.ID)

		// Missing userId
		rec, _ := doJSON(t, api, "POST", "/api/userAudits/pessoas", map[string]any{
			"data": map[string]any{"q1": map[string]any{"answer": "yes"}},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec, body := doJSON(t, api, "POST", "/api/userAudits/pessoas", map[string]any{
			"userId": userID,
			"data": map[string]any{
				"q1": map[string]any{"answer": "yes", "justification": "ok"},
			},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), body["saved"])

		// Per-user statuses flip; global stays pending
		_, body = doJSON(t, api, "GET", "/api/categories?userId="+itoa(fixtures.AuditedUser.ID), nil)
		statuses := body["data"].(map[string]any)
		assert.Equal(t, models.StatusAnswered, statuses["pessoas"].(map[string]any)["status"])

		_, body = doJSON(t, api, "GET", "/api/categories", nil)
		statuses = body["data"].(map[string]any)
		assert.Equal(t, models.StatusPending, statuses["pessoas"].(map[string]any)["status"])

		// Respondent listing
		_, body = doJSON(t, api, "GET", "/api/userAudits/pessoas/list", nil)
		list := body["data"].([]any)
		require.Len(t, list, 1)
		assert.Equal(t, userID, list[0].(map[string]any)["user_id"])

		// Responses for the user
		_, body = doJSON(t, api, "GET", "/api/userAudits/pessoas/"+itoa(fixtures.AuditedUser.ID), nil)
		assert.Equal(t, "pessoas", body["category"])
		assert.Equal(t, userID, body["userId"])
		responses := body["data"].([]any)
		require.Len(t, responses, 1)
		first := responses[0].(map[string]any)
		assert.Equal(t, "q1", first["key"])
		assert.NotZero(t, first["response_id"])

		// Idempotent re-save keeps the response id
		doJSON(t, api, "POST", "/api/userAudits/pessoas", map[string]any{
			"userId": userID,
			"data":   map[string]any{"q1": map[string]any{"answer": "no"}},
		})
		_, body = doJSON(t, api, "GET", "/api/userAudits/pessoas/"+itoa(fixtures.AuditedUser.ID), nil)
		responses = body["data"].([]any)
		require.Len(t, responses, 1)
		assert.Equal(t, first["response_id"], responses[0].(map[string]any)["response_id"])
		assert.Equal(t, "no", responses[0].(map[string]any)["answer"])
	})

	t.Run("evaluations and pending flow", func(t *testing.T) {
		containers.Reset(t)
		fixtures := testutil.SetupFixtures(t, containers.DB)

		responseID := testutil.CreateUserResponse(t, containers.DB, fixtures.AuditedUser.ID, "pessoas", "q1", "yes")

		// Pending before any evaluation
		_, body := doJSON(t, api, "GET", "/api/userAudits/pendingForAuditor/"+itoa(fixtures.Auditor.ID)+"/pessoas", nil)
		pending := body["data"].([]any)
		require.Len(t, pending, 1)
		assert.Equal(t, float64(fixtures.AuditedUser.ID), pending[0].(map[string]any)["user_id"])

		// Missing fields rejected
		rec, _ := doJSON(t, api, "POST", "/api/evaluations", map[string]any{
			"auditorId": fixtures.Auditor.ID,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		// Record an evaluation
		rec, body = doJSON(t, api, "POST", "/api/evaluations", map[string]any{
			"auditorId":      fixtures.Auditor.ID,
			"userResponseId": responseID,
			"verdict":        models.VerdictCompliant,
			"comment":        "looks fine",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["ok"])
		assert.NotZero(t, body["id"])

		// The auditor's pending list is now empty
		_, body = doJSON(t, api, "GET", "/api/userAudits/pendingForAuditor/"+itoa(fixtures.Auditor.ID)+"/pessoas", nil)
		assert.Empty(t, body["data"])

		// Evaluation listing joins the question key
		_, body = doJSON(t, api, "GET", "/api/evaluations/user/"+itoa(fixtures.AuditedUser.ID)+"/pessoas", nil)
		evaluations := body["data"].([]any)
		require.Len(t, evaluations, 1)
		eval := evaluations[0].(map[string]any)
		assert.Equal(t, "q1", eval["key"])
		assert.Equal(t, models.VerdictCompliant, eval["verdict"])
		assert.Equal(t, "looks fine", eval["comment"])

		// Dangling response ids are accepted silently
		rec, _ = doJSON(t, api, "POST", "/api/evaluations", map[string]any{
			"auditorId":      fixtures.Auditor.ID,
			"userResponseId": 999999,
			"verdict":        models.VerdictNonCompliant,
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty listings encode as arrays", func(t *testing.T) {
		containers.Reset(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/userAudits/pessoas/list", nil)
		api.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"data": []}`, rec.Body.String())
	})
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
