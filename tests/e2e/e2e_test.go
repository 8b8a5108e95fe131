package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crm/internal/database"
	"crm/internal/domain"
	"crm/internal/middleware"
	"crm/internal/modules/admin"
	"crm/internal/modules/auth"
	"crm/internal/modules/client"
	"crm/internal/modules/lead"
	"crm/internal/modules/manager"
	"crm/internal/modules/task"
	"crm/internal/pkg/jwt"
	"crm/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type env struct {
	router *gin.Engine
}

// setup wires the full API against a fresh in-memory sqlite database and
// seeds an admin, a manager and one employee reporting to the manager.
func setup(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// in-memory sqlite exists per connection, keep the pool at one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	clientRepo := repository.NewClientRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	jwtService := jwt.New("e2e-secret", time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwtService))
	leadHandler := lead.NewHandler(lead.NewService(leadRepo))
	taskHandler := task.NewHandler(task.NewService(taskRepo, leadRepo))
	clientHandler := client.NewHandler(client.NewService(clientRepo))
	managerHandler := manager.NewHandler(manager.NewService(leadRepo, userRepo, clientRepo))
	adminHandler := admin.NewHandler(admin.NewService(userRepo, leadRepo, clientRepo))

	router := gin.New()
	api := router.Group("/api")
	authHandler.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtService), middleware.CurrentUser(userRepo))

	authHandler.RegisterProtectedRoutes(protected)

	sales := protected.Group("")
	sales.Use(middleware.RequireRole(domain.RoleEmployee, domain.RoleManager))
	leadHandler.RegisterRoutes(sales.Group("/leads"))
	taskHandler.RegisterRoutes(sales.Group("/tasks"))
	clientHandler.RegisterRoutes(sales.Group("/clients"))

	mgr := protected.Group("/manager")
	mgr.Use(middleware.RequireRole(domain.RoleManager))
	managerHandler.RegisterRoutes(mgr)
	mgr.POST("/change-password", authHandler.ChangePassword)

	adm := protected.Group("/admin")
	adm.Use(middleware.AdminOnly())
	adminHandler.RegisterRoutes(adm)

	employees := protected.Group("/employees")
	adminHandler.RegisterEmployeeRoutes(employees)
	employees.POST("/change-password", authHandler.ChangePassword)

	ctx := context.Background()
	seedUser(t, userRepo, ctx, "admin", "Admin123!", domain.RoleAdmin, nil)
	maria := seedUser(t, userRepo, ctx, "maria", "Manager123!", domain.RoleManager, nil)
	seedUser(t, userRepo, ctx, "bob", "Employee123!", domain.RoleEmployee, &maria.ID)

	return &env{router: router}
}

func seedUser(t *testing.T, users *repository.UserRepository, ctx context.Context, username, password string, role domain.Role, managerID *int64) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Now()
	u := &domain.User{
		Name:         username,
		Username:     username,
		PasswordHash: string(hash),
		Email:        username + "@crm.local",
		Role:         role,
		ManagerID:    managerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, users.Create(ctx, u))
	return u
}

func (e *env) do(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success, "expected success envelope, got: %s", w.Body.String())
	return body.Data
}

func (e *env) login(t *testing.T, username, password string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)
	token, ok := data["token"].(string)
	require.True(t, ok)
	return token
}

func TestLogin_InvalidCredentials(t *testing.T) {
	e := setup(t)

	w := e.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "bob",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
}

func TestRoleEnforcement(t *testing.T) {
	e := setup(t)
	bobToken := e.login(t, "bob", "Employee123!")
	adminToken := e.login(t, "admin", "Admin123!")

	// employee cannot reach admin or manager surfaces
	w := e.do(t, http.MethodGet, "/api/admin/allLeads", bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = e.do(t, http.MethodGet, "/api/manager/leads", bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// admin is not part of the sales surface
	w = e.do(t, http.MethodGet, "/api/leads/myLeads", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// no token at all
	w = e.do(t, http.MethodGet, "/api/leads/myLeads", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Self-service conversion: patching a lead to converted creates the client
// with the N/A address and removes the lead row.
func TestLeadLifecycle_SelfServiceConversion(t *testing.T) {
	e := setup(t)
	bobToken := e.login(t, "bob", "Employee123!")

	w := e.do(t, http.MethodPost, "/api/leads/newLead", bobToken, gin.H{
		"name":    "Acme Contact",
		"email":   "contact@acme.test",
		"phone":   "+100200300",
		"company": "Acme",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeData(t, w)["lead"].(map[string]any)
	leadID := int64(created["id"].(float64))
	assert.Equal(t, "new", created["status"])

	// partial update: only the status changes
	w = e.do(t, http.MethodPut, "/api/leads/updateLead", bobToken, gin.H{
		"id":     leadID,
		"status": "qualified",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeData(t, w)["lead"].(map[string]any)
	assert.Equal(t, "qualified", updated["status"])
	assert.Equal(t, "Acme Contact", updated["name"])

	// convert
	w = e.do(t, http.MethodPut, "/api/leads/updateLead", bobToken, gin.H{
		"id":     leadID,
		"status": "converted",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	convData := decodeData(t, w)
	converted := convData["client"].(map[string]any)
	assert.Equal(t, "Acme Contact", converted["name"])
	assert.Equal(t, "N/A", converted["address"])

	// lead is gone, client exists
	w = e.do(t, http.MethodGet, "/api/leads/myLeads", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	leads := decodeData(t, w)["leads"].([]any)
	assert.Empty(t, leads)

	w = e.do(t, http.MethodGet, "/api/clients/myClients", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	clients := decodeData(t, w)["clients"].([]any)
	require.Len(t, clients, 1)

	// converting the same id again fails, the lead no longer exists
	w = e.do(t, http.MethodPut, "/api/leads/updateLead", bobToken, gin.H{
		"id":     leadID,
		"status": "converted",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Manager approval: the client is created but the lead row survives with
// status converted, unlike the self-service path.
func TestManagerApproval_RetainsLead(t *testing.T) {
	e := setup(t)
	bobToken := e.login(t, "bob", "Employee123!")
	mariaToken := e.login(t, "maria", "Manager123!")

	w := e.do(t, http.MethodPost, "/api/leads/newLead", bobToken, gin.H{
		"name":   "Globex Contact",
		"email":  "g@globex.test",
		"phone":  "+555",
		"status": "approval_pending",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	leadID := int64(decodeData(t, w)["lead"].(map[string]any)["id"].(float64))

	// the pending lead shows up in the manager's team view
	w = e.do(t, http.MethodGet, "/api/manager/leads", mariaToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	teamLeads := decodeData(t, w)["leads"].([]any)
	require.Len(t, teamLeads, 1)
	assert.Equal(t, "approval_pending", teamLeads[0].(map[string]any)["status"])

	w = e.do(t, http.MethodPost, "/api/manager/approve-or-reject", mariaToken, gin.H{
		"lead_id": leadID,
		"action":  "approve",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// lead retained as converted
	w = e.do(t, http.MethodGet, "/api/leads/myLeads", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	leads := decodeData(t, w)["leads"].([]any)
	require.Len(t, leads, 1)
	assert.Equal(t, "converted", leads[0].(map[string]any)["status"])

	// client created for the employee
	w = e.do(t, http.MethodGet, "/api/clients/myClients", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	clients := decodeData(t, w)["clients"].([]any)
	require.Len(t, clients, 1)

	// a second decision on the same lead is refused
	w = e.do(t, http.MethodPost, "/api/manager/approve-or-reject", mariaToken, gin.H{
		"lead_id": leadID,
		"action":  "approve",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "LEAD_NOT_PENDING")
}

func TestManagerReject_RevertsToQualified(t *testing.T) {
	e := setup(t)
	bobToken := e.login(t, "bob", "Employee123!")
	mariaToken := e.login(t, "maria", "Manager123!")

	w := e.do(t, http.MethodPost, "/api/leads/newLead", bobToken, gin.H{
		"name":   "Initech Contact",
		"email":  "i@initech.test",
		"phone":  "+777",
		"status": "approval_pending",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	leadID := int64(decodeData(t, w)["lead"].(map[string]any)["id"].(float64))

	w = e.do(t, http.MethodPost, "/api/manager/approve-or-reject", mariaToken, gin.H{
		"lead_id": leadID,
		"action":  "reject",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = e.do(t, http.MethodGet, "/api/leads/myLeads", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	leads := decodeData(t, w)["leads"].([]any)
	require.Len(t, leads, 1)
	assert.Equal(t, "qualified", leads[0].(map[string]any)["status"])

	// no client was created
	w = e.do(t, http.MethodGet, "/api/clients/myClients", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeData(t, w)["clients"].([]any))
}

func TestTaskLifecycle(t *testing.T) {
	e := setup(t)
	bobToken := e.login(t, "bob", "Employee123!")

	// no leads yet, task creation refused
	w := e.do(t, http.MethodPost, "/api/tasks/newTask", bobToken, gin.H{
		"title":           "Call nobody",
		"related_lead_id": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "NO_LEADS")

	w = e.do(t, http.MethodPost, "/api/leads/newLead", bobToken, gin.H{
		"name":  "Acme Contact",
		"email": "contact@acme.test",
		"phone": "+100200300",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	leadID := int64(decodeData(t, w)["lead"].(map[string]any)["id"].(float64))

	// past due date refused
	past := time.Now().Add(-time.Hour).Format(time.RFC3339)
	w = e.do(t, http.MethodPost, "/api/tasks/newTask", bobToken, gin.H{
		"title":           "Too late",
		"related_lead_id": leadID,
		"due_date":        past,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "PAST_DUE_DATE")

	// referencing a lead that is not bob's refused
	w = e.do(t, http.MethodPost, "/api/tasks/newTask", bobToken, gin.H{
		"title":           "Wrong lead",
		"related_lead_id": leadID + 100,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "LEAD_NOT_OWNED")

	w = e.do(t, http.MethodPost, "/api/tasks/newTask", bobToken, gin.H{
		"title":           "Call Acme",
		"related_lead_id": leadID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	taskID := int64(decodeData(t, w)["task"].(map[string]any)["id"].(float64))

	w = e.do(t, http.MethodGet, "/api/tasks/myTasks", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	tasks := decodeData(t, w)["tasks"].([]any)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Acme Contact", tasks[0].(map[string]any)["related_lead_name"])

	// completing deletes the task
	w = e.do(t, http.MethodPut, "/api/tasks/updateTask", bobToken, gin.H{
		"id":     taskID,
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "completed and deleted")

	w = e.do(t, http.MethodGet, "/api/tasks/myTasks", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeData(t, w)["tasks"].([]any))
}

func TestAdminEmployeeManagement(t *testing.T) {
	e := setup(t)
	adminToken := e.login(t, "admin", "Admin123!")

	w := e.do(t, http.MethodPost, "/api/admin/addEmployee", adminToken, gin.H{
		"name":     "Dana Reed",
		"username": "dana",
		"password": "Str0ngPass!",
		"email":    "dana@crm.local",
		"role":     "employee",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// the stored password is hashed, the new account can log in
	e.login(t, "dana", "Str0ngPass!")

	// duplicate username refused
	w = e.do(t, http.MethodPost, "/api/admin/addEmployee", adminToken, gin.H{
		"name":     "Dana Clone",
		"username": "dana",
		"password": "Str0ngPass!",
		"email":    "dana2@crm.local",
		"role":     "employee",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = e.do(t, http.MethodGet, "/api/admin/allEmployees", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	employees := decodeData(t, w)["employees"].([]any)
	assert.Len(t, employees, 4)
	for _, emp := range employees {
		_, hasHash := emp.(map[string]any)["password_hash"]
		assert.False(t, hasHash)
	}

	// lookup by id
	first := employees[0].(map[string]any)
	w = e.do(t, http.MethodGet, fmt.Sprintf("/api/admin/employees/%d", int64(first["id"].(float64))), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodGet, "/api/admin/employees/9999", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChangePassword_Flow(t *testing.T) {
	e := setup(t)
	bobToken := e.login(t, "bob", "Employee123!")

	// weak password rejected
	w := e.do(t, http.MethodPost, "/api/employees/change-password", bobToken, gin.H{
		"oldPassword": "Employee123!",
		"newPassword": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "WEAK_PASSWORD")

	// wrong old password rejected
	w = e.do(t, http.MethodPost, "/api/employees/change-password", bobToken, gin.H{
		"oldPassword": "not-it",
		"newPassword": "BrandNew2#",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INCORRECT_OLD_PASSWORD")

	// success
	w = e.do(t, http.MethodPost, "/api/employees/change-password", bobToken, gin.H{
		"oldPassword": "Employee123!",
		"newPassword": "BrandNew2#",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// old password no longer works, new one does
	w = e.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "bob",
		"password": "Employee123!",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	e.login(t, "bob", "BrandNew2#")
}
