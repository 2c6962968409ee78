package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"leave-management-backend/config"
	"leave-management-backend/internal/mailer"
	"leave-management-backend/internal/model"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.LeaveRequest{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{JWTExpireHours: 1, DefaultLeaveBalance: 20}
	app := fiber.New()
	SetupAuthRoutes(app, db, cfg)
	SetupLeaveRoutes(app, db, mailer.New(cfg)) // no SMTP host: mail disabled
	SetupUserRoutes(app, db)
	SetupAnalyticsRoutes(app, db)
	return app
}

func leavePath(id int) string {
	return fmt.Sprintf("/api/leaves/%d/status", id)
}

func userPath(id uint) string {
	return fmt.Sprintf("/api/users/%d", id)
}

// doRequest fires a JSON request and decodes the response into out (which may
// be nil). Returns the status code.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body, out interface{}) int {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode response: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

// registerUser creates an account through the public endpoint and returns its
// id and bearer token.
func registerUser(t *testing.T, app *fiber.App, email, role string, balance int) (uint, string) {
	t.Helper()
	var resp map[string]interface{}
	status := doRequest(t, app, "POST", "/api/auth/register", "", map[string]interface{}{
		"name":          email,
		"email":         email,
		"password":      "secret123",
		"department":    "Engineering",
		"role":          role,
		"leave_balance": balance,
	}, &resp)
	if status != fiber.StatusCreated {
		t.Fatalf("register %s: status %d (%v)", email, status, resp)
	}
	return uint(resp["id"].(float64)), resp["token"].(string)
}

func TestAuthEndpoints(t *testing.T) {
	app := newTestApp(t)

	_, token := registerUser(t, app, "alice@company.com", "employee", 0)

	var dup map[string]interface{}
	if status := doRequest(t, app, "POST", "/api/auth/register", "", map[string]interface{}{
		"name": "Dup", "email": "alice@company.com", "password": "x",
	}, &dup); status != fiber.StatusBadRequest {
		t.Errorf("duplicate register status = %d, want 400", status)
	}

	var login map[string]interface{}
	if status := doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email": "alice@company.com", "password": "wrong",
	}, &login); status != fiber.StatusUnauthorized {
		t.Errorf("bad password login status = %d, want 401", status)
	}

	var me map[string]interface{}
	if status := doRequest(t, app, "GET", "/api/auth/me", token, nil, &me); status != fiber.StatusOK {
		t.Fatalf("me status = %d", status)
	}
	if me["email"] != "alice@company.com" {
		t.Errorf("me email = %v", me["email"])
	}
	if me["leave_balance"].(float64) != 20 {
		t.Errorf("default balance = %v, want 20", me["leave_balance"])
	}

	if status := doRequest(t, app, "GET", "/api/auth/me", "", nil, nil); status != fiber.StatusUnauthorized {
		t.Errorf("unauthenticated me status = %d, want 401", status)
	}
}

func TestLeaveLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)

	_, empToken := registerUser(t, app, "emp@company.com", "employee", 20)
	_, mgrToken := registerUser(t, app, "mgr@company.com", "manager", 20)

	var created map[string]interface{}
	status := doRequest(t, app, "POST", "/api/leaves", empToken, map[string]string{
		"leave_type": "annual",
		"start_date": "2024-03-01",
		"end_date":   "2024-03-05",
		"reason":     "family trip",
	}, &created)
	if status != fiber.StatusCreated {
		t.Fatalf("create leave status = %d (%v)", status, created)
	}
	if created["total_days"].(float64) != 5 || created["status"] != "pending" {
		t.Fatalf("created = %v days, status %v", created["total_days"], created["status"])
	}
	leaveID := int(created["id"].(float64))

	var reviewed map[string]interface{}
	status = doRequest(t, app, "PATCH",
		leavePath(leaveID), mgrToken,
		map[string]string{"status": "approved", "review_comment": "ok"}, &reviewed)
	if status != fiber.StatusOK {
		t.Fatalf("review status = %d (%v)", status, reviewed)
	}
	if reviewed["status"] != "approved" || reviewed["review_comment"] != "ok" {
		t.Errorf("reviewed = %v / %v", reviewed["status"], reviewed["review_comment"])
	}

	var me map[string]interface{}
	doRequest(t, app, "GET", "/api/auth/me", empToken, nil, &me)
	if me["leave_balance"].(float64) != 15 {
		t.Errorf("balance after approval = %v, want 15", me["leave_balance"])
	}

	var again map[string]interface{}
	if status := doRequest(t, app, "PATCH", leavePath(leaveID), mgrToken,
		map[string]string{"status": "rejected"}, &again); status != fiber.StatusBadRequest {
		t.Errorf("second review status = %d, want 400 (%v)", status, again)
	}

	var stats map[string]interface{}
	doRequest(t, app, "GET", "/api/leaves/stats", empToken, nil, &stats)
	if stats["total"].(float64) != 1 || stats["approved"].(float64) != 1 {
		t.Errorf("stats = %v", stats)
	}
}

func TestLeaveErrorStatusCodes(t *testing.T) {
	app := newTestApp(t)

	_, empToken := registerUser(t, app, "emp@company.com", "employee", 3)
	_, mgrToken := registerUser(t, app, "mgr@company.com", "manager", 20)
	_, mgr2Token := registerUser(t, app, "mgr2@company.com", "manager", 20)

	// Insufficient balance → 400, nothing persisted.
	var resp map[string]interface{}
	if status := doRequest(t, app, "POST", "/api/leaves", empToken, map[string]string{
		"leave_type": "annual", "start_date": "2024-03-01", "end_date": "2024-03-05",
	}, &resp); status != fiber.StatusBadRequest {
		t.Errorf("insufficient balance status = %d, want 400", status)
	}
	var mine []map[string]interface{}
	doRequest(t, app, "GET", "/api/leaves/my-leaves", empToken, nil, &mine)
	if len(mine) != 0 {
		t.Errorf("failed creation left %d records", len(mine))
	}

	// Bad date range → 400.
	if status := doRequest(t, app, "POST", "/api/leaves", empToken, map[string]string{
		"leave_type": "sick", "start_date": "2024-03-05", "end_date": "2024-03-01",
	}, nil); status != fiber.StatusBadRequest {
		t.Errorf("inverted range status = %d, want 400", status)
	}

	// Unknown id → 404.
	if status := doRequest(t, app, "PATCH", leavePath(9999), mgrToken,
		map[string]string{"status": "approved"}, nil); status != fiber.StatusNotFound {
		t.Errorf("missing request status = %d, want 404", status)
	}

	// Manager's own leave reviewed by another manager → 403 with reason.
	var mgrLeave map[string]interface{}
	doRequest(t, app, "POST", "/api/leaves", mgrToken, map[string]string{
		"leave_type": "casual", "start_date": "2024-03-01", "end_date": "2024-03-02",
	}, &mgrLeave)
	var forbidden map[string]interface{}
	if status := doRequest(t, app, "PATCH", leavePath(int(mgrLeave["id"].(float64))), mgr2Token,
		map[string]string{"status": "approved"}, &forbidden); status != fiber.StatusForbidden {
		t.Errorf("manager-on-manager review status = %d, want 403", status)
	}
	if forbidden["error"] != "only admin can approve manager leave requests" {
		t.Errorf("forbidden reason = %v", forbidden["error"])
	}

	// Employees cannot reach the review endpoint at all.
	if status := doRequest(t, app, "PATCH", leavePath(1), empToken,
		map[string]string{"status": "approved"}, nil); status != fiber.StatusForbidden {
		t.Errorf("employee review status = %d, want 403", status)
	}
}

func TestRoleGuardedListings(t *testing.T) {
	app := newTestApp(t)

	_, empToken := registerUser(t, app, "emp@company.com", "employee", 20)
	_, mgrToken := registerUser(t, app, "mgr@company.com", "manager", 20)
	_, adminToken := registerUser(t, app, "admin@company.com", "admin", 25)

	if status := doRequest(t, app, "GET", "/api/leaves/all", empToken, nil, nil); status != fiber.StatusForbidden {
		t.Errorf("employee /all status = %d, want 403", status)
	}
	if status := doRequest(t, app, "GET", "/api/leaves/all", mgrToken, nil, nil); status != fiber.StatusForbidden {
		t.Errorf("manager /all status = %d, want 403", status)
	}

	var all []map[string]interface{}
	if status := doRequest(t, app, "GET", "/api/leaves/all", adminToken, nil, &all); status != fiber.StatusOK {
		t.Errorf("admin /all status = %d, want 200", status)
	}

	if status := doRequest(t, app, "GET", "/api/leaves/team", empToken, nil, nil); status != fiber.StatusForbidden {
		t.Errorf("employee /team status = %d, want 403", status)
	}
	var team []map[string]interface{}
	if status := doRequest(t, app, "GET", "/api/leaves/team", mgrToken, nil, &team); status != fiber.StatusOK {
		t.Errorf("manager /team status = %d, want 200", status)
	}

	if status := doRequest(t, app, "GET", "/api/analytics/admin", mgrToken, nil, nil); status != fiber.StatusForbidden {
		t.Errorf("manager analytics status = %d, want 403", status)
	}
	var analytics map[string]interface{}
	if status := doRequest(t, app, "GET", "/api/analytics/admin", adminToken, nil, &analytics); status != fiber.StatusOK {
		t.Errorf("admin analytics status = %d, want 200", status)
	}
	if _, ok := analytics["overview"]; !ok {
		t.Errorf("analytics missing overview: %v", analytics)
	}
}

func TestUserManagementEndpoints(t *testing.T) {
	app := newTestApp(t)

	userID, _ := registerUser(t, app, "emp@company.com", "employee", 20)
	_, adminToken := registerUser(t, app, "admin@company.com", "admin", 25)

	var users []map[string]interface{}
	if status := doRequest(t, app, "GET", "/api/users", adminToken, nil, &users); status != fiber.StatusOK {
		t.Fatalf("list users status = %d", status)
	}
	if len(users) != 2 {
		t.Errorf("got %d users, want 2", len(users))
	}
	for _, u := range users {
		if _, leaked := u["password"]; leaked {
			t.Error("password serialized in user listing")
		}
	}

	var updated map[string]interface{}
	if status := doRequest(t, app, "PATCH", userPath(userID), adminToken,
		map[string]interface{}{"role": "manager", "leave_balance": 30}, &updated); status != fiber.StatusOK {
		t.Fatalf("update user status = %d (%v)", status, updated)
	}
	if updated["role"] != "manager" || updated["leave_balance"].(float64) != 30 {
		t.Errorf("updated = %v/%v", updated["role"], updated["leave_balance"])
	}

	if status := doRequest(t, app, "DELETE", userPath(userID), adminToken, nil, nil); status != fiber.StatusOK {
		t.Fatalf("delete user status = %d", status)
	}

	// Soft-deleted accounts can no longer sign in.
	if status := doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email": "emp@company.com", "password": "secret123",
	}, nil); status != fiber.StatusUnauthorized {
		t.Errorf("deactivated login status = %d, want 401", status)
	}
}
