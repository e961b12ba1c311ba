package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"svoji/internal/advisor"
	"svoji/internal/auth"
	"svoji/internal/budget"
	"svoji/internal/chat"
	"svoji/internal/checklist"
	"svoji/internal/couple"
	"svoji/internal/database"
	"svoji/internal/guest"
	"svoji/internal/llm"
	"svoji/internal/metrics"
	"svoji/internal/vendor"
	"svoji/internal/website"
)

type stubChatGenerator struct {
	reply string
}

func (g *stubChatGenerator) GenerateChat(ctx context.Context, system string, history []llm.Turn, message string) (llm.ContentResponse, error) {
	return llm.ContentResponse{Content: g.reply}, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	chats := chat.NewRepository(db.SQL)
	return New(Deps{
		Auth:     auth.NewService("test-secret"),
		Couples:  couple.NewRepository(db.SQL),
		Items:    checklist.NewRepository(db.SQL),
		Guests:   guest.NewRepository(db.SQL),
		Budgets:  budget.NewRepository(db.SQL),
		Chats:    chats,
		Websites: website.NewRepository(db.SQL),
		Vendors:  vendor.NewRepository(db.SQL),
		Advisor:  advisor.NewAdvisor(&stubChatGenerator{reply: "Zacnete rozpoctem."}, chats, metrics.NewStore(db.SQL)),
		Log:      zerolog.Nop(),
	})
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func registerCouple(t *testing.T, srv *Server, email string) string {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[authResponse](t, rec).Token
}

func onboardCouple(t *testing.T, srv *Server, token string, weddingDate time.Time) {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPut, "/api/profile", token, map[string]any{
		"partner1_name": "Anna",
		"partner2_name": "Petr",
		"wedding_date":  weddingDate.Format(time.RFC3339),
		"wedding_size":  "medium",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRegisterAndLogin(t *testing.T) {
	srv := newTestServer(t)

	token := registerCouple(t, srv, "anna@example.com")
	require.NotEmpty(t, token)

	// Duplicate registration is rejected.
	rec := doJSON(t, srv, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "anna@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "anna@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "anna@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "not-an-email",
		"password": "password123",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "short@example.com",
		"password": "short",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthRequired(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/checklist", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/checklist", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChecklistGeneratedOnce(t *testing.T) {
	srv := newTestServer(t)
	token := registerCouple(t, srv, "anna@example.com")

	// Before onboarding the checklist cannot be generated.
	rec := doJSON(t, srv, http.MethodGet, "/api/checklist", token, nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	onboardCouple(t, srv, token, time.Now().AddDate(1, 0, 0))

	rec = doJSON(t, srv, http.MethodGet, "/api/checklist", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := decodeBody[[]checklist.Item](t, rec)
	require.NotEmpty(t, first)

	// The second fetch reads the stored checklist instead of regenerating.
	rec = doJSON(t, srv, http.MethodGet, "/api/checklist", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	second := decodeBody[[]checklist.Item](t, rec)
	require.Len(t, second, len(first))
	require.Equal(t, first[0].ID, second[0].ID)
}

func TestChecklistToggle(t *testing.T) {
	srv := newTestServer(t)
	token := registerCouple(t, srv, "anna@example.com")
	onboardCouple(t, srv, token, time.Now().AddDate(1, 0, 0))

	rec := doJSON(t, srv, http.MethodGet, "/api/checklist", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeBody[[]checklist.Item](t, rec)
	require.NotEmpty(t, items)

	rec = doJSON(t, srv, http.MethodPatch, "/api/checklist/"+items[0].ID, token, map[string]bool{"completed": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	item := decodeBody[checklist.Item](t, rec)
	require.True(t, item.Completed)
	require.NotNil(t, item.CompletedAt)

	rec = doJSON(t, srv, http.MethodPatch, "/api/checklist/no-such-item", token, map[string]bool{"completed": true})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGuestLifecycle(t *testing.T) {
	srv := newTestServer(t)
	token := registerCouple(t, srv, "anna@example.com")

	rec := doJSON(t, srv, http.MethodPost, "/api/guests", token, map[string]any{
		"name":  "Jan Novák",
		"email": "jan@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[guest.Guest](t, rec)
	require.Equal(t, "pending", created.RSVPStatus)

	rec = doJSON(t, srv, http.MethodPatch, "/api/guests/"+created.ID, token, map[string]any{
		"name":        "Jan Novák",
		"rsvp_status": "confirmed",
		"plus_one":    true,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[guest.Guest](t, rec)
	require.Equal(t, "confirmed", updated.RSVPStatus)

	req := httptest.NewRequest(http.MethodGet, "/api/guests/export.csv", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	exportRec := httptest.NewRecorder()
	srv.ServeHTTP(exportRec, req)
	require.Equal(t, http.StatusOK, exportRec.Code)
	require.Contains(t, exportRec.Header().Get("Content-Type"), "text/csv")
	require.Contains(t, exportRec.Body.String(), "Jan Novák")

	rec = doJSON(t, srv, http.MethodDelete, "/api/guests/"+created.ID, token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/guests", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeBody[[]guest.Guest](t, rec))
}

func TestBudgetSummary(t *testing.T) {
	srv := newTestServer(t)
	token := registerCouple(t, srv, "anna@example.com")

	items := []map[string]any{
		{"name": "Fotograf", "category": "vendors", "estimated_cost": 25000.0, "actual_cost": 28000.0, "paid": true},
		{"name": "Místo hostiny", "category": "venue", "estimated_cost": 120000.0},
	}
	for _, it := range items {
		rec := doJSON(t, srv, http.MethodPost, "/api/budget", token, it)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doJSON(t, srv, http.MethodGet, "/api/budget/summary", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decodeBody[budget.Summary](t, rec)
	require.Equal(t, 145000.0, summary.TotalEstimated)
	require.Equal(t, 28000.0, summary.TotalActual)
	require.Equal(t, 28000.0, summary.TotalPaid)
	require.Equal(t, 28000.0, summary.ByCategory["vendors"])
	require.Equal(t, 120000.0, summary.ByCategory["venue"])
}

func TestChatAsk(t *testing.T) {
	srv := newTestServer(t)
	token := registerCouple(t, srv, "anna@example.com")

	// The advisor needs a complete profile.
	rec := doJSON(t, srv, http.MethodPost, "/api/chat", token, map[string]string{"message": "Kde zacit?"})
	require.Equal(t, http.StatusConflict, rec.Code)

	onboardCouple(t, srv, token, time.Now().AddDate(1, 0, 0))

	rec = doJSON(t, srv, http.MethodPost, "/api/chat", token, map[string]string{"message": "Kde zacit?"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	reply := decodeBody[chat.Message](t, rec)
	require.Equal(t, chat.RoleAssistant, reply.Role)
	require.Equal(t, "Zacnete rozpoctem.", reply.Content)

	rec = doJSON(t, srv, http.MethodGet, "/api/chat", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody[[]chat.Message](t, rec), 2)
}

func TestMicrositeAndRSVP(t *testing.T) {
	srv := newTestServer(t)
	token := registerCouple(t, srv, "anna@example.com")

	rec := doJSON(t, srv, http.MethodPut, "/api/website", token, map[string]any{
		"couple_names": "Anna & Petr",
		"published":    true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	site := decodeBody[website.Website](t, rec)
	require.Equal(t, "anna-petr", site.Slug)

	req := httptest.NewRequest(http.MethodGet, "/w/anna-petr", nil)
	pageRec := httptest.NewRecorder()
	srv.ServeHTTP(pageRec, req)
	require.Equal(t, http.StatusOK, pageRec.Code)
	require.Contains(t, pageRec.Header().Get("Content-Type"), "text/html")
	require.Contains(t, pageRec.Body.String(), "Anna &amp; Petr")

	// Guests RSVP through the public form without a token.
	form := strings.NewReader("slug=anna-petr&name=Jan Novák&email=jan@example.com&attending=yes&dietary=vegan")
	rsvpReq := httptest.NewRequest(http.MethodPost, "/api/rsvp", form)
	rsvpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rsvpRec := httptest.NewRecorder()
	srv.ServeHTTP(rsvpRec, rsvpReq)
	require.Equal(t, http.StatusOK, rsvpRec.Code, rsvpRec.Body.String())

	rec = doJSON(t, srv, http.MethodGet, "/api/guests", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	guests := decodeBody[[]guest.Guest](t, rec)
	require.Len(t, guests, 1)
	require.Equal(t, "confirmed", guests[0].RSVPStatus)

	// Unknown slugs 404 both for the page and the RSVP endpoint.
	req = httptest.NewRequest(http.MethodGet, "/w/nobody", nil)
	missRec := httptest.NewRecorder()
	srv.ServeHTTP(missRec, req)
	require.Equal(t, http.StatusNotFound, missRec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/rsvp", "", map[string]string{
		"slug":      "nobody",
		"name":      "Jan Novák",
		"email":     "jan@example.com",
		"attending": "yes",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVendorList(t *testing.T) {
	srv := newTestServer(t)

	for i, category := range []string{"photographer", "photographer", "venue"} {
		_, err := srv.vendors.Save(context.Background(), &vendor.Vendor{
			Name:     fmt.Sprintf("Dodavatel %d", i+1),
			Category: category,
			City:     "Praha",
		}, time.Now())
		require.NoError(t, err)
	}

	rec := doJSON(t, srv, http.MethodGet, "/api/vendors", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody[[]vendor.Vendor](t, rec), 3)

	rec = doJSON(t, srv, http.MethodGet, "/api/vendors?category=photographer", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody[[]vendor.Vendor](t, rec), 2)
}
