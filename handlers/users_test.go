package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"finaura/api/models"
)

func TestCreateUser(t *testing.T) {
	store := newMemStore()
	_, router := newTestAPI(store, &fakeAnalyzer{}, &fakeChat{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/user/create?name=Asha&email=asha%40example.com", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var user models.UserProfile
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatal(err)
	}
	if user.Name != "Asha" || user.Email != "asha@example.com" {
		t.Errorf("user = %+v", user)
	}
	if user.ID == "" || user.CreatedAt == "" {
		t.Errorf("identity fields not set: %+v", user)
	}
	if _, ok := store.users[user.ID]; !ok {
		t.Error("user not persisted")
	}
}

func TestCreateUser_MissingParams(t *testing.T) {
	_, router := newTestAPI(newMemStore(), &fakeAnalyzer{}, &fakeChat{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/user/create?name=Asha", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	_, router := newTestAPI(newMemStore(), &fakeAnalyzer{}, &fakeChat{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetUserScore_PersistsScore(t *testing.T) {
	store := newMemStore()
	seedUser(store, "user-1", 6)
	// The worked example: 6 bills, 4 categories, total 1200 → 80.0.
	for i, category := range []string{"groceries", "utilities", "shopping", "food", "groceries", "utilities"} {
		store.bills = append(store.bills, models.Bill{
			ID:       fmt.Sprintf("b%d", i),
			UserID:   "user-1",
			Amount:   200,
			Category: category,
		})
	}
	_, router := newTestAPI(store, &fakeAnalyzer{}, &fakeChat{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user/user-1/score", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var explanation models.ScoreExplanation
	if err := json.Unmarshal(w.Body.Bytes(), &explanation); err != nil {
		t.Fatal(err)
	}
	if explanation.Score != 80.0 {
		t.Errorf("score = %v, want 80.0", explanation.Score)
	}
	if store.users["user-1"].FinauraScore != 80.0 {
		t.Errorf("persisted score = %v, want 80.0", store.users["user-1"].FinauraScore)
	}
}

func TestGetUserScore_FallbackWhenBillsUnavailable(t *testing.T) {
	store := newMemStore()
	seedUser(store, "user-1", 3)
	store.billsErr = fmt.Errorf("store unavailable")
	_, router := newTestAPI(store, &fakeAnalyzer{}, &fakeChat{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user/user-1/score", nil))

	// The score endpoint degrades to the sentinel rather than failing.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var explanation models.ScoreExplanation
	if err := json.Unmarshal(w.Body.Bytes(), &explanation); err != nil {
		t.Fatal(err)
	}
	if explanation.Score != 50.0 {
		t.Errorf("score = %v, want sentinel 50.0", explanation.Score)
	}
	if len(explanation.Factors) != 0 {
		t.Errorf("factors = %+v, want empty", explanation.Factors)
	}
}

func TestGetUserScore_UnknownUser(t *testing.T) {
	_, router := newTestAPI(newMemStore(), &fakeAnalyzer{}, &fakeChat{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user/nope/score", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
