package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRegisterSuccess(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)

	body := map[string]interface{}{
		"username": "newuser",
		"email":    "newuser@test.com",
		"password": "password123",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/auth/register", body))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["token"] == nil || resp["token"] == "" {
		t.Error("expected a token in the response")
	}
	user := resp["user"].(map[string]interface{})
	if user["role"] != "customer" {
		t.Errorf("expected role customer, got %v", user["role"])
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)

	seedTestUser(db, "taken@test.com", "customer")

	body := map[string]interface{}{
		"username": "another",
		"email":    "taken@test.com",
		"password": "password123",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/auth/register", body))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterValidation(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"short username", map[string]interface{}{
			"username": "ab", "email": "a@test.com", "password": "password123",
		}},
		{"long username", map[string]interface{}{
			"username": "waytoolongusername", "email": "a@test.com", "password": "password123",
		}},
		{"bad email", map[string]interface{}{
			"username": "gooduser", "email": "not-an-email", "password": "password123",
		}},
		{"short password", map[string]interface{}{
			"username": "gooduser", "email": "a@test.com", "password": "12345",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest("POST", "/api/auth/register", tc.body))
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)

	seedTestUser(db, "login@test.com", "customer")

	body := map[string]interface{}{
		"email":    "login@test.com",
		"password": "password123",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/auth/login", body))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["token"] == nil || resp["token"] == "" {
		t.Error("expected a token in the response")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)

	seedTestUser(db, "wrongpw@test.com", "customer")

	body := map[string]interface{}{
		"email":    "wrongpw@test.com",
		"password": "not-the-password",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/auth/login", body))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)

	body := map[string]interface{}{
		"email":    "ghost@test.com",
		"password": "password123",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/auth/login", body))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetProfile(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)

	user, token := seedTestUser(db, "profile@test.com", "customer")
	seedAddress(db, user.ID, "London")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/auth/profile", nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["email"] != "profile@test.com" {
		t.Errorf("unexpected email: %v", resp["email"])
	}
	if _, hasPassword := resp["password"]; hasPassword {
		t.Error("password hash must not be serialized")
	}
	addresses := resp["addresses"].([]interface{})
	if len(addresses) != 1 {
		t.Errorf("expected 1 preloaded address, got %d", len(addresses))
	}
}

func TestGetProfileRequiresToken(t *testing.T) {
	db := freshDB()
	router := setupAuthRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/auth/profile", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}
