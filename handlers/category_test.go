package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestGetCategories(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)

	seedCategory(db, "Furniture")
	seedCategory(db, "Lighting")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/categories", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	categories := parseResponseArray(w)
	if len(categories) != 2 {
		t.Errorf("expected 2 categories, got %d", len(categories))
	}
}

func TestGetCategoryWithProducts(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)

	cat := seedCategory(db, "Storage")
	seedProduct(db, "Crate", cat.ID, 8.0, 0, 10)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/categories/"+cat.ID.String(), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	products := resp["products"].([]interface{})
	if len(products) != 1 {
		t.Errorf("expected 1 product preloaded, got %d", len(products))
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/categories/"+uuid.New().String(), nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestCreateCategory(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)

	_, adminToken := seedTestUser(db, "catadmin@test.com", "admin")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/categories", map[string]interface{}{
		"name": "Outdoor",
	}, adminToken))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateCategoryDuplicate(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)

	_, adminToken := seedTestUser(db, "dupcat@test.com", "admin")
	seedCategory(db, "Kitchen")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/categories", map[string]interface{}{
		"name": "Kitchen",
	}, adminToken))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateCategory(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)

	_, adminToken := seedTestUser(db, "updcat@test.com", "admin")
	cat := seedCategory(db, "Bathroon")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/admin/categories/"+cat.ID.String(), map[string]interface{}{
		"name": "Bathroom",
	}, adminToken))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["name"] != "Bathroom" {
		t.Errorf("expected renamed category, got %v", resp["name"])
	}
}

func TestDeleteCategoryWithProducts(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)

	_, adminToken := seedTestUser(db, "delcatprod@test.com", "admin")
	cat := seedCategory(db, "Bedding")
	seedProduct(db, "Duvet", cat.ID, 60.0, 0, 10)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("DELETE", "/api/admin/categories/"+cat.ID.String(), nil, adminToken))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 while products reference the category, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteCategoryEmpty(t *testing.T) {
	db := freshDB()
	router := setupCategoryRouter(db)

	_, adminToken := seedTestUser(db, "delcat@test.com", "admin")
	cat := seedCategory(db, "Seasonal")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("DELETE", "/api/admin/categories/"+cat.ID.String(), nil, adminToken))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/categories/"+cat.ID.String(), nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after deletion, got %d", w.Code)
	}
}
