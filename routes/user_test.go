package routes

import (
	"apartment-booking-server/models"
	"apartment-booking-server/storage"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

func TestGetUserForbiddenForMismatchedTokenID(t *testing.T) {
	app := buildTestApp(t)

	owner := models.User{Username: "owner", Email: "owner@example.com", Password: "x"}
	if err := storage.DB.Create(&owner).Error; err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	other := models.User{Username: "other", Email: "other@example.com", Password: "x"}
	if err := storage.DB.Create(&other).Error; err != nil {
		t.Fatalf("seed other: %v", err)
	}

	token := signTestToken(t, owner.ID)

	resp := doJSON(app, http.MethodGet, fmt.Sprintf("/api/user/%d", other.ID), token, "")
	if resp.Code != http.StatusForbidden {
		t.Fatalf("other user's id: expected 403, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(app, http.MethodGet, fmt.Sprintf("/api/user/%d", owner.ID), token, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("own id: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var fetched models.User
	if err := json.Unmarshal(resp.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if fetched.Username != owner.Username {
		t.Fatalf("username = %q, want %q", fetched.Username, owner.Username)
	}
}

func TestDeleteUserTakesIdentityFromToken(t *testing.T) {
	app := buildTestApp(t)

	user := models.User{Username: "leaver", Email: "leaver@example.com", Password: "x"}
	if err := storage.DB.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	resp := doJSON(app, http.MethodDelete, "/api/user", signTestToken(t, user.ID), "")
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", resp.Code, resp.Body.String())
	}

	var count int64
	storage.DB.Model(&models.User{}).Where("id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Fatalf("user rows = %d, want 0", count)
	}
}
