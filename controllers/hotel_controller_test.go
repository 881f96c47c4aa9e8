package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"hotelapp-backend/models"
)

func TestHotelCRUD(t *testing.T) {
	router, _ := newTestEnv(t)

	w := doJSON(t, router, http.MethodPost, "/api/hotels", map[string]interface{}{
		"name":    "Grand Plaza",
		"address": "123 Grand Ave",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var created models.Hotel
	decodeBody(t, w, &created)
	if created.ID == 0 {
		t.Fatalf("expected assigned hotel id")
	}

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/hotels/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	var fetched models.Hotel
	decodeBody(t, w, &fetched)
	if fetched.Name != "Grand Plaza" {
		t.Fatalf("expected name Grand Plaza, got %q", fetched.Name)
	}

	// Missing name is a binding failure.
	w = doJSON(t, router, http.MethodPost, "/api/hotels", map[string]interface{}{"address": "nowhere"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing name: expected 400, got %d", w.Code)
	}

	// Full replace clears fields the caller omits.
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/hotels/%d", created.ID), map[string]interface{}{
		"name": "Grand Plaza Renovated",
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("update: expected 204, got %d (%s)", w.Code, w.Body.String())
	}
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/hotels/%d", created.ID), nil)
	decodeBody(t, w, &fetched)
	if fetched.Name != "Grand Plaza Renovated" {
		t.Fatalf("expected replaced name, got %q", fetched.Name)
	}
	if fetched.Address != "" {
		t.Fatalf("expected address cleared by full replace, got %q", fetched.Address)
	}

	// Body/route id mismatch.
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/hotels/%d", created.ID), map[string]interface{}{
		"id":   created.ID + 1,
		"name": "Wrong",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("id mismatch: expected 400, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/hotels/%d", created.ID), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/hotels/%d", created.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", w.Code)
	}
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/hotels/%d", created.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete after delete: expected 404, got %d", w.Code)
	}
}

func TestHotelSearchAndPagination(t *testing.T) {
	router, db := newTestEnv(t)

	hotels := []models.Hotel{
		{Name: "Grand Plaza", Address: "123 Grand Ave"},
		{Name: "Ocean View", Address: "456 Ocean Drive"},
		{Name: "Mountain Lodge", Address: "789 Summit Road"},
	}
	if err := db.Create(&hotels).Error; err != nil {
		t.Fatalf("seed hotels: %v", err)
	}

	w := doJSON(t, router, http.MethodGet, "/api/hotels/byName/Ocean", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("byName: expected 200, got %d", w.Code)
	}
	var byName []models.Hotel
	decodeBody(t, w, &byName)
	if len(byName) != 1 || byName[0].Name != "Ocean View" {
		t.Fatalf("byName: expected [Ocean View], got %+v", byName)
	}

	// Search matches addresses too.
	w = doJSON(t, router, http.MethodGet, "/api/hotels/search/Summit", nil)
	var byQuery []models.Hotel
	decodeBody(t, w, &byQuery)
	if len(byQuery) != 1 || byQuery[0].Name != "Mountain Lodge" {
		t.Fatalf("search: expected [Mountain Lodge], got %+v", byQuery)
	}

	w = doJSON(t, router, http.MethodGet, "/api/hotels/paginated?pageNumber=2&pageSize=2", nil)
	var page []models.Hotel
	decodeBody(t, w, &page)
	if len(page) != 1 || page[0].Name != "Mountain Lodge" {
		t.Fatalf("paginated: expected last page [Mountain Lodge], got %+v", page)
	}
}

func TestDeleteHotel_CascadesToRooms(t *testing.T) {
	router, db := newTestEnv(t)
	f := seedBookingFixtures(t, db)

	w := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/hotels/%d", f.hotel.ID), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d (%s)", w.Code, w.Body.String())
	}

	var roomCount int64
	if err := db.Model(&models.Room{}).Where("hotel_id = ?", f.hotel.ID).Count(&roomCount).Error; err != nil {
		t.Fatalf("count rooms: %v", err)
	}
	if roomCount != 0 {
		t.Fatalf("expected cascade to remove rooms, %d left", roomCount)
	}
}
