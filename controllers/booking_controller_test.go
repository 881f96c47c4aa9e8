package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"hotelapp-backend/models"
)

func bookingPayload(f bookingFixtures, start, end string) map[string]interface{} {
	return map[string]interface{}{
		"roomId":     f.room.ID,
		"roomTypeId": f.roomType.ID,
		"guestId":    f.guest.ID,
		"startDate":  start,
		"endDate":    end,
	}
}

// Seeded room with no bookings: availability reads true, the first booking is
// created with an assigned id, and an overlapping second attempt is rejected.
func TestBookingLifecycle_EndToEnd(t *testing.T) {
	router, db := newTestEnv(t)
	f := seedBookingFixtures(t, db)

	availabilityPath := fmt.Sprintf("/api/bookings/availability?roomId=%d&start=%s&end=%s",
		f.room.ID, day(0), day(2))

	w := doJSON(t, router, http.MethodGet, availabilityPath, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("availability: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var avail struct {
		Available bool `json:"available"`
	}
	decodeBody(t, w, &avail)
	if !avail.Available {
		t.Fatalf("expected room to be available before any booking")
	}

	w = doJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload(f, day(0), day(2)))
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var created models.Booking
	decodeBody(t, w, &created)
	if created.ID == 0 {
		t.Fatalf("expected assigned booking id")
	}
	if created.ReferenceCode == "" {
		t.Fatalf("expected generated reference code")
	}

	// Overlapping attempt (day 1 - day 3) must be a client-visible rejection.
	w = doJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload(f, day(1), day(3)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("overlap: expected 400, got %d (%s)", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, availabilityPath, nil)
	decodeBody(t, w, &avail)
	if avail.Available {
		t.Fatalf("expected room to be unavailable after booking")
	}
}

func TestCreateBooking_BackToBack(t *testing.T) {
	router, db := newTestEnv(t)
	f := seedBookingFixtures(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload(f, day(0), day(2)))
	if w.Code != http.StatusCreated {
		t.Fatalf("first: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	w = doJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload(f, day(2), day(4)))
	if w.Code != http.StatusCreated {
		t.Fatalf("back-to-back: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestCreateBooking_BadRequests(t *testing.T) {
	router, db := newTestEnv(t)
	f := seedBookingFixtures(t, db)

	// Missing required fields.
	w := doJSON(t, router, http.MethodPost, "/api/bookings", map[string]interface{}{"roomId": f.room.ID})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing fields: expected 400, got %d", w.Code)
	}

	// Unparseable date.
	w = doJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload(f, "tomorrow", day(2)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad date: expected 400, got %d", w.Code)
	}

	// Inverted range.
	w = doJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload(f, day(3), day(1)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("inverted range: expected 400, got %d", w.Code)
	}

	// Unknown room.
	payload := bookingPayload(f, day(0), day(2))
	payload["roomId"] = 9999
	w = doJSON(t, router, http.MethodPost, "/api/bookings", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown room: expected 400, got %d", w.Code)
	}
}

func TestCreateBooking_DuplicateReferenceCode(t *testing.T) {
	router, db := newTestEnv(t)
	f := seedBookingFixtures(t, db)

	payload := bookingPayload(f, day(0), day(2))
	payload["referenceCode"] = "REF-2024-001"
	w := doJSON(t, router, http.MethodPost, "/api/bookings", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var created models.Booking
	decodeBody(t, w, &created)
	if created.ReferenceCode != "REF-2024-001" {
		t.Fatalf("expected supplied reference code kept, got %q", created.ReferenceCode)
	}

	// Same code on non-overlapping dates is a client error, not a 500.
	payload = bookingPayload(f, day(2), day(4))
	payload["referenceCode"] = "REF-2024-001"
	w = doJSON(t, router, http.MethodPost, "/api/bookings", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate code: expected 400, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestGetRoomAvailability_InvalidRange(t *testing.T) {
	router, db := newTestEnv(t)
	f := seedBookingFixtures(t, db)

	for _, tc := range []struct {
		name       string
		start, end string
	}{
		{"inverted", day(3), day(1)},
		{"empty", day(1), day(1)},
	} {
		path := fmt.Sprintf("/api/bookings/availability?roomId=%d&start=%s&end=%s", f.room.ID, tc.start, tc.end)
		w := doJSON(t, router, http.MethodGet, path, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d (%s)", tc.name, w.Code, w.Body.String())
		}
	}
}

func TestGetBooking_NotFound(t *testing.T) {
	router, _ := newTestEnv(t)

	w := doJSON(t, router, http.MethodGet, "/api/bookings/42", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUpdateBooking_FullReplace(t *testing.T) {
	router, db := newTestEnv(t)
	f := seedBookingFixtures(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload(f, day(0), day(2)))
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", w.Code)
	}
	var created models.Booking
	decodeBody(t, w, &created)

	// Body id mismatching the route id is rejected.
	payload := bookingPayload(f, day(5), day(7))
	payload["id"] = created.ID + 1
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/bookings/%d", created.ID), payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("id mismatch: expected 400, got %d", w.Code)
	}

	delete(payload, "id")
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/bookings/%d", created.ID), payload)
	if w.Code != http.StatusNoContent {
		t.Fatalf("update: expected 204, got %d (%s)", w.Code, w.Body.String())
	}

	var updated models.Booking
	if err := db.First(&updated, created.ID).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	if got := updated.StartDate.Format("2006-01-02"); got != day(5) {
		t.Fatalf("expected start date %s, got %s", day(5), got)
	}

	w = doJSON(t, router, http.MethodPut, "/api/bookings/9999", bookingPayload(f, day(5), day(7)))
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing booking: expected 404, got %d", w.Code)
	}
}

func TestDeleteBooking_CascadesToReviews(t *testing.T) {
	router, db := newTestEnv(t)
	f := seedBookingFixtures(t, db)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload(f, day(0), day(2)))
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", w.Code)
	}
	var created models.Booking
	decodeBody(t, w, &created)

	review := models.Review{BookingID: created.ID, Rating: 5, Content: "Amazing stay!"}
	if err := db.Create(&review).Error; err != nil {
		t.Fatalf("seed review: %v", err)
	}

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/bookings/%d", created.ID), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d (%s)", w.Code, w.Body.String())
	}

	var reviewCount int64
	if err := db.Model(&models.Review{}).Where("booking_id = ?", created.ID).Count(&reviewCount).Error; err != nil {
		t.Fatalf("count reviews: %v", err)
	}
	if reviewCount != 0 {
		t.Fatalf("expected cascade to remove reviews, %d left", reviewCount)
	}

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/bookings/%d", created.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", w.Code)
	}
}
