package utils

import (
	"reflect"
	"testing"

	"core/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestIsSlotBooked(t *testing.T) {
	bookings := []models.Booking{
		{TimeSlot: "5:00 PM", TableNumber: 3, Status: models.BookingConfirmed},
		{TimeSlot: "6:00 PM", TableNumber: 1, Status: models.BookingCancelled},
	}

	if !IsSlotBooked(bookings, "5:00 PM", 3) {
		t.Error("confirmed booking should occupy its slot")
	}
	if IsSlotBooked(bookings, "5:00 PM", 4) {
		t.Error("a different table at the same hour should be free")
	}
	if IsSlotBooked(bookings, "6:00 PM", 1) {
		t.Error("cancelled bookings should not occupy a slot")
	}
}

func TestIsSlotBlocked_Wildcards(t *testing.T) {
	tests := []struct {
		name    string
		blocked []models.BlockedSlot
		slot    string
		table   int
		want    bool
	}{
		{
			name: "exact match",
			blocked: []models.BlockedSlot{
				{TimeSlot: strPtr("5:00 PM"), TableNumber: intPtr(3)},
			},
			slot: "5:00 PM", table: 3, want: true,
		},
		{
			name: "exact rule leaves other tables open",
			blocked: []models.BlockedSlot{
				{TimeSlot: strPtr("5:00 PM"), TableNumber: intPtr(3)},
			},
			slot: "5:00 PM", table: 4, want: false,
		},
		{
			name: "nil table blocks whole hour",
			blocked: []models.BlockedSlot{
				{TimeSlot: strPtr("2:00 PM"), TableNumber: nil},
			},
			slot: "2:00 PM", table: 6, want: true,
		},
		{
			name: "nil slot blocks table all day",
			blocked: []models.BlockedSlot{
				{TimeSlot: nil, TableNumber: intPtr(2)},
			},
			slot: "9:00 PM", table: 2, want: true,
		},
		{
			name: "nil slot and table blocks everything",
			blocked: []models.BlockedSlot{
				{TimeSlot: nil, TableNumber: nil},
			},
			slot: "10:00 AM", table: 1, want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSlotBlocked(tt.blocked, tt.slot, tt.table)
			if got != tt.want {
				t.Errorf("IsSlotBlocked(%q, %d) = %v, want %v", tt.slot, tt.table, got, tt.want)
			}
		})
	}
}

func TestAvailableTablesForSlot(t *testing.T) {
	bookings := []models.Booking{
		{TimeSlot: "5:00 PM", TableNumber: 3, Status: models.BookingConfirmed},
	}

	got := AvailableTablesForSlot(bookings, nil, "5:00 PM")
	want := []int{1, 2, 4, 5, 6}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("available tables = %v, want %v", got, want)
	}
}

func TestBuildDayAvailability(t *testing.T) {
	bookings := []models.Booking{
		{TimeSlot: "5:00 PM", TableNumber: 3, Status: models.BookingConfirmed},
	}
	blocked := []models.BlockedSlot{
		{TimeSlot: nil, TableNumber: intPtr(2)},
	}

	slots := BuildDayAvailability(bookings, blocked)

	if len(slots) != len(models.TimeSlots) {
		t.Fatalf("expected %d slots, got %d", len(models.TimeSlots), len(slots))
	}

	for _, slot := range slots {
		if slot.AvailableCount != len(slot.AvailableTables) {
			t.Errorf("%s: count %d does not match table list %v",
				slot.TimeSlot, slot.AvailableCount, slot.AvailableTables)
		}

		for _, table := range slot.AvailableTables {
			if table == 2 {
				t.Errorf("%s: table 2 is blocked all day but listed as free", slot.TimeSlot)
			}
		}

		switch slot.TimeSlot {
		case "5:00 PM":
			// table 2 blocked, table 3 booked
			if slot.AvailableCount != 4 {
				t.Errorf("5:00 PM: expected 4 free tables, got %d", slot.AvailableCount)
			}
		default:
			if slot.AvailableCount != 5 {
				t.Errorf("%s: expected 5 free tables, got %d", slot.TimeSlot, slot.AvailableCount)
			}
		}
	}
}

func TestBuildDayAvailability_FullDayBlockKeepsSlotsListed(t *testing.T) {
	blocked := []models.BlockedSlot{
		{TimeSlot: nil, TableNumber: nil},
	}

	slots := BuildDayAvailability(nil, blocked)

	if len(slots) != len(models.TimeSlots) {
		t.Fatalf("expected %d slots, got %d", len(models.TimeSlots), len(slots))
	}
	for _, slot := range slots {
		if slot.AvailableCount != 0 {
			t.Errorf("%s: expected 0 free tables on a closed day, got %d", slot.TimeSlot, slot.AvailableCount)
		}
		if slot.AvailableTables == nil {
			t.Errorf("%s: table list should be empty, not nil", slot.TimeSlot)
		}
	}
}

func TestValidators(t *testing.T) {
	if !IsValidTimeSlot("10:00 AM") || !IsValidTimeSlot("10:00 PM") {
		t.Error("boundary slots should be valid")
	}
	if IsValidTimeSlot("11:30 PM") {
		t.Error("unknown slot accepted")
	}
	if !IsValidTable(1) || !IsValidTable(6) {
		t.Error("boundary tables should be valid")
	}
	if IsValidTable(0) || IsValidTable(7) {
		t.Error("out-of-range table accepted")
	}
}
