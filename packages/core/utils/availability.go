package utils

import "core/models"

// The availability rule works on the rows already fetched for one date:
// a (time_slot, table) pair is taken when a confirmed booking matches it
// exactly, or when a blocked-slot rule covers it. Nil fields on a blocked
// slot are wildcards over the whole axis.

// IsSlotBooked reports whether a confirmed booking occupies the pair
func IsSlotBooked(bookings []models.Booking, timeSlot string, tableNumber int) bool {
	for _, b := range bookings {
		if b.TimeSlot == timeSlot && b.TableNumber == tableNumber && b.Status == models.BookingConfirmed {
			return true
		}
	}
	return false
}

// IsSlotBlocked reports whether a blocked-slot rule covers the pair
func IsSlotBlocked(blockedSlots []models.BlockedSlot, timeSlot string, tableNumber int) bool {
	for _, bs := range blockedSlots {
		slotMatches := bs.TimeSlot == nil || *bs.TimeSlot == timeSlot
		tableMatches := bs.TableNumber == nil || *bs.TableNumber == tableNumber
		if slotMatches && tableMatches {
			return true
		}
	}
	return false
}

// IsSlotAvailable applies the full rule: neither booked nor blocked
func IsSlotAvailable(bookings []models.Booking, blockedSlots []models.BlockedSlot, timeSlot string, tableNumber int) bool {
	return !IsSlotBooked(bookings, timeSlot, tableNumber) &&
		!IsSlotBlocked(blockedSlots, timeSlot, tableNumber)
}

// AvailableTablesForSlot lists the free tables for one time slot
func AvailableTablesForSlot(bookings []models.Booking, blockedSlots []models.BlockedSlot, timeSlot string) []int {
	tables := make([]int, 0, len(models.Tables))
	for _, table := range models.Tables {
		if IsSlotAvailable(bookings, blockedSlots, timeSlot, table) {
			tables = append(tables, table)
		}
	}
	return tables
}

// BuildDayAvailability computes the availability view for every time slot.
// Fully taken slots are still listed, with an empty table list, so callers
// can render them as full rather than absent.
func BuildDayAvailability(bookings []models.Booking, blockedSlots []models.BlockedSlot) []models.SlotAvailability {
	slots := make([]models.SlotAvailability, 0, len(models.TimeSlots))
	for _, timeSlot := range models.TimeSlots {
		tables := AvailableTablesForSlot(bookings, blockedSlots, timeSlot)
		slots = append(slots, models.SlotAvailability{
			TimeSlot:        timeSlot,
			AvailableTables: tables,
			AvailableCount:  len(tables),
		})
	}
	return slots
}

// IsValidTimeSlot reports whether the label is one of the bookable hours
func IsValidTimeSlot(timeSlot string) bool {
	for _, s := range models.TimeSlots {
		if s == timeSlot {
			return true
		}
	}
	return false
}

// IsValidTable reports whether the table number exists
func IsValidTable(tableNumber int) bool {
	for _, t := range models.Tables {
		if t == tableNumber {
			return true
		}
	}
	return false
}
