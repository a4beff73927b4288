package models

// Stats aggregates the numbers shown on the admin dashboard
type Stats struct {
	TodaysBookings     int64 `json:"todays_bookings"`
	MonthlyBookings    int64 `json:"monthly_bookings"`
	ActiveTournaments  int64 `json:"active_tournaments"`
	TotalRegistrations int64 `json:"total_registrations"`
	GalleryImages      int64 `json:"gallery_images"`
	UnreadMessages     int64 `json:"unread_messages"`
}
