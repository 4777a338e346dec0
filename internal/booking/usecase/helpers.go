package usecase

import (
	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
)

func viewFromRecord(rec repo.Record) booking.View {
	return booking.View{
		Booking:    rec.Booking,
		ItemName:   rec.ItemName,
		BookerName: rec.BookerName,
	}
}

func viewsFromRecords(records []repo.Record) []booking.View {
	views := make([]booking.View, len(records))
	for i, rec := range records {
		views[i] = viewFromRecord(rec)
	}
	return views
}
