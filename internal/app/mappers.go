package app

import (
	"github.com/Thanhthanh392003/LVTN-homestay/internal/domain"
)

// Field names follow the backend's row-oriented naming (H_Name,
// Booking_status, ...). Mappers are total: a missing field becomes the zero
// value, never a panic.

func mapHomestay(m map[string]any) domain.Homestay {
	return domain.Homestay{
		Name:        lookupStr(m, "H_Name"),
		Address:     lookupStr(m, "H_Address"),
		City:        lookupStr(m, "H_City"),
		PricePerDay: lookupInt64(m, "Price_per_day"),
	}
}

func mapHomestays(in []map[string]any) []domain.Homestay {
	out := make([]domain.Homestay, 0, len(in))
	for _, m := range in {
		out = append(out, mapHomestay(m))
	}
	return out
}

func mapPromotion(m map[string]any) domain.Promotion {
	return domain.Promotion{
		Code:     lookupStr(m, "P_Code"),
		Name:     lookupStr(m, "P_Name"),
		Discount: lookupInt64(m, "Discount"),
		Type:     lookupStr(m, "P_Type"),
		EndDate:  lookupStr(m, "End_date"),
	}
}

func mapPromotions(in []map[string]any) []domain.Promotion {
	out := make([]domain.Promotion, 0, len(in))
	for _, m := range in {
		out = append(out, mapPromotion(m))
	}
	return out
}

func mapBookingHeader(m map[string]any) domain.BookingHeader {
	return domain.BookingHeader{
		Status:        lookupStr(m, "Booking_status"),
		TotalPrice:    lookupInt64(m, "Total_price"),
		PaymentMethod: lookupStr(m, "Payment_method"),
	}
}

func mapBookingLines(in []map[string]any) []domain.BookingLine {
	out := make([]domain.BookingLine, 0, len(in))
	for _, m := range in {
		out = append(out, domain.BookingLine{
			HomestayName: lookupStr(m, "H_Name"),
			CheckinDate:  lookupStr(m, "Checkin_date"),
			CheckoutDate: lookupStr(m, "Checkout_date"),
		})
	}
	return out
}

func mapContactBookings(in []map[string]any) []domain.ContactBooking {
	out := make([]domain.ContactBooking, 0, len(in))
	for _, m := range in {
		out = append(out, domain.ContactBooking{
			BookingID:  lookupStr(m, "Booking_ID"),
			Status:     lookupStr(m, "Status"),
			TotalPrice: lookupInt64(m, "Total_price"),
		})
	}
	return out
}

func mapEstimate(m map[string]any) domain.PriceEstimate {
	return domain.PriceEstimate{
		Original: lookupInt64(m, "original"),
		Discount: lookupInt64(m, "discount"),
		Final:    lookupInt64(m, "final"),
	}
}
