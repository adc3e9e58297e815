package app

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Thanhthanh392003/LVTN-homestay/internal/domain"
)

// checkBookingStatus looks a booking up by id and replies with its status.
// The booking_id slot is cleared on success AND on not-found: either way the
// conversation should not keep a stale id around. (The full-info lookup
// below deliberately does not share this behavior.)
func (a *Actions) checkBookingStatus(ctx context.Context, slots domain.Slots) ([]domain.Message, []domain.SlotMutation) {
	bookingID := slots.Str(domain.SlotBookingID)
	if bookingID == "" {
		return reply(text("🌿 Bạn vui lòng gửi mã đơn giúp mình nhé.")), nil
	}

	payload, ok := a.gw.Get(ctx, "bookings/"+bookingID, nil, a.authHeaders())
	data, usable := usableMap(payload)
	if !ok || !usable {
		return reply(text(fmt.Sprintf("❌ Không tìm thấy đơn `%s` trên hệ thống.", bookingID))),
			[]domain.SlotMutation{domain.ClearSlot(domain.SlotBookingID)}
	}

	// some backend versions nest the booking under "header"
	header := data
	if h, found := data["header"].(map[string]any); found {
		header = h
	}
	hb := mapBookingHeader(header)

	return reply(statusCard(bookingID, statusLabel(hb.Status))),
		[]domain.SlotMutation{domain.ClearSlot(domain.SlotBookingID)}
}

// getBookingInfo replies with the full booking card: homestay, stay dates,
// total and payment method. No slot mutation on any outcome.
func (a *Actions) getBookingInfo(ctx context.Context, slots domain.Slots) ([]domain.Message, []domain.SlotMutation) {
	bookingID := slots.Str(domain.SlotBookingID)
	if bookingID == "" {
		return reply(text("🌿 Bạn vui lòng gửi mã đơn để mình kiểm tra nhé.")), nil
	}

	payload, ok := a.gw.Get(ctx, "bookings/"+bookingID, nil, a.authHeaders())
	data, usable := usableMap(payload)
	if !ok || !usable {
		return reply(text(fmt.Sprintf("❌ Không tìm thấy đơn `%s` trên hệ thống.", bookingID))), nil
	}

	headerRaw, found := data["header"].(map[string]any)
	if !found {
		return reply(text(fmt.Sprintf("⚠️ Không đọc được thông tin đơn `%s`.", bookingID))), nil
	}
	header := mapBookingHeader(headerRaw)
	lines := mapBookingLines(objList(data, "details"))

	homestayName := unknownLabel
	var checkin, checkout string
	if len(lines) > 0 {
		if lines[0].HomestayName != "" {
			homestayName = lines[0].HomestayName
		}
		checkin = lines[0].CheckinDate
		checkout = lines[0].CheckoutDate
	}
	payment := header.PaymentMethod
	if payment == "" {
		payment = unknownLabel
	}

	return reply(bookingInfoCard(
		bookingID,
		homestayName,
		statusLabel(header.Status),
		formatDate(checkin),
		formatDate(checkout),
		header.TotalPrice,
		payment,
	)), nil
}

// checkBookingByContact lists every booking tied to a phone number or email.
// Either contact detail may be absent, but not both.
func (a *Actions) checkBookingByContact(ctx context.Context, slots domain.Slots) ([]domain.Message, []domain.SlotMutation) {
	phone := slots.Str(domain.SlotPhone)
	email := slots.Str(domain.SlotEmail)
	if phone == "" && email == "" {
		return reply(text("🌿 Bạn cho mình xin số điện thoại hoặc email đã dùng để đặt phòng nhé.")), nil
	}

	q := url.Values{}
	if phone != "" {
		q.Set("phone", phone)
	}
	if email != "" {
		q.Set("email", email)
	}

	payload, ok := a.gw.Get(ctx, "bookings/contact", q, nil)
	list, usable := usableList(payload)
	if !ok || !usable || len(list) == 0 {
		return reply(text("🌿 Không tìm thấy đơn nào với thông tin bạn cung cấp.")), nil
	}

	return reply(contactBookingList(mapContactBookings(list))), nil
}

// estimateBookingPrice posts the stay parameters and replies with the price
// breakdown. Estimation is read-only on the backend, so repeating it after a
// timeout is safe.
func (a *Actions) estimateBookingPrice(ctx context.Context, slots domain.Slots) ([]domain.Message, []domain.SlotMutation) {
	for _, slot := range []string{
		domain.SlotHomestayID, domain.SlotGuests,
		domain.SlotCheckin, domain.SlotCheckout, domain.SlotPromoCode,
	} {
		if !slots.Has(slot) {
			return reply(text("🌿 Bạn cho mình xin đủ homestay, số khách, ngày nhận và trả phòng cùng mã giảm giá nhé.")), nil
		}
	}

	body := map[string]any{
		"H_ID":       slots[domain.SlotHomestayID],
		"guests":     slots[domain.SlotGuests],
		"checkin":    slots[domain.SlotCheckin],
		"checkout":   slots[domain.SlotCheckout],
		"promo_code": slots[domain.SlotPromoCode],
	}

	payload, ok := a.gw.Post(ctx, "bookings/estimate", body, nil)
	data, usable := usableMap(payload)
	if !ok || !usable {
		return reply(text("🌿 Không tính được giá, bạn kiểm tra lại giúp mình nhé.")), nil
	}

	return reply(estimateCard(mapEstimate(data))), nil
}
