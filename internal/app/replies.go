package app

import (
	"fmt"
	"strings"

	"github.com/Thanhthanh392003/LVTN-homestay/internal/domain"
)

// Reply formatters are pure and total over validated input: shape is
// guaranteed by the envelope checks upstream, so nothing here can fail.

// maxSearchResults caps the two open-ended search listings. Promo-scoped and
// contact-scoped listings render every entry.
const maxSearchResults = 5

const rule = "━━━━━━━━━━━━━━━━━━━━"

func text(s string) domain.Message { return domain.Message{Text: s} }

func statusCard(bookingID, status string) domain.Message {
	return text(fmt.Sprintf(
		"📦 **Trạng thái đơn hàng**\n"+
			rule+"\n"+
			"🧾 Mã đơn: **%s**\n"+
			"📌 Trạng thái: **%s**\n"+
			rule,
		bookingID, status))
}

func bookingInfoCard(bookingID, homestayName, status, checkin, checkout string, total int64, payment string) domain.Message {
	return text(fmt.Sprintf(
		"📦 **Thông tin đơn %s:**\n"+
			rule+"\n"+
			"🏡 Homestay: **%s**\n"+
			"📌 Trạng thái: **%s**\n"+
			"🗓 Nhận phòng: **%s**\n"+
			"🗓 Trả phòng: **%s**\n"+
			"💰 Tổng tiền: **%s**\n"+
			"💳 Thanh toán: **%s**\n"+
			rule,
		bookingID, homestayName, status, checkin, checkout, formatVND(total), payment))
}

// discountText renders "Giảm 10%" for percentage promos and a grouped VND
// amount otherwise.
func discountText(p domain.Promotion) string {
	if p.Type == "percent" {
		return fmt.Sprintf("Giảm %d%%", p.Discount)
	}
	return "Giảm " + formatVND(p.Discount)
}

func promotionList(ps []domain.Promotion) domain.Message {
	var b strings.Builder
	b.WriteString("🎁 **Khuyến mãi đang áp dụng**\n\n")
	for _, p := range ps {
		end := p.EndDate
		if end == "" {
			end = unknownLabel
		}
		fmt.Fprintf(&b,
			"🔥 **%s**\n%s\n💸 %s\n⏳ Hạn: %s\n━━━━━━━━━━━━━━\n\n",
			p.Code, p.Name, discountText(p), end)
	}
	return text(b.String())
}

func promoValidCard(code string, p domain.Promotion) domain.Message {
	return text(fmt.Sprintf(
		"🎟 **Mã hợp lệ:** %s\n"+
			rule+"\n"+
			"🔖 Loại: **%s**\n"+
			"💸 Giá trị: **%d**\n"+
			rule,
		code, p.Type, p.Discount))
}

// luxuryCard is the bordered block used for every homestay listing.
func luxuryCard(h domain.Homestay, priceLabel string) string {
	return fmt.Sprintf(
		"╔══════════════════════════╗\n"+
			"  🏡 **%s**\n"+
			"  📍 %s, %s\n"+
			"  💵 %s: %s/đêm\n"+
			"╚══════════════════════════╝\n\n",
		h.Name, h.Address, h.City, priceLabel, formatVND(h.PricePerDay))
}

// homestayCards renders up to max listings under a title; max <= 0 means no
// cap.
func homestayCards(title string, hs []domain.Homestay, max int, priceLabel string) domain.Message {
	if max > 0 && len(hs) > max {
		hs = hs[:max]
	}
	var b strings.Builder
	b.WriteString(title + "\n\n")
	for _, h := range hs {
		b.WriteString(luxuryCard(h, priceLabel))
	}
	return text(b.String())
}

func contactBookingList(bs []domain.ContactBooking) domain.Message {
	var b strings.Builder
	b.WriteString("📦 **Danh sách đơn của bạn:**\n\n")
	for _, bk := range bs {
		fmt.Fprintf(&b,
			rule+"\n"+
				"🧾 **Mã đơn:** %s\n"+
				"📌 Trạng thái: %s\n"+
				"💰 Tổng tiền: %s\n"+
				rule+"\n\n",
			bk.BookingID, bk.Status, formatVND(bk.TotalPrice))
	}
	return text(b.String())
}

func estimateCard(e domain.PriceEstimate) domain.Message {
	return text(fmt.Sprintf(
		"💵 **Ước tính giá:**\n"+
			rule+"\n"+
			"🧾 Giá gốc: **%s**\n"+
			"💸 Giảm giá: **%s**\n"+
			"💰 Tổng thanh toán: **%s**\n"+
			rule,
		formatVND(e.Original), formatVND(e.Discount), formatVND(e.Final)))
}
