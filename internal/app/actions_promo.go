package app

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Thanhthanh392003/LVTN-homestay/internal/domain"
)

// listPromotions replies with every currently active promotion. Empty-but-
// usable and unusable results get different copy: "none active" is a domain
// answer, not a failure.
func (a *Actions) listPromotions(ctx context.Context, slots domain.Slots) ([]domain.Message, []domain.SlotMutation) {
	q := url.Values{"status": {"active"}}

	payload, ok := a.gw.Get(ctx, "promotions", q, nil)
	data, usable := usableMap(payload)
	if !ok || !usable {
		return reply(text("Không lấy được danh sách khuyến mãi 😢")), nil
	}

	promos := mapPromotions(objList(data, "promotions"))
	if len(promos) == 0 {
		return reply(text("Hiện GreenStay chưa có khuyến mãi nào đang hoạt động 🌿")), nil
	}

	return reply(promotionList(promos)), nil
}

// checkPromoCode validates one promo code against the backend.
func (a *Actions) checkPromoCode(ctx context.Context, slots domain.Slots) ([]domain.Message, []domain.SlotMutation) {
	code := slots.Str(domain.SlotPromoCode)
	if code == "" {
		return reply(text("🌿 Bạn nhập mã giảm giá giúp mình nhé.")), nil
	}

	payload, ok := a.gw.Get(ctx, "promotions/validate", url.Values{"code": {code}}, nil)
	data, usable := usableMap(payload)
	if !ok || !usable {
		return reply(text(fmt.Sprintf("❌ Mã **%s** không hợp lệ hoặc đã hết hạn.", code))), nil
	}

	return reply(promoValidCard(code, mapPromotion(data))), nil
}

// listPromoHomestays lists every homestay a promo code applies to. The
// listing is promo-scoped, so it is not truncated.
func (a *Actions) listPromoHomestays(ctx context.Context, slots domain.Slots) ([]domain.Message, []domain.SlotMutation) {
	code := slots.Str(domain.SlotPromoCode)
	if code == "" {
		return reply(text("Bạn cho mình xin mã khuyến mãi nhé 🌿")), nil
	}

	payload, ok := a.gw.Get(ctx, "promotions/homestays", url.Values{"code": {code}}, nil)
	data, usable := usableMap(payload)
	if !ok || !usable {
		return reply(text(fmt.Sprintf(
			"Mình không tìm thấy thông tin của mã **%s**. Có thể mã không tồn tại hoặc đã hết hạn 💚", code))), nil
	}

	hs := mapHomestays(objList(data, "homestays"))
	if len(hs) == 0 {
		return reply(text(fmt.Sprintf("Mã **%s** hiện chưa được áp dụng cho homestay nào 💚", code))), nil
	}

	title := fmt.Sprintf("🌿 **Mã %s được áp dụng tại:**", code)
	return reply(homestayCards(title, hs, 0, "Giá từ")), nil
}
