package app

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/Thanhthanh392003/LVTN-homestay/internal/domain"
)

// searchHomestay lists homestays in a city, capped at maxSearchResults.
func (a *Actions) searchHomestay(ctx context.Context, slots domain.Slots) ([]domain.Message, []domain.SlotMutation) {
	location := slots.Str(domain.SlotLocation)
	if location == "" {
		return reply(text("Bạn muốn tìm homestay ở đâu ạ?")), nil
	}

	payload, ok := a.gw.Get(ctx, "homestays/search", url.Values{"city": {location}}, nil)
	list, usable := usableList(payload)
	if !ok || !usable || len(list) == 0 {
		return reply(text(fmt.Sprintf("Hiện chưa có homestay nào ở **%s** 💚", location))), nil
	}

	title := fmt.Sprintf("✨ **Các homestay tại %s:**", location)
	return reply(homestayCards(title, mapHomestays(list), maxSearchResults, "Giá từ")), nil
}

// searchHomestayByAmenity lists homestays in a city offering an amenity,
// capped at maxSearchResults.
func (a *Actions) searchHomestayByAmenity(ctx context.Context, slots domain.Slots) ([]domain.Message, []domain.SlotMutation) {
	location := slots.Str(domain.SlotLocation)
	amenity := slots.Str(domain.SlotAmenity)
	if location == "" || amenity == "" {
		return reply(text("Bạn muốn tìm homestay ở đâu và cần tiện ích gì ạ?")), nil
	}

	q := url.Values{"city": {location}, "amenity": {amenity}}
	payload, ok := a.gw.Get(ctx, "homestays/search-by-amenity", q, nil)
	list, usable := usableList(payload)
	if !ok || !usable || len(list) == 0 {
		return reply(text("Không tìm thấy homestay có tiện ích phù hợp 🌿")), nil
	}

	return reply(homestayCards("✨ **Homestay có tiện ích bạn cần:**", mapHomestays(list), maxSearchResults, "Giá")), nil
}

// searchHomestayByPrice lists homestays inside a price range. Either bound
// may be omitted; an unparseable bound degrades to "unspecified" rather than
// failing the action. With no bound at all there is nothing to search, so
// the handler asks for a range instead of calling the backend.
func (a *Actions) searchHomestayByPrice(ctx context.Context, slots domain.Slots) ([]domain.Message, []domain.SlotMutation) {
	minVal, err := parsePrice(slots.Str(domain.SlotPriceMin))
	if err != nil {
		log.Warn().Err(err).Msg("price_min not parseable, treating as unspecified")
		minVal = nil
	}
	maxVal, err := parsePrice(slots.Str(domain.SlotPriceMax))
	if err != nil {
		log.Warn().Err(err).Msg("price_max not parseable, treating as unspecified")
		maxVal = nil
	}
	if minVal == nil && maxVal == nil {
		return reply(text("🌿 Bạn muốn tìm homestay trong khoảng giá nào ạ?")), nil
	}

	q := url.Values{}
	if minVal != nil {
		q.Set("min", strconv.FormatInt(*minVal, 10))
	}
	if maxVal != nil {
		q.Set("max", strconv.FormatInt(*maxVal, 10))
	}

	payload, ok := a.gw.Get(ctx, "homestays/search-by-price", q, nil)
	data, usable := usableMap(payload)
	if !ok || !usable {
		return reply(text("Mình không tìm được homestay theo mức giá bạn yêu cầu 🌿")), nil
	}

	hs := mapHomestays(objList(data, "homestays"))
	if len(hs) == 0 {
		return reply(text("Không có homestay nào phù hợp mức giá này 💚")), nil
	}

	return reply(homestayCards("✨ **Danh sách homestay phù hợp giá bạn muốn:**", hs, 0, "Giá")), nil
}
