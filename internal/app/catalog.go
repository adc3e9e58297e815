package app

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/Thanhthanh392003/LVTN-homestay/internal/domain"
)

// Action names as the dialogue engine sends them.
const (
	ActionCheckBookingStatus      = "action_check_booking_status"
	ActionGetBookingInfo          = "action_get_booking_info"
	ActionListPromotions          = "action_list_promotions"
	ActionCheckPromoCode          = "action_check_promo_code"
	ActionListPromoHomestays      = "action_list_promo_homestays"
	ActionSearchHomestay          = "action_search_homestay"
	ActionSearchHomestayByAmenity = "action_search_homestay_by_amenity"
	ActionSearchHomestayByPrice   = "action_search_homestay_by_price"
	ActionCheckBookingByContact   = "action_check_booking_by_contact"
	ActionEstimateBookingPrice    = "action_estimate_booking_price"
)

// Handler implements one catalog entry: read the current slots, optionally
// call the backend, and return reply blocks plus proposed slot mutations.
// Handlers never return errors; every failure resolves to a chat-visible
// message.
type Handler func(ctx context.Context, slots domain.Slots) ([]domain.Message, []domain.SlotMutation)

const headerBotSecret = "x-bot-secret"

// Actions is the action catalog plus the dependencies its handlers share.
// It holds no per-conversation state: each dispatch is independent.
type Actions struct {
	gw        domain.Gateway
	botSecret string
	catalog   map[string]Handler
}

func New(gw domain.Gateway, botSecret string) *Actions {
	a := &Actions{gw: gw, botSecret: botSecret}
	a.catalog = map[string]Handler{
		ActionCheckBookingStatus:      a.checkBookingStatus,
		ActionGetBookingInfo:          a.getBookingInfo,
		ActionListPromotions:          a.listPromotions,
		ActionCheckPromoCode:          a.checkPromoCode,
		ActionListPromoHomestays:      a.listPromoHomestays,
		ActionSearchHomestay:          a.searchHomestay,
		ActionSearchHomestayByAmenity: a.searchHomestayByAmenity,
		ActionSearchHomestayByPrice:   a.searchHomestayByPrice,
		ActionCheckBookingByContact:   a.checkBookingByContact,
		ActionEstimateBookingPrice:    a.estimateBookingPrice,
	}
	return a
}

// Names returns the registered action names, sorted, for diagnostics.
func (a *Actions) Names() []string {
	out := make([]string, 0, len(a.catalog))
	for name := range a.catalog {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Dispatch runs the named action against the given slot snapshot. ok is
// false only for actions missing from the catalog.
func (a *Actions) Dispatch(ctx context.Context, name string, slots domain.Slots) (msgs []domain.Message, muts []domain.SlotMutation, ok bool) {
	h, found := a.catalog[name]
	if !found {
		log.Warn().Str("action", name).Msg("unknown action")
		return nil, nil, false
	}
	msgs, muts = h(ctx, slots)
	return msgs, muts, true
}

func (a *Actions) authHeaders() map[string]string {
	return map[string]string{headerBotSecret: a.botSecret}
}

func reply(msgs ...domain.Message) []domain.Message { return msgs }
