package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Thanhthanh392003/LVTN-homestay/internal/domain"
)

// unknownLabel is the placeholder for fields the backend did not provide.
const unknownLabel = "Không rõ"

// ErrBadPrice reports a price expression whose numeric part cannot be read.
var ErrBadPrice = errors.New("unparseable price expression")

// parsePrice converts fuzzy user price text ("500k", "2tr", "2triệu",
// "1.000.000") into a VND amount. A nil result means the user gave no bound,
// which is different from zero: min and max stay independently omittable.
func parsePrice(raw string) (*int64, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return nil, nil
	}

	mult := int64(1)
	switch {
	case strings.Contains(s, "k"):
		mult = 1_000
		s = strings.ReplaceAll(s, "k", "")
	case strings.Contains(s, "tr"):
		// "triệu" must go first: it contains "tr"
		mult = 1_000_000
		s = strings.ReplaceAll(s, "triệu", "")
		s = strings.ReplaceAll(s, "tr", "")
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadPrice, raw)
	}
	v := n * mult
	return &v, nil
}

// formatDate renders an ISO-8601 timestamp (optionally with a trailing UTC
// marker) as dd/mm/yyyy. Absent dates render as "Không rõ"; anything
// unparseable passes through verbatim rather than erroring at the user.
func formatDate(raw string) string {
	if raw == "" {
		return unknownLabel
	}
	s := strings.TrimSuffix(raw, "Z")
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return raw
}

var statusLabels = map[domain.BookingStatus]string{
	domain.StatusPending:        "⏳ Chờ duyệt",
	domain.StatusPendingPayment: "💳 Chờ thanh toán",
	domain.StatusConfirmed:      "✔️ Đã xác nhận",
	domain.StatusPaid:           "💰 Đã thanh toán",
	domain.StatusCompleted:      "🏁 Hoàn thành",
	domain.StatusCancelled:      "❌ Đã hủy",
}

// statusLabel maps a raw backend status onto its display label. The raw
// value is lower-trimmed before lookup; unmapped statuses become their own
// label.
func statusLabel(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if l, ok := statusLabels[domain.BookingStatus(s)]; ok {
		return l
	}
	return s
}

// formatVND groups thousands with a period and appends the đ sign:
// 1000000 -> "1.000.000đ".
func formatVND(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String() + "đ"
}
