package payments

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jakmyungso/api/internal/platform/jsonwalk"
)

// Key alias sets accepted when extracting verification fields from
// provider payloads. Providers rename these fields between API revisions
// and nest them at varying depths, so extraction is schema-on-read.
var (
	statusKeys   = jsonwalk.NewKeySet("status", "orderStatus", "purchaseStatus", "paymentStatus", "state", "purchaseState")
	codeKeys     = jsonwalk.NewKeySet("code", "resultType", "result_code")
	messageKeys  = jsonwalk.NewKeySet("message", "msg", "resultMessage", "error", "errorMessage")
	orderIDKeys  = jsonwalk.NewKeySet("orderId", "order_id")
	productKeys  = jsonwalk.NewKeySet("sku", "productId", "product_id", "itemId", "item_id")
	amountKeys   = jsonwalk.NewKeySet("amount", "paymentAmount", "paidAmount", "price", "totalAmount", "displayAmount")
	paidFlagKeys = jsonwalk.NewKeySet("isCompleted", "isPaid", "purchased")
)

var paidStatuses = map[string]struct{}{
	"COMPLETE":  {},
	"COMPLETED": {},
	"DONE":      {},
	"SUCCESS":   {},
	"PAID":      {},
	"PURCHASED": {},
}

var failedStatuses = map[string]struct{}{
	"CANCELED":  {},
	"CANCELLED": {},
	"REFUNDED":  {},
	"FAILED":    {},
	"PENDING":   {},
}

var successCodes = map[string]struct{}{
	"SUCCESS": {},
	"OK":      {},
}

var amountDigitsPattern = regexp.MustCompile(`-?\d+(\.\d+)?`)

// StatusHint carries the raw status fields found in a provider payload,
// used for payment logs and mismatch responses.
type StatusHint struct {
	Status  string
	Code    string
	Message string
}

// ExtractStatusHint pulls the first status, code and message values found
// anywhere in the payload.
func ExtractStatusHint(payload any) StatusHint {
	hint := StatusHint{}
	if v, ok := jsonwalk.FindFirst(payload, statusKeys); ok {
		hint.Status, _ = ToNullableString(v)
	}
	if v, ok := jsonwalk.FindFirst(payload, codeKeys); ok {
		hint.Code, _ = ToNullableString(v)
	}
	if v, ok := jsonwalk.FindFirst(payload, messageKeys); ok {
		hint.Message, _ = ToNullableString(v)
	}
	return hint
}

// VerificationFields carries the order identity fields found in a
// provider payload. Absent fields stay zero-valued with HasAmount false.
type VerificationFields struct {
	OrderID   string
	ProductID string
	Amount    int64
	HasAmount bool
}

// ExtractVerificationFields pulls the order id, product id and paid
// amount from wherever the provider nested them.
func ExtractVerificationFields(payload any) VerificationFields {
	fields := VerificationFields{}
	if v, ok := jsonwalk.FindFirst(payload, orderIDKeys); ok {
		fields.OrderID, _ = ToNullableString(v)
	}
	if v, ok := jsonwalk.FindFirst(payload, productKeys); ok {
		fields.ProductID, _ = ToNullableString(v)
	}
	if v, ok := jsonwalk.FindFirst(payload, amountKeys); ok {
		fields.Amount, fields.HasAmount = ToAmount(v)
	}
	return fields
}

// IsOrderPaid classifies a provider order-status payload. Any paid status
// value anywhere in the tree wins. A failed status without a paid one is
// definitive. Otherwise boolean purchase flags and a successful result
// code are accepted as paid signals.
func IsOrderPaid(payload any) bool {
	failed := false
	for _, v := range jsonwalk.Collect(payload, statusKeys) {
		s, ok := ToNullableString(v)
		if !ok {
			continue
		}
		upper := strings.ToUpper(s)
		if _, paid := paidStatuses[upper]; paid {
			return true
		}
		if _, fail := failedStatuses[upper]; fail {
			failed = true
		}
	}
	if failed {
		return false
	}

	for _, v := range jsonwalk.Collect(payload, paidFlagKeys) {
		switch flag := v.(type) {
		case bool:
			if flag {
				return true
			}
		case string:
			if strings.EqualFold(strings.TrimSpace(flag), "true") {
				return true
			}
		}
	}

	for _, v := range jsonwalk.Collect(payload, codeKeys) {
		s, ok := ToNullableString(v)
		if !ok {
			continue
		}
		if _, success := successCodes[strings.ToUpper(s)]; success {
			return true
		}
	}
	return false
}

// ToNullableString coerces a decoded JSON scalar to a trimmed non-empty
// string. Composite values and blanks report false.
func ToNullableString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		trimmed := strings.TrimSpace(v)
		return trimmed, trimmed != ""
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10), true
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// ToAmount coerces a decoded JSON value to a whole currency amount.
// Strings may carry thousands separators or surrounding text.
func ToAmount(value any) (int64, bool) {
	switch v := value.(type) {
	case float64:
		return int64(math.Round(v)), true
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return int64(math.Round(f)), true
		}
		return 0, false
	case string:
		cleaned := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if cleaned == "" {
			return 0, false
		}
		if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return int64(math.Round(f)), true
		}
		if match := amountDigitsPattern.FindString(cleaned); match != "" {
			if f, err := strconv.ParseFloat(match, 64); err == nil {
				return int64(math.Round(f)), true
			}
		}
		return 0, false
	default:
		return 0, false
	}
}
