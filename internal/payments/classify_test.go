package payments

import (
	"encoding/json"
	"testing"
)

func decodePayload(t *testing.T, raw string) any {
	t.Helper()
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return value
}

func TestIsOrderPaid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "top level done", raw: `{"status":"DONE"}`, want: true},
		{name: "nested purchase status", raw: `{"result":{"order":{"purchaseStatus":"COMPLETED"}}}`, want: true},
		{name: "lowercase paid", raw: `{"paymentStatus":"paid"}`, want: true},
		{name: "purchased state", raw: `{"state":"PURCHASED"}`, want: true},
		{name: "canceled", raw: `{"status":"CANCELED"}`, want: false},
		{name: "pending is not paid", raw: `{"orderStatus":"PENDING"}`, want: false},
		{name: "failed wins over success code", raw: `{"code":"SUCCESS","status":"REFUNDED"}`, want: false},
		{name: "paid wins over failed sibling", raw: `{"a":{"status":"DONE"},"b":{"status":"FAILED"}}`, want: true},
		{name: "boolean flag", raw: `{"isCompleted":true}`, want: true},
		{name: "string boolean flag", raw: `{"purchased":"true"}`, want: true},
		{name: "false flag alone", raw: `{"isPaid":false}`, want: false},
		{name: "success code fallback", raw: `{"code":"SUCCESS"}`, want: true},
		{name: "result type ok", raw: `{"resultType":"OK"}`, want: true},
		{name: "unknown shape", raw: `{"foo":"bar"}`, want: false},
		{name: "status deeper than walker reach", raw: `{"a":{"b":{"c":{"d":{"e":{"f":{"g":{"status":"DONE"}}}}}}}}`, want: false},
	}

	for _, tc := range cases {
		got := IsOrderPaid(decodePayload(t, tc.raw))
		if got != tc.want {
			t.Fatalf("%s: IsOrderPaid = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestExtractStatusHint(t *testing.T) {
	payload := decodePayload(t, `{"result":{"orderStatus":"CANCELED","resultType":"FAIL","message":"취소된 주문"}}`)
	hint := ExtractStatusHint(payload)
	if hint.Status != "CANCELED" || hint.Code != "FAIL" || hint.Message != "취소된 주문" {
		t.Fatalf("ExtractStatusHint = %+v", hint)
	}
}

func TestExtractStatusHintNumericCode(t *testing.T) {
	payload := decodePayload(t, `{"code":0,"status":"DONE"}`)
	hint := ExtractStatusHint(payload)
	if hint.Code != "0" {
		t.Fatalf("Code = %q, want coerced numeric string", hint.Code)
	}
}

func TestExtractVerificationFields(t *testing.T) {
	payload := decodePayload(t, `{"data":{"order_id":"ord-1","productId":"naming-unlock","paidAmount":"550"}}`)
	fields := ExtractVerificationFields(payload)
	if fields.OrderID != "ord-1" {
		t.Fatalf("OrderID = %q", fields.OrderID)
	}
	if fields.ProductID != "naming-unlock" {
		t.Fatalf("ProductID = %q", fields.ProductID)
	}
	if !fields.HasAmount || fields.Amount != 550 {
		t.Fatalf("Amount = %d, %v", fields.Amount, fields.HasAmount)
	}
}

func TestExtractVerificationFieldsAbsent(t *testing.T) {
	fields := ExtractVerificationFields(decodePayload(t, `{"status":"DONE"}`))
	if fields.OrderID != "" || fields.ProductID != "" || fields.HasAmount {
		t.Fatalf("fields = %+v, want empty", fields)
	}
}

func TestToAmount(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int64
		ok   bool
	}{
		{name: "number", in: float64(550), want: 550, ok: true},
		{name: "fractional rounds", in: float64(549.6), want: 550, ok: true},
		{name: "string with commas", in: "1,550", want: 1550, ok: true},
		{name: "string with currency suffix", in: "550원", want: 550, ok: true},
		{name: "negative", in: "-550", want: -550, ok: true},
		{name: "blank", in: "  ", ok: false},
		{name: "no digits", in: "free", ok: false},
		{name: "bool", in: true, ok: false},
	}
	for _, tc := range cases {
		got, ok := ToAmount(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("%s: ToAmount = %d, %v, want %d, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestToNullableString(t *testing.T) {
	if s, ok := ToNullableString("  ord-1  "); !ok || s != "ord-1" {
		t.Fatalf("string coercion = %q, %v", s, ok)
	}
	if s, ok := ToNullableString(float64(42)); !ok || s != "42" {
		t.Fatalf("number coercion = %q, %v", s, ok)
	}
	if s, ok := ToNullableString(true); !ok || s != "true" {
		t.Fatalf("bool coercion = %q, %v", s, ok)
	}
	if _, ok := ToNullableString("   "); ok {
		t.Fatalf("blank string should not coerce")
	}
	if _, ok := ToNullableString(map[string]any{}); ok {
		t.Fatalf("composite should not coerce")
	}
}
