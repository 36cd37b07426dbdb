package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "-1", "100.50", "0.01", "999999.99", "-42.125"}

	for _, s := range cases {
		d, err := decimal.NewFromString(s)
		if err != nil {
			t.Fatalf("bad test value %q: %v", s, err)
		}

		got := numericToDecimal(decimalToNumeric(d))
		if !got.Equal(d) {
			t.Errorf("round trip of %s returned %s", d, got)
		}
	}
}

func TestNumericToDecimalInvalid(t *testing.T) {
	got := numericToDecimal(pgtype.Numeric{})
	if !got.IsZero() {
		t.Fatalf("expected zero for null numeric, got %s", got)
	}
}
