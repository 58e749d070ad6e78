package models_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/manduca/menu/app/models"
)

func TestItemKeyString(t *testing.T) {
	k := models.ItemKey{Type: models.TypeDaily, ID: 7}
	if got := k.String(); got != "daily:7" {
		t.Fatalf("got %q", got)
	}
}

func TestParseKey(t *testing.T) {
	cases := []struct {
		in   string
		want models.ItemKey
	}{
		{"product:5", models.ItemKey{Type: models.TypeProduct, ID: 5}},
		{"daily:7", models.ItemKey{Type: models.TypeDaily, ID: 7}},
		// No tag: legacy carts stored bare ids for regular products.
		{"12", models.ItemKey{Type: models.TypeProduct, ID: 12}},
		// Unknown tags collapse to product.
		{"combo:3", models.ItemKey{Type: models.TypeProduct, ID: 3}},
	}
	for _, c := range cases {
		got, err := models.ParseKey(c.in)
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseKey(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseKeyRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "product:", "product:abc", ":"} {
		if _, err := models.ParseKey(in); err == nil {
			t.Errorf("ParseKey(%q) succeeded", in)
		}
	}
}

func TestLineTotal(t *testing.T) {
	line := models.Line{Price: decimal.RequireFromString("1500.50"), Quantity: 3}
	if want := decimal.RequireFromString("4501.50"); !line.Total().Equal(want) {
		t.Fatalf("got %s, want %s", line.Total(), want)
	}
}

func TestEffectivePrice(t *testing.T) {
	p := models.Product{
		Price:         decimal.NewFromInt(5000),
		DiscountPrice: decimal.NewFromInt(4000),
	}
	if !p.HasDiscount() {
		t.Fatal("expected discount")
	}
	if !p.EffectivePrice().Equal(p.DiscountPrice) {
		t.Fatal("effective price must be the discounted one")
	}

	// A "discount" at or above the regular price is ignored.
	p.DiscountPrice = decimal.NewFromInt(5000)
	if p.HasDiscount() {
		t.Fatal("equal price is not a discount")
	}
	if !p.EffectivePrice().Equal(p.Price) {
		t.Fatal("effective price must fall back to the regular one")
	}

	p.DiscountPrice = decimal.Zero
	if p.HasDiscount() {
		t.Fatal("zero discount price means no discount")
	}
}
