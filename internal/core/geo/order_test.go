package geo

import "testing"

func TestCityOrder_Rank(t *testing.T) {
	order := DefaultCityOrder()

	if got := order.Rank("基隆市"); got != 0 {
		t.Errorf("Rank(基隆市) = %d, want 0", got)
	}
	if got := order.Rank("金門縣"); got != order.Len()-1 {
		t.Errorf("Rank(金門縣) = %d, want %d", got, order.Len()-1)
	}
	if got := order.Rank("澎湖縣"); got != order.Len() {
		t.Errorf("Rank(unknown) = %d, want %d", got, order.Len())
	}
}

func TestNewCityOrder_SkipsEmptyAndDuplicates(t *testing.T) {
	order := NewCityOrder([]string{"A", "", "B", "A", "C"})

	if order.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", order.Len())
	}
	if got := order.Rank("A"); got != 0 {
		t.Errorf("Rank(A) = %d, want 0", got)
	}
	if got := order.Rank("C"); got != 2 {
		t.Errorf("Rank(C) = %d, want 2", got)
	}
	if order.Known("") {
		t.Error("empty name must not be known")
	}
}

func TestCityOrder_ZeroValue(t *testing.T) {
	var order CityOrder
	if order.Len() != 0 {
		t.Errorf("Len() = %d, want 0", order.Len())
	}
	if got := order.Rank("台北市"); got != 0 {
		t.Errorf("Rank() on zero table = %d, want 0", got)
	}
}

func TestCityOrder_NamesIsCopy(t *testing.T) {
	order := NewCityOrder([]string{"A", "B"})
	names := order.Names()
	names[0] = "Z"
	if order.Names()[0] != "A" {
		t.Error("Names() must return a copy")
	}
}

func TestNewCollation(t *testing.T) {
	if _, err := NewCollation("zh-Hant-TW"); err != nil {
		t.Errorf("NewCollation(zh-Hant-TW) error = %v", err)
	}
	c, err := NewCollation("")
	if err != nil {
		t.Fatalf("NewCollation(\"\") error = %v", err)
	}
	if c.Locale() != "und" {
		t.Errorf("Locale() = %q, want und", c.Locale())
	}
	if _, err := NewCollation("not a locale!"); err == nil {
		t.Error("expected error for invalid locale")
	}
}
