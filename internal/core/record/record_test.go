package record

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Record
		want Record
	}{
		{
			name: "trims geographic fields",
			in:   Record{Name: "A", City: " 台北市 ", District: "大安區\n"},
			want: Record{Name: "A", City: "台北市", District: "大安區"},
		},
		{
			name: "whitespace city becomes unclassified",
			in:   Record{Name: "B", City: "   "},
			want: Record{Name: "B"},
		},
		{
			name: "display fields untouched",
			in:   Record{Name: " C ", Address: " X路1號 ", Tel: " 02 "},
			want: Record{Name: " C ", Address: " X路1號 ", Tel: " 02 "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeAll_DoesNotMutateInput(t *testing.T) {
	in := []Record{{Name: "A", City: " 台北市"}}
	out := NormalizeAll(in)

	if in[0].City != " 台北市" {
		t.Errorf("input mutated: %q", in[0].City)
	}
	if out[0].City != "台北市" {
		t.Errorf("expected normalized city, got %q", out[0].City)
	}
}

func TestHasCityAndDistrict(t *testing.T) {
	r := Record{City: "高雄市"}
	if !r.HasCity() {
		t.Error("expected HasCity() = true")
	}
	if r.HasDistrict() {
		t.Error("expected HasDistrict() = false")
	}
}
