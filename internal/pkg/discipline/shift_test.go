package discipline

import "testing"

func TestClassifyShift(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  int
		role     string
		location string
		wantBase int
		wantName string
		wantOK   bool
	}{
		{"morning staff", 430, "pegawai", "Klinik Cabang A", 420, "PAGI", true},
		{"morning doctor", 430, "dokter", "Klinik Cabang A", 450, "PAGI", true},
		{"morning doctor uppercase role", 430, "DOKTER", "Klinik Cabang A", 450, "PAGI", true},
		{"morning lower bound", 360, "pegawai", "Klinik Cabang A", 420, "PAGI", true},
		{"morning upper bound", 540, "pegawai", "Klinik Cabang A", 420, "PAGI", true},
		{"before morning window", 359, "pegawai", "Klinik Cabang A", 0, "", false},
		{"midday staff", 800, "pegawai", "Klinik Cabang A", 780, "SIANG", true},
		{"midday doctor", 800, "dokter", "Klinik Cabang A", 810, "SIANG", true},
		{"gap between morning and midday", 600, "pegawai", "Klinik Cabang A", 0, "", false},
		{"olak kemang afternoon staff", 940, "pegawai", "Klinik Olak Kemang", 915, "SORE_OLAK_KEMANG", true},
		{"olak kemang afternoon doctor", 940, "dokter", "Klinik Olak Kemang", 930, "SORE_OLAK_KEMANG", true},
		{"olak kemang case-insensitive", 940, "dokter", "OLAK KEMANG CLINIC", 930, "SORE_OLAK_KEMANG", true},
		{"afternoon at other location", 940, "pegawai", "Klinik Cabang A", 0, "", false},
		{"olak kemang overlap prefers override", 900, "pegawai", "Klinik Olak Kemang", 915, "SORE_OLAK_KEMANG", true},
		{"evening unmatched", 1200, "pegawai", "Klinik Cabang A", 0, "", false},
	}
	for _, c := range cases {
		base, name, ok := ClassifyShift(c.checkIn, c.role, c.location)
		if ok != c.wantOK || base != c.wantBase || name != c.wantName {
			t.Errorf("%s: ClassifyShift(%d, %q, %q) = (%d, %q, %v), want (%d, %q, %v)",
				c.name, c.checkIn, c.role, c.location, base, name, ok, c.wantBase, c.wantName, c.wantOK)
		}
	}
}

func TestShiftWindowMatches(t *testing.T) {
	w := DefaultShiftTable[0]
	if !w.Matches(960, "Apotek Olak Kemang 2") {
		t.Error("pattern should match as substring")
	}
	if w.Matches(960, "Klinik Simpang") {
		t.Error("pattern should not match different location")
	}
}
