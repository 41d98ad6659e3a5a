package tlsf

import "testing"

func TestMappingInsertSmall(t *testing.T) {
	t.Parallel()
	tests := []struct {
		size   uintptr
		wantFL int
		wantSL int
	}{
		{0, 0, 0},
		{4, 0, 1},
		{8, 0, 2},
		{12, 0, 3},
	}
	for _, tt := range tests {
		fl, sl := mappingInsert(tt.size)
		if fl != tt.wantFL || sl != tt.wantSL {
			t.Errorf("mappingInsert(%d) = (%d,%d), want (%d,%d)", tt.size, fl, sl, tt.wantFL, tt.wantSL)
		}
	}
}

func TestMappingInsertLarge(t *testing.T) {
	t.Parallel()
	// size=16 is the smallBlockSize boundary: fls(16)=4, shift=4-2=2,
	// sl=(16>>2)^4=4^4=0, fl=4-3=1.
	fl, sl := mappingInsert(16)
	if fl != 1 || sl != 0 {
		t.Errorf("mappingInsert(16) = (%d,%d), want (1,0)", fl, sl)
	}

	// size=20: fls(20)=4, shift=2, sl=(20>>2)^4=5^4=1, fl=1.
	fl, sl = mappingInsert(20)
	if fl != 1 || sl != 1 {
		t.Errorf("mappingInsert(20) = (%d,%d), want (1,1)", fl, sl)
	}
}

func TestMappingSearchRoundsUp(t *testing.T) {
	t.Parallel()
	// A request of 17 must land at an (fl, sl) whose class minimum is >= 17.
	fl, sl := mappingSearch(17)
	insFL, insSL := mappingInsert(17)
	if fl < insFL || (fl == insFL && sl < insSL) {
		t.Errorf("mappingSearch(17) = (%d,%d) undershoots mappingInsert(17) = (%d,%d)", fl, sl, insFL, insSL)
	}
}

func TestMappingSearchExactPowerIsStable(t *testing.T) {
	t.Parallel()
	for _, size := range []uintptr{16, 32, 64, 128, 1024} {
		searchFL, searchSL := mappingSearch(size)
		insFL, insSL := mappingInsert(size)
		if searchFL != insFL || searchSL != insSL {
			t.Errorf("mappingSearch(%d) = (%d,%d), want exact mappingInsert = (%d,%d)", size, searchFL, searchSL, insFL, insSL)
		}
	}
}
