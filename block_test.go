package tlsf

import "testing"

func TestBlockSizeFlagsRoundTrip(t *testing.T) {
	h := &header{}
	setBlockSize(h, 128)
	if blockSize(h) != 128 {
		t.Fatalf("blockSize = %d, want 128", blockSize(h))
	}
	h.size |= flagFree
	if blockSize(h) != 128 {
		t.Fatalf("blockSize after flag set = %d, want 128", blockSize(h))
	}
	if !isFree(h) {
		t.Fatal("isFree = false, want true")
	}
	setBlockSize(h, 256)
	if blockSize(h) != 256 || !isFree(h) {
		t.Fatalf("setBlockSize must preserve flags: size=%d free=%v", blockSize(h), isFree(h))
	}
}

func TestAdjustRequestSize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		n    uintptr
		want uintptr
	}{
		{"zero", 0, 0},
		{"one byte rounds up to min", 1, blockSizeMin},
		{"exactly min", blockSizeMin, blockSizeMin},
		{"just above min aligns", blockSizeMin + 1, alignUp(blockSizeMin+1, alignSize)},
		{"too large", blockSizeMax, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adjustRequestSize(tt.n, alignSize); got != tt.want {
				t.Errorf("adjustRequestSize(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestBlockCanSplit(t *testing.T) {
	h := &header{}
	setBlockSize(h, fullHeaderSize+16)
	if !blockCanSplit(h, 16) {
		t.Error("expected split to be possible with exact slack")
	}
	setBlockSize(h, fullHeaderSize+15)
	if blockCanSplit(h, 16) {
		t.Error("expected split to be impossible with insufficient slack")
	}
}

func TestAlignUpDown(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x, align  uintptr
		wantUp    uintptr
		wantDown  uintptr
	}{
		{0, 8, 0, 0},
		{1, 8, 8, 0},
		{7, 8, 8, 0},
		{8, 8, 8, 8},
		{9, 8, 16, 8},
	}
	for _, tt := range tests {
		if got := alignUp(tt.x, tt.align); got != tt.wantUp {
			t.Errorf("alignUp(%d,%d) = %d, want %d", tt.x, tt.align, got, tt.wantUp)
		}
		if got := alignDown(tt.x, tt.align); got != tt.wantDown {
			t.Errorf("alignDown(%d,%d) = %d, want %d", tt.x, tt.align, got, tt.wantDown)
		}
	}
}
