package runutil

import (
	"runtime"
	"testing"
)

func TestEffectiveThreads(t *testing.T) {
	auto := EffectiveThreads(0, 1024)
	if auto < 1 || auto > MaxDefaultThreads || auto > runtime.NumCPU() {
		t.Fatalf("auto threads out of range: %d", auto)
	}
	if got := EffectiveThreads(-1, 1024); got != auto {
		t.Fatalf("negative means auto: want %d, got %d", auto, got)
	}
	if got := EffectiveThreads(32, 1024); got != 32 {
		t.Fatalf("explicit count kept for small input: want 32, got %d", got)
	}
	if got := EffectiveThreads(32, LargeInput+1); got != MaxDefaultThreads {
		t.Fatalf("large input caps threads: want %d, got %d", MaxDefaultThreads, got)
	}
	if got := EffectiveThreads(3, LargeInput+1); got != 3 {
		t.Fatalf("cap never raises a count: want 3, got %d", got)
	}
}
