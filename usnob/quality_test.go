package usnob

import "testing"

func TestBatchQualityEmpty(t *testing.T) {
	stats := BatchQuality(nil, 3)
	if stats.Count != 0 || stats.Skipped != 3 {
		t.Fatalf("got %+v, want Count=0 Skipped=3", stats)
	}
}

func TestBatchQualityRangeAndDuplicates(t *testing.T) {
	stars := []*Star{
		{UsnobID: "1000-0000001", RA: 10, Dec: -5},
		{UsnobID: "1000-0000002", RA: 350, Dec: 80},
		{UsnobID: "1000-0000001", RA: 20, Dec: 0}, // duplicate id
	}

	stats := BatchQuality(stars, 1)
	if stats.Count != 3 {
		t.Errorf("Count = %d, want 3", stats.Count)
	}
	if !closeEnough(stats.MinRA, 10) || !closeEnough(stats.MaxRA, 350) {
		t.Errorf("RA range = [%v,%v], want [10,350]", stats.MinRA, stats.MaxRA)
	}
	if !closeEnough(stats.MinDec, -5) || !closeEnough(stats.MaxDec, 80) {
		t.Errorf("Dec range = [%v,%v], want [-5,80]", stats.MinDec, stats.MaxDec)
	}
	if len(stats.DuplicateIDs) != 1 || stats.DuplicateIDs[0] != "1000-0000001" {
		t.Errorf("DuplicateIDs = %v, want [1000-0000001]", stats.DuplicateIDs)
	}
	if stats.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", stats.Skipped)
	}
}
