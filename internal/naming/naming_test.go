package naming

import (
	"path/filepath"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestBuildName(t *testing.T) {
	cases := []struct {
		name    string
		subject string
		date    time.Time
		age     string
		id      int
		ext     string
		want    string
	}{
		{
			name: "spaces become underscores", subject: "Jane Doe",
			date: date(2023, 5, 10), age: "03months", id: 7, ext: ".JPG",
			want: "Jane_Doe_20230510_03months_007.jpg",
		},
		{
			name: "single word subject", subject: "Sam",
			date: date(2024, 12, 1), age: "01years", id: 120, ext: ".nef",
			want: "Sam_20241201_01years_120.nef",
		},
		{
			name: "multiple spaces", subject: "Mary Jane Watson",
			date: date(2023, 1, 2), age: "01days", id: 1, ext: ".png",
			want: "Mary_Jane_Watson_20230102_01days_001.png",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildName(tt.subject, tt.date, tt.age, tt.id, tt.ext)
			if got != tt.want {
				t.Errorf("BuildName() = %q, want %q", got, tt.want)
			}
		})
	}
}

// fakeExists builds an existence probe over a set of basenames.
func fakeExists(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(p string) bool { return set[filepath.Base(p)] }
}

func newNames(allocs []Allocation) []string {
	var out []string
	for _, a := range allocs {
		out = append(out, a.NewName)
	}
	return out
}

func TestAllocate_SequentialIDs(t *testing.T) {
	alloc := &Allocator{Subject: "Jane Doe", Birth: date(2023, 1, 15), Exists: fakeExists()}
	bucket := date(2023, 1, 20)

	got := alloc.Allocate(bucket, []string{"/p/a.jpg", "/p/b.jpg", "/p/c.jpg"}, nil)

	want := []string{
		"Jane_Doe_20230120_05days_001.jpg",
		"Jane_Doe_20230120_05days_002.jpg",
		"Jane_Doe_20230120_05days_003.jpg",
	}
	if len(got) != 3 {
		t.Fatalf("got %d allocations, want 3", len(got))
	}
	for i, name := range newNames(got) {
		if name != want[i] {
			t.Errorf("allocation %d = %q, want %q", i, name, want[i])
		}
	}
}

func TestAllocate_SkipDoesNotConsumeID(t *testing.T) {
	alloc := &Allocator{Subject: "Jane", Birth: date(2023, 1, 1), Exists: fakeExists()}
	already := map[string]struct{}{"a.jpg": {}}

	got := alloc.Allocate(date(2023, 1, 2), []string{"/p/a.jpg", "/p/b.jpg", "/p/c.jpg"}, already)

	if !got[0].Skipped {
		t.Fatal("expected a.jpg to be skipped")
	}
	if got[1].NewName != "Jane_20230102_01days_001.jpg" {
		t.Errorf("first unskipped file = %q, want ID 001", got[1].NewName)
	}
	if got[2].NewName != "Jane_20230102_01days_002.jpg" {
		t.Errorf("second unskipped file = %q, want ID 002", got[2].NewName)
	}
}

func TestAllocate_ProbesPastOccupiedName(t *testing.T) {
	// A stranger file already holds ID 001 on disk; the probe must walk
	// past it without permanently advancing the shared counter.
	alloc := &Allocator{
		Subject: "Jane",
		Birth:   date(2023, 1, 1),
		Exists:  fakeExists("Jane_20230102_01days_001.jpg"),
	}

	got := alloc.Allocate(date(2023, 1, 2), []string{"/p/a.jpg", "/p/b.jpg"}, nil)

	if got[0].NewName != "Jane_20230102_01days_002.jpg" {
		t.Errorf("first file = %q, want probe to 002", got[0].NewName)
	}
	// Second file starts at counter 2, finds 002 claimed in-run, lands on 003.
	if got[1].NewName != "Jane_20230102_01days_003.jpg" {
		t.Errorf("second file = %q, want probe to 003", got[1].NewName)
	}
}

func TestAllocate_OwnNameIsIdempotent(t *testing.T) {
	// A file that already carries its target name keeps it, even though
	// the name "exists" on disk (it is the file itself).
	self := "Jane_20230102_01days_001.jpg"
	alloc := &Allocator{Subject: "Jane", Birth: date(2023, 1, 1), Exists: fakeExists(self)}

	got := alloc.Allocate(date(2023, 1, 2), []string{"/p/" + self}, nil)

	if got[0].NewName != self {
		t.Errorf("NewName = %q, want unchanged %q", got[0].NewName, self)
	}
}

func TestAllocate_UniqueWithinBucket(t *testing.T) {
	// Three files all funneled toward the same IDs must still come out
	// with three distinct names, whatever the tie-break order.
	alloc := &Allocator{
		Subject: "Jane",
		Birth:   date(2023, 1, 1),
		Exists:  fakeExists("Jane_20230102_01days_001.jpg", "Jane_20230102_01days_002.jpg"),
	}

	got := alloc.Allocate(date(2023, 1, 2),
		[]string{"/p/a.jpg", "/p/b.jpg", "/p/c.jpg"}, nil)

	seen := make(map[string]bool)
	for _, a := range got {
		if seen[a.NewName] {
			t.Fatalf("duplicate final name %q", a.NewName)
		}
		seen[a.NewName] = true
	}
}

func TestAllocate_CounterResetsPerBucket(t *testing.T) {
	alloc := &Allocator{Subject: "Jane", Birth: date(2023, 1, 1), Exists: fakeExists()}

	first := alloc.Allocate(date(2023, 1, 2), []string{"/p/a.jpg"}, nil)
	second := alloc.Allocate(date(2023, 1, 3), []string{"/p/b.jpg"}, nil)

	if first[0].NewName != "Jane_20230102_01days_001.jpg" {
		t.Errorf("first bucket = %q, want ID 001", first[0].NewName)
	}
	if second[0].NewName != "Jane_20230103_02days_001.jpg" {
		t.Errorf("second bucket = %q, want ID 001 again", second[0].NewName)
	}
}

func TestAllocate_ExtensionLowercasedPerFile(t *testing.T) {
	alloc := &Allocator{Subject: "Jane", Birth: date(2023, 1, 1), Exists: fakeExists()}

	got := alloc.Allocate(date(2023, 1, 2), []string{"/p/IMG_1.NEF", "/p/IMG_2.JPG"}, nil)

	if got[0].NewName != "Jane_20230102_01days_001.nef" {
		t.Errorf("nef file = %q", got[0].NewName)
	}
	if got[1].NewName != "Jane_20230102_01days_002.jpg" {
		t.Errorf("jpg file = %q", got[1].NewName)
	}
}
