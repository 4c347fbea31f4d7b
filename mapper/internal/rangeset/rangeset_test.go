/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package rangeset

import (
	"errors"
	"testing"
)

func TestInsertAndMatch_Simple(t *testing.T) {
	s := New[int]()
	must(t, s.Insert(100, 199, 1))
	must(t, s.Insert(14, 99, 2))
	must(t, s.Insert(500, 500, 3))

	tests := []struct {
		v      uint32
		want   int
		wantOK bool
		rng    Range
	}{
		{14, 2, true, Range{14, 99}},
		{99, 2, true, Range{14, 99}},
		{100, 1, true, Range{100, 199}},
		{150, 1, true, Range{100, 199}},
		{500, 3, true, Range{500, 500}},
		{13, 0, false, Range{}},
		{200, 0, false, Range{}},
		{501, 0, false, Range{}},
		{1 << 31, 0, false, Range{}},
	}
	for _, tt := range tests {
		v, ok, r := s.MatchWithRange(tt.v)
		if v != tt.want || ok != tt.wantOK || r != tt.rng {
			t.Fatalf("MatchWithRange(%d) = %v, %v, %v; want %v, %v, %v", tt.v, v, ok, r, tt.want, tt.wantOK, tt.rng)
		}
	}
	if got := s.Ranges(); len(got) != 3 || got[0] != (Range{14, 99}) || got[2] != (Range{500, 500}) {
		t.Fatalf("Ranges() not sorted: %v", got)
	}
}

func TestInsert_Overlap(t *testing.T) {
	s := New[int]()
	must(t, s.Insert(100, 200, 1))

	overlapping := []Range{{50, 100}, {200, 300}, {120, 130}, {0, 1000}, {100, 200}}
	for _, r := range overlapping {
		if err := s.Insert(r.Lo, r.Hi, 9); !errors.Is(err, ErrOverlap) {
			t.Fatalf("Insert(%s) err = %v, want ErrOverlap", r, err)
		}
	}
	// adjacent ranges are fine
	must(t, s.Insert(99, 99, 2))
	must(t, s.Insert(201, 201, 3))
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
}

func TestInvalidInputs(t *testing.T) {
	s := New[int]()
	if err := s.Insert(10, 9, 1); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("lo > hi must be invalid, got %v", err)
	}
	var nilSet *Set[int]
	if err := nilSet.Insert(1, 2, 1); err == nil {
		t.Fatalf("insert into nil set must fail")
	}
	if _, ok := nilSet.Match(1); ok {
		t.Fatalf("nil set must not match")
	}
	if nilSet.Len() != 0 || nilSet.Ranges() != nil {
		t.Fatalf("nil set must be empty")
	}
}

func TestRange_String(t *testing.T) {
	if got := (Range{14, 1023}).String(); got != "14..1023" {
		t.Fatalf("String() = %q", got)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func BenchmarkMatch(b *testing.B) {
	s := New[int]()
	for lo := uint32(14); lo < 1024; lo += 10 {
		if err := s.Insert(lo, lo+4, int(lo)); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = s.Match(uint32(i) % 1024)
	}
}
