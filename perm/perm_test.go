package perm

import (
	"fmt"
	"testing"
)

func TestCount(t *testing.T) {
	for _, v := range [][2]int{{0, 1}, {1, 1}, {3, 6}, {5, 120}} {
		if have := Count(v[0]); have != v[1] {
			t.Fatalf("Count(%d) mismatch:\nwant: %d\nhave: %d", v[0], v[1], have)
		}
	}
}

func TestPermutations(t *testing.T) {
	input := []rune{'a', 'b', 'c', 'd', 'e'}
	p := Of(input)

	seen := make(map[string]bool)
	first := ""

	for {
		v, ok := p.Next()
		if !ok {
			break
		}

		key := string(v)
		if first == "" {
			first = key
		}
		if seen[key] {
			t.Fatalf("duplicate ordering %s", key)
		}
		seen[key] = true
	}

	if len(seen) != Count(len(input)) {
		t.Fatalf("ordering count mismatch:\nwant: %d\nhave: %d", Count(len(input)), len(seen))
	}

	if first != "abcde" {
		t.Fatalf("first ordering mismatch:\nwant: abcde\nhave: %s", first)
	}

	if !seen["edcba"] {
		t.Fatalf("reversed ordering missing")
	}

	if string(input) != "abcde" {
		t.Fatalf("input modified: %s", string(input))
	}

	if _, ok := p.Next(); ok {
		t.Fatalf("exhausted generator yielded a value")
	}
}

func TestPermutationsCopy(t *testing.T) {
	p := Of([]int{1, 2})

	a, _ := p.Next()
	a[0] = 42
	b, _ := p.Next()

	if fmt.Sprint(b) != "[2 1]" {
		t.Fatalf("second ordering mismatch:\nwant: [2 1]\nhave: %v", b)
	}
}

func TestPermutationsEmpty(t *testing.T) {
	if _, ok := Of[int](nil).Next(); ok {
		t.Fatalf("empty set yielded a value")
	}
}
