package slicest

import (
	"errors"
	"testing"
)

func TestMapAndMapI(t *testing.T) {
	in := []int{1, 2, 3}
	if got := Map(in, func(v int) int { return v * 2 }); got[0] != 2 || got[2] != 6 {
		t.Fatalf("Map = %v", got)
	}
	got := MapI(in, func(i, v int) int { return i + v })
	if got[0] != 1 || got[2] != 5 {
		t.Fatalf("MapI = %v", got)
	}
}

func TestMapXStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	_, err := MapX([]int{1, 2}, func(v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})
	if err != boom {
		t.Fatalf("MapX err = %v, want boom", err)
	}
}

func TestReduce(t *testing.T) {
	if got := Reduce([]int{1, 2, 3}, func(v, acc int) int { return acc + v }); got != 6 {
		t.Fatalf("Reduce = %d, want 6", got)
	}
	if got := ReduceD([]int{1, 2}, 10, func(v, acc int) int { return acc + v }); got != 13 {
		t.Fatalf("ReduceD = %d, want 13", got)
	}
}

func TestToMap(t *testing.T) {
	m := ToMap([]string{"a", "bb"}, func(s string) (string, int) { return s, len(s) })
	if m["a"] != 1 || m["bb"] != 2 {
		t.Fatalf("ToMap = %v", m)
	}
}
