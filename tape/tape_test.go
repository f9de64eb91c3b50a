package tape

import (
	"errors"
	"testing"
)

func TestReadUnwritten(t *testing.T) {
	tp, err := FromCells(Alphanumeric(), nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{-100, -1, 0, 1, 42} {
		if sym := tp.Read(i); sym != Blank {
			t.Fatalf("cell %d: got %v", i, sym)
		}
	}
	if _, _, ok := tp.Bounds(); ok {
		t.Fatal("empty tape should have no bounds")
	}
	count := 0
	for range tp.All() {
		count++
	}
	if count != 0 {
		t.Fatalf("got %d cells", count)
	}
}

func TestFromString(t *testing.T) {
	tp, err := FromString(Alphanumeric(), "0110100")
	if err != nil {
		t.Fatal(err)
	}
	if tp.Len() != 7 {
		t.Fatalf("got %d", tp.Len())
	}
	if str := tp.String(); str != "0110100" {
		t.Fatalf("got %q", str)
	}
	minIndex, maxIndex, ok := tp.Bounds()
	if !ok || minIndex != 0 || maxIndex != 6 {
		t.Fatalf("got %d %d %v", minIndex, maxIndex, ok)
	}
}

func TestFromStringBadSymbol(t *testing.T) {
	_, err := FromString(NewAlphabet("01"), "012")
	if !errors.Is(err, ErrInvalidTapeDescription) {
		t.Fatalf("got %v", err)
	}
}

func TestFromCellsDropsBlank(t *testing.T) {
	tp, err := FromCells(Alphanumeric(), []Cell{
		{Index: 3, Symbol: 'x'},
		{Index: 0, Symbol: Blank},
		{Index: -1, Symbol: 'y'},
	})
	if err != nil {
		t.Fatal(err)
	}
	if tp.Len() != 2 {
		t.Fatalf("got %d", tp.Len())
	}
	if str := tp.String(); str != "y###x" {
		t.Fatalf("got %q", str)
	}
}

func TestFromCellsBadSymbol(t *testing.T) {
	_, err := FromCells(NewAlphabet("01"), []Cell{
		{Index: 0, Symbol: 'x'},
	})
	if !errors.Is(err, ErrInvalidTapeDescription) {
		t.Fatalf("got %v", err)
	}
}

func TestWriteBlankErases(t *testing.T) {
	tp, err := FromString(Alphanumeric(), "abc")
	if err != nil {
		t.Fatal(err)
	}
	if err := tp.Write(1, Blank); err != nil {
		t.Fatal(err)
	}
	if sym := tp.Read(1); sym != Blank {
		t.Fatalf("got %v", sym)
	}
	// erasing an already blank cell is a no-op
	if err := tp.Write(1, Blank); err != nil {
		t.Fatal(err)
	}
	if str := tp.String(); str != "a#c" {
		t.Fatalf("got %q", str)
	}
}

func TestEraseExtremalCell(t *testing.T) {
	tp, err := FromCells(Alphanumeric(), []Cell{
		{Index: -2, Symbol: 'a'},
		{Index: 5, Symbol: 'b'},
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := tp.Write(5, Blank); err != nil {
		t.Fatal(err)
	}
	minIndex, maxIndex, ok := tp.Bounds()
	if !ok || minIndex != -2 || maxIndex != -2 {
		t.Fatalf("got %d %d %v", minIndex, maxIndex, ok)
	}
	count := 0
	for range tp.All() {
		count++
	}
	if count != 1 {
		t.Fatalf("got %d cells", count)
	}

	if err := tp.Write(-2, Blank); err != nil {
		t.Fatal(err)
	}
	if _, _, ok := tp.Bounds(); ok {
		t.Fatal("tape should be empty")
	}
}

func TestWriteExtendsBounds(t *testing.T) {
	tp, err := FromString(Alphanumeric(), "a")
	if err != nil {
		t.Fatal(err)
	}
	if err := tp.Write(-3, 'b'); err != nil {
		t.Fatal(err)
	}
	if err := tp.Write(2, 'c'); err != nil {
		t.Fatal(err)
	}
	if str := tp.String(); str != "b##a#c" {
		t.Fatalf("got %q", str)
	}
}

func TestWriteBadSymbol(t *testing.T) {
	tp, err := FromString(NewAlphabet("01"), "0")
	if err != nil {
		t.Fatal(err)
	}
	if err := tp.Write(0, 'x'); !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("got %v", err)
	}
	// the failed write must not disturb the tape
	if str := tp.String(); str != "0" {
		t.Fatalf("got %q", str)
	}
}

func TestIterateSpan(t *testing.T) {
	tp, err := FromCells(Alphanumeric(), []Cell{
		{Index: -2, Symbol: 'a'},
		{Index: 5, Symbol: 'b'},
	})
	if err != nil {
		t.Fatal(err)
	}

	var indices []int
	var symbols []Symbol
	for i, sym := range tp.All() {
		indices = append(indices, i)
		symbols = append(symbols, sym)
	}
	if len(indices) != 8 {
		t.Fatalf("got %d pairs", len(indices))
	}
	for k, i := range indices {
		if i != -2+k {
			t.Fatalf("index %d: got %d", k, i)
		}
	}
	for k, sym := range symbols {
		switch k {
		case 0:
			if sym != 'a' {
				t.Fatalf("got %v", sym)
			}
		case 7:
			if sym != 'b' {
				t.Fatalf("got %v", sym)
			}
		default:
			if sym != Blank {
				t.Fatalf("pair %d: got %v", k, sym)
			}
		}
	}
}

func TestIterateRestartable(t *testing.T) {
	tp, err := FromString(Alphanumeric(), "xy")
	if err != nil {
		t.Fatal(err)
	}
	for range 2 {
		count := 0
		for range tp.All() {
			count++
		}
		if count != 2 {
			t.Fatalf("got %d", count)
		}
	}
}

func TestViewIsLive(t *testing.T) {
	tp, err := FromString(Alphanumeric(), "ab")
	if err != nil {
		t.Fatal(err)
	}
	view := tp.View()
	if str := view.String(); str != "ab" {
		t.Fatalf("got %q", str)
	}

	if err := tp.Write(3, 'z'); err != nil {
		t.Fatal(err)
	}
	if sym := view.Read(3); sym != 'z' {
		t.Fatalf("got %v", sym)
	}
	if str := view.String(); str != "ab#z" {
		t.Fatalf("got %q", str)
	}
	if view.Len() != 3 {
		t.Fatalf("got %d", view.Len())
	}
	_, maxIndex, ok := view.Bounds()
	if !ok || maxIndex != 3 {
		t.Fatalf("got %d %v", maxIndex, ok)
	}

	// same handle on every call
	if tp.View() != view {
		t.Fatal("view should be stable")
	}
}
