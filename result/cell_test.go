package result

import "testing"

type dropCounter struct {
	drops *int
}

func (d dropCounter) Drop() {
	*d.drops++
}

func TestCell_ConstructDestruct(t *testing.T) {
	var c Cell[int]

	if c.Occupied() {
		t.Fatal("zero cell should be empty")
	}

	c.Construct(42)
	if !c.Occupied() {
		t.Fatal("cell should be occupied after Construct")
	}
	if got := c.Get(); got != 42 {
		t.Errorf("Get() = %d, want 42", got)
	}

	c.Destruct()
	if c.Occupied() {
		t.Error("cell should be empty after Destruct")
	}
}

func TestCell_DestructEmptyIsNoop(t *testing.T) {
	var c Cell[string]
	c.Destruct()
	c.Destruct()
	if c.Occupied() {
		t.Error("cell should remain empty")
	}
}

func TestCell_NoDoubleDrop(t *testing.T) {
	drops := 0
	c := NewCell(dropCounter{drops: &drops})

	c.Destruct()
	c.Destruct()

	if drops != 1 {
		t.Errorf("value dropped %d times, want 1", drops)
	}
}

func TestCell_ConstructReplacesAndDrops(t *testing.T) {
	drops := 0
	c := NewCell(dropCounter{drops: &drops})

	// Replacing the held value destructs the old one first.
	c.Construct(dropCounter{drops: &drops})
	if drops != 1 {
		t.Errorf("old value dropped %d times, want 1", drops)
	}

	c.Destruct()
	if drops != 2 {
		t.Errorf("total drops = %d, want 2", drops)
	}
}

func TestCell_CopyIsIndependent(t *testing.T) {
	a := NewCell([2]int{1, 2})
	b := a

	b.Construct([2]int{9, 9})

	if got := a.Get(); got != [2]int{1, 2} {
		t.Errorf("source cell changed after copy mutation: %v", got)
	}
	if got := b.Get(); got != [2]int{9, 9} {
		t.Errorf("copy = %v, want [9 9]", got)
	}
}

func TestCell_CopyEmpty(t *testing.T) {
	var a Cell[int]
	b := a
	if b.Occupied() {
		t.Error("copy of empty cell should be empty")
	}
}

func TestCell_Raw(t *testing.T) {
	c := NewCell(7)
	*c.Raw() = 8
	if got := c.Get(); got != 8 {
		t.Errorf("Get() = %d after writing through Raw, want 8", got)
	}
}
