package engine

import "testing"

func TestEventWithArgInvokeOrder(t *testing.T) {
	var e EventWithArg[int]
	var order []int
	e.AddListener(func(v int) { order = append(order, v) })
	e.AddListener(nil)
	e.AddListener(func(v int) { order = append(order, v*10) })

	e.Invoke(2)

	if len(order) != 2 || order[0] != 2 || order[1] != 20 {
		t.Errorf("Expected [2 20], got %v", order)
	}

	e.RemoveAllListeners()
	e.Invoke(3)
	if len(order) != 2 {
		t.Error("Listeners should be cleared")
	}
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[string]
	var got string
	e.AddListener(func(s string) { got += s })
	e.AddListener(func(s string) { got += s })

	e.Invoke("ab")

	if got != "abab" {
		t.Errorf("Expected 'abab', got %q", got)
	}
}
