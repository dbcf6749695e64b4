package vnode

import "testing"

func TestContextMergeReturnsNewMap(t *testing.T) {
	parent := Context{"a": 1, "b": 2}
	child := parent.Merge(Context{"b": 3, "c": 4})

	if parent["b"] != 2 {
		t.Errorf("parent context mutated: b = %v", parent["b"])
	}
	if _, ok := parent["c"]; ok {
		t.Error("parent context gained a key from the merge")
	}
	if child["a"] != 1 || child["b"] != 3 || child["c"] != 4 {
		t.Errorf("merged context wrong: %v", child)
	}
}

func TestContextMergeEmptyOverridesReturnsReceiver(t *testing.T) {
	parent := Context{"a": 1}
	if got := parent.Merge(nil); len(got) != 1 || got["a"] != 1 {
		t.Errorf("merge with nil overrides changed the map: %v", got)
	}
}

func TestContextMergeNilReceiver(t *testing.T) {
	var parent Context
	got := parent.Merge(Context{"x": "y"})
	if got["x"] != "y" {
		t.Errorf("merge on nil receiver: %v", got)
	}
}

func TestVNodeTag(t *testing.T) {
	if tag, ok := (&VNode{NodeName: "div"}).Tag(); !ok || tag != "div" {
		t.Errorf("Tag() = %q, %v", tag, ok)
	}
	if _, ok := (&VNode{NodeName: &Func{}}).Tag(); ok {
		t.Error("component node must not report a tag")
	}
}

func TestVNodeIsComponent(t *testing.T) {
	if (&VNode{NodeName: "div"}).IsComponent() {
		t.Error("string tag is not a component")
	}
	if (&VNode{}).IsComponent() {
		t.Error("nil nodeName is not a component")
	}
	if !(&VNode{NodeName: &Func{}}).IsComponent() {
		t.Error("*Func is a component descriptor")
	}
}

func TestVNodeKey(t *testing.T) {
	if k, ok := (&VNode{Attributes: map[string]any{"key": "row-1"}}).Key(); !ok || k != "row-1" {
		t.Errorf("Key() = %q, %v", k, ok)
	}
	if _, ok := (&VNode{}).Key(); ok {
		t.Error("missing key must report false")
	}
}

func TestCoreSetStateMerges(t *testing.T) {
	c := &Core{}
	c.Init(Props{"p": 1}, Context{"ctx": true})
	c.SetState(State{"a": 1})
	c.SetState(State{"b": 2, "a": 3})

	if c.State()["a"] != 3 || c.State()["b"] != 2 {
		t.Errorf("state merge wrong: %v", c.State())
	}
	if c.Props()["p"] != 1 {
		t.Errorf("props not wired: %v", c.Props())
	}
	if c.Context()["ctx"] != true {
		t.Errorf("context not wired: %v", c.Context())
	}
}
