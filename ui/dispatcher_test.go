// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"slices"
	"sync"
	"testing"
)

func TestDispatcherOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	post := func(name string, p Priority) {
		if !d.Post(func() { got = append(got, name) }, p) {
			t.Fatalf("Post(%s) rejected", name)
		}
	}
	post("bg1", PriorityBackground)
	post("normal", PriorityNormal)
	post("bg2", PriorityBackground)
	post("send", PrioritySend)
	post("render", PriorityRender)

	if n := d.RunPending(); n != 5 {
		t.Errorf("RunPending = %d, want 5", n)
	}
	want := []string{"send", "render", "normal", "bg1", "bg2"}
	if !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if d.Pending() != 0 {
		t.Errorf("Pending = %d after run", d.Pending())
	}
}

func TestDispatcherRepostWaitsForNextRun(t *testing.T) {
	d := NewDispatcher()
	runs := 0
	var job func()
	job = func() {
		runs++
		d.Post(job, PriorityBackground)
	}
	d.Post(job, PriorityBackground)

	if n := d.RunPending(); n != 1 {
		t.Errorf("first RunPending = %d, want 1", n)
	}
	if d.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", d.Pending())
	}
	d.RunPending()
	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}
}

func TestDispatcherRejects(t *testing.T) {
	d := NewDispatcher()
	tests := []struct {
		name string
		fn   func()
		p    Priority
	}{
		{"nil func", nil, PriorityNormal},
		{"negative priority", func() {}, Priority(-1)},
		{"priority too high", func() {}, numPriorities},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d.Post(tt.fn, tt.p) {
				t.Error("Post accepted")
			}
		})
	}
}

func TestDispatcherClose(t *testing.T) {
	d := NewDispatcher()
	ran := false
	d.Post(func() { ran = true }, PriorityNormal)
	d.Close()
	d.Close()

	if d.Post(func() {}, PriorityNormal) {
		t.Error("Post after Close accepted")
	}
	if n := d.RunPending(); n != 0 || ran {
		t.Errorf("queued job ran after Close (n=%d)", n)
	}
}

func TestDispatcherConcurrentPost(t *testing.T) {
	d := NewDispatcher()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				d.Post(func() {}, Priority(i%int(numPriorities)))
			}
		}()
	}
	wg.Wait()
	if got := d.RunPending(); got != 800 {
		t.Errorf("RunPending = %d, want 800", got)
	}
}

func TestPriorityString(t *testing.T) {
	tests := []struct {
		p    Priority
		want string
	}{
		{PriorityBackground, "Background"},
		{PriorityNormal, "Normal"},
		{PriorityRender, "Render"},
		{PrioritySend, "Send"},
		{Priority(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Priority(%d).String() = %q, want %q", int(tt.p), got, tt.want)
		}
	}
}
