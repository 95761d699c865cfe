package ecs

import "testing"

// witnessSystem records the entity count it sees when stopped
type witnessSystem struct {
	BaseSystem
	countAtStop int
}

func (s *witnessSystem) Update(dt float64) {}

func (s *witnessSystem) Stop() {
	s.countAtStop = s.World().EntityCount()
}

func TestWorldTimeAccumulation(t *testing.T) {
	w := NewWorld()
	if w.TotalTime() != 0 || w.DeltaTime() != 0 {
		t.Fatal("fresh world carries time")
	}

	w.Update(0.25)
	w.Update(0.5)
	if w.TotalTime() != 0.75 {
		t.Fatalf("total time %v, want 0.75", w.TotalTime())
	}
	if w.DeltaTime() != 0.5 {
		t.Fatalf("delta time %v, want 0.5", w.DeltaTime())
	}
}

func TestWorldClearOrder(t *testing.T) {
	w := NewWorld()
	sys := &witnessSystem{BaseSystem: NewBaseSystem(10)}
	w.AddSystem(sys)
	for i := 0; i < 4; i++ {
		e := w.CreateEntity()
		if _, err := w.AddComponent(e, newMock(kindAlpha, i)); err != nil {
			t.Fatal(err)
		}
	}
	w.Update(0.1)

	w.Clear()

	// systems tear down before the entity set, so the stop hook still
	// observed a populated world
	if sys.countAtStop != 4 {
		t.Fatalf("stop hook saw %d entities, want 4", sys.countAtStop)
	}
	if w.EntityCount() != 0 {
		t.Fatalf("entities survived clear: %d", w.EntityCount())
	}
	if w.Scheduler().Len() != 0 {
		t.Fatalf("systems survived clear: %d", w.Scheduler().Len())
	}
	if w.TotalTime() != 0 || w.DeltaTime() != 0 {
		t.Fatal("clear did not reset simulation time")
	}
}

func TestWorldForwarding(t *testing.T) {
	w := NewWorld()
	e, err := w.CreateEntityWithID("hero")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.AddComponent(e, newMock(kindAlpha, 7)); err != nil {
		t.Fatal(err)
	}

	if !w.HasComponent(e, kindAlpha) {
		t.Fatal("component not visible through the facade")
	}
	if got := w.Query(kindAlpha); len(got) != 1 || got[0] != e {
		t.Fatalf("facade query returned %v", got)
	}
	if got := w.QueryAny(kindAlpha); len(got) != 1 {
		t.Fatalf("facade single-kind query returned %v", got)
	}
	if c, ok := w.GetComponent(e, kindAlpha); !ok || c.(*mockComponent).Value != 7 {
		t.Fatalf("facade get returned %v ok=%v", c, ok)
	}

	removed, err := w.RemoveComponent(e, kindAlpha)
	if err != nil || !removed {
		t.Fatalf("facade remove: removed=%v err=%v", removed, err)
	}
	w.DestroyEntity(e)
	if w.EntityCount() != 0 {
		t.Fatalf("facade destroy left %d entities", w.EntityCount())
	}
}
