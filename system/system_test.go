package system

import (
	"math"
	"testing"

	"github.com/corvid-labs/tessera/component"
	"github.com/corvid-labs/tessera/ecs"
	"github.com/corvid-labs/tessera/render"
	"github.com/corvid-labs/tessera/vmath"
)

func addOrFatal(t *testing.T, w *ecs.World, e ecs.Entity, c ecs.Component) {
	t.Helper()
	if _, err := w.AddComponent(e, c); err != nil {
		t.Fatal(err)
	}
}

func TestMovementIntegratesVelocity(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewMovement())

	e := w.CreateEntity()
	addOrFatal(t, w, e, component.NewTransform(100, 100))
	addOrFatal(t, w, e, component.NewVelocity(60, -30))

	w.Update(0.5)

	tf, _ := ecs.Get[*component.Transform](w.Store(), e, component.KindTransform)
	if tf.Position.X != 130 || tf.Position.Y != 85 {
		t.Fatalf("position %v, want (130, 85)", tf.Position)
	}
}

func TestMovementAppliesSpeedLimit(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewMovement())

	e := w.CreateEntity()
	addOrFatal(t, w, e, component.NewTransform(0, 0))
	v := component.NewVelocity(300, 400) // magnitude 500
	v.MaxSpeed = 100
	addOrFatal(t, w, e, v)

	w.Update(1.0)

	tf, _ := ecs.Get[*component.Transform](w.Store(), e, component.KindTransform)
	moved := tf.Position.Magnitude()
	if math.Abs(moved-100) > 1e-9 {
		t.Fatalf("moved %v world units, want 100", moved)
	}
	if math.Abs(v.Velocity.Magnitude()-100) > 1e-9 {
		t.Fatalf("stored velocity not clamped: %v", v.Velocity)
	}
}

func TestMovementIgnoresPartialEntities(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewMovement())

	still := w.CreateEntity()
	addOrFatal(t, w, still, component.NewTransform(10, 10))

	w.Update(1.0)

	tf, _ := ecs.Get[*component.Transform](w.Store(), still, component.KindTransform)
	if tf.Position.X != 10 || tf.Position.Y != 10 {
		t.Fatalf("transform-only entity moved to %v", tf.Position)
	}
}

func TestBoundaryWrapAfterMovement(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewMovement())
	w.AddSystem(NewBoundary(800, 600, Wrap))

	e := w.CreateEntity()
	addOrFatal(t, w, e, component.NewTransform(795, 300))
	addOrFatal(t, w, e, component.NewVelocity(20, 0))

	w.Update(1.0)

	tf, _ := ecs.Get[*component.Transform](w.Store(), e, component.KindTransform)
	if tf.Position.X != 15 || tf.Position.Y != 300 {
		t.Fatalf("position %v, want (15, 300)", tf.Position)
	}
}

func TestBoundaryClamp(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewBoundary(800, 600, Clamp))

	e := w.CreateEntity()
	addOrFatal(t, w, e, component.NewTransform(-40, 900))

	w.Update(0.016)

	tf, _ := ecs.Get[*component.Transform](w.Store(), e, component.KindTransform)
	if tf.Position.X != 0 || tf.Position.Y != 600 {
		t.Fatalf("position %v, want (0, 600)", tf.Position)
	}
}

func TestHealthDestroysDeadEntities(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewHealth())

	e := w.CreateEntity()
	addOrFatal(t, w, e, component.NewTransform(0, 0))
	h := component.NewHealth(100)
	addOrFatal(t, w, e, h)

	h.TakeDamage(85)
	w.Update(0.016)
	if !w.Store().Contains(e) {
		t.Fatal("entity destroyed while still alive")
	}

	h.TakeDamage(20)
	if h.Current != 0 || !h.Dead {
		t.Fatalf("lethal damage not registered: %+v", h)
	}
	w.Update(0.016)

	if w.Store().Contains(e) {
		t.Fatal("dead entity survived the tick")
	}
	for _, kind := range []ecs.Kind{component.KindHealth, component.KindTransform} {
		if w.HasComponent(e, kind) {
			t.Fatalf("destroyed entity still reports %s", kind)
		}
	}
}

func TestTimerSystemAdvancesTimers(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewTimer())

	fires := 0
	e := w.CreateEntity()
	addOrFatal(t, w, e, component.NewTimer(1.0, func() { fires++ }, true))

	for i := 0; i < 4; i++ {
		w.Update(0.5)
	}
	if fires != 2 {
		t.Fatalf("expected 2 fires over 2 seconds, got %d", fires)
	}
}

func TestTimerCallbackCanSpawn(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewTimer())

	e := w.CreateEntity()
	addOrFatal(t, w, e, component.NewTimer(0.5, func() {
		spawned := w.CreateEntity()
		if _, err := w.AddComponent(spawned, component.NewTransform(0, 0)); err != nil {
			t.Error(err)
		}
	}, false))

	before := w.EntityCount()
	w.Update(1.0)
	if w.EntityCount() != before+1 {
		t.Fatalf("spawn callback did not run: %d entities", w.EntityCount())
	}
}

func TestRenderZOrder(t *testing.T) {
	w := ecs.NewWorld()
	rec := &render.Recorder{}
	w.AddSystem(NewRender(rec))

	spawn := func(z int, shape component.Shape) {
		e := w.CreateEntity()
		addOrFatal(t, w, e, component.NewTransform(float64(z)*10, 0))
		sp := component.NewSprite(component.Hex("#ffffff"), 10, 10, shape)
		sp.Z = z
		addOrFatal(t, w, e, sp)
	}
	spawn(5, component.Rectangle)
	spawn(1, component.Circle)
	spawn(3, component.Triangle)

	w.Update(0.016)

	if len(rec.Ops) != 3 {
		t.Fatalf("expected 3 draw calls, got %d", len(rec.Ops))
	}
	wantOrder := []render.Primitive{render.PrimCircle, render.PrimPolygon, render.PrimRectangle}
	for i, want := range wantOrder {
		if rec.Ops[i].Primitive != want {
			t.Fatalf("draw %d is primitive %d, want %d", i, rec.Ops[i].Primitive, want)
		}
	}
}

func TestRenderSkipsInvisible(t *testing.T) {
	w := ecs.NewWorld()
	rec := &render.Recorder{}
	w.AddSystem(NewRender(rec))

	e := w.CreateEntity()
	addOrFatal(t, w, e, component.NewTransform(0, 0))
	sp := component.NewSprite(component.Hex("#ffffff"), 10, 10, component.Rectangle)
	sp.Visible = false
	addOrFatal(t, w, e, sp)

	w.Update(0.016)
	if len(rec.Ops) != 0 {
		t.Fatalf("invisible sprite drew %d ops", len(rec.Ops))
	}
}

func TestRenderPrimitiveGeometry(t *testing.T) {
	w := ecs.NewWorld()
	rec := &render.Recorder{}
	w.AddSystem(NewRender(rec))

	// rectangle draws from its top-left corner
	rect := w.CreateEntity()
	addOrFatal(t, w, rect, component.NewTransform(100, 100))
	rsp := component.NewSprite(component.Hex("#ffffff"), 40, 20, component.Rectangle)
	rsp.Z = 0
	addOrFatal(t, w, rect, rsp)

	// circle draws from its center with half-width radius
	circ := w.CreateEntity()
	addOrFatal(t, w, circ, component.NewTransform(50, 60))
	csp := component.NewSprite(component.Hex("#ffffff"), 30, 30, component.Circle)
	csp.Z = 1
	addOrFatal(t, w, circ, csp)

	w.Update(0.016)

	if len(rec.Ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(rec.Ops))
	}
	r := rec.Ops[0]
	if r.Pos != (vmath.Vec2{X: 80, Y: 90}) || r.Size != (vmath.Vec2{X: 40, Y: 20}) {
		t.Fatalf("rectangle op %+v", r)
	}
	c := rec.Ops[1]
	if c.Pos != (vmath.Vec2{X: 50, Y: 60}) || c.Radius != 15 {
		t.Fatalf("circle op %+v", c)
	}
}

func TestPipelineOrdering(t *testing.T) {
	w := ecs.NewWorld()
	rec := &render.Recorder{}
	w.AddSystem(NewRender(rec))
	w.AddSystem(NewHealth())
	w.AddSystem(NewBoundary(800, 600, Wrap))
	w.AddSystem(NewMovement())

	// moving entity near the edge: movement then wrap must both land
	// before the frame is drawn, regardless of registration order
	e := w.CreateEntity()
	addOrFatal(t, w, e, component.NewTransform(795, 300))
	addOrFatal(t, w, e, component.NewVelocity(20, 0))
	addOrFatal(t, w, e, component.NewSprite(component.Hex("#ffffff"), 10, 10, component.Circle))

	w.Update(1.0)

	if len(rec.Ops) != 1 {
		t.Fatalf("expected 1 draw call, got %d", len(rec.Ops))
	}
	if rec.Ops[0].Pos != (vmath.Vec2{X: 15, Y: 300}) {
		t.Fatalf("frame drew pre-wrap position %v", rec.Ops[0].Pos)
	}
}
