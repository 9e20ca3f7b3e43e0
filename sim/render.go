package sim

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/phys/config"
	"github.com/pthm-cable/phys/quantity"
)

// handleInput processes keyboard input.
func (s *Sim) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		s.paused = !s.paused
	}

	// Speed control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && s.speed > 1 {
		s.speed--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && s.speed < 10 {
		s.speed++
	}
}

// Draw renders the simulation.
func (s *Sim) Draw() {
	cfg := config.Cfg()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	s.drawCraft(cfg)
	s.drawHUD(cfg)

	rl.EndDrawing()
}

// drawCraft renders every craft as an oriented triangle. World positions
// are in meters with +y pointing north; the pixel-scale relation maps them
// to screen space, and the y axis flips because raylib's origin is the
// top-left corner.
func (s *Sim) drawCraft(cfg *config.Config) {
	screenH := float32(cfg.Screen.Height)
	scale := cfg.Derived.PixelScale

	query := s.craftFilter.Query()
	for query.Next() {
		tr, _, att, body, tank, _ := query.Get()

		px := quantity.ScaleRel.DivVec(tr.At, scale)
		sx := float32(px.X.Value)
		sy := screenH - float32(px.Y.Value)

		radius := float32(quantity.ScaleRel.Div(body.Radius, scale).Value)

		// Dim as the tank drains; dry craft go gray.
		color := rl.SkyBlue
		if tank.Fuel.IsZero() {
			color = rl.Gray
		} else {
			frac := tank.Fuel.Ratio(cfg.Derived.FuelMass)
			color.A = uint8(100 + frac*155)
		}

		drawOrientedTriangle(sx, sy, att.Heading, radius, color)
	}
}

// drawOrientedTriangle draws a triangle pointing along the heading
// (clockwise from north).
func drawOrientedTriangle(x, y float32, heading quantity.Angle, radius float32, color rl.Color) {
	tip := func(a quantity.Angle, r float32) rl.Vector2 {
		// World direction for heading a is (sin a, cos a); the y term
		// flips for screen space.
		return rl.Vector2{
			X: x + float32(a.Sin())*r,
			Y: y - float32(a.Cos())*r,
		}
	}

	v1 := tip(heading, radius*1.5)
	v2 := tip(heading.Add(quantity.Degrees(144)), radius)
	v3 := tip(heading.Sub(quantity.Degrees(144)), radius)

	// DrawTriangle requires counter-clockwise winding
	rl.DrawTriangle(v1, v2, v3, color)
	rl.DrawTriangleLines(v1, v2, v3, rl.White)
}

// drawHUD renders the stats overlay and the speed slider.
func (s *Sim) drawHUD(cfg *config.Config) {
	snap := s.snapshot()
	elapsed := s.dt.Scale(float64(s.tick))

	rl.DrawText(fmt.Sprintf("Tick: %d  (%.1f)", s.tick, elapsed), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Craft: %d  Dry: %d", snap.CraftCount, snap.DryCount), 10, 35, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Fuel: %.0f  (%.2e)", snap.TotalFuel, snap.FuelEnergy), 10, 60, 20, rl.White)

	newSpeed := gui.SliderBar(
		rl.Rectangle{X: 10, Y: 90, Width: 160, Height: 20},
		"1x", "10x",
		float32(s.speed), 1, 10,
	)
	s.speed = int(newSpeed)

	if s.paused {
		rl.DrawText("PAUSED", 10, 120, 20, rl.Yellow)
	}
}
