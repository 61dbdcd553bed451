package main

import (
	"fmt"

	"github.com/akmonengine/plume"
	"github.com/akmonengine/plume/overlap"
	"github.com/akmonengine/plume/resolve"
	"github.com/akmonengine/plume/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// SetupArena construit une arène close de 400x300 avec trois balles
func SetupArena() ([]*shape.Circle, []shape.Shape, map[shape.Shape]string) {
	balls := []*shape.Circle{
		shape.NewCircle(60, 80, 24),
		shape.NewCircle(200, 120, 24),
		shape.NewCircle(300, 200, 32),
	}
	balls[0].Velocity = mgl64.Vec2{4, 3}
	balls[1].Velocity = mgl64.Vec2{-3, 2}
	balls[2].Velocity = mgl64.Vec2{-2, -4}
	balls[2].Mass = 2 // la grosse balle encaisse mieux les chocs

	walls := []shape.Shape{
		shape.NewRectangle(0, -20, 400, 20), // plafond
		shape.NewRectangle(0, 300, 400, 20), // sol
		shape.NewRectangle(-20, 0, 20, 300), // mur gauche
		shape.NewRectangle(400, 0, 20, 300), // mur droit
	}

	names := map[shape.Shape]string{
		balls[0]: "ball-1",
		balls[1]: "ball-2",
		balls[2]: "ball-3 (heavy)",
		walls[0]: "ceiling",
		walls[1]: "floor",
		walls[2]: "left wall",
		walls[3]: "right wall",
	}

	return balls, walls, names
}

func countOverlaps(circles []*shape.Circle) int {
	overlapping := 0
	for i := range circles {
		for j := i + 1; j < len(circles); j++ {
			if overlap.Circles(circles[i], circles[j], shape.FrameLocal) {
				overlapping++
			}
		}
	}
	return overlapping
}

// TestBilliardBreak sépare un tas de balles qui se recouvrent déjà
func TestBilliardBreak() {
	fmt.Println("🧪 Démo: séparation d'un tas de balles")
	fmt.Println("======================================")

	cluster := []*shape.Circle{
		shape.NewCircle(0, 0, 20),
		shape.NewCircle(12, 2, 20),
		shape.NewCircle(4, 14, 20),
		shape.NewCircle(16, 12, 20),
	}
	cluster[0].Velocity = mgl64.Vec2{8, 6}

	fmt.Printf("Avant: %d paires en recouvrement\n", countOverlaps(cluster))

	// Une passe peut repousser une balle dans une voisine déjà traitée,
	// on itère jusqu'à séparation complète
	for pass := 1; pass <= 8; pass++ {
		resolve.CircleGroup(cluster, shape.FrameLocal)
		if countOverlaps(cluster) == 0 {
			fmt.Printf("Plus de recouvrement après %d passe(s)\n", pass)
			break
		}
	}

	for i, ball := range cluster {
		fmt.Printf("  balle %d: position %v, vitesse %v\n", i+1, ball.Position, ball.Velocity)
	}
	fmt.Println()
}

// TestBouncingBalls fait rebondir les balles dans l'arène pendant 240 frames
func TestBouncingBalls() {
	fmt.Println("🧪 Démo: balles rebondissantes dans une arène close")
	fmt.Println("===================================================")

	balls, walls, names := SetupArena()

	events := plume.NewEvents()
	events.Subscribe(plume.COLLISION_ENTER, func(event plume.Event) {
		e := event.(plume.CollisionEnterEvent)
		fmt.Printf("  💥 contact: %s <-> %s\n", names[e.A], names[e.B])
	})
	events.Subscribe(plume.COLLISION_EXIT, func(event plume.Event) {
		e := event.(plume.CollisionExitEvent)
		fmt.Printf("  👋 séparation: %s <-> %s\n", names[e.A], names[e.B])
	})

	// Sonde fixe au centre de l'arène
	probe := shape.NewPoint(200, 150)

	const maxFrames = 240

	for frame := 0; frame < maxFrames; frame++ {
		if frame%60 == 0 {
			fmt.Printf("--- FRAME %d ---\n", frame)
			for _, ball := range balls {
				fmt.Printf("  %s: position %v, vitesse %v\n", names[ball], ball.Position, ball.Velocity)
			}
		}

		for _, ball := range balls {
			ball.Position = ball.Position.Add(ball.Velocity)
		}

		// Balle contre balle: échange de quantité de mouvement
		for i := range balls {
			for j := i + 1; j < len(balls); j++ {
				if _, err := events.Check(balls[i], balls[j], plume.Options{React: true}); err != nil {
					fmt.Printf("  ⚠️  %v\n", err)
				}
			}
		}

		// Balle contre les murs: séparation et rebond
		for _, ball := range balls {
			_, err := plume.Collide(ball, walls, plume.Options{React: true, Bounce: true}, func(c plume.Collision) {
				events.Record(ball, c.Member)
			})
			if err != nil {
				fmt.Printf("  ⚠️  %v\n", err)
			}
		}

		// La sonde signale les passages au centre
		for _, ball := range balls {
			if c, _ := plume.Collide(probe, ball, plume.Options{}, nil); c.Hit {
				fmt.Printf("  🎯 frame %d: %s passe sur la sonde\n", frame, names[ball])
			}
		}

		events.Flush()
	}

	fmt.Println()
	fmt.Println("Simulation terminée!")
}

func main() {
	TestBilliardBreak()
	TestBouncingBalls()
}
