package dodgeball

import "github.com/vovakirdan/dodgeball/internal/config"

// SpawnObstacles creates the initial obstacle set. Each obstacle gets a
// speed in [MinSpeed, MaxSpeed], a column in [0, SpawnXRange) and a start
// height in [-SpawnYRange, 0) so they enter the world staggered.
func SpawnObstacles(cfg config.DodgeballConfig, src Source) []Entity {
	oc := cfg.Obstacles
	obstacles := make([]Entity, 0, oc.Count)
	for range oc.Count {
		speed := oc.MinSpeed + src.Intn(oc.MaxSpeed-oc.MinSpeed+1)
		x := src.Intn(cfg.World.SpawnXRange)
		y := src.Intn(oc.SpawnYRange) - oc.SpawnYRange
		obstacles = append(obstacles, NewObstacle(x, y, oc.Width, oc.Height, speed))
	}
	return obstacles
}
