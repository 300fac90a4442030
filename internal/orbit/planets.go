package orbit

// DefaultPlanets returns the solar system shown by the scene.
// Distances and sizes are in scene units, not astronomical ones.
func DefaultPlanets() []Body {
	return []Body{
		{Name: "Mercury", Texture: "Mercury", Distance: 115, Size: 8.0, Speed: 1.0, Tilt: 2},
		{Name: "Venus", Texture: "Venus", Distance: 150, Size: 15.0, Speed: 0.6, Tilt: 177},
		{Name: "Earth", Texture: "Earth", Distance: 200, Size: 17.0, Speed: 0.5, Tilt: 23.5, Moons: []Body{
			{Name: "Moon", Texture: "Moon", Distance: 24, Size: 4.5, Speed: 4.0},
		}},
		{Name: "Mars", Texture: "Mars", Distance: 260, Size: 14.0, Speed: 0.4, Tilt: 25, Moons: []Body{
			{Name: "Phobos", Texture: "Phobos", Distance: 20, Size: 4.0, Speed: 8.0},
			{Name: "Deimos", Texture: "Deimos", Distance: 20, Size: 3.0, Speed: 4.0},
		}},
		{Name: "Jupiter", Texture: "Jupiter", Distance: 360, Size: 40.0, Speed: 0.3, Tilt: 3},
		{Name: "Saturn", Texture: "Saturn", Distance: 490, Size: 35.0, Speed: 0.25, Tilt: 27, Ringed: true},
		{Name: "Uranus", Texture: "Uranus", Distance: 580, Size: 20.0, Speed: 0.15, Tilt: 98},
		{Name: "Neptune", Texture: "Neptune", Distance: 640, Size: 19.0, Speed: 0.1, Tilt: 28},
	}
}
