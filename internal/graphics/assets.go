package graphics

// Texture names shared by the loader and the renderables
const (
	TexSun        = "Sun"
	TexStars      = "Stars"
	TexSaturnRing = "Saturn_Ring"
	TexPhobos     = "Phobos"
	TexRocket     = "Rocket"
	TexMetal      = "Metal"
	TexBlackHole  = "BlackHole"
	TexFont       = "Font"
)

// Asset maps a texture name to its file in the asset directory
type Asset struct {
	Name string
	File string
}

// SceneAssets lists every texture the scene loads at startup
var SceneAssets = []Asset{
	{TexSun, "2k_sun.jpg"},
	{"Mercury", "2k_mercury.jpg"},
	{"Venus", "2k_venus_surface.jpg"},
	{"Earth", "2k_earth_daymap.jpg"},
	{"Mars", "2k_mars.jpg"},
	{"Jupiter", "2k_jupiter.jpg"},
	{"Saturn", "2k_saturn.jpg"},
	{"Uranus", "2k_uranus.jpg"},
	{"Neptune", "2k_neptune.jpg"},
	{TexStars, "2k_stars_milky_way.jpg"},
	{TexSaturnRing, "2k_saturn_ring.png"},
	{"Moon", "2k_moon.jpg"},
	{TexPhobos, "phobos.jpg"},
	{"Deimos", "deimos.jpg"},
	{TexRocket, "rocket.png"},
	{TexMetal, "metal_texture.jpg"},
	{TexBlackHole, "black_hole.png"},
}

// LoadAll loads each asset into the set and returns how many fell back to the placeholder
func (ts *TextureSet) LoadAll(assets []Asset) int {
	before := len(ts.missing)
	for _, a := range assets {
		ts.Load(a.Name, a.File)
	}
	return len(ts.missing) - before
}
