package core

// Color is a hex color string ("#rrggbb") for a screen cell.
// The empty string means the terminal default.
type Color string

// Palette used by the game scene.
const (
	ColorDefault    Color = ""
	ColorBackground Color = "#041C31"
	ColorEmptyCell  Color = "#EFF2F5"
	ColorCellStroke Color = "#D1D5DA"
	ColorPlayer     Color = "#58A6FF"
	ColorTurret     Color = "#79C0FF"
	ColorBullet     Color = "#F85149"
	ColorParticle   Color = "#40C463"
	ColorParticleHi Color = "#2E7D32"
	ColorText       Color = "#C9D1D9"
)
