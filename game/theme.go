package game

// Theme holds the visual styling constants in one place for easy tweaking.
var Theme = struct {
	SkyTop    string
	SkyBottom string
	GroundColor string

	PlayerColor string
	PlayerGlow  string

	HoopColor       string
	HoopPassedColor string
	HoopMissedColor string

	WallColor string
	FanColor  string
	LogColor  string

	ExplosionColor string

	HUDColor  string
	HUDFont   string
	PanelFont string
}{
	SkyTop:      "#0b1d3a",
	SkyBottom:   "#2a4d7a",
	GroundColor: "#1a2f1a",

	PlayerColor: "#e8c868",
	PlayerGlow:  "#ffe9a0",

	HoopColor:       "#ffd700",
	HoopPassedColor: "#40ff80",
	HoopMissedColor: "#ff4040",

	WallColor: "#8a6a4a",
	FanColor:  "#b0c4de",
	LogColor:  "#6b4a2a",

	ExplosionColor: "#ff9030",

	HUDColor:  "#ffffff",
	HUDFont:   "VT323, monospace",
	PanelFont: "VT323, monospace",
}
