package bodygraph

// Center is one of the nine energy centers.
type Center string

const (
	CenterHead        Center = "head"
	CenterAjna        Center = "ajna"
	CenterThroat      Center = "throat"
	CenterG           Center = "g"
	CenterHeart       Center = "heart"
	CenterSacral      Center = "sacral"
	CenterSpleen      Center = "spleen"
	CenterSolarPlexus Center = "solar_plexus"
	CenterRoot        Center = "root"
)

// Centers lists all nine centers in a stable order.
var Centers = [9]Center{
	CenterHead, CenterAjna, CenterThroat, CenterG, CenterHeart,
	CenterSacral, CenterSpleen, CenterSolarPlexus, CenterRoot,
}

// gateCenters assigns each of the 64 gates to exactly one center.
var gateCenters = map[int]Center{
	// Head
	61: CenterHead, 63: CenterHead, 64: CenterHead,
	// Ajna
	4: CenterAjna, 11: CenterAjna, 17: CenterAjna,
	24: CenterAjna, 43: CenterAjna, 47: CenterAjna,
	// Throat
	8: CenterThroat, 12: CenterThroat, 16: CenterThroat,
	20: CenterThroat, 23: CenterThroat, 31: CenterThroat,
	33: CenterThroat, 35: CenterThroat, 45: CenterThroat,
	56: CenterThroat, 62: CenterThroat,
	// G
	1: CenterG, 2: CenterG, 7: CenterG, 10: CenterG,
	13: CenterG, 15: CenterG, 25: CenterG, 46: CenterG,
	// Heart
	21: CenterHeart, 26: CenterHeart, 40: CenterHeart, 51: CenterHeart,
	// Sacral
	3: CenterSacral, 5: CenterSacral, 9: CenterSacral,
	14: CenterSacral, 27: CenterSacral, 29: CenterSacral,
	34: CenterSacral, 42: CenterSacral, 59: CenterSacral,
	// Spleen
	18: CenterSpleen, 28: CenterSpleen, 32: CenterSpleen,
	44: CenterSpleen, 48: CenterSpleen, 50: CenterSpleen,
	57: CenterSpleen,
	// Solar plexus
	6: CenterSolarPlexus, 22: CenterSolarPlexus, 30: CenterSolarPlexus,
	36: CenterSolarPlexus, 37: CenterSolarPlexus, 49: CenterSolarPlexus,
	55: CenterSolarPlexus,
	// Root
	19: CenterRoot, 38: CenterRoot, 39: CenterRoot,
	41: CenterRoot, 52: CenterRoot, 53: CenterRoot,
	54: CenterRoot, 58: CenterRoot, 60: CenterRoot,
}

// Channel is a fixed pairing of two gates. A channel completes when both of
// its gates are activated, defining the center(s) it touches.
type Channel struct {
	A    int
	B    int
	Name string
}

// channels is the canonical 36-channel table.
var channels = [36]Channel{
	{1, 8, "Inspiration"},
	{2, 14, "The Beat"},
	{3, 60, "Mutation"},
	{4, 63, "Logic"},
	{5, 15, "Rhythm"},
	{6, 59, "Intimacy"},
	{7, 31, "The Alpha"},
	{9, 52, "Concentration"},
	{10, 20, "Awakening"},
	{10, 34, "Exploration"},
	{10, 57, "Perfected Form"},
	{11, 56, "Curiosity"},
	{12, 22, "Openness"},
	{13, 33, "The Prodigal"},
	{16, 48, "The Wavelength"},
	{17, 62, "Acceptance"},
	{18, 58, "Judgment"},
	{19, 49, "Synthesis"},
	{20, 34, "Charisma"},
	{20, 57, "The Brainwave"},
	{21, 45, "Money"},
	{23, 43, "Structuring"},
	{24, 61, "Awareness"},
	{25, 51, "Initiation"},
	{26, 44, "Surrender"},
	{27, 50, "Preservation"},
	{28, 38, "Struggle"},
	{29, 46, "Discovery"},
	{30, 41, "Recognition"},
	{32, 54, "Transformation"},
	{34, 57, "Power"},
	{35, 36, "Transitoriness"},
	{37, 40, "Community"},
	{39, 55, "Emoting"},
	{42, 53, "Maturation"},
	{47, 64, "Abstraction"},
}

// CenterOf returns the center owning a gate, or "" for an invalid gate.
func CenterOf(gate int) Center {
	return gateCenters[gate]
}

// Channels returns a copy of the canonical channel table.
func Channels() []Channel {
	out := make([]Channel, len(channels))
	copy(out, channels[:])
	return out
}
