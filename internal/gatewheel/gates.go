package gatewheel

// wheelOrder is the canonical zodiacal ordering of the 64 gates, beginning
// with gate 1 at 15 degrees Aries and proceeding counterclockwise through
// the wheel. Each gate spans 5.625 degrees; the final gates wrap across the
// 0/360 seam back to 15 degrees.
var wheelOrder = [64]int{
	1, 43, 14, 34, 9, 5, 26, 11,
	10, 58, 38, 54, 61, 60, 41, 19,
	13, 49, 30, 55, 37, 63, 22, 36,
	25, 17, 21, 51, 42, 3, 27, 24,
	2, 23, 8, 20, 16, 35, 45, 12,
	15, 52, 39, 53, 62, 56, 31, 33,
	7, 4, 29, 59, 40, 64, 47, 6,
	46, 18, 48, 57, 32, 50, 28, 44,
}

// gateNames maps gate number to its traditional hexagram name.
var gateNames = map[int]string{
	1:  "The Creative",
	2:  "The Receptive",
	3:  "Difficulty at the Beginning",
	4:  "Youthful Folly",
	5:  "Waiting",
	6:  "Conflict",
	7:  "The Army",
	8:  "Holding Together",
	9:  "The Taming Power of the Small",
	10: "Treading",
	11: "Peace",
	12: "Standstill",
	13: "Fellowship",
	14: "Possession in Great Measure",
	15: "Modesty",
	16: "Enthusiasm",
	17: "Following",
	18: "Work on What Has Been Spoiled",
	19: "Approach",
	20: "Contemplation",
	21: "Biting Through",
	22: "Grace",
	23: "Splitting Apart",
	24: "Return",
	25: "Innocence",
	26: "The Taming Power of the Great",
	27: "Nourishment",
	28: "Preponderance of the Great",
	29: "The Abysmal",
	30: "The Clinging Fire",
	31: "Influence",
	32: "Duration",
	33: "Retreat",
	34: "The Power of the Great",
	35: "Progress",
	36: "Darkening of the Light",
	37: "The Family",
	38: "Opposition",
	39: "Obstruction",
	40: "Deliverance",
	41: "Decrease",
	42: "Increase",
	43: "Breakthrough",
	44: "Coming to Meet",
	45: "Gathering Together",
	46: "Pushing Upward",
	47: "Oppression",
	48: "The Well",
	49: "Revolution",
	50: "The Cauldron",
	51: "The Arousing",
	52: "Keeping Still",
	53: "Development",
	54: "The Marrying Maiden",
	55: "Abundance",
	56: "The Wanderer",
	57: "The Gentle",
	58: "The Joyous",
	59: "Dispersion",
	60: "Limitation",
	61: "Inner Truth",
	62: "Preponderance of the Small",
	63: "After Completion",
	64: "Before Completion",
}

// zodiacSigns in ecliptic order, 30 degrees each from 0 Aries.
var zodiacSigns = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}
