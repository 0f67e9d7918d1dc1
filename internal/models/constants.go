package models

// ============================================================================
// VALIDATION LIMITS
// ============================================================================

// MaxNameLength is the longest category name accepted, in characters
const MaxNameLength = 100

// MaxTitleLength is the longest item title accepted, in characters
const MaxTitleLength = 255

// ============================================================================
// COLOR CONSTANTS
// ============================================================================

// DefaultColorTag is assigned to categories created without a color
const DefaultColorTag = "#1D9BF6"

// FlatColors is the palette used when random category colors are enabled
var FlatColors = []string{
	"#E74C3C", // alizarin
	"#E67E22", // carrot
	"#F1C40F", // sunflower
	"#2ECC71", // emerald
	"#1ABC9C", // turquoise
	"#3498DB", // peter river
	"#9B59B6", // amethyst
	"#34495E", // wet asphalt
	"#95A5A6", // concrete
	"#D35400", // pumpkin
	"#C0392B", // pomegranate
	"#16A085", // green sea
}
