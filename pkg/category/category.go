package category

import (
	"errors"
	"fmt"
	"sort"

	"github.com/menta2k/a2d2-coco/pkg/types"
)

// Supported annotation styles (target label spaces)
const (
	StyleA2D2       = "a2d2"
	StyleCityscapes = "cityscapes"
)

// Ignore marks A2D2 classes explicitly excluded from a target label space.
// Distinct from an absent token, which is a hard lookup failure.
const Ignore = -1

var (
	// ErrUnknownStyle is returned when the requested target label space is
	// neither "a2d2" nor "cityscapes".
	ErrUnknownStyle = errors.New("unknown annotation style")

	// ErrUnknownCategory is returned when a class token is not present in
	// the mapping table of a known style.
	ErrUnknownCategory = errors.New("unknown category token")
)

// a2d2IDs maps A2D2 class tokens to the native category ids.
var a2d2IDs = map[string]int{
	"Pedestrian":         0,
	"Cyclist":            1,
	"MotorBiker":         2,
	"Car":                3,
	"VanSUV":             4,
	"Truck":              5,
	"Bus":                6,
	"UtilityVehicle":     7,
	"Trailer":            8,
	"CaravanTransporter": 9,
	"EmergencyVehicle":   10,
	"Motorcycle":         11,
	"Bicycle":            12,
	"Animal":             13,
}

// cityscapesIDs maps A2D2 class tokens onto Cityscapes category ids.
var cityscapesIDs = map[string]int{
	"Pedestrian": 24,
	"Cyclist":    25,
	"MotorBiker": 25,
	"Car":        26,
	"VanSUV":     26,
	"Truck":      27,
	"Bus":        28,
	"Motorcycle": 32,
	"Bicycle":    33,
	// Excluded from the Cityscapes label space
	"UtilityVehicle":     Ignore,
	"Trailer":            Ignore,
	"CaravanTransporter": Ignore,
	"EmergencyVehicle":   Ignore,
	"Animal":             Ignore,
}

// cityscapesCategories is the fixed Cityscapes category table.
var cityscapesCategories = []types.CategoryEntry{
	{ID: 24, Name: "person"},
	{ID: 25, Name: "rider"},
	{ID: 26, Name: "car"},
	{ID: 27, Name: "truck"},
	{ID: 28, Name: "bus"},
	{ID: 31, Name: "train"},
	{ID: 32, Name: "motorcycle"},
	{ID: 33, Name: "bicycle"},
}

// Map returns the category id corresponding to an A2D2 class token in the
// requested target style. Tokens excluded from the target space return the
// Ignore sentinel; tokens missing from the table return ErrUnknownCategory.
func Map(token, style string) (int, error) {
	var table map[string]int
	switch style {
	case StyleA2D2:
		table = a2d2IDs
	case StyleCityscapes:
		table = cityscapesIDs
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}

	id, ok := table[token]
	if !ok {
		return 0, fmt.Errorf("%w: %q (style %s)", ErrUnknownCategory, token, style)
	}
	return id, nil
}

// Categories returns the fixed category table for a target style. The a2d2
// table is derived from the native mapping; the cityscapes table is the
// benchmark's own fixed list and also carries ids no A2D2 class maps to.
func Categories(style string) ([]types.CategoryEntry, error) {
	switch style {
	case StyleA2D2:
		entries := make([]types.CategoryEntry, 0, len(a2d2IDs))
		for name, id := range a2d2IDs {
			entries = append(entries, types.CategoryEntry{ID: id, Name: name})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
		return entries, nil
	case StyleCityscapes:
		return append([]types.CategoryEntry(nil), cityscapesCategories...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
}
