package category

import (
	"errors"
	"testing"
)

func TestMapA2D2(t *testing.T) {
	tests := []struct {
		token    string
		expected int
	}{
		{"Pedestrian", 0},
		{"Cyclist", 1},
		{"MotorBiker", 2},
		{"Car", 3},
		{"VanSUV", 4},
		{"Truck", 5},
		{"Bus", 6},
		{"UtilityVehicle", 7},
		{"Trailer", 8},
		{"CaravanTransporter", 9},
		{"EmergencyVehicle", 10},
		{"Motorcycle", 11},
		{"Bicycle", 12},
		{"Animal", 13},
	}

	for _, test := range tests {
		id, err := Map(test.token, StyleA2D2)
		if err != nil {
			t.Fatalf("Map(%s, a2d2) failed: %v", test.token, err)
		}
		if id != test.expected {
			t.Errorf("Map(%s, a2d2) = %d, expected %d", test.token, id, test.expected)
		}
	}
}

func TestMapCityscapes(t *testing.T) {
	tests := []struct {
		token    string
		expected int
	}{
		{"Pedestrian", 24},
		{"Cyclist", 25},
		{"MotorBiker", 25},
		{"Car", 26},
		{"VanSUV", 26},
		{"Truck", 27},
		{"Bus", 28},
		{"Motorcycle", 32},
		{"Bicycle", 33},
	}

	for _, test := range tests {
		id, err := Map(test.token, StyleCityscapes)
		if err != nil {
			t.Fatalf("Map(%s, cityscapes) failed: %v", test.token, err)
		}
		if id != test.expected {
			t.Errorf("Map(%s, cityscapes) = %d, expected %d", test.token, id, test.expected)
		}
	}
}

func TestMapCityscapesIgnored(t *testing.T) {
	ignored := []string{
		"UtilityVehicle",
		"Trailer",
		"CaravanTransporter",
		"EmergencyVehicle",
		"Animal",
	}

	for _, token := range ignored {
		id, err := Map(token, StyleCityscapes)
		if err != nil {
			t.Fatalf("Map(%s, cityscapes) failed: %v", token, err)
		}
		if id != Ignore {
			t.Errorf("Map(%s, cityscapes) = %d, expected Ignore", token, id)
		}
	}
}

func TestMapUnknownStyle(t *testing.T) {
	_, err := Map("Car", "foo")
	if err == nil {
		t.Fatal("Expected error for unknown style")
	}
	if !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("Expected ErrUnknownStyle, got %v", err)
	}
}

func TestMapUnknownToken(t *testing.T) {
	for _, style := range []string{StyleA2D2, StyleCityscapes} {
		_, err := Map("FlyingSaucer", style)
		if err == nil {
			t.Fatalf("Expected error for unknown token in style %s", style)
		}
		if !errors.Is(err, ErrUnknownCategory) {
			t.Errorf("Expected ErrUnknownCategory for style %s, got %v", style, err)
		}
	}
}

func TestCategoriesA2D2(t *testing.T) {
	entries, err := Categories(StyleA2D2)
	if err != nil {
		t.Fatalf("Categories(a2d2) failed: %v", err)
	}

	if len(entries) != 14 {
		t.Fatalf("Expected 14 a2d2 categories, got %d", len(entries))
	}

	// Ids must be dense and sorted
	for i, entry := range entries {
		if entry.ID != i {
			t.Errorf("Entry %d has id %d, expected %d", i, entry.ID, i)
		}
		if entry.Name == "" {
			t.Errorf("Entry %d has empty name", i)
		}
	}
}

func TestCategoriesCityscapes(t *testing.T) {
	entries, err := Categories(StyleCityscapes)
	if err != nil {
		t.Fatalf("Categories(cityscapes) failed: %v", err)
	}

	expected := map[int]string{
		24: "person",
		25: "rider",
		26: "car",
		27: "truck",
		28: "bus",
		31: "train",
		32: "motorcycle",
		33: "bicycle",
	}

	if len(entries) != len(expected) {
		t.Fatalf("Expected %d cityscapes categories, got %d", len(expected), len(entries))
	}

	for _, entry := range entries {
		name, ok := expected[entry.ID]
		if !ok {
			t.Errorf("Unexpected category id %d", entry.ID)
			continue
		}
		if entry.Name != name {
			t.Errorf("Category %d named %s, expected %s", entry.ID, entry.Name, name)
		}
	}
}

func TestCategoriesUnknownStyle(t *testing.T) {
	_, err := Categories("foo")
	if err == nil {
		t.Fatal("Expected error for unknown style")
	}
	if !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("Expected ErrUnknownStyle, got %v", err)
	}
}
