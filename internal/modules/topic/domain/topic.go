package domain

import "time"

// Palette and Icons drive round-robin assignment for new topics:
// index = current topic count mod size.
var Palette = []string{
	"#007AFF", // blue
	"#30D158", // green
	"#FF9F0A", // orange
	"#FF453A", // red
	"#BF5AF2", // purple
	"#5E5CE6", // indigo
	"#64D2FF", // teal
	"#FFD60A", // yellow
}

var Icons = []string{
	"briefcase",
	"code",
	"book",
	"dumbbell",
	"zap",
	"coffee",
	"pen-tool",
	"music",
	"globe",
	"camera",
	"gamepad-2",
	"heart",
}

const DefaultIcon = "zap"

type Topic struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Color        string    `json:"color"`
	Icon         string    `json:"icon"`
	TotalMinutes float64   `json:"total_minutes"`
	CreatedAt    time.Time `json:"created_at"`
}

// AddMinutes adjusts the running aggregate. Negative deltas clamp at
// zero; the counter never goes below it.
func (t *Topic) AddMinutes(delta float64) {
	t.TotalMinutes += delta
	if t.TotalMinutes < 0 {
		t.TotalMinutes = 0
	}
}

func ColorAt(index int) string {
	return Palette[((index%len(Palette))+len(Palette))%len(Palette)]
}

func IconAt(index int) string {
	return Icons[((index%len(Icons))+len(Icons))%len(Icons)]
}

func ValidIcon(name string) bool {
	for _, icon := range Icons {
		if icon == name {
			return true
		}
	}
	return false
}
