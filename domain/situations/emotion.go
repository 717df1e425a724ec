package situations

import "fmt"

// EmotionalState tags a life situation with the feeling it speaks to.
// The set is fixed at compile time; Label, Color and Icon carry the
// presentation attributes clients render for each state.
type EmotionalState string

const (
	EmotionAnxious  EmotionalState = "anxious"
	EmotionPeaceful EmotionalState = "peaceful"
	EmotionJoyful   EmotionalState = "joyful"
	EmotionGrieving EmotionalState = "grieving"
	EmotionAngry    EmotionalState = "angry"
	EmotionHopeful  EmotionalState = "hopeful"
	EmotionFearful  EmotionalState = "fearful"
	EmotionGrateful EmotionalState = "grateful"
)

// AllEmotions lists every supported emotional state in display order.
func AllEmotions() []EmotionalState {
	return []EmotionalState{
		EmotionAnxious,
		EmotionPeaceful,
		EmotionJoyful,
		EmotionGrieving,
		EmotionAngry,
		EmotionHopeful,
		EmotionFearful,
		EmotionGrateful,
	}
}

var emotionLabels = map[EmotionalState]string{
	EmotionAnxious:  "Anxious",
	EmotionPeaceful: "Peaceful",
	EmotionJoyful:   "Joyful",
	EmotionGrieving: "Grieving",
	EmotionAngry:    "Angry",
	EmotionHopeful:  "Hopeful",
	EmotionFearful:  "Fearful",
	EmotionGrateful: "Grateful",
}

var emotionColors = map[EmotionalState]string{
	EmotionAnxious:  "#E0A458",
	EmotionPeaceful: "#7FB9B2",
	EmotionJoyful:   "#F4D35E",
	EmotionGrieving: "#5C6B73",
	EmotionAngry:    "#C1553D",
	EmotionHopeful:  "#88B04B",
	EmotionFearful:  "#8E6C88",
	EmotionGrateful: "#D98E73",
}

var emotionIcons = map[EmotionalState]string{
	EmotionAnxious:  "wind",
	EmotionPeaceful: "leaf",
	EmotionJoyful:   "sun.max",
	EmotionGrieving: "cloud.rain",
	EmotionAngry:    "flame",
	EmotionHopeful:  "sunrise",
	EmotionFearful:  "moon.stars",
	EmotionGrateful: "hands.sparkles",
}

// Label returns the human-readable name for the state.
func (e EmotionalState) Label() string {
	return emotionLabels[e]
}

// Color returns the hex color clients use when rendering the state.
func (e EmotionalState) Color() string {
	return emotionColors[e]
}

// Icon returns the symbolic icon name associated with the state.
func (e EmotionalState) Icon() string {
	return emotionIcons[e]
}

// Valid reports whether e is one of the supported states.
func (e EmotionalState) Valid() bool {
	_, ok := emotionLabels[e]
	return ok
}

// ParseEmotionalState converts a raw string into an EmotionalState,
// rejecting values outside the supported set.
func ParseEmotionalState(s string) (EmotionalState, error) {
	e := EmotionalState(s)
	if !e.Valid() {
		return "", fmt.Errorf("unknown emotional state: %q", s)
	}
	return e, nil
}
