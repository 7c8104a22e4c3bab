package scene

import "fmt"

// Unresolved marks a scene index that has not been looked up yet
const Unresolved = -1

// Indices locates the menu and the playable level range in the build list
type Indices struct {
	MainMenu   int `json:"main_menu" yaml:"main_menu"`
	FirstLevel int `json:"first_level" yaml:"first_level"`
	LastLevel  int `json:"last_level" yaml:"last_level"`
}

// UnresolvedIndices returns indices that have not been looked up yet
func UnresolvedIndices() Indices {
	return Indices{
		MainMenu:   Unresolved,
		FirstLevel: Unresolved,
		LastLevel:  Unresolved,
	}
}

// Resolved reports whether every index has been looked up
func (i Indices) Resolved() bool {
	return i.MainMenu != Unresolved && i.FirstLevel != Unresolved && i.LastLevel != Unresolved
}

// IsLevel reports whether index lies in the playable level range
func (i Indices) IsLevel(index int) bool {
	return i.Resolved() && index >= i.FirstLevel && index <= i.LastLevel
}

func (i Indices) String() string {
	return fmt.Sprintf("(menu=%d, first=%d, last=%d)", i.MainMenu, i.FirstLevel, i.LastLevel)
}
