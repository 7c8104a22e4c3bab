package robot

// Type is the kind of robot a player can spawn as or be detected as
type Type string

const (
	TypeDefault  Type = "default"
	TypeWorker   Type = "worker"
	TypeSecurity Type = "security"
	TypeCleaner  Type = "cleaner"
)

// IsValid checks if the robot type is known
func (t Type) IsValid() bool {
	switch t {
	case TypeDefault, TypeWorker, TypeSecurity, TypeCleaner:
		return true
	default:
		return false
	}
}

// OrDefault returns t, or TypeDefault when t is empty
func (t Type) OrDefault() Type {
	if t == "" {
		return TypeDefault
	}
	return t
}
