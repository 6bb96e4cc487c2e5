package shared

// Side identifies which team a combatant fights for
type Side string

const (
	SidePlayer Side = "player"
	SideEnemy  Side = "enemy"
)

// Opposite returns the opposing side
func (s Side) Opposite() Side {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}
