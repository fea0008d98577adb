package controller

// These keys are bound on the reminder list.
const (
	KeyNew          = 'n'
	KeyEdit         = 'e'
	KeyComplete     = 'c'
	KeyDelete       = 'x'
	KeyMoveUp       = 'K'
	KeyMoveDown     = 'J'
	KeySortDate     = 'd'
	KeySortPriority = 'p'
	KeyQuit         = 'q'
)
