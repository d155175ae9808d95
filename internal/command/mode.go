package command

// Mode is the top-level UI state. It decides which commands the Handler will
// produce.
type Mode int

const (
	ModeNormal Mode = iota
	ModeHelp
	ModeGallery
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeHelp:
		return "Help"
	case ModeGallery:
		return "Gallery"
	default:
		return "Unknown"
	}
}
