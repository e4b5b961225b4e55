package models

// AppMode is the backend the application currently talks to.
type AppMode int

const (
	// AppModeUnset means the mode has not been determined yet.
	AppModeUnset AppMode = iota
	// AppModeNoAPI keeps everything local.
	AppModeNoAPI
	// AppModePinboard mirrors a Pinboard-compatible remote.
	AppModePinboard
	// AppModeLinkding mirrors a Linkding-compatible remote.
	AppModeLinkding
)

// String returns the lowercase mode name used in logs.
func (m AppMode) String() string {
	switch m {
	case AppModeNoAPI:
		return "no_api"
	case AppModePinboard:
		return "pinboard"
	case AppModeLinkding:
		return "linkding"
	default:
		return "unset"
	}
}
