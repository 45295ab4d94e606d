package autocomplete

// OpenControl is the host's say over menu visibility.
type OpenControl int

const (
	OpenAuto  OpenControl = iota // the widget decides
	OpenShown                    // the host keeps the menu shown
	OpenHidden                   // the host keeps the menu hidden
)

// String returns the configuration spelling of the control.
func (o OpenControl) String() string {
	switch o {
	case OpenShown:
		return "open"
	case OpenHidden:
		return "closed"
	default:
		return "auto"
	}
}

// ParseOpenControl maps "auto", "open" and "closed" to an OpenControl.
func ParseOpenControl(s string) (OpenControl, bool) {
	switch s {
	case "", "auto":
		return OpenAuto, true
	case "open", "true":
		return OpenShown, true
	case "closed", "false":
		return OpenHidden, true
	}
	return OpenAuto, false
}

// Visibility is the menu visibility resolved for one render: either the
// widget's own flag or the host's.
type Visibility struct {
	managed bool
	open    bool
}

// SelfManaged is visibility driven by the widget's internal flag.
func SelfManaged(open bool) Visibility { return Visibility{open: open} }

// ExternallyManaged is visibility mirrored from the host.
func ExternallyManaged(open bool) Visibility { return Visibility{managed: true, open: open} }

// Open reports whether the menu is shown.
func (v Visibility) Open() bool { return v.open }

// External reports whether the host owns the flag.
func (v Visibility) External() bool { return v.managed }

func resolveVisibility(ctrl OpenControl, internal bool) Visibility {
	switch ctrl {
	case OpenShown:
		return ExternallyManaged(true)
	case OpenHidden:
		return ExternallyManaged(false)
	default:
		return SelfManaged(internal)
	}
}
