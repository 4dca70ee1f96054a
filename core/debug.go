package core

import "strings"

// Severity of a diagnostics message
type Severity int

// Diagnostics severities, least severe first
const (
	SeverityVerbose Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "verbose"
	}
}

// MessageType is a bitmask classifying a diagnostics message
type MessageType uint32

// Diagnostics message types
const (
	MessageGeneral MessageType = 1 << iota
	MessageValidation
	MessagePerformance
)

func (t MessageType) String() string {
	var names []string
	if t&MessageGeneral != 0 {
		names = append(names, "general")
	}
	if t&MessageValidation != 0 {
		names = append(names, "validation")
	}
	if t&MessagePerformance != 0 {
		names = append(names, "performance")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// DebugMessage is a message reported by the validation layer
type DebugMessage struct {
	Severity Severity
	Types    MessageType
	Layer    string
	Text     string
}

// DebugCallback receives diagnostics messages. It may be called
// from any thread the driver reports on.
type DebugCallback func(DebugMessage)

// ForwardTo returns a DebugCallback writing messages to log
// at the tier matching their severity.
func ForwardTo(log Logger) DebugCallback {
	return func(msg DebugMessage) {
		switch msg.Severity {
		case SeverityError:
			log.Errorf("[VALIDATION_LAYER] [%s] (%s): %s", msg.Layer, msg.Types, msg.Text)
		case SeverityWarning:
			log.Warnf("[VALIDATION_LAYER] [%s] (%s): %s", msg.Layer, msg.Types, msg.Text)
		default:
			log.Verbosef("[VALIDATION_LAYER] [%s] (%s): %s", msg.Layer, msg.Types, msg.Text)
		}
	}
}

// AttachDiagnostics registers the logging callback on instance. A failure is
// not fatal: it is logged and nil is returned.
func AttachDiagnostics(instance Instance, log Logger) DebugHook {
	hook, err := instance.AttachDebugCallback(ForwardTo(log))
	if err != nil {
		log.Warnf("Failed to create debug messenger: %v", err)
		return nil
	}
	log.Verbosef("Created debug messenger")
	return hook
}

// DetachDiagnostics detaches hook. A nil hook is a no-op.
func DetachDiagnostics(hook DebugHook) {
	if hook == nil {
		return
	}
	hook.Detach()
}
