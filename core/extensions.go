package core

// Names requested when validation is enabled
const (
	DiagnosticsExtension = "VK_EXT_debug_report"
	ValidationLayer      = "VK_LAYER_KHRONOS_validation"
)

// NegotiateExtensions returns the instance extensions to request: the
// windowing requirements plus the diagnostics extension when validation
// is enabled. Duplicates are dropped, first occurrence wins.
func NegotiateExtensions(required []string, validation bool) []string {
	extensions := make([]string, 0, len(required)+1)
	seen := make(map[string]struct{}, len(required)+1)
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		extensions = append(extensions, name)
	}

	for _, name := range required {
		add(name)
	}
	if validation {
		add(DiagnosticsExtension)
	}
	return extensions
}

// NegotiateLayers returns the instance layers to request.
func NegotiateLayers(validation bool) []string {
	if !validation {
		return []string{}
	}
	return []string{ValidationLayer}
}
