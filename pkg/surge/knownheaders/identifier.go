package knownheaders

import "strings"

// identifierOverrides are wire names whose identifier cannot be derived
// from the general rule. The W3C trace-context headers are registered with
// lowercase wire spellings, so dash stripping alone would leave them
// lowercase and unusable as accessor names.
var identifierOverrides = map[string]string{
	"baggage":     "Baggage",
	"traceparent": "TraceParent",
	"tracestate":  "TraceState",
}

// Identifier derives the stable accessor name for a wire name:
// override list first, then dash stripping, then pseudo-header colon
// handling (drop the colon, upper-case the next character). All other
// casing is preserved as written in the registry.
func Identifier(name string) string {
	if id, ok := identifierOverrides[name]; ok {
		return id
	}
	id := strings.ReplaceAll(name, "-", "")
	if strings.HasPrefix(id, ":") {
		id = strings.ToUpper(id[1:2]) + id[2:]
	}
	return id
}
