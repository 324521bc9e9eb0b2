package errors

// Template defines a registered fault type.
type Template struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// Codes used by the runtime. Kept as constants so call sites stay greppable.
const (
	CodeUnknownKind      = "R001"
	CodeMissingLiveNode  = "R002"
	CodeProviderChildren = "R003"
	CodeConsumerChildren = "R004"
	CodeInvalidState     = "R005"
	CodeInvalidHandler   = "R006"
	CodeNilSurface       = "R007"
	CodeHookOrder        = "R008"

	CodeConfigRead    = "C001"
	CodeConfigParse   = "C002"
	CodeConfigInvalid = "C003"

	CodeSnapshotWrite    = "S001"
	CodeSnapshotRead     = "S002"
	CodeSnapshotNotFound = "S003"
)

// registry maps codes to their templates.
var registry = map[string]Template{
	// ============================================
	// Reconciliation faults (R001-R099)
	// ============================================

	CodeUnknownKind: {
		Category:   CategoryReconcile,
		Message:    "Unknown element kind",
		Detail:     "The element's Type is neither a tag string nor one of the component descriptors created by vrec.Func, vrec.Class, vrec.Memo, vrec.ForwardRef or a context's Provider/Consumer.",
		Suggestion: "Build elements with vdom.CreateElement and a descriptor from the vrec package.",
	},
	CodeMissingLiveNode: {
		Category: CategoryReconcile,
		Message:  "Rendered node has no live surface node",
		Detail:   "The reconciler followed a component's rendered output chain and did not reach a surface node. The component was probably never mounted or has already been unmounted.",
	},
	CodeProviderChildren: {
		Category:   CategoryComponent,
		Message:    "Context provider expects exactly one child element",
		Detail:     "A provider renders its child in place and has no wrapper node of its own, so it can only anchor a single element.",
		Suggestion: "Wrap the provider's children in a host element such as vdom.Div.",
	},
	CodeConsumerChildren: {
		Category:   CategoryComponent,
		Message:    "Context consumer children must be a render function",
		Suggestion: "Pass a func(value any) *vdom.Element as the consumer's only child.",
	},
	CodeInvalidState: {
		Category:   CategoryComponent,
		Message:    "Invalid pending state entry",
		Suggestion: "Use SetState with a vrec.State or UpdateState with a func(vrec.State) vrec.State.",
	},
	CodeInvalidHandler: {
		Category:   CategoryEvent,
		Message:    "Unsupported event handler type",
		Suggestion: "Event props must hold a func() or a func(*vrec.Event).",
	},
	CodeNilSurface: {
		Category: CategoryReconcile,
		Message:  "Render called without a surface",
	},
	CodeHookOrder: {
		Category:   CategoryComponent,
		Message:    "Hook slot holds a different hook",
		Detail:     "Hooks are matched by call position. A hook found the state of another hook kind at its position, so the component called its hooks in a different order than on the previous render.",
		Suggestion: "Call hooks unconditionally and in the same order on every render.",
	},

	// ============================================
	// Configuration errors (C001-C099)
	// ============================================

	CodeConfigRead: {
		Category: CategoryConfig,
		Message:  "Failed to read configuration file",
	},
	CodeConfigParse: {
		Category:   CategoryConfig,
		Message:    "Failed to parse configuration file",
		Suggestion: "Check vrec.yaml for indentation and type errors.",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},

	// ============================================
	// Snapshot store errors (S001-S099)
	// ============================================

	CodeSnapshotWrite: {
		Category: CategorySnapshot,
		Message:  "Failed to write snapshot",
	},
	CodeSnapshotRead: {
		Category: CategorySnapshot,
		Message:  "Failed to read snapshot",
	},
	CodeSnapshotNotFound: {
		Category: CategorySnapshot,
		Message:  "Snapshot not found",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
