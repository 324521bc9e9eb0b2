package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// build collects builder arguments into a config and child list and hands
// them to CreateElement. Arguments can be: nil, Attr, []Attr, Props,
// EventHandler, *Element, []*Element, string, or a number.
func build(typ any, args []any) *Element {
	config := Props{}
	children := make([]any, 0, len(args))

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			applyAttr(config, v)

		case []Attr:
			for _, a := range v {
				applyAttr(config, a)
			}

		case Props:
			for k, val := range v {
				config[k] = val
			}

		case EventHandler:
			config[v.Event] = v.Handler

		case *Element:
			if v != nil {
				children = append(children, v)
			}

		case []*Element:
			for _, child := range v {
				children = append(children, child)
			}

		default:
			// Strings, numbers and render functions go through CreateElement.
			children = append(children, v)
		}
	}

	return CreateElement(typ, config, children...)
}

func applyAttr(config Props, a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == PropStyle {
		if m, ok := a.Value.(map[string]any); ok {
			merged, _ := config[PropStyle].(map[string]any)
			if merged == nil {
				merged = make(map[string]any, len(m))
			}
			for k, v := range m {
				merged[k] = v
			}
			config[PropStyle] = merged
			return
		}
	}
	config[a.Key] = a.Value
}

// H creates an element of any type with builder-style arguments.
// It is the entry point for components: H(Counter, Attr{"start", 3}).
func H(typ any, args ...any) *Element { return build(typ, args) }

// Content sectioning elements

func Header(args ...any) *Element  { return build("header", args) }
func Footer(args ...any) *Element  { return build("footer", args) }
func Main(args ...any) *Element    { return build("main", args) }
func Nav(args ...any) *Element     { return build("nav", args) }
func Section(args ...any) *Element { return build("section", args) }
func Article(args ...any) *Element { return build("article", args) }
func H1(args ...any) *Element      { return build("h1", args) }
func H2(args ...any) *Element      { return build("h2", args) }
func H3(args ...any) *Element      { return build("h3", args) }

// Text content elements

func Div(args ...any) *Element  { return build("div", args) }
func P(args ...any) *Element    { return build("p", args) }
func Span(args ...any) *Element { return build("span", args) }
func Pre(args ...any) *Element  { return build("pre", args) }
func Ul(args ...any) *Element   { return build("ul", args) }
func Ol(args ...any) *Element   { return build("ol", args) }
func Li(args ...any) *Element   { return build("li", args) }
func Hr(args ...any) *Element   { return build("hr", args) }

// Inline text semantics

func A(args ...any) *Element      { return build("a", args) }
func Strong(args ...any) *Element { return build("strong", args) }
func Em(args ...any) *Element     { return build("em", args) }
func Code(args ...any) *Element   { return build("code", args) }
func Small(args ...any) *Element  { return build("small", args) }
func Br(args ...any) *Element     { return build("br", args) }

// Form elements

func Form(args ...any) *Element     { return build("form", args) }
func Input(args ...any) *Element    { return build("input", args) }
func Textarea(args ...any) *Element { return build("textarea", args) }
func Select(args ...any) *Element   { return build("select", args) }
func Option(args ...any) *Element   { return build("option", args) }
func Button(args ...any) *Element   { return build("button", args) }
func Label(args ...any) *Element    { return build("label", args) }

// Table elements

func Table(args ...any) *Element { return build("table", args) }
func Tbody(args ...any) *Element { return build("tbody", args) }
func Tr(args ...any) *Element    { return build("tr", args) }
func Th(args ...any) *Element    { return build("th", args) }
func Td(args ...any) *Element    { return build("td", args) }

// Media elements

func Img(args ...any) *Element    { return build("img", args) }
func Canvas(args ...any) *Element { return build("canvas", args) }

// CustomElement creates an element with a custom tag name.
func CustomElement(tag string, args ...any) *Element {
	return build(tag, args)
}
