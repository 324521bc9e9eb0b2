package surface

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/vrec/pkg/vdom"
)

// booleanAttrs render as a bare attribute name when true.
var booleanAttrs = map[string]bool{
	"autofocus": true,
	"checked":   true,
	"disabled":  true,
	"hidden":    true,
	"multiple":  true,
	"open":      true,
	"readonly":  true,
	"required":  true,
	"selected":  true,
}

// HTMLOptions configures serialization.
type HTMLOptions struct {
	// Pretty enables newline and indentation output.
	Pretty bool

	// Indent is the indentation string used when Pretty is set.
	Indent string

	// IDs adds a data-vid attribute carrying each element's node ID.
	IDs bool
}

// HTML serializes n and its descendants to a compact HTML string.
func HTML(n *MemNode) string {
	var sb strings.Builder
	_ = WriteHTML(&sb, n, HTMLOptions{})
	return sb.String()
}

// InnerHTML serializes the children of n.
func InnerHTML(n *MemNode) string {
	var sb strings.Builder
	if n == nil {
		return ""
	}
	for _, c := range n.Children {
		_ = WriteHTML(&sb, c, HTMLOptions{})
	}
	return sb.String()
}

// WriteHTML writes n to w as HTML.
func WriteHTML(w io.Writer, n *MemNode, opts HTMLOptions) error {
	if opts.Pretty && opts.Indent == "" {
		opts.Indent = "  "
	}
	return writeNode(w, n, opts, 0)
}

func writeNode(w io.Writer, n *MemNode, opts HTMLOptions, depth int) error {
	if n == nil {
		return nil
	}
	if n.IsText {
		if opts.Pretty {
			writeIndent(w, opts, depth)
		}
		if _, err := io.WriteString(w, escapeHTML(n.Text)); err != nil {
			return err
		}
		if opts.Pretty {
			_, _ = io.WriteString(w, "\n")
		}
		return nil
	}

	if opts.Pretty {
		writeIndent(w, opts, depth)
	}
	if _, err := fmt.Fprintf(w, "<%s", n.Tag); err != nil {
		return err
	}
	if opts.IDs {
		if _, err := fmt.Fprintf(w, ` data-vid="%d"`, n.ID); err != nil {
			return err
		}
	}
	if err := writeAttrs(w, n); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if vdom.IsVoidElement(n.Tag) {
		if opts.Pretty {
			_, _ = io.WriteString(w, "\n")
		}
		return nil
	}

	block := opts.Pretty && len(n.Children) > 0
	if block {
		_, _ = io.WriteString(w, "\n")
	}
	for _, c := range n.Children {
		if err := writeNode(w, c, opts, depth+1); err != nil {
			return err
		}
	}
	if block {
		writeIndent(w, opts, depth)
	}
	if _, err := fmt.Fprintf(w, "</%s>", n.Tag); err != nil {
		return err
	}
	if opts.Pretty {
		_, _ = io.WriteString(w, "\n")
	}
	return nil
}

func writeAttrs(w io.Writer, n *MemNode) error {
	keys := make([]string, 0, len(n.Attrs))
	for key := range n.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := n.Attrs[key]
		if isFunc(value) {
			continue
		}
		name := key
		switch key {
		case "className":
			name = "class"
		case "htmlFor":
			name = "for"
		}
		if b, ok := value.(bool); ok && booleanAttrs[name] {
			if b {
				if _, err := fmt.Fprintf(w, " %s", name); err != nil {
					return err
				}
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, name, escapeAttr(attrToString(value))); err != nil {
			return err
		}
	}

	if css := StyleString(n.Style); css != "" {
		if _, err := fmt.Fprintf(w, ` style="%s"`, escapeAttr(css)); err != nil {
			return err
		}
	}
	return nil
}

// StyleString renders a style map as a declaration list sorted by name.
func StyleString(style map[string]any) string {
	if len(style) == 0 {
		return ""
	}
	names := make([]string, 0, len(style))
	for name := range style {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(attrToString(style[name]))
		sb.WriteByte(';')
	}
	return sb.String()
}

func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func isFunc(value any) bool {
	return value != nil && reflect.TypeOf(value).Kind() == reflect.Func
}

func writeIndent(w io.Writer, opts HTMLOptions, depth int) {
	for i := 0; i < depth; i++ {
		_, _ = io.WriteString(w, opts.Indent)
	}
}
