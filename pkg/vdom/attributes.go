package vdom

import "strings"

// Attr represents a single prop.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Prop sets an arbitrary prop. Component props are usually set this way.
func Prop(key string, value any) Attr { return attr(key, value) }

// Key sets the element's reconciliation key.
func Key(key any) Attr { return attr(PropKey, key) }

// RefTo captures the element's live node or component instance into r.
func RefTo(r *Ref) Attr { return attr(PropRef, r) }

// Value sets the value prop; context providers read it too.
func Value(v any) Attr { return attr(PropValue, v) }

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Style sets style properties. Repeated Style args merge.
func Style(props map[string]any) Attr { return attr(PropStyle, props) }

// StyleProp sets a single style property.
func StyleProp(name string, value any) Attr {
	return attr(PropStyle, map[string]any{name: value})
}

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// TitleAttr sets the title attribute.
func TitleAttr(title string) Attr { return attr("title", title) }

// Hidden sets the hidden attribute.
func Hidden() Attr { return attr("hidden", true) }

// Form attributes

// Type sets the type attribute.
func Type_(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Disabled sets the disabled attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Checked sets the checked attribute.
func Checked(checked bool) Attr { return attr("checked", checked) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }
