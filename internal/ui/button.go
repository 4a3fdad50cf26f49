package ui

// Variant selects the color bundle of a Button.
type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantOutline   Variant = "outline"
)

// Size selects the padding and type scale of a Button.
type Size string

const (
	SizeSm Size = "sm"
	SizeMd Size = "md"
	SizeLg Size = "lg"
)

const buttonBase = "font-medium rounded-lg transition-colors disabled:opacity-50 disabled:cursor-not-allowed"

var variantStyles = map[Variant]string{
	VariantPrimary:   "bg-primary-600 hover:bg-primary-700 text-white",
	VariantSecondary: "bg-gray-700 hover:bg-gray-600 text-white",
	VariantOutline:   "border-2 border-gray-600 hover:border-gray-500 text-white bg-transparent",
}

var sizeStyles = map[Size]string{
	SizeSm: "px-3 py-1.5 text-sm",
	SizeMd: "px-4 py-2 text-base",
	SizeLg: "px-6 py-3 text-lg",
}

// VariantStyle returns the style bundle for v, or "" for an unknown variant.
func VariantStyle(v Variant) string { return variantStyles[v] }

// SizeStyle returns the style bundle for s, or "" for an unknown size.
func SizeStyle(s Size) string { return sizeStyles[s] }

// ButtonConfig holds every knob a Button exposes.
type ButtonConfig struct {
	Variant  Variant
	Size     Size
	Disabled bool
	Class    string
	OnClick  func()
	// Href renders the button as a link when set.
	Href string
}

// ButtonOption configures a Button.
type ButtonOption func(*ButtonConfig)

func WithVariant(v Variant) ButtonOption {
	return func(c *ButtonConfig) { c.Variant = v }
}

func WithSize(s Size) ButtonOption {
	return func(c *ButtonConfig) { c.Size = s }
}

// Disabled mutes the button and stops it from invoking its handler.
func Disabled(disabled bool) ButtonOption {
	return func(c *ButtonConfig) { c.Disabled = disabled }
}

// WithClass appends caller classes after the built-in styles.
func WithClass(class string) ButtonOption {
	return func(c *ButtonConfig) { c.Class = Merge(c.Class, class) }
}

func OnClick(fn func()) ButtonOption {
	return func(c *ButtonConfig) { c.OnClick = fn }
}

// AsLink renders the button as an anchor pointing at href.
func AsLink(href string) ButtonOption {
	return func(c *ButtonConfig) { c.Href = href }
}

// Button is a clickable control with variant and size styling.
type Button struct {
	label string
	cfg   ButtonConfig
}

// NewButton creates a button labelled label. Defaults are primary, md and
// enabled.
func NewButton(label string, opts ...ButtonOption) *Button {
	cfg := ButtonConfig{
		Variant: VariantPrimary,
		Size:    SizeMd,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Button{label: label, cfg: cfg}
}

func (b *Button) Label() string { return b.label }

func (b *Button) Variant() Variant { return b.cfg.Variant }

func (b *Button) Size() Size { return b.cfg.Size }

func (b *Button) Disabled() bool { return b.cfg.Disabled }

// Href is the link target, empty for a plain button.
func (b *Button) Href() string { return b.cfg.Href }

// IsLink reports whether the button renders as an anchor. A disabled link
// falls back to a disabled button so it cannot be followed.
func (b *Button) IsLink() bool { return b.cfg.Href != "" && !b.cfg.Disabled }

// Class is base, variant, size and caller classes in that order.
func (b *Button) Class() string {
	return Merge(buttonBase, VariantStyle(b.cfg.Variant), SizeStyle(b.cfg.Size), b.cfg.Class)
}

// Click activates the button. The handler runs exactly once unless the
// button is disabled. It reports whether the activation was accepted.
func (b *Button) Click() bool {
	if b.cfg.Disabled {
		return false
	}
	if b.cfg.OnClick != nil {
		b.cfg.OnClick()
	}
	return true
}
