package ui

const (
	cardBase       = "bg-gray-800 rounded-lg p-6 border border-gray-700"
	cardHover      = "hover:border-gray-600 transition-colors"
	cardHeaderBase = "mb-4"
	cardTitleBase  = "text-xl font-semibold text-white"
)

// CardConfig configures a Card.
type CardConfig struct {
	Hover bool
	Class string
}

// CardOption configures a Card.
type CardOption func(*CardConfig)

// Hover adds the hover transition style.
func Hover(hover bool) CardOption {
	return func(c *CardConfig) { c.Hover = hover }
}

// CardClass appends caller classes to a Card.
func CardClass(class string) CardOption {
	return func(c *CardConfig) { c.Class = Merge(c.Class, class) }
}

// Card is a bordered content container.
type Card struct {
	cfg CardConfig
}

func NewCard(opts ...CardOption) Card {
	var cfg CardConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return Card{cfg: cfg}
}

func (c Card) Hover() bool { return c.cfg.Hover }

func (c Card) Class() string {
	hover := ""
	if c.cfg.Hover {
		hover = cardHover
	}
	return Merge(cardBase, hover, c.cfg.Class)
}

// CardHeader spaces the heading block from the body.
type CardHeader struct{ class string }

func NewCardHeader(class string) CardHeader { return CardHeader{class: class} }

func (h CardHeader) Class() string { return Merge(cardHeaderBase, h.class) }

// CardTitle styles the card heading.
type CardTitle struct{ class string }

func NewCardTitle(class string) CardTitle { return CardTitle{class: class} }

func (t CardTitle) Class() string { return Merge(cardTitleBase, t.class) }

// CardContent is a passthrough wrapper; only caller classes apply.
type CardContent struct{ class string }

func NewCardContent(class string) CardContent { return CardContent{class: class} }

func (c CardContent) Class() string { return Merge(c.class) }
