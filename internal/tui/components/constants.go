package components

const (
	TicketCardHeight     = 7   // border(2) + title + description(2) + metadata + tags
	ColumnContentWidth   = 30  // inner width of a column and its cards
	DescriptionMaxLength = 120 // card description preview length before "..."
	columnBorderOverhead = 3   // top border + "▼ more below" + bottom border
	headerLines          = 1   // column title and count
	topIndicatorLines    = 1   // empty line or "▲ more above"
)
