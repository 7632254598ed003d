package minify

import "regexp"

// Precompiled comment expressions shared between pattern sets.
var (
	LineSlashPattern    = regexp.MustCompile(`(?m)//.*$`)
	BlockSlashPattern   = regexp.MustCompile(`(?s)/\*.*?\*/`)
	HTMLCommentPattern  = regexp.MustCompile(`(?s)<!--.*?-->`)
	LineHashPattern     = regexp.MustCompile(`(?m)#.*$`)
	TripleSinglePattern = regexp.MustCompile(`(?s)'''.*?'''`)
	TripleDoublePattern = regexp.MustCompile(`(?s)""".*?"""`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// patternSets holds the ordered expressions applied per tag. Later entries
// run on text already stripped by earlier ones.
var patternSets = map[Tag][]*regexp.Regexp{
	JavaScript: {LineSlashPattern, BlockSlashPattern},
	TypeScript: {LineSlashPattern, BlockSlashPattern},
	Java:       {LineSlashPattern, BlockSlashPattern},
	C:          {LineSlashPattern, BlockSlashPattern},
	CPP:        {LineSlashPattern, BlockSlashPattern},
	CSS:        {BlockSlashPattern},
	HTML:       {HTMLCommentPattern},
	Svelte:     {LineSlashPattern, BlockSlashPattern, HTMLCommentPattern},
	Vue:        {LineSlashPattern, BlockSlashPattern, HTMLCommentPattern},
	JSON:       {LineSlashPattern},
	Python:     {LineHashPattern, TripleSinglePattern, TripleDoublePattern},
	PHP:        {LineSlashPattern, LineHashPattern, BlockSlashPattern},
	Unknown: {
		LineSlashPattern,
		BlockSlashPattern,
		HTMLCommentPattern,
		LineHashPattern,
		TripleDoublePattern,
		TripleSinglePattern,
	},
}

// Patterns returns a copy of the pattern set registered for tag, or nil.
func Patterns(tag Tag) []*regexp.Regexp {
	set, ok := patternSets[tag]
	if !ok {
		return nil
	}
	out := make([]*regexp.Regexp, len(set))
	copy(out, set)
	return out
}

// Tags lists every tag in declaration order.
func Tags() []Tag {
	return []Tag{JavaScript, TypeScript, CSS, HTML, JSON, Python, Java, C, CPP, PHP, Svelte, Vue, Unknown}
}
