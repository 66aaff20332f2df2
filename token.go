package htmltable

// TokenType identifies the kind of a Token produced by the Tokenizer.
type TokenType int

const (
	// ErrorToken means the tokenizer has nothing more to give; check
	// Tokenizer.Err for the reason (io.EOF on a clean end of input).
	ErrorToken TokenType = iota
	// StartTagToken is a tag like <table> or <td class="x">.
	StartTagToken
	// EndTagToken is a tag like </table>.
	EndTagToken
	// TextToken is a run of character data between tags.
	TextToken
	// CommentToken is a <!-- ... --> section.
	CommentToken
	// DoctypeToken is a <!DOCTYPE ...> declaration.
	DoctypeToken
)

func (t TokenType) String() string {
	switch t {
	case ErrorToken:
		return "Error"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case TextToken:
		return "Text"
	case CommentToken:
		return "Comment"
	case DoctypeToken:
		return "Doctype"
	default:
		return "Invalid"
	}
}

// Token is a single lexical unit produced by the Tokenizer.
type Token struct {
	Type TokenType

	// Name is the lower-cased tag name for StartTagToken/EndTagToken.
	Name string

	// Attrs holds the attributes for a StartTagToken, in source order.
	Attrs Attributes

	// SelfClosing is true for a StartTagToken ending in "/>", and is also
	// forced true for void elements regardless of how they were written.
	SelfClosing bool

	// Data holds the text for TextToken/CommentToken/DoctypeToken.
	Data string
}

// voidElements never have an end tag; their start tag is always treated as
// self-closing regardless of trailing "/>".
var voidElements = map[string]bool{
	"br": true, "hr": true, "img": true, "meta": true, "link": true,
	"input": true, "area": true, "base": true, "col": true, "embed": true,
	"param": true, "source": true, "track": true, "wbr": true,
}
