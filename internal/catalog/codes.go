package catalog

// entries maps camel-case rule identifiers to their templates, in the order
// the codes appear in the parse-error listing. Rules the HTML standard does
// not enumerate (tree-construction checks) set SuppressURL.
//
// Template placeholders are expanded by the emitter against the original
// source text: %c picks the character at the event offset (optionally
// shifted, e.g. %c-1), %x prints its code point as upper-case hex.
var entries = map[string]Entry{
	"abandonedHeadElementChild": {
		Reason:      "Unexpected metadata element after head",
		Description: "Unexpected element after head. Expected the element before `</head>`",
		SuppressURL: true,
	},
	"abruptClosingOfEmptyComment": {
		Reason:      "Unexpected abruptly closed empty comment",
		Description: "Unexpected `>` or `->`. Expected `-->` to close comments",
	},
	"abruptDoctypePublicIdentifier": {
		Reason:      "Unexpected abruptly closed public identifier",
		Description: "Unexpected `>`. Expected a closing `\"` or `'` after the public identifier",
	},
	"abruptDoctypeSystemIdentifier": {
		Reason:      "Unexpected abruptly closed system identifier",
		Description: "Unexpected `>`. Expected a closing `\"` or `'` after the identifier",
	},
	"absenceOfDigitsInNumericCharacterReference": {
		Reason:      "Unexpected non-digit at start of numeric character reference",
		Description: "Unexpected `%c`. Expected `[0-9]` for decimal references or `[0-9a-fA-F]` for hexadecimal references",
	},
	"cdataInHtmlContent": {
		Reason:      "Unexpected CDATA section in HTML",
		Description: "Unexpected `<![CDATA[` in HTML. Remove it, use a comment, or encode special characters instead",
	},
	"characterReferenceOutsideUnicodeRange": {
		Reason:      "Unexpected too big numeric character reference",
		Description: "Unexpectedly high character reference. Expected character references to be at most hexadecimal 10ffff (or decimal 1114111)",
	},
	"closingOfElementWithOpenChildElements": {
		Reason:      "Unexpected closing tag with open child elements",
		Description: "Unexpectedly closing tag. Expected other tags to be closed first",
		SuppressURL: true,
	},
	"controlCharacterInInputStream": {
		Reason:      "Unexpected control character",
		Description: "Unexpected control character `%x`. Expected a non-control code point, 0x00, or ASCII whitespace",
	},
	"controlCharacterReference": {
		Reason:      "Unexpected control character reference",
		Description: "Unexpectedly control character in reference. Expected a non-control code point, 0x00, or ASCII whitespace",
	},
	"disallowedContentInNoscriptInHead": {
		Reason:      "Disallowed content inside `<noscript>` in `<head>`",
		Description: "Unexpected text character `%c`. Only use text in `<noscript>`s in `<body>`",
		SuppressURL: true,
	},
	"duplicateAttribute": {
		Reason:      "Unexpected duplicate attribute",
		Description: "Unexpectedly double attribute. Expected attributes to occur only once",
	},
	"endTagWithAttributes": {
		Reason:      "Unexpected attribute on closing tag",
		Description: "Unexpected attribute. Expected `>` instead",
	},
	"endTagWithTrailingSolidus": {
		Reason:      "Unexpected slash at end of closing tag",
		Description: "Unexpected `%c-1`. Expected `>` instead",
	},
	"endTagWithoutMatchingOpenElement": {
		Reason:      "Unexpected unopened end tag",
		Description: "Unexpected end tag. Expected no end tag or another end tag",
		SuppressURL: true,
	},
	"eofBeforeTagName": {
		Reason:      "Unexpected end of file",
		Description: "Unexpected end of file. Expected tag name instead",
	},
	"eofInCdata": {
		Reason:      "Unexpected end of file in CDATA",
		Description: "Unexpected end of file. Expected `]]>` to close the CDATA",
	},
	"eofInComment": {
		Reason:      "Unexpected end of file in comment",
		Description: "Unexpected end of file. Expected `-->` to close the comment",
	},
	"eofInDoctype": {
		Reason:      "Unexpected end of file in doctype",
		Description: "Unexpected end of file. Expected a valid doctype (such as `<!doctype html>`)",
	},
	"eofInElementThatCanContainOnlyText": {
		Reason:      "Unexpected end of file in element that can only contain text",
		Description: "Unexpected end of file. Expected text or a closing tag",
		SuppressURL: true,
	},
	"eofInScriptHtmlCommentLikeText": {
		Reason:      "Unexpected end of file in comment inside script",
		Description: "Unexpected end of file. Expected `-->` to close the comment",
	},
	"eofInTag": {
		Reason:      "Unexpected end of file in tag",
		Description: "Unexpected end of file. Expected `>` to close the tag",
	},
	"incorrectlyClosedComment": {
		Reason:      "Incorrectly closed comment",
		Description: "Unexpected `%c-1`. Expected `-->` to close the comment",
	},
	"incorrectlyOpenedComment": {
		Reason:      "Incorrectly opened comment",
		Description: "Unexpected `%c`. Expected `<!--` to open the comment",
	},
	"invalidCharacterSequenceAfterDoctypeName": {
		Reason:      "Invalid sequence after doctype name",
		Description: "Unexpected sequence at `%c`. Expected `public` or `system`",
	},
	"invalidFirstCharacterOfTagName": {
		Reason:      "Invalid first character in tag name",
		Description: "Unexpected `%c`. Expected an ASCII letter instead",
	},
	"misplacedDoctype": {
		Reason:      "Misplaced doctype",
		Description: "Unexpected doctype. Expected doctype before head",
		SuppressURL: true,
	},
	"misplacedStartTagForHeadElement": {
		Reason:      "Misplaced `<head>` start tag",
		Description: "Unexpected start tag `<head>`. Expected `<head>` directly after doctype",
		SuppressURL: true,
	},
	"missingAttributeValue": {
		Reason:      "Missing attribute value",
		Description: "Unexpected `%c-1`. Expected an attribute value or no `%c-1` instead",
	},
	"missingDoctype": {
		Reason:      "Missing doctype before other content",
		Description: "Expected a `<!doctype html>` before anything else",
		SuppressURL: true,
	},
	"missingDoctypeName": {
		Reason:      "Missing doctype name",
		Description: "Unexpected doctype end at `%c`. Expected `html` instead",
	},
	"missingDoctypePublicIdentifier": {
		Reason:      "Missing public identifier in doctype",
		Description: "Unexpected `%c`. Expected identifier instead",
	},
	"missingDoctypeSystemIdentifier": {
		Reason:      "Missing system identifier in doctype",
		Description: "Unexpected `%c`. Expected identifier instead (suggested: `\"about:legacy-compat\"`)",
	},
	"missingEndTagName": {
		Reason:      "Missing name in end tag",
		Description: "Unexpected `%c`. Expected an ASCII letter instead",
	},
	"missingQuoteBeforeDoctypePublicIdentifier": {
		Reason:      "Missing quote before public identifier in doctype",
		Description: "Unexpected `%c`. Expected `\"` or `'` instead",
	},
	"missingQuoteBeforeDoctypeSystemIdentifier": {
		Reason:      "Missing quote before system identifier in doctype",
		Description: "Unexpected `%c`. Expected `\"` or `'` instead",
	},
	"missingSemicolonAfterCharacterReference": {
		Reason:      "Missing semicolon after character reference",
		Description: "Unexpected `%c`. Expected `;` instead",
	},
	"missingWhitespaceAfterDoctypePublicKeyword": {
		Reason:      "Missing whitespace after public identifier in doctype",
		Description: "Unexpected `%c`. Expected ASCII whitespace instead",
	},
	"missingWhitespaceAfterDoctypeSystemKeyword": {
		Reason:      "Missing whitespace after system identifier in doctype",
		Description: "Unexpected `%c`. Expected ASCII whitespace instead",
	},
	"missingWhitespaceBeforeDoctypeName": {
		Reason:      "Missing whitespace before doctype name",
		Description: "Unexpected `%c`. Expected ASCII whitespace instead",
	},
	"missingWhitespaceBetweenAttributes": {
		Reason:      "Missing whitespace between attributes",
		Description: "Unexpected `%c`. Expected ASCII whitespace instead",
	},
	"missingWhitespaceBetweenDoctypePublicAndSystemIdentifiers": {
		Reason:      "Missing whitespace between public and system identifiers in doctype",
		Description: "Unexpected `%c`. Expected ASCII whitespace instead",
	},
	"nestedComment": {
		Reason:      "Unexpected nested comment",
		Description: "Unexpected `<!--`. Expected `-->`",
	},
	"nestedNoscriptInHead": {
		Reason:      "Unexpected nested `<noscript>` in `<head>`",
		Description: "Unexpected `<noscript>`. Expected a closing tag or a meta element",
		SuppressURL: true,
	},
	"nonConformingDoctype": {
		Reason:      "Unexpected non-conforming doctype declaration",
		Description: "Expected `<!doctype html>` or `<!doctype html system \"about:legacy-compat\">`",
		SuppressURL: true,
	},
	"nonVoidHtmlElementStartTagWithTrailingSolidus": {
		Reason:      "Unexpected trailing slash on start tag of non-void element",
		Description: "Unexpected `/`. Expected `>` instead",
	},
	"noncharacterCharacterReference": {
		Reason:      "Unexpected noncharacter code point referenced by character reference",
		Description: "Unexpected code point. Do not use noncharacters in HTML",
	},
	"noncharacterInInputStream": {
		Reason:      "Unexpected noncharacter character",
		Description: "Unexpected code point `%x`. Do not use noncharacters in HTML",
	},
	"nullCharacterReference": {
		Reason:      "Unexpected NULL character referenced by character reference",
		Description: "Unexpected code point. Do not use NULL characters in HTML",
	},
	"openElementsLeftAfterEof": {
		Reason:      "Unexpected end of file",
		Description: "Unexpected end of file. Expected closing tag instead",
		SuppressURL: true,
	},
	"surrogateCharacterReference": {
		Reason:      "Unexpected surrogate character referenced by character reference",
		Description: "Unexpected code point. Do not use lone surrogate characters in HTML",
	},
	"surrogateInInputStream": {
		Reason:      "Unexpected surrogate character",
		Description: "Unexpected code point `%x`. Do not use lone surrogate characters in HTML",
	},
	"unexpectedCharacterAfterDoctypeSystemIdentifier": {
		Reason:      "Invalid character after system identifier in doctype",
		Description: "Unexpected character at `%c`. Expected `>`",
	},
	"unexpectedCharacterInAttributeName": {
		Reason:      "Unexpected character in attribute name",
		Description: "Unexpected `%c`. Expected whitespace, `/`, `>`, `=`, or probably an ASCII letter",
	},
	"unexpectedCharacterInUnquotedAttributeValue": {
		Reason:      "Unexpected character in unquoted attribute value",
		Description: "Unexpected `%c`. Quote the attribute value to include it",
	},
	"unexpectedEqualsSignBeforeAttributeName": {
		Reason:      "Unexpected equals sign before attribute name",
		Description: "Unexpected `=`. Add an attribute name before it",
	},
	"unexpectedNullCharacter": {
		Reason:      "Unexpected NULL character",
		Description: "Unexpected code point `%x`. Do not use NULL characters in HTML",
	},
	"unexpectedQuestionMarkInsteadOfTagName": {
		Reason:      "Unexpected question mark instead of tag name",
		Description: "Unexpected `?`. Expected an ASCII letter instead",
	},
	"unexpectedSolidusInTag": {
		Reason:      "Unexpected slash in tag",
		Description: "Unexpected `%c-1`. Expected it followed by `>` or in a quoted attribute value",
	},
	"unknownNamedCharacterReference": {
		Reason:      "Unexpected unknown named character reference",
		Description: "Unexpected character reference. Expected known named character references",
	},
}
