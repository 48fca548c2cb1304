// Package markup converts styled markup strings into plain text plus
// typed character runs.
//
// The markup is a small XHTML-like language:
//
//	Hello <color value='red'>world</color>, <b>bold</b> and <a href="https://go.dev">a link</a>
//
// Supported tags are color, font, b, i, u, s, background, span, p,
// char-spacing, item and a. Tag and attribute names are case-insensitive.
// Attribute values may be single quoted, double quoted or unquoted.
// Entities such as &lt; or &#x1F600; are decoded, and \< and \> produce
// literal angle brackets.
//
// Processing never fails. Unknown tags and attributes are ignored and
// malformed tags are kept as literal text.
package markup
