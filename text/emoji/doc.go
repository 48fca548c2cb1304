// Package emoji classifies emoji code points and emoji sequences.
//
// Script segmentation uses it to give emoji their own script so that
// font validation can route them to a color font:
//
//   - Emoji_Presentation characters (U+1F600 grinning face) are emoji on their own
//   - Text presentation characters (U+2764 heavy heart) become emoji only
//     when followed by U+FE0F, a skin tone modifier or a ZWJ
//   - ZWJ sequences, flags, keycaps and tag sequences form one unit
//
// See Unicode Technical Report #51: https://www.unicode.org/reports/tr51/
package emoji
