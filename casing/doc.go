// Package casing converts strings between identifier and display case styles.
//
// # Word Boundaries
//
// All conversions share one tokenization rule: a run of characters that are
// neither Unicode letters nor decimal digits separates two words when it is
// followed by a letter. Digits belong to the word they touch, so "camel4Case"
// holds the words "camel4" and "Case". [ToSnake] and [ToKebab] additionally
// start a new word at every uppercase letter, which splits acronyms into
// single letters:
//
//	casing.ToSnake("Lorem IPSUM") // "lorem_i_p_s_u_m"
//	casing.ToCamel("Foo_BAr_Baz") // "fooBArBaz"
//	casing.ToPascal("świeża Śliwka") // "ŚwieżaŚliwka"
//
// A byte that is not valid UTF-8 counts as a separator as well, so it is
// removed when a letter follows it: ToCamel("Ab\xffCd") is "abCd".
//
// Only the first letter of a word changes case in [ToCamel] and [ToPascal];
// interior capitals are preserved. Case mapping is the full Unicode mapping
// of golang.org/x/text/cases, so "ß" uppercases to "SS".
//
// # Titles
//
// [ToTitle] turns "_" and "-" into spaces and capitalizes the first letter of
// the text and of each sentence. With forceAllWords it capitalizes every word.
//
// # File Names
//
// [ToFilename] strips the characters a target [OS] does not allow in a file
// name, collapses repeated spaces and optionally truncates the result:
//
//	name, err := casing.ToFilename(`report: 2024/Q1?`, casing.Windows, casing.WithMaxLength(255))
//
// [WithMaxLength] limits the length in characters and [WithLogger] receives
// a debug entry whenever a reserved device name is cleared or the name is
// truncated. An unknown OS is reported as a *strerrors.InvalidArgumentError.
package casing
