// Package stringutil provides small, stateless text utilities for cleaning up
// and reshaping strings.
//
// # Overview
//
// The library consists of three packages:
//
//   - charset: UTF-8 validation and cleanup, \uXXXX escape decoding,
//     non-breaking space decoding and accent removal
//   - casing: conversion to camelCase, PascalCase, snake_case, kebab-case,
//     Title Case and filesystem-safe names
//   - search: literal and regular expression substring helpers
//
// Errors returned by these packages are defined in strerrors and can be
// inspected with [errors.Is] and [errors.As].
//
// # Installation
//
//	go get github.com/arturdoruch/stringutil
//
// # Quick Start
//
// Clean up text coming from an untrusted source:
//
//	import "github.com/arturdoruch/stringutil/charset"
//
//	text := charset.CleanupUTF8(raw)
//	text = charset.DecodeNonBreakingSpaces(text)
//	fmt.Println(charset.RemoveAccents(text))
//
// Convert between identifier styles:
//
//	import "github.com/arturdoruch/stringutil/casing"
//
//	casing.ToSnake("camel4Case")     // "camel4_case"
//	casing.ToCamel("Foo_BAr_Baz")    // "fooBArBaz"
//	casing.ToTitle("HTTP_Request", false) // "HTTP Request"
//
// Build a file name that is safe on Windows:
//
//	name, err := casing.ToFilename(title, casing.Windows, casing.WithMaxLength(64))
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Logging
//
// Operations that drop data silently (unsupported escapes, reserved device
// names, truncation) accept an optional [Logger]. Use [NewSlogAdapter] to plug
// in a *slog.Logger. The default is [NopLogger].
//
// # Concurrency
//
// Every function is pure and safe for concurrent use. Shared tables are
// read-only.
package stringutil
