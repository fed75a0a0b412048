// Package minify compresses CSS text.
//
// The compressor is a linear sequence of regular-expression rewrites over the
// stylesheet. Anything those rewrites could corrupt is first swapped for a
// placeholder token and kept in a Vault:
//
//  1. Data URL payloads, which can contain anything
//  2. Comment bodies, until they are classified as kept or dropped
//  3. String bodies
//  4. calc() expressions, whose operator spacing is significant
//
// Basic usage:
//
//	out := minify.Compress(css, minify.DefaultLineBreak)
//
// Kept comments are the ones starting with '!' plus two browser hacks: the
// IE5/Mac backslash pair (/*\*/ ... /**/) and an empty comment right after a
// child combinator (html>/**/body).
//
// Every call owns its Vault, so Compress is safe for concurrent use.
package minify
