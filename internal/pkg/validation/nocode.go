// Package validation holds pure input-validation helpers shared by the
// request-validation layer.
package validation

import "regexp"

// NoCodeMessage is the issue message attached when a description trips the
// code heuristic.
const NoCodeMessage = "Description must not contain any programming code or code-like syntax."

// codePatterns is a heuristic filter, not a parser. False positives and
// false negatives are accepted behavior.
var codePatterns = []*regexp.Regexp{
	// Code block syntax
	regexp.MustCompile("(?s)```.*?```"), // fenced code block
	regexp.MustCompile("`[^`]*`"),       // inline code

	// HTML / XML / JSX
	regexp.MustCompile(`<[^>]+>`),
	regexp.MustCompile(`</?[A-Za-z]+\s*[^>]*>`),

	// Comments
	regexp.MustCompile(`(?m)//.*$`),        // JS, Java, C++ line comment
	regexp.MustCompile(`(?s)/\*.*?\*/`),    // multi-line comment
	regexp.MustCompile(`(?m)^#.*$`),        // Python, Bash comment
	regexp.MustCompile(`(?m)-- .*$`),       // SQL comment

	// Code-like symbols
	regexp.MustCompile(`[{}();=<>]`),

	// Language keywords
	regexp.MustCompile(`(?i)\b(function|return|var|let|const|class|import|export|console|await|async)\b`), // JS
	regexp.MustCompile(`(?i)\b(def|print|self|None|True|False|import|global)\b`),                          // Python
	regexp.MustCompile(`(?i)\b(public|private|protected|static|void|int|new|class|extends|implements)\b`), // Java / C#
	regexp.MustCompile(`(?i)#include|\bprintf\b|\bscanf\b|\bmain\s*\(`),                                   // C / C++
	regexp.MustCompile(`(?i)\b(package|func|go|defer|interface)\b`),                                       // Go
	regexp.MustCompile(`(?i)\b(fn|let|mut|impl|trait)\b`),                                                 // Rust
	regexp.MustCompile(`(?i)echo\b|<\?php|\bendif\b|\bforeach\b|\bstrlen\b`),                              // PHP
	regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE|WHERE|JOIN)\b`),                                // SQL
	regexp.MustCompile(`#!`),                                                                              // shebang
}

// ContainsCode reports whether s matches any of the known code-like
// patterns. Length bounds are enforced separately by the DTO tags.
func ContainsCode(s string) bool {
	for _, rx := range codePatterns {
		if rx.MatchString(s) {
			return true
		}
	}
	return false
}
