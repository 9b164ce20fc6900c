// Package stockgpt holds the domain core of Stock-GPT: the inline
// Markdown tokenizer the PDF pipeline renders from, and the closed-form
// valuation helpers used to seed analysis prompts.
//
// The tokenizer handles exactly the dialect the report generator is
// instructed to produce: bold spans delimited by ** and bare
// http(s):// URLs, with URLs inside bold spans resolved recursively.
// Block-level structure (headings, bullets, pipe tables) is classified
// line by line in the pdf package; this package only splits a single
// logical line into styled spans.
//
// Example:
//
//	spans := stockgpt.Tokenize("**see https://example.com for more**")
//	// three spans, all bold, the middle one a hyperlink
package stockgpt
