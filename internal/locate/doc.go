// Package locate provides the generic DOM and URL helpers shared by the
// category extractors: anchor lookup by heading or keyword, relative URL
// resolution, tracking-parameter stripping, and the content-versus-chrome
// image classifier.
package locate
