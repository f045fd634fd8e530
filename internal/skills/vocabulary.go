// Package skills provides skill extraction from raw resume text using a
// fixed vocabulary with whole-word matching.
package skills

// vocabulary is the fixed set of recognized skill terms, spanning
// languages, frameworks, platforms, and soft skills. Matching happens on
// the raw (uncleaned) text so punctuation-bearing terms stay intact.
var vocabulary = []string{
	"python", "java", "javascript", "react", "angular", "vue", "node.js", "sql",
	"mongodb", "postgresql", "mysql", "django", "flask", "spring", "docker",
	"kubernetes", "aws", "azure", "gcp", "machine learning", "deep learning",
	"data science", "nlp", "computer vision", "tensorflow", "pytorch", "git",
	"agile", "scrum", "project management", "leadership", "teamwork", "communication",
	"problem solving", "analytical", "marketing", "sales", "design", "ui/ux",
	"android", "ios", "flutter", "react native", "php", "ruby", "c++", "c#",
	"html", "css", "bootstrap", "jquery", "api", "rest", "microservices",
}
