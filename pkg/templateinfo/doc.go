// Package templateinfo reads and writes the per-template metadata file.
//
// The file is line oriented:
//
//	LPPM TEMPLATE V1
//	"make init";"git init";"echo \"done\"";
//
// The first line is a fixed version header. The optional second line lists
// the commands run after a project is created, each wrapped in double quotes
// and followed by a semicolon. Inside a command a backslash escapes the next
// character, so \" and \\ stand for a literal quote and backslash. Whitespace
// is allowed between a closing quote and its semicolon, nowhere else outside
// quotes.
//
// Save escapes quotes and backslashes, so any command list survives a round
// trip through the file.
package templateinfo
