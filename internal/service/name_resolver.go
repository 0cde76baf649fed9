package service

import (
	"regexp"
	"strings"

	"github.com/khaCey/Teachers-Calendar/internal/models"
)

// Name parsing heuristics, kept together with the classifier tables at the
// boundary of the pipeline.
var (
	andSplitPattern   = regexp.MustCompile(`(?i)\s+and\s+`)
	demoMarkerPattern = regexp.MustCompile(`(?i)D/L`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

const (
	// childMarkerGlyph tags kids' lessons in event titles. Cosmetic only;
	// it is stripped before any name matching.
	childMarkerGlyph = "子"

	demoFolderSuffix = " DEMO"
)

// ResolvedName pairs a full student name with its roster folder key.
// FolderKey is empty when the name is not on the roster.
type ResolvedName struct {
	Name      string
	FolderKey string
}

// NameResolver maps free-text event titles to canonical student
// identities using the roster loaded for the current sync run.
type NameResolver struct {
	roster map[string]string
}

// NewNameResolver indexes roster entries by student name. Entries missing
// a name or folder key are ignored, mirroring incomplete roster rows.
func NewNameResolver(entries []models.StudentEntry) *NameResolver {
	roster := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.Name != "" && entry.FolderKey != "" {
			roster[entry.Name] = entry.FolderKey
		}
	}
	return &NameResolver{roster: roster}
}

// Resolve extracts every student named in an event title.
//
// The title's name portion is everything before the first parenthetical
// suffix, with the child-marker glyph removed. It is split on "and" into
// independent name segments. When the last segment carries two or more
// tokens its final token is treated as a shared family name and appended
// to every single-token segment, so "Taro and Hanako Yamada" resolves to
// "Taro Yamada" and "Hanako Yamada". Duplicate names are preserved as-is.
func (r *NameResolver) Resolve(title string) []ResolvedName {
	namePart := title
	if idx := strings.Index(namePart, "("); idx >= 0 {
		namePart = namePart[:idx]
	}
	namePart = strings.ReplaceAll(namePart, childMarkerGlyph, "")

	segments := make([]string, 0, 2)
	for _, segment := range andSplitPattern.Split(namePart, -1) {
		segment = strings.TrimSpace(segment)
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	var familyName string
	if len(segments) > 1 {
		tokens := whitespacePattern.Split(segments[len(segments)-1], -1)
		if len(tokens) > 1 {
			familyName = tokens[len(tokens)-1]
		}
	}

	resolved := make([]ResolvedName, 0, len(segments))
	for _, segment := range segments {
		tokens := whitespacePattern.Split(segment, -1)
		fullName := segment
		if len(tokens) == 1 && familyName != "" {
			fullName = tokens[0] + " " + familyName
		}
		fullName = strings.TrimSpace(fullName)

		folderKey := r.roster[fullName]
		if folderKey == "" && demoMarkerPattern.MatchString(title) {
			folderKey = demoFolderKey(title)
		}
		resolved = append(resolved, ResolvedName{Name: fullName, FolderKey: folderKey})
	}
	return resolved
}

// demoFolderKey derives a synthetic folder key for a demo lesson from the
// text preceding the D/L marker, e.g. "John Smith D/L" -> "John Smith DEMO".
func demoFolderKey(title string) string {
	prefix := demoMarkerPattern.Split(title, 2)[0]
	return strings.TrimSpace(prefix) + demoFolderSuffix
}
