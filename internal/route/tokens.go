package route

import (
	"regexp"
	"strings"
)

// Declaration tokens recognized in urls.py. Both quote styles are accepted
// since Django projects use either.
var (
	namedRouteFormats   = []string{"name='%s'", `name="%s"`}
	appNamespaceFormats = []string{"app_name = '%s'", `app_name = "%s"`, "app_name='%s'", `app_name="%s"`}
)

// HasNamedRoute reports whether text declares a route named segment.
func HasNamedRoute(text, segment string) bool {
	return containsAny(text, namedRouteFormats, segment)
}

// HasAppNamespace reports whether text declares app_name as segment.
func HasAppNamespace(text, segment string) bool {
	return containsAny(text, appNamespaceFormats, segment)
}

// DirectoryHint reports whether dir mentions segment, with underscores in the
// segment read as hyphens (shop_app matches a shop-app/ directory).
func DirectoryHint(dir, segment string) bool {
	return strings.Contains(dir, strings.ReplaceAll(segment, "_", "-"))
}

func containsAny(text string, formats []string, segment string) bool {
	for _, format := range formats {
		if strings.Contains(text, strings.Replace(format, "%s", segment, 1)) {
			return true
		}
	}
	return false
}

var (
	appNamePattern    = regexp.MustCompile(`app_name\s*=\s*['"]([^'"]+)['"]`)
	namedRoutePattern = regexp.MustCompile(`\bname\s*=\s*['"]([^'"]*)['"]`)
)

// AppNamespace returns the first app_name declared in content.
func AppNamespace(content string) (string, bool) {
	match := appNamePattern.FindStringSubmatch(content)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// NamedRoutes lists route names declared in content, in file order.
func NamedRoutes(content string) []string {
	matches := namedRoutePattern.FindAllStringSubmatch(content, -1)
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match[1])
	}
	return names
}
