package sheetsync

import (
	"regexp"
	"strings"
)

var (
	editSuffix = regexp.MustCompile(`/edit.*$`)
	gidParam   = regexp.MustCompile(`gid=(\d+)`)
)

const exportSuffix = "/export?format=csv"

// JobExportURL turns a sheet edit link into its CSV export link, keeping the
// tab selected by the first gid= in the link. Links without /edit are used
// as they are.
func JobExportURL(sheetURL string) string {
	if !strings.Contains(sheetURL, "/edit") {
		return sheetURL
	}
	out := editSuffix.ReplaceAllString(sheetURL, exportSuffix)
	if m := gidParam.FindStringSubmatch(sheetURL); m != nil {
		out += "&gid=" + m[1]
	}
	return out
}

// EmployeeExportURL points at the employee tab. The gid is always appended,
// even when the link has no /edit part.
func EmployeeExportURL(sheetURL, gid string) string {
	return editSuffix.ReplaceAllString(sheetURL, exportSuffix) + "&gid=" + gid
}
