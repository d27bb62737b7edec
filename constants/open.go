package constants

const (
	WordlessDocsURL = "https://wordless.readthedocs.io"
	WordlessRepoURL = "https://github.com/welaika/wordless"
)

var DocsURLMap = map[string]string{
	"docs":      WordlessDocsURL,
	"repo":      WordlessRepoURL,
	"issues":    WordlessRepoURL + "/issues",
	"changelog": WordlessRepoURL + "/blob/master/CHANGELOG.md",
	"wp-cli":    "https://wp-cli.org",
}
